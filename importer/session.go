package importer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/dslx/logging"
	"github.com/viant/dslx/metric"
	"github.com/viant/dslx/module"
	"github.com/viant/dslx/parser"
	"github.com/viant/dslx/resolver"
	"github.com/viant/dslx/source"
	"github.com/viant/gmetric/counter"
	"golang.org/x/sync/singleflight"
)

const defaultWorkers = 4

// Session represents a compilation session: it owns the module cache and loads every module at most once.
type Session struct {
	id              string
	cache           *module.Cache
	fs              source.Filesystem
	resolver        *resolver.Resolver
	resolverOptions []resolver.Option
	parser          Parser
	logger          logging.Logger
	counters        *metric.Counters
	workers         int
	group           singleflight.Group
	waits           *waitGraph
	hits            int64
	misses          int64
}

// Stats represents session cache statistics
type Stats struct {
	Hits    int64
	Misses  int64
	Modules int
}

// ID returns session id
func (s *Session) ID() string {
	return s.id
}

// Cache returns session module cache
func (s *Session) Cache() *module.Cache {
	return s.cache
}

// Workers returns ImportAll concurrency
func (s *Session) Workers() int {
	return s.workers
}

// Resolver returns session path resolver
func (s *Session) Resolver() *resolver.Resolver {
	return s.resolver
}

// Stats returns cache statistics
func (s *Session) Stats() Stats {
	return Stats{Hits: atomic.LoadInt64(&s.hits), Misses: atomic.LoadInt64(&s.misses), Modules: s.cache.Len()}
}

// Import returns the artifact for identity, loading it when it is not yet cached.
// Loading resolves the source file, reads, parses and type checks it; the artifact is cached only when every step succeeded.
func (s *Session) Import(ctx context.Context, identity module.Identity, roots []string, typechecker Typechecker) (*module.Artifact, error) {
	if identity.IsZero() {
		return nil, fmt.Errorf("module identity was empty")
	}
	if typechecker == nil {
		return nil, fmt.Errorf("typechecker was nil for %v", identity)
	}
	ctx = logging.WithSession(ctx, s.id)
	onDone := s.counters.Import.Begin(time.Now())
	if artifact, ok := s.cache.Lookup(identity); ok {
		atomic.AddInt64(&s.hits, 1)
		onDone(time.Now(), metric.CacheHit)
		s.logger.Debugc(ctx, "module cache hit", "module", identity.String())
		return artifact, nil
	}
	chain := chainOf(ctx)
	if cycle := chainCycle(chain, identity); cycle != nil {
		err := &CycleError{Chain: cycle}
		onDone(time.Now(), err)
		return nil, err
	}
	if len(chain) > 0 {
		waiter := chain[len(chain)-1]
		if cycle := s.waits.add(waiter, identity); cycle != nil {
			err := &CycleError{Chain: cycle}
			onDone(time.Now(), err)
			return nil, err
		}
		defer s.waits.remove(waiter, identity)
	}
	value, err, shared := s.group.Do(identity.Key(), func() (interface{}, error) {
		if artifact, ok := s.cache.Lookup(identity); ok {
			return artifact, nil
		}
		atomic.AddInt64(&s.misses, 1)
		return s.load(withChain(ctx, identity), identity, roots, typechecker)
	})
	if err != nil {
		onDone(time.Now(), err)
		if len(chain) == 0 {
			s.logger.Warnc(ctx, "module import failed", "module", identity.String(), "shared", shared, "error", err.Error())
		} else {
			s.logger.Debugc(ctx, "dependency import failed", "module", identity.String(), "importer", chain[len(chain)-1].String(), "error", err.Error())
		}
		return nil, err
	}
	onDone(time.Now(), metric.CacheMiss)
	return value.(*module.Artifact), nil
}

func (s *Session) load(ctx context.Context, identity module.Identity, roots []string, typechecker Typechecker) (*module.Artifact, error) {
	name := identity.String()
	started := time.Now()
	onDone := s.counters.Resolve.Begin(started)
	location, err := s.resolver.Resolve(ctx, identity, roots)
	done(onDone, err)
	if err != nil {
		return nil, err
	}
	contents, err := s.fs.Read(ctx, location)
	if err != nil {
		return nil, &IOError{Path: location, Err: err}
	}
	onDone = s.counters.Parse.Begin(time.Now())
	aModule, err := s.parser.Parse(name, location, contents)
	done(onDone, err)
	if err != nil {
		return nil, err
	}
	onDone = s.counters.Typecheck.Begin(time.Now())
	info, err := typechecker.Typecheck(ctx, aModule)
	if err == nil && info == nil {
		err = fmt.Errorf("typechecker returned no type information for %v", name)
	}
	done(onDone, err)
	if err != nil {
		return nil, err
	}
	artifact := s.cache.Put(identity, module.NewArtifact(identity, location, aModule, info))
	s.logger.Infoc(ctx, "module imported", "module", name, "path", location, "elapsed", time.Since(started).String())
	return artifact, nil
}

// ImportAll imports modules using a bounded worker pool, artifacts are returned in input order.
// The first error in input order is returned.
func (s *Session) ImportAll(ctx context.Context, identities []module.Identity, roots []string, typechecker Typechecker) ([]*module.Artifact, error) {
	result := make([]*module.Artifact, len(identities))
	errs := NewErrors(len(identities))
	limiter := make(chan bool, s.workers)
	wg := sync.WaitGroup{}
	for i := range identities {
		wg.Add(1)
		limiter <- true
		go func(index int) {
			defer func() {
				<-limiter
				wg.Done()
			}()
			artifact, err := s.Import(ctx, identities[index], roots, typechecker)
			if err != nil {
				errs.AddError(err, index)
				return
			}
			result[index] = artifact
		}(i)
	}
	wg.Wait()
	if err := errs.Error(); err != nil {
		s.logger.Errorc(logging.WithSession(ctx, s.id), "modules import failed", "modules", len(identities), "error", err.Error())
		return nil, err
	}
	return result, nil
}

func done(onDone counter.OnDone, err error) {
	if err != nil {
		onDone(time.Now(), err)
		return
	}
	onDone(time.Now())
}

func (s *Session) init() {
	if s.id == "" {
		s.id = uuid.New().String()
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	if s.fs == nil {
		s.fs = source.New(afs.New())
	}
	if s.resolver == nil {
		opts := append([]resolver.Option{resolver.WithLogger(s.logger)}, s.resolverOptions...)
		s.resolver = resolver.New(s.fs, opts...)
	}
	if s.parser == nil {
		s.parser = parser.New()
	}
	if s.counters == nil {
		s.counters = metric.New(nil)
	}
	if s.workers <= 0 {
		s.workers = defaultWorkers
	}
}

// NewSession creates a compilation session
func NewSession(opts ...Option) *Session {
	ret := &Session{
		cache: module.NewCache(),
		waits: newWaitGraph(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.init()
	return ret
}

// Counts returns started operation count per pipeline step
func (s *Session) Counts() map[string]int64 {
	return s.counters.Counts()
}
