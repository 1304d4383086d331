package resolver

import (
	"context"
	"path"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/dslx/logging"
	"github.com/viant/dslx/module"
	"github.com/viant/dslx/source"
)

const (
	DefaultExtension = ".x"
	DefaultStdlibDir = "stdlib"
)

// DefaultStdlibNames represents reserved standard library module names
var DefaultStdlibNames = []string{"std", "float32", "bfloat16"}

// Resolver locates module source files
type Resolver struct {
	fs          source.Filesystem
	resources   source.Resources
	extension   string
	stdlibDir   string
	stdlibNames map[string]bool
	logger      logging.Logger
}

// Resolve returns location of an existing source file for the identity.
//
// Candidates are probed in order: primary relative to working directory, primary through packaged
// resources, fallback (first segment dropped) relative to working directory, fallback through packaged
// resources, then primary and fallback under each extra root. The first existing file wins.
func (r *Resolver) Resolve(ctx context.Context, identity module.Identity, extraRoots []string) (string, error) {
	primary, fallback, hasFallback := r.candidates(identity)
	aSearch := &search{ctx: ctx, resolver: r}

	r.logger.Debugc(ctx, "attempting working directory relative import path", "module", identity.String())
	if found, ok := aSearch.try("", primary); ok {
		return found, nil
	}
	r.logger.Debugc(ctx, "attempting packaged resource import path", "path", primary)
	if found, ok := aSearch.tryResource(primary); ok {
		return found, nil
	}
	if hasFallback {
		r.logger.Debugc(ctx, "attempting working directory parent import path", "path", fallback)
		if found, ok := aSearch.try("", fallback); ok {
			return found, nil
		}
		r.logger.Debugc(ctx, "attempting packaged resource parent import path", "path", fallback)
		if found, ok := aSearch.tryResource(fallback); ok {
			return found, nil
		}
	}
	for _, root := range extraRoots {
		r.logger.Debugc(ctx, "attempting search path root", "root", root)
		if found, ok := aSearch.try(root, primary); ok {
			return found, nil
		}
		if !hasFallback {
			continue
		}
		if found, ok := aSearch.try(root, fallback); ok {
			return found, nil
		}
	}
	return "", &NotFoundError{
		Identity:   identity,
		Attempted:  aSearch.attempted,
		WorkingDir: r.fs.WorkingDir(),
	}
}

// IsStdlib returns true if identity names reserved standard library module
func (r *Resolver) IsStdlib(identity module.Identity) bool {
	return identity.Len() == 1 && r.stdlibNames[identity.Key()]
}

// Extension returns source file extension
func (r *Resolver) Extension() string {
	return r.extension
}

func (r *Resolver) candidates(identity module.Identity) (string, string, bool) {
	if r.IsStdlib(identity) {
		return path.Join(r.stdlibDir, identity.Key()+r.extension), "", false
	}
	fallback, ok := identity.ParentRelativePath(r.extension)
	return identity.RelativePath(r.extension), fallback, ok
}

type search struct {
	ctx       context.Context
	resolver  *Resolver
	attempted []string
}

func (s *search) try(base, relative string) (string, bool) {
	location := joinPath(base, relative)
	return location, s.probe(location)
}

func (s *search) tryResource(relative string) (string, bool) {
	location, err := s.resolver.resources.Locate(relative)
	if err != nil {
		return "", false
	}
	return location, s.probe(location)
}

func (s *search) probe(location string) bool {
	s.resolver.logger.Debugc(s.ctx, "trying path", "path", location)
	s.attempted = append(s.attempted, location)
	if !s.resolver.fs.Exists(s.ctx, location) {
		return false
	}
	s.resolver.logger.Debugc(s.ctx, "found existing file for import path", "path", location)
	return true
}

func joinPath(base, relative string) string {
	if base == "" {
		return relative
	}
	if strings.Contains(base, "://") {
		return url.Join(base, relative)
	}
	return path.Join(base, relative)
}

// New creates a resolver
func New(fs source.Filesystem, opts ...Option) *Resolver {
	ret := &Resolver{fs: fs}
	for _, opt := range opts {
		opt(ret)
	}
	ret.init()
	return ret
}

func (r *Resolver) init() {
	if r.resources == nil {
		r.resources = source.Unavailable()
	}
	if r.extension == "" {
		r.extension = DefaultExtension
	}
	if !strings.HasPrefix(r.extension, ".") {
		r.extension = "." + r.extension
	}
	if r.stdlibDir == "" {
		r.stdlibDir = DefaultStdlibDir
	}
	if r.stdlibNames == nil {
		r.stdlibNames = asSet(DefaultStdlibNames)
	}
	if r.logger == nil {
		r.logger = logging.Nop()
	}
}

func asSet(names []string) map[string]bool {
	var result = make(map[string]bool, len(names))
	for _, name := range names {
		result[name] = true
	}
	return result
}
