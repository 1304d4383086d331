package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/dslx/checker"
	"github.com/viant/dslx/cmd/options"
	"github.com/viant/dslx/config"
	"github.com/viant/dslx/importer"
	"github.com/viant/dslx/logging"
	"github.com/viant/dslx/module"
	"github.com/viant/dslx/source"
	"github.com/viant/gmetric"
)

// Service executes CLI commands
type Service struct {
	fs     afs.Service
	stdout io.Writer
	stderr io.Writer
}

// Exec executes selected command
func (s *Service) Exec(ctx context.Context, opts *options.Options) error {
	if opts.Resolve != nil {
		return s.resolve(ctx, opts.Resolve)
	}
	if opts.Import != nil {
		return s.importModules(ctx, opts.Import)
	}
	return fmt.Errorf("command was empty")
}

func (s *Service) resolve(ctx context.Context, opts *options.Resolve) error {
	cfg, err := s.config(ctx, &opts.Session)
	if err != nil {
		return err
	}
	session := s.newSession(cfg)
	identities, err := identities(opts.Modules)
	if err != nil {
		return err
	}
	for _, identity := range identities {
		location, err := session.Resolver().Resolve(ctx, identity, cfg.SearchRoots)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.stdout, "%v\t%v\n", identity, location)
	}
	return nil
}

func (s *Service) importModules(ctx context.Context, opts *options.Import) error {
	cfg, err := s.importConfig(ctx, opts)
	if err != nil {
		return err
	}
	session := s.newSession(cfg)
	identities, err := identities(opts.Modules)
	if err != nil {
		return err
	}
	_, importErr := session.ImportAll(ctx, identities, cfg.SearchRoots, checker.New(session, cfg.SearchRoots))
	report := s.report(session, cfg.Metrics)
	if importErr != nil {
		report.Error = importErr.Error()
	}
	data, err := report.Encode()
	if err != nil {
		return errors.Wrap(err, "failed to encode import report")
	}
	if opts.Report != "" {
		if err = s.fs.Upload(ctx, opts.Report, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
			return errors.Wrapf(err, "failed to upload report %v", opts.Report)
		}
	} else {
		fmt.Fprintln(s.stdout, string(data))
	}
	return importErr
}

func (s *Service) report(session *importer.Session, withMetrics bool) *Report {
	ret := &Report{SessionID: session.ID(), Modules: Modules{}, Stats: &Stats{Stats: session.Stats()}}
	cache := session.Cache()
	for _, identity := range cache.Identities() {
		ret.Modules = append(ret.Modules, NewModuleReport(cache.Get(identity)))
	}
	if withMetrics {
		counts := session.Counts()
		for name, count := range counts {
			ret.Stats.Metrics = append(ret.Stats.Metrics, &Metric{Name: name, Count: count})
		}
		sort.Slice(ret.Stats.Metrics, func(i, j int) bool {
			return ret.Stats.Metrics[i].Name < ret.Stats.Metrics[j].Name
		})
	}
	return ret
}

func (s *Service) importConfig(ctx context.Context, opts *options.Import) (*config.Config, error) {
	cfg, err := s.config(ctx, &opts.Session)
	if err != nil {
		return nil, err
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Metrics {
		cfg.Metrics = true
	}
	return cfg, nil
}

func (s *Service) config(ctx context.Context, opts *options.Session) (*config.Config, error) {
	cfg := config.New()
	if opts.ConfigURL != "" {
		var err error
		if cfg, err = config.NewConfigFromURL(ctx, opts.ConfigURL); err != nil {
			return nil, err
		}
	}
	cfg.SearchRoots = append(cfg.SearchRoots, opts.Roots...)
	if opts.WorkingDir != "" {
		cfg.WorkingDir = opts.WorkingDir
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, cfg.Validate()
}

func (s *Service) newSession(cfg *config.Config) *importer.Session {
	logger := logging.New(cfg.LogLevel, s.stderr)
	sessionOptions := []importer.Option{
		importer.WithFilesystem(source.New(s.fs, cfg.SourceOptions()...)),
		importer.WithResolverOptions(cfg.ResolverOptions()...),
		importer.WithLogger(logger),
		importer.WithWorkers(cfg.Workers),
	}
	if cfg.Metrics {
		sessionOptions = append(sessionOptions, importer.WithMetrics(gmetric.New()))
	}
	return importer.NewSession(sessionOptions...)
}

func identities(names []string) ([]module.Identity, error) {
	var result = make([]module.Identity, 0, len(names))
	for _, name := range names {
		identity, err := module.ParseIdentity(name)
		if err != nil {
			return nil, err
		}
		result = append(result, identity)
	}
	return result, nil
}

// New creates a command service
func New() *Service {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a command service writing command output to stdout and logs to stderr
func NewWithWriters(stdout, stderr io.Writer) *Service {
	return &Service{fs: afs.New(), stdout: stdout, stderr: stderr}
}
