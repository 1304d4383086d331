package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/dslx/bundle"
	"github.com/viant/dslx/logging"
	"github.com/viant/dslx/resolver"
	"github.com/viant/dslx/source"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

// Config represents import session configuration
type Config struct {
	SearchRoots       []string
	WorkingDir        string
	StdlibDir         string
	StdlibNames       []string
	Extension         string
	ResourceURL       string
	EmbeddedResources *bool
	LogLevel          string
	Workers           int
	Metrics           bool
}

// Init initialises defaults
func (c *Config) Init() {
	if c.StdlibDir == "" {
		c.StdlibDir = resolver.DefaultStdlibDir
	}
	if len(c.StdlibNames) == 0 {
		c.StdlibNames = append([]string{}, resolver.DefaultStdlibNames...)
	}
	if c.Extension == "" {
		c.Extension = resolver.DefaultExtension
	}
	if c.LogLevel == "" {
		c.LogLevel = logging.INFO
	}
	if c.EmbeddedResources == nil {
		embedded := true
		c.EmbeddedResources = &embedded
	}
}

// Validate checks if config is valid
func (c *Config) Validate() error {
	for i, root := range c.SearchRoots {
		if strings.TrimSpace(root) == "" {
			return fmt.Errorf("search root[%v] was empty", i)
		}
	}
	for _, name := range c.StdlibNames {
		if name == "" || strings.ContainsAny(name, "./") {
			return fmt.Errorf("invalid stdlib name: %q", name)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %v", c.Workers)
	}
	switch strings.ToUpper(c.LogLevel) {
	case logging.DEBUG, logging.INFO, logging.WARN, logging.ERROR:
	default:
		return fmt.Errorf("unsupported log level: %v", c.LogLevel)
	}
	return nil
}

// Resources returns packaged resources locator
func (c *Config) Resources() source.Resources {
	if c.ResourceURL != "" {
		return source.NewDirectory(c.ResourceURL)
	}
	if c.EmbeddedResources != nil && *c.EmbeddedResources {
		return bundle.Resources()
	}
	return source.Unavailable()
}

// SourceOptions returns filesystem options
func (c *Config) SourceOptions() []source.Option {
	var result []source.Option
	if c.WorkingDir != "" {
		result = append(result, source.WithWorkingDir(c.WorkingDir))
	}
	if c.EmbeddedResources != nil && *c.EmbeddedResources {
		result = append(result, source.WithEmbedFS(bundle.EmbedFS()))
	}
	return result
}

// ResolverOptions returns path resolver options
func (c *Config) ResolverOptions() []resolver.Option {
	return []resolver.Option{
		resolver.WithResources(c.Resources()),
		resolver.WithExtension(c.Extension),
		resolver.WithStdlib(c.StdlibDir, c.StdlibNames...),
	}
}

// New creates default config
func New() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// NewConfigFromURL loads YAML or JSON config
func NewConfigFromURL(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %v", URL)
	}
	aMap := map[string]interface{}{}
	if strings.HasSuffix(URL, "yaml") || strings.HasSuffix(URL, "yml") {
		if err := yaml.Unmarshal(data, &aMap); err != nil {
			return nil, errors.Wrapf(err, "invalid config %v", URL)
		}
	} else {
		if err := json.Unmarshal(data, &aMap); err != nil {
			return nil, errors.Wrapf(err, "invalid config %v", URL)
		}
	}
	cfg := &Config{}
	if err = toolbox.DefaultConverter.AssignConverted(cfg, aMap); err != nil {
		return nil, errors.Wrapf(err, "failed to assign config %v", URL)
	}
	cfg.Init()
	return cfg, cfg.Validate()
}
