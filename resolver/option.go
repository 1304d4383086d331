package resolver

import (
	"github.com/viant/dslx/logging"
	"github.com/viant/dslx/source"
)

// Option represents resolver option
type Option func(r *Resolver)

// WithResources sets packaged resources locator
func WithResources(resources source.Resources) Option {
	return func(r *Resolver) {
		r.resources = resources
	}
}

// WithExtension sets source file extension
func WithExtension(ext string) Option {
	return func(r *Resolver) {
		r.extension = ext
	}
}

// WithStdlib sets standard library directory and reserved names
func WithStdlib(dir string, names ...string) Option {
	return func(r *Resolver) {
		r.stdlibDir = dir
		if len(names) > 0 {
			r.stdlibNames = asSet(names)
		}
	}
}

// WithLogger sets logger
func WithLogger(logger logging.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}
