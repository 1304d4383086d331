package importer

import (
	"github.com/viant/dslx/logging"
	"github.com/viant/dslx/metric"
	"github.com/viant/dslx/resolver"
	"github.com/viant/dslx/source"
	"github.com/viant/gmetric"
)

// Option represents session option
type Option func(s *Session)

// WithFilesystem sets module source filesystem
func WithFilesystem(fs source.Filesystem) Option {
	return func(s *Session) {
		s.fs = fs
	}
}

// WithResolver sets path resolver, the resolver is expected to use the session filesystem
func WithResolver(aResolver *resolver.Resolver) Option {
	return func(s *Session) {
		s.resolver = aResolver
	}
}

// WithResolverOptions sets options used to create default resolver
func WithResolverOptions(opts ...resolver.Option) Option {
	return func(s *Session) {
		s.resolverOptions = append(s.resolverOptions, opts...)
	}
}

// WithParser sets module parser
func WithParser(parser Parser) Option {
	return func(s *Session) {
		s.parser = parser
	}
}

// WithLogger sets logger
func WithLogger(logger logging.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMetrics registers session counters with metric service
func WithMetrics(service *gmetric.Service) Option {
	return func(s *Session) {
		s.counters = metric.New(service)
	}
}

// WithWorkers sets ImportAll concurrency
func WithWorkers(workers int) Option {
	return func(s *Session) {
		s.workers = workers
	}
}

// WithID sets session id
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}
