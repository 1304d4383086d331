package source

import (
	"embed"
)

// Option represents filesystem option
type Option func(s *service)

// WithWorkingDir sets working directory, relative locations are resolved against it
func WithWorkingDir(dir string) Option {
	return func(s *service) {
		s.workingDir = dir
	}
}

// WithEmbedFS sets embedded file system used to serve embed:// locations
func WithEmbedFS(fs *embed.FS) Option {
	return func(s *service) {
		if fs == nil {
			return
		}
		s.options = append(s.options, fs)
	}
}
