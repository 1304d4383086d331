package source

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/option"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Filesystem represents file access used by module resolution and loading
type Filesystem interface {
	//Exists returns true if file exists, relative locations are resolved against working directory
	Exists(ctx context.Context, location string) bool
	//Read returns file content
	Read(ctx context.Context, location string) ([]byte, error)
	//WorkingDir returns working directory
	WorkingDir() string
}

type service struct {
	fs         afs.Service
	workingDir string
	options    []storage.Option
}

func (s *service) Exists(ctx context.Context, location string) bool {
	URL := s.absolute(location)
	options := append([]storage.Option{option.NewObjectKind(true)}, s.options...)
	ok, err := s.fs.Exists(ctx, URL, options...)
	if err != nil || !ok {
		return false
	}
	object, err := s.fs.Object(ctx, URL, s.options...)
	if err != nil {
		return false
	}
	return !object.IsDir()
}

func (s *service) Read(ctx context.Context, location string) ([]byte, error) {
	URL := s.absolute(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %v", URL)
	}
	return data, nil
}

func (s *service) WorkingDir() string {
	return s.workingDir
}

func (s *service) absolute(location string) string {
	if location == "" || s.workingDir == "" || !url.IsRelative(location) {
		return location
	}
	return url.Join(s.workingDir, location)
}

// New creates afs backed filesystem
func New(fs afs.Service, opts ...Option) Filesystem {
	ret := &service{fs: fs}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.workingDir == "" {
		ret.workingDir, _ = os.Getwd()
	}
	return ret
}
