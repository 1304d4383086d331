package source

import (
	"errors"
	"path"
	"strings"

	_ "github.com/viant/afs/embed"
	"github.com/viant/afs/url"
)

// ErrUnavailable is returned when packaged resources are not supported
var ErrUnavailable = errors.New("packaged resources are unavailable")

const embedScheme = "embed:///"

// Resources maps a relative path to a location inside a packaged resource tree
type Resources interface {
	Locate(relative string) (string, error)
}

type unavailable struct{}

func (u unavailable) Locate(_ string) (string, error) {
	return "", ErrUnavailable
}

// Unavailable returns resources that never resolve
func Unavailable() Resources {
	return unavailable{}
}

type embedded struct {
	root string
}

func (e *embedded) Locate(relative string) (string, error) {
	relative = strings.TrimLeft(relative, "/")
	if relative == "" {
		return "", ErrUnavailable
	}
	return embedScheme + path.Join(e.root, relative), nil
}

// NewEmbedded returns resources located in an embedded file system under root,
// the file system itself has to be passed to Filesystem with WithEmbedFS.
func NewEmbedded(root string) Resources {
	return &embedded{root: strings.Trim(root, "/")}
}

type directory struct {
	baseURL string
}

func (d *directory) Locate(relative string) (string, error) {
	relative = strings.TrimLeft(relative, "/")
	if relative == "" {
		return "", ErrUnavailable
	}
	return url.Join(d.baseURL, relative), nil
}

// NewDirectory returns resources located under base URL
func NewDirectory(baseURL string) Resources {
	if baseURL == "" {
		return Unavailable()
	}
	return &directory{baseURL: baseURL}
}
