// Package bundle holds packaged DSLX sources available without a checkout.
package bundle

import (
	"embed"

	"github.com/viant/dslx/source"
)

//go:embed stdlib/*.x
var embedFS embed.FS

// EmbedFS returns embedded file system
func EmbedFS() *embed.FS {
	return &embedFS
}

// Resources returns packaged resources locator
func Resources() source.Resources {
	return source.NewEmbedded("")
}
