package module

import (
	"github.com/viant/dslx/ast"
	"github.com/viant/dslx/types"
)

// Artifact represents a parsed and type checked module.
// An artifact is created only once both phases succeeded and is never modified afterwards.
type Artifact struct {
	identity Identity
	path     string
	module   *ast.Module
	info     *types.Info
}

// Identity returns module identity
func (a *Artifact) Identity() Identity {
	return a.identity
}

// Path returns source location the module was loaded from
func (a *Artifact) Path() string {
	return a.path
}

// Module returns parsed module
func (a *Artifact) Module() *ast.Module {
	return a.module
}

// TypeInfo returns module type environment
func (a *Artifact) TypeInfo() *types.Info {
	return a.info
}

// NewArtifact creates an artifact
func NewArtifact(identity Identity, path string, module *ast.Module, info *types.Info) *Artifact {
	return &Artifact{
		identity: identity,
		path:     path,
		module:   module,
		info:     info,
	}
}
