package importer

import (
	"context"

	"github.com/viant/dslx/ast"
	"github.com/viant/dslx/types"
)

// Parser parses module source
type Parser interface {
	Parse(name, path string, contents []byte) (*ast.Module, error)
}

// Typechecker builds type environment for a parsed module.
// Implementations import module dependencies through the same session.
type Typechecker interface {
	Typecheck(ctx context.Context, module *ast.Module) (*types.Info, error)
}

// TypecheckerFunc adapts function to Typechecker
type TypecheckerFunc func(ctx context.Context, module *ast.Module) (*types.Info, error)

func (f TypecheckerFunc) Typecheck(ctx context.Context, module *ast.Module) (*types.Info, error) {
	return f(ctx, module)
}
