package checker

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/viant/dslx/ast"
	"github.com/viant/dslx/importer"
	"github.com/viant/dslx/module"
	"github.com/viant/dslx/types"
)

var builtinType = regexp.MustCompile(`^([us][0-9]+|uN|sN|xN|bits|bool|token)$`)

// Importer imports module dependencies
type Importer interface {
	Import(ctx context.Context, identity module.Identity, roots []string, typechecker importer.Typechecker) (*module.Artifact, error)
}

// Checker binds module imports and validates qualified references.
// Every import is loaded recursively through the importer with the same search roots.
type Checker struct {
	importer Importer
	roots    []string
}

// Typecheck builds module type environment
func (c *Checker) Typecheck(ctx context.Context, aModule *ast.Module) (*types.Info, error) {
	builder := types.NewBuilder(aModule.Name())
	for _, anImport := range aModule.Imports() {
		identity, err := module.NewIdentity(anImport.Segments()...)
		if err != nil {
			return nil, c.errorf(aModule, anImport.Pos, err, "invalid import %v", anImport.Subject)
		}
		artifact, err := c.importer.Import(ctx, identity, c.roots, c)
		if err != nil {
			cycleErr := &importer.CycleError{}
			if errors.As(err, &cycleErr) {
				return nil, c.errorf(aModule, anImport.Pos, err, "cannot import %v", anImport.Subject)
			}
			return nil, err
		}
		if err = builder.AddImport(anImport.Binding(), artifact.TypeInfo()); err != nil {
			return nil, c.errorf(aModule, anImport.Pos, nil, "%v", err)
		}
	}
	for _, member := range aModule.Members() {
		symbol := types.Symbol{Name: member.Name, Kind: member.Kind, Public: member.Public}
		if err := builder.AddSymbol(symbol); err != nil {
			return nil, c.errorf(aModule, member.Pos, nil, "%v", err)
		}
	}
	info := builder.Build()
	for _, reference := range aModule.References() {
		if err := c.checkReference(aModule, info, reference); err != nil {
			return nil, err
		}
	}
	return info, nil
}

func (c *Checker) checkReference(aModule *ast.Module, info *types.Info, reference ast.Reference) error {
	imported, ok := info.Import(reference.Alias)
	if !ok {
		if _, isMember := info.Lookup(reference.Alias); isMember || builtinType.MatchString(reference.Alias) {
			return nil
		}
		return c.errorf(aModule, reference.Pos, nil, "cannot find a definition for name: %q", reference.Alias)
	}
	symbol, ok := imported.Lookup(reference.Name)
	if !ok {
		return c.errorf(aModule, reference.Pos, nil, "name %q does not exist in module %v", reference.Name, imported.Module())
	}
	if !symbol.Public {
		return c.errorf(aModule, reference.Pos, nil, "attempted to refer to module %v member %q which is not public", imported.Module(), reference.Name)
	}
	return nil
}

func (c *Checker) errorf(aModule *ast.Module, pos ast.Position, err error, format string, args ...interface{}) *TypeError {
	return &TypeError{
		Module:  aModule.Name(),
		Path:    aModule.Path(),
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// New creates a checker importing dependencies from the supplied roots
func New(anImporter Importer, roots []string) *Checker {
	return &Checker{importer: anImporter, roots: roots}
}
