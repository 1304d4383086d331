package checker

import (
	"fmt"

	"github.com/viant/dslx/ast"
)

// TypeError represents module type checking error
type TypeError struct {
	Module  string
	Path    string
	Pos     ast.Position
	Message string
	Err     error
}

func (e *TypeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v:%v: type error in module %v: %v: %v", e.Path, e.Pos, e.Module, e.Message, e.Err)
	}
	return fmt.Sprintf("%v:%v: type error in module %v: %v", e.Path, e.Pos, e.Module, e.Message)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
