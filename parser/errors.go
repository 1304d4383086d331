package parser

import (
	"fmt"

	"github.com/viant/dslx/ast"
)

// SyntaxError represents module parsing error
type SyntaxError struct {
	Path    string
	Module  string
	Pos     ast.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v:%v: syntax error in module %v: %v", e.Path, e.Pos, e.Module, e.Message)
}

func newSyntaxError(module, path string, pos ast.Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Path: path, Module: module, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
