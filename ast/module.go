package ast

import (
	"fmt"
	"strings"
)

// Kind represents top level member kind
type Kind string

const (
	KindFunction Kind = "fn"
	KindProc     Kind = "proc"
	KindConst    Kind = "const"
	KindStruct   Kind = "struct"
	KindEnum     Kind = "enum"
	KindType     Kind = "type"
)

// Position represents source position
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type (
	// Import represents import statement, i.e. import foo.bar as baz;
	Import struct {
		Subject string
		Alias   string
		Pos     Position
	}

	// Member represents top level module definition
	Member struct {
		Kind   Kind
		Name   string
		Public bool
		Pos    Position
	}

	// Reference represents qualified alias::name reference used by a member
	Reference struct {
		Alias  string
		Name   string
		Member string
		Pos    Position
	}

	// Module represents parsed module, it exposes read only accessors
	Module struct {
		name       string
		path       string
		imports    []Import
		members    []Member
		references []Reference
	}
)

// Segments returns imported module segments
func (i Import) Segments() []string {
	return strings.Split(i.Subject, ".")
}

// Binding returns name the import is bound to within the importing module
func (i Import) Binding() string {
	if i.Alias != "" {
		return i.Alias
	}
	if index := strings.LastIndex(i.Subject, "."); index != -1 {
		return i.Subject[index+1:]
	}
	return i.Subject
}

// Name returns fully qualified module name
func (m *Module) Name() string {
	return m.name
}

// Path returns source path
func (m *Module) Path() string {
	return m.path
}

// Imports returns import statements in source order
func (m *Module) Imports() []Import {
	return append([]Import(nil), m.imports...)
}

// Members returns top level members in source order
func (m *Module) Members() []Member {
	return append([]Member(nil), m.members...)
}

// References returns qualified references in source order
func (m *Module) References() []Reference {
	return append([]Reference(nil), m.references...)
}

// Member returns member by name
func (m *Module) Member(name string) (Member, bool) {
	for _, candidate := range m.members {
		if candidate.Name == name {
			return candidate, true
		}
	}
	return Member{}, false
}

// NewModule creates a module
func NewModule(name, path string, imports []Import, members []Member, references []Reference) *Module {
	return &Module{
		name:       name,
		path:       path,
		imports:    append([]Import(nil), imports...),
		members:    append([]Member(nil), members...),
		references: append([]Reference(nil), references...),
	}
}
