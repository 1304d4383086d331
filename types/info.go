package types

import (
	"fmt"
	"sort"

	"github.com/viant/dslx/ast"
)

// Symbol represents module scope binding
type Symbol struct {
	Name   string
	Kind   ast.Kind
	Public bool
	Module string
}

// Info represents module type environment.
// Info is immutable; imported environments are shared by reference with other modules.
type Info struct {
	module  string
	symbols map[string]Symbol
	imports map[string]*Info
}

// Module returns fully qualified module name
func (i *Info) Module() string {
	return i.module
}

// Lookup returns module scope symbol
func (i *Info) Lookup(name string) (Symbol, bool) {
	ret, ok := i.symbols[name]
	return ret, ok
}

// Symbols returns module symbols sorted by name
func (i *Info) Symbols() []Symbol {
	var result = make([]Symbol, 0, len(i.symbols))
	for _, symbol := range i.symbols {
		result = append(result, symbol)
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].Name < result[b].Name
	})
	return result
}

// Import returns imported module environment bound to binding name
func (i *Info) Import(binding string) (*Info, bool) {
	ret, ok := i.imports[binding]
	return ret, ok
}

// Imports returns sorted import binding names
func (i *Info) Imports() []string {
	var result = make([]string, 0, len(i.imports))
	for binding := range i.imports {
		result = append(result, binding)
	}
	sort.Strings(result)
	return result
}

// Builder builds Info
type Builder struct {
	module  string
	symbols map[string]Symbol
	imports map[string]*Info
}

// AddImport binds imported module environment
func (b *Builder) AddImport(binding string, info *Info) error {
	if info == nil {
		return fmt.Errorf("import %v had no type information", binding)
	}
	if _, ok := b.imports[binding]; ok {
		return fmt.Errorf("duplicate import binding: %v", binding)
	}
	if _, ok := b.symbols[binding]; ok {
		return fmt.Errorf("import binding %v collides with module member", binding)
	}
	b.imports[binding] = info
	return nil
}

// AddSymbol adds module scope symbol
func (b *Builder) AddSymbol(symbol Symbol) error {
	if _, ok := b.symbols[symbol.Name]; ok {
		return fmt.Errorf("duplicate definition: %v", symbol.Name)
	}
	if _, ok := b.imports[symbol.Name]; ok {
		return fmt.Errorf("definition %v collides with import binding", symbol.Name)
	}
	symbol.Module = b.module
	b.symbols[symbol.Name] = symbol
	return nil
}

// Build returns immutable Info
func (b *Builder) Build() *Info {
	ret := &Info{
		module:  b.module,
		symbols: make(map[string]Symbol, len(b.symbols)),
		imports: make(map[string]*Info, len(b.imports)),
	}
	for k, v := range b.symbols {
		ret.symbols[k] = v
	}
	for k, v := range b.imports {
		ret.imports[k] = v
	}
	return ret
}

// NewBuilder creates Info builder
func NewBuilder(module string) *Builder {
	return &Builder{
		module:  module,
		symbols: map[string]Symbol{},
		imports: map[string]*Info{},
	}
}
