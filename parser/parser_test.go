package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/dslx/ast"
)

func TestParser_Parse(t *testing.T) {
	var useCases = []struct {
		description string
		input       string
		imports     []ast.Import
		members     []string
		public      []string
		references  []string
	}{
		{
			description: "imports with alias",
			input: `// header
import std;
import foo.bar as baz;
`,
			imports: []ast.Import{
				{Subject: "std", Pos: ast.Position{Offset: 10, Line: 2, Column: 1}},
				{Subject: "foo.bar", Alias: "baz", Pos: ast.Position{Offset: 22, Line: 3, Column: 1}},
			},
		},
		{
			description: "members and references",
			input: `import std;

#[test]
fn helper(x: u32) -> u32 { std::clog2(x) }

pub const WIDTH = u32:8;

pub struct Point { x: bits[WIDTH], y: u32 }

/* block
   comment */
pub fn main(p: Point) -> u32 {
    let m = std::mask_bits<u32:4>();
    // std::ignored
    helper(p.y) + m
}

type Word = uN[std::WORD];
`,
			imports:    []ast.Import{{Subject: "std", Pos: ast.Position{Offset: 0, Line: 1, Column: 1}}},
			members:    []string{"helper", "WIDTH", "Point", "main", "Word"},
			public:     []string{"WIDTH", "Point", "main"},
			references: []string{"helper:std::clog2", "main:std::mask_bits", "Word:std::WORD"},
		},
		{
			description: "apostrophe in body comment",
			input:       "fn f() -> u32 {\n  // it's fine\n  lib::one()\n}\n\npub fn g() -> u32 { u32:2 }\n",
			members:     []string{"f", "g"},
			public:      []string{"g"},
			references:  []string{"f:lib::one"},
		},
		{
			description: "brackets inside comments and strings",
			input: `fn f() -> u32 {
  /* } unbalanced ( */
  trace_fmt!("}{ lib::fake {}", lib::one());
  u32:1
}
pub fn g(x: u32) -> u32 { x } // don't
`,
			members:    []string{"f", "g"},
			public:     []string{"g"},
			references: []string{"f:lib::one"},
		},
		{
			description: "unpaired apostrophe in last body",
			input:       "pub fn last() -> u32 {\n  // isn't closed\n  u32:0\n}\n",
			members:     []string{"last"},
			public:      []string{"last"},
		},
		{
			description: "enum and proc",
			input: `enum Op : u2 { ADD = 0, SUB = 1 }
pub proc Counter { config() { () } next(state: u32) { state + u32:1 } }
`,
			members: []string{"Op", "Counter"},
			public:  []string{"Counter"},
		},
	}

	for _, useCase := range useCases {
		module, err := New().Parse("test", "test.x", []byte(useCase.input))
		if !assert.NoError(t, err, useCase.description) {
			continue
		}
		assert.Equal(t, "test", module.Name(), useCase.description)
		if useCase.imports != nil {
			assert.EqualValues(t, useCase.imports, module.Imports(), useCase.description)
		}
		var members, public []string
		for _, member := range module.Members() {
			members = append(members, member.Name)
			if member.Public {
				public = append(public, member.Name)
			}
		}
		assert.EqualValues(t, useCase.members, members, useCase.description)
		assert.EqualValues(t, useCase.public, public, useCase.description)
		var references []string
		for _, ref := range module.References() {
			references = append(references, ref.Member+":"+ref.Alias+"::"+ref.Name)
		}
		assert.EqualValues(t, useCase.references, references, useCase.description)
	}
}

func TestParser_ReferencePosition(t *testing.T) {
	module, err := New().Parse("test", "test.x", []byte("import std;\nfn f() -> u32 {\n  std::clog2(u32:3)\n}\n"))
	require.NoError(t, err)
	references := module.References()
	require.Len(t, references, 1)
	assert.Equal(t, ast.Position{Offset: 30, Line: 3, Column: 3}, references[0].Pos)
}

func TestParser_SyntaxError(t *testing.T) {
	var useCases = []struct {
		description string
		input       string
		expect      string
	}{
		{
			description: "missing semicolon",
			input:       "import std\nfn f() {}",
			expect:      "test.x:1:11: syntax error in module test: expected ';' after import std",
		},
		{
			description: "unknown keyword",
			input:       "let x = 1;",
			expect:      `test.x:1:1: syntax error in module test: unexpected "let" at module level`,
		},
		{
			description: "unterminated body",
			input:       "fn f() {",
			expect:      "test.x:1:1: syntax error in module test: fn f has no body or body is not terminated",
		},
		{
			description: "public import",
			input:       "pub import std;",
			expect:      "test.x:1:1: syntax error in module test: import cannot be public",
		},
	}
	for _, useCase := range useCases {
		_, err := New().Parse("test", "test.x", []byte(useCase.input))
		syntaxErr := &SyntaxError{}
		if !assert.True(t, errors.As(err, &syntaxErr), useCase.description) {
			continue
		}
		assert.Equal(t, useCase.expect, err.Error(), useCase.description)
	}
}
