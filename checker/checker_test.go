package checker_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/dslx/checker"
	"github.com/viant/dslx/importer"
	"github.com/viant/dslx/module"
	"github.com/viant/dslx/source"
)

func TestChecker_Typecheck(t *testing.T) {
	ctx := context.Background()
	baseURL := "mem://localhost/checker/case001"
	fs := afs.New()
	files := map[string]string{
		"lib.x": "pub const WIDTH = u32:8;\nconst SECRET = u32:1;\npub struct Pair { a: u32, b: u32 }\n",
	}
	for name, content := range files {
		require.NoError(t, fs.Upload(ctx, baseURL+"/"+name, file.DefaultFileOsMode, strings.NewReader(content)))
	}

	var useCases = []struct {
		description string
		input       string
		expectErr   string
		symbols     []string
	}{
		{
			description: "valid references",
			input: `import lib;
enum Op : u1 { A = 0, B = 1 }
pub fn f(p: lib::Pair) -> uN[lib::WIDTH] { let op = Op::A; let m = u32::MAX; p.a }
`,
			symbols: []string{"Op", "f"},
		},
		{
			description: "unknown alias",
			input:       "fn f() -> u32 { other::g() }",
			expectErr:   `main.x:1:17: type error in module main: cannot find a definition for name: "other"`,
		},
		{
			description: "unknown symbol",
			input:       "import lib;\nfn f() -> u32 { lib::MISSING }",
			expectErr:   `main.x:2:17: type error in module main: name "MISSING" does not exist in module lib`,
		},
		{
			description: "private symbol",
			input:       "import lib;\nfn f() -> u32 { lib::SECRET }",
			expectErr:   `main.x:2:17: type error in module main: attempted to refer to module lib member "SECRET" which is not public`,
		},
		{
			description: "duplicate import binding",
			input:       "import lib;\nimport lib;\n",
			expectErr:   "main.x:2:1: type error in module main: duplicate import binding: lib",
		},
		{
			description: "member collides with import",
			input:       "import lib;\nfn lib() {}\n",
			expectErr:   "main.x:2:1: type error in module main: definition lib collides with import binding",
		},
		{
			description: "missing import",
			input:       "import nowhere;\n",
			expectErr:   "could not find DSLX file for import; attempted: [ nowhere.x ]; working directory: " + baseURL,
		},
	}

	for _, useCase := range useCases {
		require.NoError(t, fs.Upload(ctx, baseURL+"/main.x", file.DefaultFileOsMode, strings.NewReader(useCase.input)), useCase.description)
		session := importer.NewSession(importer.WithFilesystem(source.New(fs, source.WithWorkingDir(baseURL))))
		artifact, err := session.Import(ctx, module.MustIdentity("main"), nil, checker.New(session, nil))
		if useCase.expectErr != "" {
			assert.EqualError(t, err, useCase.expectErr, useCase.description)
			continue
		}
		if !assert.NoError(t, err, useCase.description) {
			continue
		}
		var symbols []string
		for _, symbol := range artifact.TypeInfo().Symbols() {
			symbols = append(symbols, symbol.Name)
			assert.Equal(t, "main", symbol.Module, useCase.description)
		}
		assert.Equal(t, useCase.symbols, symbols, useCase.description)
	}
}

func TestTypeError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &checker.TypeError{Module: "m", Path: "m.x", Message: "cannot import x", Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "m.x:0:0: type error in module m: cannot import x: cause", err.Error())
}
