package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/dslx/module"
	"github.com/viant/dslx/source"
)

type fakeFS struct {
	files map[string]bool
}

func (f *fakeFS) Exists(_ context.Context, location string) bool {
	return f.files[location]
}

func (f *fakeFS) Read(_ context.Context, location string) ([]byte, error) {
	if !f.files[location] {
		return nil, errors.New("not found")
	}
	return []byte{}, nil
}

func (f *fakeFS) WorkingDir() string {
	return "/work"
}

func newFakeFS(files ...string) *fakeFS {
	ret := &fakeFS{files: map[string]bool{}}
	for _, file := range files {
		ret.files[file] = true
	}
	return ret
}

type fakeResources struct{}

func (f fakeResources) Locate(relative string) (string, error) {
	return "runfiles://" + relative, nil
}

func TestResolver_Resolve(t *testing.T) {
	var useCases = []struct {
		description string
		module      string
		files       []string
		roots       []string
		resources   source.Resources
		expect      string
		attempted   []string
	}{
		{
			description: "stdlib resolved from stdlib dir regardless of roots",
			module:      "std",
			files:       []string{"stdlib/std.x", "/opt/libs/std.x"},
			roots:       []string{"/opt/libs"},
			expect:      "stdlib/std.x",
		},
		{
			description: "stdlib resolved through packaged resources",
			module:      "float32",
			files:       []string{"runfiles://stdlib/float32.x", "/opt/libs/float32.x"},
			roots:       []string{"/opt/libs"},
			resources:   fakeResources{},
			expect:      "runfiles://stdlib/float32.x",
		},
		{
			description: "working directory preferred over roots",
			module:      "foo.bar",
			files:       []string{"foo/bar.x", "/opt/libs/foo/bar.x"},
			roots:       []string{"/opt/libs"},
			expect:      "foo/bar.x",
		},
		{
			description: "packaged resource preferred over working directory fallback",
			module:      "foo.bar",
			files:       []string{"runfiles://foo/bar.x", "bar.x"},
			resources:   fakeResources{},
			expect:      "runfiles://foo/bar.x",
		},
		{
			description: "working directory fallback",
			module:      "foo.bar",
			files:       []string{"bar.x", "/opt/libs/foo/bar.x"},
			roots:       []string{"/opt/libs"},
			expect:      "bar.x",
		},
		{
			description: "fallback under root",
			module:      "foo.bar",
			files:       []string{"/opt/libs/bar.x"},
			roots:       []string{"/opt/libs"},
			expect:      "/opt/libs/bar.x",
			attempted:   []string{"foo/bar.x", "bar.x", "/opt/libs/foo/bar.x", "/opt/libs/bar.x"},
		},
		{
			description: "first root wins",
			module:      "a.b",
			files:       []string{"/r1/a/b.x", "/r2/a/b.x"},
			roots:       []string{"/r1", "/r2"},
			expect:      "/r1/a/b.x",
		},
		{
			description: "root fallback before next root primary",
			module:      "a.b.c",
			files:       []string{"/r1/b/c.x", "/r2/a/b/c.x"},
			roots:       []string{"/r1", "/r2"},
			expect:      "/r1/b/c.x",
			attempted:   []string{"a/b/c.x", "b/c.x", "/r1/a/b/c.x", "/r1/b/c.x"},
		},
		{
			description: "URL root",
			module:      "a.b",
			files:       []string{"mem://localhost/libs/a/b.x"},
			roots:       []string{"mem://localhost/libs"},
			expect:      "mem://localhost/libs/a/b.x",
		},
	}

	for _, useCase := range useCases {
		var opts []Option
		if useCase.resources != nil {
			opts = append(opts, WithResources(useCase.resources))
		}
		fs := newFakeFS(useCase.files...)
		recorder := &recordingFS{Filesystem: fs}
		aResolver := New(recorder, opts...)
		identity, err := module.ParseIdentity(useCase.module)
		require.NoError(t, err, useCase.description)
		actual, err := aResolver.Resolve(context.Background(), identity, useCase.roots)
		if !assert.NoError(t, err, useCase.description) {
			continue
		}
		assert.EqualValues(t, useCase.expect, actual, useCase.description)
		if useCase.attempted != nil {
			assert.EqualValues(t, useCase.attempted, recorder.probed, useCase.description)
		}
	}
}

type recordingFS struct {
	source.Filesystem
	probed []string
}

func (r *recordingFS) Exists(ctx context.Context, location string) bool {
	r.probed = append(r.probed, location)
	return r.Filesystem.Exists(ctx, location)
}

func TestResolver_NotFound(t *testing.T) {
	var useCases = []struct {
		description string
		module      string
		roots       []string
		resources   source.Resources
		attempted   []string
	}{
		{
			description: "single segment never tries fallback",
			module:      "top",
			roots:       []string{"/r1"},
			attempted:   []string{"top.x", "/r1/top.x"},
		},
		{
			description: "fallback scoped per root",
			module:      "a.b.c",
			roots:       []string{"/r1", "/r2"},
			attempted:   []string{"a/b/c.x", "b/c.x", "/r1/a/b/c.x", "/r1/b/c.x", "/r2/a/b/c.x", "/r2/b/c.x"},
		},
		{
			description: "packaged resource probes recorded",
			module:      "foo.bar",
			resources:   fakeResources{},
			attempted:   []string{"foo/bar.x", "runfiles://foo/bar.x", "bar.x", "runfiles://bar.x"},
		},
		{
			description: "stdlib single candidate",
			module:      "std",
			roots:       []string{"/r1"},
			attempted:   []string{"stdlib/std.x", "/r1/stdlib/std.x"},
		},
	}

	for _, useCase := range useCases {
		var opts []Option
		if useCase.resources != nil {
			opts = append(opts, WithResources(useCase.resources))
		}
		aResolver := New(newFakeFS(), opts...)
		identity, err := module.ParseIdentity(useCase.module)
		require.NoError(t, err, useCase.description)
		_, err = aResolver.Resolve(context.Background(), identity, useCase.roots)
		notFound := &NotFoundError{}
		if !assert.True(t, errors.As(err, &notFound), useCase.description) {
			continue
		}
		assert.EqualValues(t, useCase.attempted, notFound.Attempted, useCase.description)
		assert.EqualValues(t, "/work", notFound.WorkingDir, useCase.description)
		assert.Equal(t, identity, notFound.Identity, useCase.description)
	}
}

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Identity:   module.MustIdentity("foo", "bar"),
		Attempted:  []string{"foo/bar.x", "bar.x"},
		WorkingDir: "/work",
	}
	assert.Equal(t, "could not find DSLX file for import; attempted: [ foo/bar.x :: bar.x ]; working directory: /work", err.Error())
}

func TestResolver_Options(t *testing.T) {
	aResolver := New(newFakeFS("lib/core.dslx"), WithExtension("dslx"), WithStdlib("lib", "core"))
	assert.Equal(t, ".dslx", aResolver.Extension())
	assert.True(t, aResolver.IsStdlib(module.MustIdentity("core")))
	assert.False(t, aResolver.IsStdlib(module.MustIdentity("std")))
	actual, err := aResolver.Resolve(context.Background(), module.MustIdentity("core"), nil)
	require.NoError(t, err)
	assert.Equal(t, "lib/core.dslx", actual)
}
