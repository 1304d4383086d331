package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentity(t *testing.T) {
	var useCases = []struct {
		description string
		name        string
		segments    []string
		hasError    bool
	}{
		{description: "single segment", name: "std", segments: []string{"std"}},
		{description: "nested", name: "foo.bar.baz", segments: []string{"foo", "bar", "baz"}},
		{description: "surrounding space", name: " foo.bar ", segments: []string{"foo", "bar"}},
		{description: "empty", name: "", hasError: true},
		{description: "empty segment", name: "foo..bar", hasError: true},
		{description: "trailing dot", name: "foo.", hasError: true},
		{description: "slash", name: "foo/bar", hasError: true},
	}

	for _, useCase := range useCases {
		identity, err := ParseIdentity(useCase.name)
		if useCase.hasError {
			assert.Error(t, err, useCase.description)
			continue
		}
		if !assert.NoError(t, err, useCase.description) {
			continue
		}
		assert.EqualValues(t, useCase.segments, identity.Segments(), useCase.description)
		assert.EqualValues(t, len(useCase.segments), identity.Len(), useCase.description)
	}
}

func TestIdentity_Paths(t *testing.T) {
	identity := MustIdentity("a", "b", "c")
	assert.Equal(t, "a.b.c", identity.String())
	assert.Equal(t, "a/b/c.x", identity.RelativePath(".x"))
	parent, ok := identity.ParentRelativePath(".x")
	assert.True(t, ok)
	assert.Equal(t, "b/c.x", parent)

	_, ok = MustIdentity("std").ParentRelativePath(".x")
	assert.False(t, ok)
}

func TestIdentity_Equality(t *testing.T) {
	first := MustIdentity("foo", "bar")
	second, err := ParseIdentity("foo.bar")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	index := map[Identity]int{first: 1}
	assert.Equal(t, 1, index[second])
	assert.NotEqual(t, first, MustIdentity("foo"))

	segments := first.Segments()
	segments[0] = "changed"
	assert.Equal(t, "foo.bar", first.String())
	assert.True(t, Identity{}.IsZero())
	_, err = NewIdentity()
	assert.Error(t, err)
}
