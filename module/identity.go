package module

import (
	"fmt"
	"strings"
)

const keySeparator = "/"

// Identity identifies a module by its dotted path segments, i.e. foo.bar -> [foo bar].
// Identity is comparable and can be used as a map key.
type Identity struct {
	key string
}

// NewIdentity creates an identity from segments
func NewIdentity(segments ...string) (Identity, error) {
	if len(segments) == 0 {
		return Identity{}, fmt.Errorf("module identity requires at least one segment")
	}
	for i, segment := range segments {
		if segment == "" {
			return Identity{}, fmt.Errorf("module identity segment %v was empty", i)
		}
		if strings.ContainsAny(segment, "/.") {
			return Identity{}, fmt.Errorf("invalid module identity segment: %q", segment)
		}
	}
	return Identity{key: strings.Join(segments, keySeparator)}, nil
}

// ParseIdentity parses dotted module name
func ParseIdentity(name string) (Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Identity{}, fmt.Errorf("module name was empty")
	}
	return NewIdentity(strings.Split(name, ".")...)
}

// MustIdentity creates an identity or panics
func MustIdentity(segments ...string) Identity {
	ret, err := NewIdentity(segments...)
	if err != nil {
		panic(err)
	}
	return ret
}

// Segments returns a copy of identity segments
func (i Identity) Segments() []string {
	if i.key == "" {
		return nil
	}
	return strings.Split(i.key, keySeparator)
}

// Len returns number of segments
func (i Identity) Len() int {
	if i.key == "" {
		return 0
	}
	return strings.Count(i.key, keySeparator) + 1
}

// IsZero returns true for uninitialised identity
func (i Identity) IsZero() bool {
	return i.key == ""
}

// Key returns slash joined segments
func (i Identity) Key() string {
	return i.key
}

// String returns fully qualified (dotted) module name
func (i Identity) String() string {
	return strings.ReplaceAll(i.key, keySeparator, ".")
}

// RelativePath returns segments joined with slash and extension appended
func (i Identity) RelativePath(ext string) string {
	return i.key + ext
}

// ParentRelativePath returns relative path with the first segment dropped; false for single segment identity.
func (i Identity) ParentRelativePath(ext string) (string, bool) {
	index := strings.Index(i.key, keySeparator)
	if index == -1 {
		return "", false
	}
	return i.key[index+1:] + ext, true
}
