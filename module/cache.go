package module

import (
	"fmt"
	"sort"
	"sync"
)

// Cache represents session scoped, append only artifact store.
//
// Once an identity is present it maps to the same artifact for the rest of the session:
// Put keeps the first published artifact and discards later ones (first writer wins),
// so references handed out earlier stay valid for cross module links.
type Cache struct {
	mux     sync.RWMutex
	entries map[Identity]*Artifact
}

// Contains returns true if identity has been published
func (c *Cache) Contains(identity Identity) bool {
	c.mux.RLock()
	defer c.mux.RUnlock()
	_, ok := c.entries[identity]
	return ok
}

// Get returns published artifact, it panics if identity is not in the cache.
func (c *Cache) Get(identity Identity) *Artifact {
	c.mux.RLock()
	defer c.mux.RUnlock()
	ret, ok := c.entries[identity]
	if !ok {
		panic(fmt.Sprintf("module %v is not in the cache", identity))
	}
	return ret
}

// Lookup returns published artifact
func (c *Cache) Lookup(identity Identity) (*Artifact, bool) {
	c.mux.RLock()
	defer c.mux.RUnlock()
	ret, ok := c.entries[identity]
	return ret, ok
}

// Put publishes an artifact and returns the cached one; if identity was already published
// the existing artifact is returned and the supplied one is discarded.
func (c *Cache) Put(identity Identity, artifact *Artifact) *Artifact {
	if artifact == nil {
		panic(fmt.Sprintf("nil artifact for module %v", identity))
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	if existing, ok := c.entries[identity]; ok {
		return existing
	}
	c.entries[identity] = artifact
	return artifact
}

// Len returns number of published artifacts
func (c *Cache) Len() int {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return len(c.entries)
}

// Identities returns published identities sorted by module name
func (c *Cache) Identities() []Identity {
	c.mux.RLock()
	var result = make([]Identity, 0, len(c.entries))
	for identity := range c.entries {
		result = append(result, identity)
	}
	c.mux.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

// NewCache creates a cache
func NewCache() *Cache {
	return &Cache{entries: map[Identity]*Artifact{}}
}
