package importer

import (
	"context"
	"sync"

	"github.com/viant/dslx/module"
)

type chainKey string

const importChainKey = chainKey("importChain")

func chainOf(ctx context.Context) []module.Identity {
	if ctx == nil {
		return nil
	}
	chain, _ := ctx.Value(importChainKey).([]module.Identity)
	return chain
}

func withChain(ctx context.Context, identity module.Identity) context.Context {
	chain := chainOf(ctx)
	next := make([]module.Identity, len(chain), len(chain)+1)
	copy(next, chain)
	return context.WithValue(ctx, importChainKey, append(next, identity))
}

func chainCycle(chain []module.Identity, identity module.Identity) []module.Identity {
	for i, candidate := range chain {
		if candidate == identity {
			cycle := append([]module.Identity{}, chain[i:]...)
			return append(cycle, identity)
		}
	}
	return nil
}

// waitGraph tracks which in-flight module loads wait on which others
type waitGraph struct {
	mux   sync.Mutex
	edges map[module.Identity]map[module.Identity]int
}

// add records that waiter waits on target, it returns the cycle instead when target already waits on waiter
func (g *waitGraph) add(waiter, target module.Identity) []module.Identity {
	g.mux.Lock()
	defer g.mux.Unlock()
	if path := g.path(target, waiter, map[module.Identity]bool{}); path != nil {
		return append([]module.Identity{waiter}, path...)
	}
	targets, ok := g.edges[waiter]
	if !ok {
		targets = map[module.Identity]int{}
		g.edges[waiter] = targets
	}
	targets[target]++
	return nil
}

func (g *waitGraph) remove(waiter, target module.Identity) {
	g.mux.Lock()
	defer g.mux.Unlock()
	targets := g.edges[waiter]
	if targets[target]--; targets[target] <= 0 {
		delete(targets, target)
	}
	if len(targets) == 0 {
		delete(g.edges, waiter)
	}
}

func (g *waitGraph) path(from, to module.Identity, visited map[module.Identity]bool) []module.Identity {
	if from == to {
		return []module.Identity{to}
	}
	if visited[from] {
		return nil
	}
	visited[from] = true
	for next := range g.edges[from] {
		if rest := g.path(next, to, visited); rest != nil {
			return append([]module.Identity{from}, rest...)
		}
	}
	return nil
}

func newWaitGraph() *waitGraph {
	return &waitGraph{edges: map[module.Identity]map[module.Identity]int{}}
}
