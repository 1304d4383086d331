package metric

import (
	"time"

	"github.com/viant/gmetric"
	"github.com/viant/gmetric/counter"
	"github.com/viant/gmetric/provider"
)

const (
	pkg = "dslx"

	// CacheHit import counter bucket for modules served from the cache
	CacheHit = "hit"
	// CacheMiss import counter bucket for modules loaded by the session
	CacheMiss = "miss"
)

// Counters represents import pipeline counters
type Counters struct {
	Import    *CounterAdapter
	Resolve   *CounterAdapter
	Parse     *CounterAdapter
	Typecheck *CounterAdapter
}

// Counts returns started operation count per counter name
func (c *Counters) Counts() map[string]int64 {
	return map[string]int64{
		"import":    c.Import.Count(),
		"resolve":   c.Resolve.Count(),
		"parse":     c.Parse.Count(),
		"typecheck": c.Typecheck.Count(),
	}
}

// New registers import pipeline counters, nil service produces no-op counters
func New(service *gmetric.Service) *Counters {
	return &Counters{
		Import:    operation(service, "import", "module import", &importProvider{}),
		Resolve:   operation(service, "resolve", "module path resolution", provider.NewBasic()),
		Parse:     operation(service, "parse", "module parsing", provider.NewBasic()),
		Typecheck: operation(service, "typecheck", "module type checking", provider.NewBasic()),
	}
}

func operation(service *gmetric.Service, name, title string, keyProvider counter.Provider) *CounterAdapter {
	if service == nil {
		return NewCounter(nil)
	}
	name = pkg + "." + name
	if cnt := service.LookupOperation(name); cnt != nil {
		return NewCounter(cnt)
	}
	return NewCounter(service.MultiOperationCounter(pkg, name, title+" performance", time.Millisecond, time.Minute, 2, keyProvider))
}
