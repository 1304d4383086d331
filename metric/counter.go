package metric

import (
	"sync/atomic"
	"time"

	"github.com/viant/gmetric/counter"
)

// Counter represents operation counter
type Counter interface {
	Begin(started time.Time) counter.OnDone
}

// CounterAdapter delegates to counter, nil counter is a no-op
type CounterAdapter struct {
	counter Counter
	begins  int64
}

func (c *CounterAdapter) Begin(started time.Time) counter.OnDone {
	if c == nil {
		return nopOnDone
	}
	atomic.AddInt64(&c.begins, 1)
	if c.counter == nil {
		return nopOnDone
	}
	return c.counter.Begin(started)
}

// Count returns number of started operations
func (c *CounterAdapter) Count() int64 {
	if c == nil {
		return 0
	}
	return atomic.LoadInt64(&c.begins)
}

func NewCounter(counter Counter) *CounterAdapter {
	return &CounterAdapter{counter: counter}
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}
