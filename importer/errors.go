package importer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/viant/dslx/module"
)

// IOError represents failure reading resolved module source
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read module source %v: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CycleError represents circular import, Chain starts and ends with the same module
type CycleError struct {
	Chain []module.Identity
}

func (e *CycleError) Error() string {
	names := make([]string, 0, len(e.Chain))
	for _, identity := range e.Chain {
		names = append(names, identity.String())
	}
	return "import cycle detected: " + strings.Join(names, " -> ")
}

// Errors collects errors, supports parallel errors collecting.
type Errors struct {
	locker sync.Mutex
	errors []error
}

// AddError add error on given index
func (r *Errors) AddError(err error, index int) {
	r.errors[index] = err
}

// Error returns first error in index order if any
func (r *Errors) Error() error {
	r.locker.Lock()
	defer r.locker.Unlock()
	for i := range r.errors {
		if r.errors[i] != nil {
			return r.errors[i]
		}
	}
	return nil
}

// NewErrors creates errors collector with given size
func NewErrors(size int) *Errors {
	return &Errors{errors: make([]error, size)}
}
