package resolver

import (
	"fmt"
	"strings"

	"github.com/viant/dslx/module"
)

// NotFoundError represents failed module file search
type NotFoundError struct {
	Identity   module.Identity
	Attempted  []string
	WorkingDir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find DSLX file for import; attempted: [ %s ]; working directory: %s",
		strings.Join(e.Attempted, " :: "), e.WorkingDir)
}
