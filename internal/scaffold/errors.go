package scaffold

import (
	"errors"
	"fmt"
)

// ErrIOFault matches any filesystem failure that aborted a generation.
var ErrIOFault = errors.New("filesystem fault")

// IOFaultError records the step and path at which generation stopped. The
// tree may be partially written when it is returned.
type IOFaultError struct {
	Step string
	Path string
	Err  error
}

func (e *IOFaultError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *IOFaultError) Unwrap() error { return e.Err }

// Is reports true for ErrIOFault so callers need not type-assert.
func (e *IOFaultError) Is(target error) bool { return target == ErrIOFault }
