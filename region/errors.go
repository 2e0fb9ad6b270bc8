package region

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable indicates a Parikh vector or marking query for a
	// state with no path from the initial state. Bulk computations skip
	// such states; single-state queries propagate the error.
	ErrUnreachable = errors.New("region: state unreachable from initial state")
)

func unreachable(id string) error {
	return fmt.Errorf("%w: %q", ErrUnreachable, id)
}
