package ts

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchState indicates a query for a state id that the transition
	// system does not contain.
	ErrNoSuchState = errors.New("ts: no such state")

	// ErrNoInitialState indicates an operation that needs an initial state
	// on a system where none was set.
	ErrNoInitialState = errors.New("ts: no initial state")
)

func noSuchState(t *TransitionSystem, id string) error {
	return fmt.Errorf("%w: %q in system %q", ErrNoSuchState, id, t.Name)
}
