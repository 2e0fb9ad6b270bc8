package petri

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchNode indicates an arc endpoint that is neither a place
	// nor a transition of the net.
	ErrNoSuchNode = errors.New("petri: no such node")

	// ErrInvalidArcConnection indicates an arc connecting two places or
	// two transitions.
	ErrInvalidArcConnection = errors.New("petri: arcs must connect places to transitions")

	// ErrInvalidArcWeight indicates an arc weight below one.
	ErrInvalidArcWeight = errors.New("petri: arc weight must be at least one")
)

func arcEndpoint(id string) error {
	return fmt.Errorf("%w: %q", ErrNoSuchNode, id)
}
