// Package petri implements core Petri net data structures.
// A Petri net consists of places holding tokens, transitions firing events,
// and weighted arcs connecting the two. This module uses nets as the output
// side of region-based synthesis: renderers and tooling consume them.
package petri

import (
	"sort"

	"github.com/google/uuid"
)

// Place represents a state container that can hold tokens.
type Place struct {
	ID      string
	Initial int
}

// Transition represents an event that consumes and produces tokens.
type Transition struct {
	ID string
}

// Arc represents a weighted connection between a place and a transition.
type Arc struct {
	Source string
	Target string
	Weight int
}

// PetriNet represents a complete Petri net model.
type PetriNet struct {
	ID          string
	Name        string
	Places      map[string]*Place
	Transitions map[string]*Transition
	Arcs        []*Arc
}

// NewPetriNet creates an empty Petri net with a generated id.
func NewPetriNet(name string) *PetriNet {
	return &PetriNet{
		ID:          uuid.NewString(),
		Name:        name,
		Places:      make(map[string]*Place),
		Transitions: make(map[string]*Transition),
	}
}

// AddPlace adds a place with the given id and initial token count.
func (n *PetriNet) AddPlace(id string, initial int) *Place {
	p := &Place{ID: id, Initial: initial}
	n.Places[id] = p
	return p
}

// AddTransition adds a transition with the given id.
func (n *PetriNet) AddTransition(id string) *Transition {
	t := &Transition{ID: id}
	n.Transitions[id] = t
	return t
}

// AddArc adds an arc between a place and a transition (either direction).
// Both endpoints must exist and must be of different kinds.
func (n *PetriNet) AddArc(source, target string, weight int) (*Arc, error) {
	_, srcPlace := n.Places[source]
	_, srcTrans := n.Transitions[source]
	_, tgtPlace := n.Places[target]
	_, tgtTrans := n.Transitions[target]

	switch {
	case !srcPlace && !srcTrans:
		return nil, arcEndpoint(source)
	case !tgtPlace && !tgtTrans:
		return nil, arcEndpoint(target)
	case srcPlace == tgtPlace:
		return nil, ErrInvalidArcConnection
	}
	if weight < 1 {
		return nil, ErrInvalidArcWeight
	}

	a := &Arc{Source: source, Target: target, Weight: weight}
	n.Arcs = append(n.Arcs, a)
	return a, nil
}

// SortedPlaces returns the places sorted by id.
func (n *PetriNet) SortedPlaces() []*Place {
	places := make([]*Place, 0, len(n.Places))
	for _, p := range n.Places {
		places = append(places, p)
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })
	return places
}

// SortedTransitions returns the transitions sorted by id.
func (n *PetriNet) SortedTransitions() []*Transition {
	transitions := make([]*Transition, 0, len(n.Transitions))
	for _, t := range n.Transitions {
		transitions = append(transitions, t)
	}
	sort.Slice(transitions, func(i, j int) bool { return transitions[i].ID < transitions[j].ID })
	return transitions
}

// InputArcs returns all arcs leading into the given transition.
func (n *PetriNet) InputArcs(transition string) []*Arc {
	var result []*Arc
	for _, a := range n.Arcs {
		if a.Target == transition {
			result = append(result, a)
		}
	}
	return result
}

// OutputArcs returns all arcs leading out of the given transition.
func (n *PetriNet) OutputArcs(transition string) []*Arc {
	var result []*Arc
	for _, a := range n.Arcs {
		if a.Source == transition {
			result = append(result, a)
		}
	}
	return result
}
