// Package ts implements labeled transition system data structures.
// A labeled transition system (LTS) is a directed graph of states connected
// by event-labeled arcs, with one designated initial state. It is the input
// side of region-based Petri net synthesis.
package ts

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// State represents a node of a transition system.
type State struct {
	ID string
}

// String returns the state id.
func (s *State) String() string {
	return s.ID
}

// Arc represents a directed, event-labeled edge between two states.
// Parallel arcs with the same source, target and label are allowed.
type Arc struct {
	Source string
	Target string
	Label  string
}

// String returns a human-readable representation like "s0 --a--> s1".
func (a *Arc) String() string {
	return fmt.Sprintf("%s --%s--> %s", a.Source, a.Label, a.Target)
}

// SameTriple reports whether two arcs agree on source, target and label.
// Distinct parallel arcs with identical triples compare as equivalent.
func (a *Arc) SameTriple(other *Arc) bool {
	return a.Source == other.Source && a.Target == other.Target && a.Label == other.Label
}

// TransitionSystem represents a complete labeled transition system.
type TransitionSystem struct {
	ID   string
	Name string

	states   map[string]*State
	arcs     []*Arc
	outgoing map[string][]*Arc
	initial  string
}

// NewTransitionSystem creates an empty transition system with a generated id.
func NewTransitionSystem(name string) *TransitionSystem {
	return &TransitionSystem{
		ID:       uuid.NewString(),
		Name:     name,
		states:   make(map[string]*State),
		outgoing: make(map[string][]*Arc),
	}
}

// AddState adds a state with the given id and returns it.
// Adding an id twice returns the existing state.
func (t *TransitionSystem) AddState(id string) *State {
	if s, ok := t.states[id]; ok {
		return s
	}
	s := &State{ID: id}
	t.states[id] = s
	return s
}

// AddArc adds an arc between two existing states.
// Both endpoints must already be part of the system.
func (t *TransitionSystem) AddArc(source, target, label string) (*Arc, error) {
	if _, ok := t.states[source]; !ok {
		return nil, noSuchState(t, source)
	}
	if _, ok := t.states[target]; !ok {
		return nil, noSuchState(t, target)
	}
	a := &Arc{Source: source, Target: target, Label: label}
	t.arcs = append(t.arcs, a)
	t.outgoing[source] = append(t.outgoing[source], a)
	return a, nil
}

// SetInitial marks an existing state as the initial state.
func (t *TransitionSystem) SetInitial(id string) error {
	if _, ok := t.states[id]; !ok {
		return noSuchState(t, id)
	}
	t.initial = id
	return nil
}

// Initial returns the initial state, or nil if none was set.
func (t *TransitionSystem) Initial() *State {
	if t.initial == "" {
		return nil
	}
	return t.states[t.initial]
}

// State returns the state with the given id.
func (t *TransitionSystem) State(id string) (*State, error) {
	s, ok := t.states[id]
	if !ok {
		return nil, noSuchState(t, id)
	}
	return s, nil
}

// HasState reports whether a state with the given id exists.
func (t *TransitionSystem) HasState(id string) bool {
	_, ok := t.states[id]
	return ok
}

// States returns all states sorted by id.
func (t *TransitionSystem) States() []*State {
	states := make([]*State, 0, len(t.states))
	for _, s := range t.states {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	return states
}

// Arcs returns all arcs in insertion order.
func (t *TransitionSystem) Arcs() []*Arc {
	arcs := make([]*Arc, len(t.arcs))
	copy(arcs, t.arcs)
	return arcs
}

// Outgoing returns the arcs leaving the given state, in insertion order.
func (t *TransitionSystem) Outgoing(id string) []*Arc {
	arcs := make([]*Arc, len(t.outgoing[id]))
	copy(arcs, t.outgoing[id])
	return arcs
}

// StateCount returns the number of states.
func (t *TransitionSystem) StateCount() int {
	return len(t.states)
}

// ArcCount returns the number of arcs.
func (t *TransitionSystem) ArcCount() int {
	return len(t.arcs)
}

// Labels returns the sorted set of distinct arc labels. This is the event
// alphabet of the system.
func (t *TransitionSystem) Labels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, a := range t.arcs {
		if !seen[a.Label] {
			seen[a.Label] = true
			labels = append(labels, a.Label)
		}
	}
	sort.Strings(labels)
	return labels
}
