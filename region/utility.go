package region

import (
	"math/big"

	"github.com/pflow-xyz/go-synthesis/spantree"
	"github.com/pflow-xyz/go-synthesis/ts"
)

// Utility assigns a stable index to every event label of a transition
// system and precomputes, per reachable state, the Parikh vector along the
// spanning-tree path from the initial state. Regions sharing a Utility
// agree on event indices and canonical paths; regions from different
// utilities must never be combined.
type Utility struct {
	sys    *ts.TransitionSystem
	tree   *spantree.Tree
	cycles []spantree.Cycle
	events []string
	index  map[string]int
	parikh map[string]Parikh
}

// NewUtility builds a utility for the given transition system. Event
// indices follow the sorted label order; Parikh vectors are computed once
// by walking the spanning tree and reused for every query.
func NewUtility(sys *ts.TransitionSystem) (*Utility, error) {
	tree, err := spantree.Build(sys)
	if err != nil {
		return nil, err
	}
	cycles, err := spantree.CycleBasis(sys, tree)
	if err != nil {
		return nil, err
	}

	u := &Utility{
		sys:    sys,
		tree:   tree,
		cycles: cycles,
		events: sys.Labels(),
		index:  make(map[string]int),
		parikh: make(map[string]Parikh),
	}
	for i, e := range u.events {
		u.index[e] = i
	}

	// Discovery order guarantees a parent's vector exists before its
	// children need it.
	for _, id := range tree.States() {
		a := tree.ParentArc(id)
		if a == nil {
			u.parikh[id] = NewParikh(len(u.events))
			continue
		}
		pv := u.parikh[a.Source].Copy()
		i := u.index[a.Label]
		pv[i] = new(big.Int).Add(pv[i], big.NewInt(1))
		u.parikh[id] = pv
	}

	return u, nil
}

// NumberOfEvents returns the size of the event alphabet.
func (u *Utility) NumberOfEvents() int {
	return len(u.events)
}

// EventIndex returns the stable index of the given event label, or -1 when
// the label is not part of the alphabet.
func (u *Utility) EventIndex(event string) int {
	i, ok := u.index[event]
	if !ok {
		return -1
	}
	return i
}

// EventList returns the event labels in index order.
func (u *Utility) EventList() []string {
	events := make([]string, len(u.events))
	copy(events, u.events)
	return events
}

// TransitionSystem returns the system this utility indexes.
func (u *Utility) TransitionSystem() *ts.TransitionSystem {
	return u.sys
}

// SpanningTree returns the tree fixing the canonical paths.
func (u *Utility) SpanningTree() *spantree.Tree {
	return u.tree
}

// CycleBasis returns the fundamental cycles of the system.
func (u *Utility) CycleBasis() []spantree.Cycle {
	return u.cycles
}

// ReachingParikhVector returns the event-occurrence counts along the
// spanning-tree path from the initial state to the given state. Fails with
// ErrUnreachable when no such path exists.
func (u *Utility) ReachingParikhVector(id string) (Parikh, error) {
	pv, ok := u.parikh[id]
	if !ok {
		return nil, unreachable(id)
	}
	return pv.Copy(), nil
}

// CycleConsistent reports whether the region's net weights evaluate to zero
// around every fundamental cycle, i.e. whether every closed walk through
// reachable states preserves the token count. Only a cycle-consistent
// region has a well-defined normal region marking.
func (u *Utility) CycleConsistent(r *Region) bool {
	for _, c := range u.cycles {
		before, err := u.ReachingParikhVector(c.Chord.Source)
		if err != nil {
			continue
		}
		after, err := u.ReachingParikhVector(c.Chord.Target)
		if err != nil {
			continue
		}
		diff := new(big.Int).Sub(r.EvaluateParikhVector(after), r.EvaluateParikhVector(before))
		if diff.Cmp(r.Weight(u.index[c.Chord.Label])) != 0 {
			return false
		}
	}
	return true
}
