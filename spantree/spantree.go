// Package spantree computes spanning trees and fundamental cycle bases of
// labeled transition systems. The tree fixes one canonical path from the
// initial state to every reachable state; the cycles capture everything the
// tree leaves out. Both are the graph-side foundation of region synthesis.
package spantree

import (
	"github.com/pflow-xyz/go-synthesis/ts"
)

// Tree is a spanning tree of the states reachable from a transition
// system's initial state. Every non-root tree state has exactly one
// incoming tree arc, recorded as its parent pointer.
type Tree struct {
	sys    *ts.TransitionSystem
	root   string
	parent map[string]*ts.Arc
	order  []string
}

// Build computes a spanning tree of the given transition system.
//
// Traversal uses an explicit LIFO work stack instead of recursion, so state
// counts bounded only by memory cannot overflow the call stack. Which of
// several arcs reaching the same state becomes the tree arc depends on
// traversal order and is not part of the contract; only coverage of the
// reachable states and acyclicity are. States unreachable from the initial
// state are simply absent from the tree.
func Build(sys *ts.TransitionSystem) (*Tree, error) {
	initial := sys.Initial()
	if initial == nil {
		return nil, ts.ErrNoInitialState
	}

	tree := &Tree{
		sys:    sys,
		root:   initial.ID,
		parent: make(map[string]*ts.Arc),
		order:  []string{initial.ID},
	}

	stack := sys.Outgoing(initial.ID)
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tree.Contains(a.Target) {
			continue
		}
		tree.parent[a.Target] = a
		tree.order = append(tree.order, a.Target)
		stack = append(stack, sys.Outgoing(a.Target)...)
	}

	return tree, nil
}

// Root returns the id of the tree's root, the system's initial state.
func (t *Tree) Root() string {
	return t.root
}

// Contains reports whether the given state is part of the tree, which is
// equivalent to it being reachable from the initial state.
func (t *Tree) Contains(id string) bool {
	if id == t.root {
		return true
	}
	_, ok := t.parent[id]
	return ok
}

// Size returns the number of states in the tree.
func (t *Tree) Size() int {
	return len(t.order)
}

// States returns the tree's state ids in discovery order, root first.
// Walking this order guarantees every state's parent appears before it.
func (t *Tree) States() []string {
	states := make([]string, len(t.order))
	copy(states, t.order)
	return states
}

// ParentArc returns the unique tree arc leading into the given state, or
// nil for the root and for states outside the tree.
func (t *Tree) ParentArc(id string) *ts.Arc {
	return t.parent[id]
}

// Arcs returns all tree arcs.
func (t *Tree) Arcs() []*ts.Arc {
	arcs := make([]*ts.Arc, 0, len(t.parent))
	for _, id := range t.order {
		if a := t.parent[id]; a != nil {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// PathFromRoot returns the tree arcs from the root to the given state, in
// order. Fails with ts.ErrNoSuchState wrapping when the state is not in
// the tree.
func (t *Tree) PathFromRoot(id string) ([]*ts.Arc, error) {
	if !t.Contains(id) {
		return nil, notInTree(t, id)
	}
	var reversed []*ts.Arc
	for cur := id; cur != t.root; {
		a := t.parent[cur]
		reversed = append(reversed, a)
		cur = a.Source
	}
	path := make([]*ts.Arc, len(reversed))
	for i, a := range reversed {
		path[len(path)-1-i] = a
	}
	return path, nil
}

// PathBetween returns the set of tree arcs on the unique tree path
// connecting two states, ignoring arc direction. The result is the
// symmetric difference of the two root paths: shared prefix arcs cancel.
func (t *Tree) PathBetween(a, b string) ([]*ts.Arc, error) {
	pathA, err := t.PathFromRoot(a)
	if err != nil {
		return nil, err
	}
	pathB, err := t.PathFromRoot(b)
	if err != nil {
		return nil, err
	}
	shared := 0
	for shared < len(pathA) && shared < len(pathB) && pathA[shared] == pathB[shared] {
		shared++
	}
	path := make([]*ts.Arc, 0, len(pathA)+len(pathB)-2*shared)
	path = append(path, pathA[shared:]...)
	path = append(path, pathB[shared:]...)
	return path, nil
}
