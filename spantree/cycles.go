package spantree

import "github.com/pflow-xyz/go-synthesis/ts"

// Cycle is a fundamental cycle of a transition system with respect to a
// spanning tree: one non-tree arc (the chord) plus the tree arcs on the
// unique tree path connecting the chord's endpoints.
type Cycle struct {
	// Chord is the non-tree arc that induces this cycle.
	Chord *ts.Arc
	// Arcs holds the full cycle: the chord followed by the connecting
	// tree path.
	Arcs []*ts.Arc
}

// CycleBasis computes the fundamental cycle basis of the transition system
// with respect to the given spanning tree.
//
// An arc counts as a chord when no tree arc matches its (source, target,
// label) triple. Matching by triple rather than arc identity means distinct
// parallel arcs with identical triples collapse to a single cycle
// contribution; this is a deliberate simplification. For a connected
// reachable fragment with V states and E arcs the basis has E - V + 1
// cycles.
func CycleBasis(sys *ts.TransitionSystem, tree *Tree) ([]Cycle, error) {
	treeArcs := tree.Arcs()
	var cycles []Cycle
	seen := make(map[[3]string]bool)

	for _, a := range sys.Arcs() {
		if !tree.Contains(a.Source) || !tree.Contains(a.Target) {
			// Arcs touching unreachable states close no cycle
			// through the root.
			continue
		}
		if isTreeArc(a, treeArcs) {
			continue
		}
		triple := [3]string{a.Source, a.Target, a.Label}
		if seen[triple] {
			continue
		}
		seen[triple] = true

		path, err := tree.PathBetween(a.Source, a.Target)
		if err != nil {
			return nil, err
		}
		arcs := make([]*ts.Arc, 0, len(path)+1)
		arcs = append(arcs, a)
		arcs = append(arcs, path...)
		cycles = append(cycles, Cycle{Chord: a, Arcs: arcs})
	}

	return cycles, nil
}

func isTreeArc(a *ts.Arc, treeArcs []*ts.Arc) bool {
	for _, t := range treeArcs {
		if a.SameTriple(t) {
			return true
		}
	}
	return false
}
