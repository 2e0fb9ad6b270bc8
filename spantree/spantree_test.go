package spantree

import (
	"errors"
	"testing"

	"github.com/pflow-xyz/go-synthesis/ts"
)

// Helper: s0 -a-> s1 -b-> s2 -a-> s0, the smallest cyclic system.
func createCycleSystem() *ts.TransitionSystem {
	return ts.Build("cycle").
		Initial("s0").
		Arc("s0", "a", "s1").
		Arc("s1", "b", "s2").
		Arc("s2", "a", "s0").
		Done()
}

// Helper: diamond with two paths from s0 to s3.
func createDiamondSystem() *ts.TransitionSystem {
	return ts.Build("diamond").
		Initial("s0").
		Arc("s0", "a", "s1").
		Arc("s0", "b", "s2").
		Arc("s1", "b", "s3").
		Arc("s2", "a", "s3").
		Done()
}

// Helper: system with an island unreachable from the initial state.
func createUnreachableSystem() *ts.TransitionSystem {
	return ts.Build("island").
		Initial("s0").
		Arc("s0", "a", "s1").
		Arc("u0", "b", "u1").
		Done()
}

func TestBuildCoversExactlyReachableStates(t *testing.T) {
	sys := createUnreachableSystem()
	tree, err := Build(sys)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, id := range []string{"s0", "s1"} {
		if !tree.Contains(id) {
			t.Errorf("tree should contain reachable state %s", id)
		}
	}
	for _, id := range []string{"u0", "u1"} {
		if tree.Contains(id) {
			t.Errorf("tree should not contain unreachable state %s", id)
		}
	}
	if tree.Size() != 2 {
		t.Errorf("expected tree size 2, got %d", tree.Size())
	}
}

func TestBuildWithoutInitialState(t *testing.T) {
	sys := ts.NewTransitionSystem("empty")
	if _, err := Build(sys); !errors.Is(err, ts.ErrNoInitialState) {
		t.Errorf("expected ErrNoInitialState, got %v", err)
	}
}

func TestEveryNonRootStateHasOneParent(t *testing.T) {
	sys := createDiamondSystem()
	tree, err := Build(sys)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if tree.ParentArc(tree.Root()) != nil {
		t.Error("root must not have a parent arc")
	}
	for _, id := range tree.States() {
		if id == tree.Root() {
			continue
		}
		a := tree.ParentArc(id)
		if a == nil {
			t.Errorf("state %s has no parent arc", id)
			continue
		}
		if a.Target != id {
			t.Errorf("parent arc of %s targets %s", id, a.Target)
		}
	}
	if got := len(tree.Arcs()); got != tree.Size()-1 {
		t.Errorf("tree with %d states must have %d arcs, got %d", tree.Size(), tree.Size()-1, got)
	}
}

func TestTreeArcsAreSystemArcs(t *testing.T) {
	sys := createDiamondSystem()
	tree, err := Build(sys)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	all := sys.Arcs()
	for _, a := range tree.Arcs() {
		found := false
		for _, b := range all {
			if a == b {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("tree arc %s is not a system arc", a)
		}
	}
}

func TestPathFromRoot(t *testing.T) {
	sys := createCycleSystem()
	tree, err := Build(sys)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path, err := tree.PathFromRoot("s2")
	if err != nil {
		t.Fatalf("PathFromRoot failed: %v", err)
	}
	if len(path) != 2 {
		t.Fatalf("expected path of 2 arcs, got %d", len(path))
	}
	if path[0].Source != "s0" || path[0].Target != "s1" {
		t.Errorf("unexpected first path arc %s", path[0])
	}
	if path[1].Source != "s1" || path[1].Target != "s2" {
		t.Errorf("unexpected second path arc %s", path[1])
	}

	if path, err := tree.PathFromRoot(tree.Root()); err != nil || len(path) != 0 {
		t.Errorf("expected empty path for root, got %v, %v", path, err)
	}
}

func TestPathFromRootUnreachable(t *testing.T) {
	sys := createUnreachableSystem()
	tree, err := Build(sys)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := tree.PathFromRoot("u1"); !errors.Is(err, ts.ErrNoSuchState) {
		t.Errorf("expected ErrNoSuchState for unreachable state, got %v", err)
	}
}

func TestPathBetweenCancelsSharedPrefix(t *testing.T) {
	// s0 -a-> s1, s1 -b-> s2, s1 -c-> s3: the path s2..s3 must contain
	// only the two branch arcs, not the shared arc from the root.
	sys := ts.Build("branch").
		Initial("s0").
		Arc("s0", "a", "s1").
		Arc("s1", "b", "s2").
		Arc("s1", "c", "s3").
		Done()
	tree, err := Build(sys)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path, err := tree.PathBetween("s2", "s3")
	if err != nil {
		t.Fatalf("PathBetween failed: %v", err)
	}
	if len(path) != 2 {
		t.Fatalf("expected 2 arcs between s2 and s3, got %d", len(path))
	}
	for _, a := range path {
		if a.Source == "s0" {
			t.Errorf("shared prefix arc %s must not be on the path", a)
		}
	}
}
