package genet

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/pflow-xyz/go-synthesis/petri"
)

func render(t *testing.T, net *petri.PetriNet) string {
	t.Helper()
	out, err := RenderString(net)
	require.NoError(t, err)
	return out
}

func TestTokenGeneratorNet(t *testing.T) {
	net, err := petri.Build("token-generator").
		Place("p1", 0).
		Transition("t1").
		Arc("t1", "p1", 1).
		Done()
	require.NoError(t, err)

	require.Equal(t, ".inputs t1\n.graph\nt1 p1\n.marking {}\n.end", render(t, net))
}

func TestDeadlockNet(t *testing.T) {
	net, err := petri.Build("deadlock").
		Place("p1", 1).
		Transition("t1").
		Transition("t2").
		Arc("p1", "t1", 1).
		Arc("p1", "t2", 1).
		Done()
	require.NoError(t, err)

	require.Equal(t, ".inputs t1 t2\n.graph\np1 t1\np1 t2\n.marking {p1}\n.end", render(t, net))
}

func TestWeightsAndMultiTokenMarking(t *testing.T) {
	net, err := petri.Build("acbcc-loop").
		Place("p0", 1).
		Place("p1", 3).
		Place("p2", 0).
		Place("p3", 0).
		Transition("a").
		Transition("b").
		Transition("c").
		Arc("p0", "c", 1).
		Arc("a", "p3", 3).
		Arc("p1", "a", 3).
		Arc("b", "p0", 3).
		Arc("p2", "b", 3).
		Arc("c", "p1", 1).
		Arc("c", "p2", 1).
		Arc("p3", "c", 1).
		Done()
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.Assert(t, "acbcc_loop", []byte(render(t, net)))
}

func TestConflictingDiamondNet(t *testing.T) {
	net, err := petri.Build("conflicting-diamond").
		Place("p1", 1).
		Place("p2", 1).
		Place("p3", 1).
		Transition("t1").
		Transition("t2").
		Arc("p1", "t1", 1).
		Arc("p2", "t2", 1).
		Arc("p3", "t1", 1).
		Arc("p3", "t2", 1).
		Arc("t1", "p3", 1).
		Arc("t2", "p3", 1).
		Done()
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.Assert(t, "conflicting_diamond", []byte(render(t, net)))
}

func TestRenderRejectsNegativeMarking(t *testing.T) {
	net := petri.NewPetriNet("bad")
	net.AddPlace("p1", -1)

	_, err := RenderString(net)
	require.ErrorIs(t, err, ErrUnrenderable)
}
