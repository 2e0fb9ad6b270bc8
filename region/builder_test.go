package region

import (
	"math/big"
	"testing"
)

func TestBuilderStartsAtZero(t *testing.T) {
	u := createCycleUtility(t)
	r := NewBuilder(u).WithInitialMarking(new(big.Int))

	for i := 0; i < u.NumberOfEvents(); i++ {
		if r.BackwardWeight(i).Sign() != 0 || r.ForwardWeight(i).Sign() != 0 {
			t.Errorf("expected zero weights at event %d, got %s", i, r)
		}
	}
}

func TestAddLoopAroundIsNetNeutral(t *testing.T) {
	u := createCycleUtility(t)
	b := NewBuilderWithWeights(u, Weights(1, 0), Weights(0, 2))
	b.AddLoopAround(0, big.NewInt(3))

	r := b.WithInitialMarking(new(big.Int))
	if r.BackwardWeight(0).Int64() != 4 || r.ForwardWeight(0).Int64() != 3 {
		t.Errorf("expected raw weights 4/3 after loop, got %s", r)
	}
	if r.Weight(0).Int64() != -1 {
		t.Errorf("loop must not change the net weight, got %v", r.Weight(0))
	}
}

func TestAddLoopAroundEvent(t *testing.T) {
	u := createCycleUtility(t)
	b := NewBuilder(u).AddLoopAroundEvent("b", big.NewInt(2))

	r := b.WithInitialMarking(new(big.Int))
	if r.BackwardWeight(1).Int64() != 2 || r.ForwardWeight(1).Int64() != 2 {
		t.Errorf("expected loop weights on event b, got %s", r)
	}
}

func TestBuilderAddRegionWithFactor(t *testing.T) {
	u := createCycleUtility(t)
	other := New(u, Weights(1, 0), Weights(0, 2))

	b := NewBuilder(u)
	b.AddRegionWithFactor(other, big.NewInt(3))
	r := b.WithInitialMarking(new(big.Int))
	if r.BackwardWeight(0).Int64() != 3 || r.ForwardWeight(1).Int64() != 6 {
		t.Errorf("unexpected scaled weights in %s", r)
	}

	// Negative factors add the reverse in place.
	b = NewBuilder(u)
	b.AddRegionWithFactor(other, big.NewInt(-1))
	r = b.WithInitialMarking(new(big.Int))
	if r.ForwardWeight(0).Int64() != 1 || r.BackwardWeight(1).Int64() != 2 {
		t.Errorf("unexpected reversed weights in %s", r)
	}
}

func TestBuilderAddRegionZeroFactorLeavesWeights(t *testing.T) {
	u := createCycleUtility(t)
	other := New(u, Weights(5, 5), Weights(5, 5))

	b := NewBuilderWithWeights(u, Weights(1, 0), Weights(0, 1))
	b.AddRegionWithFactor(other, new(big.Int))
	r := b.WithInitialMarking(new(big.Int))
	if r.BackwardWeight(0).Int64() != 1 || r.ForwardWeight(1).Int64() != 1 {
		t.Errorf("zero factor must leave weights untouched, got %s", r)
	}
}

func TestBuilderMakePureInPlace(t *testing.T) {
	u := createCycleUtility(t)
	b := NewBuilderWithWeights(u, Weights(2, 3), Weights(3, 1))
	b.MakePure()

	r := b.WithInitialMarking(new(big.Int))
	if r.BackwardWeight(0).Int64() != 0 || r.ForwardWeight(0).Int64() != 1 {
		t.Errorf("expected pure-forward a, got %s", r)
	}
	if r.BackwardWeight(1).Int64() != 2 || r.ForwardWeight(1).Int64() != 0 {
		t.Errorf("expected pure-backward b, got %s", r)
	}
}

func TestCreatePure(t *testing.T) {
	u := createCycleUtility(t)
	b := CreatePure(u, []*big.Int{big.NewInt(2), big.NewInt(-3)})

	r := b.WithInitialMarking(new(big.Int))
	if r.BackwardWeight(0).Int64() != 0 || r.ForwardWeight(0).Int64() != 2 {
		t.Errorf("positive net weight must become pure forward, got %s", r)
	}
	if r.BackwardWeight(1).Int64() != 3 || r.ForwardWeight(1).Int64() != 0 {
		t.Errorf("negative net weight must become pure backward, got %s", r)
	}

	expectPanic(t, "vector length mismatch", func() {
		CreatePure(u, []*big.Int{big.NewInt(1)})
	})
}

func TestWithNormalRegionInitialMarking(t *testing.T) {
	u := createCycleUtility(t)

	// Pure, cycle-consistent weights: w(a)=1, w(b)=-2. The worst
	// reachable state is s2 at -1, so the normal marking is 1.
	r := CreatePure(u, []*big.Int{big.NewInt(1), big.NewInt(-2)}).
		WithNormalRegionInitialMarking()
	if got := r.InitialMarking(); got.Int64() != 1 {
		t.Errorf("expected normal marking 1, got %v", got)
	}
	if !u.CycleConsistent(r) {
		t.Errorf("fixture region %s should be cycle consistent", r)
	}
	for _, s := range u.TransitionSystem().States() {
		m, err := r.MarkingForState(s.ID)
		if err != nil {
			t.Fatalf("MarkingForState(%s) failed: %v", s.ID, err)
		}
		if m.Sign() < 0 {
			t.Errorf("normal marking left state %s negative: %v", s.ID, m)
		}
	}
}

func TestBuilderFinalizeMatchesRegionArithmetic(t *testing.T) {
	u := createCycleUtility(t)
	base := New(u, Weights(1, 0), Weights(0, 2))
	other := New(u, Weights(0, 1), Weights(2, 0))

	viaRegion := base.AddRegionWithFactor(other, big.NewInt(2))
	viaBuilder := NewBuilderFromRegion(base).
		AddRegionWithFactor(other, big.NewInt(2)).
		WithInitialMarking(viaRegion.InitialMarking())

	if !viaRegion.Equal(viaBuilder) {
		t.Errorf("builder result %s differs from region result %s", viaBuilder, viaRegion)
	}
}
