package region

import (
	"fmt"
	"math/big"
)

// Builder is a mutable staging area for assembling a region from many
// small contributions before freezing it into an immutable Region. It
// mirrors the Region arithmetic but operates destructively on its own
// weight vectors.
type Builder struct {
	utility  *Utility
	backward []*big.Int
	forward  []*big.Int
}

// NewBuilder creates a builder that assigns weight zero to every event.
func NewBuilder(utility *Utility) *Builder {
	n := utility.NumberOfEvents()
	return &Builder{
		utility:  utility,
		backward: zeroWeights(n),
		forward:  zeroWeights(n),
	}
}

// NewBuilderWithWeights creates a builder seeded with copies of the given
// weight vectors. Both must have one entry per event; a mismatch is a
// caller defect and panics.
func NewBuilderWithWeights(utility *Utility, backward, forward []*big.Int) *Builder {
	n := utility.NumberOfEvents()
	if len(backward) != n {
		panic(fmt.Sprintf("region: got %d backward weights for %d events", len(backward), n))
	}
	if len(forward) != n {
		panic(fmt.Sprintf("region: got %d forward weights for %d events", len(forward), n))
	}
	return &Builder{
		utility:  utility,
		backward: copyWeights(backward),
		forward:  copyWeights(forward),
	}
}

// NewBuilderFromRegion creates a builder seeded with the region's weights.
func NewBuilderFromRegion(r *Region) *Builder {
	return NewBuilderWithWeights(r.utility, r.backward, r.forward)
}

// CreatePure creates a builder in pure form from a vector of signed net
// weights: positive entries become forward weight, negative entries become
// backward weight.
func CreatePure(utility *Utility, vector []*big.Int) *Builder {
	if len(vector) != utility.NumberOfEvents() {
		panic(fmt.Sprintf("region: got %d net weights for %d events",
			len(vector), utility.NumberOfEvents()))
	}
	b := NewBuilder(utility)
	for i, v := range vector {
		if v.Sign() > 0 {
			b.forward[i].Set(v)
		} else {
			b.backward[i].Neg(v)
		}
	}
	return b
}

// AddLoopAround increases both the backward and the forward weight of the
// event at the given index. The net effect stays zero, but the raw weight
// split changes, which matters for later purification.
func (b *Builder) AddLoopAround(index int, weight *big.Int) *Builder {
	b.backward[index].Add(b.backward[index], weight)
	b.forward[index].Add(b.forward[index], weight)
	return b
}

// AddLoopAroundEvent is AddLoopAround with the event given by label.
func (b *Builder) AddLoopAroundEvent(event string, weight *big.Int) *Builder {
	return b.AddLoopAround(b.utility.EventIndex(event), weight)
}

// AddRegionWithFactor adds factor times the region's weights in place,
// with the same sign convention as Region.AddRegionWithFactor: a negative
// factor adds the scaled reverse instead. The region must share this
// builder's utility; mixing utilities panics.
func (b *Builder) AddRegionWithFactor(r *Region, factor *big.Int) *Builder {
	if r.utility != b.utility {
		panic("region: cannot combine regions from different utilities")
	}
	if factor.Sign() == 0 {
		return b
	}

	theirBackward, theirForward := r.backward, r.forward
	if factor.Sign() < 0 {
		factor = new(big.Int).Neg(factor)
		theirBackward, theirForward = theirForward, theirBackward
	}

	tmp := new(big.Int)
	for i := range b.backward {
		tmp.Mul(factor, theirBackward[i])
		b.backward[i].Add(b.backward[i], tmp)
		tmp.Mul(factor, theirForward[i])
		b.forward[i].Add(b.forward[i], tmp)
	}
	return b
}

// MakePure rewrites the weights in place so that for every event at least
// one of backward and forward is zero, keeping each event's net effect.
func (b *Builder) MakePure() *Builder {
	for i := range b.backward {
		weight := new(big.Int).Sub(b.forward[i], b.backward[i])
		if weight.Sign() >= 0 {
			b.forward[i] = weight
			b.backward[i] = new(big.Int)
		} else {
			b.forward[i] = new(big.Int)
			b.backward[i] = weight.Neg(weight)
		}
	}
	return b
}

// WithInitialMarking freezes the builder into a region with the given
// initial marking.
func (b *Builder) WithInitialMarking(initial *big.Int) *Region {
	return NewWithMarking(b.utility, b.backward, b.forward, initial)
}

// WithNormalRegionInitialMarking freezes the builder into a region whose
// initial marking follows the normal region rule: the maximum over all
// reachable states of the negated path evaluation. This is only valid when
// the current weights are cycle-consistent, i.e. every closed walk in the
// system evaluates to zero net weight; otherwise the resulting marking does
// not guarantee non-negativity on all reachable states.
func (b *Builder) WithNormalRegionInitialMarking() *Region {
	initial := new(big.Int)
	tmp := new(big.Int)
	value := new(big.Int)
	for _, state := range b.utility.TransitionSystem().States() {
		pv, err := b.utility.ReachingParikhVector(state.ID)
		if err != nil {
			continue
		}
		value.SetInt64(0)
		for i, count := range pv {
			tmp.Sub(b.forward[i], b.backward[i])
			tmp.Mul(tmp, count)
			value.Add(value, tmp)
		}
		value.Neg(value)
		if value.Cmp(initial) > 0 {
			initial = new(big.Int).Set(value)
		}
	}
	return b.WithInitialMarking(initial)
}

func zeroWeights(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
	}
	return out
}
