package region

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// Region is an immutable integer-weighted functional over the event index
// space of a Utility. Each event carries a non-negative backward weight
// (tokens consumed) and forward weight (tokens produced); evaluated along
// the canonical path to any reachable state it yields that state's token
// count.
//
// The initial marking and per-state markings resolve lazily and are cached
// under a mutex, so a region can be shared across goroutines; everything
// else is fixed at construction. Weight slices are copied in and copied
// out, never aliased.
type Region struct {
	utility  *Utility
	backward []*big.Int
	forward  []*big.Int

	mu       sync.Mutex
	initial  *big.Int
	markings map[string]*big.Int
}

// Weights builds a weight vector from int64 values, for convenience.
func Weights(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

// New creates a region with the given backward and forward weights and a
// lazily derived initial marking. Both vectors must have one non-negative
// entry per event; violations are caller defects and panic.
func New(utility *Utility, backward, forward []*big.Int) *Region {
	return newRegion(utility, backward, forward, nil)
}

// NewWithMarking creates a region with an explicit non-negative initial
// marking instead of the derived one.
func NewWithMarking(utility *Utility, backward, forward []*big.Int, initial *big.Int) *Region {
	if initial == nil || initial.Sign() < 0 {
		panic(fmt.Sprintf("region: initial marking %v must not be negative", initial))
	}
	return newRegion(utility, backward, forward, new(big.Int).Set(initial))
}

func newRegion(utility *Utility, backward, forward []*big.Int, initial *big.Int) *Region {
	n := utility.NumberOfEvents()
	if len(backward) != n {
		panic(fmt.Sprintf("region: got %d backward weights for %d events", len(backward), n))
	}
	if len(forward) != n {
		panic(fmt.Sprintf("region: got %d forward weights for %d events", len(forward), n))
	}
	for _, w := range backward {
		if w.Sign() < 0 {
			panic(fmt.Sprintf("region: backward weight %v must not be negative", w))
		}
	}
	for _, w := range forward {
		if w.Sign() < 0 {
			panic(fmt.Sprintf("region: forward weight %v must not be negative", w))
		}
	}
	return &Region{
		utility:  utility,
		backward: copyWeights(backward),
		forward:  copyWeights(forward),
		initial:  initial,
		markings: make(map[string]*big.Int),
	}
}

// Utility returns the utility this region is defined over.
func (r *Region) Utility() *Utility {
	return r.utility
}

// BackwardWeight returns the backward weight of the event at the given
// index.
func (r *Region) BackwardWeight(index int) *big.Int {
	return new(big.Int).Set(r.backward[index])
}

// BackwardWeightOf returns the backward weight of the given event label.
func (r *Region) BackwardWeightOf(event string) *big.Int {
	return r.BackwardWeight(r.utility.EventIndex(event))
}

// ForwardWeight returns the forward weight of the event at the given index.
func (r *Region) ForwardWeight(index int) *big.Int {
	return new(big.Int).Set(r.forward[index])
}

// ForwardWeightOf returns the forward weight of the given event label.
func (r *Region) ForwardWeightOf(event string) *big.Int {
	return r.ForwardWeight(r.utility.EventIndex(event))
}

// Weight returns the net effect of firing the event at the given index
// once: forward minus backward. May be negative.
func (r *Region) Weight(index int) *big.Int {
	return new(big.Int).Sub(r.forward[index], r.backward[index])
}

// WeightOf returns the net weight of the given event label.
func (r *Region) WeightOf(event string) *big.Int {
	return r.Weight(r.utility.EventIndex(event))
}

// EvaluateParikhVector returns the dot product of the vector with the
// per-event net weights. The vector must have one entry per event; a
// mismatch is a caller defect and panics.
func (r *Region) EvaluateParikhVector(pv Parikh) *big.Int {
	if len(pv) != r.utility.NumberOfEvents() {
		panic(fmt.Sprintf("region: got Parikh vector of length %d for %d events",
			len(pv), r.utility.NumberOfEvents()))
	}
	result := new(big.Int)
	tmp := new(big.Int)
	for i, count := range pv {
		tmp.Sub(r.forward[i], r.backward[i])
		tmp.Mul(tmp, count)
		result.Add(result, tmp)
	}
	return result
}

// InitialMarking returns the explicit initial marking if one was supplied,
// otherwise the normal region marking, computed once and cached.
func (r *Region) InitialMarking() *big.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initial == nil {
		r.initial = r.normalRegionMarking()
	}
	return new(big.Int).Set(r.initial)
}

// normalRegionMarking is the smallest initial marking that keeps every
// reachable state's marking non-negative: the maximum over all reachable
// states of the negated path evaluation. Unreachable states are skipped.
func (r *Region) normalRegionMarking() *big.Int {
	marking := new(big.Int)
	for _, state := range r.utility.TransitionSystem().States() {
		pv, err := r.utility.ReachingParikhVector(state.ID)
		if err != nil {
			continue
		}
		value := r.EvaluateParikhVector(pv)
		value.Neg(value)
		if value.Cmp(marking) > 0 {
			marking = value
		}
	}
	return marking
}

// MarkingForState returns the token count this region assigns to the given
// state: the initial marking plus the evaluation of the state's reaching
// Parikh vector. Results are memoized per state. Fails with ErrUnreachable
// for states with no path from the initial state.
func (r *Region) MarkingForState(id string) (*big.Int, error) {
	r.mu.Lock()
	if m, ok := r.markings[id]; ok {
		defer r.mu.Unlock()
		return new(big.Int).Set(m), nil
	}
	r.mu.Unlock()

	pv, err := r.utility.ReachingParikhVector(id)
	if err != nil {
		return nil, err
	}
	m := r.EvaluateParikhVector(pv)
	m.Add(m, r.InitialMarking())

	r.mu.Lock()
	r.markings[id] = m
	r.mu.Unlock()
	return new(big.Int).Set(m), nil
}

// AddRegionWithFactor returns a new region whose raw weights are this
// region's plus factor times the other region's. Both regions must share
// the same utility; mixing utilities is a caller defect and panics.
//
// A positive factor scales the other region's weights directly. A negative
// factor instead adds the scaled reverse: its backward weights join this
// region's forward weights and vice versa, so weights stay non-negative. A
// factor of zero returns the receiver itself, which is safe because
// regions are immutable. The result carries no explicit initial marking.
func (r *Region) AddRegionWithFactor(other *Region, factor *big.Int) *Region {
	if other.utility != r.utility {
		panic("region: cannot combine regions from different utilities")
	}
	if factor.Sign() == 0 {
		return r
	}
	b := NewBuilderFromRegion(r)
	b.AddRegionWithFactor(other, factor)
	return New(r.utility, b.backward, b.forward)
}

// AddRegion returns this region plus the other region, factor one.
func (r *Region) AddRegion(other *Region) *Region {
	return r.AddRegionWithFactor(other, big.NewInt(1))
}

// MakePure returns an equivalent-effect pure region: for every event at
// least one of the backward and forward weights is zero. Positive net
// weight becomes pure forward, negative pure backward. The marking is
// re-derived with the normal region rule, which is valid for a region that
// is cycle-consistent.
func (r *Region) MakePure() *Region {
	vector := make([]*big.Int, r.utility.NumberOfEvents())
	for i := range vector {
		vector[i] = r.Weight(i)
	}
	return CreatePure(r.utility, vector).WithNormalRegionInitialMarking()
}

// WithInitialMarking returns a structurally identical region with the
// given initial marking in place of the stored one.
func (r *Region) WithInitialMarking(initial *big.Int) *Region {
	return NewWithMarking(r.utility, r.backward, r.forward, initial)
}

// Equal reports structural equality: same utility, same weight vectors and
// the same resolved initial marking. Comparing forces both regions to
// resolve their lazy marking.
func (r *Region) Equal(other *Region) bool {
	if other == nil || other.utility != r.utility {
		return false
	}
	for i := range r.backward {
		if r.backward[i].Cmp(other.backward[i]) != 0 {
			return false
		}
		if r.forward[i].Cmp(other.forward[i]) != 0 {
			return false
		}
	}
	return r.InitialMarking().Cmp(other.InitialMarking()) == 0
}

// String returns a representation like "{ init=1, 0:a:1, 1:b:0 }" listing
// backward:event:forward per event.
func (r *Region) String() string {
	var sb strings.Builder
	sb.WriteString("{ init=")
	sb.WriteString(r.InitialMarking().String())
	for i, event := range r.utility.EventList() {
		sb.WriteString(", ")
		sb.WriteString(r.backward[i].String())
		sb.WriteString(":")
		sb.WriteString(event)
		sb.WriteString(":")
		sb.WriteString(r.forward[i].String())
	}
	sb.WriteString(" }")
	return sb.String()
}

func copyWeights(w []*big.Int) []*big.Int {
	out := make([]*big.Int, len(w))
	for i, v := range w {
		out[i] = new(big.Int).Set(v)
	}
	return out
}
