// Package region implements the region algebra of Petri net synthesis.
// A region assigns to each event of a transition system a backward and a
// forward weight; evaluated along any path from the initial state it yields
// a non-negative token count, mirroring a Petri net place. Weights and
// markings use unbounded-precision integers throughout: silent overflow
// would corrupt the non-negativity invariant the synthesis rests on.
package region

import (
	"math/big"
	"strings"
)

// Parikh is a Parikh vector: per-event occurrence counts along a canonical
// path from the initial state to some state, indexed by event index.
type Parikh []*big.Int

// NewParikh creates a zero Parikh vector for n events.
func NewParikh(n int) Parikh {
	pv := make(Parikh, n)
	for i := range pv {
		pv[i] = new(big.Int)
	}
	return pv
}

// ParikhOf creates a Parikh vector from int64 counts, for convenience.
func ParikhOf(counts ...int64) Parikh {
	pv := make(Parikh, len(counts))
	for i, c := range counts {
		pv[i] = big.NewInt(c)
	}
	return pv
}

// Copy creates a deep copy of the vector.
func (pv Parikh) Copy() Parikh {
	out := make(Parikh, len(pv))
	for i, v := range pv {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

// Equal reports whether two vectors have the same length and entries.
func (pv Parikh) Equal(other Parikh) bool {
	if len(pv) != len(other) {
		return false
	}
	for i, v := range pv {
		if v.Cmp(other[i]) != 0 {
			return false
		}
	}
	return true
}

// String returns a compact representation like "[1 0 2]".
func (pv Parikh) String() string {
	parts := make([]string, len(pv))
	for i, v := range pv {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
