package parser

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/pflow-xyz/go-synthesis/region"
)

// regionDocument is the on-disk shape of a region. Weights are decimal
// strings so values beyond int64 range survive the round trip:
//
//	{
//	  "backward": ["0", "0"],
//	  "forward": ["1", "0"],
//	  "initial": "2"
//	}
//
// The initial marking is optional; when absent the region derives the
// normal region marking lazily.
type regionDocument struct {
	Backward []string `json:"backward"`
	Forward  []string `json:"forward"`
	Initial  string   `json:"initial,omitempty"`
}

// RegionFromJSON parses a region from JSON bytes against the given
// utility. Unlike the region constructors, which treat bad weights as
// caller defects, this validates user input and returns errors.
func RegionFromJSON(u *region.Utility, data []byte) (*region.Region, error) {
	var doc regionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parser: invalid JSON: %w", err)
	}

	n := u.NumberOfEvents()
	backward, err := parseWeights(doc.Backward, n, "backward")
	if err != nil {
		return nil, err
	}
	forward, err := parseWeights(doc.Forward, n, "forward")
	if err != nil {
		return nil, err
	}

	if doc.Initial == "" {
		return region.New(u, backward, forward), nil
	}
	initial, ok := new(big.Int).SetString(doc.Initial, 10)
	if !ok {
		return nil, fmt.Errorf("parser: invalid initial marking %q", doc.Initial)
	}
	if initial.Sign() < 0 {
		return nil, fmt.Errorf("parser: initial marking %q must not be negative", doc.Initial)
	}
	return region.NewWithMarking(u, backward, forward, initial), nil
}

// RegionToJSON serializes a region's weights and resolved initial marking.
func RegionToJSON(r *region.Region) ([]byte, error) {
	n := r.Utility().NumberOfEvents()
	doc := regionDocument{
		Backward: make([]string, n),
		Forward:  make([]string, n),
		Initial:  r.InitialMarking().String(),
	}
	for i := 0; i < n; i++ {
		doc.Backward[i] = r.BackwardWeight(i).String()
		doc.Forward[i] = r.ForwardWeight(i).String()
	}
	return json.MarshalIndent(doc, "", "  ")
}

func parseWeights(raw []string, n int, kind string) ([]*big.Int, error) {
	if len(raw) != n {
		return nil, fmt.Errorf("parser: got %d %s weights for %d events", len(raw), kind, n)
	}
	weights := make([]*big.Int, n)
	for i, s := range raw {
		w, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("parser: invalid %s weight %q", kind, s)
		}
		if w.Sign() < 0 {
			return nil, fmt.Errorf("parser: %s weight %q must not be negative", kind, s)
		}
		weights[i] = w
	}
	return weights, nil
}
