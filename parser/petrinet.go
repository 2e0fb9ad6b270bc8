package parser

import (
	"encoding/json"
	"fmt"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// netDocument is the on-disk shape of a Petri net:
//
//	{
//	  "name": "mutex",
//	  "places": [{"id": "p1", "initial": 1}],
//	  "transitions": ["t1"],
//	  "arcs": [{"source": "p1", "target": "t1", "weight": 1}]
//	}
//
// An absent arc weight defaults to one.
type netDocument struct {
	Name        string      `json:"name"`
	Places      []placeDoc  `json:"places"`
	Transitions []string    `json:"transitions"`
	Arcs        []netArcDoc `json:"arcs"`
}

type placeDoc struct {
	ID      string `json:"id"`
	Initial int    `json:"initial"`
}

type netArcDoc struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// PetriNetFromJSON parses a Petri net from JSON bytes.
func PetriNetFromJSON(data []byte) (*petri.PetriNet, error) {
	var doc netDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parser: invalid JSON: %w", err)
	}

	net := petri.NewPetriNet(doc.Name)
	for _, p := range doc.Places {
		net.AddPlace(p.ID, p.Initial)
	}
	for _, t := range doc.Transitions {
		net.AddTransition(t)
	}
	for _, a := range doc.Arcs {
		weight := a.Weight
		if weight == 0 {
			weight = 1
		}
		if _, err := net.AddArc(a.Source, a.Target, weight); err != nil {
			return nil, fmt.Errorf("parser: %w", err)
		}
	}
	return net, nil
}

// PetriNetToJSON serializes a Petri net to indented JSON with places and
// transitions in sorted order.
func PetriNetToJSON(net *petri.PetriNet) ([]byte, error) {
	doc := netDocument{Name: net.Name}
	for _, p := range net.SortedPlaces() {
		doc.Places = append(doc.Places, placeDoc{ID: p.ID, Initial: p.Initial})
	}
	for _, t := range net.SortedTransitions() {
		doc.Transitions = append(doc.Transitions, t.ID)
	}
	for _, a := range net.Arcs {
		doc.Arcs = append(doc.Arcs, netArcDoc{Source: a.Source, Target: a.Target, Weight: a.Weight})
	}
	return json.MarshalIndent(doc, "", "  ")
}
