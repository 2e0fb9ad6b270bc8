// Package genet renders Petri nets in the Genet file format, the textual
// format used by the genet synthesis tool: a .inputs line listing the
// transitions, a .graph section with one weighted edge per line, the
// initial .marking and a closing .end.
package genet

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// ErrUnrenderable indicates a net that the Genet format cannot express.
var ErrUnrenderable = errors.New("genet: net cannot be expressed in the Genet file format")

// Render writes the net in Genet format. Transitions, marking entries and
// edges appear in sorted order so output is independent of construction
// order.
func Render(net *petri.PetriNet, w io.Writer) error {
	for _, p := range net.SortedPlaces() {
		if p.Initial < 0 {
			return fmt.Errorf("%w: place %q has negative initial marking", ErrUnrenderable, p.ID)
		}
	}

	var sb strings.Builder
	sb.WriteString(".inputs")
	for _, t := range net.SortedTransitions() {
		sb.WriteString(" ")
		sb.WriteString(t.ID)
	}
	sb.WriteString("\n.graph\n")

	arcs := make([]*petri.Arc, len(net.Arcs))
	copy(arcs, net.Arcs)
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].Source != arcs[j].Source {
			return arcs[i].Source < arcs[j].Source
		}
		return arcs[i].Target < arcs[j].Target
	})
	for _, a := range arcs {
		sb.WriteString(a.Source)
		sb.WriteString(" ")
		sb.WriteString(a.Target)
		if a.Weight != 1 {
			fmt.Fprintf(&sb, "(%d)", a.Weight)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(".marking {")
	first := true
	for _, p := range net.SortedPlaces() {
		if p.Initial == 0 {
			continue
		}
		if !first {
			sb.WriteString(" ")
		}
		first = false
		sb.WriteString(p.ID)
		if p.Initial != 1 {
			fmt.Fprintf(&sb, "=%d", p.Initial)
		}
	}
	sb.WriteString("}\n.end")

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderString renders the net in Genet format and returns it as a string.
func RenderString(net *petri.PetriNet) (string, error) {
	var sb strings.Builder
	if err := Render(net, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
