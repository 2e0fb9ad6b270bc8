// Package visualization renders transition systems as SVG. States sit on a
// ring, the initial state is highlighted, and when a spanning tree is given
// its arcs draw solid while the remaining chord arcs draw dashed, making
// the fundamental cycle structure visible.
package visualization

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pflow-xyz/go-synthesis/spantree"
	"github.com/pflow-xyz/go-synthesis/ts"
)

const (
	stateRadius = 18
	ringMargin  = 80
	canvasSize  = 600
)

// RenderSVG renders the transition system as an SVG document. A nil tree
// draws all arcs alike.
func RenderSVG(sys *ts.TransitionSystem, tree *spantree.Tree) string {
	states := sys.States()
	pos := ringLayout(states)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		canvasSize, canvasSize)
	sb.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")

	for _, a := range sys.Arcs() {
		from, to := pos[a.Source], pos[a.Target]
		dash := ""
		if tree != nil && !isTreeArc(tree, a) {
			dash = ` stroke-dasharray="6,4"`
		}
		if a.Source == a.Target {
			fmt.Fprintf(&sb,
				`<circle cx="%.1f" cy="%.1f" r="%d" fill="none" stroke="gray"%s/>`+"\n",
				from.x, from.y-stateRadius*1.5, stateRadius, dash)
		} else {
			fmt.Fprintf(&sb,
				`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="gray"%s/>`+"\n",
				from.x, from.y, to.x, to.y, dash)
		}
		mx, my := (from.x+to.x)/2, (from.y+to.y)/2
		fmt.Fprintf(&sb,
			`<text x="%.1f" y="%.1f" font-size="12" fill="dimgray">%s</text>`+"\n",
			mx, my-4, escape(a.Label))
	}

	initial := sys.Initial()
	for _, s := range states {
		p := pos[s.ID]
		fill := "white"
		if initial != nil && s.ID == initial.ID {
			fill = "lightyellow"
		}
		stroke := "black"
		if tree != nil && !tree.Contains(s.ID) {
			stroke = "lightgray"
		}
		fmt.Fprintf(&sb,
			`<circle cx="%.1f" cy="%.1f" r="%d" fill="%s" stroke="%s"/>`+"\n",
			p.x, p.y, stateRadius, fill, stroke)
		fmt.Fprintf(&sb,
			`<text x="%.1f" y="%.1f" font-size="12" text-anchor="middle">%s</text>`+"\n",
			p.x, p.y+4, escape(s.ID))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// SaveSVG renders the system to SVG and writes it to a file.
func SaveSVG(sys *ts.TransitionSystem, tree *spantree.Tree, filename string) error {
	return os.WriteFile(filename, []byte(RenderSVG(sys, tree)), 0644)
}

type point struct {
	x, y float64
}

// ringLayout spreads the states evenly on a circle, in sorted id order so
// the same system always renders the same picture.
func ringLayout(states []*ts.State) map[string]point {
	pos := make(map[string]point, len(states))
	center := float64(canvasSize) / 2
	radius := center - ringMargin
	for i, s := range states {
		angle := 2 * math.Pi * float64(i) / float64(len(states))
		pos[s.ID] = point{
			x: center + radius*math.Cos(angle-math.Pi/2),
			y: center + radius*math.Sin(angle-math.Pi/2),
		}
	}
	return pos
}

func isTreeArc(tree *spantree.Tree, a *ts.Arc) bool {
	parent := tree.ParentArc(a.Target)
	return parent != nil && parent.SameTriple(a)
}

// escape performs minimal escaping for SVG text content.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
