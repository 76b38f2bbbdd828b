package spinview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hogwild/ising"
)

// ErrBadSide indicates Grid was called with a side length that does not
// match the snapshot size.
var ErrBadSide = errors.New("spinview: side*side must equal snapshot length")

// Glyphs for the two spin orientations.
const (
	upGlyph   = '1'
	downGlyph = '0'
)

// glyph maps a spin to its display rune; any non-spin value renders as '?'
// so a corrupted snapshot is visible rather than hidden.
func glyph(sp ising.Spin) rune {
	switch sp {
	case ising.SpinUp:
		return upGlyph
	case ising.SpinDown:
		return downGlyph
	default:
		return '?'
	}
}

// BitString renders a snapshot as one character per vertex, '1' for +1 and
// '0' for -1, in vertex-id order. Complexity: O(n).
func BitString(snap ising.State) string {
	var b strings.Builder
	b.Grow(len(snap))
	for _, sp := range snap {
		b.WriteRune(glyph(sp))
	}

	return b.String()
}

// Grid renders a snapshot of a side*side lattice as `side` rows of glyphs,
// row-major, one row per line. Complexity: O(n).
func Grid(snap ising.State, side int) (string, error) {
	if side < 0 || side*side != len(snap) {
		return "", fmt.Errorf("Grid: side=%d, len=%d: %w", side, len(snap), ErrBadSide)
	}

	var b strings.Builder
	b.Grow(len(snap) + side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			b.WriteRune(glyph(snap[r*side+c]))
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// Adjacency renders the full adjacency of g, one "v: n1, n2" line per
// vertex, in vertex-id order. Intended for small graphs and debugging.
// Complexity: O(n + edge slots).
func Adjacency(g *ising.Graph) string {
	var b strings.Builder
	for v := 0; v < g.Order(); v++ {
		fmt.Fprintf(&b, "%d:", v)
		for i, u := range g.Neighbors(v) {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, " %d", u)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Summary formats the degree statistics of g in the classic
// min/max/average form. Complexity: O(n).
func Summary(g *ising.Graph) string {
	ds := ising.GraphStats(g)

	var b strings.Builder
	b.WriteString("Graph statistics:\n")
	fmt.Fprintf(&b, "Min Degree: %d\n", ds.Min)
	fmt.Fprintf(&b, "Max Degree: %d\n", ds.Max)
	fmt.Fprintf(&b, "Avg Degree: %f\n", ds.Avg)

	return b.String()
}
