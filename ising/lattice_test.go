// Package ising_test - lattice builder: exact 10x10 wiring, degree profile,
// idempotence, and configuration errors.
package ising_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hogwild/ising"
)

// TestLattice_TenByTen pins the canonical 10x10 wiring: corner neighbor
// sets and the interior degree of 4.
func TestLattice_TenByTen(t *testing.T) {
	const (
		n    = 100
		side = 10
	)
	g, err := ising.Lattice(n, 4)
	require.NoError(t, err)
	require.Equal(t, n, g.Order())

	// Top-left and bottom-right corners.
	require.ElementsMatch(t, []int{1, 10}, g.Neighbors(0))
	require.ElementsMatch(t, []int{98, 89}, g.Neighbors(99))

	// Every interior vertex has exactly 4 neighbors: up, down, left, right.
	for r := 1; r < side-1; r++ {
		for c := 1; c < side-1; c++ {
			v := r*side + c
			require.Equal(t, 4, g.Degree(v), "interior vertex %d", v)
			require.ElementsMatch(t,
				[]int{v - 1, v + 1, v - side, v + side},
				g.Neighbors(v))
		}
	}
}

// TestLattice_DegreeProfile checks corners, borders and interior counts.
func TestLattice_DegreeProfile(t *testing.T) {
	const side = 6
	g, err := ising.Lattice(side*side, 4)
	require.NoError(t, err)

	var twos, threes, fours int
	for v := 0; v < g.Order(); v++ {
		switch g.Degree(v) {
		case 2:
			twos++
		case 3:
			threes++
		case 4:
			fours++
		default:
			t.Fatalf("vertex %d has impossible degree %d", v, g.Degree(v))
		}
	}
	require.Equal(t, 4, twos, "corners")
	require.Equal(t, 4*(side-2), threes, "border cells")
	require.Equal(t, (side-2)*(side-2), fours, "interior cells")
}

// TestLattice_Deterministic verifies two builds yield identical adjacency.
func TestLattice_Deterministic(t *testing.T) {
	g1, err := ising.Lattice(64, 4)
	require.NoError(t, err)
	g2, err := ising.Lattice(64, 4)
	require.NoError(t, err)

	require.Equal(t, adjacency(g1), adjacency(g2))
}

// TestLattice_Errors checks the fail-fast configuration sentinels.
func TestLattice_Errors(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		delta int
		want  error
	}{
		{"DegreeThree", 100, 3, ising.ErrLatticeDegree},
		{"DegreeFive", 100, 5, ising.ErrLatticeDegree},
		{"NotSquare", 10, 4, ising.ErrNotPerfectSquare},
		{"ZeroVertices", 0, 4, ising.ErrTooFewVertices},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ising.Lattice(tc.n, tc.delta)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
