// Package ising_test - degree statistics.
package ising_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hogwild/ising"
)

// TestGraphStats_Lattice pins exact statistics for the 10x10 grid:
// 180 undirected edges = 360 adjacency slots, average degree 3.6.
func TestGraphStats_Lattice(t *testing.T) {
	g, err := ising.Lattice(100, 4)
	require.NoError(t, err)

	ds := ising.GraphStats(g)
	require.Equal(t, 2, ds.Min)
	require.Equal(t, 4, ds.Max)
	require.Equal(t, 360, ds.EdgeSlots)
	require.InDelta(t, 3.6, ds.Avg, 1e-12)
}

// TestGraphStats_SingleVertex covers the edgeless boundary.
func TestGraphStats_SingleVertex(t *testing.T) {
	g, err := ising.Lattice(1, 4)
	require.NoError(t, err)

	ds := ising.GraphStats(g)
	require.Equal(t, ising.DegreeStats{Min: 0, Max: 0, Avg: 0, EdgeSlots: 0}, ds)
}

// TestGraphStats_RandomWithinBound checks Max <= delta on a random build.
func TestGraphStats_RandomWithinBound(t *testing.T) {
	const delta = 3
	g, err := ising.Random(300, delta, ising.WithSeed(21))
	require.NoError(t, err)

	ds := ising.GraphStats(g)
	require.LessOrEqual(t, ds.Max, delta)
	require.LessOrEqual(t, ds.Avg, float64(delta))
	require.GreaterOrEqual(t, ds.Min, 0)
}
