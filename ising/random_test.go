// Package ising_test exercises the randomized graph builder: degree bound,
// symmetry, determinism, and graceful budget exhaustion.
package ising_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hogwild/ising"
)

// adjacency collects every adjacency list of g for structural comparison.
func adjacency(g *ising.Graph) [][]int {
	out := make([][]int, g.Order())
	for v := 0; v < g.Order(); v++ {
		out[v] = append([]int(nil), g.Neighbors(v)...)
	}
	return out
}

// countOf returns how many adjacency slots of v reference u (duplicate edges
// occupy one slot each).
func countOf(g *ising.Graph, v, u int) int {
	c := 0
	for _, w := range g.Neighbors(v) {
		if w == u {
			c++
		}
	}
	return c
}

// TestRandom_DegreeBound verifies |neighbors(v)| <= delta for every vertex,
// across several seeds, and that no self-loops appear.
func TestRandom_DegreeBound(t *testing.T) {
	const (
		n     = 200
		delta = 3
	)
	for _, seed := range []int64{1, 7, 42, 1337} {
		g, err := ising.Random(n, delta, ising.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, n, g.Order())

		for v := 0; v < n; v++ {
			require.LessOrEqual(t, g.Degree(v), delta, "seed=%d vertex=%d", seed, v)
			require.Zero(t, countOf(g, v, v), "seed=%d self-loop at %d", seed, v)
		}
	}
}

// TestRandom_Symmetry verifies the undirected invariant as a multiset
// property: u occurs in v's list exactly as often as v occurs in u's.
func TestRandom_Symmetry(t *testing.T) {
	g, err := ising.Random(150, 4, ising.WithSeed(11))
	require.NoError(t, err)

	for v := 0; v < g.Order(); v++ {
		for _, u := range g.Neighbors(v) {
			require.Equal(t, countOf(g, v, u), countOf(g, u, v),
				"asymmetric edge %d-%d", v, u)
		}
	}
}

// TestRandom_Deterministic verifies identical adjacency for a fixed seed.
func TestRandom_Deterministic(t *testing.T) {
	g1, err := ising.Random(100, 3, ising.WithSeed(5))
	require.NoError(t, err)
	g2, err := ising.Random(100, 3, ising.WithSeed(5))
	require.NoError(t, err)

	require.Equal(t, adjacency(g1), adjacency(g2))
}

// TestRandom_BudgetExhaustion forces placement to stall: with two vertices
// and delta=1 only a single edge fits, and the builder must hand back the
// partial graph without error once the retry budget is consumed.
func TestRandom_BudgetExhaustion(t *testing.T) {
	g, err := ising.Random(2, 1,
		ising.WithSeed(3),
		ising.WithMaxEdges(50),
		ising.WithMaxInsertTries(100),
	)
	require.NoError(t, err)

	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
}

// TestRandom_ZeroDelta admits no edges at all.
func TestRandom_ZeroDelta(t *testing.T) {
	g, err := ising.Random(10, 0, ising.WithSeed(1))
	require.NoError(t, err)
	for v := 0; v < g.Order(); v++ {
		require.Zero(t, g.Degree(v))
	}
}

// TestRandom_Errors checks parameter validation sentinels.
func TestRandom_Errors(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		delta int
		want  error
	}{
		{"OneVertex", 1, 3, ising.ErrTooFewVertices},
		{"ZeroVertices", 0, 3, ising.ErrTooFewVertices},
		{"NegativeDelta", 10, -1, ising.ErrBadMaxDegree},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ising.Random(tc.n, tc.delta)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
