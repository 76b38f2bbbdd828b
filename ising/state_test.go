// Package ising_test - spin-state initialization and snapshots.
package ising_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/hogwild/ising"
)

// TestNewState_LengthAndDomain verifies the two State invariants: length n
// and every entry in {+1,-1}.
func TestNewState_LengthAndDomain(t *testing.T) {
	const n = 1000
	s, err := ising.NewState(n, ising.WithSeed(2))
	require.NoError(t, err)
	require.Len(t, s, n)

	for v, sp := range s {
		require.Contains(t, []ising.Spin{ising.SpinUp, ising.SpinDown}, sp,
			"vertex %d", v)
	}
}

// TestNewState_Balanced checks the equal-probability contract statistically:
// the empirical up-fraction must fall inside a 1-1e-6 normal-approximation
// band around 0.5.
func TestNewState_Balanced(t *testing.T) {
	const n = 10000
	s, err := ising.NewState(n, ising.WithSeed(17))
	require.NoError(t, err)

	ups := 0
	for _, sp := range s {
		if sp == ising.SpinUp {
			ups++
		}
	}
	freq := float64(ups) / float64(n)

	band := distuv.Normal{Mu: 0.5, Sigma: math.Sqrt(0.25 / float64(n))}
	hi := band.Quantile(1 - 1e-6)
	lo := band.Quantile(1e-6)
	require.Greater(t, freq, lo, "up-fraction suspiciously low")
	require.Less(t, freq, hi, "up-fraction suspiciously high")
}

// TestNewState_Deterministic verifies identical states for a fixed seed.
func TestNewState_Deterministic(t *testing.T) {
	s1, err := ising.NewState(500, ising.WithSeed(9))
	require.NoError(t, err)
	s2, err := ising.NewState(500, ising.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, s1, s2)
}

// TestNewState_NegativeN rejects a negative length.
func TestNewState_NegativeN(t *testing.T) {
	_, err := ising.NewState(-1)
	require.ErrorIs(t, err, ising.ErrTooFewVertices)
}

// TestState_Snapshot verifies snapshot independence from the source state.
func TestState_Snapshot(t *testing.T) {
	s, err := ising.NewState(8, ising.WithSeed(4))
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Equal(t, s, snap)

	snap[0] = -snap[0] // flipping the copy must not touch the original
	require.NotEqual(t, s[0], snap[0])
}

// TestState_Magnetization pins the observable on hand-built states.
func TestState_Magnetization(t *testing.T) {
	cases := []struct {
		name string
		s    ising.State
		want float64
	}{
		{"Empty", ising.State{}, 0},
		{"AllUp", ising.State{1, 1, 1, 1}, 1},
		{"AllDown", ising.State{-1, -1}, -1},
		{"Mixed", ising.State{1, 1, -1, -1}, 0},
		{"ThreeQuarters", ising.State{1, 1, 1, -1}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, tc.s.Magnetization(), 1e-15)
		})
	}
}
