// SPDX-License-Identifier: MIT
// Package: hogwild/ising
//
// state.go - the spin-state vector.
//
// Design:
//   - State is a plain slice of independently-addressable spin cells shared
//     by reference across sampling workers. It is the ONLY mutable entity
//     during a sampling run, and it is mutated WITHOUT locks or atomics:
//     concurrent mixed reads/writes are the Hogwild approximation and must
//     not be "fixed" by adding synchronization (that would change the
//     sampling semantics, not just its performance).
//   - Consumers that need a consistent view take Snapshot() at a join point.

package ising

import "fmt"

// State holds one spin per vertex, indexed by vertex id.
type State []Spin

// NewState returns a State of length n where each entry is independently
// SpinUp or SpinDown with equal probability. The random source is
// non-cryptographic; use WithSeed for reproducible initial conditions.
// Complexity: O(n).
func NewState(n int, opts ...BuildOption) (State, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewState: n=%d < 0: %w", n, ErrTooFewVertices)
	}

	cfg := newBuildConfig(opts...)
	rng := cfg.buildRNG()

	s := make(State, n)
	for i := range s {
		if rng.Intn(2) == 0 {
			s[i] = SpinUp
		} else {
			s[i] = SpinDown
		}
	}

	return s, nil
}

// Snapshot returns an independent copy of the state. Safe to call only at a
// point where no worker is mid-round (the driver's join point); during a
// round a copy would observe torn, in-flight values. Complexity: O(n).
func (s State) Snapshot() State {
	out := make(State, len(s))
	copy(out, s)

	return out
}

// Magnetization returns the mean spin of the state, the standard one-number
// observable of an Ising run: +1 all-up, -1 all-down, near 0 disordered.
// Returns 0 for an empty state. Complexity: O(n).
func (s State) Magnetization() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0
	for _, sp := range s {
		sum += int(sp)
	}

	return float64(sum) / float64(len(s))
}
