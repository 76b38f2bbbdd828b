// SPDX-License-Identifier: MIT
// Package: hogwild/ising
//
// options.go - functional options for graph and state construction.
//
// Contract (strict):
//   - Options are functional (type BuildOption func(*buildConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     builders themselves never panic at runtime.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through buildConfig.

package ising

import "math/rand"

// BuildOption customizes a constructor by mutating a buildConfig before
// construction begins. Applying K options costs O(K) time, O(1) space.
type BuildOption func(*buildConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and experiments to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) BuildOption {
	return func(c *buildConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic construction.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuildOption {
	if r == nil {
		panic("ising: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithMaxEdges caps the number of edge insertions attempted by Random.
// Panics if m < 0. Zero restores the default (n*n).
// Complexity: O(1).
func WithMaxEdges(m int) BuildOption {
	if m < 0 {
		panic("ising: WithMaxEdges(m<0)")
	}
	return func(c *buildConfig) {
		c.maxEdges = m
	}
}

// WithMaxInsertTries caps the consecutive rejected placements Random
// tolerates before returning the partial graph. Panics if m < 0. Zero
// restores the default (n*n).
// Complexity: O(1).
func WithMaxInsertTries(m int) BuildOption {
	if m < 0 {
		panic("ising: WithMaxInsertTries(m<0)")
	}
	return func(c *buildConfig) {
		c.maxInsertTries = m
	}
}
