// SPDX-License-Identifier: MIT
// Package: hogwild/ising
//
// config.go - internal build configuration and deterministic defaults.
//
// Design:
//   - buildConfig is the single source of truth for builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuildConfig applies options in order (later overrides earlier).
//   - The edge and retry budgets default to n*n, matching the classic
//     synthetic-Ising construction; 0 means "resolve to n*n at build time"
//     because n is not known when options are applied.

package ising

import "math/rand"

// buildConfig aggregates all knobs used by graph and state constructors.
// It is passed by VALUE to builders (immutable to callers).
type buildConfig struct {
	// rng drives stochastic construction; nil resolves to a fixed-seed
	// stream so unconfigured builds stay reproducible.
	rng *rand.Rand
	// maxEdges caps the number of edge insertions in Random; 0 = n*n.
	maxEdges int
	// maxInsertTries caps consecutive rejected placements before Random
	// returns the partial graph; 0 = n*n.
	maxInsertTries int
}

// defaultBuildSeed is the fixed seed used when no RNG is supplied. The value
// is arbitrary but stable to keep unconfigured runs reproducible.
const defaultBuildSeed int64 = 1

// newBuildConfig constructs a config with deterministic defaults and applies
// all options in order. Complexity: O(len(opts)) time, O(1) space.
func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		rng:            nil, // resolved per-build via buildRNG
		maxEdges:       0,   // resolved to n*n at build time
		maxInsertTries: 0,   // resolved to n*n at build time
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// buildRNG resolves the RNG for one build: the configured stream if present,
// otherwise a fresh deterministic default stream. Complexity: O(1).
func (c buildConfig) buildRNG() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rand.New(rand.NewSource(defaultBuildSeed))
}
