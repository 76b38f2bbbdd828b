// SPDX-License-Identifier: MIT
// Package: hogwild/ising
//
// random.go - randomized bounded-degree graph construction.
//
// Canonical model:
//   - Repeatedly draw two random vertices; accept the pair as an undirected
//     edge iff the endpoints are distinct and neither is at the degree bound.
//   - A rejected draw is retried; after maxInsertTries consecutive rejections
//     the builder gives up and returns the graph built so far.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices), delta >= 0 (else ErrBadMaxDegree).
//   - Best effort: the result satisfies the degree bound and symmetry
//     invariants but is NOT guaranteed delta-regular; callers must tolerate
//     smaller degrees when the retry budget runs out.
//   - Duplicate edges between the same pair are permitted: the generator
//     does not deduplicate, so a pair drawn twice consumes degree budget
//     without adding new structure. This is an accepted property of the
//     construction, kept deliberately.
//   - No self-loops.
//
// Complexity:
//   - Expected O(maxEdges) accepted insertions; worst case an additional
//     O(maxInsertTries) rejected draws per accepted edge.
//
// Determinism:
//   - Identical adjacency for a fixed seed, n, delta and budgets.

package ising

import "fmt"

// File-local constants (no magic literals; stable method tag).
const (
	methodRandom      = "Random"
	minRandomVertices = 2
	minDegreeBound    = 0
)

// Random builds an undirected graph over n vertices where no vertex exceeds
// degree delta, by randomized edge insertion with a bounded retry budget.
func Random(n, delta int, opts ...BuildOption) (*Graph, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandom, n, minRandomVertices, ErrTooFewVertices)
	}
	if delta < minDegreeBound {
		return nil, fmt.Errorf("%s: delta=%d < %d: %w",
			methodRandom, delta, minDegreeBound, ErrBadMaxDegree)
	}

	// 2) Resolve configuration and budgets (0 means n*n, see config.go).
	cfg := newBuildConfig(opts...)
	maxEdges := cfg.maxEdges
	if maxEdges == 0 {
		maxEdges = n * n
	}
	maxTries := cfg.maxInsertTries
	if maxTries == 0 {
		maxTries = n * n
	}
	rng := cfg.buildRNG()

	g := newGraph(n, delta)

	// delta == 0 admits no edges at all; skip the sampling loop entirely
	// instead of burning the whole retry budget on guaranteed rejections.
	if delta == 0 {
		return g, nil
	}

	// 3) Insert edges until the edge budget is met or placement stalls.
	var u, v int
	for e := 0; e < maxEdges; e++ {
		u = rng.Intn(n)
		v = rng.Intn(n)

		// Redraw while the pair is not insertable: identical endpoints or
		// either endpoint already at the degree bound.
		tries := 0
		for u == v || g.Degree(u) >= delta || g.Degree(v) >= delta {
			// Exhaustion is not an error: degrade gracefully to the
			// best graph achieved so far.
			if tries++; tries > maxTries {
				return g, nil
			}
			u = rng.Intn(n)
			v = rng.Intn(n)
		}

		g.addEdge(u, v)
	}

	return g, nil
}
