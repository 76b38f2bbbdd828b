// SPDX-License-Identifier: MIT
// Package: hogwild/gibbs
//
// rng.go - deterministic RNG plumbing for the sampling workers.
//
// Goals:
//   - Determinism: same seed => identical per-worker streams across runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: one stream per worker, decorrelated by a SplitMix64 mix.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a *rand.Rand across
//     workers; use deriveRNG during setup to create one stream per worker.

package gibbs

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 resolves to defaultRNGSeed; any other seed is used verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the SplitMix64 finalizer (Vigna 2014). The avalanche step
// removes correlations between consecutive worker streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream for worker `stream`
// from a base RNG. If base is nil, defaultRNGSeed is the parent. Otherwise
// base.Int63() is consumed once so repeated derivations with the same stream
// id still yield distinct children.
// Call during setup only, never inside the sampling loop.
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
