// SPDX-License-Identifier: MIT
// Package: hogwild/gibbs
//
// options.go - functional options for the Sampler.
//
// Contract (strict):
//   - Options are functional (type Option func(*samplerConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     NewSampler and Run return sentinel errors, never panic.
//   - No hidden globals; everything flows through samplerConfig.

package gibbs

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hogwild/ising"
)

// RoundHook receives the 1-based round number and an independent snapshot of
// the state, taken at the round's join point (no worker is mid-update).
// Hooks run on the driver goroutine; a slow hook stalls the next round.
type RoundHook func(round int, snap ising.State)

// Option customizes a Sampler at construction time.
type Option func(*samplerConfig)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultWorkers is the pool size when WithWorkers is not given.
	defaultWorkers = 4
)

// samplerConfig aggregates all driver knobs; resolved once in NewSampler.
type samplerConfig struct {
	workers int            // pool size W (>= 1)
	rng     *rand.Rand     // base stream; per-worker streams are derived
	log     zerolog.Logger // Nop unless WithLogger is supplied
	hook    RoundHook      // nil = no per-round observation
}

// newSamplerConfig applies options over deterministic defaults.
// Complexity: O(len(opts)).
func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		workers: defaultWorkers,
		rng:     nil, // resolved via rngFromSeed(0) policy in NewSampler
		log:     zerolog.Nop(),
		hook:    nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets the worker pool size W. Panics if w < 1.
// Complexity: O(1).
func WithWorkers(w int) Option {
	if w < 1 {
		panic("gibbs: WithWorkers(w<1)")
	}
	return func(c *samplerConfig) {
		c.workers = w
	}
}

// WithSeed seeds the base RNG deterministically; per-worker streams are
// derived from it. Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *samplerConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit base RNG. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gibbs: WithRand(nil)")
	}
	return func(c *samplerConfig) {
		c.rng = r
	}
}

// WithLogger attaches a zerolog logger; the driver emits one Debug event per
// round and one Info summary per run. Default is zerolog.Nop().
// Complexity: O(1).
func WithLogger(log zerolog.Logger) Option {
	return func(c *samplerConfig) {
		c.log = log
	}
}

// WithRoundHook registers a per-round observer. Panics on nil.
// Complexity: O(1).
func WithRoundHook(h RoundHook) Option {
	if h == nil {
		panic("gibbs: WithRoundHook(nil)")
	}
	return func(c *samplerConfig) {
		c.hook = h
	}
}
