// SPDX-License-Identifier: MIT
// Package: hogwild/gibbs
//
// sampler.go - the fork-join sampling driver.
//
// Canonical model:
//   - W workers are spawned ONCE per Run and persist across rounds; each
//     round they are released together, sweep their fixed span in ascending
//     vertex order, and the driver joins them before the round counts as
//     finished. No per-round goroutine churn.
//   - No cancellation, no convergence check: Run performs exactly the
//     requested number of rounds and stops.
//
// Consistency (Hogwild, intentionally relaxed):
//   - The shared state is read and written during a round with no locks and
//     no atomics. The only synchronization in the whole driver is the
//     release/join handshake between rounds, which is what makes the
//     per-round RoundHook snapshot well-defined.

package gibbs

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/hogwild/ising"
)

// Sampler drives Hogwild Gibbs sampling over a fixed graph and shared state.
// Build one with NewSampler; the zero value is not usable.
type Sampler struct {
	graph *ising.Graph
	state ising.State
	beta  float64
	spans []Span
	cfg   samplerConfig
}

// NewSampler wires a driver over g and state with inverse temperature beta.
// The access pattern is computed here, once, and never changes. The state is
// retained by reference: the sampler mutates it in place.
//
// Errors: ErrNilGraph, ErrStateSize, plus Partition sentinels.
func NewSampler(g *ising.Graph, state ising.State, beta float64, opts ...Option) (*Sampler, error) {
	if g == nil {
		return nil, fmt.Errorf("NewSampler: %w", ErrNilGraph)
	}
	if len(state) != g.Order() {
		return nil, fmt.Errorf("NewSampler: len(state)=%d, order=%d: %w",
			len(state), g.Order(), ErrStateSize)
	}

	cfg := newSamplerConfig(opts...)

	spans, _, err := Partition(g.Order(), cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("NewSampler: %w", err)
	}

	return &Sampler{
		graph: g,
		state: state,
		beta:  beta,
		spans: spans,
		cfg:   cfg,
	}, nil
}

// Workers returns the pool size W. Complexity: O(1).
func (s *Sampler) Workers() int { return len(s.spans) }

// View returns an independent snapshot of the current state. Only call when
// no Run is in flight (Run itself snapshots at round boundaries for hooks).
// Complexity: O(n).
func (s *Sampler) View() ising.State { return s.state.Snapshot() }

// Run performs exactly `iterations` fork-join rounds and returns. Each round
// every worker applies the transition kernel to every vertex of its span in
// ascending order; the driver waits for all workers before the round is
// considered complete and before Run returns.
func (s *Sampler) Run(iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("Run: iterations=%d: %w", iterations, ErrBadIterations)
	}

	w := len(s.spans)
	var round sync.WaitGroup

	// Spawn the persistent pool: one goroutine per span, each with its own
	// derived RNG stream (math/rand.Rand must not be shared; see rng.go).
	// Workers block on their release channel between rounds and exit when
	// it is closed.
	release := make([]chan struct{}, w)
	for i := range s.spans {
		release[i] = make(chan struct{})
		go s.worker(s.spans[i], deriveRNG(s.cfg.rng, uint64(i)), release[i], &round)
	}
	defer func() {
		for _, ch := range release {
			close(ch)
		}
	}()

	for r := 1; r <= iterations; r++ {
		round.Add(w)
		for _, ch := range release {
			ch <- struct{}{}
		}
		round.Wait() // join point: all spans swept, state quiescent

		s.cfg.log.Debug().
			Int("round", r).
			Float64("magnetization", s.state.Magnetization()).
			Msg("round complete")

		if s.cfg.hook != nil {
			s.cfg.hook(r, s.state.Snapshot())
		}
	}

	s.cfg.log.Info().
		Int("iterations", iterations).
		Int("workers", w).
		Float64("beta", s.beta).
		Float64("magnetization", s.state.Magnetization()).
		Msg("sampling finished")

	return nil
}

// worker is the body of one pool goroutine: sweep the span once per release
// signal, strictly sequentially, then report back. Reads of neighbor spins
// race with other workers' writes by design (Hogwild).
func (s *Sampler) worker(sp Span, rng *rand.Rand, release <-chan struct{}, round *sync.WaitGroup) {
	for range release {
		for v := sp.Lo; v < sp.Hi; v++ {
			UpdateVertex(s.graph, s.state, v, s.beta, rng)
		}
		round.Done()
	}
}
