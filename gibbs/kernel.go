// SPDX-License-Identifier: MIT
// Package: hogwild/gibbs
//
// kernel.go - the Gibbs transition kernel for a zero-field Ising model.
//
// Canonical model:
//   - For target vertex v, the local field is the sum of its neighbors'
//     spins. v's own value never enters the sum, so the field is the same
//     whichever spin v currently holds.
//   - The conditional log-weights are +beta*sum for +1 and -beta*sum for -1;
//     normalizing gives p(+1) = logistic(2*beta*sum).
//   - Draw u in [0,1); set +1 iff u <= p(+1). The inclusive comparison
//     mirrors the reference construction and is kept literally.
//
// Numerical note:
//   - p(+1) is evaluated in the branch-stable logistic form, never as
//     exp(x)/(exp(x)+exp(-x)): for |2*beta*sum| beyond ~700 the naive form
//     overflows float64 while the stable form saturates cleanly at 0 or 1.
//
// Concurrency:
//   - UpdateVertex writes exactly state[v] and reads state at v's neighbors.
//     Neighbor cells may be written concurrently by other workers; that is
//     the Hogwild model (see package doc). The supplied rng must be owned
//     by the calling worker.

package gibbs

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/hogwild/ising"
)

// ProbUp returns the conditional probability of sampling SpinUp given the
// neighbor spin sum and inverse temperature beta: logistic(2*beta*sum).
// Strictly increasing in sum for beta > 0; exactly 0.5 when sum == 0.
// Complexity: O(1).
func ProbUp(sum int, beta float64) float64 {
	x := 2 * beta * float64(sum)
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	// exp(x) underflows to 0 for very negative x, giving p -> 0 cleanly.
	e := math.Exp(x)

	return e / (1 + e)
}

// UpdateVertex resamples state[v] in place from its Gibbs conditional given
// the current neighbor spins. A vertex with no neighbors is a fair coin.
// Panics if a neighbor spin is outside {+1,-1}: that can only mean the
// shared state was corrupted, and sampling must not continue silently.
// Complexity: O(degree(v)).
func UpdateVertex(g *ising.Graph, state ising.State, v int, beta float64, rng *rand.Rand) {
	sum := 0
	for _, u := range g.Neighbors(v) {
		sp := state[u]
		if sp != ising.SpinUp && sp != ising.SpinDown {
			panic(fmt.Sprintf("gibbs: corrupted spin %d at vertex %d", sp, u))
		}
		sum += int(sp)
	}

	if rng.Float64() <= ProbUp(sum, beta) {
		state[v] = ising.SpinUp
	} else {
		state[v] = ising.SpinDown
	}
}
