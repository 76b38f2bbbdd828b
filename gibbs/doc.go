// Package gibbs runs approximate (Hogwild-style) Gibbs sampling over an
// ising.Graph, producing successive samples of the binary spin state.
//
// What:
//
//   - Partition(n, w): splits the vertex range [0,n) into w contiguous,
//     disjoint spans, one per worker (the Hogwild access pattern).
//   - ProbUp(sum, beta): the Gibbs conditional probability of sampling +1
//     given the neighbor spin sum, computed with a numerically stable
//     logistic.
//   - UpdateVertex: the transition kernel; resamples one spin in place from
//     its conditional distribution given current neighbor values.
//   - Sampler: the driver; a fixed number of fork-join rounds over a
//     persistent pool of workers.
//
// Consistency model (intentionally relaxed):
//
//	Within a round, workers read and write the shared ising.State with no
//	locking, no atomics and no barriers. A neighbor sum may mix pre- and
//	post-update values from other workers' in-flight updates. This is the
//	Hogwild trade: statistical exactness for throughput. Do NOT add
//	synchronization around State access; it would change the sampler into a
//	different (and slower) algorithm, not fix a bug. Within one worker its
//	own span is updated strictly sequentially. The Graph and the access
//	pattern are immutable during sampling and safe to share.
//
// Determinism:
//
//   - Each worker owns an independent RNG stream derived from the base seed
//     (math/rand.Rand is not goroutine-safe and is never shared).
//   - Single-worker runs are fully reproducible for a fixed seed; with
//     several workers the interleaving itself is a source of randomness.
//
// Errors:
//
//   - ErrBadVertexCount, ErrNoWorkers: invalid partition parameters.
//   - ErrNilGraph, ErrStateSize: driver wired with mismatched collaborators.
//   - ErrBadIterations: negative round count.
//
// A spin value outside {+1,-1} observed by the kernel means the shared state
// was corrupted; the kernel panics rather than sampling from garbage.
package gibbs
