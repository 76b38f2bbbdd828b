// Package hogwild is a simulation toolkit for studying approximate parallel
// Gibbs sampling (the "Hogwild" scheme) on synthetic Ising models.
//
// What is hogwild?
//
//	A small, deterministic-by-default library that brings together:
//		- ising/    - bounded-degree interaction graphs (random + 2D lattice)
//		              and the shared spin-state vector
//		- gibbs/    - the Gibbs transition kernel, the per-worker vertex
//		              partition, and the fork-join sampling driver
//		- spinview/ - read-only rendering of snapshots and graph statistics
//		- cmd/hogwild - a runnable experiment front-end
//
// The point of the exercise:
//
//	The driver lets W workers update the shared state concurrently with NO
//	locks and NO atomics. A worker's neighbor sums may mix pre- and
//	post-update values from other workers within the same round. That
//	approximation is the object of study, so the code keeps it on purpose
//	and documents where the races live. Everything around it (graph, access
//	pattern, configuration) is immutable during a run.
//
// Quick ASCII example (a 3x3 lattice mid-run):
//
//	110
//	100
//	001
//
// Start with gibbs.NewSampler; see cmd/hogwild for end-to-end wiring.
package hogwild
