// Package ising models a synthetic pairwise Ising system: a sparse
// bounded-degree interaction graph plus a vector of binary spins.
//
// What:
//
//   - Graph: dense adjacency lists indexed by vertex id in [0,N).
//   - Random(n, delta): randomized edge insertion under a max-degree bound,
//     best-effort within a retry budget.
//   - Lattice(n, delta): deterministic 2D 4-neighborhood grid (delta must be 4,
//     n a perfect square).
//   - State: one spin (+1 or -1) per vertex; the only mutable entity during
//     sampling.
//   - GraphStats: min/max/average degree summary of a built graph.
//
// Why:
//
//   - Ising graphs are the standard benchmark topology for studying Gibbs
//     sampling dynamics; the random and lattice modes cover the irregular and
//     regular ends of the spectrum.
//
// Invariants:
//
//   - Edges are undirected: u appears in v's list iff v appears in u's.
//   - No vertex exceeds the configured maximum degree.
//   - No self-loops. Duplicate edges between the same pair MAY occur in
//     random mode (the generator does not deduplicate; see Random).
//
// Errors:
//
//   - ErrTooFewVertices: vertex count below the constructor's minimum.
//   - ErrBadMaxDegree: negative maximum degree.
//   - ErrLatticeDegree: lattice mode requested with a degree bound other than 4.
//   - ErrNotPerfectSquare: lattice mode requested with a non-square vertex count.
package ising
