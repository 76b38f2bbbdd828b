// SPDX-License-Identifier: MIT
// Package: hogwild/ising
//
// lattice.go - deterministic 2D grid construction.
//
// Canonical model:
//   - Arrange n vertices row-major on a side*side grid (side = sqrt(n)).
//   - Connect each cell to its Right and Bottom neighbor where they exist;
//     each edge is added exactly once with both directions recorded.
//   - Interior cells end at degree 4, edges at 3, corners at 2.
//
// Contract:
//   - delta must be exactly 4 (else ErrLatticeDegree): the 4-neighborhood
//     grid cannot honor any other bound.
//   - n >= 1 and a perfect square (else ErrTooFewVertices / ErrNotPerfectSquare).
//   - Fully deterministic: two builds with equal parameters yield
//     structurally identical adjacency.
//
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.

package ising

import (
	"fmt"
	"math"
)

// File-local constants (stable method tag, structural requirements).
const (
	methodLattice      = "Lattice"
	minLatticeVertices = 1
	latticeDegree      = 4 // the only bound a 4-neighborhood grid satisfies
)

// Lattice builds an undirected side*side grid graph over n vertices, where
// side = sqrt(n). Vertex ids are row-major: cell (r,c) is r*side + c.
func Lattice(n, delta int) (*Graph, error) {
	// 1) Validate parameters early; lattice mode is strict by design.
	if n < minLatticeVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodLattice, n, minLatticeVertices, ErrTooFewVertices)
	}
	if delta != latticeDegree {
		return nil, fmt.Errorf("%s: delta=%d (must be %d): %w",
			methodLattice, delta, latticeDegree, ErrLatticeDegree)
	}
	side := int(math.Sqrt(float64(n)))
	if side*side != n {
		return nil, fmt.Errorf("%s: n=%d has no integer square root: %w",
			methodLattice, n, ErrNotPerfectSquare)
	}

	g := newGraph(n, latticeDegree)

	// 2) Emit edges in row-major order: for each cell, Right then Bottom.
	//    Stable order keeps adjacency lists identical across builds.
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				g.addEdge(v, v+1) // right neighbor (r, c+1)
			}
			if r+1 < side {
				g.addEdge(v, v+side) // bottom neighbor (r+1, c)
			}
		}
	}

	return g, nil
}
