// SPDX-License-Identifier: MIT
// Package: hogwild/ising
//
// types.go - core Graph and Spin types.
//
// Design:
//   - Vertex ids are a contiguous range [0,N), so adjacency is a dense
//     slice-of-slices indexed directly by id (strictly better locality and
//     lookup cost than an associative map with integer keys).
//   - A Graph is immutable once its constructor returns; it is shared by
//     reference across sampling workers without synchronization.

package ising

// Spin is a single binary spin value. The only legal values are SpinUp (+1)
// and SpinDown (-1); anything else signals corruption of shared state and is
// treated as an unrecoverable invariant violation by consumers.
type Spin int8

// Legal spin values.
const (
	// SpinUp is the +1 spin orientation.
	SpinUp Spin = +1
	// SpinDown is the -1 spin orientation.
	SpinDown Spin = -1
)

// Graph is an undirected interaction graph over vertices [0,N) with a
// configured maximum degree. Adjacency lists are append-ordered and may
// contain duplicate entries for the same neighbor (random mode does not
// deduplicate). Read-only after construction.
type Graph struct {
	// adj[v] lists the neighbors of v in insertion order.
	adj [][]int
	// maxDegree is the degree bound the builder enforced.
	maxDegree int
}

// newGraph allocates an edgeless graph over n vertices with the given
// degree bound. Complexity: O(n) time and space.
func newGraph(n, maxDegree int) *Graph {
	return &Graph{
		adj:       make([][]int, n),
		maxDegree: maxDegree,
	}
}

// addEdge records the undirected edge u-v by appending each endpoint to the
// other's adjacency list. Callers are responsible for the degree check; this
// method is not exported because a Graph is immutable once built.
// Complexity: amortized O(1).
func (g *Graph) addEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

// Order returns the number of vertices N. Complexity: O(1).
func (g *Graph) Order() int { return len(g.adj) }

// MaxDegree returns the degree bound the graph was built under.
// Complexity: O(1).
func (g *Graph) MaxDegree() int { return g.maxDegree }

// Degree returns the number of adjacency slots of v, counting duplicate
// edges once per slot. Complexity: O(1).
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Neighbors returns the adjacency list of v. The returned slice is the
// graph's internal storage and MUST be treated as read-only; it is exposed
// directly so the sampling hot path iterates without per-call allocation.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }
