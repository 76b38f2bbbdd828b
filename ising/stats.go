// SPDX-License-Identifier: MIT
// Package: hogwild/ising
//
// stats.go - degree statistics of a built graph.
//
// The random builder is best-effort, so the realized degree distribution is
// the first thing an experiment inspects: a low average degree relative to
// the bound means the retry budget ran out early.

package ising

import "gonum.org/v1/gonum/stat"

// DegreeStats summarizes the degree distribution of a Graph.
type DegreeStats struct {
	// Min and Max are the smallest and largest per-vertex degree.
	Min, Max int
	// Avg is the mean degree across all vertices.
	Avg float64
	// EdgeSlots is the total number of adjacency entries; every accepted
	// undirected edge contributes two slots (duplicates included).
	EdgeSlots int
}

// GraphStats computes min/max/average degree and the total slot count.
// An order-0 graph yields the zero value. Complexity: O(n) time and space.
func GraphStats(g *Graph) DegreeStats {
	n := g.Order()
	if n == 0 {
		return DegreeStats{}
	}

	degrees := make([]float64, n)
	ds := DegreeStats{Min: g.Degree(0), Max: g.Degree(0)}
	for v := 0; v < n; v++ {
		d := g.Degree(v)
		degrees[v] = float64(d)
		ds.EdgeSlots += d
		if d < ds.Min {
			ds.Min = d
		}
		if d > ds.Max {
			ds.Max = d
		}
	}
	ds.Avg = stat.Mean(degrees, nil)

	return ds
}
