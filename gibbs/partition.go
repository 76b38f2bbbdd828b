// SPDX-License-Identifier: MIT
// Package: hogwild/gibbs
//
// partition.go - the Hogwild access pattern.
//
// Canonical model:
//   - [0,n) is split into w contiguous spans: each of the first w-1 workers
//     gets floor(n/w) indices, the last worker takes the remainder.
//   - Exactly one batch per worker. The batch count is surfaced as a
//     generalization point (multi-batch schedules exist in the literature)
//     but is always 1 in the Hogwild scheme.
//   - Contiguity is a locality choice, not a correctness requirement: any
//     disjoint, exhaustive partition would sample the same distribution.
//
// Complexity: O(w) time and space.

package gibbs

import "fmt"

// BatchesPerWorker is the number of batches each worker owns under the
// Hogwild schedule.
const BatchesPerWorker = 1

// Span is a half-open range [Lo,Hi) of vertex ids assigned to one worker.
// A span may be empty (Lo == Hi) when there are more workers than vertices.
type Span struct {
	Lo, Hi int
}

// Len returns the number of vertices in the span. Complexity: O(1).
func (sp Span) Len() int { return sp.Hi - sp.Lo }

// Partition splits [0,n) into w contiguous disjoint spans covering every
// index exactly once, and reports the batch count per worker (always
// BatchesPerWorker). Computed once before sampling; immutable thereafter.
func Partition(n, w int) ([]Span, int, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("Partition: n=%d: %w", n, ErrBadVertexCount)
	}
	if w < 1 {
		return nil, 0, fmt.Errorf("Partition: w=%d: %w", w, ErrNoWorkers)
	}

	spans := make([]Span, w)
	size := n / w // first w-1 workers get exactly this many
	lo := 0
	for i := 0; i < w-1; i++ {
		spans[i] = Span{Lo: lo, Hi: lo + size}
		lo += size
	}
	// The last worker absorbs the integer-division remainder.
	spans[w-1] = Span{Lo: lo, Hi: n}

	return spans, BatchesPerWorker, nil
}
