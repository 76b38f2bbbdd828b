// SPDX-License-Identifier: MIT
// Package: hogwild/gibbs
//
// errors.go - sentinel errors for the gibbs package.
//
// Error policy: same as the rest of the module. Sentinels only, wrapped with
// fmt.Errorf("...: %w", ...) at the failure site, branched on with errors.Is.

package gibbs

import "errors"

// ErrBadVertexCount indicates a negative vertex count passed to Partition.
var ErrBadVertexCount = errors.New("gibbs: vertex count must be non-negative")

// ErrNoWorkers indicates a non-positive worker count passed to Partition.
var ErrNoWorkers = errors.New("gibbs: worker count must be positive")

// ErrNilGraph indicates NewSampler was given a nil graph.
var ErrNilGraph = errors.New("gibbs: graph must not be nil")

// ErrStateSize indicates the state length does not match the graph order,
// so vertex ids and spin cells would not line up.
var ErrStateSize = errors.New("gibbs: state length must equal graph order")

// ErrBadIterations indicates a negative round count passed to Run.
var ErrBadIterations = errors.New("gibbs: iteration count must be non-negative")
