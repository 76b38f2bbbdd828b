// SPDX-License-Identifier: MIT
// Package: hogwild/ising
//
// errors.go - sentinel errors for the ising package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with fmt.Errorf("...: %w", ErrX).
//   - Constructors never panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package ising

import "errors"

// ErrTooFewVertices indicates a vertex count below the minimum required by
// the requested constructor (Random needs at least 2, Lattice at least 1,
// NewState at least 0).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* reject configuration */ }.
var ErrTooFewVertices = errors.New("ising: vertex count too small")

// ErrBadMaxDegree indicates a negative maximum-degree bound.
// Usage: if errors.Is(err, ErrBadMaxDegree) { /* reject configuration */ }.
var ErrBadMaxDegree = errors.New("ising: max degree out of range")

// ErrLatticeDegree indicates Lattice was requested with a degree bound other
// than 4. The 2D 4-neighborhood grid is only meaningful for delta == 4; any
// other value is a structural configuration error, not something to degrade
// around.
// Usage: if errors.Is(err, ErrLatticeDegree) { /* switch mode or fix delta */ }.
var ErrLatticeDegree = errors.New("ising: lattice mode requires max degree 4")

// ErrNotPerfectSquare indicates Lattice was requested with a vertex count
// that is not a perfect square, so no side length exists for the grid.
// Usage: if errors.Is(err, ErrNotPerfectSquare) { /* fix vertex count */ }.
var ErrNotPerfectSquare = errors.New("ising: vertex count is not a perfect square")
