// Package spinview renders read-only snapshots of an Ising sampling run:
// spin states as bit-strings or 2D grids, and graph summary statistics.
//
// The core packages expose snapshots and stats as plain values and do no
// formatting themselves; everything textual lives here.
//
// Errors:
//
//   - ErrBadSide: grid rendering requested with side*side != len(snapshot).
package spinview
