// Package frontier builds the initial frontier of a watershed-style
// tessellation: a priority queue of weighted candidate edges leading out of
// every labeled pixel of a 2D raster.
//
// For each active pixel p (see raster.IsActive) and each in-bounds
// 4-connected neighbor n of p, Build emits one Entry
//
//	Weight = 1 + |field[p] + field[n]|
//	X, Y   = coordinates of n
//	Label  = label of p
//
// regardless of whether n is itself labeled. Entries are never merged: two
// active pixels next to the same neighbor each emit their own entry.
//
// Ordering:
//
//   - Frontier is a binary max-heap on Weight: Pop returns the heaviest entry.
//   - Equal weights pop in insertion order. During Build that is the row-major
//     scan order (y outer, x inner, offsets west, east, north, south).
//
// Complexity:
//
//   - Build: O(W×H) scan plus O(E) heapify, E ≤ 4×W×H. Memory: O(W×H).
//   - Push, Pop: O(log E). Peek, Len: O(1).
//
// Options:
//
//   - WithField: per-pixel cost map; absent means a uniform zero field.
//   - WithOnEmit, WithOnSkip: observation hooks during the scan.
//   - WithExtraCapacity: room for pushes of a later growth phase.
//
// Errors:
//
//   - ErrNilRaster: nil label grid.
//   - raster.ErrShapeMismatch: field shape differs from the label grid.
//   - ErrNonFiniteWeight: the field produced a NaN or infinite weight.
//   - ErrOptionViolation: an option was given an invalid value.
//   - raster.ErrOutOfBounds: Push of an entry outside the frontier's shape.
//
// Build never returns a partial frontier: it either succeeds completely or
// returns a nil frontier and an error. An all-background raster is not an
// error, it yields an empty frontier.
package frontier
