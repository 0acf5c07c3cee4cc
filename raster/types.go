package raster

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for raster operations.
var (
	// ErrBadShape indicates a shape with fewer than two sizes or a negative size.
	ErrBadShape = errors.New("raster: shape must hold two non-negative sizes")
	// ErrShapeMismatch indicates a buffer or grid whose size does not match the expected shape.
	ErrShapeMismatch = errors.New("raster: shape mismatch")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("raster: coordinate out of bounds")
	// ErrNilMatrix indicates a nil matrix passed to FieldFromMatrix.
	ErrNilMatrix = errors.New("raster: matrix is nil")
)

// Label is the set of numeric types a label image may be stored in.
type Label interface {
	constraints.Integer | constraints.Float
}

// Offsets4 holds the 4-connected neighbor offsets in scan order:
// west, east, north, south.
var Offsets4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable row-major 2D grid of values.
// data has exactly width*height elements; data[y*width+x] is the value at (x,y).
type Grid[T Label] struct {
	width, height int
	data          []T
}

// Field is a per-pixel scalar cost map.
type Field = Grid[float32]
