package raster

import "fmt"

// New returns a zero-filled width×height grid.
// Returns ErrBadShape if either size is negative.
// Complexity: O(W×H) time and memory.
func New[T Label](width, height int) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadShape, width, height)
	}

	return &Grid[T]{width: width, height: height, data: make([]T, width*height)}, nil
}

// FromSlice builds a grid from row-major data and a shape sequence.
// Only shape[0] (width) and shape[1] (height) are consulted; extra sizes are ignored.
// The data is copied, so later writes to data do not affect the grid.
//
// Returns ErrBadShape if len(shape) < 2 or a size is negative,
// ErrShapeMismatch if len(data) != width*height.
func FromSlice[T Label](data []T, shape ...int) (*Grid[T], error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("%w: got %d sizes", ErrBadShape, len(shape))
	}
	g, err := New[T](shape[0], shape[1])
	if err != nil {
		return nil, err
	}
	if len(data) != len(g.data) {
		return nil, fmt.Errorf("%w: %d values for a %dx%d grid", ErrShapeMismatch, len(data), g.width, g.height)
	}
	copy(g.data, data)

	return g, nil
}

// From2D builds a grid from rows, where rows[y][x] is the value at (x,y).
// The input is deep-copied. An empty rows slice yields a 0×0 grid.
// Returns ErrNonRectangular if any row length differs from the first.
func From2D[T Label](rows [][]T) (*Grid[T], error) {
	h := len(rows)
	if h == 0 {
		return &Grid[T]{}, nil
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g := &Grid[T]{width: w, height: h, data: make([]T, w*h)}
	for y, row := range rows {
		copy(g.data[y*w:(y+1)*w], row)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major offset y*Width + x.
// The caller must ensure InBounds(x, y).
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major offset back to (x,y).
// A zero-width grid has no offsets; it yields (0,0).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	if g.width == 0 {
		return 0, 0
	}

	return idx % g.width, idx / g.width
}

// At returns the value at (x,y), or ErrOutOfBounds.
func (g *Grid[T]) At(x, y int) (T, error) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}

	return g.data[g.Index(x, y)], nil
}

// Values returns a copy of the row-major data.
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.data))
	copy(out, g.data)

	return out
}

// Raw exposes the row-major backing slice without copying.
// Callers must treat it as read-only.
func (g *Grid[T]) Raw() []T {
	return g.data
}

// SameShape reports whether a and b have identical dimensions.
func SameShape[A, B Label](a *Grid[A], b *Grid[B]) bool {
	return a.width == b.width && a.height == b.height
}
