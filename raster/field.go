package raster

import "gonum.org/v1/gonum/mat"

// ZeroField returns a freshly allocated uniform zero field.
// Negative sizes are clamped to zero.
func ZeroField(width, height int) *Field {
	return ConstantField(width, height, 0)
}

// ConstantField returns a width×height field with every pixel set to v.
// Negative sizes are clamped to zero.
func ConstantField(width, height int, v float32) *Field {
	width, height = max(width, 0), max(height, 0)
	f := &Field{width: width, height: height, data: make([]float32, width*height)}
	if v != 0 {
		for i := range f.data {
			f.data[i] = v
		}
	}

	return f
}

// FieldFromMatrix copies a gonum matrix into a field.
// Matrix rows map to y and columns to x; values are narrowed to float32.
// Returns ErrNilMatrix if m is nil.
func FieldFromMatrix(m mat.Matrix) (*Field, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.Dims()
	f := &Field{width: cols, height: rows, data: make([]float32, rows*cols)}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			f.data[y*cols+x] = float32(m.At(y, x))
		}
	}

	return f, nil
}
