// Package raster provides a dense, bounds-carrying 2D grid for label images
// and scalar cost fields.
//
// What:
//
//   - Grid[T] owns a row-major Width×Height copy of its values and is
//     immutable once built.
//   - Field is a Grid[float32] holding a per-pixel cost or distance.
//   - IsActive decides, in one place, whether a label value marks a labeled
//     pixel or background.
//
// Why:
//
//   - Raw buffers plus a separate shape carry an unchecked length assumption;
//     a Grid validates it once at construction.
//   - Label images come in many numeric types, so Grid is generic over Label.
//
// Conventions:
//
//   - Index(x, y) = y*Width + x; Coordinate is its inverse.
//   - Offsets4 lists the 4-connected neighbor offsets west, east, north, south.
//   - Zero-size grids (Width or Height 0) are legal and simply empty.
//
// Errors:
//
//   - ErrBadShape: shape sequence shorter than two or with a negative size.
//   - ErrShapeMismatch: data length or companion grid shape does not match.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrNilMatrix: nil matrix given to FieldFromMatrix.
package raster
