package raster

import (
	"math"
	"unsafe"
)

var (
	epsilon32 = math.Nextafter32(1, 2) - 1
	epsilon64 = math.Nextafter(1, 2) - 1
)

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value. It is 0 for integer types.
func Epsilon[T Label]() T {
	if T(1)/2 == 0 {
		return 0
	}
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(epsilon32)
	}

	return T(epsilon64)
}

// IsActive reports whether v marks a labeled pixel.
//
// Floating-point labels are background when |v| < Epsilon[T]().
// Integer labels have no epsilon, so only 0 is background.
func IsActive[T Label](v T) bool {
	eps := Epsilon[T]()
	if eps == 0 {
		return v != 0
	}
	if v < 0 {
		v = -v
	}

	return !(v < eps)
}
