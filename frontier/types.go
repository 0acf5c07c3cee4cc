package frontier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndtess/raster"
)

// Sentinel errors returned by the frontier builder.
var (
	// ErrNilRaster indicates that a nil label grid was passed to Build.
	ErrNilRaster = errors.New("frontier: label raster is nil")

	// ErrNonFiniteWeight indicates an edge weight that is NaN or infinite.
	ErrNonFiniteWeight = errors.New("frontier: edge weight is not finite")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")
)

// Entry is one candidate frontier edge: it reaches grid cell (X, Y), carries
// the label of the active pixel it came from, and has priority Weight.
type Entry[T raster.Label] struct {
	Weight float32
	X, Y   int
	Label  T
}

// Options configures Build.
type Options struct {
	// Field is the per-pixel cost map. Nil means a uniform zero field,
	// allocated for the call only.
	Field *raster.Field

	// OnEmit is called for every emitted entry, in scan order, with the
	// source pixel (x,y), the neighbor (nx,ny) and the entry weight.
	OnEmit func(x, y, nx, ny int, weight float32)

	// OnSkip is called for every inactive pixel.
	OnSkip func(x, y int)

	// ExtraCapacity reserves room for that many Push calls beyond the scan.
	ExtraCapacity int

	// internal error recorded during option parsing
	err error
}

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// DefaultOptions returns Options with a nil (zero) field, no-op hooks and no
// extra capacity.
func DefaultOptions() Options {
	return Options{
		Field:         nil,
		OnEmit:        func(int, int, int, int, float32) {},
		OnSkip:        func(int, int) {},
		ExtraCapacity: 0,
		err:           nil,
	}
}

// WithField sets the cost field. A nil field leaves the current field unchanged.
func WithField(f *raster.Field) Option {
	return func(o *Options) {
		if f != nil {
			o.Field = f
		}
	}
}

// WithOnEmit registers a callback run for every emitted entry.
func WithOnEmit(fn func(x, y, nx, ny int, weight float32)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEmit = fn
		}
	}
}

// WithOnSkip registers a callback run for every inactive pixel.
func WithOnSkip(fn func(x, y int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}

// WithExtraCapacity reserves room for n entries pushed after Build.
//
//	n >= 0: reserve n extra slots
//	n < 0:  invalid option → ErrOptionViolation
//
// Build also reports ErrOptionViolation when 4×W×H + n overflows int.
// The reservation is a hint: at most 4×W×H extra slots are allocated up
// front, later pushes grow the buffer as needed.
func WithExtraCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ExtraCapacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ExtraCapacity = n
	}
}
