package frontier

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/ndtess/raster"
)

// Build scans labels and returns the frontier of weighted edges leading out of
// every active pixel.
//
// Steps:
//  1. Apply options; a recorded option error is returned as is.
//  2. Validate labels (ErrNilRaster), the buffer size (ErrOptionViolation when
//     ExtraCapacity would overflow it) and the field shape (raster.ErrShapeMismatch).
//     A missing field is replaced by a zero field allocated for this call.
//  3. Allocate one buffer of capacity 4×W×H, plus ExtraCapacity capped at 4×W×H.
//  4. For y outer, x inner: skip inactive pixels; for each of the offsets
//     west, east, north, south with an in-bounds neighbor n, emit
//     (1 + |field[p] + field[n]|, n.x, n.y, labels[p]).
//  5. Heapify once.
//
// Complexity: O(W×H) time, O(W×H) memory.
func Build[T raster.Label](labels *raster.Grid[T], opts ...Option) (*Frontier[T], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs
	if labels == nil {
		return nil, ErrNilRaster
	}
	if labels.Len() > math.MaxInt/4 {
		return nil, fmt.Errorf("%w: %dx%d raster overflows the entry buffer", raster.ErrBadShape,
			labels.Width(), labels.Height())
	}
	scanCap := 4 * labels.Len()
	if cfg.ExtraCapacity > math.MaxInt-scanCap {
		return nil, fmt.Errorf("%w: ExtraCapacity %d overflows the entry buffer", ErrOptionViolation, cfg.ExtraCapacity)
	}
	field := cfg.Field
	if field == nil {
		field = raster.ZeroField(labels.Width(), labels.Height())
	} else if !raster.SameShape(labels, field) {
		return nil, fmt.Errorf("%w: field is %dx%d, labels are %dx%d", raster.ErrShapeMismatch,
			field.Width(), field.Height(), labels.Width(), labels.Height())
	}

	// 3) Worst case: every pixel active with four neighbors.
	s := &scanner[T]{
		labels: labels,
		lab:    labels.Raw(),
		dist:   field.Raw(),
		cfg:    cfg,
		out:    newFrontier[T](labels.Width(), labels.Height(), scanCap+min(cfg.ExtraCapacity, scanCap)),
	}

	// 4) Row-major scan. The order fixes the tie-break among equal weights.
	for y := 0; y < labels.Height(); y++ {
		for x := 0; x < labels.Width(); x++ {
			if err := s.scanPixel(x, y); err != nil {
				return nil, err
			}
		}
	}

	// 5) Impose max-heap order over the accumulated entries.
	heap.Init(&s.out.items)

	return s.out, nil
}

// BuildSlice is Build over raw row-major buffers. Only shape[0] (width) and
// shape[1] (height) are consulted. A nil field means a zero field; a non-nil
// field takes precedence over any WithField option.
//
// Returns raster.ErrBadShape or raster.ErrShapeMismatch when a buffer does
// not match the shape, plus every error Build can return.
func BuildSlice[T raster.Label](labels []T, shape []int, field []float32, opts ...Option) (*Frontier[T], error) {
	g, err := raster.FromSlice(labels, shape...)
	if err != nil {
		return nil, fmt.Errorf("frontier: labels: %w", err)
	}
	if field != nil {
		f, err := raster.FromSlice(field, shape...)
		if err != nil {
			return nil, fmt.Errorf("frontier: field: %w", err)
		}
		opts = append(opts[:len(opts):len(opts)], WithField(f))
	}

	return Build(g, opts...)
}

// scanner holds the state of a single Build call.
type scanner[T raster.Label] struct {
	labels *raster.Grid[T] // bounds and indexing
	lab    []T             // labels, row-major, read-only
	dist   []float32       // field, row-major, read-only
	cfg    Options
	out    *Frontier[T]
}

// scanPixel emits the entries of pixel (x,y), if it is active.
func (s *scanner[T]) scanPixel(x, y int) error {
	p := s.labels.Index(x, y)
	label := s.lab[p]
	if !raster.IsActive(label) {
		s.cfg.OnSkip(x, y)
		return nil
	}

	var nx, ny, n int
	var w float32
	for _, d := range raster.Offsets4 {
		nx, ny = x+d[0], y+d[1]
		if !s.labels.InBounds(nx, ny) {
			continue
		}
		n = s.labels.Index(nx, ny)
		w = edgeWeight(s.dist[p], s.dist[n])
		if !finite(w) {
			return fmt.Errorf("%w: %v on edge (%d,%d)→(%d,%d)", ErrNonFiniteWeight, w, x, y, nx, ny)
		}
		s.out.appendUnordered(Entry[T]{Weight: w, X: nx, Y: ny, Label: label})
		s.cfg.OnEmit(x, y, nx, ny, w)
	}

	return nil
}

// edgeWeight is 1 + |a + b| in float32: low-cost endpoints give weights near 1.
func edgeWeight(a, b float32) float32 {
	return 1 + float32(math.Abs(float64(a+b)))
}
