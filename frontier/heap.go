package frontier

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/ndtess/raster"
)

// Frontier is a binary max-heap of entries ordered by Weight.
// Among equal weights the entry inserted first is popped first. Heaps that
// compare weights alone pop ties in a different order; with a uniform field
// this one returns the first emitted entry first.
//
// A Frontier knows the shape of the raster it was built from and rejects
// pushes outside it. It is not safe for concurrent mutation.
type Frontier[T raster.Label] struct {
	width, height int
	items         entryHeap[T]
	next          uint64 // insertion counter for the tie-break
}

// New returns an empty frontier over a width×height raster, for callers that
// seed it themselves with Push.
// Returns raster.ErrBadShape if either size is negative.
func New[T raster.Label](width, height int) (*Frontier[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: got %dx%d", raster.ErrBadShape, width, height)
	}

	return newFrontier[T](width, height, 0), nil
}

func newFrontier[T raster.Label](width, height, capacity int) *Frontier[T] {
	return &Frontier[T]{
		width:  width,
		height: height,
		items:  make(entryHeap[T], 0, capacity),
	}
}

// Width returns the width of the raster the frontier addresses.
func (f *Frontier[T]) Width() int { return f.width }

// Height returns the height of the raster the frontier addresses.
func (f *Frontier[T]) Height() int { return f.height }

// Len returns the number of entries.
func (f *Frontier[T]) Len() int { return len(f.items) }

// IsEmpty reports whether the frontier holds no entries.
func (f *Frontier[T]) IsEmpty() bool { return len(f.items) == 0 }

// Peek returns the heaviest entry without removing it.
// ok is false on an empty frontier.
func (f *Frontier[T]) Peek() (e Entry[T], ok bool) {
	if len(f.items) == 0 {
		return e, false
	}

	return f.items[0].Entry, true
}

// Pop removes and returns the heaviest entry.
// ok is false on an empty frontier.
// Complexity: O(log N).
func (f *Frontier[T]) Pop() (e Entry[T], ok bool) {
	if len(f.items) == 0 {
		return e, false
	}

	return heap.Pop(&f.items).(item[T]).Entry, true
}

// Push inserts e. It fails with raster.ErrOutOfBounds if (e.X, e.Y) lies
// outside the frontier's shape, and with ErrNonFiniteWeight if e.Weight is
// NaN or infinite.
// Complexity: O(log N).
func (f *Frontier[T]) Push(e Entry[T]) error {
	if e.X < 0 || e.X >= f.width || e.Y < 0 || e.Y >= f.height {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", raster.ErrOutOfBounds, e.X, e.Y, f.width, f.height)
	}
	if !finite(e.Weight) {
		return fmt.Errorf("%w: %v", ErrNonFiniteWeight, e.Weight)
	}
	heap.Push(&f.items, f.stamp(e))

	return nil
}

// Entries returns a copy of all entries in internal heap order.
// Only the first element is guaranteed to be the heaviest.
func (f *Frontier[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(f.items))
	for i, it := range f.items {
		out[i] = it.Entry
	}

	return out
}

// Drain pops every entry and returns them heaviest first.
// The frontier is empty afterwards.
func (f *Frontier[T]) Drain() []Entry[T] {
	out := make([]Entry[T], 0, len(f.items))
	for len(f.items) > 0 {
		out = append(out, heap.Pop(&f.items).(item[T]).Entry)
	}

	return out
}

// stamp tags e with the next insertion number.
func (f *Frontier[T]) stamp(e Entry[T]) item[T] {
	it := item[T]{Entry: e, seq: f.next}
	f.next++

	return it
}

// appendUnordered adds e without restoring heap order; Build calls
// heap.Init once after the scan.
func (f *Frontier[T]) appendUnordered(e Entry[T]) {
	f.items = append(f.items, f.stamp(e))
}

// finite reports whether w is neither NaN nor ±Inf.
func finite(w float32) bool {
	return !math.IsNaN(float64(w)) && !math.IsInf(float64(w), 0)
}

// item is an Entry plus its insertion number.
type item[T raster.Label] struct {
	Entry[T]
	seq uint64
}

// entryHeap implements heap.Interface as a max-heap on Weight,
// ties broken by ascending insertion number.
type entryHeap[T raster.Label] []item[T]

// Len returns the number of items in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less puts heavier items first; equal weights keep insertion order.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight > h[j].Weight
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two items in the heap.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x, which must be an item[T]. Called by heap.Push.
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(item[T])) }

// Pop removes the last item. Called by heap.Pop.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
