package frontier_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ndtess/frontier"
	"github.com/katalvlaran/ndtess/raster"
)

const (
	sceneSize    = 16
	rectLabel    = 42
	diskLabel    = 100
	constantCost = 3.3
)

// sceneEntries is the number of (active pixel, in-bounds neighbor) pairs of
// the synthetic scene: 61 active pixels × 4, minus 5 disk pixels on the
// east border.
const sceneEntries = 239

// syntheticScene returns a 16×16 label image with a 4×4 rectangle of 42 at
// rows 11..14, columns 1..4 and a disk of 100 centered at (x=12, y=4) with
// radius 4 (strict inequality).
//
//	................
//	..........ddddd.
//	.........ddddddd
//	    ...
//	.rrrr...........
func syntheticScene(t testing.TB) *raster.Grid[float32] {
	t.Helper()
	data := make([]float32, sceneSize*sceneSize)
	for y := 11; y < 15; y++ {
		for x := 1; x < 5; x++ {
			data[y*sceneSize+x] = rectLabel
		}
	}
	const radius = 4
	for y := 0; y < sceneSize; y++ {
		for x := 0; x < sceneSize; x++ {
			dx, dy := x-12, y-4
			if dx*dx+dy*dy < radius*radius {
				data[y*sceneSize+x] = diskLabel
			}
		}
	}
	g, err := raster.FromSlice(data, sceneSize, sceneSize)
	require.NoError(t, err)

	return g
}

// sineField is sin(linspace(0, 1)) + 0.1 laid out row-major, so the cost
// grows with the pixel offset.
func sineField(width, height int) *raster.Field {
	vals := floats.Span(make([]float64, width*height), 0, 1)
	for i, v := range vals {
		vals[i] = math.Sin(v) + 0.1
	}

	return mustField(raster.FieldFromMatrix(mat.NewDense(height, width, vals)))
}

// randomField draws costs uniformly from [0, 3.3).
func randomField(width, height int, seed int64) *raster.Field {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, width*height)
	for i := range vals {
		vals[i] = rng.Float64() * constantCost
	}

	return mustField(raster.FieldFromMatrix(mat.NewDense(height, width, vals)))
}

// mustField unwraps FieldFromMatrix for fixtures built from non-nil matrices.
func mustField(f *raster.Field, err error) *raster.Field {
	if err != nil {
		panic(err)
	}

	return f
}

// expectedEntries recomputes the frontier from its definition, in scan order.
func expectedEntries[T raster.Label](labels *raster.Grid[T], field *raster.Field) []frontier.Entry[T] {
	w, h := labels.Width(), labels.Height()
	if field == nil {
		field = raster.ZeroField(w, h)
	}
	var out []frontier.Entry[T]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l, _ := labels.At(x, y)
			if !raster.IsActive(l) {
				continue
			}
			fp, _ := field.At(x, y)
			for _, n := range [][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				fn, err := field.At(n[0], n[1])
				if err != nil {
					continue
				}
				out = append(out, frontier.Entry[T]{
					Weight: 1 + float32(math.Abs(float64(fp+fn))),
					X:      n[0],
					Y:      n[1],
					Label:  l,
				})
			}
		}
	}

	return out
}

// sortEntries orders entries totally so that cmp.Diff compares multisets.
var sortEntries = cmpopts.SortSlices(func(a, b frontier.Entry[float32]) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Label < b.Label
})
