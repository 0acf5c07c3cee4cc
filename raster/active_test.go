package raster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ndtess/raster"
)

type regionID uint16

type intensity float32

// TestEpsilon checks machine epsilon per label type.
func TestEpsilon(t *testing.T) {
	assert.Equal(t, float32(math.Nextafter32(1, 2)-1), raster.Epsilon[float32]())
	assert.Equal(t, math.Nextafter(1, 2)-1, raster.Epsilon[float64]())
	assert.Equal(t, intensity(math.Nextafter32(1, 2)-1), raster.Epsilon[intensity]())
	assert.Equal(t, 0, raster.Epsilon[int]())
	assert.Equal(t, uint8(0), raster.Epsilon[uint8]())
}

// TestIsActive covers the zero-sentinel convention for floats and integers.
func TestIsActive(t *testing.T) {
	eps32 := raster.Epsilon[float32]()

	assert.False(t, raster.IsActive[float32](0))
	assert.False(t, raster.IsActive(eps32/2))
	assert.False(t, raster.IsActive(-eps32/2))
	assert.True(t, raster.IsActive(eps32))
	assert.True(t, raster.IsActive(-eps32))
	assert.True(t, raster.IsActive[float32](42))
	assert.True(t, raster.IsActive(-100.0))

	assert.False(t, raster.IsActive(0))
	assert.True(t, raster.IsActive(1))
	assert.True(t, raster.IsActive(-1))
	assert.True(t, raster.IsActive(int64(math.MinInt64)))
	assert.False(t, raster.IsActive(regionID(0)))
	assert.True(t, raster.IsActive(regionID(7)))
	assert.False(t, raster.IsActive(intensity(0)))
	assert.True(t, raster.IsActive(intensity(0.5)))
}
