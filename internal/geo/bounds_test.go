package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("wraps 0-360 longitudes", func(t *testing.T) {
		b := Normalize(20, 30, 200, 210)
		assert.Equal(t, Bounds{LatMin: 20, LatMax: 30, LonMin: -160, LonMax: -150}, b)
	})

	t.Run("orders inverted latitudes", func(t *testing.T) {
		b := Normalize(40, 30, -100, -90)
		assert.Equal(t, 30.0, b.LatMin)
		assert.Equal(t, 40.0, b.LatMax)
	})

	t.Run("orders longitudes after wrapping", func(t *testing.T) {
		// 350 wraps to -10, which must end up as the minimum.
		b := Normalize(10, 20, 350, 10)
		assert.Equal(t, -10.0, b.LonMin)
		assert.Equal(t, 10.0, b.LonMax)
	})

	t.Run("invariants hold for raw corner inputs", func(t *testing.T) {
		cases := [][4]float64{
			{54.995, 20.005, 230.005, 299.995}, // MRMS CONUS corners
			{20.005, 54.995, 299.995, 230.005},
			{-10, 10, 170, 190},
			{0, 0.001, 180, 180.001},
		}

		for _, c := range cases {
			b := Normalize(c[0], c[1], c[2], c[3])
			assert.LessOrEqual(t, b.LatMin, b.LatMax, "corners %v", c)
			assert.LessOrEqual(t, b.LonMin, b.LonMax, "corners %v", c)
			assert.GreaterOrEqual(t, b.LonMin, -180.0, "corners %v", c)
			assert.LessOrEqual(t, b.LonMax, 180.0, "corners %v", c)
		}
	})
}

func TestResolutionKm(t *testing.T) {
	t.Run("10 degrees over 4 rows", func(t *testing.T) {
		b := Normalize(20, 30, 200, 210)
		assert.Equal(t, 277.5, ResolutionKm(b, 4, 1))
	})

	t.Run("downsampling scales the resolution", func(t *testing.T) {
		b := Normalize(20, 30, 200, 210)
		assert.Equal(t, 832.5, ResolutionKm(b, 4, 3))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		b := Normalize(20.005, 54.995, 230.005, 299.995)
		// 34.99 * 111 / 3500 = 1.10968...
		assert.Equal(t, 1.11, ResolutionKm(b, 3500, 1))
	})
}
