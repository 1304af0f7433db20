// Package geo normalizes grid corner coordinates into canonical map bounds.
package geo

import "math"

// kmPerDegreeLat approximates kilometers per degree of latitude. The flat
// earth error is acceptable at the scale of a single radar mosaic.
const kmPerDegreeLat = 111.0

// Bounds is the south/north/west/east extent of a grid in signed degrees.
// After Normalize, LatMin <= LatMax, LonMin <= LonMax and both longitudes
// are within [-180, 180].
type Bounds struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Normalize converts a pair of raw grid corner coordinates into canonical
// bounds. Longitudes above 180 are shifted from the 0-360 convention into
// the signed convention, then each axis pair is ordered. The raw corners do
// not necessarily correspond to true south-west/north-east corners,
// regardless of the grid's scan direction.
func Normalize(latA, latB, lonA, lonB float64) Bounds {
	lonA = wrapLongitude(lonA)
	lonB = wrapLongitude(lonB)

	if lonA > lonB {
		lonA, lonB = lonB, lonA
	}
	if latA > latB {
		latA, latB = latB, latA
	}

	return Bounds{LatMin: latA, LatMax: latB, LonMin: lonA, LonMax: lonB}
}

func wrapLongitude(lon float64) float64 {
	if lon > 180 {
		return lon - 360
	}
	return lon
}

// ResolutionKm estimates the per-pixel ground resolution for a rendered grid
// of gridHeight rows that was subsampled by downsampleFactor, rounded to two
// decimals.
func ResolutionKm(b Bounds, gridHeight, downsampleFactor int) float64 {
	kmPerRow := math.Abs(b.LatMax-b.LatMin) * kmPerDegreeLat / float64(gridHeight)
	return math.Round(kmPerRow*float64(downsampleFactor)*100) / 100
}
