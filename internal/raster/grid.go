// Package raster holds the numeric grid type and the transforms the render
// pipeline applies to it: downsampling, colorization and orientation fixes.
package raster

import "fmt"

// Grid is a decoded raster field: row-major float64 values, row 0 being the
// first scanned row of the source grid. Orientation is whatever the source
// encoded; it is not normalized to image space until NormalizeOrientation.
type Grid struct {
	Values []float64
	Width  int
	Height int
}

// NewGrid wraps values as a Width x Height grid without copying.
func NewGrid(values []float64, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("grid has %d values, expected %dx%d = %d", len(values), height, width, width*height)
	}
	return &Grid{Values: values, Width: width, Height: height}, nil
}

// At returns the value at the given row and column.
func (g *Grid) At(row, col int) float64 {
	return g.Values[row*g.Width+col]
}

// ScanFlags describe the traversal order the source format used when it
// serialized the grid.
type ScanFlags struct {
	IScansNegatively bool // columns run east to west
	JScansPositively bool // rows run south to north
}
