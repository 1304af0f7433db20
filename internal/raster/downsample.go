package raster

// Downsample subsamples the grid by taking every factor-th row and column,
// starting at index 0. This is plain striding, not averaging: it trades
// precision for memory, which is what keeps the colorized grid small on
// constrained hosts. A factor of 1 or less returns the grid unchanged.
func Downsample(g *Grid, factor int) *Grid {
	if factor <= 1 {
		return g
	}

	outHeight := (g.Height + factor - 1) / factor
	outWidth := (g.Width + factor - 1) / factor

	values := make([]float64, 0, outHeight*outWidth)
	for row := 0; row < g.Height; row += factor {
		base := row * g.Width
		for col := 0; col < g.Width; col += factor {
			values = append(values, g.Values[base+col])
		}
	}

	return &Grid{Values: values, Width: outWidth, Height: outHeight}
}
