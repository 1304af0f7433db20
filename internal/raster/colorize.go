package raster

import (
	"image"

	"github.com/wxkit/radarpng/internal/scale"
)

// Colorize maps every grid cell through the color scale, producing an RGBA
// image of the same shape. Cells are bucketed into a band index and gathered
// from a precomputed lookup table rather than matched band by band; the
// result is identical to calling scale.ColorFor per cell.
func Colorize(g *Grid, s *scale.Scale) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))

	// Index 0 is the out-of-band bucket, transparent black.
	lut := make([][4]uint8, s.Len()+1)
	for i := 0; i < s.Len(); i++ {
		c := s.Band(i).Color
		lut[i+1] = [4]uint8{c.R, c.G, c.B, c.A}
	}

	for row := 0; row < g.Height; row++ {
		rowOffset := row * img.Stride
		base := row * g.Width
		for col := 0; col < g.Width; col++ {
			c := lut[s.Index(g.Values[base+col])+1]
			idx := rowOffset + col*4
			img.Pix[idx] = c[0]
			img.Pix[idx+1] = c[1]
			img.Pix[idx+2] = c[2]
			img.Pix[idx+3] = c[3]
		}
	}

	return img
}
