// Command legend renders the radar reflectivity color scale as a labelled
// PNG strip. Downstream map consumers depend on the exact band colors; this
// produces the matching legend artwork.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wxkit/radarpng/internal/scale"
)

const (
	dpi      = 72.0
	fontSize = 12.0

	rowHeight   = 24
	swatchWidth = 48
	legendWidth = 180
	padding     = 8
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var outputFile string
	flag.StringVar(&outputFile, "o", "legend.png", "Path to the output file")
	flag.Parse()

	img, err := renderLegend(scale.Reflectivity())
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err = png.Encode(out, img); err == nil {
		err = out.Close()
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	logger.Info("wrote legend", slog.String("destination", outputFile))
}

func renderLegend(s *scale.Scale) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, legendWidth, s.Len()*rowHeight+2*padding))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	parsedFont, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(parsedFont)
	ctx.SetFontSize(fontSize)
	ctx.SetHinting(font.HintingNone)
	ctx.SetSrc(image.Black)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)

	// Strongest band on top, the way the NWS legend is usually shown.
	for i := s.Len() - 1; i >= 0; i-- {
		band := s.Band(i)
		y := padding + (s.Len()-1-i)*rowHeight

		swatch := image.Rect(padding, y, padding+swatchWidth, y+rowHeight-4)
		draw.Draw(img, swatch, image.NewUniform(band.Color), image.Point{}, draw.Over)

		pt := freetype.Pt(padding*2+swatchWidth, y+rowHeight-10)
		if _, err = ctx.DrawString(bandLabel(s, i), pt); err != nil {
			return nil, fmt.Errorf("drawing band label: %w", err)
		}
	}

	return img, nil
}

func bandLabel(s *scale.Scale, i int) string {
	band := s.Band(i)
	switch i {
	case 0:
		return fmt.Sprintf("< %.0f dBZ", band.High)
	case s.Len() - 1:
		return fmt.Sprintf("%.0f+ dBZ", band.Low)
	default:
		return fmt.Sprintf("%.0f-%.0f dBZ", band.Low, band.High)
	}
}
