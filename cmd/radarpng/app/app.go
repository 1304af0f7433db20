package app

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/wxkit/radarpng/internal/geo"
	"github.com/wxkit/radarpng/internal/grib"
	"github.com/wxkit/radarpng/internal/raster"
	"github.com/wxkit/radarpng/internal/scale"
)

// Run executes one render: decode the first GRIB2 message, downsample,
// colorize, fix orientation and write the PNG. It never panics past its
// boundary; every outcome, success or failure, is a Result. All diagnostic
// output goes through the logger, never the result.
func Run(config *Config, logger *slog.Logger) *Result {
	if _, err := os.Stat(config.InputPath); err != nil {
		return Failure(fmt.Errorf("input file not found: %s", config.InputPath))
	}

	file, err := grib.Open(config.InputPath)
	if err != nil {
		return Failure(err)
	}
	defer file.Close()

	msg, err := file.FirstMessage()
	if err != nil {
		return Failure(err)
	}

	// The decoder handle, and the temp decompressed copy with it, is not
	// needed once the message is extracted. Release it before the heavy
	// stages; the deferred Close is a no-op after this.
	if err = file.Close(); err != nil {
		logger.Warn("closing grib file", slog.String("error", err.Error()))
	}

	return render(msg, config, logger)
}

// render runs the pipeline stages on an already decoded message.
func render(msg *grib.Message, config *Config, logger *slog.Logger) *Result {
	flags := raster.ScanFlags{JScansPositively: true} // west to east, south to north
	if msg.Flags != nil {
		flags = *msg.Flags
	} else {
		logger.Warn("grid definition has no scanning mode, assuming west to east, south to north")
	}

	bounds := geo.Normalize(msg.First.Lat, msg.Last.Lat, msg.First.Lon, msg.Last.Lon)

	logger.Info("decoded grid",
		slog.Int("width", msg.Grid.Width),
		slog.Int("height", msg.Grid.Height),
		slog.String("cells", humanize.Comma(int64(len(msg.Grid.Values)))),
		slog.String("memory", humanize.Bytes(uint64(len(msg.Grid.Values)*8))),
		slog.String("validTime", msg.ValidTime.UTC().Format(time.RFC3339)))

	grid := raster.Downsample(msg.Grid, config.DownsampleFactor)
	msg.Grid = nil // release the full resolution grid

	img := raster.Colorize(grid, scale.Reflectivity())
	width, height := grid.Width, grid.Height
	grid = nil // release the numeric grid, only the colorized image remains

	raster.NormalizeOrientation(img, flags)

	if err := writePNG(config.OutputPath, img); err != nil {
		return Failure(err)
	}

	logger.Info("wrote image",
		slog.String("destination", config.OutputPath),
		slog.Int("width", width),
		slog.Int("height", height))

	return &Result{
		Success:   true,
		Timestamp: msg.ValidTime.UTC().Format(time.RFC3339),
		Bounds: [][2]float64{
			{bounds.LatMin, bounds.LonMin},
			{bounds.LatMax, bounds.LonMax},
		},
		GridInfo: &GridInfo{
			Width:      width,
			Height:     height,
			Resolution: geo.ResolutionKm(bounds, height, config.DownsampleFactor),
		},
		OutputFile: config.OutputPath,
	}
}

func writePNG(path string, img *image.RGBA) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err = encoder.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
