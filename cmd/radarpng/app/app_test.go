package app

import (
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxkit/radarpng/internal/grib"
	"github.com/wxkit/radarpng/internal/raster"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMessage(t *testing.T, values []float64, width, height int) *grib.Message {
	t.Helper()

	grid, err := raster.NewGrid(values, width, height)
	require.NoError(t, err)

	return &grib.Message{
		Grid:      grid,
		ValidTime: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		Flags:     &raster.ScanFlags{JScansPositively: true},
		First:     grib.Corner{Lat: 20, Lon: 200},
		Last:      grib.Corner{Lat: 30, Lon: 210},
	}
}

func TestNewConfigFromArgs(t *testing.T) {
	t.Run("two positional arguments", func(t *testing.T) {
		config, err := NewConfigFromArgs([]string{"in.grib2.gz", "out.png"})
		require.NoError(t, err)
		assert.Equal(t, "in.grib2.gz", config.InputPath)
		assert.Equal(t, "out.png", config.OutputPath)
		assert.Equal(t, 3, config.DownsampleFactor)
	})

	t.Run("wrong argument count", func(t *testing.T) {
		for _, args := range [][]string{nil, {"only"}, {"a", "b", "c"}, {"-unknown", "a", "b"}} {
			_, err := NewConfigFromArgs(args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "usage:")
		}
	})
}

func TestRunMissingInput(t *testing.T) {
	config := &Config{
		InputPath:        filepath.Join(t.TempDir(), "missing.grib2"),
		OutputPath:       filepath.Join(t.TempDir(), "out.png"),
		DownsampleFactor: 3,
	}

	result := Run(config, discardLogger())
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "missing.grib2")
	assert.Empty(t, result.Timestamp)
}

func TestRunCorruptInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.grib2")

	// GRIB magic followed by junk lengths: decoding must end in a failure
	// result, not a crash, and must leave stdout to the result record.
	data := append([]byte("GRIB\x00\x00\x00\x02"), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	config := &Config{
		InputPath:        path,
		OutputPath:       filepath.Join(dir, "out.png"),
		DownsampleFactor: 3,
	}

	var result *Result
	require.NotPanics(t, func() { result = Run(config, discardLogger()) })
	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestRenderSyntheticGrid(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "overlays", "radar.png")
	config := &Config{OutputPath: outPath, DownsampleFactor: 1}

	msg := testMessage(t, make([]float64, 16), 4, 4)
	result := render(msg, config, discardLogger())

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, "2024-06-01T12:30:00Z", result.Timestamp)
	assert.Equal(t, [][2]float64{{20, -160}, {30, -150}}, result.Bounds)

	require.NotNil(t, result.GridInfo)
	assert.Equal(t, 4, result.GridInfo.Width)
	assert.Equal(t, 4, result.GridInfo.Height)
	assert.Equal(t, 277.5, result.GridInfo.Resolution) // 10 * 111 / 4
	assert.Equal(t, outPath, result.OutputFile)

	// The zero grid is below every band, so the image is fully transparent.
	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			assert.Zero(t, a, "pixel (%d,%d)", x, y)
		}
	}
}

func TestRenderDownsamples(t *testing.T) {
	config := &Config{
		OutputPath:       filepath.Join(t.TempDir(), "radar.png"),
		DownsampleFactor: 3,
	}

	msg := testMessage(t, make([]float64, 7*5), 7, 5)
	result := render(msg, config, discardLogger())

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, 3, result.GridInfo.Width)  // ceil(7/3)
	assert.Equal(t, 2, result.GridInfo.Height) // ceil(5/3)

	// lat span 10 deg over 2 rows, times the stride factor.
	assert.Equal(t, 1665.0, result.GridInfo.Resolution)
}

func TestRenderDefaultsScanFlags(t *testing.T) {
	config := &Config{
		OutputPath:       filepath.Join(t.TempDir(), "radar.png"),
		DownsampleFactor: 1,
	}

	msg := testMessage(t, make([]float64, 16), 4, 4)
	msg.Flags = nil
	result := render(msg, config, discardLogger())

	require.True(t, result.Success, "error: %s", result.Error)
}

func TestRenderEncodeFailure(t *testing.T) {
	dir := t.TempDir()
	config := &Config{
		OutputPath:       dir, // a directory is not a writable file
		DownsampleFactor: 1,
	}

	msg := testMessage(t, make([]float64, 16), 4, 4)
	result := render(msg, config, discardLogger())

	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}
