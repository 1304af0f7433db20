package app

import (
	"errors"
	"flag"
	"io"
)

// defaultDownsampleFactor is fixed, deliberately not exposed on the CLI: the
// MRMS CONUS mosaic at full resolution produces a colorized grid several
// times larger than the hosts this runs on can afford.
const defaultDownsampleFactor = 3

// Config carries one run's settings.
type Config struct {
	InputPath        string
	OutputPath       string
	DownsampleFactor int
}

var errUsage = errors.New("usage: radarpng <input_grib2_file> <output_png_file>")

// NewConfigFromArgs builds a Config from the positional command line
// arguments: input GRIB2 path (optionally gzipped) and output PNG path.
func NewConfigFromArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("radarpng", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage travels in the JSON result, not on stderr
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	if fs.NArg() != 2 {
		return nil, errUsage
	}

	return &Config{
		InputPath:        fs.Arg(0),
		OutputPath:       fs.Arg(1),
		DownsampleFactor: defaultDownsampleFactor,
	}, nil
}
