// Package grib wraps the GRIB2 decoder behind a small handle: open a file
// (transparently decompressing gzip input), read the first data message,
// close and release everything. The render pipeline never touches the
// decoder library directly.
package grib

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nilsmagnus/grib/griblib"

	"github.com/wxkit/radarpng/internal/raster"
)

// copyBufferSize bounds the working set while decompressing gzip input to a
// temporary file. The payload is never held in memory whole.
const copyBufferSize = 1 << 20

const microDegrees = 1e6

// Corner is a raw grid corner coordinate in degrees, as encoded in the grid
// definition. Longitudes may use the 0-360 convention.
type Corner struct {
	Lat float64
	Lon float64
}

// Message is the first data message of a GRIB2 file, reduced to what the
// render pipeline needs. Flags is nil when the grid definition could not
// supply a scanning mode.
type Message struct {
	Grid      *raster.Grid
	ValidTime time.Time
	Flags     *raster.ScanFlags
	First     Corner
	Last      Corner
}

// File is an open decoder handle. Close must be called on every path; it
// also deletes the temporary decompressed copy when the input was gzipped.
type File struct {
	file     *os.File
	tempPath string
	closed   bool
}

// Open opens a GRIB2 file for reading. A path ending in .gz is decompressed
// in bounded chunks to a temporary file first; the copy lives until Close.
func Open(path string) (*File, error) {
	if !strings.HasSuffix(path, ".gz") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening grib file: %w", err)
		}
		return &File{file: f}, nil
	}

	f, err := decompress(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func decompress(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening compressed grib file: %w", err)
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("reading gzip stream: %w", err)
	}
	defer gz.Close()

	tmp, err := os.CreateTemp("", "radarpng-*.grib2")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	if _, err = io.CopyBuffer(tmp, gz, make([]byte, copyBufferSize)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("decompressing grib file: %w", err)
	}
	if _, err = tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("rewinding temporary file: %w", err)
	}

	return &File{file: tmp, tempPath: tmp.Name()}, nil
}

// FirstMessage decodes the first data message of the file. Further messages,
// if any, are ignored.
func (f *File) FirstMessage() (*Message, error) {
	if f.closed {
		return nil, errors.New("grib file is closed")
	}

	messages, err := readMessages(f.file)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, errors.New("grib file contains no data messages")
	}
	return reduceMessage(messages[0])
}

// readMessages invokes the decoder library with two guards it needs:
// stdout is muted for the duration of the call, because the library prints
// parse diagnostics there and stdout is reserved for the result record, and
// its panics on truncated or corrupt input are converted into errors so a
// bad file can never take down the run. The process is single threaded, so
// swapping os.Stdout is safe here.
func readMessages(r io.Reader) (messages []*griblib.Message, err error) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	stdout := os.Stdout
	os.Stdout = devNull
	defer func() {
		os.Stdout = stdout
		if rec := recover(); rec != nil {
			messages = nil
			err = fmt.Errorf("decoding grib messages: %v", rec)
		}
	}()

	messages, err = griblib.ReadMessages(r)
	if err != nil {
		return nil, fmt.Errorf("reading grib messages: %w", err)
	}
	return messages, nil
}

func reduceMessage(m *griblib.Message) (*Message, error) {
	grid0, ok := m.Section3.Definition.(*griblib.Grid0)
	if !ok {
		return nil, fmt.Errorf("unsupported grid definition template %d", m.Section3.TemplateNumber)
	}

	width, height := int(grid0.Ni), int(grid0.Nj)
	grid, err := raster.NewGrid(m.Section7.Data, width, height)
	if err != nil {
		return nil, fmt.Errorf("reading grid values: %w", err)
	}

	flags := FlagsFromScanningMode(grid0.ScanningMode)

	t := m.Section1.ReferenceTime
	valid := time.Date(int(t.Year), time.Month(t.Month), int(t.Day), int(t.Hour), int(t.Minute), int(t.Second), 0, time.UTC)

	return &Message{
		Grid:      grid,
		ValidTime: valid,
		Flags:     &flags,
		First:     Corner{Lat: float64(grid0.La1) / microDegrees, Lon: float64(grid0.Lo1) / microDegrees},
		Last:      Corner{Lat: float64(grid0.La2) / microDegrees, Lon: float64(grid0.Lo2) / microDegrees},
	}, nil
}

// FlagsFromScanningMode unpacks the GRIB2 scanning mode byte: bit 0x80 means
// columns run east to west, bit 0x40 means rows run south to north.
func FlagsFromScanningMode(mode uint8) raster.ScanFlags {
	return raster.ScanFlags{
		IScansNegatively: mode&0x80 != 0,
		JScansPositively: mode&0x40 != 0,
	}
}

// Close releases the underlying file and removes the temporary decompressed
// copy, if one was created. Close is idempotent.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	err := f.file.Close()
	if f.tempPath != "" {
		if rmErr := os.Remove(f.tempPath); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	return err
}
