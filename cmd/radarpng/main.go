// Command radarpng converts an MRMS GRIB2 reflectivity mosaic into a
// georeferenced RGBA PNG for web map overlays. It writes exactly one JSON
// metadata record to stdout; all diagnostics go to stderr.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/wxkit/radarpng/cmd/radarpng/app"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	out := json.NewEncoder(os.Stdout)

	config, err := app.NewConfigFromArgs(os.Args[1:])
	if err != nil {
		if encErr := out.Encode(app.Failure(err)); encErr != nil {
			logger.Error("writing result", slog.String("error", encErr.Error()))
		}
		os.Exit(1)
	}

	result := app.Run(config, logger)
	if err = out.Encode(result); err != nil {
		logger.Error("writing result", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if !result.Success {
		os.Exit(1)
	}
}
