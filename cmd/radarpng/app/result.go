package app

// Result is the single JSON record written to stdout. Callers parse it; the
// field layout is a contract. Bounds is [[south, west], [north, east]].
type Result struct {
	Success    bool         `json:"success"`
	Timestamp  string       `json:"timestamp,omitempty"`
	Bounds     [][2]float64 `json:"bounds,omitempty"`
	GridInfo   *GridInfo    `json:"gridInfo,omitempty"`
	OutputFile string       `json:"outputFile,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// GridInfo describes the rendered grid: pixel dimensions and approximate
// ground resolution in kilometers per pixel.
type GridInfo struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Resolution float64 `json:"resolution"`
}

// Failure wraps an error into a failure result.
func Failure(err error) *Result {
	return &Result{Error: err.Error()}
}
