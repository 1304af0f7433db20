package scale

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Band maps the half-open value interval [Low, High) to a single color.
type Band struct {
	Low   float64
	High  float64
	Color color.RGBA
}

// Scale is an ordered sequence of contiguous bands. Values outside every band
// map to fully transparent black. A Scale is immutable once constructed.
type Scale struct {
	bands []Band
	lows  []float64 // ascending band lower bounds, for binary search
}

// New builds a scale from bands ordered by ascending value. Bands must be
// contiguous: each band's low bound equals the previous band's high bound.
func New(bands []Band) (*Scale, error) {
	if len(bands) == 0 {
		return nil, errors.New("color scale has no bands")
	}

	lows := make([]float64, len(bands))
	for i, b := range bands {
		if b.High <= b.Low {
			return nil, fmt.Errorf("band %d: high bound %v is not above low bound %v", i, b.High, b.Low)
		}
		if i > 0 && b.Low != bands[i-1].High {
			return nil, fmt.Errorf("band %d: low bound %v does not continue previous high bound %v", i, b.Low, bands[i-1].High)
		}
		lows[i] = b.Low
	}

	s := &Scale{
		bands: make([]Band, len(bands)),
		lows:  lows,
	}
	copy(s.bands, bands)
	return s, nil
}

// Len returns the number of bands.
func (s *Scale) Len() int { return len(s.bands) }

// Band returns the i-th band in ascending value order.
func (s *Scale) Band(i int) Band { return s.bands[i] }

// Index returns the index of the band containing v, or -1 when no band does.
func (s *Scale) Index(v float64) int {
	if math.IsNaN(v) {
		return -1
	}

	i := sort.SearchFloat64s(s.lows, v) // first band with low >= v
	if i < len(s.lows) && s.lows[i] == v {
		return i
	}
	i-- // v can only fall inside the preceding band
	if i < 0 || v >= s.bands[i].High {
		return -1
	}
	return i
}

// ColorFor returns the color of the band containing v, or transparent black
// when v falls outside the scale.
func (s *Scale) ColorFor(v float64) color.RGBA {
	if i := s.Index(v); i >= 0 {
		return s.bands[i].Color
	}
	return color.RGBA{}
}
