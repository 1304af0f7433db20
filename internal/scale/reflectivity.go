package scale

import (
	_ "embed"
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

//go:embed reflectivity.yaml
var reflectivityYAML []byte

var reflectivity = mustParse(reflectivityYAML)

// Reflectivity returns the standard NWS radar reflectivity scale: 5 dBZ bands
// from 5 to 75 dBZ, transparent below 5 dBZ and white above 75 dBZ.
func Reflectivity() *Scale { return reflectivity }

type bandSpec struct {
	Low   float64  `yaml:"low"`
	High  float64  `yaml:"high"`
	Color [4]uint8 `yaml:"color"`
}

type scaleSpec struct {
	Bands []bandSpec `yaml:"bands"`
}

// Parse reads a scale definition from its YAML form.
func Parse(data []byte) (*Scale, error) {
	var spec scaleSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing color scale: %w", err)
	}

	bands := make([]Band, len(spec.Bands))
	for i, b := range spec.Bands {
		bands[i] = Band{
			Low:  b.Low,
			High: b.High,
			Color: color.RGBA{
				R: b.Color[0],
				G: b.Color[1],
				B: b.Color[2],
				A: b.Color[3],
			},
		}
	}
	return New(bands)
}

func mustParse(data []byte) *Scale {
	s, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return s
}
