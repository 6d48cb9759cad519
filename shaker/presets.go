package shaker

import (
	"fmt"

	ebimath "github.com/edwinsyarief/ebi-math"
	"gopkg.in/yaml.v3"
)

// A named shake recipe, usually loaded from the camera config file:
//
//	presets:
//	  explosion:
//	    kind: noise
//	    magnitude: 1.2
//	    length: 30
//	    frequency: 1
//	  recoil:
//	    kind: rotational
//	    magnitude: 0.05
//	    length: 10
type Preset struct {
	Kind      Kind    `yaml:"kind"`
	Magnitude float64 `yaml:"magnitude"`
	Length    int     `yaml:"length"`
	Frequency float64 `yaml:"frequency"`

	// Only for Noise. Nil means (1, 1).
	Direction *Axis `yaml:"direction,omitempty"`

	// Only for Sinusoidal, in radians.
	Angle float64 `yaml:"angle"`
}

// Per axis weights for directional presets.
type Axis struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Preset table, keyed by name. Passed explicitly to [NewAggregator]();
// there's no global registry.
type Presets map[string]Preset

// Fires the preset on the given aggregator.
func (self Preset) Fire(aggregator *Aggregator) {
	switch self.Kind {
	case Noise:
		if self.Direction == nil {
			aggregator.TriggerNoise(self.Magnitude, self.Length, self.Frequency)
		} else {
			dir := ebimath.V(self.Direction.X, self.Direction.Y)
			aggregator.TriggerNoiseDirectional(self.Magnitude, self.Length, self.Frequency, dir)
		}
	case Sinusoidal:
		aggregator.TriggerSinusoidal(self.Magnitude, self.Length, self.Frequency, self.Angle)
	case Rotational:
		aggregator.TriggerRotational(self.Magnitude, self.Length)
	default:
		panic("invalid shaker.Kind")
	}
}

// Checks the preset for values that would make it a silent no-op.
func (self Preset) Validate() error {
	if self.Length <= 0 {
		return fmt.Errorf("length must be > 0, got %d", self.Length)
	}
	if self.Kind > Rotational {
		return fmt.Errorf("invalid kind %d", uint8(self.Kind))
	}
	return nil
}

// Validates every preset in the table.
func (self Presets) Validate() error {
	for name, preset := range self {
		if err := preset.Validate(); err != nil {
			return fmt.Errorf("shaker: preset %q: %w", name, err)
		}
	}
	return nil
}

// Decodes and validates a preset table from YAML.
func ParsePresets(data []byte) (Presets, error) {
	var presets Presets
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("shaker: unmarshal presets: %w", err)
	}
	if err := presets.Validate(); err != nil {
		return nil, err
	}
	return presets, nil
}
