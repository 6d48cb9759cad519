package framecam

import (
	"errors"
	"fmt"
	"os"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/framecam/shaker"
	"github.com/edwinsyarief/framecam/tracker"
	"gopkg.in/yaml.v3"
)

// Smoothing modes accepted by [Config].Smoothing.
const (
	SmoothingFollow  = "follow"
	SmoothingInstant = "instant"
	SmoothingFrozen  = "frozen"
)

// Camera configuration. Usually loaded from YAML with [LoadConfig]():
//
//	position: {x: 640, y: 360}
//	zoom: 720
//	bounds: {width: 4000, height: 1200}
//	margin_x: 150
//	margin_y: 200
//	noise_seed: 5
//	presets:
//	  explosion: {kind: noise, magnitude: 1.2, length: 30, frequency: 1}
//
// Fields missing from the file keep their [DefaultConfig]() values.
type Config struct {
	// Initial pose, held until the first subjects or overrides arrive.
	Position ebimath.Vector `yaml:"position"`
	Zoom     float64        `yaml:"zoom"`

	// World extents for the bottom clamp. The default is zero, which
	// disables the clamp; set a height (usually the level height) to
	// keep the view from showing anything below the world floor.
	Bounds  Size    `yaml:"bounds"`
	MarginX float64 `yaml:"margin_x"`
	MarginY float64 `yaml:"margin_y"`

	NoiseSeed  int64  `yaml:"noise_seed"`
	RandomSeed uint64 `yaml:"random_seed"`

	// One of SmoothingFollow (default), SmoothingInstant or SmoothingFrozen.
	Smoothing string `yaml:"smoothing"`

	Presets shaker.Presets `yaml:"presets"`
}

// Returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Zoom:       1.0,
		MarginX:    DefaultMarginX,
		MarginY:    DefaultMarginY,
		NoiseSeed:  5,
		RandomSeed: 1,
		Smoothing:  SmoothingFollow,
	}
}

// Checks the configuration for values the camera can't work with.
func (self *Config) Validate() error {
	if self.Zoom <= 0 {
		return fmt.Errorf("zoom must be > 0, got %v", self.Zoom)
	}
	if self.MarginX < 0 || self.MarginY < 0 {
		return fmt.Errorf("margins must be >= 0, got (%v, %v)", self.MarginX, self.MarginY)
	}
	if _, err := newTracker(self.Smoothing); err != nil {
		return err
	}
	return self.Presets.Validate()
}

// Decodes a YAML configuration on top of [DefaultConfig](). Documents
// without any content (empty, whitespace or comments only) are
// rejected, as they usually mean the file was read mid-save.
func ParseConfig(data []byte) (Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("framecam: unmarshal config: %w", err)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return Config{}, errEmptyConfig
	}

	cfg := DefaultConfig()
	if err := doc.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("framecam: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("framecam: invalid config: %w", err)
	}
	return cfg, nil
}

// Reads and decodes a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("framecam: load config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("framecam: load config %s: %w", path, err)
	}
	return cfg, nil
}

var errEmptyConfig = errors.New("framecam: empty config document")

func newTracker(smoothing string) (tracker.Tracker, error) {
	switch smoothing {
	case SmoothingFollow, "":
		return tracker.NewFollow(), nil
	case SmoothingInstant:
		return tracker.Instant, nil
	case SmoothingFrozen:
		return tracker.Frozen, nil
	default:
		return nil, errors.New("unknown smoothing mode " + smoothing)
	}
}
