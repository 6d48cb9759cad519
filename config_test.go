package framecam

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edwinsyarief/framecam/shaker"
	"github.com/edwinsyarief/framecam/tracker"
)

const testConfigYAML = `
position: {x: 640, y: 360}
zoom: 720
bounds: {width: 4000, height: 1200}
margin_x: 100
noise_seed: 11
presets:
  explosion:
    kind: noise
    magnitude: 1.2
    length: 30
    frequency: 1
  recoil:
    kind: rotational
    magnitude: 0.05
    length: 10
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(testConfigYAML))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Position.X != 640 || cfg.Position.Y != 360 || cfg.Zoom != 720 {
		t.Fatalf("unexpected initial pose %v / %v", cfg.Position, cfg.Zoom)
	}
	if cfg.Bounds.Height != 1200 || cfg.MarginX != 100 {
		t.Fatalf("unexpected bounds or margins: %+v", cfg)
	}
	// absent fields keep their defaults
	if cfg.MarginY != DefaultMarginY || cfg.Smoothing != SmoothingFollow || cfg.RandomSeed != 1 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.NoiseSeed != 11 {
		t.Fatalf("expected noise seed 11, got %d", cfg.NoiseSeed)
	}
	if len(cfg.Presets) != 2 || cfg.Presets["recoil"].Kind != shaker.Rotational {
		t.Fatalf("unexpected presets %+v", cfg.Presets)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"zero_zoom", "zoom: 0", "zoom must be > 0"},
		{"negative_margin", "margin_y: -1", "margins must be >= 0"},
		{"bad_smoothing", "smoothing: springy", "unknown smoothing mode"},
		{"bad_preset", "presets: {a: {kind: noise, length: 0}}", "length must be > 0"},
		{"bad_kind", "presets: {a: {kind: wobble, length: 3}}", "unknown kind"},
		{"bad_yaml", "zoom: [", "unmarshal config"},
		{"empty", "", "empty config"},
		{"whitespace", "  \n\n   \n", "empty config"},
		{"comments_only", "# saving...\n", "empty config"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(c.data))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	if err := os.WriteFile(path, []byte("smoothing: instant\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cam := New(cfg, nil)
	if cam.Tracker() != tracker.Instant {
		t.Fatalf("expected instant tracker, got %T", cam.Tracker())
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestSmoothingModes(t *testing.T) {
	cases := []struct {
		mode string
		want tracker.Tracker
	}{
		{SmoothingInstant, tracker.Instant},
		{SmoothingFrozen, tracker.Frozen},
	}
	for _, c := range cases {
		t.Run(c.mode, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Smoothing = c.mode
			if got := New(cfg, nil).Tracker(); got != c.want {
				t.Fatalf("expected %T, got %T", c.want, got)
			}
		})
	}
	if _, ok := New(DefaultConfig(), nil).Tracker().(*tracker.Follow); !ok {
		t.Fatalf("expected follow tracker by default")
	}
}

func TestLoadConfigTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "empty config") {
		t.Fatalf("expected empty config error, got %v", err)
	}
}

func TestConfigBoundsEnableClamp(t *testing.T) {
	cfg, err := ParseConfig([]byte("smoothing: instant\nbounds: {height: 500}\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	cam := New(cfg, nil)
	cam.Update([]Rect{{X: 0, Y: 450}}, testAspect)
	if target := cam.Target(); target.Position.Y+target.Zoom/2 != 500 {
		t.Fatalf("expected view bottom at 500, got %v", target.Position.Y+target.Zoom/2)
	}

	if DefaultConfig().Bounds.Height != 0 {
		t.Fatalf("expected the clamp to be disabled by default")
	}
}
