package framecam

import (
	"fmt"
	"math/rand/v2"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/framecam/noise"
	"github.com/edwinsyarief/framecam/shaker"
	"github.com/edwinsyarief/framecam/tracker"
)

// A camera that keeps any number of subjects in view, smooths its
// motion and layers screen shakes on top.
//
// A camera is owned by the goroutine running the game simulation:
// call [Camera.Update]() once per tick from there, and trigger shakes
// from game logic running on the same goroutine. Use [Camera.Queue]()
// for anything else.
type Camera struct {
	backend   Backend
	tracker   tracker.Tracker
	smoothing string
	shaker    *shaker.Aggregator
	queue     *TriggerQueue

	// framing
	bounds           Size
	marginX          float64
	marginY          float64
	positionOverride *ebimath.Vector
	zoomOverride     *float64
	raw              tracker.Sample // last subject-derived target, before overrides
	hasRaw           bool
	target           tracker.Sample // smoothed target, before shake

	// output
	offset   ebimath.Vector
	rotation float64
	pose     Pose
	position ebimath.Vector // as resolved by the backend
	tick     uint64
}

// Creates a new camera. If backend is nil, poses are resolved as is
// and only queryable through [Camera.Pose]() and [Camera.Position]().
//
// Panics if the configuration is invalid. See [Config.Validate]().
func New(cfg Config, backend Backend) *Camera {
	if err := cfg.Validate(); err != nil {
		panic("invalid framecam.Config: " + err.Error())
	}
	if backend == nil {
		backend = defaultBackend
	}
	camTracker, _ := newTracker(cfg.Smoothing)
	rng := rand.New(rand.NewPCG(cfg.RandomSeed, cfg.RandomSeed^0x9e3779b97f4a7c15))
	initial := tracker.Sample{Position: cfg.Position, Zoom: cfg.Zoom}

	return &Camera{
		backend:   backend,
		tracker:   camTracker,
		smoothing: cfg.Smoothing,
		shaker:    shaker.NewAggregator(noise.New(cfg.NoiseSeed), rng, cfg.Presets),
		queue:     &TriggerQueue{},
		bounds:    cfg.Bounds,
		marginX:   cfg.MarginX,
		marginY:   cfg.MarginY,
		target:    initial,
		pose:      Pose{Position: cfg.Position, Zoom: cfg.Zoom},
		position:  cfg.Position,
	}
}

// --- tick ---

// Advances the camera by one tick. Subjects are the current bounding
// boxes of everything that must stay in view, and aspectRatio is the
// viewport width / height.
//
// In order, the update:
//   - Applies any triggers queued through [Camera.Queue]().
//   - Frames the subjects and applies position/zoom overrides.
//   - Smooths the framing target through the current tracker.
//   - Samples the shaker and adds its offset and rotation.
//   - Hands the final pose to the backend and stores the resolved position.
//
// With no subjects and no overrides, the previous target is held.
// Panics if aspectRatio <= 0.
func (self *Camera) Update(subjects []Rect, aspectRatio float64) {
	self.update(subjects, aspectRatio)
}

// Returns the number of updates performed so far.
func (self *Camera) Tick() uint64 {
	return self.tick
}

// --- output ---

// Returns the last camera position resolved by the backend. This is
// what dependents like parallax layers should read between ticks.
func (self *Camera) Position() ebimath.Vector {
	return self.position
}

// Returns the last pose handed to the backend.
func (self *Camera) Pose() Pose {
	return self.pose
}

// Returns the current zoom level, that is, the world height in view.
func (self *Camera) Zoom() float64 {
	return self.pose.Zoom
}

// Returns the current rotation, in degrees.
func (self *Camera) Rotation() float64 {
	return self.pose.Rotation
}

// Returns the smoothed framing target, without shake.
func (self *Camera) Target() tracker.Sample {
	return self.target
}

// Returns the shake offset applied on the last update.
func (self *Camera) ShakeOffset() ebimath.Vector {
	return self.offset
}

// --- bounds ---

// Returns the world bounds used for the bottom clamp.
func (self *Camera) Bounds() Size {
	return self.bounds
}

// Sets the world bounds used for the bottom clamp. Takes effect on
// the next update.
func (self *Camera) SetBounds(bounds Size) {
	self.bounds = bounds
}

// Returns the framing margins.
func (self *Camera) Margins() (x, y float64) {
	return self.marginX, self.marginY
}

// Sets the framing margins. Takes effect on the next update.
func (self *Camera) SetMargins(x, y float64) {
	if x < 0 || y < 0 {
		panic("can't set framing margins < 0")
	}
	self.marginX, self.marginY = x, y
}

// --- overrides ---

// Sets both overrides at once. Nil values clear the respective override.
// Overrides replace the subject framing but still go through smoothing.
func (self *Camera) SetOverrides(position *ebimath.Vector, zoom *float64) {
	self.positionOverride, self.zoomOverride = nil, nil
	if position != nil {
		self.SetPositionOverride(*position)
	}
	if zoom != nil {
		self.SetZoomOverride(*zoom)
	}
}

// Forces the camera to look at the given position until cleared.
func (self *Camera) SetPositionOverride(position ebimath.Vector) {
	self.positionOverride = &position
}

// Forces the given zoom level until cleared.
func (self *Camera) SetZoomOverride(zoom float64) {
	if zoom <= 0 {
		panic("can't override zoom with a value <= 0")
	}
	self.zoomOverride = &zoom
}

// Returns the current overrides. Nil means not set.
func (self *Camera) Overrides() (position *ebimath.Vector, zoom *float64) {
	if self.positionOverride != nil {
		pos := *self.positionOverride
		position = &pos
	}
	if self.zoomOverride != nil {
		z := *self.zoomOverride
		zoom = &z
	}
	return position, zoom
}

// Clears both overrides. Subject framing resumes on the next update.
func (self *Camera) ClearOverrides() {
	self.positionOverride, self.zoomOverride = nil, nil
}

// --- tracking ---

// Returns the current tracker.
func (self *Camera) Tracker() tracker.Tracker {
	return self.tracker
}

// Sets the tracker in charge of smoothing the framing target. By
// default, a [tracker.Follow] moving average is used. Switching to
// [tracker.Instant] for a tick is the easiest way to do a hard cut.
func (self *Camera) SetTracker(camTracker tracker.Tracker) {
	if camTracker == nil {
		panic(errNilTracker)
	}
	self.tracker = camTracker
}

// Moves the camera to the given pose immediately, discarding the
// follow history. Commonly used when changing scenes or maps.
func (self *Camera) ResetTarget(position ebimath.Vector, zoom float64) {
	if follow, ok := self.tracker.(*tracker.Follow); ok {
		follow.Reset()
	}
	self.hasRaw = false
	self.raw = tracker.Sample{}
	self.target = tracker.Sample{Position: position, Zoom: zoom}
}

// --- screen shaking ---

// Returns the shake aggregator.
func (self *Camera) Shaker() *shaker.Aggregator {
	return self.shaker
}

// Returns the queue for triggering shakes from other goroutines.
func (self *Camera) Queue() *TriggerQueue {
	return self.queue
}

// See [shaker.Aggregator.TriggerNoise]().
func (self *Camera) TriggerNoise(magnitude float64, length int, frequency float64) {
	self.shaker.TriggerNoise(magnitude, length, frequency)
}

// See [shaker.Aggregator.TriggerNoiseDirectional]().
func (self *Camera) TriggerNoiseDirectional(magnitude float64, length int, frequency float64, direction ebimath.Vector) {
	self.shaker.TriggerNoiseDirectional(magnitude, length, frequency, direction)
}

// See [shaker.Aggregator.TriggerSinusoidal]().
func (self *Camera) TriggerSinusoidal(magnitude float64, length int, frequency, angle float64) {
	self.shaker.TriggerSinusoidal(magnitude, length, frequency, angle)
}

// See [shaker.Aggregator.TriggerRotational]().
func (self *Camera) TriggerRotational(magnitude float64, length int) {
	self.shaker.TriggerRotational(magnitude, length)
}

// See [shaker.Aggregator.TriggerPreset]().
func (self *Camera) TriggerPreset(name string) bool {
	return self.shaker.TriggerPreset(name)
}

// Replaces the shake preset table, e.g. after a config file reload.
// Active shakes are not affected.
func (self *Camera) ReloadPresets(presets shaker.Presets) {
	self.shaker.SetPresets(presets)
}

// Applies a reloaded configuration to the running camera: bounds,
// margins, smoothing mode and presets. The smoothing tracker is only
// replaced when the mode changes. The initial pose and the seeds are
// construction-time settings and are left untouched; see
// [NeedsRestart]().
//
// Returns an error and leaves the camera unchanged if cfg is invalid.
func (self *Camera) Reload(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("framecam: reload config: %w", err)
	}
	if cfg.Smoothing != self.smoothing {
		camTracker, _ := newTracker(cfg.Smoothing)
		self.tracker = camTracker
		self.smoothing = cfg.Smoothing
	}
	self.bounds = cfg.Bounds
	self.marginX, self.marginY = cfg.MarginX, cfg.MarginY
	self.shaker.SetPresets(cfg.Presets)
	return nil
}

// Returns the names of the fields that differ between the two configs
// and can't be applied through [Camera.Reload]().
func NeedsRestart(running, reloaded Config) []string {
	var fields []string
	if running.Position != reloaded.Position {
		fields = append(fields, "position")
	}
	if running.Zoom != reloaded.Zoom {
		fields = append(fields, "zoom")
	}
	if running.NoiseSeed != reloaded.NoiseSeed {
		fields = append(fields, "noise_seed")
	}
	if running.RandomSeed != reloaded.RandomSeed {
		fields = append(fields, "random_seed")
	}
	return fields
}

// Returns whether any shake is currently active.
func (self *Camera) IsShaking() bool {
	return self.shaker.Active() > 0
}
