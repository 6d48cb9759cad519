package shaker

import (
	"math"
	"math/rand/v2"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/framecam/noise"
)

// Advance of the shake time axis on each [Aggregator.Sample]() call.
const TimeStep = 0.5

// Initial value of the shake time axis.
const StartTime = 5.0

// Noise channels for each axis. Different channels decorrelate x and y
// while sampling the same coordinate.
const (
	ChannelX = 5.0
	ChannelY = 7.0
)

// Range for the random phase offset of noise shakes.
const (
	minPhaseOffset = 1.0
	maxPhaseOffset = 100.0
)

// Output gains per kind. Noise values are in [-0.5, 0.5] while sines
// are in [-1, 1], so sinusoids get half the gain.
const (
	noiseGain      = 100.0
	sinusoidalGain = 50.0
	rotationalGain = 3.0
)

// Owns the active shake effects and combines them once per tick.
//
// The zero value is not usable, create aggregators with [NewAggregator]().
type Aggregator struct {
	effects     []Effect
	noise       *noise.Source
	rng         *rand.Rand
	presets     Presets
	runningTime float64
}

// Creates a new aggregator sampling the given noise source.
//
// The random source is used for noise phase offsets and rotational kick
// signs. If nil, a fixed-seed PCG is used so results stay reproducible.
// Presets may be nil if [Aggregator.TriggerPreset]() is never needed.
func NewAggregator(source *noise.Source, rng *rand.Rand, presets Presets) *Aggregator {
	if source == nil {
		panic("can't create shaker.Aggregator without a noise source")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(source.Seed()), 0x5eed))
	}
	return &Aggregator{
		noise:       source,
		rng:         rng,
		presets:     presets,
		runningTime: StartTime,
	}
}

// --- triggers ---

// Triggers a noise shake affecting both axes equally.
//
// Lengths <= 0 are ignored.
func (self *Aggregator) TriggerNoise(magnitude float64, length int, frequency float64) {
	self.TriggerNoiseDirectional(magnitude, length, frequency, ebimath.V(1, 1))
}

// Triggers a noise shake with per axis weighting, e.g. (1, 0) for a
// horizontal-only shake.
//
// Lengths <= 0 are ignored.
func (self *Aggregator) TriggerNoiseDirectional(magnitude float64, length int, frequency float64, direction ebimath.Vector) {
	if length <= 0 {
		return
	}
	self.effects = append(self.effects, Effect{
		Direction:   direction,
		Kind:        Noise,
		Magnitude:   magnitude,
		Length:      float64(length),
		PhaseOffset: minPhaseOffset + self.rng.Float64()*(maxPhaseOffset-minPhaseOffset),
		Frequency:   frequency,
	})
}

// Triggers a sinusoidal shake along the given angle, in radians.
//
// Lengths <= 0 are ignored.
func (self *Aggregator) TriggerSinusoidal(magnitude float64, length int, frequency, angle float64) {
	if length <= 0 {
		return
	}
	self.effects = append(self.effects, Effect{
		Direction: ebimath.V(math.Cos(angle), math.Sin(angle)),
		Kind:      Sinusoidal,
		Magnitude: magnitude,
		Length:    float64(length),
		Frequency: frequency,
	})
}

// Triggers a rotational kick. The sign of the magnitude is randomized
// so consecutive kicks don't all twist the same way.
//
// Lengths <= 0 are ignored.
func (self *Aggregator) TriggerRotational(magnitude float64, length int) {
	if length <= 0 {
		return
	}
	sign := float64(self.rng.IntN(2))*2.0 - 1.0
	self.effects = append(self.effects, Effect{
		Direction: ebimath.V(1, 1),
		Kind:      Rotational,
		Magnitude: magnitude * sign,
		Length:    float64(length),
	})
}

// Triggers the named preset. Returns false if no preset with that
// name was configured.
func (self *Aggregator) TriggerPreset(name string) bool {
	preset, found := self.presets[name]
	if !found {
		return false
	}
	preset.Fire(self)
	return true
}

// Replaces the preset table.
func (self *Aggregator) SetPresets(presets Presets) {
	self.presets = presets
}

// Returns the current preset table. Don't modify it.
func (self *Aggregator) Presets() Presets {
	return self.presets
}

// --- sampling ---

// Advances all active effects by one tick and returns their combined
// offset and rotation. Must be called exactly once per tick.
//
// Each offset axis is passed through [SoftClamp]() after accumulation,
// so effect storms can't throw the camera off-screen. Rotation is
// returned as is.
func (self *Aggregator) Sample() (ebimath.Vector, float64) {
	self.runningTime += TimeStep

	var offsetX, offsetY, rotation float64
	for i := range self.effects {
		effect := &self.effects[i]
		strength := effect.Strength()
		switch effect.Kind {
		case Noise:
			t := self.runningTime*effect.Frequency + effect.PhaseOffset
			amount := effect.Magnitude * strength * noiseGain
			offsetX += self.noise.Sample(t, ChannelX) * amount * effect.Direction.X
			offsetY += self.noise.Sample(t, ChannelY) * amount * effect.Direction.Y
		case Sinusoidal:
			wave := math.Sin(self.runningTime*effect.Frequency) * effect.Magnitude * strength * sinusoidalGain
			offsetX += wave * effect.Direction.X
			offsetY += wave * effect.Direction.Y
		case Rotational:
			rotation += effect.Magnitude * strength * strength * strength * rotationalGain
		default:
			panic("invalid shaker.Kind")
		}
		effect.Age += 1.0
	}

	// drop expired effects in place
	alive := self.effects[:0]
	for _, effect := range self.effects {
		if !effect.Expired() {
			alive = append(alive, effect)
		}
	}
	self.effects = alive

	return ebimath.V(SoftClamp(offsetX), SoftClamp(offsetY)), rotation
}

// Compresses a raw offset with log2(|v|+1)*sign(v). Almost linear
// for small values, flattening out for large ones.
func SoftClamp(value float64) float64 {
	if value == 0 {
		return 0
	}
	compressed := math.Log2(math.Abs(value) + 1.0)
	if value < 0 {
		return -compressed
	}
	return compressed
}

// --- inspection ---

// Returns the number of active effects.
func (self *Aggregator) Active() int {
	return len(self.effects)
}

// Returns a copy of the active effects, oldest first.
func (self *Aggregator) Effects() []Effect {
	effects := make([]Effect, len(self.effects))
	copy(effects, self.effects)
	return effects
}

// Returns the current value of the shake time axis.
func (self *Aggregator) RunningTime() float64 {
	return self.runningTime
}

// Drops all active effects and rewinds the time axis. Commonly used
// when changing scenes or maps.
func (self *Aggregator) Reset() {
	self.effects = self.effects[:0]
	self.runningTime = StartTime
}
