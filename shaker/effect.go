package shaker

import ebimath "github.com/edwinsyarief/ebi-math"

// A single timed disturbance. Effects are created by the trigger methods
// of [Aggregator] and only live inside it; the values exposed through
// [Aggregator.Effects]() are copies.
type Effect struct {
	Direction   ebimath.Vector // per axis weighting, unused by Rotational
	Kind        Kind
	Magnitude   float64
	Length      float64 // in ticks, kept as float64 to avoid casts on every sample
	Age         float64 // ticks elapsed since the trigger
	PhaseOffset float64 // decorrelates simultaneous noise shakes
	Frequency   float64 // 1 is standard, 0.2 is a punch, 0.5 a rumble
}

// Returns the linear decay factor for the effect's current age:
// 1 when just triggered, approaching 0 as age approaches length.
func (self *Effect) Strength() float64 {
	return 1.0 - self.Age/self.Length
}

// Returns whether the effect has consumed its whole length.
func (self *Effect) Expired() bool {
	return self.Age >= self.Length
}
