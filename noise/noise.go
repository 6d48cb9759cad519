// Package noise provides the continuous pseudo-random field used by the
// shaker package to drive organic camera motion.
//
// A [Source] is deterministic: the same seed and the same inputs always
// produce the same value, and small input deltas produce small output
// deltas, so sampling it along a time axis yields smooth wobble instead
// of white-noise jitter.
package noise

import "github.com/ojrac/opensimplex-go"

// Bounds of [Source.Sample]() results.
const (
	Min = -0.5
	Max = 0.5
)

// A 2D coherent noise field centered on zero.
//
// The underlying lattice is built once on construction and never
// modified afterwards, so a Source can be shared by reference as long
// as it's only used from the simulation goroutine.
type Source struct {
	field opensimplex.Noise
	seed  int64
}

// Creates a new noise source. The seed controls the internal lattice
// permutation; different seeds give uncorrelated fields.
func New(seed int64) *Source {
	return &Source{
		field: opensimplex.NewNormalized(seed),
		seed:  seed,
	}
}

// Returns the seed the source was created with.
func (self *Source) Seed() int64 {
	return self.seed
}

// Samples the field at (coordinate, channel). The channel is usually
// a fixed value per axis, which turns the 2D field into independent
// 1D curves along the coordinate.
//
// Results are always within [Min, Max].
func (self *Source) Sample(coordinate, channel float64) float64 {
	value := self.field.Eval2(coordinate, channel) - 0.5
	return min(max(value, Min), Max)
}
