package tracker

import ebimath "github.com/edwinsyarief/ebi-math"

// Number of samples kept by a [Follow] buffer.
const BufferCapacity = 20

// A moving-average tracker. Keeps the most recent [BufferCapacity]
// targets, newest first, and returns their mean.
//
// The zero value is ready to use.
type Follow struct {
	samples []Sample
}

// Creates an empty follow buffer with its full capacity preallocated.
func NewFollow() *Follow {
	return &Follow{samples: make([]Sample, 0, BufferCapacity)}
}

// Inserts the sample at the front of the buffer, discarding the
// oldest one if the buffer was already full.
func (self *Follow) Push(sample Sample) {
	if len(self.samples) < BufferCapacity {
		self.samples = append(self.samples, Sample{})
	}
	copy(self.samples[1:], self.samples[:len(self.samples)-1])
	self.samples[0] = sample
}

// Returns the arithmetic mean of all stored samples.
//
// Panics if the buffer is empty: always push before averaging.
func (self *Follow) Average() Sample {
	if len(self.samples) == 0 {
		panic("can't average an empty follow buffer")
	}

	// deviations from the newest sample are summed instead of raw values,
	// so a buffer of identical samples averages back to that exact sample
	ref := self.samples[0]
	var sumX, sumY, sumZoom float64
	for _, sample := range self.samples[1:] {
		sumX += sample.Position.X - ref.Position.X
		sumY += sample.Position.Y - ref.Position.Y
		sumZoom += sample.Zoom - ref.Zoom
	}
	count := float64(len(self.samples))
	return Sample{
		Position: ebimath.V(ref.Position.X+sumX/count, ref.Position.Y+sumY/count),
		Zoom:     ref.Zoom + sumZoom/count,
	}
}

// Returns the number of stored samples.
func (self *Follow) Len() int {
	return len(self.samples)
}

// Returns the sample at the given index, 0 being the newest.
func (self *Follow) At(index int) Sample {
	return self.samples[index]
}

// Drops all stored samples.
func (self *Follow) Reset() {
	self.samples = self.samples[:0]
}

// Implements [Tracker] by pushing the target and returning the new
// average. The current pose is ignored.
func (self *Follow) Track(current, target Sample) Sample {
	self.Push(target)
	return self.Average()
}
