package framecam

import (
	"sync"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/framecam/shaker"
)

// Collects shake triggers issued from goroutines other than the one
// running [Camera.Update](). Pending triggers are applied at the start
// of the next update, in the order they were queued.
//
// All methods are safe for concurrent use. Obtain the camera's queue
// with [Camera.Queue]().
type TriggerQueue struct {
	mutex   sync.Mutex
	pending []func(*shaker.Aggregator)
	spare   []func(*shaker.Aggregator)
}

// Queues a [shaker.Aggregator.TriggerNoise]() call.
func (self *TriggerQueue) Noise(magnitude float64, length int, frequency float64) {
	self.push(func(agg *shaker.Aggregator) {
		agg.TriggerNoise(magnitude, length, frequency)
	})
}

// Queues a [shaker.Aggregator.TriggerNoiseDirectional]() call.
func (self *TriggerQueue) NoiseDirectional(magnitude float64, length int, frequency float64, direction ebimath.Vector) {
	self.push(func(agg *shaker.Aggregator) {
		agg.TriggerNoiseDirectional(magnitude, length, frequency, direction)
	})
}

// Queues a [shaker.Aggregator.TriggerSinusoidal]() call.
func (self *TriggerQueue) Sinusoidal(magnitude float64, length int, frequency, angle float64) {
	self.push(func(agg *shaker.Aggregator) {
		agg.TriggerSinusoidal(magnitude, length, frequency, angle)
	})
}

// Queues a [shaker.Aggregator.TriggerRotational]() call.
func (self *TriggerQueue) Rotational(magnitude float64, length int) {
	self.push(func(agg *shaker.Aggregator) {
		agg.TriggerRotational(magnitude, length)
	})
}

// Queues a [shaker.Aggregator.TriggerPreset]() call. Unknown names are
// silently dropped when the queue is drained.
func (self *TriggerQueue) Preset(name string) {
	self.push(func(agg *shaker.Aggregator) {
		agg.TriggerPreset(name)
	})
}

// Returns the number of triggers waiting for the next update.
func (self *TriggerQueue) Pending() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.pending)
}

func (self *TriggerQueue) push(trigger func(*shaker.Aggregator)) {
	self.mutex.Lock()
	self.pending = append(self.pending, trigger)
	self.mutex.Unlock()
}

// Applies and clears all pending triggers. Only the owning goroutine
// may call this. The lock is not held while triggers run.
func (self *TriggerQueue) drain(agg *shaker.Aggregator) {
	self.mutex.Lock()
	if len(self.pending) == 0 {
		self.mutex.Unlock()
		return
	}
	batch := self.pending
	self.pending = self.spare[:0]
	self.mutex.Unlock()

	for i, trigger := range batch {
		trigger(agg)
		batch[i] = nil
	}

	self.mutex.Lock()
	self.spare = batch[:0]
	self.mutex.Unlock()
}
