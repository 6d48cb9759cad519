// This package defines the [Tracker] interface that the framecam
// camera uses to smooth its framing target, and provides the default
// moving-average implementation, [Follow].
//
// Trackers work in ticks: Track() is invoked exactly once per camera
// update with the smoothed pose from the previous tick and the raw
// framing target computed for the current one.
package tracker

import ebimath "github.com/edwinsyarief/ebi-math"

// A framing target: where the camera should look and how much world
// height it should fit in view.
type Sample struct {
	Position ebimath.Vector
	Zoom     float64
}

// The interface for framecam camera trackers.
//
// Given the smoothed pose from the last tick and the newest raw target,
// Track returns the pose the camera should use for this tick.
type Tracker interface {
	Track(current, target Sample) Sample
}
