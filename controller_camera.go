package framecam

import (
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/framecam/tracker"
)

func (self *Camera) update(subjects []Rect, aspectRatio float64) {
	if aspectRatio <= 0 {
		panic(errBadAspect)
	}
	self.queue.drain(self.shaker)
	self.tick += 1

	self.updateTracking(subjects, aspectRatio)
	self.updateShake()
	self.applyPose()
}

// ---- tracking ----

func (self *Camera) updateTracking(subjects []Rect, aspectRatio float64) {
	if len(subjects) > 0 {
		self.raw = self.frame(subjects, aspectRatio)
		self.hasRaw = true
	} else if self.positionOverride == nil && self.zoomOverride == nil {
		return // nothing to frame, hold the previous target
	}

	target := self.raw
	if !self.hasRaw {
		target = self.target
	}
	if self.positionOverride != nil {
		target.Position = *self.positionOverride
	}
	if self.zoomOverride != nil {
		target.Zoom = *self.zoomOverride
	}
	self.target = self.tracker.Track(self.target, target)
}

// Computes the raw framing target for the given subjects. The subject
// list must not be empty.
func (self *Camera) frame(subjects []Rect, aspectRatio float64) tracker.Sample {
	first := subjects[0].Center()
	minX, minY := first.X, first.Y
	maxX, maxY := first.X, first.Y
	var sumX, sumY float64
	for _, rect := range subjects {
		center := rect.Center()
		sumX += center.X
		sumY += center.Y
		minX, minY = min(minX, center.X), min(minY, center.Y)
		maxX, maxY = max(maxX, center.X), max(maxY, center.Y)
	}
	count := float64(len(subjects))
	center := ebimath.V(sumX/count, sumY/count)

	// visible box, grown to the viewport aspect ratio if too wide
	extentX := ebimath.Abs(maxX-minX) + self.marginX*2.0
	extentY := ebimath.Abs(maxY-minY) + self.marginY*2.0
	if extentX > extentY*aspectRatio {
		extentY = extentX / aspectRatio
	}

	// bottom camera bound
	if self.bounds.Height > 0 && extentY/2.0+center.Y > self.bounds.Height {
		center.Y = self.bounds.Height - extentY/2.0
	}

	return tracker.Sample{Position: center, Zoom: extentY}
}

// ---- screenshake ----

func (self *Camera) updateShake() {
	offset, rotation := self.shaker.Sample()
	self.offset = offset
	self.rotation = rotation
}

// ---- output ----

func (self *Camera) applyPose() {
	self.pose = Pose{
		Position: ebimath.V(self.target.Position.X+self.offset.X, self.target.Position.Y+self.offset.Y),
		Zoom:     self.target.Zoom,
		Rotation: self.rotation,
	}
	self.position = self.backend.Apply(self.pose)
}
