package framecam

import ebimath "github.com/edwinsyarief/ebi-math"

// Default framing margins, in world units. The box spanned by the
// subjects is grown by twice these values before fitting it in view.
const (
	DefaultMarginX = 150.0
	DefaultMarginY = 200.0
)

// An axis-aligned rectangle in world coordinates, as provided by the
// physics world for each tracked subject.
type Rect struct {
	X, Y          float64 // top-left corner
	Width, Height float64
}

// Returns the top-left corner of the rectangle.
func (self Rect) Point() ebimath.Vector {
	return ebimath.V(self.X, self.Y)
}

// Returns the center of the rectangle.
func (self Rect) Center() ebimath.Vector {
	return ebimath.V(self.X+self.Width/2.0, self.Y+self.Height/2.0)
}

// Logical world extents. Only the height is used for clamping, as the
// camera may not show anything below the world floor.
//
// A zero or negative height disables the bottom clamp.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// The final camera pose for a tick. Zoom is the world height that
// must fit in view, so bigger values show more of the world. Rotation
// is in degrees.
type Pose struct {
	Position ebimath.Vector
	Zoom     float64
	Rotation float64
}

// --- errors ---
const (
	errBadAspect  = "can't frame subjects with aspect ratio <= 0"
	errNilTracker = "can't set a nil tracker"
)
