// Package view turns framecam poses into Ebitengine view transforms.
//
// [Backend] implements framecam.Backend: it receives the final pose of
// each tick, builds the [ebiten.GeoM] that maps world coordinates to
// screen pixels, optionally snaps the camera to the pixel grid and
// reports the resolved position back to the camera.
package view

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/framecam"
	"github.com/hajimehoshi/ebiten/v2"
)

// Returns the GeoM that maps world coordinates to screen coordinates
// for the given pose, with the pose position at the screen center and
// the pose zoom (world height) filling the screen height.
func Transform(pose framecam.Pose, screenWidth, screenHeight int) ebiten.GeoM {
	var geom ebiten.GeoM
	scale := Scale(pose.Zoom, screenHeight)
	geom.Translate(-pose.Position.X, -pose.Position.Y)
	geom.Rotate(pose.Rotation * math.Pi / 180.0)
	geom.Scale(scale, scale)
	geom.Translate(float64(screenWidth)/2.0, float64(screenHeight)/2.0)
	return geom
}

// Returns the number of screen pixels per world unit for the given zoom.
func Scale(zoom float64, screenHeight int) float64 {
	if zoom <= 0 {
		panic("can't compute view scale with zoom <= 0")
	}
	return float64(screenHeight) / zoom
}

// Rounds the position to the screen pixel grid for the given scale.
func Snap(position ebimath.Vector, scale float64) ebimath.Vector {
	return ebimath.V(
		math.Round(position.X*scale)/scale,
		math.Round(position.Y*scale)/scale,
	)
}

// An Ebitengine rendering backend for framecam cameras.
type Backend struct {
	screenWidth  int
	screenHeight int
	snap         bool
	pose         framecam.Pose
	geom         ebiten.GeoM
	inverse      ebiten.GeoM
}

// Creates a backend for the given screen size, in pixels. Pixel
// snapping is enabled by default.
func NewBackend(screenWidth, screenHeight int) *Backend {
	backend := &Backend{snap: true}
	backend.SetScreenSize(screenWidth, screenHeight)
	return backend
}

// Sets the screen size. Usually called from ebiten.Game.Layout().
func (self *Backend) SetScreenSize(width, height int) {
	if width < 1 || height < 1 {
		panic("view screen size must be at least (1, 1)")
	}
	self.screenWidth, self.screenHeight = width, height
}

// Returns the screen size.
func (self *Backend) ScreenSize() (width, height int) {
	return self.screenWidth, self.screenHeight
}

// Returns the screen width / height ratio, as expected by
// framecam.Camera.Update().
func (self *Backend) AspectRatio() float64 {
	return float64(self.screenWidth) / float64(self.screenHeight)
}

// Enables or disables snapping the camera position to the pixel grid.
// Snapping removes shimmering on pixel art at the cost of slightly
// stepped motion.
func (self *Backend) SetPixelSnapping(enabled bool) {
	self.snap = enabled
}

// Implements framecam.Backend.
func (self *Backend) Apply(pose framecam.Pose) ebimath.Vector {
	if self.snap {
		pose.Position = Snap(pose.Position, Scale(pose.Zoom, self.screenHeight))
	}
	self.pose = pose
	self.geom = Transform(pose, self.screenWidth, self.screenHeight)
	self.inverse = self.geom
	self.inverse.Invert()
	return pose.Position
}

// Returns the pose resolved on the last Apply() call.
func (self *Backend) Pose() framecam.Pose {
	return self.pose
}

// Returns the current world to screen transform.
func (self *Backend) GeoM() ebiten.GeoM {
	return self.geom
}

// Converts world coordinates to screen coordinates.
func (self *Backend) WorldToScreen(x, y float64) (float64, float64) {
	return self.geom.Apply(x, y)
}

// Converts screen coordinates to world coordinates.
func (self *Backend) ScreenToWorld(x, y float64) (float64, float64) {
	return self.inverse.Apply(x, y)
}

// Draws a world image, whose origin is the world origin, to the screen
// through the current transform.
func (self *Backend) Draw(screen, world *ebiten.Image) {
	var opts ebiten.DrawImageOptions
	opts.GeoM = self.geom
	screen.DrawImage(world, &opts)
}

// Returns the GeoM that would be used to draw an image with its
// top-left corner at the given world coordinates.
func (self *Backend) GeoMAt(x, y float64) ebiten.GeoM {
	var geom ebiten.GeoM
	geom.Translate(x, y)
	geom.Concat(self.geom)
	return geom
}
