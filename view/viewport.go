package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewports are screen sized canvases that world content is drawn to
// through a [Backend] transform, and later projected to the final
// screen. Keeping the world on its own canvas makes it easy to draw
// camera-independent elements (HUDs, debug text) on top.
//
// Creating a viewport involves creating an [*ebiten.Image], so you
// want to store and reuse them. Call [Viewport.Clear]() once per frame.
type Viewport struct {
	canvas        *ebiten.Image
	backend       *Backend
	drawImageOpts ebiten.DrawImageOptions
}

// Creates a new viewport sized to the backend screen.
//
// Never invoke this per frame, always reuse viewports.
func NewViewport(backend *Backend) *Viewport {
	width, height := backend.ScreenSize()
	return &Viewport{
		canvas:  ebiten.NewImage(width, height),
		backend: backend,
	}
}

// Returns the underlying canvas for the viewport.
func (self *Viewport) Target() *ebiten.Image {
	return self.canvas
}

// Returns the size of the viewport.
func (self *Viewport) Size() (width, height int) {
	bounds := self.canvas.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Recreates the canvas if the backend screen size has changed since
// the viewport was created. Call after [Backend.SetScreenSize]().
func (self *Viewport) Resize() {
	width, height := self.backend.ScreenSize()
	if w, h := self.Size(); w == width && h == height {
		return
	}
	self.canvas.Deallocate()
	self.canvas = ebiten.NewImage(width, height)
}

// Draws the source image with its top-left corner at the given world
// coordinates. The opts GeoM is applied before the camera transform,
// so it can be used for local scaling or rotation. opts may be nil.
func (self *Viewport) DrawAt(source *ebiten.Image, x, y float64, opts *ebiten.DrawImageOptions) {
	if opts != nil {
		self.drawImageOpts = *opts
	}
	self.drawImageOpts.GeoM.Concat(self.backend.GeoMAt(x, y))
	self.canvas.DrawImage(source, &self.drawImageOpts)
	self.drawImageOpts = ebiten.DrawImageOptions{}
}

// Fills the whole canvas with the given color.
func (self *Viewport) Fill(fillColor color.Color) {
	self.canvas.Fill(fillColor)
}

// Clears the underlying viewport canvas.
func (self *Viewport) Clear() {
	self.canvas.Clear()
}

// Projects the viewport into the given target, usually the screen
// received by ebiten.Game.Draw().
func (self *Viewport) Project(target *ebiten.Image) {
	self.drawImageOpts.Filter = ebiten.FilterNearest
	target.DrawImage(self.canvas, &self.drawImageOpts)
	self.drawImageOpts = ebiten.DrawImageOptions{}
}
