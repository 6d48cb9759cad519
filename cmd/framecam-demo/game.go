package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/framecam"
	"github.com/edwinsyarief/framecam/hotreload"
	"github.com/edwinsyarief/framecam/tracker"
	"github.com/edwinsyarief/framecam/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	subjectSpeed = 6.0
	subjectSize  = 48.0
	tileSize     = 100.0
)

var (
	colorSky    = color.RGBA{24, 26, 38, 255}
	colorGrid   = color.RGBA{44, 48, 66, 255}
	colorFloor  = color.RGBA{70, 58, 48, 255}
	colorPanel  = color.RGBA{0, 0, 0, 160}
	colorLeft   = color.RGBA{230, 110, 80, 255}
	colorRight  = color.RGBA{90, 180, 230, 255}
	colorMarker = color.RGBA{240, 220, 90, 255}
)

type controls struct {
	left, right, up, down ebiten.Key
}

type subject struct {
	rect     framecam.Rect
	controls controls
	color    color.RGBA
	active   bool
}

type Game struct {
	camera   *framecam.Camera
	backend  *view.Backend
	viewport *view.Viewport
	watcher  *hotreload.Watcher
	config   framecam.Config
	pixel    *ebiten.Image
	floorY   float64

	subjects []subject
	rects    []framecam.Rect
	override bool
	cutFrom  tracker.Tracker // tracker to restore after a hard cut

	thunderStop chan struct{}
	thunderWG   sync.WaitGroup

	debugInfo []string
}

func NewGame(cfg framecam.Config, watcher *hotreload.Watcher, snap bool) *Game {
	backend := view.NewBackend(1280, 720)
	backend.SetPixelSnapping(snap)
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	floorY := cfg.Bounds.Height
	if floorY <= 0 {
		floorY = 600
	}
	return &Game{
		camera:   framecam.New(cfg, backend),
		backend:  backend,
		viewport: view.NewViewport(backend),
		watcher:  watcher,
		config:   cfg,
		pixel:    pixel,
		floorY:   floorY,
		subjects: []subject{
			{
				rect:     framecam.Rect{X: -200, Y: floorY - subjectSize, Width: subjectSize, Height: subjectSize},
				controls: controls{ebiten.KeyA, ebiten.KeyD, ebiten.KeyW, ebiten.KeyS},
				color:    colorLeft,
				active:   true,
			},
			{
				rect:     framecam.Rect{X: 200, Y: floorY - subjectSize, Width: subjectSize, Height: subjectSize},
				controls: controls{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown},
				color:    colorRight,
				active:   true,
			},
		},
	}
}

// Starts a goroutine that rumbles the camera at the given interval
// through the trigger queue, like an audio or network thread would.
func (self *Game) StartThunder(every time.Duration) {
	if self.thunderStop != nil {
		return
	}
	self.thunderStop = make(chan struct{})
	queue := self.camera.Queue()
	self.thunderWG.Add(1)
	go func() {
		defer self.thunderWG.Done()
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-self.thunderStop:
				return
			case <-ticker.C:
				queue.NoiseDirectional(0.5, 60, 0.4, ebimath.V(1, 0.3))
			}
		}
	}()
}

// Stops background goroutines.
func (self *Game) Close() {
	if self.thunderStop != nil {
		close(self.thunderStop)
		self.thunderWG.Wait()
		self.thunderStop = nil
	}
}

// --- ebiten.Game implementation ---

func (self *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	self.reloadConfig()
	self.updateSubjects()
	self.updateTriggers()

	self.rects = self.rects[:0]
	for _, subj := range self.subjects {
		if subj.active {
			self.rects = append(self.rects, subj.rect)
		}
	}
	self.camera.Update(self.rects, self.backend.AspectRatio())
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	self.viewport.Fill(colorSky)
	self.drawWorld()
	self.viewport.Project(screen)
	self.drawHUD(screen)
}

func (self *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := max(outsideWidth, 1), max(outsideHeight, 1)
	if w, h := self.backend.ScreenSize(); w != width || h != height {
		self.backend.SetScreenSize(width, height)
		self.viewport.Resize()
	}
	return width, height
}

// --- update helpers ---

func (self *Game) reloadConfig() {
	if self.watcher == nil {
		return
	}
	select {
	case path, ok := <-self.watcher.Events:
		if !ok {
			self.watcher = nil
			return
		}
		cfg, err := framecam.LoadConfig(path)
		if err != nil {
			log.Printf("framecam-demo: %v", err)
			return
		}
		if err := self.camera.Reload(cfg); err != nil {
			log.Printf("framecam-demo: %v", err)
			return
		}
		if fields := framecam.NeedsRestart(self.config, cfg); len(fields) > 0 {
			log.Printf("framecam-demo: %s changed in %s, restart to apply", strings.Join(fields, ", "), path)
		}
		self.config = cfg
		if cfg.Bounds.Height > 0 {
			self.floorY = cfg.Bounds.Height
		}
		log.Printf("framecam-demo: reloaded %s (%d presets)", path, len(cfg.Presets))
	case err, ok := <-self.watcher.Errors:
		if ok {
			log.Printf("framecam-demo: watch config: %v", err)
		}
	default:
	}
}

func (self *Game) updateSubjects() {
	for i := range self.subjects {
		subj := &self.subjects[i]
		if !subj.active {
			continue
		}
		if ebiten.IsKeyPressed(subj.controls.left) {
			subj.rect.X -= subjectSpeed
		}
		if ebiten.IsKeyPressed(subj.controls.right) {
			subj.rect.X += subjectSpeed
		}
		if ebiten.IsKeyPressed(subj.controls.up) {
			subj.rect.Y -= subjectSpeed
		}
		if ebiten.IsKeyPressed(subj.controls.down) {
			subj.rect.Y += subjectSpeed
		}
		subj.rect.Y = min(subj.rect.Y, self.floorY-subj.rect.Height)
	}
}

func (self *Game) updateTriggers() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		self.camera.TriggerNoise(1.0, 30, 1.0)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		self.camera.TriggerNoiseDirectional(1.0, 30, 1.0, ebimath.V(0, 1))
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		self.camera.TriggerSinusoidal(0.8, 20, 1.5, math.Pi/4)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit4):
		self.camera.TriggerRotational(1.0, 25)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit5):
		if !self.camera.TriggerPreset("explosion") {
			log.Printf("framecam-demo: no 'explosion' preset configured")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		self.override = !self.override
		if self.override {
			self.camera.SetPositionOverride(ebimath.V(0, self.floorY-300))
			self.camera.SetZoomOverride(1200)
		} else {
			self.camera.ClearOverrides()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		self.subjects[1].active = !self.subjects[1].active
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		// hard cut for one tick
		self.cutFrom = self.camera.Tracker()
		self.camera.SetTracker(tracker.Instant)
	} else if self.cutFrom != nil {
		if follow, ok := self.cutFrom.(*tracker.Follow); ok {
			follow.Reset()
		}
		self.camera.SetTracker(self.cutFrom)
		self.cutFrom = nil
	}
}

// --- draw helpers ---

func (self *Game) drawRect(x, y, width, height float64, clr color.Color) {
	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(width, height)
	opts.ColorScale.ScaleWithColor(clr)
	self.viewport.DrawAt(self.pixel, x, y, &opts)
}

func (self *Game) drawWorld() {
	// world rect in view, with some slack for rotation
	width, height := self.backend.ScreenSize()
	minX, minY := self.backend.ScreenToWorld(0, 0)
	maxX, maxY := self.backend.ScreenToWorld(float64(width), float64(height))
	slack := math.Max(maxX-minX, maxY-minY)
	minX, maxX = minX-slack, maxX+slack
	minY, maxY = minY-slack, maxY+slack

	lineWidth := self.camera.Zoom() / float64(height)
	for x := math.Floor(minX/tileSize) * tileSize; x < maxX; x += tileSize {
		self.drawRect(x, minY, lineWidth, maxY-minY, colorGrid)
	}
	for y := math.Floor(minY/tileSize) * tileSize; y < maxY; y += tileSize {
		self.drawRect(minX, y, maxX-minX, lineWidth, colorGrid)
	}
	self.drawRect(minX, self.floorY, maxX-minX, math.Max(maxY-self.floorY, 0), colorFloor)

	target := self.camera.Target().Position
	self.drawRect(target.X-4, target.Y-4, 8, 8, colorMarker)

	for _, subj := range self.subjects {
		if subj.active {
			self.drawRect(subj.rect.X, subj.rect.Y, subj.rect.Width, subj.rect.Height, subj.color)
		}
	}
}

func (self *Game) debugDrawf(format string, args ...any) {
	self.debugInfo = append(self.debugInfo, fmt.Sprintf(format, args...))
}

func (self *Game) drawHUD(screen *ebiten.Image) {
	pose := self.camera.Pose()
	self.debugDrawf("[WASD/arrows] move  [1-4] shakes  [5] explosion preset")
	self.debugDrawf("[O] override (%t)  [Q] toggle 2nd subject  [I] hard cut", self.override)
	self.debugDrawf("position: (%.1f, %.1f)  zoom: %.1f  rotation: %.2f", pose.Position.X, pose.Position.Y, pose.Zoom, pose.Rotation)
	self.debugDrawf("shakes: %d  queued: %d  tick: %d  tps: %.0f",
		self.camera.Shaker().Active(), self.camera.Queue().Pending(), self.camera.Tick(), ebiten.ActualTPS())

	vector.DrawFilledRect(screen, 4, 4, 420, float32(16*len(self.debugInfo)+8), colorPanel, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(self.debugInfo, "\n"), 8, 8)
	self.debugInfo = self.debugInfo[:0]
}
