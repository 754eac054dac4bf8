package spiral

import (
	"image/color"
	"math"
	"time"
)

// State is the controller lifecycle. Destroyed is terminal.
type State int

const (
	Running State = iota
	Paused
	Destroyed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Destroyed:
		return "destroyed"
	}
	return "unknown"
}

type Options struct {
	Stars       int
	TrailLength int
	Cycle       time.Duration
	Seed        int64
	Camera      Camera
}

func DefaultOptions() Options {
	return Options{
		Stars:       2000,
		TrailLength: 80,
		Cycle:       15 * time.Second,
		Seed:        1234,
		Camera:      DefaultCamera(),
	}
}

// Stats describes the most recent frame.
type Stats struct {
	Frames  uint64 // frames rendered since construction
	Dots    int    // projected dots drawn in the last frame
	Clipped int    // projected dots behind the camera in the last frame
}

// Controller owns the progress accumulator, the star population and the
// canvas. The host calls Tick once per frame.
type Controller struct {
	canvas   Canvas
	size     float64
	opts     Options
	stars    []*Star
	progress float64
	state    State

	cameraDepth float64 // recomputed at the start of every frame
	stats       Stats
}

var (
	black = color.Black
	white = color.White
)

// NewController binds a fresh population to canvas. size is the side of
// the square drawing area in canvas units. A nil canvas yields a nil
// controller, whose methods are all no-ops.
func NewController(canvas Canvas, size float64, opts Options) *Controller {
	if canvas == nil {
		return nil
	}
	if opts.Cycle <= 0 {
		opts.Cycle = DefaultOptions().Cycle
	}
	return &Controller{
		canvas:      canvas,
		size:        size,
		opts:        opts,
		stars:       NewPopulation(opts.Stars, opts.Seed, opts.Camera),
		cameraDepth: opts.Camera.Z,
	}
}

func (c *Controller) State() State {
	if c == nil {
		return Destroyed
	}
	return c.state
}

func (c *Controller) Progress() float64 {
	if c == nil {
		return 0
	}
	return c.progress
}

// SetProgress jumps to p, wrapped into [0, 1).
func (c *Controller) SetProgress(p float64) {
	if c == nil || c.state == Destroyed {
		return
	}
	c.progress = p - math.Floor(p)
}

func (c *Controller) Stars() []*Star {
	if c == nil {
		return nil
	}
	return c.stars
}

func (c *Controller) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return c.stats
}

// Tick advances progress by dt and renders. It does nothing unless the
// controller is running, and reports whether a frame was drawn.
func (c *Controller) Tick(dt time.Duration) bool {
	if c == nil || c.state != Running {
		return false
	}
	c.progress += dt.Seconds() / c.opts.Cycle.Seconds()
	c.progress -= math.Floor(c.progress)
	c.Render()
	return true
}

func (c *Controller) Pause() {
	if c == nil || c.state != Running {
		return
	}
	c.state = Paused
}

func (c *Controller) Resume() {
	if c == nil || c.state != Paused {
		return
	}
	c.state = Running
}

// Destroy stops the controller for good. It is safe to call repeatedly.
func (c *Controller) Destroy() {
	if c == nil {
		return
	}
	c.state = Destroyed
	c.stars = nil
	c.canvas = nil
}

// Render clears the canvas and draws one frame at the current progress.
func (c *Controller) Render() {
	if c == nil || c.state == Destroyed {
		return
	}
	cv := c.canvas
	cam := c.opts.Camera

	cv.Clear(black)
	cv.Push()
	defer cv.Pop()

	cv.Translate(c.size/2, c.size/2)

	t1 := cam.EarlyProgress(c.progress)
	t2 := cam.LateProgress(c.progress)
	c.cameraDepth = cam.DepthAt(t2)
	c.stats.Dots, c.stats.Clipped = 0, 0

	cv.Rotate(-math.Pi * PowerEase(t2, 2.7))

	c.drawTrail(t1)
	for _, s := range c.stars {
		s.Render(t1, cam, c)
	}
	c.drawStartDot()

	c.stats.Frames++
}

func (c *Controller) drawTrail(t1 float64) {
	cam := c.opts.Camera
	n := c.opts.TrailLength
	wobble := math.Sin(c.progress*math.Pi*2)*0.5 + 0.5

	for i := 0; i < n; i++ {
		f := MapRange(float64(i), 0, float64(n), 1.1, 0.1)
		sw := (1.3*(1-t1) + 3.0*math.Sin(math.Pi*t1)) * f

		pos := SpiralPoint(t1-0.00015*float64(i), cam.StartDotYOffset)
		pos = RotateWithBounce(pos, Vec2{X: pos.X + 5, Y: pos.Y + 5}, wobble, i%2 == 0)

		c.canvas.FillCircle(pos.X, pos.Y, sw/2, white)
	}
}

func (c *Controller) drawStartDot() {
	cam := c.opts.Camera
	if c.progress <= cam.ChangeEventTime {
		return
	}
	dy := cam.Z * cam.StartDotYOffset / cam.ViewZoom
	c.ShowProjectedDot(Vec3{X: 0, Y: dy, Z: cam.TravelDistance}, 2.5)
}

// ShowProjectedDot perspective-projects pos from the current camera depth
// and draws it. Points at or behind the camera are skipped.
func (c *Controller) ShowProjectedDot(pos Vec3, size float64) bool {
	if c == nil || c.state == Destroyed {
		return false
	}
	if pos.Z <= c.cameraDepth {
		c.stats.Clipped++
		return false
	}
	depth := pos.Z - c.cameraDepth
	zoom := c.opts.Camera.ViewZoom

	x := zoom * pos.X / depth
	y := zoom * pos.Y / depth
	sw := 400 * size / depth

	c.canvas.Dot(x, y, 0.5, sw, white)
	c.stats.Dots++
	return true
}
