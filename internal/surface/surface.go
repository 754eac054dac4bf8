// Package surface binds a spiral controller to a square drawing area that
// covers the viewport, and rebuilds it whenever the viewport changes.
package surface

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/iburimskiy/spiral-splash/internal/spiral"
)

var ErrInvalidViewport = errors.New("surface: invalid viewport")

// Factory creates a canvas with a side of px device pixels. Drawing units
// passed to the canvas are logical pixels, scaled by dpr.
type Factory[C spiral.Canvas] func(px int, dpr float64) (C, error)

// Surface owns one canvas and the controller drawing into it.
type Surface[C spiral.Canvas] struct {
	factory Factory[C]
	opts    spiral.Options

	viewW, viewH int
	dpr          float64

	canvas C
	ctrl   *spiral.Controller
	ready  bool
	closed bool
}

func New[C spiral.Canvas](factory Factory[C], opts spiral.Options) *Surface[C] {
	return &Surface[C]{factory: factory, opts: opts}
}

// Side returns the logical side length used for a viewport: the larger of
// the two dimensions, so the square covers any aspect ratio.
func Side(w, h int) int {
	return max(w, h)
}

// DeviceSide is Side scaled by the device pixel ratio.
func DeviceSide(w, h int, dpr float64) int {
	return int(math.Ceil(float64(Side(w, h)) * dpr))
}

// Resize rebuilds the canvas and controller for a new viewport. Calls with
// unchanged dimensions are ignored. A rebuild always starts a fresh
// population at progress zero. When the canvas cannot be created the
// surface is left without a controller and draws nothing.
func (s *Surface[C]) Resize(w, h int, dpr float64) error {
	if s.closed {
		return nil
	}
	if dpr <= 0 {
		dpr = 1
	}
	if s.ready && w == s.viewW && h == s.viewH && dpr == s.dpr {
		return nil
	}

	s.teardown()
	s.viewW, s.viewH, s.dpr = w, h, dpr
	s.ready = true

	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, w, h)
	}

	canvas, err := s.factory(DeviceSide(w, h, dpr), dpr)
	if err != nil {
		return fmt.Errorf("surface: create canvas: %w", err)
	}
	s.canvas = canvas
	s.ctrl = spiral.NewController(canvas, float64(Side(w, h)), s.opts)

	slog.Debug("surface rebuilt",
		"width", w,
		"height", h,
		"dpr", dpr,
		"side", DeviceSide(w, h, dpr),
		"stars", s.opts.Stars,
	)
	return nil
}

func (s *Surface[C]) teardown() {
	if s.ctrl != nil {
		if d, ok := any(s.canvas).(interface{ Dispose() }); ok {
			d.Dispose()
		}
	}
	s.ctrl.Destroy()
	s.ctrl = nil
	var zero C
	s.canvas = zero
}

// Tick advances the animation by dt. It reports whether a frame was drawn.
func (s *Surface[C]) Tick(dt time.Duration) bool {
	return s.ctrl.Tick(dt)
}

func (s *Surface[C]) Pause()  { s.ctrl.Pause() }
func (s *Surface[C]) Resume() { s.ctrl.Resume() }

// Close destroys the controller. It is safe to call more than once.
func (s *Surface[C]) Close() {
	if s.closed {
		return
	}
	s.teardown()
	s.closed = true
}

// Canvas returns the current canvas and whether one exists.
func (s *Surface[C]) Canvas() (C, bool) {
	return s.canvas, s.ctrl != nil
}

// Controller may return nil when no canvas is available.
func (s *Surface[C]) Controller() *spiral.Controller {
	return s.ctrl
}

func (s *Surface[C]) Viewport() (w, h int, dpr float64) {
	return s.viewW, s.viewH, s.dpr
}
