package tty

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/spiral-splash/internal/spiral"
	"github.com/iburimskiy/spiral-splash/internal/splash"
	"github.com/iburimskiy/spiral-splash/internal/surface"
)

// LogicalSide is the scene size the terminal grid is scaled down from.
const LogicalSide = 700

type Options struct {
	Animation spiral.Options
	Timing    splash.Timing
	FPS       int
	// Loop keeps the animation running instead of exiting after one pass.
	Loop bool
}

// Viewport converts a terminal size into the logical viewport and scale
// handed to the surface.
func Viewport(cols, rows int) (w, h int, scale float64) {
	dw, dh := cols*dotsX, rows*dotsY
	scale = float64(max(dw, dh)) / LogicalSide
	if scale <= 0 {
		return 0, 0, 1
	}
	return int(math.Round(float64(dw) / scale)), int(math.Round(float64(dh) / scale)), scale
}

// Run drives the splash on screen until it hands off, or until the user
// quits with q, Escape or Ctrl-C. Space pauses, Enter skips.
func Run(screen tcell.Screen, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}

	surf := surface.New(NewCanvas, opts.Animation)
	defer surf.Close()

	resize := func() error {
		w, h, scale := Viewport(screen.Size())
		return surf.Resize(w, h, scale)
	}
	if err := resize(); err != nil {
		return fmt.Errorf("tty: %w", err)
	}

	done := false
	store := splash.NewMemorySession()
	timing := opts.Timing
	if opts.Loop {
		timing.Duration = time.Duration(math.MaxInt64)
	}
	scene := splash.NewScene(splash.NewSequencer(store, timing, func() { done = true }), surf)
	scene.Mount()
	defer scene.Unmount()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	frame := time.Second / time.Duration(opts.FPS)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	last := time.Now()
	for !done {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				isRune := ev.Key() == tcell.KeyRune
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, isRune && ev.Rune() == 'q':
					slog.Info("quit requested")
					return nil
				case ev.Key() == tcell.KeyEnter:
					scene.Skip()
				case isRune && ev.Rune() == ' ':
					scene.TogglePause()
				}
			case *tcell.EventResize:
				screen.Sync()
				if err := resize(); err != nil {
					slog.Warn("terminal surface unavailable", "error", err)
				}
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			scene.Update(dt)

			if c, ok := surf.Canvas(); ok && scene.Visible() {
				c.Flush(screen, style)
				screen.Show()
			}
		}
	}
	return nil
}
