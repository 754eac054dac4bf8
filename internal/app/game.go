// Package app is the desktop shell: it shows the splash once per session
// and then the dashboard with its dock.
package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/spiral-splash/internal/config"
	"github.com/iburimskiy/spiral-splash/internal/dock"
	"github.com/iburimskiy/spiral-splash/internal/render"
	"github.com/iburimskiy/spiral-splash/internal/soundtrack"
	"github.com/iburimskiy/spiral-splash/internal/spiral"
	"github.com/iburimskiy/spiral-splash/internal/splash"
	"github.com/iburimskiy/spiral-splash/internal/surface"
)

type view int

const (
	viewSplash view = iota
	viewDashboard
)

type Game struct {
	cfg   config.Config
	store splash.SessionStore

	// splash
	surf  *surface.Surface[*render.Canvas]
	scene *splash.Scene
	music *soundtrack.Player

	// dashboard
	dock   *dock.Dock
	opener dock.Opener

	view view

	// viewport in logical pixels, as reported by Layout
	viewW, viewH int
	dpr          float64

	skipHovered bool
	fade        float64 // caption opacity, eases out after the splash ends
	lastErr     error
}

func New(cfg config.Config, store splash.SessionStore) *Game {
	g := &Game{
		cfg:    cfg,
		store:  store,
		dock:   dock.New(dock.DefaultItems(), dock.DefaultMetrics()),
		opener: dock.NewDialogOpener(),
		viewW:  cfg.WindowWidth,
		viewH:  cfg.WindowHeight,
		dpr:    1,
		fade:   1,
	}

	if cfg.SkipAlways {
		store.Set(config.SessionFlagKey, config.SessionFlagValue)
	}

	opts := spiral.DefaultOptions()
	opts.Stars = cfg.Stars
	g.surf = surface.New(render.NewCanvas, opts)

	timing := splash.DefaultTiming()
	timing.Duration = cfg.SplashDuration
	g.scene = splash.NewScene(splash.NewSequencer(store, timing, g.handoff), g.surf)
	return g
}

// Mount builds the surface and starts the splash, or goes straight to the
// dashboard when it was already seen.
func (g *Game) Mount() {
	g.scene.Mount()
	if err := g.surf.Resize(g.viewW, g.viewH, g.dpr); err != nil {
		slog.Warn("splash surface unavailable", "error", err)
	}

	if g.scene.Visible() && g.cfg.Soundtrack != "" {
		p, err := soundtrack.Play(g.cfg.Soundtrack)
		if err != nil {
			slog.Warn("soundtrack unavailable", "error", err)
		} else {
			g.music = p
		}
	}
}

// Close releases the surface and the speaker.
func (g *Game) Close() {
	g.scene.Unmount()
	g.music.Stop()
}

func (g *Game) handoff() {
	g.music.Stop()
	g.view = viewDashboard
}

func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if err := g.surf.Resize(g.viewW, g.viewH, g.dpr); err != nil {
		slog.Warn("splash surface unavailable", "error", err)
	}

	switch g.view {
	case viewSplash:
		g.updateSplash(dt)
	case viewDashboard:
		g.updateDashboard(dt)
	}
	return nil
}

func (g *Game) cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x) / g.dpr, float64(y) / g.dpr
}

func (g *Game) updateSplash(dt time.Duration) {
	mx, my := g.cursor()
	g.skipHovered = g.skipRect().Contains(mx, my)

	if g.scene.Sequencer().ShowSkip() {
		clicked := g.skipHovered && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
		if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.scene.Skip()
			g.music.SetPaused(false)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.TogglePause()
		g.music.SetPaused(g.scene.Paused())
	}

	g.scene.Update(dt)
}

func (g *Game) updateDashboard(dt time.Duration) {
	if g.fade > 0 {
		g.fade -= dt.Seconds() / 0.5
	}

	mx, my := g.cursor()
	w, h := float64(g.viewW), float64(g.viewH)
	inside := g.dock.Panel(w, h).Contains(mx, my)
	rects := g.dock.Layout(w, h, mx, inside)

	hover := dock.HitTest(rects, mx, my)
	g.dock.SetHover(hover)

	if hover >= 0 && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		// zenity blocks until the dialog is dismissed
		if err := g.opener.Open(g.dock.Items[hover]); err != nil {
			slog.Warn("dock item failed", "title", g.dock.Items[hover].Title, "error", err)
			g.lastErr = err
		}
	}
}

func (g *Game) skipRect() dock.Rect {
	return dock.Rect{
		X: float64(g.viewW - config.SkipButtonMargin - config.SkipButtonWidth),
		Y: config.SkipButtonMargin,
		W: config.SkipButtonWidth,
		H: config.SkipButtonHeight,
	}
}

// Layout records the logical window size and returns the screen size in
// device pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := ebiten.Monitor().DeviceScaleFactor()
	if dpr <= 0 {
		dpr = 1
	}
	g.viewW, g.viewH, g.dpr = outsideWidth, outsideHeight, dpr
	return int(float64(outsideWidth) * dpr), int(float64(outsideHeight) * dpr)
}
