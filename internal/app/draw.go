package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/spiral-splash/internal/dock"
	"github.com/iburimskiy/spiral-splash/internal/render"
)

const glyphWidth = 7 // basicfont.Face7x13 advance

var (
	colorBorder     = color.RGBA{R: 55, G: 65, B: 81, A: 255}
	colorMuted      = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	colorSubtle     = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	colorDockPanel  = color.RGBA{R: 23, G: 23, B: 23, A: 230}
	colorDockItem   = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	colorDockHover  = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	colorDockGlyph  = color.RGBA{R: 212, G: 212, B: 212, A: 255}
	colorDockBorder = color.RGBA{R: 64, G: 64, B: 64, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	switch g.view {
	case viewSplash:
		g.drawSplash(screen)
	case viewDashboard:
		g.drawDashboard(screen)
	}

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, 12)
	}
}

// px converts logical pixels to screen pixels.
func (g *Game) px(v float64) float32 { return float32(v * g.dpr) }

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, int(x*g.dpr), int(y*g.dpr), clr)
}

func (g *Game) drawTextCentered(screen *ebiten.Image, s string, cx, y float64, clr color.Color) {
	w := float64(len(s)*glyphWidth) / g.dpr
	g.drawText(screen, s, cx-w/2, y, clr)
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func (g *Game) drawSplash(screen *ebiten.Image) {
	if !g.scene.Visible() {
		return
	}
	if c, ok := g.surf.Canvas(); ok {
		render.DrawCentered(screen, c.Image())
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	if g.scene.Sequencer().ShowSkip() {
		r := g.skipRect()
		label := white
		if g.skipHovered {
			vector.DrawFilledRect(screen, g.px(r.X), g.px(r.Y), g.px(r.W), g.px(r.H), white, false)
			label = color.RGBA{A: 255}
		}
		vector.StrokeRect(screen, g.px(r.X), g.px(r.Y), g.px(r.W), g.px(r.H), g.px(1), white, false)
		g.drawTextCentered(screen, "SKIP", r.CenterX(), r.Y+r.H/2+4, label)

		g.drawTextCentered(screen, "LOADING PORTFOLIO...", float64(g.viewW)/2, float64(g.viewH)-32, withAlpha(white, 0.5))
	}

	if g.scene.Paused() {
		g.drawTextCentered(screen, "PAUSED", float64(g.viewW)/2, 48, withAlpha(white, 0.7))
	}
}

var dashboardCards = []struct{ title, body string }{
	{"Projects", "Your project showcase will appear here"},
	{"About", "Your bio and skills will appear here"},
	{"Experience", "Your work experience will appear here"},
	{"Contact", "Your contact information will appear here"},
}

func (g *Game) drawDashboard(screen *ebiten.Image) {
	w, h := float64(g.viewW), float64(g.viewH)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	top := h*0.5 - 200
	g.drawTextCentered(screen, "D A S H B O A R D", w/2, top, white)
	g.drawTextCentered(screen, "Welcome to your portfolio dashboard. Your content goes here.", w/2, top+32, colorSubtle)

	// two by two grid of placeholder cards
	const cardW, cardH, gap = 300.0, 90.0, 24.0
	gridX := w/2 - cardW - gap/2
	gridY := top + 72
	for i, card := range dashboardCards {
		x := gridX + float64(i%2)*(cardW+gap)
		y := gridY + float64(i/2)*(cardH+gap)
		vector.StrokeRect(screen, g.px(x), g.px(y), g.px(cardW), g.px(cardH), g.px(1), colorBorder, true)
		g.drawText(screen, card.title, x+24, y+36, white)
		g.drawText(screen, card.body, x+24, y+60, colorMuted)
	}

	g.drawDock(screen)

	if g.fade > 0 {
		g.drawTextCentered(screen, "LOADING PORTFOLIO...", w/2, h-32, withAlpha(white, 0.5*g.fade))
	}
}

func (g *Game) drawDock(screen *ebiten.Image) {
	w, h := float64(g.viewW), float64(g.viewH)
	mx, my := g.cursor()

	panel := g.dock.Panel(w, h)
	rects := g.dock.Layout(w, h, mx, panel.Contains(mx, my))

	vector.DrawFilledRect(screen, g.px(panel.X), g.px(panel.Y), g.px(panel.W), g.px(panel.H), colorDockPanel, true)
	vector.StrokeRect(screen, g.px(panel.X), g.px(panel.Y), g.px(panel.W), g.px(panel.H), g.px(1), colorDockBorder, true)

	for i, r := range rects {
		fill := colorDockItem
		if i == g.dock.Hover() {
			fill = colorDockHover
		}
		cx, cy := r.CenterX(), r.Y+r.H/2
		vector.DrawFilledCircle(screen, g.px(cx), g.px(cy), g.px(r.W/2), fill, true)
		g.drawTextCentered(screen, g.dock.Items[i].Glyph, cx, cy+4, colorDockGlyph)

		if i == g.dock.Hover() {
			drawLabel(g, screen, g.dock.Items[i], r)
		}
	}
}

// drawLabel shows the item title above it, like a tooltip.
func drawLabel(g *Game, screen *ebiten.Image, item dock.Item, r dock.Rect) {
	lw := float64(len(item.Title)*glyphWidth)/g.dpr + 12
	lx := r.CenterX() - lw/2
	ly := r.Y - 28
	vector.DrawFilledRect(screen, g.px(lx), g.px(ly), g.px(lw), g.px(20), colorDockItem, true)
	vector.StrokeRect(screen, g.px(lx), g.px(ly), g.px(lw), g.px(20), g.px(1), colorDockBorder, true)
	g.drawTextCentered(screen, item.Title, r.CenterX(), ly+14, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
