// Package dock describes the dashboard's navigation dock: a row of
// labelled items that grow as the pointer approaches them.
package dock

import (
	"math"

	"github.com/iburimskiy/spiral-splash/internal/config"
)

type Item struct {
	Title  string
	Glyph  string // short mark drawn inside the item
	Target string
}

// DefaultItems is the dashboard's navigation. Targets are placeholders.
func DefaultItems() []Item {
	return []Item{
		{Title: "Home", Glyph: "H", Target: "#"},
		{Title: "Projects", Glyph: "P", Target: "#"},
		{Title: "Components", Glyph: "C", Target: "#"},
		{Title: "Activity", Glyph: "A", Target: "#"},
		{Title: "Change Log", Glyph: "L", Target: "#"},
		{Title: "Email", Glyph: "@", Target: "#"},
		{Title: "Theme", Glyph: "T", Target: "#"},
	}
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Metrics controls sizing, in logical pixels.
type Metrics struct {
	Base      float64
	Magnified float64
	Distance  float64 // pointer distance at which magnification fades out
	Gap       float64
	Padding   float64
	Bottom    float64
}

func DefaultMetrics() Metrics {
	return Metrics{
		Base:      config.DockItemSize,
		Magnified: config.DockMagnified,
		Distance:  config.DockMagnifyDist,
		Gap:       config.DockItemGap,
		Padding:   config.DockItemGap,
		Bottom:    config.DockBottomGap,
	}
}

// Size returns the side of an item whose centre is d pixels away from the
// pointer.
func (m Metrics) Size(d float64) float64 {
	d = math.Abs(d)
	if d >= m.Distance {
		return m.Base
	}
	return m.Magnified + (m.Base-m.Magnified)*(d/m.Distance)
}

type Dock struct {
	Items   []Item
	Metrics Metrics

	hover int
}

func New(items []Item, m Metrics) *Dock {
	return &Dock{Items: items, Metrics: m, hover: -1}
}

// baseCenters lays the items out unmagnified, centred horizontally.
func (d *Dock) baseCenters(viewW float64) []float64 {
	m := d.Metrics
	n := float64(len(d.Items))
	total := n*m.Base + (n-1)*m.Gap
	x := (viewW-total)/2 + m.Base/2

	out := make([]float64, len(d.Items))
	for i := range out {
		out[i] = x
		x += m.Base + m.Gap
	}
	return out
}

// Layout returns one rect per item for a viewport of viewW x viewH with the
// pointer at (px, py). Pass pointerInside false to lay out at rest.
// Items share a bottom edge and the row stays centred.
func (d *Dock) Layout(viewW, viewH, px float64, pointerInside bool) []Rect {
	m := d.Metrics
	centers := d.baseCenters(viewW)

	sizes := make([]float64, len(d.Items))
	total := 0.0
	for i, c := range centers {
		sizes[i] = m.Base
		if pointerInside {
			sizes[i] = m.Size(px - c)
		}
		total += sizes[i]
	}
	if n := len(d.Items); n > 1 {
		total += float64(n-1) * m.Gap
	}

	bottom := viewH - m.Bottom - m.Padding
	x := (viewW - total) / 2
	rects := make([]Rect, len(d.Items))
	for i, s := range sizes {
		rects[i] = Rect{X: x, Y: bottom - s, W: s, H: s}
		x += s + m.Gap
	}
	return rects
}

// Panel is the rect behind the items at rest.
func (d *Dock) Panel(viewW, viewH float64) Rect {
	m := d.Metrics
	n := float64(len(d.Items))
	w := n*m.Base + (n-1)*m.Gap + 2*m.Padding
	h := m.Base + 2*m.Padding
	return Rect{X: (viewW - w) / 2, Y: viewH - m.Bottom - h, W: w, H: h}
}

// HitTest returns the index of the item under (x, y), or -1.
func HitTest(rects []Rect, x, y float64) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// SetHover records the hovered item, -1 for none.
func (d *Dock) SetHover(i int) { d.hover = i }

// Hover returns the hovered item index, -1 for none.
func (d *Dock) Hover() int { return d.hover }
