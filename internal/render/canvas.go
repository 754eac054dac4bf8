// Package render implements the spiral canvas on top of an ebiten image.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws into an offscreen square image. Its transform stack uses
// ebiten.GeoM with 2D canvas semantics: later operations apply first.
type Canvas struct {
	img   *ebiten.Image
	scale float64
	geo   ebiten.GeoM
	stack []ebiten.GeoM
}

// NewCanvas allocates a px by px image. Logical units are scaled by dpr.
func NewCanvas(px int, dpr float64) (*Canvas, error) {
	if px <= 0 {
		return nil, fmt.Errorf("render: canvas side %d", px)
	}
	c := &Canvas{
		img:   ebiten.NewImage(px, px),
		scale: dpr,
	}
	c.geo.Scale(dpr, dpr)
	return c, nil
}

func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Clear(clr color.Color) {
	c.img.Fill(clr)
}

func (c *Canvas) Push() {
	c.stack = append(c.stack, c.geo)
}

func (c *Canvas) Pop() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.geo = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(c.geo)
	c.geo = m
}

func (c *Canvas) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(c.geo)
	c.geo = m
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	dx, dy := c.geo.Apply(x, y)
	vector.DrawFilledCircle(c.img, float32(dx), float32(dy), float32(r*c.scale), clr, true)
}

// Dot fills a disc of radius r. The stroke width does not widen a fill.
func (c *Canvas) Dot(x, y, r, _ float64, clr color.Color) {
	c.FillCircle(x, y, r, clr)
}

// Dispose releases the backing image.
func (c *Canvas) Dispose() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}
