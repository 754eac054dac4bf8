// Package tty renders the spiral in a terminal using braille cells, each
// holding a 2x4 grid of dots.
package tty

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	dotsX = 2
	dotsY = 4
)

// braille bit for each sub-cell position, indexed [y][x]
var brailleBits = [dotsY][dotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type affine struct {
	a, b, c, d, tx, ty float64
}

func (t affine) then(m affine) affine {
	return affine{
		a:  t.a*m.a + t.c*m.b,
		b:  t.b*m.a + t.d*m.b,
		c:  t.a*m.c + t.c*m.d,
		d:  t.b*m.c + t.d*m.d,
		tx: t.a*m.tx + t.c*m.ty + t.tx,
		ty: t.b*m.tx + t.d*m.ty + t.ty,
	}
}

func (t affine) apply(x, y float64) (float64, float64) {
	return t.a*x + t.c*y + t.tx, t.b*x + t.d*y + t.ty
}

// Canvas is a square dot grid of side px. Logical units are scaled by
// scale, so a large logical scene fits a small terminal.
type Canvas struct {
	px    int
	scale float64
	dots  []bool

	cur   affine
	stack []affine
}

func NewCanvas(px int, scale float64) (*Canvas, error) {
	if px <= 0 {
		return nil, fmt.Errorf("tty: canvas side %d", px)
	}
	c := &Canvas{
		px:    px,
		scale: scale,
		dots:  make([]bool, px*px),
	}
	c.cur = affine{a: scale, d: scale}
	return c, nil
}

// Side is the canvas side in dots.
func (c *Canvas) Side() int { return c.px }

func (c *Canvas) Clear(color.Color) {
	clear(c.dots)
}

func (c *Canvas) Push() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Pop() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(x, y float64) {
	c.cur = c.cur.then(affine{a: 1, d: 1, tx: x, ty: y})
}

func (c *Canvas) Rotate(theta float64) {
	s, co := math.Sincos(theta)
	c.cur = c.cur.then(affine{a: co, b: s, c: -s, d: co})
}

// FillCircle sets every dot whose centre lies inside the disc. Discs
// smaller than a dot still light the dot they fall on.
func (c *Canvas) FillCircle(x, y, r float64, _ color.Color) {
	cx, cy := c.cur.apply(x, y)
	rr := r * c.scale

	if rr < 0.5 {
		c.set(int(math.Floor(cx)), int(math.Floor(cy)))
		return
	}
	// the box is clipped to the grid before converting to int
	x0 := int(math.Max(math.Floor(cx-rr), 0))
	x1 := int(math.Min(math.Ceil(cx+rr), float64(c.px-1)))
	y0 := int(math.Max(math.Floor(cy-rr), 0))
	y1 := int(math.Min(math.Ceil(cy+rr), float64(c.px-1)))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= rr*rr {
				c.set(px, py)
			}
		}
	}
}

// Dot fills a disc of radius r. The stroke width does not widen a fill.
func (c *Canvas) Dot(x, y, r, _ float64, clr color.Color) {
	c.FillCircle(x, y, r, clr)
}

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.px || y >= c.px {
		return
	}
	c.dots[y*c.px+x] = true
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= c.px || y >= c.px {
		return false
	}
	return c.dots[y*c.px+x]
}

// Cell returns the braille rune for the terminal cell (col, row) of the
// grid, or ' ' when it is empty.
func (c *Canvas) Cell(col, row int) rune {
	var bits uint8
	for y := 0; y < dotsY; y++ {
		for x := 0; x < dotsX; x++ {
			if c.Lit(col*dotsX+x, row*dotsY+y) {
				bits |= brailleBits[y][x]
			}
		}
	}
	if bits == 0 {
		return ' '
	}
	return rune(0x2800 + int(bits))
}

// Flush writes the grid into screen so that the grid's centre lands on the
// centre of the screen.
func (c *Canvas) Flush(screen tcell.Screen, style tcell.Style) {
	cols, rows := screen.Size()
	gridCols := (c.px + dotsX - 1) / dotsX
	gridRows := (c.px + dotsY - 1) / dotsY
	offX := (gridCols - cols) / 2
	offY := (gridRows - rows) / 2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			screen.SetContent(col, row, c.Cell(col+offX, row+offY), nil, style)
		}
	}
}
