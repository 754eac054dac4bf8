// Package spiraltest provides a recording canvas for tests.
package spiraltest

import (
	"image/color"
	"math"
)

type OpKind int

const (
	OpClear OpKind = iota
	OpPush
	OpPop
	OpTranslate
	OpRotate
	OpFillCircle
	OpDot
)

// Op is one recorded canvas call. For circles and dots X and Y hold the
// device position after the current transform.
type Op struct {
	Kind        OpKind
	X, Y        float64
	R           float64
	StrokeWidth float64
	Color       color.Color
}

type affine struct {
	a, b, c, d, tx, ty float64
}

var identity = affine{a: 1, d: 1}

// then returns the transform that applies m first and then t.
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

// Recorder implements spiral.Canvas and keeps every call.
type Recorder struct {
	Ops   []Op
	cur   affine
	stack []affine
}

func NewRecorder() *Recorder {
	return &Recorder{cur: identity}
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.cur)
	r.Ops = append(r.Ops, Op{Kind: OpPush})
}

func (r *Recorder) Pop() {
	if n := len(r.stack); n > 0 {
		r.cur = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.Ops = append(r.Ops, Op{Kind: OpPop})
}

func (r *Recorder) Translate(x, y float64) {
	r.cur = r.cur.then(affine{a: 1, d: 1, tx: x, ty: y})
	r.Ops = append(r.Ops, Op{Kind: OpTranslate, X: x, Y: y})
}

func (r *Recorder) Rotate(theta float64) {
	s, c := math.Sincos(theta)
	r.cur = r.cur.then(affine{a: c, b: s, c: -s, d: c})
	r.Ops = append(r.Ops, Op{Kind: OpRotate, R: theta})
}

func (r *Recorder) FillCircle(x, y, rad float64, c color.Color) {
	dx, dy := r.cur.apply(x, y)
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: dx, Y: dy, R: rad, Color: c})
}

func (r *Recorder) Dot(x, y, rad, strokeWidth float64, c color.Color) {
	dx, dy := r.cur.apply(x, y)
	r.Ops = append(r.Ops, Op{Kind: OpDot, X: dx, Y: dy, R: rad, StrokeWidth: strokeWidth, Color: c})
}

// Count returns how many recorded calls are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Depth is the current Push/Pop nesting.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.cur = identity
	r.stack = r.stack[:0]
}
