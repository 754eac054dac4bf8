package spiral

import "math"

const (
	spiralTurns  = 6
	spiralRadius = 170
)

// SpiralPoint returns the trail position at progress p. The curve is
// complete at p = 1/1.2 and stays put afterwards.
func SpiralPoint(p, yOffset float64) Vec2 {
	p = Clamp(1.2*p, 0, 1)
	p = PowerEase(p, 1.8)
	theta := 2 * math.Pi * spiralTurns * math.Sqrt(p)
	r := spiralRadius * math.Sqrt(p)

	return Vec2{
		X: r * math.Cos(theta),
		Y: r*math.Sin(theta) + yOffset,
	}
}

// RotateWithBounce swings v1 around the midpoint of v1 and v2 by up to
// half a turn following ElasticOut(p), stretching the radius slightly
// while it moves. orientation selects the clockwise direction.
func RotateWithBounce(v1, v2 Vec2, p float64, orientation bool) Vec2 {
	mid := Vec2{X: (v1.X + v2.X) / 2, Y: (v1.Y + v2.Y) / 2}

	dx := v1.X - mid.X
	dy := v1.Y - mid.Y
	angle := math.Atan2(dy, dx)
	r := math.Hypot(dx, dy)

	o := 1.0
	if orientation {
		o = -1
	}

	bounce := math.Sin(p*math.Pi) * 0.05 * (1 - p)
	a := angle + o*math.Pi*ElasticOut(p)

	return Vec2{
		X: mid.X + r*(1+bounce)*math.Cos(a),
		Y: mid.Y + r*(1+bounce)*math.Sin(a),
	}
}
