package spiral

import "math"

// MapRange remaps v from [a0, a1] to [b0, b1]. a0 must differ from a1.
func MapRange(v, a0, a1, b0, b1 float64) float64 {
	return b0 + (b1-b0)*((v-a0)/(a1-a0))
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// PowerEase accelerates towards p=0.5 and decelerates after it, with
// gamma controlling the steepness.
func PowerEase(p, gamma float64) float64 {
	if p < 0.5 {
		return 0.5 * math.Pow(2*p, gamma)
	}
	return 1 - 0.5*math.Pow(2*(1-p), gamma)
}

// ElasticOut overshoots 1 and settles. Inputs outside (0, 1) are clamped.
func ElasticOut(x float64) float64 {
	const c4 = (2 * math.Pi) / 4.5
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return math.Pow(2, -8*x)*math.Sin((x*8-0.75)*c4) + 1
}

type Vec2 struct {
	X, Y float64
}

type Vec3 struct {
	X, Y, Z float64
}
