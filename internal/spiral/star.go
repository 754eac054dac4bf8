package spiral

import "math"

// Projector rasterizes a camera-space point. It reports whether the point
// was in front of the camera and got drawn.
type Projector interface {
	ShowProjectedDot(pos Vec3, size float64) bool
}

// Star is one particle of the field. It peels off the spiral at its entry
// offset and flies outward in three phases. All fields are fixed at
// construction.
type Star struct {
	angle           float64
	distance        float64
	dx, dy          float64
	entry           float64
	z               float64
	spin            float64
	expansionRate   float64
	finalScale      float64
	strokeWeightFac float64
}

// NewStar draws a star's parameters from src. The order of draws is part
// of the seeded layout and must not change.
func NewStar(src Source, cam Camera) *Star {
	s := &Star{}
	s.angle = src.Float64() * math.Pi * 2
	s.distance = 30*src.Float64() + 15
	s.spin = -1
	if src.Float64() > 0.5 {
		s.spin = 1
	}
	s.expansionRate = 1.2 + src.Float64()*0.8
	s.finalScale = 0.7 + src.Float64()*0.6

	s.dx = s.distance * math.Cos(s.angle)
	s.dy = s.distance * math.Sin(s.angle)

	s.entry = (1 - math.Pow(1-src.Float64(), 3)) / 1.3

	zMin := 0.5 * cam.Z
	zMax := cam.TravelDistance + cam.Z
	s.z = zMin + src.Float64()*(zMax-zMin)
	s.z = Lerp(s.z, cam.TravelDistance/2, 0.3*s.entry)

	s.strokeWeightFac = math.Pow(src.Float64(), 2)
	return s
}

// NewPopulation builds n stars from a fresh generator seeded with seed, so
// two populations built with the same arguments are identical.
func NewPopulation(n int, seed int64, cam Camera) []*Star {
	src := NewLCG(seed)
	stars := make([]*Star, n)
	for i := range stars {
		stars[i] = NewStar(src, cam)
	}
	return stars
}

// EntryOffset is the progress at which the star leaves the spiral.
func (s *Star) EntryOffset() float64 { return s.entry }

// Depth is the star's fixed z coordinate.
func (s *Star) Depth() float64 { return s.z }

// Render places the star for progress p and hands it to proj. Stars whose
// entry offset has not been reached yet draw nothing and return false.
func (s *Star) Render(p float64, cam Camera, proj Projector) bool {
	q := p - s.entry
	if q <= 0 {
		return false
	}

	base := SpiralPoint(s.entry, cam.StartDotYOffset)
	d := Clamp(4*q, 0, 1)
	screen := s.offset(base, d)

	// lift back into camera space at the star's depth
	k := (s.z - cam.Z) / cam.ViewZoom
	pos := Vec3{X: k * screen.X, Y: k * screen.Y, Z: s.z}

	return proj.ShowProjectedDot(pos, 8.5*s.strokeWeightFac*sizeMultiplier(d, s.finalScale))
}

// offset computes the 2D screen position for displacement progress d.
func (s *Star) offset(base Vec2, d float64) Vec2 {
	switch {
	case d < 0.3:
		// straight move to 30% of the offset
		easing := Lerp(d, d*d, d/0.3)
		return Vec2{
			X: Lerp(base.X, base.X+s.dx*0.3, easing/0.3),
			Y: Lerp(base.Y, base.Y+s.dy*0.3, easing/0.3),
		}

	case d < 0.7:
		// curved drift from 30% to 70%
		m := (d - 0.3) / 0.4
		curve := math.Sin(m*math.Pi) * s.spin * 1.5

		fromX, fromY := base.X+s.dx*0.3, base.Y+s.dy*0.3
		toX, toY := base.X+s.dx*0.7, base.Y+s.dy*0.7
		perpX := -s.dy * 0.4 * curve
		perpY := s.dx * 0.4 * curve

		return Vec2{
			X: Lerp(fromX, toX, m) + perpX*m,
			Y: Lerp(fromY, toY, m) + perpY*m,
		}

	default:
		// spiral fling out to the final radius
		f := (d - 0.7) / 0.3
		fromX, fromY := base.X+s.dx*0.7, base.Y+s.dy*0.7

		target := s.distance * s.expansionRate * 1.5
		a := s.angle + 1.2*s.spin*f*math.Pi

		return Vec2{
			X: Lerp(fromX, base.X+target*math.Cos(a), f),
			Y: Lerp(fromY, base.Y+target*math.Sin(a), f),
		}
	}
}

func sizeMultiplier(d, finalScale float64) float64 {
	if d < 0.6 {
		return 1 + d*0.2
	}
	t := (d - 0.6) / 0.4
	return 1.2*(1-t) + finalScale*t
}
