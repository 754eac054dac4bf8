package spiral

// Source yields values in [0, 1).
type Source interface {
	Float64() float64
}

const lcgModulus = 233280

// LCG is the linear-congruential generator the star field is seeded from.
// Each population gets its own instance, so nothing global is swapped out.
type LCG struct {
	state int64
}

func NewLCG(seed int64) *LCG {
	seed %= lcgModulus
	if seed < 0 {
		seed += lcgModulus
	}
	return &LCG{state: seed}
}

func (g *LCG) Float64() float64 {
	g.state = (g.state*9301 + 49297) % lcgModulus
	return float64(g.state) / lcgModulus
}
