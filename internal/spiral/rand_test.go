package spiral

import (
	"math"
	"reflect"
	"testing"
)

func TestLCGSequence(t *testing.T) {
	g := NewLCG(1234)
	want := []float64{96011.0 / 233280, 51768.0 / 233280, 53545.0 / 233280}
	for i, w := range want {
		if got := g.Float64(); math.Abs(got-w) > 1e-15 {
			t.Errorf("draw %d: got %v, want %v", i, got, w)
		}
	}
}

func TestLCGRange(t *testing.T) {
	for _, seed := range []int64{0, 1, 1234, -77, 1 << 40} {
		g := NewLCG(seed)
		for i := 0; i < 5000; i++ {
			v := g.Float64()
			if v < 0 || v >= 1 {
				t.Fatalf("seed %d draw %d: %v outside [0, 1)", seed, i, v)
			}
		}
	}
}

func TestPopulationDeterministic(t *testing.T) {
	cam := DefaultCamera()
	a := NewPopulation(2000, 1234, cam)
	b := NewPopulation(2000, 1234, cam)

	if len(a) != 2000 || len(b) != 2000 {
		t.Fatalf("Expected 2000 stars, got %d and %d", len(a), len(b))
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Expected identical populations for the same seed")
	}

	c := NewPopulation(2000, 4321, cam)
	if reflect.DeepEqual(a, c) {
		t.Error("Expected a different seed to produce a different population")
	}
}
