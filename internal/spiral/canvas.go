package spiral

import (
	"image/color"
	"math"
)

// Canvas is the drawing surface the controller renders into. Transforms
// follow the 2D canvas convention: each Translate or Rotate applies to
// coordinates passed afterwards, in local space, until the matching Pop.
type Canvas interface {
	Clear(c color.Color)
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(theta float64)
	// FillCircle draws a filled disc of radius r.
	FillCircle(x, y, r float64, c color.Color)
	// Dot draws a filled disc of radius r. The stroke width is the depth
	// scaled line width of the projection; filling ignores it.
	Dot(x, y, r, strokeWidth float64, c color.Color)
}

// Camera is the fixed projection setup shared by the controller and its
// stars.
type Camera struct {
	Z               float64 // starting depth of the viewpoint
	TravelDistance  float64
	ViewZoom        float64
	ChangeEventTime float64 // progress at which the camera starts moving
	StartDotYOffset float64
}

func DefaultCamera() Camera {
	return Camera{
		Z:               -400,
		TravelDistance:  3400,
		ViewZoom:        100,
		ChangeEventTime: 0.32,
		StartDotYOffset: 28,
	}
}

// LateProgress is the camera transition progress: 0 until ChangeEventTime,
// then rising to 1 at the end of the cycle.
func (c Camera) LateProgress(progress float64) float64 {
	return Clamp(MapRange(progress, c.ChangeEventTime, 1, 0, 1), 0, 1)
}

// EarlyProgress drives the trail and the stars. It saturates shortly after
// ChangeEventTime.
func (c Camera) EarlyProgress(progress float64) float64 {
	return Clamp(MapRange(progress, 0, c.ChangeEventTime+0.25, 0, 1), 0, 1)
}

// DepthAt returns the camera depth for a given LateProgress value.
func (c Camera) DepthAt(t2 float64) float64 {
	return c.Z + PowerEase(math.Pow(t2, 1.2), 1.8)*c.TravelDistance
}
