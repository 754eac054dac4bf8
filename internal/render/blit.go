package render

import "github.com/hajimehoshi/ebiten/v2"

// DrawCentered draws src onto dst so that their centres coincide. Both are
// in device pixels; a square larger than the window is cropped evenly.
func DrawCentered(dst, src *ebiten.Image) {
	if src == nil {
		return
	}
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dw-sw)/2, float64(dh-sh)/2)
	dst.DrawImage(src, op)
}
