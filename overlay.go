package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// haloRings is how many circles make up a halo. Each ring is larger and
// fainter than the previous one, which looks close enough to a radial
// gradient at particle sizes.
const haloRings = 4

// haloAlpha is the opacity of the innermost ring, relative to the particle.
const haloAlpha = 0.35

// Overlay is the image the particles are painted on. It covers the whole
// screen and is drawn on top of everything else.
type Overlay struct {
	img *ebiten.Image
}

// Resize recreates the image if the size changed. Whatever was painted is
// lost, the next particle frame paints everything again.
func (o *Overlay) Resize(width, height int) {
	if o.img != nil {
		size := o.img.Bounds().Size()
		if size.X == width && size.Y == height {
			return
		}
		o.img.Deallocate()
	}
	o.img = ebiten.NewImage(width, height)
}

func (o *Overlay) Image() *ebiten.Image {
	return o.img
}

func (o *Overlay) Clear() {
	if o.img != nil {
		o.img.Clear()
	}
}

func (o *Overlay) FillCircle(x, y, radius float64, clr color.NRGBA, alpha float64) {
	if o.img == nil {
		return
	}
	vector.DrawFilledCircle(o.img, float32(x), float32(y), float32(radius),
		withAlpha(clr, alpha), true)
}

func (o *Overlay) Halo(x, y, radius float64, clr color.NRGBA, alpha float64) {
	if o.img == nil {
		return
	}
	for i := haloRings; i >= 1; i-- {
		r := radius * float64(i) / haloRings
		a := alpha * haloAlpha * float64(haloRings-i+1) / haloRings
		vector.DrawFilledCircle(o.img, float32(x), float32(y), float32(r),
			withAlpha(clr, a), true)
	}
}

func withAlpha(clr color.NRGBA, alpha float64) color.NRGBA {
	clr.A = uint8(float64(clr.A)*alpha + 0.5)
	return clr
}
