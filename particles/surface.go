package particles

import "image/color"

// Surface is what particles are painted on. Coordinates are in pixels, with
// (0, 0) at the top-left corner. alpha is already clamped to [0, 1] and must
// be combined with the alpha of clr.
type Surface interface {
	Clear()
	FillCircle(x, y, radius float64, clr color.NRGBA, alpha float64)
	// Halo paints a soft glow of the given radius around a point.
	Halo(x, y, radius float64, clr color.NRGBA, alpha float64)
}

// DrawCall is one call received by a RecordingSurface.
type DrawCall struct {
	Halo   bool
	X, Y   float64
	Radius float64
	Color  color.NRGBA
	Alpha  float64
}

// RecordingSurface remembers what was painted since the last Clear. It is
// used by tests and by tools that want to inspect a frame without a screen.
type RecordingSurface struct {
	Calls  []DrawCall
	Clears int
}

func (s *RecordingSurface) Clear() {
	s.Calls = s.Calls[:0]
	s.Clears++
}

func (s *RecordingSurface) FillCircle(x, y, radius float64, clr color.NRGBA, alpha float64) {
	s.Calls = append(s.Calls, DrawCall{X: x, Y: y, Radius: radius, Color: clr, Alpha: alpha})
}

func (s *RecordingSurface) Halo(x, y, radius float64, clr color.NRGBA, alpha float64) {
	s.Calls = append(s.Calls, DrawCall{Halo: true, X: x, Y: y, Radius: radius, Color: clr, Alpha: alpha})
}
