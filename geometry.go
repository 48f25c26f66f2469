package main

import "image"

// Rectangle is an axis-aligned rectangle. Min is the top-left corner and Max
// the bottom-right one, both included.
type Rectangle struct {
	Min Pt
	Max Pt
}

// NewRectangleI builds a rectangle from its top-left corner and its size.
func NewRectangleI(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Center() Pt {
	return r.Min.Plus(r.Max).DivBy(2)
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

func (r Rectangle) Translate(offset Pt) Rectangle {
	return Rectangle{r.Min.Plus(offset), r.Max.Plus(offset)}
}

func (r Rectangle) ToImageRectangle() image.Rectangle {
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
}

// StackRects returns n rectangles of the given size under each other,
// starting at top-left and separated by gap.
func StackRects(topLeft Pt, width, height, gap int64, n int) []Rectangle {
	rects := make([]Rectangle, n)
	for i := range rects {
		y := topLeft.Y + int64(i)*(height+gap)
		rects[i] = NewRectangleI(topLeft.X, y, width, height)
	}
	return rects
}
