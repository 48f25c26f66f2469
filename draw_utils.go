package main

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// Do this because when dealing with sub-images in general I think in
	// relative coordinates. So for img2 = img1.SubImage(pt1, pt2) I now expect
	// that img2.At(0, 0) indicates the same pixel as img1.At(pt1). Ebitengine
	// doesn't do it like that. I still need to use img2.At(pt1) to indicate
	// pixel img1.At(pt1).
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

// FillRect fills r, given relative to the top-left corner of screen.
func FillRect(screen *ebiten.Image, r Rectangle, clr color.Color) {
	o := screen.Bounds().Min
	vector.DrawFilledRect(screen,
		float32(int64(o.X)+r.Min.X), float32(int64(o.Y)+r.Min.Y),
		float32(r.Width()), float32(r.Height()), clr, false)
}

func StrokeRect(screen *ebiten.Image, r Rectangle, width float32, clr color.Color) {
	o := screen.Bounds().Min
	vector.StrokeRect(screen,
		float32(int64(o.X)+r.Min.X), float32(int64(o.Y)+r.Min.Y),
		float32(r.Width()), float32(r.Height()), width, clr, false)
}

// DrawText draws message inside screen, either centered or aligned to the
// top-left corner.
func DrawText(screen *ebiten.Image, face font.Face, message string,
	centerX bool, centerY bool, clr color.Color) {
	// Remember that there is an origin point for the text.
	// That origin point is kind of the lower-left corner of the bounds of the
	// text. Kind of. Read the BoundString docs to understand.
	// This means that if you do text.Draw at (x, y), most of the text will
	// appear above y, and a little bit under y. If you want all the pixels in
	// your text to be below y, you should do text.Draw at
	// (x, y - text.BoundString().Min.Y).
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX - textSize.Min.X
	textY := screen.Bounds().Min.Y + offsetY - textSize.Min.Y
	text.Draw(screen, message, face, textX, textY, clr)
}

// DrawLines draws lines of text under each other, starting at the top-left
// corner of screen.
func DrawLines(screen *ebiten.Image, face font.Face, lines []string, clr color.Color) {
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		x := screen.Bounds().Min.X
		y := screen.Bounds().Min.Y + ascent + i*lineHeight
		text.Draw(screen, line, face, x, y, clr)
	}
}

// WrapText splits s into lines no wider than width pixels. Paragraphs are
// separated by blank lines in s and stay separated by an empty line. Single
// line breaks are treated as spaces. A word wider than width gets a line of
// its own.
func WrapText(face font.Face, s string, width int) []string {
	var lines []string
	for i, paragraph := range strings.Split(strings.TrimSpace(s), "\n\n") {
		if i > 0 {
			lines = append(lines, "")
		}
		line := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && font.MeasureString(face, candidate).Ceil() > width {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// coverTransform scales an image of size iw x ih so that it covers an area of
// size w x h, keeping its aspect ratio, and centers it. Whatever sticks out
// gets cropped.
func coverTransform(w, h, iw, ih int) (scale, dx, dy float64) {
	if iw <= 0 || ih <= 0 {
		return 0, 0, 0
	}
	scale = max(float64(w)/float64(iw), float64(h)/float64(ih))
	dx = (float64(w) - float64(iw)*scale) / 2
	dy = (float64(h) - float64(ih)*scale) / 2
	return
}

// DrawCover fills screen with img, see coverTransform. dim scales the colors,
// 1 leaves them unchanged.
func DrawCover(screen *ebiten.Image, img *ebiten.Image, dim float32) {
	b := screen.Bounds()
	scale, dx, dy := coverTransform(b.Dx(), b.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	if scale == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(b.Min.X)+dx, float64(b.Min.Y)+dy)
	op.ColorScale.Scale(dim, dim, dim, 1)
	op.Filter = ebiten.FilterLinear
	// The game area is a sub-image, so the overflow is cropped.
	screen.DrawImage(img, op)
}
