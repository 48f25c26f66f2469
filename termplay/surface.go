package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// A terminal cell stands for a block of CellWidth x CellHeight pixels, so
// particle sizes and speeds keep their meaning.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

type cell struct {
	glyph rune
	color tcell.Color
	alpha float64
	halo  tcell.Color
}

// CellSurface paints particles on a grid of terminal cells. A particle covers
// the single cell its center falls in, drawn with a glyph that grows with its
// size. When two particles share a cell the more opaque one wins.
type CellSurface struct {
	cols, rows int
	cells      []cell
}

func NewCellSurface(cols, rows int) *CellSurface {
	s := &CellSurface{}
	s.Resize(cols, rows)
	return s
}

func (s *CellSurface) Resize(cols, rows int) {
	s.cols = max(cols, 0)
	s.rows = max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
}

// Bounds returns the size, in pixels, the particle engine should work with.
func (s *CellSurface) Bounds() (width, height float64) {
	return float64(s.cols) * CellWidth, float64(s.rows) * CellHeight
}

func (s *CellSurface) Clear() {
	clear(s.cells)
}

func (s *CellSurface) at(x, y float64) *cell {
	if x < 0 || y < 0 {
		return nil
	}
	col, row := int(x/CellWidth), int(y/CellHeight)
	if col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func glyphFor(radius float64) rune {
	switch {
	case radius < 2:
		return '.'
	case radius < 3.5:
		return '*'
	default:
		return 'o'
	}
}

func scaled(clr color.NRGBA, alpha float64) tcell.Color {
	a := alpha * float64(clr.A) / 255
	return tcell.NewRGBColor(
		int32(float64(clr.R)*a),
		int32(float64(clr.G)*a),
		int32(float64(clr.B)*a))
}

func (s *CellSurface) FillCircle(x, y, radius float64, clr color.NRGBA, alpha float64) {
	c := s.at(x, y)
	if c == nil || (c.glyph != 0 && c.alpha >= alpha) {
		return
	}
	c.glyph = glyphFor(radius)
	c.color = scaled(clr, alpha)
	c.alpha = alpha
}

// Halo tints the background of the cell, at a quarter of the opacity.
func (s *CellSurface) Halo(x, y, radius float64, clr color.NRGBA, alpha float64) {
	if c := s.at(x, y); c != nil {
		c.halo = scaled(clr, alpha/4)
	}
}

// Draw puts the particles on screen. Text is drawn afterwards and covers
// them.
func (s *CellSurface) Draw(screen tcell.Screen, base tcell.Style) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			if c.glyph == 0 && c.halo == tcell.ColorDefault {
				continue
			}
			style := base
			glyph := ' '
			if c.halo != tcell.ColorDefault {
				style = style.Background(c.halo)
			}
			if c.glyph != 0 {
				glyph = c.glyph
				style = style.Foreground(c.color)
			}
			screen.SetContent(col, row, glyph, nil, style)
		}
	}
}
