package main

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestCellSurface_Bounds(t *testing.T) {
	s := NewCellSurface(80, 25)
	w, h := s.Bounds()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 400.0, h)

	s.Resize(-1, 10)
	w, h = s.Bounds()
	assert.Equal(t, 0.0, w)
	assert.Equal(t, 160.0, h)
}

func TestCellSurface_FillCircle(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	s := NewCellSurface(4, 2)

	// Lands in column 1, row 1.
	s.FillCircle(12, 20, 1, white, 0.5)
	c := s.at(12, 20)
	require.NotNil(t, c)
	assert.Equal(t, '.', c.glyph)
	assert.Equal(t, 0.5, c.alpha)

	// A fainter particle doesn't replace a brighter one.
	s.FillCircle(9, 17, 4, white, 0.2)
	assert.Equal(t, '.', c.glyph)

	s.FillCircle(9, 17, 4, white, 0.9)
	assert.Equal(t, 'o', c.glyph)
	assert.Equal(t, 0.9, c.alpha)

	// Outside the grid nothing happens.
	s.FillCircle(-1, 0, 1, white, 1)
	s.FillCircle(32, 0, 1, white, 1)
	s.FillCircle(0, 32, 1, white, 1)

	s.Clear()
	assert.Equal(t, rune(0), c.glyph)
}

func TestGlyphFor(t *testing.T) {
	assert.Equal(t, '.', glyphFor(1.5))
	assert.Equal(t, '*', glyphFor(2))
	assert.Equal(t, '*', glyphFor(3.4))
	assert.Equal(t, 'o', glyphFor(3.5))
}

func TestCellSurface_Draw(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	s := NewCellSurface(4, 2)
	s.FillCircle(0, 0, 3, color.NRGBA{255, 0, 0, 255}, 1)
	s.Halo(24, 16, 6, color.NRGBA{0, 0, 255, 255}, 1)
	s.Draw(screen, tcell.StyleDefault)

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, '*', r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)

	r, _, style, _ = screen.GetContent(3, 1)
	assert.Equal(t, ' ', r)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 63), bg)
}
