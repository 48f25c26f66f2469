package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextReveal_Step(t *testing.T) {
	a := NewTextReveal("Ёлка!")
	assert.Equal(t, "", a.Visible())

	a.Step()
	assert.Equal(t, "", a.Visible())
	a.Step()
	assert.Equal(t, "Ёл", a.Visible())

	for range a.TotalNFrames() {
		a.Step()
	}
	assert.True(t, a.Done())
	assert.Equal(t, "Ёлка!", a.Visible())

	// Stepping a finished reveal changes nothing.
	a.Step()
	assert.Equal(t, "Ёлка!", a.Visible())
}

func TestTextReveal_TotalNFrames(t *testing.T) {
	a := NewTextReveal("12345")
	n := a.TotalNFrames()
	assert.Equal(t, int64(3*AnimationFramesPerImage), n)
	for range n - 1 {
		a.Step()
	}
	assert.False(t, a.Done())
	a.Step()
	assert.True(t, a.Done())
}

func TestTextReveal_Finish(t *testing.T) {
	a := NewTextReveal("The fir tree")
	a.Step()
	a.Finish()
	assert.True(t, a.Done())
	assert.Equal(t, "The fir tree", a.Visible())

	empty := NewTextReveal("")
	assert.True(t, empty.Done())
	assert.Equal(t, "", empty.Visible())
}
