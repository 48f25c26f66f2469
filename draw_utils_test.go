package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func testFace(t *testing.T) font.Face {
	fontData, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)
	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{Size: 20, DPI: 72})
	require.NoError(t, err)
	return face
}

func TestWrapText(t *testing.T) {
	face := testFace(t)
	s := "The snow gets deeper with every step.\nThe path splits: one way climbs " +
		"towards the hill, the other goes down to the old camp.\n\nSmoke."
	width := 200
	lines := WrapText(face, s, width)

	require.Greater(t, len(lines), 3)
	for _, line := range lines {
		assert.LessOrEqual(t, font.MeasureString(face, line).Ceil(), width, line)
	}
	// No word is lost or reordered, and the paragraph break stays.
	assert.Equal(t, strings.Fields(s), strings.Fields(strings.Join(lines, " ")))
	assert.Equal(t, "", lines[len(lines)-2])
	assert.Equal(t, "Smoke.", lines[len(lines)-1])
}

func TestWrapText_LongWord(t *testing.T) {
	face := testFace(t)
	lines := WrapText(face, "a Supercalifragilisticexpialidocious b", 30)
	assert.Equal(t, []string{"a", "Supercalifragilisticexpialidocious", "b"}, lines)
}

func TestCoverTransform(t *testing.T) {
	// A wide image in a 4:3 area is scaled to the height and cropped on the
	// sides.
	scale, dx, dy := coverTransform(800, 600, 320, 200)
	assert.Equal(t, 3.0, scale)
	assert.Equal(t, -80.0, dx)
	assert.Equal(t, 0.0, dy)

	// A tall image is scaled to the width.
	scale, dx, dy = coverTransform(400, 300, 100, 200)
	assert.Equal(t, 4.0, scale)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, -250.0, dy)

	scale, _, _ = coverTransform(400, 300, 0, 10)
	assert.Equal(t, 0.0, scale)
}
