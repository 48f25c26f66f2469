package utils

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.3, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.7, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
}

func TestLoadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yaml": {Data: []byte("Name: fir\nCount: 3\n")},
		"bad.yaml":  {Data: []byte("Name: [unclosed\n")},
	}
	var v struct {
		Name  string `yaml:"Name"`
		Count int64  `yaml:"Count"`
	}

	require.NoError(t, LoadYAML(fsys, "good.yaml", &v))
	assert.Equal(t, "fir", v.Name)
	assert.Equal(t, int64(3), v.Count)

	assert.Error(t, LoadYAML(fsys, "bad.yaml", &v))
	assert.Error(t, LoadYAML(fsys, "missing.yaml", &v))
}

func TestFileExists(t *testing.T) {
	fsys := fstest.MapFS{"data/story.yaml": {Data: []byte("x")}}
	assert.True(t, FileExists(fsys, "data/story.yaml"))
	assert.False(t, FileExists(fsys, "data/music.ogg"))
}

func TestCheck(t *testing.T) {
	assert.NotPanics(t, func() { Check(nil) })

	CheckCrashes = false
	defer func() { CheckCrashes = true }()
	CheckFailed = nil
	err := assert.AnError
	assert.NotPanics(t, func() { Check(err) })
	assert.Equal(t, err, CheckFailed)

	CheckCrashes = true
	assert.Panics(t, func() { Check(err) })
}
