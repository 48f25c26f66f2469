package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/marisvali/yolka/utils"
)

const musicFile = "music.ogg"

// MusicSampleRate must match the sample rate of music.ogg, the file is not
// resampled.
const MusicSampleRate = 44100

// Music is the background music. A Music without a player (no music file)
// accepts every call and does nothing.
type Music struct {
	player  *audio.Player
	enabled bool
}

func NewMusic(fsys utils.FS, name string) (Music, error) {
	if !utils.FileExists(fsys, name) {
		return Music{}, nil
	}
	data, err := fsys.ReadFile(name)
	if err != nil {
		return Music{}, fmt.Errorf("failed to read music %s: %w", name, err)
	}
	stream, err := vorbis.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return Music{}, fmt.Errorf("failed to decode music %s: %w", name, err)
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(MusicSampleRate)
	}
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return Music{}, fmt.Errorf("failed to create music player: %w", err)
	}
	return Music{player: player}, nil
}

func (m *Music) Available() bool {
	return m.player != nil
}

func (m *Music) Enabled() bool {
	return m.enabled
}

func (m *Music) SetEnabled(enabled bool) {
	m.enabled = enabled
	if m.player == nil {
		return
	}
	if enabled && !m.player.IsPlaying() {
		m.player.Play()
	}
	if !enabled && m.player.IsPlaying() {
		m.player.Pause()
	}
}

func (m *Music) Toggle() {
	m.SetEnabled(!m.enabled)
}
