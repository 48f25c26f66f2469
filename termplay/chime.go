package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime plays a short bell-like tone when the scene changes. If the speaker
// can't be opened the game runs silently.
type Chime struct {
	initialized bool
}

func NewChime() (*Chime, error) {
	err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	if err != nil {
		return &Chime{}, err
	}
	return &Chime{initialized: true}, nil
}

func (c *Chime) Play() {
	if c == nil || !c.initialized {
		return
	}
	tone := NewBellGenerator(chimeSampleRate, 880)
	speaker.Play(beep.Take(chimeSampleRate.N(400*time.Millisecond), tone))
}

func (c *Chime) Close() {
	if c != nil && c.initialized {
		speaker.Close()
		c.initialized = false
	}
}

// BellGenerator is a sine tone with its octave on top, fading out quickly.
type BellGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBellGenerator(sr beep.SampleRate, freq float64) *BellGenerator {
	return &BellGenerator{sr: sr, freq: freq}
}

func (g *BellGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.6*math.Sin(2*math.Pi*g.freq*t) + 0.25*math.Sin(2*math.Pi*g.freq*2*t)
		sample *= 0.25 * math.Exp(-6*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BellGenerator) Err() error {
	return nil
}
