package particles

import (
	"image/color"
	"testing"

	"github.com/marisvali/yolka/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var screen = Bounds{Width: 800, Height: 600}

const frame = 1.0 / 60

func TestSpawn_AttributesComeFromKindRanges(t *testing.T) {
	r := utils.NewRand(0)
	for _, kind := range Kinds() {
		kp, _ := params(kind)
		for range 2000 {
			p := Spawn(kind, screen, white, &r)
			require.Equal(t, kind, p.Kind)
			assert.Greater(t, p.Size, 0.0)
			assert.True(t, kp.size.contains(p.Size), "size %v", p.Size)
			assert.True(t, kp.speedX.contains(p.SpeedX), "speedX %v", p.SpeedX)
			assert.True(t, kp.speedY.contains(p.SpeedY), "speedY %v", p.SpeedY)
			assert.True(t, kp.decay.contains(p.Decay), "decay %v", p.Decay)
			assert.Equal(t, p.InitialLife, p.Life)
			assert.GreaterOrEqual(t, p.Opacity, 0.0)
			assert.Less(t, p.Opacity, 1.0)
			assert.Equal(t, kp.glow, p.Glow)

			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.Less(t, p.X, screen.Width)
			if kp.rises {
				assert.GreaterOrEqual(t, p.Y, screen.Height)
				assert.Less(t, p.Y, screen.Height+risingSpawnDepth)
			} else {
				assert.GreaterOrEqual(t, p.Y, 0.0)
				assert.Less(t, p.Y, screen.Height)
			}

			if kind == KindSnow {
				assert.Equal(t, 0.0, p.Decay)
				assert.Equal(t, white, p.Color)
			} else {
				assert.Greater(t, p.Decay, 0.0)
			}
		}
	}
}

func TestSpawn_EmbersAreWarm(t *testing.T) {
	// Hues between red and yellow have no blue component to speak of and
	// always more red than green.
	r := utils.NewRand(3)
	for range 500 {
		p := Spawn(KindEmbers, screen, white, &r)
		assert.GreaterOrEqual(t, p.Color.R, p.Color.G)
		assert.GreaterOrEqual(t, p.Color.R, p.Color.B)
		assert.Equal(t, uint8(255), p.Color.A)
	}
}

func TestAdvance_SnowNeverDecays(t *testing.T) {
	r := utils.NewRand(1)
	pool := make([]Particle, 50)
	for i := range pool {
		pool[i] = Spawn(KindSnow, screen, white, &r)
	}
	for range 5000 {
		for i := range pool {
			pool[i].Advance(frame, screen, &r)
			require.Equal(t, 0.0, pool[i].Decay)
			require.Equal(t, 1.0, pool[i].Life)
		}
	}
}

func TestAdvance_AlphaIsAlwaysClamped(t *testing.T) {
	r := utils.NewRand(2)
	for _, kind := range Kinds() {
		for range 200 {
			p := Spawn(kind, screen, white, &r)
			for range 300 {
				p.Advance(r.RFloat(0, 0.2), screen, &r)
				a := p.Alpha()
				require.GreaterOrEqual(t, a, 0.0)
				require.LessOrEqual(t, a, 1.0)
			}
		}
	}

	var p Particle
	p.Opacity = -0.4
	assert.Equal(t, 0.0, p.Alpha())
	p.Opacity = 1.3
	assert.Equal(t, 1.0, p.Alpha())
}

func TestAdvance_SnowWrapsHorizontally(t *testing.T) {
	r := utils.NewRand(4)

	p := Spawn(KindSnow, screen, white, &r)
	p.X = -15
	p.Y = 300
	p.SpeedX = -0.5
	p.Advance(frame, screen, &r)
	assert.Equal(t, 810.0, p.X)
	// Wrapped, not recycled: the particle keeps falling from where it was.
	assert.InDelta(t, 300+p.SpeedY, p.Y, 1e-9)
	assert.Equal(t, 1.0, p.Life)

	p.X = 815
	p.Y = 300
	p.SpeedX = 0.5
	p.Advance(frame, screen, &r)
	assert.Equal(t, -10.0, p.X)
	assert.InDelta(t, 300+p.SpeedY, p.Y, 1e-9)
}

func TestAdvance_OtherKindsRecycleHorizontally(t *testing.T) {
	r := utils.NewRand(5)

	p := Spawn(KindAsh, screen, white, &r)
	p.X = -15
	p.Y = 300
	p.SpeedX = -0.5
	p.Life = 0.5
	p.Advance(frame, screen, &r)
	assert.Equal(t, -10.0, p.Y)
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.Less(t, p.X, screen.Width)
	assert.Equal(t, p.InitialLife, p.Life)

	p = Spawn(KindEmbers, screen, white, &r)
	p.X = 815
	p.Y = 300
	p.SpeedX = 0.5
	p.Life = 0.5
	p.Advance(frame, screen, &r)
	assert.GreaterOrEqual(t, p.Y, screen.Height)
	assert.Less(t, p.Y, screen.Height+risingSpawnDepth)
}

func TestAdvance_EmberRecycledWhenLifeRunsOut(t *testing.T) {
	r := utils.NewRand(6)
	p := Spawn(KindEmbers, screen, white, &r)
	initialLife := p.InitialLife
	p.X = 400
	p.Y = 300
	p.Life = 0.001
	p.Decay = 0.01

	p.Advance(frame, screen, &r)

	assert.GreaterOrEqual(t, p.Y, screen.Height)
	assert.Less(t, p.Y, screen.Height+risingSpawnDepth)
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.Less(t, p.X, screen.Width)
	assert.Equal(t, initialLife, p.Life)
}

func TestAdvance_ParticlesRecycledPastTheFarEdge(t *testing.T) {
	r := utils.NewRand(7)

	snow := Spawn(KindSnow, screen, white, &r)
	snow.X = 400
	snow.Y = screen.Height + 9
	snow.SpeedY = 2
	snow.Advance(frame, screen, &r)
	assert.Equal(t, -10.0, snow.Y)

	ember := Spawn(KindEmbers, screen, white, &r)
	ember.X = 400
	ember.Y = -9
	ember.SpeedY = -2
	ember.Life = 0.5
	ember.Advance(frame, screen, &r)
	assert.GreaterOrEqual(t, ember.Y, screen.Height)
}

func TestAdvance_MotionScalesWithTime(t *testing.T) {
	r := utils.NewRand(8)
	p := Spawn(KindAsh, screen, white, &r)
	p.X, p.Y = 400, 300
	p.SpeedX, p.SpeedY = 0.5, 1.5
	p.Life = 1

	p.Advance(0.5, screen, &r)
	assert.InDelta(t, 400+0.5*0.5*60, p.X, 1e-9)
	assert.InDelta(t, 300+1.5*0.5*60, p.Y, 1e-9)
	assert.InDelta(t, 1-p.Decay, p.Life, 1e-12)
	assert.Equal(t, p.Life, p.Opacity)
}

func TestRecycle_KeepsAppearanceAndSpeed(t *testing.T) {
	r := utils.NewRand(9)
	for _, kind := range Kinds() {
		p := Spawn(kind, screen, white, &r)
		size, speedX, speedY, clr, decay := p.Size, p.SpeedX, p.SpeedY, p.Color, p.Decay
		for range 100 {
			p.Life = -1
			p.Recycle(screen, &r)
			require.Equal(t, size, p.Size)
			require.Equal(t, speedX, p.SpeedX)
			require.Equal(t, speedY, p.SpeedY)
			require.Equal(t, clr, p.Color)
			require.Equal(t, decay, p.Decay)
			require.Equal(t, p.InitialLife, p.Life)
		}
	}
}

func TestRender_GlowAddsHalo(t *testing.T) {
	r := utils.NewRand(10)
	var s RecordingSurface

	ember := Spawn(KindEmbers, screen, white, &r)
	ember.Opacity = 1.5
	ember.Render(&s)
	require.Len(t, s.Calls, 2)
	assert.True(t, s.Calls[0].Halo)
	assert.Equal(t, ember.Size*glowScale, s.Calls[0].Radius)
	assert.False(t, s.Calls[1].Halo)
	assert.Equal(t, ember.Size, s.Calls[1].Radius)
	assert.Equal(t, 1.0, s.Calls[1].Alpha)

	s.Clear()
	snow := Spawn(KindSnow, screen, white, &r)
	snow.Opacity = -0.2
	snow.Render(&s)
	require.Len(t, s.Calls, 1)
	assert.False(t, s.Calls[0].Halo)
	assert.Equal(t, 0.0, s.Calls[0].Alpha)
}
