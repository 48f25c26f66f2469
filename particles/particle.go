package particles

import (
	"image/color"
	"math"

	"github.com/marisvali/yolka/utils"
)

// FrameRateNormalizer converts speeds, which are expressed in pixels per
// frame at 60 FPS, into pixels per second. This keeps the motion the same when
// frames don't arrive at a steady 60 FPS.
const FrameRateNormalizer = 60

const (
	// driftStep is how much the drift angle of a snowflake grows each frame.
	driftStep = 0.02
	// driftAmplitude is the lateral drift of a snowflake, in pixels per frame.
	driftAmplitude = 0.5
	// edgeMargin is how far outside the bounds a particle may go before the
	// boundary rules apply. Particles are drawn as circles so they must be
	// allowed to leave the screen completely before being moved.
	edgeMargin = 10
	// risingSpawnDepth is the depth of the band below the bottom edge in which
	// rising particles are placed.
	risingSpawnDepth = 100
	// glowScale is the radius of the halo relative to the particle size.
	glowScale = 2
)

// Bounds is the drawable area, in pixels. The top-left corner is (0, 0).
type Bounds struct {
	Width  float64
	Height float64
}

type Particle struct {
	X, Y        float64
	SpeedX      float64
	SpeedY      float64
	Size        float64
	Color       color.NRGBA
	Opacity     float64
	Life        float64
	InitialLife float64
	Decay       float64
	Kind        Kind
	Glow        bool
	angle       float64
}

// Spawn creates a particle of the given kind with attributes drawn from the
// distributions of that kind. Falling particles are placed anywhere inside b,
// rising ones in a band right under the bottom edge.
// The opacity is random and unrelated to the life of the particle, so that a
// freshly created pool doesn't appear all at once.
func Spawn(kind Kind, b Bounds, tint color.NRGBA, r *utils.Rand) (p Particle) {
	kp, ok := params(kind)
	if !ok {
		return
	}

	p.Kind = kind
	p.Size = kp.size.draw(r)
	p.SpeedX = kp.speedX.draw(r)
	p.SpeedY = kp.speedY.draw(r)
	p.Color = tint
	if kp.band != nil {
		if c, err := kp.band.draw(r); err == nil {
			p.Color = c
		}
	}
	p.Life = kp.life.draw(r)
	p.InitialLife = p.Life
	p.Decay = kp.decay.draw(r)
	p.Glow = kp.glow
	p.Opacity = r.Float()

	p.X = r.RFloat(0, b.Width)
	if kp.rises {
		p.Y = b.Height + r.RFloat(0, risingSpawnDepth)
	} else {
		p.Y = r.RFloat(0, b.Height)
	}
	return
}

// Advance moves the particle forward by dt seconds and applies the boundary
// rules using b.
func (p *Particle) Advance(dt float64, b Bounds, r *utils.Rand) {
	kp, ok := params(p.Kind)
	if !ok {
		return
	}

	p.X += p.SpeedX * dt * FrameRateNormalizer
	p.Y += p.SpeedY * dt * FrameRateNormalizer

	if p.Kind == KindSnow {
		p.angle += driftStep
		p.X += math.Cos(p.angle) * driftAmplitude
	}

	p.Life -= p.Decay
	p.Opacity = p.Life

	if p.Life <= 0 || p.pastFarEdge(kp, b) {
		p.Recycle(b, r)
		return
	}

	if p.X < -edgeMargin || p.X > b.Width+edgeMargin {
		if kp.wrapsHorizontally {
			if p.X < -edgeMargin {
				p.X = b.Width + edgeMargin
			} else {
				p.X = -edgeMargin
			}
		} else {
			p.Recycle(b, r)
		}
	}
}

// pastFarEdge reports whether the particle left through the edge opposite to
// the one it came in from.
func (p *Particle) pastFarEdge(kp kindParams, b Bounds) bool {
	if kp.rises {
		return p.Y < -edgeMargin
	}
	return p.Y > b.Height+edgeMargin
}

// Recycle puts the particle back at its entry edge with its original life.
// Size, speed and color stay as they are.
func (p *Particle) Recycle(b Bounds, r *utils.Rand) {
	kp, ok := params(p.Kind)
	if !ok {
		return
	}

	p.X = r.RFloat(0, b.Width)
	if kp.rises {
		p.Y = b.Height + r.RFloat(0, risingSpawnDepth)
	} else {
		p.Y = -edgeMargin
	}
	p.Life = p.InitialLife
	p.Opacity = r.Float()
}

// Alpha is the opacity actually used for drawing. Decay can push Opacity
// below 0 before the particle gets recycled.
func (p *Particle) Alpha() float64 {
	return utils.Clamp(p.Opacity, 0, 1)
}

func (p *Particle) Render(s Surface) {
	alpha := p.Alpha()
	if p.Glow {
		s.Halo(p.X, p.Y, p.Size*glowScale, p.Color, alpha)
	}
	s.FillCircle(p.X, p.Y, p.Size, p.Color, alpha)
}
