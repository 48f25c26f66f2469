package particles

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"slices"
	"time"

	"github.com/marisvali/yolka/utils"
)

// DefaultMaxFrameDelta is the largest time step a single frame can simulate.
// When the host stops rendering for a while (a background browser tab, a
// dragged window) the next frame would otherwise move every particle far
// outside the screen.
const DefaultMaxFrameDelta = 100 * time.Millisecond

// Preset is the configuration of one kind of effect. Tint is the color of
// particles whose kind doesn't have its own range of colors (snow).
type Preset struct {
	Count int
	Tint  color.NRGBA
}

func DefaultPresets() map[Kind]Preset {
	return map[Kind]Preset{
		KindSnow:   {Count: 100, Tint: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		KindAsh:    {Count: 80, Tint: color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		KindEmbers: {Count: 60, Tint: color.NRGBA{R: 255, G: 165, B: 0, A: 255}},
	}
}

type engineState int

const (
	Idle engineState = iota
	Running
)

// Engine owns a pool of particles of a single kind and animates them, one
// step per frame, as long as it is running.
//
// All methods must be called from the goroutine that pumps the scheduler.
type Engine struct {
	surface       Surface
	scheduler     FrameScheduler
	clock         Clock
	rand          utils.Rand
	logger        *log.Logger
	maxFrameDelta time.Duration
	presets       map[Kind]Preset

	state     engineState
	current   Kind
	particles []Particle
	bounds    Bounds
	// Bounds received from Resize while running are applied at the start
	// of the next tick, so a tick always works with a single set of bounds.
	pendingBounds    Bounds
	hasPendingBounds bool
	handle           FrameHandle
	// generation changes every time the loop stops. A callback carries the
	// generation it was requested in and does nothing if it doesn't match.
	generation uint64
	lastTime   time.Time
}

type Option func(*Engine)

func WithRand(r utils.Rand) Option {
	return func(e *Engine) { e.rand = r }
}

func WithMaxFrameDelta(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.maxFrameDelta = d
		}
	}
}

func WithPresets(presets map[Kind]Preset) Option {
	return func(e *Engine) {
		for k, p := range presets {
			if _, ok := params(k); ok && p.Count >= 0 {
				e.presets[k] = p
			}
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func NewEngine(surface Surface, scheduler FrameScheduler, clock Clock,
	opts ...Option) *Engine {
	e := &Engine{
		surface:       surface,
		scheduler:     scheduler,
		clock:         clock,
		rand:          utils.NewRand(time.Now().UnixNano()),
		logger:        log.New(io.Discard, "", 0),
		maxFrameDelta: DefaultMaxFrameDelta,
		presets:       DefaultPresets(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Configure sets the number of particles used by kind. It takes effect the
// next time the effect is activated.
func (e *Engine) Configure(kind Kind, count int) error {
	if _, ok := params(kind); !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if count < 0 {
		return fmt.Errorf("invalid particle count for %v: %d", kind, count)
	}
	p := e.presets[kind]
	p.Count = count
	e.presets[kind] = p
	return nil
}

func (e *Engine) SetTint(kind Kind, tint color.NRGBA) error {
	if _, ok := params(kind); !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	p := e.presets[kind]
	p.Tint = tint
	e.presets[kind] = p
	return nil
}

func (e *Engine) Preset(kind Kind) Preset {
	return e.presets[kind]
}

// Activate replaces whatever is running with a fresh pool of kind and starts
// the loop. Activating the kind that is already running restarts it.
// Activating KindNone is the same as Deactivate.
func (e *Engine) Activate(kind Kind) {
	if kind == KindNone {
		e.Deactivate()
		return
	}
	if _, ok := params(kind); !ok {
		e.logger.Printf("ignoring unknown effect %v", kind)
		return
	}

	e.stop()
	e.applyPendingBounds()

	preset := e.presets[kind]
	e.particles = make([]Particle, 0, preset.Count)
	for range preset.Count {
		e.particles = append(e.particles,
			Spawn(kind, e.bounds, preset.Tint, &e.rand))
	}

	e.current = kind
	e.state = Running
	e.lastTime = e.clock.Now()
	e.requestFrame()
	e.logger.Printf("%v effect activated with %d particles", kind, len(e.particles))
}

// SetAmbient is what the story uses on every scene. Unlike Activate it
// leaves an effect that is already running alone, so that walking through
// several snowy scenes doesn't restart the snow each time.
func (e *Engine) SetAmbient(kind Kind) {
	if kind != KindNone && kind == e.current && e.state == Running {
		return
	}
	e.Activate(kind)
}

// Deactivate stops the loop and clears the surface. Calling it when nothing
// runs only clears the surface again.
func (e *Engine) Deactivate() {
	wasRunning := e.state == Running
	e.stop()
	e.current = KindNone
	e.particles = nil
	e.surface.Clear()
	if wasRunning {
		e.logger.Printf("effect stopped")
	}
}

func (e *Engine) stop() {
	e.generation++
	if e.handle != 0 {
		e.scheduler.CancelFrame(e.handle)
		e.handle = 0
	}
	e.state = Idle
}

func (e *Engine) requestFrame() {
	gen := e.generation
	e.handle = e.scheduler.RequestFrame(func(now time.Time) {
		e.tick(gen, now)
	})
}

// Resize tells the engine the new size of the surface. Particles stay where
// they are, only the boundary rules use the new size.
func (e *Engine) Resize(width, height float64) {
	b := Bounds{Width: max(0, width), Height: max(0, height)}
	if e.state == Running {
		e.pendingBounds = b
		e.hasPendingBounds = true
		return
	}
	e.bounds = b
	e.hasPendingBounds = false
}

func (e *Engine) applyPendingBounds() {
	if e.hasPendingBounds {
		e.bounds = e.pendingBounds
		e.hasPendingBounds = false
	}
}

func (e *Engine) tick(gen uint64, now time.Time) {
	if e.state != Running || gen != e.generation {
		return
	}
	e.handle = 0

	dt := e.frameDelta(now).Seconds()
	e.applyPendingBounds()
	for i := range e.particles {
		e.particles[i].Advance(dt, e.bounds, &e.rand)
	}
	e.render()
	e.requestFrame()
}

// frameDelta returns the time since the previous tick, limited to
// maxFrameDelta. The first tick after a start without a valid previous
// timestamp gets 0.
func (e *Engine) frameDelta(now time.Time) time.Duration {
	var dt time.Duration
	if !e.lastTime.IsZero() && !now.IsZero() {
		dt = now.Sub(e.lastTime)
	}
	e.lastTime = now
	return min(max(dt, 0), e.maxFrameDelta)
}

func (e *Engine) render() {
	e.surface.Clear()
	for i := range e.particles {
		e.particles[i].Render(e.surface)
	}
}

func (e *Engine) CurrentEffect() Kind {
	return e.current
}

func (e *Engine) Running() bool {
	return e.state == Running
}

// Particles returns a copy of the pool.
func (e *Engine) Particles() []Particle {
	return slices.Clone(e.particles)
}

func (e *Engine) Bounds() Bounds {
	return e.bounds
}
