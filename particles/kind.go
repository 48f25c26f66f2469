package particles

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/crazy3lf/colorconv"
	"github.com/marisvali/yolka/utils"
)

// Kind is the type of the particles of an effect. Only one kind runs at a
// time.
type Kind int

const (
	KindNone Kind = iota
	KindSnow
	KindAsh
	KindEmbers
)

var ErrUnknownKind = errors.New("unknown particle kind")

var kindNames = [...]string{"none", "snow", "ash", "embers"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the names returned by String. The empty string is
// KindNone, so that a scene which doesn't mention particles doesn't need to
// say "none".
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindNone, nil
	}
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) Valid() bool {
	return k >= KindNone && int(k) < len(kindNames)
}

// Kinds returns the kinds that actually produce particles.
func Kinds() []Kind {
	return []Kind{KindSnow, KindAsh, KindEmbers}
}

// span is a uniform distribution over [Min, Max).
type span struct {
	Min, Max float64
}

func (s span) draw(r *utils.Rand) float64 {
	if s.Min == s.Max {
		return s.Min
	}
	return r.RFloat(s.Min, s.Max)
}

func (s span) contains(v float64) bool {
	if s.Min == s.Max {
		return v == s.Min
	}
	return v >= s.Min && v < s.Max
}

// hueBand describes colors in HSL space. Hue is in degrees, saturation and
// lightness are in [0, 1].
type hueBand struct {
	Hue        span
	Saturation span
	Lightness  span
}

func (h hueBand) draw(r *utils.Rand) (color.NRGBA, error) {
	red, green, blue, err := colorconv.HSLToRGB(
		h.Hue.draw(r), h.Saturation.draw(r), h.Lightness.draw(r))
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: red, G: green, B: blue, A: 255}, nil
}

// kindParams holds everything that makes one kind of particle different from
// another. All the numbers live here, the update code has no per-kind
// constants.
type kindParams struct {
	size   span
	speedX span
	speedY span
	life   span
	decay  span
	// band is nil for kinds drawn with the preset tint.
	band *hueBand
	glow bool
	// Particles that leave through the left or right edge either come back
	// through the opposite edge (wrap) or are recycled.
	wrapsHorizontally bool
	// Rising particles start below the bottom edge and move up.
	rises bool
}

var kindTable = map[Kind]kindParams{
	KindSnow: {
		size:              span{1, 5},
		speedX:            span{-1, 1},
		speedY:            span{1, 3},
		life:              span{1, 1},
		decay:             span{0, 0},
		wrapsHorizontally: true,
	},
	KindAsh: {
		size:   span{0.5, 3.5},
		speedX: span{-0.75, 0.75},
		speedY: span{0.5, 2},
		life:   span{0.2, 1},
		decay:  span{0.002, 0.007},
		band: &hueBand{
			Hue:        span{20, 60},
			Saturation: span{0.5, 0.5},
			Lightness:  span{0.3, 0.7},
		},
	},
	KindEmbers: {
		size:   span{1, 3},
		speedX: span{-1, 1},
		speedY: span{-4, -1},
		life:   span{0.1, 1},
		decay:  span{0.005, 0.013},
		band: &hueBand{
			Hue:        span{0, 60},
			Saturation: span{1, 1},
			Lightness:  span{0.5, 0.8},
		},
		glow:  true,
		rises: true,
	},
}

func params(k Kind) (kindParams, bool) {
	p, ok := kindTable[k]
	return p, ok
}
