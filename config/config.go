// Package config reads the game configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/marisvali/yolka/particles"
	"github.com/marisvali/yolka/utils"
)

const (
	FileName    = "config.yaml"
	DevFileName = "config-dev.yaml"
)

// Start states.
const (
	StartMenu = "Menu"
	StartPlay = "Play"
)

type Effect struct {
	Count int64  `yaml:"Count"`
	Tint  string `yaml:"Tint"`
}

type Config struct {
	StartState   string `yaml:"StartState"`
	StoryFile    string `yaml:"StoryFile"`
	PlayerName   string `yaml:"PlayerName"`
	SaveDir      string `yaml:"SaveDir"`
	LoadFile     string `yaml:"LoadFile"`
	MusicEnabled bool   `yaml:"MusicEnabled"`
	// MaxFrameDeltaMs caps the time simulated by a single particle frame.
	MaxFrameDeltaMs int64  `yaml:"MaxFrameDeltaMs"`
	UploadUrl       string `yaml:"UploadUrl"`
	AppName         string `yaml:"AppName"`
	// Effects is keyed by the name of the particle kind: snow, ash, embers.
	Effects map[string]Effect `yaml:"Effects"`
}

// Load reads config.yaml, or config-dev.yaml in developer mode, from fsys
// and validates it.
func Load(fsys fs.FS, devMode bool) (Config, error) {
	name := FileName
	if devMode {
		name = DevFileName
	}
	var c Config
	if err := utils.LoadYAML(fsys, name, &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.StartState != StartMenu && c.StartState != StartPlay {
		errs = append(errs, fmt.Errorf("invalid StartState: %q", c.StartState))
	}
	if c.StoryFile == "" {
		errs = append(errs, errors.New("missing StoryFile"))
	}
	if c.MaxFrameDeltaMs <= 0 {
		errs = append(errs, fmt.Errorf("MaxFrameDeltaMs must be positive, got %d", c.MaxFrameDeltaMs))
	}
	if _, err := c.Presets(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) MaxFrameDelta() time.Duration {
	return time.Duration(c.MaxFrameDeltaMs) * time.Millisecond
}

// Presets converts Effects to what the particle engine understands. Kinds
// missing from Effects keep the engine defaults.
func (c *Config) Presets() (map[particles.Kind]particles.Preset, error) {
	names := make([]string, 0, len(c.Effects))
	for name := range c.Effects {
		names = append(names, name)
	}
	sort.Strings(names)

	presets := map[particles.Kind]particles.Preset{}
	var errs []error
	for _, name := range names {
		effect := c.Effects[name]
		kind, err := particles.ParseKind(name)
		if err == nil && kind == particles.KindNone {
			err = fmt.Errorf("%w: %q", particles.ErrUnknownKind, name)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("effect %s: %w", name, err))
			continue
		}
		if effect.Count < 0 {
			errs = append(errs, fmt.Errorf("effect %s: negative Count %d", name, effect.Count))
			continue
		}
		tint := particles.DefaultPresets()[kind].Tint
		if effect.Tint != "" {
			if tint, err = ParseHexColor(effect.Tint); err != nil {
				errs = append(errs, fmt.Errorf("effect %s: %w", name, err))
				continue
			}
		}
		presets[kind] = particles.Preset{Count: int(effect.Count), Tint: tint}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return presets, nil
}

// ApplyEffects configures a running engine, for when the config is reloaded.
// The new counts and tints are used the next time an effect is activated.
func (c *Config) ApplyEffects(e *particles.Engine) error {
	presets, err := c.Presets()
	if err != nil {
		return err
	}
	for kind, p := range presets {
		if err = e.Configure(kind, p.Count); err != nil {
			return err
		}
		if err = e.SetTint(kind, p.Tint); err != nil {
			return err
		}
	}
	return nil
}

// ParseHexColor parses #rgb and #rrggbb colors. The result is opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: missing #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
