package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/yolka/config"
	"github.com/marisvali/yolka/particles"
	"github.com/marisvali/yolka/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStory = `
Title: Lanterns
Start: gate
Scenes:
  gate:
    Title: The Gate
    Text: Snow on the gate.
    Particles: snow
    Choices:
      - Text: Go in
        NextScene: yard
  yard:
    Title: The Yard
    Text: A quiet yard.
`

type playerRig struct {
	p      *Player
	screen tcell.SimulationScreen
	clock  *particles.ManualClock
	cfg    config.Config
}

func newPlayerRig(t *testing.T) playerRig {
	t.Helper()
	fsys := fstest.MapFS{"story.yaml": {Data: []byte(testStory)}}
	s, err := story.LoadStory(fsys, "story.yaml")
	require.NoError(t, err)

	cfg := config.Config{
		StartState:      config.StartMenu,
		StoryFile:       "story.yaml",
		PlayerName:      "tester",
		SaveDir:         t.TempDir(),
		MaxFrameDeltaMs: 50,
	}
	screen := newSimScreen(t, 80, 25)
	clock := particles.NewManualClock(time.Date(2025, 12, 31, 22, 0, 0, 0, time.UTC))
	p, err := NewPlayer(screen, cfg, s, clock, nil, nil, nil)
	require.NoError(t, err)
	p.controller.ShowMenu()
	return playerRig{p: p, screen: screen, clock: clock, cfg: cfg}
}

func (r playerRig) press(ch rune) bool {
	return r.p.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
}

func (r playerRig) row(y int) string {
	cols, _ := r.screen.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := r.screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func (r playerRig) screenText() string {
	_, rows := r.screen.Size()
	lines := make([]string, rows)
	for y := range lines {
		lines[y] = r.row(y)
	}
	return strings.Join(lines, "\n")
}

func TestPlayer_MenuAndNewGame(t *testing.T) {
	r := newPlayerRig(t)
	r.p.Draw()
	assert.Contains(t, r.screenText(), "Lanterns")
	assert.Contains(t, r.screenText(), "New game")
	assert.Equal(t, particles.KindSnow, r.p.engine.CurrentEffect())

	assert.True(t, r.press('n'))
	require.True(t, r.p.controller.GameActive())
	assert.Equal(t, "tester", r.p.controller.Session().PlayerName)

	r.p.Draw()
	assert.Contains(t, r.row(1), "The Gate")
	assert.Contains(t, r.screenText(), "[1] Go in")
	assert.Equal(t, particles.KindSnow, r.p.engine.CurrentEffect())

	r.press('1')
	assert.Equal(t, "yard", r.p.controller.Session().CurrentScene)
	r.p.Draw()
	assert.Contains(t, r.screenText(), "Finish the game")
}

func TestPlayer_NewGameNeedsConfirmation(t *testing.T) {
	r := newPlayerRig(t)
	r.press('n')
	r.press('1')
	r.p.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	require.False(t, r.p.controller.GameActive())

	r.press('n')
	assert.False(t, r.p.controller.GameActive())
	assert.Equal(t, story.LevelInfo, r.p.notification.Level)

	r.press('n')
	require.True(t, r.p.controller.GameActive())
	assert.Equal(t, "gate", r.p.controller.Session().CurrentScene)
}

func TestPlayer_ContinueAfterMenu(t *testing.T) {
	r := newPlayerRig(t)
	r.press('n')
	r.press('1')
	r.p.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	r.press('c')
	require.True(t, r.p.controller.GameActive())
	assert.Equal(t, "yard", r.p.controller.Session().CurrentScene)
}

func TestPlayer_Quit(t *testing.T) {
	r := newPlayerRig(t)
	assert.False(t, r.press('q'))

	r = newPlayerRig(t)
	assert.False(t, r.p.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))

	r = newPlayerRig(t)
	r.press('n')
	assert.True(t, r.p.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, r.p.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestPlayer_SaveWritesFile(t *testing.T) {
	r := newPlayerRig(t)
	r.press('n')
	r.press('s')
	assert.Equal(t, story.LevelSuccess, r.p.notification.Level)

	entries, err := os.ReadDir(r.cfg.SaveDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".gamesave", filepath.Ext(entries[0].Name()))

	f, err := os.Open(filepath.Join(r.cfg.SaveDir, entries[0].Name()))
	require.NoError(t, err)
	defer f.Close()
	s, err := story.DecodeSave(f, r.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, "gate", s.CurrentScene)
}

func TestPlayer_NotificationExpires(t *testing.T) {
	r := newPlayerRig(t)
	r.p.controller.Notify("Hello there", story.LevelInfo)
	r.p.Draw()
	assert.Contains(t, r.row(0), "Hello there")

	r.clock.Advance(notificationDuration + time.Second)
	r.p.Draw()
	assert.NotContains(t, r.row(0), "Hello there")
}

func TestPlayer_ResizeUpdatesSurface(t *testing.T) {
	r := newPlayerRig(t)
	r.screen.SetSize(40, 10)
	r.p.HandleEvent(tcell.NewEventResize(40, 10))
	w, h := r.p.surface.Bounds()
	assert.Equal(t, 320.0, w)
	assert.Equal(t, 160.0, h)
}

func TestWrapWords(t *testing.T) {
	lines := WrapWords("one two three four\nfive\n\nsix", 9)
	assert.Equal(t, []string{"one two", "three", "four five", "", "six"}, lines)
	assert.Equal(t, []string{"unbreakableword"}, WrapWords("unbreakableword", 5))
}
