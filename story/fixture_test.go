package story

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/marisvali/yolka/particles"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)

const testStoryYAML = `
Title: Test Story
Start: start
Scenes:
  start:
    Title: Start
    Text: The beginning.
    Particles: snow
    Choices:
      - Text: Take the key
        NextScene: hall
        Gives: [key]
      - Text: Walk to the hall
        NextScene: hall
  hall:
    Title: Hall
    Text: A door and a fireplace.
    Choices:
      - Text: Open the door
        NextScene: vault
        Requires: [key]
        Takes: [key]
      - Text: Sit by the fire
        NextScene: fire
      - Text: Leave
        NextScene: END_GAME
  vault:
    Title: Vault
    Text: Ash everywhere.
    Particles: ash
  fire:
    Title: Fire
    Text: Sparks.
    Particles: embers
    Choices:
      - Text: Stop
        Action: endGame
      - Text: Put it out
        NextScene: dark
  dark:
    Title: Dark
    Text: Nothing moves.
    Particles: none
    Choices:
      - Text: Go back
        NextScene: hall
`

func loadTestStory(t *testing.T) *Story {
	t.Helper()
	fsys := fstest.MapFS{"story.yaml": {Data: []byte(testStoryYAML)}}
	s, err := LoadStory(fsys, "story.yaml")
	require.NoError(t, err)
	return s
}

type recordingAmbience struct {
	kinds []particles.Kind
}

func (a *recordingAmbience) SetAmbient(kind particles.Kind) {
	a.kinds = append(a.kinds, kind)
}

type recordingNotifier struct {
	notifications []Notification
}

func (n *recordingNotifier) Notify(notification Notification) {
	n.notifications = append(n.notifications, notification)
}

func (n *recordingNotifier) last() Notification {
	if len(n.notifications) == 0 {
		return Notification{}
	}
	return n.notifications[len(n.notifications)-1]
}

type controllerRig struct {
	c        *Controller
	ambience *recordingAmbience
	notifier *recordingNotifier
	clock    *particles.ManualClock
}

func newControllerRig(t *testing.T, opts ...ControllerOption) *controllerRig {
	r := &controllerRig{
		ambience: &recordingAmbience{},
		notifier: &recordingNotifier{},
		clock:    particles.NewManualClock(now),
	}
	opts = append([]ControllerOption{WithNotifier(r.notifier), WithClock(r.clock)}, opts...)
	r.c = NewController(loadTestStory(t), r.ambience, opts...)
	return r
}
