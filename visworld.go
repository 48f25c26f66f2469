package main

import (
	"log"
	"os"
	"time"

	"github.com/marisvali/yolka/particles"
	"github.com/marisvali/yolka/story"
)

// NotificationFrames is how long a notification stays on screen: 4 seconds
// at 60 updates per second.
const NotificationFrames = 4 * 60

// VisNotification is a notification that is currently on screen.
type VisNotification struct {
	story.Notification
	NFramesLeft int64
}

// VisWorld holds the "visual logic" that runs next to the story controller:
// the particle engine, the text being revealed and the notifications. Draw()
// relies on it just like it relies on the controller.
//
// VisWorld is meant to be stepped once per Update(), after the controller
// has reacted to the input.
type VisWorld struct {
	Engine        *particles.Engine
	Queue         *particles.FrameQueue
	Overlay       Overlay
	Clock         particles.Clock
	Reveal        TextReveal
	Notifications []VisNotification
	sceneId       string
	progress      int64
}

func NewVisWorld(presets map[particles.Kind]particles.Preset,
	maxFrameDelta time.Duration) *VisWorld {
	v := &VisWorld{
		Queue: particles.NewFrameQueue(),
		Clock: particles.SystemClock{},
	}
	v.Engine = particles.NewEngine(&v.Overlay, v.Queue, v.Clock,
		particles.WithPresets(presets),
		particles.WithMaxFrameDelta(maxFrameDelta),
		particles.WithLogger(log.New(os.Stderr, "[particles] ", log.LstdFlags)))
	return v
}

// Resize is called from Layout() with the size of the screen bitmap.
func (v *VisWorld) Resize(width, height int) {
	v.Overlay.Resize(width, height)
	v.Engine.Resize(float64(width), float64(height))
}

// Notify implements story.Notifier.
func (v *VisWorld) Notify(n story.Notification) {
	v.Notifications = append(v.Notifications, VisNotification{
		Notification: n,
		NFramesLeft:  NotificationFrames,
	})
}

func (v *VisWorld) Step(c *story.Controller) {
	// One particle frame per update.
	v.Queue.Pump(v.Clock.Now())

	// A new scene, or the same scene entered again after a choice, starts a
	// new reveal.
	s := c.Session()
	if c.GameActive() && (s.CurrentScene != v.sceneId || s.Progress != v.progress) {
		v.sceneId = s.CurrentScene
		v.progress = s.Progress
		if scene, err := c.CurrentScene(); err == nil {
			v.Reveal = NewTextReveal(scene.Text)
		}
	}
	if !c.GameActive() {
		v.sceneId = ""
	}
	v.Reveal.Step()

	// Step notifications and filter out the obsolete ones.
	n := 0
	for i := range v.Notifications {
		v.Notifications[i].NFramesLeft--
		if v.Notifications[i].NFramesLeft > 0 {
			v.Notifications[n] = v.Notifications[i]
			n++
		}
	}
	v.Notifications = v.Notifications[:n]
}
