package story

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/marisvali/yolka/particles"
)

var (
	ErrNoActiveGame     = errors.New("no active game")
	ErrChoiceOutOfRange = errors.New("choice out of range")
)

// FinishText is the text of the only choice offered in a final scene.
const FinishText = "Finish the game"

// Ambience is what the controller needs from the particle engine.
type Ambience interface {
	SetAmbient(kind particles.Kind)
}

type noAmbience struct{}

func (noAmbience) SetAmbient(particles.Kind) {}

type noNotifier struct{}

func (noNotifier) Notify(Notification) {}

// Controller moves the player through a Story. It owns the session, decides
// which particle effect runs and tells the player what happened through the
// Notifier. Frontends only draw what it exposes and forward input to it.
type Controller struct {
	story    *Story
	ambience Ambience
	notifier Notifier
	autosave *Autosave
	clock    particles.Clock
	logger   *log.Logger

	session     Session
	playthrough Playthrough
	active      bool
	inProgress  bool
	menuVisible bool
}

type ControllerOption func(c *Controller)

func WithAutosave(a *Autosave) ControllerOption {
	return func(c *Controller) { c.autosave = a }
}

func WithNotifier(n Notifier) ControllerOption {
	return func(c *Controller) { c.notifier = n }
}

func WithClock(clock particles.Clock) ControllerOption {
	return func(c *Controller) { c.clock = clock }
}

func WithLogger(l *log.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

func NewController(s *Story, ambience Ambience, opts ...ControllerOption) *Controller {
	c := &Controller{
		story:    s,
		ambience: ambience,
		notifier: noNotifier{},
		clock:    particles.SystemClock{},
		logger:   log.New(io.Discard, "", 0),
	}
	if c.ambience == nil {
		c.ambience = noAmbience{}
	}
	for _, opt := range opts {
		opt(c)
	}
	c.session = NewSession(s.Start, "", c.clock.Now())
	return c
}

func (c *Controller) Story() *Story {
	return c.story
}

// SetStory replaces the story, for reloading it while the game runs. If a
// game is active the current scene is entered again from the new story.
func (c *Controller) SetStory(s *Story) error {
	c.story = s
	if c.active {
		return c.EnterScene()
	}
	return nil
}

func (c *Controller) Session() Session {
	return c.session.Clone()
}

func (c *Controller) Playthrough() Playthrough {
	return c.playthrough.Clone()
}

func (c *Controller) GameActive() bool {
	return c.active
}

func (c *Controller) GameInProgress() bool {
	return c.inProgress
}

func (c *Controller) MenuVisible() bool {
	return c.menuVisible
}

// ConfirmNewGameNeeded reports whether starting a new game would throw away
// a game in progress. Frontends ask the player before calling NewGame.
func (c *Controller) ConfirmNewGameNeeded() bool {
	return c.inProgress
}

func (c *Controller) Notify(message string, level Level) {
	c.notifier.Notify(Notification{Message: message, Level: level})
}

// RestoreAutosave picks up the session stored by a previous run, so that the
// menu can offer to continue it.
func (c *Controller) RestoreAutosave() error {
	s, ok, err := c.autosave.Restore()
	if err != nil {
		return err
	}
	if ok {
		c.session = s
		c.inProgress = true
		c.logger.Printf("restored session %s at scene %q", s.Id, s.CurrentScene)
	}
	return nil
}

func (c *Controller) ShowMenu() {
	c.menuVisible = true
	c.active = false
	c.ambience.SetAmbient(particles.KindSnow)
}

func (c *Controller) NewGame(playerName string) error {
	c.session = NewSession(c.story.Start, playerName, c.clock.Now())
	c.beginPlaythrough()
	c.logger.Printf("new game %s for %q", c.session.Id, playerName)
	return c.StartGame()
}

// Continue resumes the game in progress. It does nothing if there is none.
func (c *Controller) Continue() error {
	if !c.inProgress {
		return nil
	}
	if c.playthrough.Id == uuid.Nil {
		c.beginPlaythrough()
	}
	return c.StartGame()
}

func (c *Controller) StartGame() error {
	c.active = true
	c.inProgress = true
	c.menuVisible = false
	// The menu snow stops here. The scene starts its own effect, if it has
	// one.
	c.ambience.SetAmbient(particles.KindNone)
	c.storeAutosave()
	return c.EnterScene()
}

// CurrentScene returns the scene the session points to.
func (c *Controller) CurrentScene() (*Scene, error) {
	return c.story.Scene(c.session.CurrentScene)
}

// EnterScene shows the current scene. A session pointing to a scene which
// doesn't exist (an old save, or a story edited since) ends the game.
func (c *Controller) EnterScene() error {
	scene, err := c.CurrentScene()
	if err != nil {
		c.logger.Printf("cannot enter scene: %v", err)
		c.EndGame()
		return err
	}
	if scene.Particles != nil {
		c.ambience.SetAmbient(*scene.Particles)
	}
	c.logger.Printf("entered scene %q", scene.Id)
	return nil
}

// AvailableChoices returns the choices the player can take right now: the
// choices of the current scene whose required items are all in the
// inventory. A final scene, or a scene where the player lacks the items for
// every choice, offers a single choice that ends the game.
func (c *Controller) AvailableChoices() []Choice {
	if !c.active {
		return nil
	}
	scene, err := c.CurrentScene()
	if err != nil {
		return nil
	}
	finish := []Choice{{Text: FinishText, NextScene: EndGameScene}}
	if scene.IsEnding() {
		return finish
	}
	var choices []Choice
	for _, choice := range scene.Choices {
		if c.session.HasAll(choice.Requires) {
			choices = append(choices, choice)
		}
	}
	if len(choices) == 0 {
		c.logger.Printf("no choice available in scene %q, offering to finish", scene.Id)
		return finish
	}
	return choices
}

// Choose takes the i-th of the AvailableChoices.
func (c *Controller) Choose(i int) error {
	if !c.active {
		return ErrNoActiveGame
	}
	choices := c.AvailableChoices()
	if i < 0 || i >= len(choices) {
		return fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, i, len(choices))
	}
	choice := choices[i]
	c.playthrough.Choices = append(c.playthrough.Choices, i)

	if choice.EndsGame() {
		c.EndGame()
		return nil
	}

	c.session.Take(choice.Takes...)
	c.session.Give(choice.Gives...)
	c.session.CurrentScene = choice.NextScene
	c.session.Progress++
	c.session.Timestamp = c.clock.Now()
	c.storeAutosave()
	return c.EnterScene()
}

func (c *Controller) EndGame() {
	c.Notify("Thanks for playing!", LevelSuccess)
	c.active = false
	c.inProgress = false
	c.ShowMenu()
	c.logger.Printf("game %s ended at scene %q", c.session.Id, c.session.CurrentScene)
	c.session = NewSession(c.story.Start, "", c.clock.Now())
	if err := c.autosave.Clear(); err != nil {
		c.logger.Printf("%v", err)
	}
}

// Save writes the active game to w. The name under which to offer the file
// is SaveFileName.
func (c *Controller) Save(w io.Writer) error {
	if !c.active {
		return ErrNoActiveGame
	}
	sceneName := c.session.CurrentScene
	if scene, err := c.CurrentScene(); err == nil && scene.Title != "" {
		sceneName = scene.Title
	}
	if err := EncodeSave(w, c.session, sceneName); err != nil {
		return err
	}
	c.logger.Printf("saved game %s at scene %q", c.session.Id, c.session.CurrentScene)
	return nil
}

func (c *Controller) SaveFileName() string {
	return SaveFileName(c.clock.Now())
}

// Load replaces the session with the one saved in r and starts the game.
// name is only used to check the extension. The player is told whether it
// worked either way.
func (c *Controller) Load(name string, r io.Reader) error {
	err := CheckSaveExtension(name)
	if err == nil {
		var s Session
		s, err = DecodeSave(r, c.clock.Now())
		if err == nil {
			c.session = s
		}
	}
	if err != nil {
		c.logger.Printf("failed to load %s: %v", name, err)
		if errors.Is(err, ErrBadSaveExtension) {
			c.Notify("Please choose a .json or .gamesave file", LevelError)
		} else {
			c.Notify("Could not load the game: the file is damaged", LevelError)
		}
		return err
	}

	c.logger.Printf("loaded game %s from %s", c.session.Id, name)
	c.Notify("Game loaded", LevelSuccess)
	c.beginPlaythrough()
	return c.StartGame()
}

func (c *Controller) beginPlaythrough() {
	c.playthrough = Playthrough{
		InputVersion: InputVersion,
		Id:           uuid.New(),
		StoryTitle:   c.story.Title,
		Start:        c.session.Clone(),
	}
}

func (c *Controller) storeAutosave() {
	if err := c.autosave.Store(c.session); err != nil {
		c.logger.Printf("%v", err)
	}
}
