package story

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/marisvali/yolka/particles"
	"github.com/marisvali/yolka/utils"
)

// EndGameScene is a pseudo-scene id. A choice leading to it ends the game.
const EndGameScene = "END_GAME"

// EndGameAction does the same as EndGameScene, for choices that prefer to
// say it with an action.
const EndGameAction = "endGame"

var (
	ErrSceneNotFound = errors.New("scene not found")
	ErrImageNotFound = errors.New("image not found")
)

type Choice struct {
	Text      string `yaml:"Text"`
	NextScene string `yaml:"NextScene"`
	Action    string `yaml:"Action"`
	// Items the player must carry for the choice to be offered.
	Requires []string `yaml:"Requires"`
	// Items added to and removed from the inventory when the choice is taken.
	Gives []string `yaml:"Gives"`
	Takes []string `yaml:"Takes"`
}

func (c *Choice) EndsGame() bool {
	return c.NextScene == EndGameScene || c.Action == EndGameAction
}

type Scene struct {
	Id    string `yaml:"-"`
	Title string `yaml:"Title"`
	Text  string `yaml:"Text"`
	// Image is drawn behind the text. The path is relative to the folder
	// the story was loaded from.
	Image string `yaml:"Image"`
	// Particles is the ambient effect of the scene. If it is missing the
	// effect of the previous scene keeps running; "none" stops it.
	Particles *particles.Kind `yaml:"Particles"`
	Choices   []Choice        `yaml:"Choices"`
}

// IsEnding reports whether the scene is a final one. Final scenes have no
// choices, the player can only finish the game.
func (s *Scene) IsEnding() bool {
	return len(s.Choices) == 0
}

type Story struct {
	Title  string            `yaml:"Title"`
	Start  string            `yaml:"Start"`
	Scenes map[string]*Scene `yaml:"Scenes"`
}

func LoadStory(fsys fs.FS, filename string) (*Story, error) {
	var s Story
	if err := utils.LoadYAML(fsys, filename, &s); err != nil {
		return nil, err
	}
	for id, scene := range s.Scenes {
		if scene == nil {
			scene = &Scene{}
			s.Scenes[id] = scene
		}
		scene.Id = id
	}
	if err := errors.Join(s.Validate(), s.CheckImages(fsys)); err != nil {
		return nil, fmt.Errorf("invalid story %s: %w", filename, err)
	}
	return &s, nil
}

func (s *Story) Scene(id string) (*Scene, error) {
	scene, ok := s.Scenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSceneNotFound, id)
	}
	return scene, nil
}

// Validate checks that the scene graph is closed: the start scene exists and
// every choice leads to an existing scene or ends the game.
func (s *Story) Validate() error {
	var errs []error
	if _, err := s.Scene(s.Start); err != nil {
		errs = append(errs, fmt.Errorf("start: %w", err))
	}

	for _, id := range s.sortedIds() {
		for i, c := range s.Scenes[id].Choices {
			if c.Text == "" {
				errs = append(errs, fmt.Errorf("scene %q choice %d has no text", id, i))
			}
			if c.EndsGame() {
				continue
			}
			if _, err := s.Scene(c.NextScene); err != nil {
				errs = append(errs, fmt.Errorf("scene %q choice %d: %w", id, i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// CheckImages checks that every scene image exists in fsys.
func (s *Story) CheckImages(fsys fs.FS) error {
	var errs []error
	for _, id := range s.sortedIds() {
		name := s.Scenes[id].Image
		if name == "" {
			continue
		}
		if _, err := fs.Stat(fsys, name); err != nil {
			errs = append(errs, fmt.Errorf("scene %q: %w: %s", id, ErrImageNotFound, name))
		}
	}
	return errors.Join(errs...)
}

// sortedIds lists the scenes in a fixed order, so that errors are reported
// in the same order every time.
func (s *Story) sortedIds() []string {
	ids := make([]string, 0, len(s.Scenes))
	for id := range s.Scenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
