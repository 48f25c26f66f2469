package story

import (
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// InputVersion is the version of the serialized Playthrough. It changes
// when a change to Playthrough makes old files impossible to read as they
// are. Old playthroughs can still be translated by reading them with the old
// structure.
const InputVersion = 1

// Playthrough is everything the player did in one game: where the game
// started and which choice was picked at every step. Given a story, it is
// enough to get to the same session again.
type Playthrough struct {
	InputVersion int64     `yaml:"InputVersion"`
	Id           uuid.UUID `yaml:"Id"`
	StoryTitle   string    `yaml:"StoryTitle"`
	Start        Session   `yaml:"Start"`
	// Choices are indexes into the choices available at each step.
	Choices []int `yaml:"Choices"`
}

func (p Playthrough) Clone() Playthrough {
	p.Start = p.Start.Clone()
	p.Choices = slices.Clone(p.Choices)
	return p
}

func (p *Playthrough) Serialize() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize playthrough: %w", err)
	}
	return data, nil
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	if err = yaml.Unmarshal(data, &p); err != nil {
		return Playthrough{}, fmt.Errorf("failed to deserialize playthrough: %w", err)
	}
	if p.InputVersion != InputVersion {
		return Playthrough{}, fmt.Errorf("can't deserialize this playthrough - "+
			"we are at InputVersion %d and playthrough was generated with "+
			"InputVersion %d", InputVersion, p.InputVersion)
	}
	return p, nil
}

// Replay runs p on a controller with no frontend and returns the controller
// in the state the game was left in. step, if not nil, is called after the
// game starts and after every choice.
func Replay(s *Story, p Playthrough, step func(c *Controller)) (*Controller, error) {
	c := NewController(s, nil)
	c.session = p.Start.Clone()
	c.beginPlaythrough()
	err := c.StartGame()
	if step != nil {
		step(c)
	}
	if err != nil {
		return c, err
	}
	for i, choice := range p.Choices {
		if err = c.Choose(choice); err != nil {
			return c, fmt.Errorf("step %d: %w", i, err)
		}
		if step != nil {
			step(c)
		}
	}
	return c, nil
}
