package story

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Session is everything that changes while the player goes through the
// story. It is replaced as a whole when a game starts or is loaded and saved
// as a whole.
type Session struct {
	Id           uuid.UUID `yaml:"Id"`
	CurrentScene string    `yaml:"CurrentScene"`
	Progress     int64     `yaml:"Progress"`
	PlayerName   string    `yaml:"PlayerName"`
	Inventory    []string  `yaml:"Inventory"`
	Timestamp    time.Time `yaml:"Timestamp"`
}

func NewSession(start string, playerName string, now time.Time) Session {
	return Session{
		Id:           uuid.New(),
		CurrentScene: start,
		PlayerName:   playerName,
		Inventory:    []string{},
		Timestamp:    now,
	}
}

func (s Session) Clone() Session {
	s.Inventory = slices.Clone(s.Inventory)
	if s.Inventory == nil {
		s.Inventory = []string{}
	}
	return s
}

func (s *Session) Has(item string) bool {
	return slices.Contains(s.Inventory, item)
}

func (s *Session) HasAll(items []string) bool {
	for _, item := range items {
		if !s.Has(item) {
			return false
		}
	}
	return true
}

// Give adds items at the end of the inventory, skipping the ones already
// there. The inventory keeps the order in which items were found.
func (s *Session) Give(items ...string) {
	for _, item := range items {
		if item != "" && !s.Has(item) {
			s.Inventory = append(s.Inventory, item)
		}
	}
}

func (s *Session) Take(items ...string) {
	s.Inventory = slices.DeleteFunc(s.Inventory, func(item string) bool {
		return slices.Contains(items, item)
	})
}
