package story

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const SaveVersion = "1.0"

var (
	ErrBadSaveExtension = errors.New("save file must be .json or .gamesave")
	ErrInvalidSave      = errors.New("invalid save file")
)

// SaveExtensions lists the file extensions Load accepts.
var SaveExtensions = []string{".json", ".gamesave"}

// saveFile is the on-disk layout. Saves are plain JSON so that they can be
// opened and shared outside the game.
type saveFile struct {
	Id           string   `json:"id,omitempty"`
	CurrentScene string   `json:"currentScene"`
	Progress     int64    `json:"progress"`
	PlayerName   string   `json:"playerName"`
	Inventory    []string `json:"inventory"`
	Timestamp    string   `json:"timestamp"`
	Version      string   `json:"version"`
	SceneName    string   `json:"sceneName"`
}

// SaveFileName returns the name under which a save made at t is offered to
// the player.
func SaveFileName(t time.Time) string {
	return fmt.Sprintf("yolka-save-%s.gamesave", t.Format("02-01-2006-15-04"))
}

// EncodeSave writes s as indented JSON. sceneName is the title of the
// current scene, stored only so that a person looking at the file knows
// where the save was made.
func EncodeSave(w io.Writer, s Session, sceneName string) error {
	inventory := s.Inventory
	if inventory == nil {
		inventory = []string{}
	}
	f := saveFile{
		Id:           s.Id.String(),
		CurrentScene: s.CurrentScene,
		Progress:     s.Progress,
		PlayerName:   s.PlayerName,
		Inventory:    inventory,
		Timestamp:    s.Timestamp.UTC().Format(time.RFC3339Nano),
		Version:      SaveVersion,
		SceneName:    sceneName,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	return nil
}

// CheckSaveExtension returns ErrBadSaveExtension unless name ends in one of
// SaveExtensions.
func CheckSaveExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range SaveExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrBadSaveExtension, name)
}

// ValidateSaveData checks the shape of a save before it is decoded: it must
// be an object with a non-empty currentScene, a numeric progress and an
// inventory array. Anything else in the object is ignored.
func ValidateSaveData(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSave, err)
	}
	if raw == nil {
		return fmt.Errorf("%w: not an object", ErrInvalidSave)
	}
	if scene, ok := raw["currentScene"].(string); !ok || scene == "" {
		return fmt.Errorf("%w: missing currentScene", ErrInvalidSave)
	}
	if _, ok := raw["progress"].(float64); !ok {
		return fmt.Errorf("%w: progress is not a number", ErrInvalidSave)
	}
	if _, ok := raw["inventory"].([]any); !ok {
		return fmt.Errorf("%w: inventory is not a list", ErrInvalidSave)
	}
	return nil
}

// DecodeSave reads a save written by EncodeSave, or by hand. Saves without an
// id get a new one. A timestamp that can't be parsed is replaced by now.
func DecodeSave(r io.Reader, now time.Time) (Session, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Session{}, fmt.Errorf("failed to read save: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if err = ValidateSaveData(data); err != nil {
		return Session{}, err
	}

	var f saveFile
	if err = json.Unmarshal(data, &f); err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidSave, err)
	}

	s := Session{
		CurrentScene: f.CurrentScene,
		Progress:     f.Progress,
		PlayerName:   f.PlayerName,
		Inventory:    f.Inventory,
		Timestamp:    now,
	}
	if s.Inventory == nil {
		s.Inventory = []string{}
	}
	if id, err := uuid.Parse(f.Id); err == nil {
		s.Id = id
	} else {
		s.Id = uuid.New()
	}
	if t, err := time.Parse(time.RFC3339Nano, f.Timestamp); err == nil {
		s.Timestamp = t
	}
	return s, nil
}
