package story

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/quasilyte/gdata/v2"
)

const (
	autosaveObject   = "session"
	autosaveProperty = "current"
)

// Autosave keeps the session between runs, so that "Continue" works after
// the game is closed. The data lives wherever gdata puts app data on the
// platform (local storage in the browser).
//
// A nil manager is allowed. Nothing is persisted then and no errors are
// reported, the game just never offers to continue after a restart.
type Autosave struct {
	manager *gdata.Manager
}

func NewAutosave(manager *gdata.Manager) *Autosave {
	return &Autosave{manager: manager}
}

// OpenAutosave opens the gdata storage for appName. If that fails, the error
// is returned along with an Autosave that works in degraded mode.
func OpenAutosave(appName string) (*Autosave, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewAutosave(nil), fmt.Errorf("failed to open autosave storage: %w", err)
	}
	return NewAutosave(manager), nil
}

func (a *Autosave) Enabled() bool {
	return a != nil && a.manager != nil
}

func (a *Autosave) Store(s Session) error {
	if !a.Enabled() {
		return nil
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err = a.manager.SaveObjectProp(autosaveObject, autosaveProperty, data); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Restore returns the stored session and true, or false if there is none.
func (a *Autosave) Restore() (Session, bool, error) {
	if !a.Enabled() || !a.manager.ObjectPropExists(autosaveObject, autosaveProperty) {
		return Session{}, false, nil
	}
	data, err := a.manager.LoadObjectProp(autosaveObject, autosaveProperty)
	if err != nil {
		return Session{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	// Clear leaves an empty payload behind.
	if len(data) == 0 {
		return Session{}, false, nil
	}
	var s Session
	if err = yaml.Unmarshal(data, &s); err != nil {
		return Session{}, false, fmt.Errorf("failed to parse session: %w", err)
	}
	if s.CurrentScene == "" {
		return Session{}, false, nil
	}
	if s.Inventory == nil {
		s.Inventory = []string{}
	}
	return s, true, nil
}

func (a *Autosave) Clear() error {
	if !a.Enabled() {
		return nil
	}
	if err := a.manager.SaveObjectProp(autosaveObject, autosaveProperty, []byte{}); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
