// Package prefs persists player preferences across sessions with gdata.
package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "kleinerheld"

const (
	prefsObject   = "prefs"
	prefsProperty = "global"
)

// Prefs is the persisted preference blob.
type Prefs struct {
	Muted bool `yaml:"muted"`
}

// Store loads and saves Prefs. A Store without a gdata manager keeps
// preferences in memory only.
type Store struct {
	manager *gdata.Manager
	prefs   Prefs
}

// Open opens the preference store for appName and loads the saved prefs.
// An unreadable or corrupt blob falls back to defaults and is reported.
func Open(appName string) (*Store, error) {
	if appName == "" {
		appName = AppName
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("prefs: open: %w", err)
	}
	return New(m)
}

// New wraps an existing manager. A nil manager gives a memory-only store.
func New(m *gdata.Manager) (*Store, error) {
	s := &Store{manager: m}
	return s, s.Load()
}

// Load reads the saved prefs, leaving defaults when nothing was saved.
func (s *Store) Load() error {
	s.prefs = Prefs{}
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("prefs: load: %w", err)
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("prefs: decode: %w", err)
	}
	s.prefs = p
	return nil
}

// Save writes the current prefs. No-op for a memory-only store.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}

// Persistent reports whether prefs survive the process.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Muted reports the muted flag.
func (s *Store) Muted() bool {
	return s.prefs.Muted
}

// SetMuted sets and saves the muted flag.
func (s *Store) SetMuted(muted bool) error {
	s.prefs.Muted = muted
	return s.Save()
}

// ToggleMuted flips and saves the muted flag, returning the new value.
func (s *Store) ToggleMuted() (bool, error) {
	err := s.SetMuted(!s.prefs.Muted)
	return s.prefs.Muted, err
}
