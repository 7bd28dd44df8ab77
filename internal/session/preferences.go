package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"action-tracker/internal/logging"
)

// Preferences is a small file-backed key-value store for local device
// state: the selected profile and one-time UI hints. Persistence is
// fire-and-forget; write failures are logged, never propagated. A failed
// initial read means "no values stored yet".
type Preferences struct {
	path   string
	values map[string]string
}

// OpenPreferences loads the preference file at path, treating a missing
// or unreadable file as empty.
func OpenPreferences(path string) *Preferences {
	prefs := &Preferences{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debugf("preferences: read failed, starting empty: %v\n", err)
		}
		return prefs
	}

	if err := json.Unmarshal(data, &prefs.values); err != nil {
		logging.Debugf("preferences: malformed file, starting empty: %v\n", err)
		prefs.values = make(map[string]string)
	}
	return prefs
}

// Get returns the stored value for key, or nil if none is set.
func (p *Preferences) Get(key string) *string {
	value, ok := p.values[key]
	if !ok {
		return nil
	}
	return &value
}

// Set stores a value for key and persists the store.
func (p *Preferences) Set(key, value string) {
	p.values[key] = value
	p.save()
}

// Remove deletes a key and persists the store.
func (p *Preferences) Remove(key string) {
	delete(p.values, key)
	p.save()
}

func (p *Preferences) save() {
	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		logging.Debugf("preferences: marshal failed: %v\n", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		logging.Debugf("preferences: create dir failed: %v\n", err)
		return
	}
	if err := os.WriteFile(p.path, data, 0644); err != nil {
		logging.Debugf("preferences: write failed: %v\n", err)
	}
}
