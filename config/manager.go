package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/zoomlens/zoom"
)

// DefaultFilename is the config file looked up in the working
// directory when no explicit path is given.
const DefaultFilename = "config.json"

// Manager loads, saves and hands out configuration. Not safe for
// concurrent use; the host reloads between ticks.
type Manager struct {
	path string
	cfg  *Config
}

// NewManager creates a manager for the given config path. An empty
// path means DefaultFilename in the working directory.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultFilename
	}
	return &Manager{path: path}
}

// Path returns the config file location, for the file watcher.
func (m *Manager) Path() string { return m.path }

// Config returns the loaded configuration, loading it on first use.
func (m *Manager) Config() *Config {
	if m.cfg == nil {
		if _, err := m.Load(); err != nil {
			log.Printf("[config] load failed, using defaults: %v", err)
			m.cfg = Default()
		}
	}
	return m.cfg
}

// Load reads the config file. A missing file is not an error: defaults
// are created and written so the user has a file to edit.
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		m.cfg = Default()
		if err := m.Save(); err != nil {
			log.Printf("[config] could not write default config: %v", err)
		}
		return m.cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", m.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", m.path, err)
	}
	m.cfg = &cfg
	return m.cfg, nil
}

// Save writes the current configuration back to disk.
func (m *Manager) Save() error {
	if m.cfg == nil {
		return errors.New("no config loaded")
	}

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(m.cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", m.path, err)
	}
	return nil
}

// SetDefaultProfile switches the default profile if it exists.
func (m *Manager) SetDefaultProfile(name string) bool {
	cfg := m.Config()
	if !cfg.HasProfile(name) {
		return false
	}
	cfg.DefaultProfile = name
	return true
}

// AddProfile adds or replaces a profile under its name.
func (m *Manager) AddProfile(p zoom.Profile) {
	cfg := m.Config()
	cfg.Profiles[p.Name] = p
}

// RemoveProfile deletes a profile. The last remaining profile cannot
// be removed; removing the default reassigns it to any survivor.
func (m *Manager) RemoveProfile(name string) bool {
	cfg := m.Config()
	if !cfg.HasProfile(name) || len(cfg.Profiles) <= 1 {
		return false
	}
	delete(cfg.Profiles, name)
	if cfg.DefaultProfile == name {
		for n := range cfg.Profiles {
			cfg.DefaultProfile = n
			break
		}
	}
	return true
}

// SetDisplayOverride records a geometry override for one display.
func (m *Manager) SetDisplayOverride(displayID string, o DisplayOverride) {
	cfg := m.Config()
	if cfg.DisplayOverrides == nil {
		cfg.DisplayOverrides = map[string]DisplayOverride{}
	}
	cfg.DisplayOverrides[displayID] = o
}
