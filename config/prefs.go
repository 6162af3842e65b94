package config

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// Prefs are user-scope preferences stored outside the config file, in
// the platform's app-data directory. Losing them is harmless, so every
// failure here degrades to defaults with a logged warning.
type Prefs struct {
	Profile        string `json:"profile"`
	WindowWidth    int    `json:"windowWidth"`
	WindowHeight   int    `json:"windowHeight"`
	OverlayEnabled bool   `json:"overlayEnabled"`
}

// DefaultPrefs returns the preferences used before anything was saved.
func DefaultPrefs() *Prefs {
	return &Prefs{WindowWidth: 1280, WindowHeight: 720, OverlayEnabled: true}
}

var gdataManager *gdata.Manager

// InitPrefs opens the gdata store. Call once at startup; when it fails
// the load/save helpers become no-ops.
func InitPrefs() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "zoomlens",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize preferences store: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadPrefs reads saved preferences, returning defaults when nothing
// was stored or the store is unavailable.
func LoadPrefs() *Prefs {
	if gdataManager == nil {
		return DefaultPrefs()
	}

	data, err := gdataManager.LoadItem("prefs")
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return DefaultPrefs()
	}
	if len(data) == 0 {
		return DefaultPrefs()
	}

	prefs := DefaultPrefs()
	if err := json.Unmarshal(data, prefs); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return DefaultPrefs()
	}
	return prefs
}

// SavePrefs persists preferences, logging and swallowing failures.
func SavePrefs(p *Prefs) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("prefs", data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}
