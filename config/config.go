// Package config owns the on-disk configuration: named zoom profiles,
// the remote-control server settings, and per-display overrides, all
// stored as JSON. User-scope preferences (last profile, window state)
// are persisted separately through gdata, see prefs.go.
package config

import (
	"encoding/json"

	"github.com/automoto/zoomlens/zoom"
)

const Version = "2.0.0"

// ServerConfig configures the remote-control listeners.
type ServerConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`

	// Legacy UDP listener accepting "x y" datagrams.
	UDPEnabled bool `json:"udp_enabled"`
	UDPPort    int  `json:"udp_port"`
}

// DisplayOverride adjusts the detected geometry of one display, for
// setups where automatic detection reports the wrong scale or origin.
type DisplayOverride struct {
	ScaleX float64 `json:"scale_x,omitempty"`
	ScaleY float64 `json:"scale_y,omitempty"`
	X      *int    `json:"x,omitempty"`
	Y      *int    `json:"y,omitempty"`
}

// Config is the root configuration object.
type Config struct {
	Version          string                     `json:"version"`
	DefaultProfile   string                     `json:"default_profile"`
	Profiles         map[string]zoom.Profile    `json:"profiles"`
	Server           ServerConfig               `json:"websocket"`
	DisplayOverrides map[string]DisplayOverride `json:"display_overrides,omitempty"`
	DebugLogging     bool                       `json:"debug_logging"`
}

// Default returns the configuration written on first run: three
// profiles covering everyday use, remote control disabled.
func Default() *Config {
	standard := zoom.DefaultProfile()

	presentation := zoom.DefaultProfile()
	presentation.Name = "presentation"
	presentation.ZoomFactor = 3.0
	presentation.ZoomSpeed = 0.1
	presentation.FollowSpeed = 0.3
	presentation.FollowBorder = 15

	quick := zoom.DefaultProfile()
	quick.Name = "quick"
	quick.ZoomFactor = 2.5
	quick.ZoomSpeed = 0.15
	quick.FollowSpeed = 0.4
	quick.FollowBorder = 10
	quick.Easing = "ease_out"
	quick.FollowOutsideBounds = true

	return &Config{
		Version:        Version,
		DefaultProfile: "standard",
		Profiles: map[string]zoom.Profile{
			"standard":     standard,
			"presentation": presentation,
			"quick":        quick,
		},
		Server: ServerConfig{Port: 8765, UDPPort: 12345},
	}
}

// Profile returns the named profile, falling back to the default
// profile and then to any available one, so a stale name in prefs or a
// remote command never leaves the engine without tuning.
func (c *Config) Profile(name string) zoom.Profile {
	if name == "" {
		name = c.DefaultProfile
	}
	if p, ok := c.Profiles[name]; ok {
		p.Name = name
		return p
	}
	if p, ok := c.Profiles[c.DefaultProfile]; ok {
		p.Name = c.DefaultProfile
		return p
	}
	for n, p := range c.Profiles {
		p.Name = n
		return p
	}
	return zoom.DefaultProfile()
}

// HasProfile reports whether a profile with the given name exists.
func (c *Config) HasProfile(name string) bool {
	_, ok := c.Profiles[name]
	return ok
}

// ProfileNames returns the configured profile names.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

// UnmarshalJSON fills profile names from their map keys and guarantees
// at least one profile exists.
func (c *Config) UnmarshalJSON(data []byte) error {
	type alias Config
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = Config(a)

	for name, p := range c.Profiles {
		p.Name = name
		c.Profiles[name] = p
	}
	if len(c.Profiles) == 0 {
		c.Profiles = map[string]zoom.Profile{"standard": zoom.DefaultProfile()}
	}
	if c.DefaultProfile == "" {
		c.DefaultProfile = "standard"
	}
	return nil
}
