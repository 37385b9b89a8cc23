// Package config loads and saves the persistent application
// configuration under ~/.fffish.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// Prediction settings
	Prediction PredictionConfig `json:"prediction"`

	// UI Preferences
	UI UIConfig `json:"ui"`

	// DatabasePath overrides the journal database location.
	// Empty means the default under the app directory.
	DatabasePath string `json:"database_path,omitempty"`
}

// PredictionConfig holds window search settings
type PredictionConfig struct {
	IncludeOngoing bool `json:"include_ongoing"` // Count a window already underway as the next one
	SearchLimit    int  `json:"search_limit"`    // Weather periods scanned per query before giving up
	WindowCount    int  `json:"window_count"`    // Upcoming windows shown in the detail pane
}

// UIConfig holds UI preferences
type UIConfig struct {
	ShowCaught    bool      `json:"show_caught"`
	RefreshSecs   int       `json:"refresh_secs"` // Background recompute interval
	HiddenPatches []float64 `json:"hidden_patches,omitempty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Prediction: PredictionConfig{
			IncludeOngoing: true,
			SearchLimit:    1000,
			WindowCount:    5,
		},
		UI: UIConfig{
			ShowCaught:  true,
			RefreshSecs: 60,
		},
	}
}

// Dir returns the application directory
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".fffish")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(Dir(), "config.json")
}

// DatabaseFile returns the journal database path, honoring the
// configured override.
func (c *Config) DatabaseFile() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	return filepath.Join(Dir(), "fffish.db")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// A corrupt config should never block startup
		return DefaultConfig(), nil
	}

	cfg.normalize()
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// normalize clamps hand-edited values the rest of the app divides or
// loops by.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Prediction.SearchLimit <= 0 {
		c.Prediction.SearchLimit = def.Prediction.SearchLimit
	}
	if c.Prediction.WindowCount <= 0 {
		c.Prediction.WindowCount = def.Prediction.WindowCount
	}
	if c.UI.RefreshSecs <= 0 {
		c.UI.RefreshSecs = def.UI.RefreshSecs
	}
}
