package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds user defaults loaded from ~/.config/graphops/config.toml.
// Flags always override config values.
type config struct {
	// TagKey is the default keyed-tag key used by tag-driven commands.
	TagKey string `toml:"tagkey"`

	Dot struct {
		// Horizontal makes DOT output flow left to right by default.
		Horizontal bool `toml:"horizontal"`
	} `toml:"dot"`

	Cache struct {
		// Enabled toggles the render cache. Defaults to true.
		Enabled bool `toml:"enabled"`
		// Dir overrides the cache directory. Defaults to
		// ~/.cache/graphops.
		Dir string `toml:"dir"`
		// TTLDays bounds the age of cached artifacts. Defaults to 14.
		TTLDays int `toml:"ttl_days"`
	} `toml:"cache"`
}

// loadConfig reads the user config file, falling back to defaults when it
// is missing or unreadable. Config problems never fail a command.
func loadConfig() config {
	cfg := config{}
	cfg.Cache.Enabled = true
	cfg.Cache.TTLDays = 14

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(home, ".config", "graphops", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	_, _ = toml.DecodeFile(path, &cfg)
	return cfg
}

// cacheDir returns the render cache directory.
func (c config) cacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".graphops-cache"
	}
	return filepath.Join(home, ".cache", "graphops")
}
