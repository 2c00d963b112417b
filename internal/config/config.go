// Package config handles wisp.toml project configuration: logging
// verbosity, which the CLI applies, and a list of prototype
// extensions, which is parsed but not applied by anything here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents a wisp.toml file.
type Config struct {
	Log       Log      `toml:"log"`
	Prototype Prototype `toml:"prototype"`

	// Dir is the directory containing wisp.toml (set at load time).
	Dir string `toml:"-"`
}

// Log configures the runtime logger.
type Log struct {
	Level string `toml:"level"` // debug, info, warn, error
	JSON  bool   `toml:"json"`
}

// Prototype lists optional built-in method extensions for the
// registry prototypes. The list is only decoded; nothing in this
// repository attaches them.
type Prototype struct {
	Extensions []string `toml:"extensions"`
}

// Load parses a wisp.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "wisp.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return &c, nil
}

// FindAndLoad walks up from startDir looking for a wisp.toml file. It
// returns (nil, nil) if none is found — a missing config file is not
// an error, the CLI just runs with defaults.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(dir, "wisp.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}
