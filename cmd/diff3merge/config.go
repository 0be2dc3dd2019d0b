package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds diff3merge's user settings, read from a TOML file the
// way the teacher repository shapes its own repo-local config
// (pkg/repo/config.go), but for user-global preferences rather than
// per-repository state.
type Config struct {
	LineSeparator string      `toml:"line_separator"`
	Markers       MarkerConf  `toml:"markers"`
	Sign          SignConf    `toml:"sign"`
	History       HistoryConf `toml:"history"`
}

// MarkerConf names the three sides shown in a conflict-marker block.
type MarkerConf struct {
	Ours   string `toml:"ours"`
	Base   string `toml:"base"`
	Theirs string `toml:"theirs"`
}

// SignConf controls the `verify` command's signing key.
type SignConf struct {
	KeyPath string `toml:"key_path"`
}

// HistoryConf controls where the `history` command persists past
// merge results.
type HistoryConf struct {
	Dir string `toml:"dir"`
}

// defaultConfig returns the built-in defaults applied when no config
// file exists or a field is left unset.
func defaultConfig() *Config {
	return &Config{
		LineSeparator: "\n",
		Markers:       MarkerConf{Ours: "ours", Base: "base", Theirs: "theirs"},
		History:       HistoryConf{Dir: ".diff3merge/history"},
	}
}

// LoadConfig reads path (or ~/.diff3mergerc.toml if path is empty) and
// overlays it onto the defaults. A missing config file is not an
// error: the defaults are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".diff3mergerc.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.LineSeparator == "" {
		cfg.LineSeparator = "\n"
	}
	if cfg.History.Dir == "" {
		cfg.History.Dir = ".diff3merge/history"
	}
	return cfg, nil
}

// Separator returns the configured line separator.
func (c *Config) Separator() string {
	if c == nil || c.LineSeparator == "" {
		return "\n"
	}
	return c.LineSeparator
}
