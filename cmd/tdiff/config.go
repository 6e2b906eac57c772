package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
)

// Config is the optional TOML configuration file, loaded with --config.
type Config struct {
	// Context is the default number of context lines for diff output.
	Context int `toml:"context"`
	// Color is "auto", "always", or "never".
	Color string `toml:"color"`
	// Markers overrides the conflict marker lines used by merge.
	Markers MarkerConfig `toml:"markers"`
}

// MarkerConfig names the four conflict bracket lines.
type MarkerConfig struct {
	Ours      string `toml:"ours"`
	Ancestor  string `toml:"ancestor"`
	Separator string `toml:"separator"`
	Theirs    string `toml:"theirs"`
}

func defaultConfig() *Config {
	return &Config{Context: 3, Color: "auto"}
}

// loadConfig reads path into a Config on top of the defaults. An empty
// path returns the defaults untouched.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("load config %s: color must be auto, always, or never, got %q", path, cfg.Color)
	}
	if cfg.Context < 0 {
		return nil, fmt.Errorf("load config %s: context must not be negative", path)
	}
	return cfg, nil
}

// useColor resolves a color mode against the terminal state of stdout.
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}
