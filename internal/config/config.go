// Package config loads the settings of the evwin demo from a YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"github.com/tinyrange/evwin/internal/gfx"
)

type Config struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Graphics string `yaml:"graphics"`
	// Display is the X display name. Empty means $DISPLAY.
	Display  string `yaml:"display"`
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Title:    "evwin",
		Width:    800,
		Height:   600,
		Graphics: string(gfx.None),
		LogLevel: "info",
	}
}

// LoadFromPath reads path over the defaults and applies environment
// overrides. A missing file is not an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from EVWIN_* variables that are set.
func (c *Config) ApplyEnv() {
	// env caches the environment on first use.
	env.Load()
	c.Title = env.Str("EVWIN_TITLE", c.Title)
	c.Width = env.Int("EVWIN_WIDTH", c.Width)
	c.Height = env.Int("EVWIN_HEIGHT", c.Height)
	c.Graphics = env.Str("EVWIN_GRAPHICS", c.Graphics)
	c.Display = env.Str("EVWIN_DISPLAY", c.Display)
	c.LogLevel = env.Str("EVWIN_LOG_LEVEL", c.LogLevel)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if _, err := gfx.ParseLoader(c.Graphics); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Loader returns the configured graphics loader.
func (c *Config) Loader() gfx.Loader {
	l, _ := gfx.ParseLoader(c.Graphics)
	return l
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
