// Package config loads display limits, view selection, input policy and
// logging settings from a config file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/apxxxxxxe/contrast/tui"
)

type DisplayConfig struct {
	MaxColors int    `toml:"max_colors" yaml:"max_colors" json:"max_colors"`
	MaxPairs  int    `toml:"max_pairs" yaml:"max_pairs" json:"max_pairs"`
	MaxRows   int    `toml:"max_rows" yaml:"max_rows" json:"max_rows"`
	MaxCols   int    `toml:"max_cols" yaml:"max_cols" json:"max_cols"`
	View      string `toml:"view" yaml:"view" json:"view"`
	Color     string `toml:"color" yaml:"color" json:"color"`
}

// Limits returns the surface limits of the display settings.
func (d DisplayConfig) Limits() tui.Limits {
	return tui.Limits{
		MaxColors: d.MaxColors,
		MaxPairs:  d.MaxPairs,
		MaxRows:   d.MaxRows,
		MaxCols:   d.MaxCols,
	}
}

type InputConfig struct {
	Strict bool `toml:"strict" yaml:"strict" json:"strict"`
}

type LogConfig struct {
	File  string `toml:"file" yaml:"file" json:"file"`
	Level string `toml:"level" yaml:"level" json:"level"`
}

type Config struct {
	Display DisplayConfig `toml:"display" yaml:"display" json:"display"`
	Input   InputConfig   `toml:"input" yaml:"input" json:"input"`
	Log     LogConfig     `toml:"log" yaml:"log" json:"log"`
}

const (
	ViewGrid   = "grid"
	ViewReport = "report"
	ViewTable  = "table"
)

var (
	views      = []string{ViewGrid, ViewReport, ViewTable}
	colorModes = []string{"auto", "always", "never"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// Default returns the settings used when nothing is configured.
func Default() Config {
	limits := tui.DefaultLimits()
	return Config{
		Display: DisplayConfig{
			MaxColors: limits.MaxColors,
			MaxPairs:  limits.MaxPairs,
			MaxRows:   limits.MaxRows,
			MaxCols:   limits.MaxCols,
			View:      ViewGrid,
			Color:     "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate normalizes enumerations and rejects unusable limits.
func (c *Config) Validate() error {
	limits := []struct {
		key string
		v   int
	}{
		{"display.max_colors", c.Display.MaxColors},
		{"display.max_pairs", c.Display.MaxPairs},
		{"display.max_rows", c.Display.MaxRows},
		{"display.max_cols", c.Display.MaxCols},
	}
	for _, l := range limits {
		if l.v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", l.key, l.v)
		}
	}

	var err error
	if c.Display.View, err = oneOf("display.view", c.Display.View, views); err != nil {
		return err
	}
	if c.Display.Color, err = oneOf("display.color", c.Display.Color, colorModes); err != nil {
		return err
	}
	if c.Log.Level, err = oneOf("log.level", c.Log.Level, logLevels); err != nil {
		return err
	}
	return nil
}

func oneOf(key, value string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return value, fmt.Errorf("%s: unknown value %q (want %s)", key, value, strings.Join(allowed, "|"))
}
