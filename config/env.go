package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ApplyEnv overrides cfg from CONTRAST_* variables. All malformed values
// are reported together.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	var errs []error

	setString := func(target *string, key string) {
		if raw := strings.TrimSpace(getenv(key)); raw != "" {
			*target = raw
		}
	}
	setInt := func(target *int, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			errs = append(errs, fmt.Errorf("%s: want a positive integer, got %q", key, raw))
			return
		}
		*target = v
	}
	setBool := func(target *bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: want a boolean, got %q", key, raw))
			return
		}
		*target = v
	}

	setInt(&cfg.Display.MaxColors, "CONTRAST_MAX_COLORS")
	setInt(&cfg.Display.MaxPairs, "CONTRAST_MAX_PAIRS")
	setInt(&cfg.Display.MaxRows, "CONTRAST_MAX_ROWS")
	setInt(&cfg.Display.MaxCols, "CONTRAST_MAX_COLS")
	setString(&cfg.Display.View, "CONTRAST_VIEW")
	setString(&cfg.Display.Color, "CONTRAST_COLOR")
	setBool(&cfg.Input.Strict, "CONTRAST_STRICT")
	setString(&cfg.Log.File, "CONTRAST_LOG_FILE")
	setString(&cfg.Log.Level, "CONTRAST_LOG_LEVEL")

	return errors.Join(errs...)
}
