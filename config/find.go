package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var configFilenames = []string{
	".contrast.toml",
	".contrast.yaml",
	".contrast.yml",
	".contrast.json",
}

var xdgFilenames = []string{
	"config.toml",
	"config.yaml",
	"config.yml",
	"config.json",
}

// Find locates the config file. It returns the path and where it came from
// ("explicit", "cwd", "xdg", "home"), or an empty path when none exists.
func Find(explicitPath, cwd, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		candidate := explicit
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(cwd, candidate)
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", "", err
		}
		if info.IsDir() {
			return "", "", fmt.Errorf("config %q is a directory", candidate)
		}
		return candidate, "explicit", nil
	}

	if cwd != "" {
		for _, name := range configFilenames {
			if candidate := filepath.Join(cwd, name); fileExists(candidate) {
				return candidate, "cwd", nil
			}
		}
	}
	if xdgHome != "" {
		for _, name := range xdgFilenames {
			if candidate := filepath.Join(xdgHome, "contrast", name); fileExists(candidate) {
				return candidate, "xdg", nil
			}
		}
	}
	if home != "" {
		for _, name := range xdgFilenames {
			if candidate := filepath.Join(home, ".config", "contrast", name); fileExists(candidate) {
				return candidate, "home", nil
			}
		}
	}
	return "", "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
