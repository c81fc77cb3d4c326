package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalFile is the per-directory config name checked before the user config.
const LocalFile = "flicks.toml"

// xdgDir resolves an XDG base directory for flicks, falling back to the
// given home-relative location and then to fallback when there is no home.
func xdgDir(env string, homeRel []string, fallback string) string {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fallback
		}
		base = filepath.Join(append([]string{home}, homeRel...)...)
	}
	return filepath.Join(base, "flicks")
}

// DataDir holds the database and log file.
func DataDir() string {
	return xdgDir("XDG_DATA_HOME", []string{".local", "share"}, "./data")
}

// DefaultPath is where config init writes and where the user config is read.
func DefaultPath() string {
	dir := xdgDir("XDG_CONFIG_HOME", []string{".config"}, ".")
	if dir == "." {
		return "./" + LocalFile
	}
	return filepath.Join(dir, "config.toml")
}

// Discover finds the config file in order: $FLICKS_CONFIG, ./flicks.toml,
// then $XDG_CONFIG_HOME/flicks/config.toml. A missing file is not fatal to
// callers using LoadOrDefault.
func Discover() (string, error) {
	if envPath := os.Getenv("FLICKS_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("FLICKS_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{LocalFile, DefaultPath()}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
