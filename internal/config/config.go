package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds process-wide settings for the studyweek CLI.
type Config struct {
	DBPath      string
	Seed        int64
	HasSeed     bool // Seed was set explicitly; otherwise the clock seeds placement
	LogUseCases bool
	Color       ColorMode
}

// DefaultConfig returns the configuration used when no env var is set.
// The database lives under ~/.studyweek; an unknown home falls back to the
// working directory.
func DefaultConfig() Config {
	dir := ".studyweek"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".studyweek")
	}
	return Config{
		DBPath: filepath.Join(dir, "studyweek.db"),
		Color:  ColorAuto,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STUDYWEEK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STUDYWEEK_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
			cfg.HasSeed = true
		}
	}
	if v := os.Getenv("STUDYWEEK_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STUDYWEEK_COLOR"); v != "" {
		switch mode := ColorMode(strings.ToLower(v)); mode {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.Color = mode
		}
	}

	return cfg
}

// UseColor resolves the color mode against whether stdout is a terminal.
func (c Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
