package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/keysmash/internal/core"
)

// Environment variables that override the loaded configuration.
const (
	EnvTheme  = "KEYSMASH_THEME"
	EnvMute   = "KEYSMASH_MUTE"
	EnvVolume = "KEYSMASH_VOLUME" // percent, 0-100
)

// ApplyEnv applies environment overrides. Unset variables are ignored;
// malformed values return an error and leave the field unchanged.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTheme); ok && v != "" {
		theme, err := ParseTheme(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTheme, err)
		}
		cfg.Theme = theme
	}

	if v, ok := lookup(EnvMute); ok && v != "" {
		mute, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvMute, err)
		}
		if mute {
			cfg.Audio.Enabled = false
		}
	}

	if v, ok := lookup(EnvVolume); ok && v != "" {
		pct, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvVolume, err)
		}
		cfg.Audio.Volume = core.ClampF(float64(pct)/100, 0, 1)
	}

	return nil
}
