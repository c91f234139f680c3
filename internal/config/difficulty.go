package config

import (
	"fmt"

	"github.com/vovakirdan/keysmash/internal/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // first level only, no progression
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Progression.Enabled = false
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Probability = core.ClampF(cfg.Spawn.Probability*2/3, 0, 1)
		cfg.Timing.MaxTickMS = cfg.Timing.MaxTickMS * 4 / 3
		cfg.Progression.IntensifySpeed /= 2
	case DifficultyHard:
		cfg.Spawn.Probability = core.ClampF(cfg.Spawn.Probability*3/2, 0, 1)
		cfg.Timing.MinTickMS = max(cfg.Timing.MinTickMS*3/4, 1)
		cfg.Progression.ForgiveLocked = false
	}
}
