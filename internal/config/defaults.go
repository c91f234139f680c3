package config

import (
	_ "embed"

	"github.com/vovakirdan/keysmash/internal/level"
)

//go:embed defaults/keysmash.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the hardcoded default configuration. It mirrors
// defaults/keysmash.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	step := level.DefaultIntensify()

	return Config{
		Theme: ThemeClean,
		Board: BoardConfig{
			CellWidth:    2,
			CellHeight:   1,
			MaxRows:      29,
			MaxCols:      29,
			ReservedRows: 4,
			ReservedCols: 2,
		},
		Timing: TimingConfig{
			MinTickMS:        120,
			MaxTickMS:        300,
			ResizeDebounceMS: 200,
		},
		Spawn: SpawnConfig{
			Probability: 0.15,
		},
		Progression: ProgressionConfig{
			Enabled:            true,
			IntensifySpeed:     step.Speed,
			IntensifyThreshold: step.Threshold,
			ForgiveLocked:      true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
			DecayMS: 1000,
			Success: ToneConfig{Frequency: 440, Waveform: "sine"},
			Failure: ToneConfig{Frequency: 87.31, Waveform: "triangle"},
		},
		Levels: levelConfigs(level.Defaults()),
	}
}

func levelConfigs(levels []level.Level) []LevelConfig {
	out := make([]LevelConfig, len(levels))
	for i, lvl := range levels {
		out[i] = LevelConfig{
			Number:    lvl.Number,
			Letters:   string(lvl.Letters),
			Speed:     lvl.Speed,
			Threshold: lvl.Threshold,
		}
	}
	return out
}
