// Package config provides YAML/TOML configuration loading, difficulty
// presets and environment overrides for keysmash.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/keysmash/internal/board"
	"github.com/vovakirdan/keysmash/internal/core"
	"github.com/vovakirdan/keysmash/internal/level"
)

// Config contains all tunables of the game.
type Config struct {
	Theme       Theme             `yaml:"theme" toml:"theme"`
	Board       BoardConfig       `yaml:"board" toml:"board"`
	Timing      TimingConfig      `yaml:"timing" toml:"timing"`
	Spawn       SpawnConfig       `yaml:"spawn" toml:"spawn"`
	Progression ProgressionConfig `yaml:"progression" toml:"progression"`
	Audio       AudioConfig       `yaml:"audio" toml:"audio"`
	Levels      []LevelConfig     `yaml:"levels" toml:"levels"`
}

// BoardConfig maps the viewport onto the board grid.
type BoardConfig struct {
	CellWidth    int `yaml:"cell_width" toml:"cell_width"`
	CellHeight   int `yaml:"cell_height" toml:"cell_height"`
	MaxRows      int `yaml:"max_rows" toml:"max_rows"`
	MaxCols      int `yaml:"max_cols" toml:"max_cols"`
	ReservedRows int `yaml:"reserved_rows" toml:"reserved_rows"` // frame + HUD
	ReservedCols int `yaml:"reserved_cols" toml:"reserved_cols"` // frame
}

// TimingConfig defines the tick interval range and the resize debounce.
type TimingConfig struct {
	MinTickMS        int `yaml:"min_tick_ms" toml:"min_tick_ms"`
	MaxTickMS        int `yaml:"max_tick_ms" toml:"max_tick_ms"`
	ResizeDebounceMS int `yaml:"resize_debounce_ms" toml:"resize_debounce_ms"`
}

// SpawnConfig defines how often new columns appear.
type SpawnConfig struct {
	Probability float64 `yaml:"probability" toml:"probability"` // per tick, 0..1
}

// ProgressionConfig defines level advancement.
type ProgressionConfig struct {
	Enabled            bool    `yaml:"enabled" toml:"enabled"`
	IntensifySpeed     float64 `yaml:"intensify_speed" toml:"intensify_speed"`
	IntensifyThreshold int     `yaml:"intensify_threshold" toml:"intensify_threshold"`
	ForgiveLocked      bool    `yaml:"forgive_locked" toml:"forgive_locked"` // drop the oldest locked column on level up
}

// AudioConfig defines the feedback tones.
type AudioConfig struct {
	Enabled bool       `yaml:"enabled" toml:"enabled"`
	Volume  float64    `yaml:"volume" toml:"volume"`     // 0..1
	DecayMS int        `yaml:"decay_ms" toml:"decay_ms"` // time for a tone to fade out
	Success ToneConfig `yaml:"success" toml:"success"`
	Failure ToneConfig `yaml:"failure" toml:"failure"`
}

// ToneConfig is a frequency/waveform pair.
type ToneConfig struct {
	Frequency float64 `yaml:"frequency" toml:"frequency"`
	Waveform  string  `yaml:"waveform" toml:"waveform"`
}

// LevelConfig is one entry of the level catalog.
type LevelConfig struct {
	Number    int     `yaml:"number" toml:"number"`
	Letters   string  `yaml:"letters" toml:"letters"`
	Speed     float64 `yaml:"speed" toml:"speed"`
	Threshold int     `yaml:"threshold" toml:"threshold"`
}

// Theme is the visual mode of the board.
type Theme string

const (
	ThemeClean  Theme = "clean"
	ThemeMatrix Theme = "matrix" // rows above a column's leading edge show decoy letters
)

// ParseTheme validates a theme name. Empty means clean.
func ParseTheme(name string) (Theme, error) {
	switch Theme(name) {
	case ThemeClean, "":
		return ThemeClean, nil
	case ThemeMatrix:
		return ThemeMatrix, nil
	default:
		return ThemeClean, fmt.Errorf("config: unknown theme %q (want clean or matrix)", name)
	}
}

// Geometry returns the board geometry described by the config.
func (c Config) Geometry() board.Geometry {
	return board.Geometry{
		CellW:        c.Board.CellWidth,
		CellH:        c.Board.CellHeight,
		MaxRows:      c.Board.MaxRows,
		MaxCols:      c.Board.MaxCols,
		ReservedRows: c.Board.ReservedRows,
		ReservedCols: c.Board.ReservedCols,
	}
}

// MinTick returns the fastest tick interval.
func (c Config) MinTick() time.Duration {
	return time.Duration(c.Timing.MinTickMS) * time.Millisecond
}

// MaxTick returns the slowest tick interval.
func (c Config) MaxTick() time.Duration {
	return time.Duration(c.Timing.MaxTickMS) * time.Millisecond
}

// ResizeDebounce returns the delay used to coalesce resize bursts.
func (c Config) ResizeDebounce() time.Duration {
	return time.Duration(c.Timing.ResizeDebounceMS) * time.Millisecond
}

// Catalog builds the level catalog from the configured levels.
func (c Config) Catalog() (*level.Catalog, error) {
	levels := make([]level.Level, len(c.Levels))
	for i, lc := range c.Levels {
		levels[i] = level.Level{
			Number:    lc.Number,
			Letters:   []rune(lc.Letters),
			Speed:     lc.Speed,
			Threshold: lc.Threshold,
		}
	}

	catalog, err := level.New(levels, level.Intensify{
		Speed:     c.Progression.IntensifySpeed,
		Threshold: c.Progression.IntensifyThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("config: invalid levels: %w", err)
	}
	return catalog, nil
}

// SuccessTone returns the tone played on a correct keystroke.
func (c Config) SuccessTone() core.Tone {
	return toneOf(c.Audio.Success)
}

// FailureTone returns the tone played on a wrong keystroke.
func (c Config) FailureTone() core.Tone {
	return toneOf(c.Audio.Failure)
}

func toneOf(tc ToneConfig) core.Tone {
	// Validate rejects unknown waveforms, so the error is unreachable here.
	wf, _ := core.ParseWaveform(tc.Waveform)
	return core.Tone{Frequency: tc.Frequency, Waveform: wf}
}

// Validate checks value ranges and the level catalog.
func (c Config) Validate() error {
	if _, err := ParseTheme(string(c.Theme)); err != nil {
		return err
	}
	if c.Board.CellWidth < 1 || c.Board.CellHeight < 1 {
		return fmt.Errorf("config: board cell size must be >= 1, got %dx%d", c.Board.CellWidth, c.Board.CellHeight)
	}
	if c.Board.MaxRows < 0 || c.Board.MaxCols < 0 || c.Board.ReservedRows < 0 || c.Board.ReservedCols < 0 {
		return fmt.Errorf("config: board limits must not be negative")
	}
	if c.Timing.MinTickMS < 1 || c.Timing.MaxTickMS < c.Timing.MinTickMS {
		return fmt.Errorf("config: tick range must satisfy 1 <= min <= max, got %d..%d", c.Timing.MinTickMS, c.Timing.MaxTickMS)
	}
	if c.Timing.ResizeDebounceMS < 0 {
		return fmt.Errorf("config: resize debounce must not be negative")
	}
	if c.Spawn.Probability < 0 || c.Spawn.Probability > 1 {
		return fmt.Errorf("config: spawn probability must be in [0, 1], got %.2f", c.Spawn.Probability)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume must be in [0, 1], got %.2f", c.Audio.Volume)
	}
	for name, tc := range map[string]ToneConfig{"success": c.Audio.Success, "failure": c.Audio.Failure} {
		if tc.Frequency <= 0 {
			return fmt.Errorf("config: %s tone frequency must be positive", name)
		}
		if _, err := core.ParseWaveform(tc.Waveform); err != nil {
			return fmt.Errorf("config: %s tone: %w", name, err)
		}
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}
