package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keysmash/internal/config"
)

// resetFlags restores global flags after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagTheme, flagLogLevel = "", "", "", ""
	})
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvMute, "true")

	flagDifficulty = "fixed"
	flagTheme = "Matrix"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Theme != config.ThemeMatrix {
		t.Errorf("theme = %q, expected matrix", cfg.Theme)
	}
	if cfg.Progression.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if cfg.Audio.Enabled {
		t.Error("KEYSMASH_MUTE should disable audio")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{"missing file", func() { flagConfig = "does-not-exist.yaml" }},
		{"unknown preset", func() { flagDifficulty = "insane" }},
		{"unknown theme", func() { flagTheme = "neon" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags(t)
			t.Setenv("HOME", t.TempDir())
			t.Chdir(t.TempDir())
			tc.setup()

			if _, err := loadConfig(); err == nil {
				t.Error("loadConfig() succeeded, expected an error")
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	resetFlags(t)
	t.Setenv(envLogLevel, "debug")

	logger, err := newLogger(io.Discard)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level from env = %v, expected debug", logger.GetLevel())
	}

	flagLogLevel = "warn"
	logger, _ = newLogger(io.Discard)
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("flag level = %v, expected warn", logger.GetLevel())
	}

	flagLogLevel = "loud"
	if _, err := newLogger(io.Discard); err == nil {
		t.Error("newLogger() accepted an invalid level")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{95 * time.Second, "1:35"},
		{10*time.Minute + 1400*time.Millisecond, "10:01"},
	}

	for _, tc := range tests {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}
