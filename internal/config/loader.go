package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.keysmash/configs/keysmash.{yaml,toml} ->
// ./configs/keysmash.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are allowed.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), err
		}
		if err := cfg.Validate(); err != nil {
			return Default(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{}
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates,
			filepath.Join(dir, "keysmash.yaml"),
			filepath.Join(dir, "keysmash.toml"),
		)
	}
	candidates = append(candidates, filepath.Join("configs", "keysmash.yaml"))

	// Broken files on the search path are skipped, not fatal
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Embedded parses the embedded default YAML, falling back to Default.
func Embedded() Config {
	cfg := Default()
	cfg.Levels = nil
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil || cfg.Validate() != nil {
		return Default()
	}
	return cfg
}

// loadFile decodes a YAML or TOML file, chosen by extension, over Default.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := Default()
	// A file that lists levels replaces the whole catalog
	cfg.Levels = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}

	if len(cfg.Levels) == 0 {
		cfg.Levels = Default().Levels
	}
	return cfg, nil
}

// userConfigDir returns ~/.keysmash/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".keysmash", "configs")
}
