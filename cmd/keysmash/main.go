// keysmash is a terminal typing game: letters fall down the columns of a
// grid and you type them before they land.
//
// Usage:
//
//	keysmash play              - Play in the terminal
//	keysmash levels            - List the level catalog
//	keysmash simulate          - Run seeded games with a scripted typist
//	keysmash config            - Print the default configuration
//
// Global flags:
//
//	--config <path>       - Config file (.yaml or .toml)
//	--difficulty <preset> - easy, normal, hard, fixed
//	--theme <name>        - clean or matrix
//	--seed <value>        - RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/keysmash/internal/config"
)

// envLogLevel sets the log level when --log-level is not given.
const envLogLevel = "KEYSMASH_LOG_LEVEL"

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagSeed       int64
	flagLogLevel   string
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keysmash",
	Short: "keysmash - type the falling letters",
	Long: `keysmash is a typing game for the terminal. Letters fall down the
columns of a grid; type the lowest one to clear its column. A column that
reaches the bottom locks, and the game ends when every column is locked.

Available commands:
  play      - Play in the terminal
  levels    - List the level catalog
  simulate  - Run seeded games with a scripted typist
  config    - Print the default configuration

Examples:
  keysmash play
  keysmash play --difficulty hard --theme matrix
  keysmash levels --config ./keysmash.toml
  keysmash simulate --seed 42 --accuracy 0.8`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Board theme: clean, matrix (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration: file or search path, then the
// difficulty preset, then environment overrides, then --theme.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if flagTheme != "" {
		theme, err := config.ParseTheme(strings.ToLower(flagTheme))
		if err != nil {
			return cfg, err
		}
		cfg.Theme = theme
	}

	return cfg, cfg.Validate()
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	name := flagLogLevel
	if name == "" {
		name = os.Getenv(envLogLevel)
	}

	level := log.InfoLevel
	if name != "" {
		parsed, err := log.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", name, err)
		}
		level = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "keysmash",
		Level:           level,
	}), nil
}

// fatal prints err and exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
