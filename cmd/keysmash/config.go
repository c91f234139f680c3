package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keysmash/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.keysmash/configs/keysmash.yaml and edit it to customize the game.

With --effective, prints the configuration after the config file,
difficulty preset, environment and flags have been applied.

Examples:
  keysmash config > ~/.keysmash/configs/keysmash.yaml
  keysmash config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the default")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fatal(fmt.Errorf("encoding config: %w", err))
	}
	os.Stdout.Write(out)
}
