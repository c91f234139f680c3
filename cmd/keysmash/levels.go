package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows the levels of the resolved configuration: the letters in play,
the speed (0-100, higher ticks faster) and the cumulative score needed to
advance. After the last level the catalog keeps intensifying.

Examples:
  keysmash levels
  keysmash levels --difficulty hard
  keysmash levels --config ./keysmash.toml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		fatal(err)
	}
	levels := catalog.Levels()

	// Calculate column widths
	maxLetters := len("Letters")
	for _, l := range levels {
		maxLetters = max(maxLetters, len(l.Letters))
	}

	fmt.Println(titleStyle.Render("Levels"))
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-5s  %-*s  %5s  %9s", "Level", maxLetters, "Letters", "Speed", "Threshold")))

	for _, l := range levels {
		fmt.Printf("  %-5d  %-*s  %5.0f  %9d\n", l.Number, maxLetters, string(l.Letters), l.Speed, l.Threshold)
	}

	fmt.Println()
	if !cfg.Progression.Enabled {
		fmt.Println(noteStyle.Render("  Progression disabled: the game stays at the first level."))
		return
	}
	fmt.Println(noteStyle.Render(fmt.Sprintf("  After level %d: speed +%.0f and threshold +%d per level.",
		levels[len(levels)-1].Number, cfg.Progression.IntensifySpeed, cfg.Progression.IntensifyThreshold)))
}
