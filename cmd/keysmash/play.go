package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/keysmash/internal/audio"
	"github.com/vovakirdan/keysmash/internal/core"
	"github.com/vovakirdan/keysmash/internal/platform/tui"
	"github.com/vovakirdan/keysmash/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  a-z, 0-9     - Type the lowest falling letter
  Enter/Click  - Start, pause, resume, restart after game over
  Esc          - Pause
  Ctrl+C       - Quit

The game pauses when the terminal loses focus.

Difficulty options:
  easy   - Fewer letters, slower ticks
  normal - The configured catalog as is
  hard   - More letters, faster ticks, no forgiveness on level up
  fixed  - No progression, stays at the first level

Examples:
  keysmash play
  keysmash play --difficulty easy
  keysmash play --theme matrix
  keysmash play --config ./my-keysmash.yaml --log-file keysmash.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal(fmt.Errorf("cannot open log file: %w", err))
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fatal(err)
	}

	// Initial size; later changes arrive as window size messages
	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	tones := audio.Open(cfg.Audio, logger)
	defer tones.Close()

	// The game still works without a journal
	journal, err := storage.Open()
	if err != nil {
		logger.Warn("journal unavailable", "err", err)
		journal = nil
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Tones:   tones,
		Journal: journal,
		Logger:  logger,
	})

	if journal != nil {
		journal.Close()
	}

	if runErr != nil {
		fatal(fmt.Errorf("running game: %w", runErr))
	}
}
