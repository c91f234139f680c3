package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keysmash/internal/bot"
	"github.com/vovakirdan/keysmash/internal/config"
	"github.com/vovakirdan/keysmash/internal/core"
	"github.com/vovakirdan/keysmash/internal/game"
	"github.com/vovakirdan/keysmash/internal/storage"
)

var (
	flagRuns     int
	flagAccuracy float64
	flagEvery    int
	flagMaxTicks int
	flagWidth    int
	flagHeight   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run seeded games with a scripted typist",
	Long: `Plays games without a terminal. A scripted typist presses a key every
few ticks, aiming at the lowest falling letter and missing at the given
rate. Time is simulated, so runs finish immediately. Every keystroke is
journaled and the summary shows per-run results and the weakest letters.

The same --seed, config and typist flags always produce the same games.

Examples:
  keysmash simulate --seed 42
  keysmash simulate --seed 42 --runs 5 --accuracy 0.7 --every 2
  keysmash simulate --difficulty hard --width 120 --height 40`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of games to play")
	simulateCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.9, "Chance that a keystroke hits, 0-1")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 3, "Ticks between keystrokes")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "Stop a game after this many ticks (0 = until game over)")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Simulated viewport width")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Simulated viewport height")
}

// simulated is one finished game.
type simulated struct {
	runID  int64
	result bot.Result
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fatal(err)
	}
	if flagRuns < 1 {
		fatal(fmt.Errorf("--runs must be at least 1"))
	}

	journal, err := storage.Open()
	if err != nil {
		fatal(err)
	}
	defer journal.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	games := make([]simulated, 0, flagRuns)
	for i := range flagRuns {
		g, err := simulateOne(cfg, seed+int64(i), journal)
		if err != nil {
			fatal(err)
		}
		logger.Debug("simulated game", "run", g.runID, "ticks", g.result.Ticks, "score", g.result.Score)
		games = append(games, g)
	}

	if err := printSummary(journal, games); err != nil {
		fatal(err)
	}
}

// simulateOne plays one journaled game.
func simulateOne(cfg config.Config, seed int64, journal *storage.Store) (simulated, error) {
	clock := bot.NewClock(time.Now())
	s, err := game.New(cfg,
		core.RuntimeConfig{ScreenW: flagWidth, ScreenH: flagHeight, Seed: seed},
		game.WithClock(clock.Now),
	)
	if err != nil {
		return simulated{}, err
	}

	runID, err := journal.BeginRun(s.Seed(), clock.Now())
	if err != nil {
		return simulated{}, err
	}

	var recordErr error
	res := bot.Run(s, bot.NewTypist(seed, flagAccuracy, flagEvery), bot.Options{
		MaxTicks: flagMaxTicks,
		Clock:    clock,
		OnKey: func(k game.KeyResult) {
			if recordErr != nil {
				return
			}
			recordErr = journal.RecordKeystroke(runID, storage.Keystroke{
				Expected: k.Expected,
				Typed:    k.Typed,
				Outcome:  k.Outcome.String(),
				Level:    k.Level,
				At:       clock.Now(),
			})
		},
	})
	if recordErr != nil {
		return simulated{}, recordErr
	}

	if err := journal.EndRun(runID, res.Score, res.Level, clock.Now()); err != nil {
		return simulated{}, err
	}
	return simulated{runID: runID, result: res}, nil
}

func printSummary(journal *storage.Store, games []simulated) error {
	fmt.Println(titleStyle.Render("Simulation"))
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-3s  %-20s  %6s  %5s  %5s  %8s  %6s  %-9s  %s",
		"Run", "Seed", "Ticks", "Score", "Level", "Accuracy", "Time", "Result", "Weakest")))

	for _, g := range games {
		run, err := journal.Run(g.runID)
		if err != nil {
			return err
		}
		weak, err := journal.WeakestLetters(g.runID, 3)
		if err != nil {
			return err
		}

		result := "stopped"
		if g.result.GameOver {
			result = "game over"
		}
		fmt.Printf("  %-3d  %-20d  %6d  %5d  %5d  %7.1f%%  %6s  %-9s  %s\n",
			run.ID, run.Seed, g.result.Ticks, run.Score, run.Level,
			run.Accuracy()*100, formatDuration(run.Duration()), result, string(weak))
	}

	weak, err := journal.WeakestLetters(0, 5)
	if err != nil {
		return err
	}
	if len(games) > 1 && len(weak) > 0 {
		fmt.Println()
		fmt.Println(noteStyle.Render("  Weakest overall: " + string(weak)))
	}
	return nil
}

// formatDuration renders d as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
