package game

import (
	"time"

	"github.com/vovakirdan/keysmash/internal/config"
)

// Snapshot captures everything a renderer needs for one frame, and is
// compared directly in determinism tests.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	Level     int
	Letters   string // Letters of the current level
	Threshold int
	Stats     Stats
	Elapsed   time.Duration
	Rows      int
	Cols      int
	Cells     [][]rune // Copy of the board, row-major
	Columns   []Column
	Theme     config.Theme
}

// Step advances the session by one tick and returns the resulting snapshot.
// Sessions that are not Started are left untouched.
func Step(s *Session) Snapshot {
	s.step()
	return s.Snapshot()
}

// Step is the method form of Step.
func (s *Session) Step() Snapshot {
	return Step(s)
}

// Snapshot returns the current state without advancing.
func (s *Session) Snapshot() Snapshot {
	lvl := s.catalog.Current()

	var elapsed time.Duration
	if !s.stats.StartedAt.IsZero() {
		elapsed = s.now().Sub(s.stats.StartedAt)
	}

	return Snapshot{
		Tick:      s.tick,
		State:     s.state,
		Score:     s.score,
		Level:     lvl.Number,
		Letters:   string(lvl.Letters),
		Threshold: lvl.Threshold,
		Stats:     s.stats,
		Elapsed:   elapsed,
		Rows:      s.board.Rows(),
		Cols:      s.board.Cols(),
		Cells:     s.board.Cells(),
		Columns:   s.field.Columns(),
		Theme:     s.cfg.Theme,
	}
}
