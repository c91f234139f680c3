// Package game implements the keysmash simulation: falling columns, the
// session state machine and level progression. It has no terminal, audio or
// clock dependencies of its own; those are injected.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keysmash/internal/board"
	"github.com/vovakirdan/keysmash/internal/config"
	"github.com/vovakirdan/keysmash/internal/core"
	"github.com/vovakirdan/keysmash/internal/level"
)

// State is the session lifecycle state.
type State int

const (
	NotStarted State = iota
	Started
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Started:
		return "started"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Stats counts keystrokes since the last full reset.
type Stats struct {
	Correct   int
	Wrong     int
	StartedAt time.Time
}

// Accuracy returns the share of correct keystrokes in [0, 1].
func (s Stats) Accuracy() float64 {
	total := s.Correct + s.Wrong
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total)
}

// Outcome classifies a keystroke.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // Session not started, or empty input
	OutcomeHit                     // Matched the oldest falling column
	OutcomeMiss                    // Did not match
	OutcomeNoTarget                // Nothing was falling
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeNoTarget:
		return "no_target"
	default:
		return "ignored"
	}
}

// KeyResult describes what a keystroke did.
type KeyResult struct {
	Outcome  Outcome
	Expected rune // Letter of the targeted column, 0 without a target
	Typed    rune // Upper-cased input
	LevelUp  bool
	Level    int // Level number after the keystroke
}

// ToneSink plays feedback tones without blocking.
type ToneSink interface {
	Play(core.Tone)
}

type silentSink struct{}

func (silentSink) Play(core.Tone) {}

// Option configures a Session.
type Option func(*Session)

// WithTones sets the tone sink. The default is silent.
func WithTones(t ToneSink) Option {
	return func(s *Session) {
		if t != nil {
			s.tones = t
		}
	}
}

// WithClock sets the time source used for stats.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session is one player's game: the board, the falling columns, score and
// level. It is not safe for concurrent use; a single loop owns it.
type Session struct {
	cfg     config.Config
	catalog *level.Catalog
	board   *board.Board
	field   Field
	rng     *rand.Rand
	seed    int64
	tones   ToneSink
	now     func() time.Time
	logger  *log.Logger

	state State
	score int
	stats Stats
	tick  uint64

	viewW, viewH int
}

// New creates a session in NotStarted sized for the runtime viewport.
// A zero seed is replaced by the current time.
func New(cfg config.Config, rt core.RuntimeConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		board:   board.New(1, 1),
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		tones:   silentSink{},
		now:     time.Now,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Resize(rt.ScreenW, rt.ScreenH)
	return s, nil
}

// Start handles the start trigger. NotStarted and GameOver restart with a
// full reset, Paused resumes, and Started pauses.
func (s *Session) Start() State {
	switch s.state {
	case NotStarted, GameOver:
		s.reset()
		s.state = Started
		s.logger.Info("game started", "level", s.catalog.Current().Number, "rows", s.board.Rows(), "cols", s.board.Cols())
	case Paused:
		s.state = Started
		s.logger.Debug("game resumed")
	case Started:
		s.state = Paused
		s.logger.Debug("game paused")
	}
	return s.state
}

// Pause moves a running session to Paused.
func (s *Session) Pause() State {
	if s.state == Started {
		s.state = Paused
		s.logger.Debug("game paused")
	}
	return s.state
}

// Hide handles loss of visibility; a running session pauses.
func (s *Session) Hide() State {
	if s.state == Started {
		s.logger.Info("game paused while hidden", "score", s.score)
	}
	return s.Pause()
}

// reset clears everything a new game starts without.
func (s *Session) reset() {
	s.score = 0
	s.tick = 0
	s.catalog.Reset()
	s.field.Clear()
	s.rebuildBoard()
	s.stats = Stats{StartedAt: s.now()}
}

// Keystroke applies one typed character. Only a Started session reacts.
func (s *Session) Keystroke(r rune) KeyResult {
	if s.state != Started || r == 0 || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return KeyResult{Outcome: OutcomeIgnored, Level: s.catalog.Current().Number}
	}

	typed := unicode.ToUpper(r)
	res := KeyResult{Typed: typed}

	target, ok := s.field.Oldest()
	switch {
	case !ok:
		s.stats.Wrong++
		res.Outcome = OutcomeNoTarget
	case target.Char == typed:
		res.Expected = target.Char
		res.Outcome = OutcomeHit
		s.hit(target.Col)
		res.LevelUp = s.maybeAdvance()
	default:
		res.Expected = target.Char
		res.Outcome = OutcomeMiss
		s.stats.Wrong++
		s.tones.Play(s.cfg.FailureTone())
	}

	res.Level = s.catalog.Current().Number
	return res
}

func (s *Session) hit(col int) {
	s.field.Remove(col)
	s.board.ClearColumn(col)
	s.score++
	s.stats.Correct++
	s.tones.Play(s.cfg.SuccessTone())
}

// maybeAdvance moves to the next level once the score reaches the current
// threshold. The score is kept; the board is repainted from the surviving
// columns.
func (s *Session) maybeAdvance() bool {
	if !s.cfg.Progression.Enabled || s.score < s.catalog.Current().Threshold {
		return false
	}

	next := s.catalog.Advance()
	if s.cfg.Progression.ForgiveLocked {
		if c, ok := s.field.ForgiveOldestLocked(); ok {
			s.logger.Debug("locked column forgiven", "col", c.Col, "char", string(c.Char))
		}
	}
	s.board.Reset()
	s.field.Paint(s.board, s.rng, s.decoys())

	s.logger.Info("level up", "level", next.Number, "speed", next.Speed, "threshold", next.Threshold, "score", s.score)
	return true
}

// Resize recomputes the board from a viewport size. A missing viewport is
// ignored. Otherwise the board is rebuilt empty and all columns are dropped;
// score, level and state are kept.
func (s *Session) Resize(viewportW, viewportH int) bool {
	if _, _, ok := board.Dimensions(viewportW, viewportH, s.cfg.Geometry()); !ok {
		return false
	}
	s.viewW, s.viewH = viewportW, viewportH
	s.field.Clear()
	s.rebuildBoard()
	return true
}

func (s *Session) rebuildBoard() {
	rows, cols, ok := board.Dimensions(s.viewW, s.viewH, s.cfg.Geometry())
	if !ok {
		rows, cols = 1, 1
	}
	s.board.Resize(rows, cols)
}

// step runs one tick of the simulation: spawn, advance, then the fill check.
func (s *Session) step() {
	if s.state != Started {
		return
	}
	s.tick++

	if s.rng.Float64() < s.cfg.Spawn.Probability || s.field.UnlockedCount() == 0 {
		s.field.Spawn(s.rng, s.catalog.Current().Letters, s.board.Cols())
	}

	s.field.Advance(s.board, s.rng, s.decoys())

	if s.field.LockedCount() >= s.board.Cols() {
		s.state = GameOver
		s.logger.Info("game over",
			"score", s.score,
			"level", s.catalog.Current().Number,
			"correct", s.stats.Correct,
			"wrong", s.stats.Wrong,
			"elapsed", s.now().Sub(s.stats.StartedAt).Round(time.Second),
		)
	}
}

// decoys returns the letters drawn above leading edges, nil in the clean theme.
func (s *Session) decoys() []rune {
	if s.cfg.Theme != config.ThemeMatrix {
		return nil
	}
	return s.catalog.Current().Letters
}

// TickInterval interpolates between the slowest and fastest tick by the
// current level's speed (0..100), never going below the fastest.
func (s *Session) TickInterval() time.Duration {
	return tickInterval(s.catalog.Current().Speed, s.cfg.MinTick(), s.cfg.MaxTick())
}

func tickInterval(speed float64, minTick, maxTick time.Duration) time.Duration {
	d := maxTick - time.Duration(float64(maxTick-minTick)*speed/100)
	return max(d, minTick)
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the points scored since the last full reset.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level.
func (s *Session) Level() level.Level {
	return s.catalog.Current()
}

// Stats returns the keystroke counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Seed returns the seed of the random source.
func (s *Session) Seed() int64 {
	return s.seed
}

// Theme returns the configured theme.
func (s *Session) Theme() config.Theme {
	return s.cfg.Theme
}

// Board returns the board. Callers must not keep it across resizes.
func (s *Session) Board() *board.Board {
	return s.board
}

// Columns returns the active columns in insertion order.
func (s *Session) Columns() []Column {
	return s.field.Columns()
}
