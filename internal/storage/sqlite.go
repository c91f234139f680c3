// Package storage provides an in-memory SQLite journal of the runs and
// keystrokes of one process. Nothing is written to disk; the journal feeds
// the game-over summary and the simulate report.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// Keystroke is one journaled keystroke.
type Keystroke struct {
	Expected rune   // 0 when nothing was falling
	Typed    rune
	Outcome  string // hit, miss or no_target
	Level    int
	At       time.Time
}

// Run summarizes one game from start trigger to game over.
type Run struct {
	ID        int64
	Seed      int64
	Score     int
	Level     int
	Correct   int
	Wrong     int
	StartedAt time.Time
	EndedAt   time.Time // Zero while the run is in progress
}

// Duration returns how long the run lasted, zero while in progress.
func (r Run) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Accuracy returns the share of correct keystrokes in [0, 1].
func (r Run) Accuracy() float64 {
	total := r.Correct + r.Wrong
	if total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(total)
}

// LetterStats aggregates keystrokes aimed at one letter.
type LetterStats struct {
	Letter  rune
	Correct int
	Missed  int
}

// Accuracy returns the share of correct keystrokes for the letter.
func (l LetterStats) Accuracy() float64 {
	total := l.Correct + l.Missed
	if total == 0 {
		return 1
	}
	return float64(l.Correct) / float64(total)
}

// ErrNoRun is returned for an unknown run ID.
var ErrNoRun = errors.New("storage: no such run")

// Open creates an empty in-memory journal and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the journal schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER,
			score INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS keystrokes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			expected TEXT NOT NULL,
			typed TEXT NOT NULL,
			outcome TEXT NOT NULL,
			level INTEGER NOT NULL,
			at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_keystrokes_run ON keystrokes(run_id);
		CREATE INDEX IF NOT EXISTS idx_keystrokes_expected ON keystrokes(run_id, expected);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BeginRun starts a new run and returns its ID.
func (s *Store) BeginRun(seed int64, startedAt time.Time) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (seed, started_at) VALUES (?, ?)",
		seed, startedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordKeystroke appends a keystroke to a run.
func (s *Store) RecordKeystroke(runID int64, k Keystroke) error {
	_, err := s.db.Exec(
		`INSERT INTO keystrokes (run_id, expected, typed, outcome, level, at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, runeText(k.Expected), runeText(k.Typed), k.Outcome, k.Level, k.At.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record keystroke: %w", err)
	}
	return nil
}

// EndRun stores the final score and level of a run.
func (s *Store) EndRun(runID int64, score, level int, endedAt time.Time) error {
	result, err := s.db.Exec(
		"UPDATE runs SET score = ?, level = ?, ended_at = ? WHERE id = ?",
		score, level, endedAt.UnixNano(), runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end run: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrNoRun, runID)
	}
	return nil
}

// Run returns the summary of one run.
func (s *Store) Run(runID int64) (Run, error) {
	runs, err := s.queryRuns("WHERE r.id = ?", runID)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, fmt.Errorf("%w: %d", ErrNoRun, runID)
	}
	return runs[0], nil
}

// Runs returns every run in start order.
func (s *Store) Runs() ([]Run, error) {
	return s.queryRuns("")
}

func (s *Store) queryRuns(where string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT r.id, r.seed, r.score, r.level, r.started_at, r.ended_at,
		        COALESCE(SUM(k.outcome = 'hit'), 0),
		        COALESCE(SUM(k.outcome != 'hit'), 0)
		 FROM runs r
		 LEFT JOIN keystrokes k ON k.run_id = r.id
		 `+where+`
		 GROUP BY r.id
		 ORDER BY r.id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt int64
		var endedAt sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Seed, &r.Score, &r.Level, &startedAt, &endedAt, &r.Correct, &r.Wrong); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = time.Unix(0, startedAt)
		if endedAt.Valid {
			r.EndedAt = time.Unix(0, endedAt.Int64)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// LetterStats aggregates keystrokes per expected letter. A runID of 0
// aggregates every run. Keystrokes without a target are not attributed.
func (s *Store) LetterStats(runID int64) ([]LetterStats, error) {
	rows, err := s.db.Query(
		`SELECT expected,
		        SUM(outcome = 'hit'),
		        SUM(outcome != 'hit')
		 FROM keystrokes
		 WHERE expected != '' AND (? = 0 OR run_id = ?)
		 GROUP BY expected
		 ORDER BY expected`,
		runID, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query letter stats: %w", err)
	}
	defer rows.Close()

	var stats []LetterStats
	for rows.Next() {
		var letter string
		var ls LetterStats
		if err := rows.Scan(&letter, &ls.Correct, &ls.Missed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		for _, r := range letter {
			ls.Letter = r
			break
		}
		stats = append(stats, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// WeakestLetters returns up to n letters with at least one miss, lowest
// accuracy first. Ties are broken by letter.
func (s *Store) WeakestLetters(runID int64, n int) ([]rune, error) {
	stats, err := s.LetterStats(runID)
	if err != nil {
		return nil, err
	}
	return SelectWeakest(stats, n), nil
}

// SelectWeakest picks up to n letters with misses, lowest accuracy first.
func SelectWeakest(stats []LetterStats, n int) []rune {
	candidates := make([]LetterStats, 0, len(stats))
	for _, ls := range stats {
		if ls.Missed > 0 {
			candidates = append(candidates, ls)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai, aj := candidates[i].Accuracy(), candidates[j].Accuracy()
		if ai == aj {
			return candidates[i].Letter < candidates[j].Letter
		}
		return ai < aj
	})

	if n <= 0 || n > len(candidates) {
		n = len(candidates)
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = candidates[i].Letter
	}
	return out
}

func runeText(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}
