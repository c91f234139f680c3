package bot

import (
	"time"

	"github.com/vovakirdan/keysmash/internal/game"
)

// Clock is a virtual clock advanced by the tick interval, so simulated
// runs report play time without sleeping.
type Clock struct {
	now time.Time
}

// NewClock creates a clock that starts at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Options controls a simulated run.
type Options struct {
	MaxTicks int                  // Stop after this many ticks, 0 means no limit
	Clock    *Clock               // Advanced by the tick interval when set
	OnKey    func(game.KeyResult) // Called after every keystroke
	OnTick   func(game.Snapshot)  // Called after every tick
}

// Result summarizes a simulated run.
type Result struct {
	Ticks    uint64
	Keys     int
	Score    int
	Level    int
	Stats    game.Stats
	Elapsed  time.Duration
	GameOver bool
}

// Run starts s and lets t play until game over or opts.MaxTicks.
func Run(s *game.Session, t *Typist, opts Options) Result {
	if s.State() != game.Started {
		s.Start()
	}

	var res Result
	for opts.MaxTicks <= 0 || res.Ticks < uint64(opts.MaxTicks) {
		if r, ok := t.Next(s); ok {
			key := s.Keystroke(r)
			res.Keys++
			if opts.OnKey != nil {
				opts.OnKey(key)
			}
		}

		interval := s.TickInterval()
		snap := s.Step()
		if opts.Clock != nil {
			opts.Clock.Advance(interval)
		}
		if opts.OnTick != nil {
			opts.OnTick(snap)
		}

		res.Ticks = snap.Tick
		if snap.State == game.GameOver {
			res.GameOver = true
			break
		}
	}

	snap := s.Snapshot()
	res.Score = snap.Score
	res.Level = snap.Level
	res.Stats = snap.Stats
	res.Elapsed = snap.Elapsed
	return res
}
