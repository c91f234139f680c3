package bot

import (
	"testing"
	"time"

	"github.com/vovakirdan/keysmash/internal/config"
	"github.com/vovakirdan/keysmash/internal/core"
	"github.com/vovakirdan/keysmash/internal/game"
)

var start = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// newSession builds a 6x5 board session on a virtual clock.
func newSession(t *testing.T, seed int64) (*game.Session, *Clock) {
	t.Helper()
	clock := NewClock(start)
	s, err := game.New(config.Default(), core.RuntimeConfig{ScreenW: 12, ScreenH: 10, Seed: seed},
		game.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	return s, clock
}

func TestClumsyTypistLoses(t *testing.T) {
	s, clock := newSession(t, 3)

	var keys []game.KeyResult
	res := Run(s, NewTypist(1, 0, 1), Options{
		MaxTicks: 1000,
		Clock:    clock,
		OnKey:    func(k game.KeyResult) { keys = append(keys, k) },
	})

	if !res.GameOver {
		t.Fatalf("run did not end after %d ticks", res.Ticks)
	}
	if s.State() != game.GameOver {
		t.Errorf("session state = %v, expected game_over", s.State())
	}
	if res.Score != 0 || res.Stats.Correct != 0 {
		t.Errorf("score/correct = %d/%d, expected 0/0", res.Score, res.Stats.Correct)
	}
	if res.Stats.Wrong != res.Keys || len(keys) != res.Keys {
		t.Errorf("wrong = %d, keys = %d, observed = %d", res.Stats.Wrong, res.Keys, len(keys))
	}
	for _, k := range keys {
		if k.Outcome != game.OutcomeMiss {
			t.Errorf("outcome = %v, expected miss", k.Outcome)
		}
	}
	if res.Elapsed != clock.Now().Sub(start) || res.Elapsed <= 0 {
		t.Errorf("elapsed = %v, clock moved %v", res.Elapsed, clock.Now().Sub(start))
	}
}

func TestPerfectTypistSurvives(t *testing.T) {
	s, _ := newSession(t, 3)

	res := Run(s, NewTypist(1, 1, 1), Options{MaxTicks: 200})

	if res.GameOver {
		t.Fatalf("perfect typist lost at tick %d", res.Ticks)
	}
	if res.Ticks != 200 {
		t.Errorf("ticks = %d, expected 200", res.Ticks)
	}
	if res.Stats.Wrong != 0 {
		t.Errorf("wrong = %d, expected 0", res.Stats.Wrong)
	}
	if res.Stats.Correct == 0 || res.Score != res.Stats.Correct || res.Keys != res.Stats.Correct {
		t.Errorf("score = %d, correct = %d, keys = %d", res.Score, res.Stats.Correct, res.Keys)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	play := func() Result {
		s, clock := newSession(t, 11)
		return Run(s, NewTypist(5, 0.6, 2), Options{MaxTicks: 2000, Clock: clock})
	}

	first, second := play(), play()
	if first != second {
		t.Errorf("runs differ:\n%+v\n%+v", first, second)
	}
	if first.Stats.Correct+first.Stats.Wrong != first.Keys {
		t.Errorf("correct+wrong = %d, keys = %d", first.Stats.Correct+first.Stats.Wrong, first.Keys)
	}
}

func TestTypistWaitsBetweenKeys(t *testing.T) {
	s, _ := newSession(t, 3)
	s.Start()
	for len(s.Columns()) == 0 {
		s.Step()
	}

	typist := NewTypist(1, 1, 3)
	var pressed int
	for range 6 {
		if _, ok := typist.Next(s); ok {
			pressed++
		}
	}
	if pressed != 2 {
		t.Errorf("pressed %d keys in 6 ticks, expected 2", pressed)
	}
}

func TestTypistIdleWithoutTarget(t *testing.T) {
	s, _ := newSession(t, 3)
	s.Start()

	if _, ok := NewTypist(1, 1, 1).Next(s); ok {
		t.Error("typist pressed a key with nothing falling")
	}
}

func TestSlipNeverHits(t *testing.T) {
	typist := NewTypist(9, 0, 1)

	tests := []struct {
		name    string
		letters []rune
	}{
		{"level letters", []rune("ASDF")},
		{"single letter", []rune("A")},
		{"no letters", nil},
	}

	for _, tc := range tests {
		for range 50 {
			if r := typist.slip('A', tc.letters); r == 'A' {
				t.Fatalf("%s: slip returned the target", tc.name)
			}
		}
	}
}
