// Package bot plays keysmash without a terminal. A seeded Typist aims at
// the lowest falling letter and sometimes slips, which makes simulated runs
// reproducible for the simulate command and for tests.
package bot

import (
	"math/rand"

	"github.com/vovakirdan/keysmash/internal/core"
	"github.com/vovakirdan/keysmash/internal/game"
)

// Typist is a scripted player.
type Typist struct {
	rng      *rand.Rand
	accuracy float64 // Chance that a keystroke hits, in [0, 1]
	every    int     // Ticks between keystrokes
	wait     int
}

// NewTypist creates a typist that presses a key every `every` ticks and
// hits with probability accuracy.
func NewTypist(seed int64, accuracy float64, every int) *Typist {
	return &Typist{
		rng:      rand.New(rand.NewSource(seed)),
		accuracy: core.ClampF(accuracy, 0, 1),
		every:    max(every, 1),
	}
}

// Next returns the key to press now. It reports false while the typist is
// waiting or nothing is falling.
func (t *Typist) Next(s *game.Session) (rune, bool) {
	if t.wait > 0 {
		t.wait--
		return 0, false
	}

	target, ok := oldest(s.Columns())
	if !ok {
		return 0, false
	}
	t.wait = t.every - 1

	if t.rng.Float64() < t.accuracy {
		return target, true
	}
	return t.slip(target, s.Level().Letters), true
}

// slip picks a wrong key, preferring letters of the current level.
func (t *Typist) slip(target rune, letters []rune) rune {
	var wrong []rune
	for _, r := range letters {
		if r != target {
			wrong = append(wrong, r)
		}
	}
	if len(wrong) == 0 {
		for r := 'A'; r <= 'Z'; r++ {
			if r != target {
				wrong = append(wrong, r)
			}
		}
	}
	return wrong[t.rng.Intn(len(wrong))]
}

// oldest returns the letter of the earliest spawned column still falling.
func oldest(cols []game.Column) (rune, bool) {
	for _, c := range cols {
		if !c.Locked {
			return c.Char, true
		}
	}
	return 0, false
}
