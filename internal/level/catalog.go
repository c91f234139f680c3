// Package level provides the ordered catalog of difficulty tiers.
// Each tier restricts the letters that can fall, sets the speed of the tick
// loop and the cumulative score needed to move on.
package level

import (
	"fmt"
	"unicode"
)

// Level defines one difficulty tier.
type Level struct {
	Number    int     // Ordinal shown in the HUD
	Letters   []rune  // Characters that can be spawned, upper-cased
	Speed     float64 // 0..100, drives the tick interval
	Threshold int     // Cumulative score at which the next tier starts
}

// Intensify defines how the last tier grows once the catalog is exhausted.
type Intensify struct {
	Speed     float64
	Threshold int
}

// DefaultIntensify matches the original progression: +10 speed and +10
// points per extra tier.
func DefaultIntensify() Intensify {
	return Intensify{Speed: 10, Threshold: 10}
}

// ValidationError describes why a catalog was rejected.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Catalog is an ordered, never-empty sequence of levels with a cursor.
type Catalog struct {
	pristine []Level
	levels   []Level
	index    int
	step     Intensify
}

// New validates levels and builds a catalog positioned at the first entry.
// Letters are upper-cased and de-duplicated.
func New(levels []Level, step Intensify) (*Catalog, error) {
	normalized := make([]Level, len(levels))
	for i, lvl := range levels {
		lvl.Letters = normalizeLetters(lvl.Letters)
		normalized[i] = lvl
	}

	if err := Validate(normalized); err != nil {
		return nil, err
	}
	if step.Speed < 0 || step.Threshold < 1 {
		return nil, ValidationError{
			Code:    "INVALID_INTENSIFY",
			Message: fmt.Sprintf("intensify step must have speed >= 0 and threshold >= 1, got %+v", step),
		}
	}

	c := &Catalog{pristine: normalized, step: step}
	c.Reset()
	return c, nil
}

// Validate checks the catalog invariants: at least one level, strictly
// increasing numbers and thresholds, non-decreasing speed, and at least one
// letter per level.
func Validate(levels []Level) error {
	if len(levels) == 0 {
		return ValidationError{Code: "EMPTY_CATALOG", Message: "at least one level is required"}
	}

	for i, lvl := range levels {
		if len(lvl.Letters) == 0 {
			return ValidationError{
				Code:    "NO_LETTERS",
				Message: fmt.Sprintf("level %d has no letters", lvl.Number),
			}
		}
		if lvl.Speed < 0 {
			return ValidationError{
				Code:    "NEGATIVE_SPEED",
				Message: fmt.Sprintf("level %d has negative speed %.1f", lvl.Number, lvl.Speed),
			}
		}
		if lvl.Threshold < 1 {
			return ValidationError{
				Code:    "INVALID_THRESHOLD",
				Message: fmt.Sprintf("level %d threshold must be >= 1, got %d", lvl.Number, lvl.Threshold),
			}
		}
		if i == 0 {
			continue
		}

		prev := levels[i-1]
		if lvl.Number <= prev.Number {
			return ValidationError{
				Code:    "NUMBER_ORDER",
				Message: fmt.Sprintf("level numbers must increase: %d after %d", lvl.Number, prev.Number),
			}
		}
		if lvl.Speed < prev.Speed {
			return ValidationError{
				Code:    "SPEED_REGRESSION",
				Message: fmt.Sprintf("level %d speed %.1f is below level %d speed %.1f", lvl.Number, lvl.Speed, prev.Number, prev.Speed),
			}
		}
		if lvl.Threshold <= prev.Threshold {
			return ValidationError{
				Code:    "THRESHOLD_ORDER",
				Message: fmt.Sprintf("level %d threshold %d must exceed level %d threshold %d", lvl.Number, lvl.Threshold, prev.Number, prev.Threshold),
			}
		}
	}

	return nil
}

// Current returns the active level.
func (c *Catalog) Current() Level {
	return c.levels[c.index]
}

// Advance moves to the next level if one exists. On the last level it
// intensifies that level in place instead, so progression never ends.
func (c *Catalog) Advance() Level {
	if c.index+1 < len(c.levels) {
		c.index++
		return c.Current()
	}

	last := &c.levels[c.index]
	last.Number++
	last.Speed += c.step.Speed
	last.Threshold += c.step.Threshold
	return *last
}

// Reset returns to the first level and undoes any intensification.
func (c *Catalog) Reset() {
	c.levels = make([]Level, len(c.pristine))
	copy(c.levels, c.pristine)
	c.index = 0
}

// Index returns the 0-based position of the current level.
func (c *Catalog) Index() int {
	return c.index
}

// Len returns the number of defined levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Levels returns the pristine level definitions.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.pristine))
	copy(out, c.pristine)
	return out
}

// normalizeLetters upper-cases letters and drops duplicates, keeping order.
func normalizeLetters(letters []rune) []rune {
	seen := make(map[rune]bool, len(letters))
	out := make([]rune, 0, len(letters))
	for _, r := range letters {
		r = unicode.ToUpper(r)
		if unicode.IsSpace(r) || !unicode.IsPrint(r) || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
