package game

import (
	"math/rand"

	"github.com/vovakirdan/keysmash/internal/board"
)

// Column is one falling unit bound to a single grid column.
type Column struct {
	Char   rune
	Col    int  // Grid column index, unique among active columns
	Row    int  // Leading edge, 0..rows-1, never decreases
	Locked bool // Reached the bottom without being typed

	fresh bool // Spawned this tick, holds row 0 until the next advance
}

// Field owns the active columns in insertion order.
type Field struct {
	columns []*Column
}

// Spawn places a new column at row 0 of a uniformly chosen free grid column
// with a letter drawn uniformly from letters. It reports false and draws
// nothing from rng when no grid column is free.
func (f *Field) Spawn(rng *rand.Rand, letters []rune, cols int) (Column, bool) {
	if len(letters) == 0 {
		return Column{}, false
	}

	free := make([]int, 0, cols)
	for col := 0; col < cols; col++ {
		if f.IsColumnFree(col) {
			free = append(free, col)
		}
	}
	if len(free) == 0 {
		return Column{}, false
	}

	c := &Column{
		Col:   free[rng.Intn(len(free))],
		Char:  letters[rng.Intn(len(letters))],
		fresh: true,
	}
	f.columns = append(f.columns, c)
	return *c, true
}

// Advance moves every column one step and mirrors it into b.
// A column spawned this tick stays at row 0. An unlocked column at the last
// row locks instead of moving, so it is catchable on every row.
// Non-empty decoys fill the rows above each leading edge with random letters.
func (f *Field) Advance(b *board.Board, rng *rand.Rand, decoys []rune) {
	last := b.Rows() - 1
	for _, c := range f.columns {
		switch {
		case c.fresh:
			c.fresh = false
		case c.Locked:
		case c.Row < last:
			c.Row++
		default:
			c.Locked = true
		}
	}
	f.Paint(b, rng, decoys)
}

// Paint writes every column into b: its letter at rows 0..Row, or decoy
// letters above the leading edge when decoys is non-empty.
func (f *Field) Paint(b *board.Board, rng *rand.Rand, decoys []rune) {
	for _, c := range f.columns {
		for row := 0; row <= c.Row; row++ {
			ch := c.Char
			if row < c.Row && len(decoys) > 0 {
				ch = decoys[rng.Intn(len(decoys))]
			}
			b.Write(row, c.Col, ch)
		}
	}
}

// Oldest returns the first-spawned unlocked column.
func (f *Field) Oldest() (*Column, bool) {
	for _, c := range f.columns {
		if !c.Locked {
			return c, true
		}
	}
	return nil, false
}

// Remove drops the column bound to grid column col.
func (f *Field) Remove(col int) bool {
	for i, c := range f.columns {
		if c.Col == col {
			f.columns = append(f.columns[:i], f.columns[i+1:]...)
			return true
		}
	}
	return false
}

// IsColumnFree reports whether no active column occupies grid column col.
func (f *Field) IsColumnFree(col int) bool {
	for _, c := range f.columns {
		if c.Col == col {
			return false
		}
	}
	return true
}

// LockedCount returns the number of locked columns.
func (f *Field) LockedCount() int {
	n := 0
	for _, c := range f.columns {
		if c.Locked {
			n++
		}
	}
	return n
}

// UnlockedCount returns the number of columns still falling.
func (f *Field) UnlockedCount() int {
	return len(f.columns) - f.LockedCount()
}

// ForgiveOldestLocked removes the first-spawned locked column.
func (f *Field) ForgiveOldestLocked() (Column, bool) {
	for _, c := range f.columns {
		if c.Locked {
			f.Remove(c.Col)
			return *c, true
		}
	}
	return Column{}, false
}

// Clear removes every column.
func (f *Field) Clear() {
	f.columns = nil
}

// Len returns the number of active columns.
func (f *Field) Len() int {
	return len(f.columns)
}

// Columns returns a copy of the active columns in insertion order.
func (f *Field) Columns() []Column {
	out := make([]Column, len(f.columns))
	for i, c := range f.columns {
		out[i] = *c
	}
	return out
}
