package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/keysmash/internal/board"
)

func TestSpawnUsesOnlyFreeColumns(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var f Field

	for i := 0; i < 3; i++ {
		if _, ok := f.Spawn(rng, []rune("A"), 3); !ok {
			t.Fatalf("spawn %d failed with free columns left", i)
		}
	}
	for col := 0; col < 3; col++ {
		if f.IsColumnFree(col) {
			t.Errorf("column %d should be taken", col)
		}
	}

	if _, ok := f.Spawn(rng, []rune("A"), 3); ok {
		t.Error("spawn on a full field should be dropped")
	}
	if f.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", f.Len())
	}
}

func TestSpawnIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := make(map[int]int)

	for i := 0; i < 3000; i++ {
		var f Field
		c, _ := f.Spawn(rng, []rune("A"), 3)
		counts[c.Col]++
	}
	for col := 0; col < 3; col++ {
		if counts[col] < 800 || counts[col] > 1200 {
			t.Errorf("column %d chosen %d times out of 3000", col, counts[col])
		}
	}
}

func TestSpawnWithoutLetters(t *testing.T) {
	var f Field
	if _, ok := f.Spawn(rand.New(rand.NewSource(1)), nil, 3); ok {
		t.Error("spawn without letters should be dropped")
	}
}

func TestAdvanceLocksAfterLastRow(t *testing.T) {
	b := board.New(3, 1)
	rng := rand.New(rand.NewSource(1))
	var f Field
	f.Spawn(rng, []rune("K"), 1)

	wantRows := []int{0, 1, 2, 2}
	wantLocked := []bool{false, false, false, true}
	for i := range wantRows {
		f.Advance(b, rng, nil)
		c := f.Columns()[0]
		if c.Row != wantRows[i] || c.Locked != wantLocked[i] {
			t.Errorf("advance %d: row %d locked %v, expected row %d locked %v",
				i+1, c.Row, c.Locked, wantRows[i], wantLocked[i])
		}
	}

	for row := 0; row < 3; row++ {
		if b.Get(row, 0) != 'K' {
			t.Errorf("row %d = %q, expected 'K'", row, b.Get(row, 0))
		}
	}
}

func TestOldestSkipsLocked(t *testing.T) {
	f := Field{columns: []*Column{
		{Char: 'A', Col: 2, Locked: true},
		{Char: 'B', Col: 0},
		{Char: 'C', Col: 1},
	}}

	c, ok := f.Oldest()
	if !ok || c.Char != 'B' {
		t.Errorf("Oldest() = %+v, %v, expected B", c, ok)
	}

	f.Remove(0)
	f.Remove(1)
	if _, ok := f.Oldest(); ok {
		t.Error("Oldest() should report none when only locked columns remain")
	}
	if f.UnlockedCount() != 0 || f.LockedCount() != 1 {
		t.Errorf("counts = %d unlocked, %d locked", f.UnlockedCount(), f.LockedCount())
	}
}

func TestForgiveOldestLocked(t *testing.T) {
	f := Field{columns: []*Column{
		{Char: 'A', Col: 0},
		{Char: 'B', Col: 1, Locked: true},
		{Char: 'C', Col: 2, Locked: true},
	}}

	c, ok := f.ForgiveOldestLocked()
	if !ok || c.Char != 'B' {
		t.Errorf("ForgiveOldestLocked() = %+v, %v, expected B", c, ok)
	}
	if !f.IsColumnFree(1) || f.IsColumnFree(2) {
		t.Error("only the oldest locked column should be removed")
	}

	f.Clear()
	if _, ok := f.ForgiveOldestLocked(); ok {
		t.Error("ForgiveOldestLocked() on an empty field should report false")
	}
}

func TestRemoveUnknownColumn(t *testing.T) {
	f := Field{columns: []*Column{{Char: 'A', Col: 0}}}
	if f.Remove(5) {
		t.Error("Remove(5) should report false")
	}
	if f.Len() != 1 {
		t.Error("Remove(5) changed the field")
	}
}
