// Package board implements the fixed-size character grid the falling
// columns are drawn into. The board only mirrors column state; it never owns
// columns.
package board

// Empty is the value of a cell that holds no character.
const Empty rune = 0

// Board is a rows x cols grid where each cell holds at most one character.
// Cells are stored in row-major order: index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	cells []rune
}

// New creates an all-empty board. Dimensions below 1 are raised to 1.
func New(rows, cols int) *Board {
	b := &Board{}
	b.Resize(rows, cols)
	return b
}

// Resize reallocates a fresh all-empty grid with the given dimensions.
func (b *Board) Resize(rows, cols int) {
	b.rows = max(rows, 1)
	b.cols = max(cols, 1)
	b.cells = make([]rune, b.rows*b.cols)
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of grid columns.
func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Write places ch at (row, col). Out-of-bounds writes are ignored.
func (b *Board) Write(row, col int, ch rune) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[row*b.cols+col] = ch
}

// Get returns the character at (row, col), or Empty.
func (b *Board) Get(row, col int) rune {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

// ClearColumn erases every row of grid column col.
func (b *Board) ClearColumn(col int) {
	if col < 0 || col >= b.cols {
		return
	}
	for row := 0; row < b.rows; row++ {
		b.cells[row*b.cols+col] = Empty
	}
}

// Reset empties every cell, keeping the dimensions.
func (b *Board) Reset() {
	clear(b.cells)
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, ch := range b.cells {
		if ch != Empty {
			n++
		}
	}
	return n
}

// Cells returns a copy of the grid as rows of characters.
func (b *Board) Cells() [][]rune {
	out := make([][]rune, b.rows)
	for row := range out {
		out[row] = make([]rune, b.cols)
		copy(out[row], b.cells[row*b.cols:(row+1)*b.cols])
	}
	return out
}
