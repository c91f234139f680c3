package game

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/keysmash/internal/board"
	"github.com/vovakirdan/keysmash/internal/config"
	"github.com/vovakirdan/keysmash/internal/core"
)

const hudHeight = 2 // Score line + level letters line

// Render draws a snapshot into dst: the HUD, the framed board and the
// overlay for the current state. Extra lines are appended to the overlay.
func Render(snap Snapshot, dst *core.Screen, g board.Geometry, extra ...string) {
	dst.Clear()

	cellW, cellH := max(g.CellW, 1), max(g.CellH, 1)
	frame := core.NewRect(0, hudHeight, snap.Cols*cellW+2, snap.Rows*cellH+2)
	frame.X = max((dst.Width()-frame.W)/2, 0)

	renderHUD(snap, dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	renderCells(snap, dst, frame, cellW, cellH)

	switch snap.State {
	case NotStarted:
		renderOverlay(dst, []string{"Ready?", "Press Enter or click to start"}, extra)
	case Paused:
		renderOverlay(dst, []string{"Paused", "Press Enter to resume"}, extra)
	case GameOver:
		renderOverlay(dst, []string{
			"Game over",
			fmt.Sprintf("Score: %d  Level: %d  Accuracy: %.0f%%", snap.Score, snap.Level, snap.Stats.Accuracy()*100),
			"Press Enter to play again",
		}, extra)
	}
}

func renderHUD(snap Snapshot, dst *core.Screen, frame core.Rect) {
	left := fmt.Sprintf("Score: %d  Level: %d", snap.Score, snap.Level)
	dst.DrawText(frame.X, 0, left, core.ColorWhite)

	right := fmt.Sprintf("+%d -%d  %s", snap.Stats.Correct, snap.Stats.Wrong, formatElapsed(snap.Elapsed))
	rx := max(frame.Right()-runewidth.StringWidth(right), frame.X+runewidth.StringWidth(left)+2)
	dst.DrawText(rx, 0, right, core.ColorGray)

	keys := "Keys: " + snap.Letters
	dst.DrawText(frame.X, 1, runewidth.Truncate(keys, max(dst.Width()-frame.X, 0), "…"), core.ColorGray)
}

func renderCells(snap Snapshot, dst *core.Screen, frame core.Rect, cellW, cellH int) {
	byCol := make(map[int]Column, len(snap.Columns))
	target := -1
	for _, c := range snap.Columns {
		byCol[c.Col] = c
		if target < 0 && !c.Locked {
			target = c.Col
		}
	}

	for row, cells := range snap.Cells {
		for col, ch := range cells {
			if ch == board.Empty {
				continue
			}
			color := cellColor(snap.Theme, byCol, target, row, col)
			x := frame.X + 1 + col*cellW + (cellW-1)/2
			y := frame.Y + 1 + row*cellH
			dst.SetColored(x, y, ch, color)
		}
	}
}

// cellColor picks the color of a board cell by the role it plays: the next
// letter to type, a leading edge, a trail or a locked column.
func cellColor(theme config.Theme, byCol map[int]Column, target, row, col int) core.Color {
	c, ok := byCol[col]
	switch {
	case !ok:
		return core.ColorGray
	case c.Locked:
		return core.ColorRed
	case row == c.Row && col == target:
		return core.ColorYellow
	case row == c.Row && theme == config.ThemeMatrix:
		return core.ColorBrightGreen
	case row == c.Row:
		return core.ColorWhite
	case theme == config.ThemeMatrix:
		return core.ColorDarkGreen
	default:
		return core.ColorGray
	}
}

// renderOverlay draws a centered box with the given lines.
func renderOverlay(dst *core.Screen, lines, extra []string) {
	lines = append(lines, extra...)

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}

	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorYellow
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
