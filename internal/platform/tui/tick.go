// Package tui provides the Bubble Tea integration for keysmash.
// It owns the run loop: self-paced ticks, debounced resizes, input mapping
// and the keystroke journal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after interval. Each tick re-arms the
// next one, so the cadence follows the current level.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// resizeMsg carries a window size once it has been stable for the
// debounce delay.
type resizeMsg struct {
	seq           int
	width, height int
}

// resizeCmd delivers a resize after delay, tagged with seq so that only the
// latest of a burst is applied.
func resizeCmd(seq, width, height int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return resizeMsg{seq: seq, width: width, height: height}
	})
}
