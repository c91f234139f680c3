package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorDarkGreen
	ColorRed
	ColorYellow
	ColorWhite
	ColorGray
)
