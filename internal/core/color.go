package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color when rendering.
type Color uint8

// Colors available to games. ColorDefault leaves the terminal default.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorPurple
	ColorGray
)
