package core

import "strings"

// Color identifies one unit of liquid. The engine only compares colors for
// equality; names, labels and patterns exist for renderers.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorPurple
	ColorCount // Sentinel value for iteration
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Label returns the short text label shown in colorblind mode.
func (c Color) Label() string {
	switch c {
	case ColorRed:
		return "R"
	case ColorGreen:
		return "G"
	case ColorBlue:
		return "B"
	case ColorYellow:
		return "Y"
	case ColorMagenta:
		return "M"
	case ColorCyan:
		return "C"
	case ColorOrange:
		return "O"
	case ColorPurple:
		return "P"
	default:
		return "?"
	}
}

// Pattern returns the fill rune shown in colorblind mode.
func (c Color) Pattern() rune {
	switch c {
	case ColorRed:
		return '●'
	case ColorGreen:
		return '▲'
	case ColorBlue:
		return '■'
	case ColorYellow:
		return '◆'
	case ColorMagenta:
		return '★'
	case ColorCyan:
		return '✚'
	case ColorOrange:
		return '▼'
	case ColorPurple:
		return '♥'
	default:
		return '?'
	}
}

// ParseColor converts a name or label to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "magenta", "m":
		return ColorMagenta, true
	case "cyan", "c":
		return ColorCyan, true
	case "orange", "o":
		return ColorOrange, true
	case "purple", "p":
		return ColorPurple, true
	default:
		return ColorRed, false
	}
}

// Palette returns the fixed ordered palette. A generated puzzle with N
// colors uses the first N entries.
func Palette() []Color {
	return []Color{
		ColorRed,
		ColorGreen,
		ColorBlue,
		ColorYellow,
		ColorMagenta,
		ColorCyan,
		ColorOrange,
		ColorPurple,
	}
}
