package core

// Color is the foreground color of a screen cell.
// The platform maps each value onto an ANSI palette entry.
type Color uint8

// Palette used by the simulation when issuing draw commands.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGreen
	ColorRed
	ColorYellow
	ColorMagenta
	ColorGray
)

// String returns the palette name, used in test failure output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
