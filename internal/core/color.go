package core

// Color is a foreground color for a screen cell. The platform maps each
// value to a terminal palette entry.
type Color uint8

// Palette. ColorGray is the last entry.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	return c <= ColorGray
}
