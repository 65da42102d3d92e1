package core

// Color is the foreground of a screen cell: the palette of the seven
// piece kinds plus gray for the board frame. The platform maps each value
// to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota // terminal foreground, used for text
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange // Z piece; stands in for a dark yellow
	ColorGray
)
