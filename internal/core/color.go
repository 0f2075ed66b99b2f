package core

// Color is the foreground color of a screen cell. Front ends map each
// value to a terminal color; ColorDefault leaves the cell unstyled.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
)
