package core

// Color is a palette index for a landed block or a falling piece.
// There is one color per piece kind, not per block.
type Color uint8

// Palette indices, in the order of the piece catalogue (I, J, L, O, S, T, Z).
const (
	ColorCyan Color = iota
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorPurple
	ColorRed
)

// NumColors is the number of valid palette indices.
const NumColors = 7

// Valid reports whether c is a palette index.
func (c Color) Valid() bool {
	return c < NumColors
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorPurple:
		return "purple"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}
