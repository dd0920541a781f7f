package game

// Color identifies a row of the board or the die that produced an option.
type Color int

const (
	NoColor Color = iota // white dice
	Red
	Yellow
	Green
	Blue
)

// Colors lists the four row colors in board order.
var Colors = []Color{Red, Yellow, Green, Blue}

func (c Color) String() string {
	switch c {
	case NoColor:
		return "W"
	case Red:
		return "R"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Compatible reports whether a die of dieColor may be played on a square of squareColor.
// White dice match any square.
func Compatible(dieColor, squareColor Color) bool {
	return dieColor == NoColor || dieColor == squareColor
}
