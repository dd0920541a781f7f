package game

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRows is the number of rows a single letter can name.
const maxRows = 26

// Coord addresses a square by row and column index.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	text, err := CoordToA1(c.Row, c.Col)
	if err != nil {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return text
}

// CoordToA1 converts 0-based indices to A1 notation: CoordToA1(0, 2) == "A3".
func CoordToA1(row, col int) (string, error) {
	if row >= maxRows {
		return "", fmt.Errorf("row %d: %w", row, ErrRowOutOfRange)
	}
	if row < 0 || col < 0 {
		return "", fmt.Errorf("(%d,%d): %w", row, col, ErrInvalidCoordinate)
	}
	return string(rune('A'+row)) + strconv.Itoa(col+1), nil
}

// A1ToCoord parses A1 notation into 0-based indices. The row letter is case-insensitive.
func A1ToCoord(text string) (Coord, error) {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return Coord{}, fmt.Errorf("%q: %w", text, ErrInvalidCoordinate)
	}
	letter := strings.ToUpper(text[:1])[0]
	if letter < 'A' || letter > 'Z' {
		return Coord{}, fmt.Errorf("%q: row must be a letter: %w", text, ErrInvalidCoordinate)
	}
	number := text[1:]
	if !isDigits(number) {
		if isLetters(number) {
			return Coord{}, fmt.Errorf("%q: %w", text, ErrRowOutOfRange)
		}
		return Coord{}, fmt.Errorf("%q: %s is not a valid column index: %w", text, number, ErrInvalidCoordinate)
	}
	col, err := strconv.Atoi(number)
	if err != nil || col < 1 {
		return Coord{}, fmt.Errorf("%q: %s is not a valid column index: %w", text, number, ErrInvalidCoordinate)
	}
	return Coord{Row: int(letter - 'A'), Col: col - 1}, nil
}

// ValidA1 reports whether text is a well-formed coordinate inside a rows x cols grid.
func ValidA1(text string, rows, cols int) bool {
	coord, err := A1ToCoord(text)
	if err != nil {
		return false
	}
	return coord.Row < rows && coord.Col < cols
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
