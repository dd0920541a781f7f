package game

import "strconv"

// Square is a single markable cell of a row.
type Square struct {
	Color  Color
	Value  int // dice sum required to mark this square
	marked bool
}

func NewSquare(color Color, value int) *Square {
	return &Square{Color: color, Value: value}
}

// Mark crosses out the square. A square can only be marked once.
func (s *Square) Mark() error {
	if s.marked {
		return ErrAlreadyMarked
	}
	s.marked = true
	return nil
}

func (s *Square) Marked() bool {
	return s.marked
}

func (s *Square) String() string {
	return s.Color.String() + strconv.Itoa(s.Value)
}
