package game

// Row is an ordered sequence of squares. Marks only accumulate rightward and the
// last square doubles as the row's lock.
type Row struct {
	squares     []*Square
	scoring     []int
	lockMinimum int
	locked      *LockedColors
}

// NewRow builds a row over squares. locked is shared with the owning board.
func NewRow(squares []*Square, locked *LockedColors, lockMinimum int) *Row {
	return &Row{
		squares:     squares,
		scoring:     defaultScoring(len(squares)),
		lockMinimum: lockMinimum,
		locked:      locked,
	}
}

// NewAscendingRow and NewDescendingRow build the standard 2..12 and 12..2 rows.
func NewAscendingRow(color Color, locked *LockedColors, lockMinimum int) *Row {
	squares := make([]*Square, 0, 11)
	for v := 2; v <= 12; v++ {
		squares = append(squares, NewSquare(color, v))
	}
	return NewRow(squares, locked, lockMinimum)
}

func NewDescendingRow(color Color, locked *LockedColors, lockMinimum int) *Row {
	squares := make([]*Square, 0, 11)
	for v := 12; v >= 2; v-- {
		squares = append(squares, NewSquare(color, v))
	}
	return NewRow(squares, locked, lockMinimum)
}

// defaultScoring returns scoring[k] = k(k+1)/2 for k up to n+1; the lock bonus can push
// the mark count one past the number of squares.
func defaultScoring(n int) []int {
	scoring := make([]int, n+2)
	for k := 1; k < len(scoring); k++ {
		scoring[k] = scoring[k-1] + k
	}
	return scoring
}

func (r *Row) Len() int {
	return len(r.squares)
}

func (r *Row) Square(index int) *Square {
	return r.squares[index]
}

func (r *Row) Squares() []*Square {
	return r.squares
}

// Color is the color of the lock square, which is the color of the row.
func (r *Row) Color() Color {
	return r.squares[len(r.squares)-1].Color
}

func (r *Row) Marks() int {
	marks := 0
	for _, sq := range r.squares {
		if sq.Marked() {
			marks++
		}
	}
	return marks
}

// CanMark reports whether the square at index may be marked right now.
func (r *Row) CanMark(index int) bool {
	if index < 0 || index >= len(r.squares) {
		return false
	}
	if r.locked.Contains(r.squares[index].Color) {
		return false
	}
	for _, sq := range r.squares[index:] {
		if sq.Marked() {
			return false
		}
	}
	if index == len(r.squares)-1 && r.Marks() < r.lockMinimum {
		return false
	}
	return true
}

// Mark marks the square at index if the placement rules allow it.
func (r *Row) Mark(index int) bool {
	if !r.CanMark(index) {
		return false
	}
	if err := r.squares[index].Mark(); err != nil {
		panic(err)
	}
	return true
}

// Score counts the marks, plus one for a marked lock square, and looks them up in the scoring table.
func (r *Row) Score() int {
	marks := r.Marks()
	if r.squares[len(r.squares)-1].Marked() {
		marks++
	}
	return r.scoring[marks]
}

// WhatIsLocked returns the row color once the lock square is marked.
func (r *Row) WhatIsLocked() (Color, bool) {
	last := r.squares[len(r.squares)-1]
	if last.Marked() {
		return last.Color, true
	}
	return NoColor, false
}

func (r *Row) String() string {
	text := ""
	for _, sq := range r.squares {
		text += sq.String() + " "
	}
	return text + r.Color().String() + "L"
}
