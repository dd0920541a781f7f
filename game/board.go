package game

import "fmt"

// BoardState tells the engine whether a board has reached an end-of-game condition.
type BoardState int

const (
	Continue BoardState = iota
	Locked
	Penalties
)

func (s BoardState) String() string {
	switch s {
	case Continue:
		return "continue"
	case Locked:
		return "locked"
	case Penalties:
		return "penalties"
	default:
		return fmt.Sprintf("BoardState(%d)", int(s))
	}
}

// Option is a playable dice combination: a color (NoColor for the white pair) and a sum.
type Option struct {
	Color Color
	Value int
}

func (o Option) String() string {
	return fmt.Sprintf("%s%d", o.Color, o.Value)
}

// Board is one player's score sheet: two ascending rows, two descending rows and a penalty counter.
type Board struct {
	rows      []*Row
	penalties int
	rules     Rules
	locked    *LockedColors
}

// NewBoard creates the standard layout. A nil locked set gives the board its own set.
func NewBoard(rules Rules, locked *LockedColors) *Board {
	if locked == nil {
		locked = NewLockedColors()
	}
	return &Board{
		rows: []*Row{
			NewAscendingRow(Red, locked, rules.LockMinimum),
			NewAscendingRow(Yellow, locked, rules.LockMinimum),
			NewDescendingRow(Green, locked, rules.LockMinimum),
			NewDescendingRow(Blue, locked, rules.LockMinimum),
		},
		rules:  rules,
		locked: locked,
	}
}

func (b *Board) Rows() []*Row {
	return b.rows
}

func (b *Board) Row(index int) *Row {
	return b.rows[index]
}

// Columns is the length of the longest row.
func (b *Board) Columns() int {
	cols := 0
	for _, row := range b.rows {
		cols = max(cols, row.Len())
	}
	return cols
}

func (b *Board) Penalties() int {
	return b.penalties
}

func (b *Board) LockedColors() *LockedColors {
	return b.locked
}

func (b *Board) Rules() Rules {
	return b.rules
}

// Valid checks whether option can be played on the square at (rowIndex, colIndex).
// White options are only playable on a white turn and colored options only on a colored turn.
func (b *Board) Valid(option Option, rowIndex, colIndex int, isWhiteTurn bool) bool {
	if rowIndex < 0 || rowIndex >= len(b.rows) {
		return false
	}
	row := b.rows[rowIndex]
	if colIndex < 0 || colIndex >= row.Len() {
		return false
	}
	if (option.Color == NoColor) != isWhiteTurn {
		return false
	}
	square := row.Square(colIndex)
	if !Compatible(option.Color, square.Color) {
		return false
	}
	if option.Value != square.Value {
		return false
	}
	// Locked colors, rightward marking and the lock minimum.
	return row.CanMark(colIndex)
}

// Placements returns every coordinate where option can be played, in row-major order.
func (b *Board) Placements(option Option, isWhiteTurn bool) []Coord {
	var coords []Coord
	for r, row := range b.rows {
		for c := 0; c < row.Len(); c++ {
			if b.Valid(option, r, c, isWhiteTurn) {
				coords = append(coords, Coord{Row: r, Col: c})
			}
		}
	}
	return coords
}

func (b *Board) Mark(rowIndex, colIndex int) bool {
	if rowIndex < 0 || rowIndex >= len(b.rows) {
		return false
	}
	return b.rows[rowIndex].Mark(colIndex)
}

// MarkA1 marks the square named by an A1 coordinate such as "B6".
func (b *Board) MarkA1(text string) (bool, error) {
	coord, err := A1ToCoord(text)
	if err != nil {
		return false, err
	}
	return b.Mark(coord.Row, coord.Col), nil
}

// AddPenalty increments the penalty counter and reports whether the maximum has been exceeded.
func (b *Board) AddPenalty() bool {
	b.penalties++
	return b.penalties > b.rules.MaxPenalties
}

func (b *Board) Score() int {
	score := 0
	for _, row := range b.rows {
		score += row.Score()
	}
	return score - b.penalties*b.rules.PenaltyValue
}

// LockedRows counts the rows whose color is in the locked set.
func (b *Board) LockedRows() int {
	count := 0
	for _, row := range b.rows {
		if b.locked.Contains(row.Color()) {
			count++
		}
	}
	return count
}

func (b *Board) State() BoardState {
	if b.LockedRows() > b.rules.MaxLockedRows {
		return Locked
	}
	if b.penalties > b.rules.MaxPenalties {
		return Penalties
	}
	return Continue
}

// UpdateLock propagates every marked lock square into the locked set.
// It returns the colors that were newly locked.
func (b *Board) UpdateLock() []Color {
	var newly []Color
	for _, row := range b.rows {
		if color, ok := row.WhatIsLocked(); ok && !b.locked.Contains(color) {
			b.locked.Add(color)
			newly = append(newly, color)
		}
	}
	return newly
}
