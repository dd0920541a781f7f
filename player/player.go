package player

import (
	"qwixx/game"

	"golang.org/x/exp/slices"
)

// Player represents a Qwixx player and the board they exclusively own.
type Player struct {
	Name  string
	Board *game.Board
}

// NewPlayer creates a new Player instance.
func NewPlayer(name string, board *game.Board) *Player {
	return &Player{
		Name:  name,
		Board: board,
	}
}

// ValidPlacements returns every board coordinate reachable with the dice options for this phase,
// deduplicated and in row-major order.
func (p *Player) ValidPlacements(dice *game.DiceSet, isWhiteTurn bool) []game.Coord {
	return p.placements(dice.Options(isWhiteTurn), isWhiteTurn)
}

// ValidWhitePlacements uses the white pair only.
func (p *Player) ValidWhitePlacements(dice *game.DiceSet) []game.Coord {
	return p.ValidPlacements(dice, true)
}

// ValidColorPlacements uses the colored combinations only.
func (p *Player) ValidColorPlacements(dice *game.DiceSet) []game.Coord {
	return p.ValidPlacements(dice, false)
}

func (p *Player) placements(options []game.Option, isWhiteTurn bool) []game.Coord {
	seen := make(map[game.Coord]struct{})
	var coords []game.Coord
	for _, option := range options {
		for _, c := range p.Board.Placements(option, isWhiteTurn) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			coords = append(coords, c)
		}
	}
	slices.SortFunc(coords, func(a, b game.Coord) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return coords
}

// Penalize adds a penalty and reports whether the maximum has been exceeded.
func (p *Player) Penalize() bool {
	return p.Board.AddPenalty()
}

func (p *Player) Score() int {
	return p.Board.Score()
}

func (p *Player) State() game.BoardState {
	return p.Board.State()
}

// ValidA1 checks that text names a square on this player's board.
func (p *Player) ValidA1(text string) bool {
	return game.ValidA1(text, len(p.Board.Rows()), p.Board.Columns())
}

func (p *Player) String() string {
	return p.Name
}
