package engine

import (
	"qwixx/game"
	"qwixx/player"
)

// Move is a player's decision for one choice: mark a coordinate or pass.
type Move struct {
	Coord game.Coord
	Pass  bool
}

func Pass() Move {
	return Move{Pass: true}
}

func MarkAt(c game.Coord) Move {
	return Move{Coord: c}
}

// MoveProvider collects decisions from players. Calls block until the player answers;
// re-prompting on malformed input is the provider's job. A returned coordinate must be
// one of options.
type MoveProvider interface {
	ChooseOffturnMove(p *player.Player, options []game.Coord) Move
	ChooseOnturnMove(p *player.Player, isWhiteTurn bool, options []game.Coord) Move
}

// Renderer is notified of game progress. Implementations must not mutate the
// players, boards or dice they are handed.
type Renderer interface {
	DisplayPlayerOrder(order []*player.Player)
	DisplayBoard(p *player.Player)
	DisplayDice(p *player.Player, dice *game.DiceSet) // p is the active player
	DisplayOptions(p *player.Player, white, colored []game.Coord)
	NotifyPenalty(p *player.Player)
	NotifyBoardState(p *player.Player, state game.BoardState)
	DisplayPodium(standings []Standing)
}

// Collaborator is everything outside the rules core: input and display.
type Collaborator interface {
	MoveProvider
	Renderer
}
