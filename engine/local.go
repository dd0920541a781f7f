package engine

import (
	"errors"
	"fmt"
	"qwixx/game"
	"qwixx/metrics"
	"qwixx/player"
	"qwixx/utils"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	MinPlayers = 2
	MaxPlayers = 5
)

var (
	ErrPlayerCount   = errors.New("unsupported number of players")
	ErrIllegalChoice = errors.New("choice is not one of the offered options")
	ErrGameOver      = errors.New("game is over")
)

// Engine runs one game of Qwixx: it rolls the dice, asks each player for their
// choices through the collaborator, applies marks and penalties and stops as soon
// as a board reaches an end-of-game state.
type Engine struct {
	id          uuid.UUID
	players     []*player.Player // registration order
	order       []*player.Player // turn order
	dice        *game.DiceSet
	rules       game.Rules
	collab      Collaborator
	rng         *rand.Rand
	sharedLocks bool
	shuffle     bool
	metrics     metrics.Collector
	logger      zerolog.Logger
	round       int
	done        bool
}

// New sets up a game for the named players.
func New(names []string, collab Collaborator, options ...Option) (*Engine, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, fmt.Errorf("%d players (want %d to %d): %w", len(names), MinPlayers, MaxPlayers, ErrPlayerCount)
	}
	if collab == nil {
		return nil, errors.New("collaborator is required")
	}

	e := &Engine{ // Default values
		id:      uuid.New(),
		rules:   game.NewStandardRules(),
		collab:  collab,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	e.logger = log.With().Str("game", e.id.String()).Logger()

	var shared *game.LockedColors
	if e.sharedLocks {
		shared = game.NewLockedColors()
	}
	for _, name := range names {
		locked := shared
		if locked == nil {
			locked = game.NewLockedColors()
		}
		e.players = append(e.players, player.NewPlayer(name, game.NewBoard(e.rules, locked)))
	}

	e.order = make([]*player.Player, len(e.players))
	copy(e.order, e.players)
	if e.shuffle {
		e.rng.Shuffle(len(e.order), func(i, j int) {
			e.order[i], e.order[j] = e.order[j], e.order[i]
		})
	}
	e.dice = game.NewDiceSet(e.rng)

	return e, nil
}

func (e *Engine) ID() string {
	return e.id.String()
}

func (e *Engine) Players() []*player.Player {
	return e.players
}

func (e *Engine) Order() []*player.Player {
	return e.order
}

func (e *Engine) Dice() *game.DiceSet {
	return e.dice
}

// Run plays rounds until a board locks out or takes too many penalties.
// It returns ErrIllegalChoice if the collaborator picks a coordinate it was not offered.
func (e *Engine) Run() (Result, error) {
	if e.done {
		return Result{}, ErrGameOver
	}
	e.done = true

	e.metrics.Start(e.ID(), len(e.players))
	e.logger.Info().Msgf("starting game with %d players", len(e.players))
	e.collab.DisplayPlayerOrder(e.order)

	state := game.Continue
	var endedBy *player.Player
	for state == game.Continue {
		e.round++
		e.metrics.AddRound()
		e.logger.Debug().Int("round", e.round).Msg("round begins")

		for i, p := range e.order {
			var err error
			state, endedBy, err = e.playTurn(i, p)
			if err != nil {
				return Result{}, err
			}
			if state != game.Continue {
				break
			}
		}
	}

	standings := Rank(e.players)
	e.collab.DisplayPodium(standings)

	winner := standings[0].Player.Name
	e.logger.Info().
		Str("state", state.String()).
		Str("ended_by", endedBy.Name).
		Str("winner", winner).
		Int("score", standings[0].Score).
		Msgf("game over after %d rounds", e.round)

	return Result{
		GameID:    e.ID(),
		EndState:  state,
		EndedBy:   endedBy,
		Standings: standings,
		Metric:    e.metrics.Complete(state.String(), winner),
	}, nil
}

// playTurn runs one player's turn: the roll, the other players' white choices and the
// active player's white and colored choices. It returns the first terminal board state seen.
func (e *Engine) playTurn(index int, p *player.Player) (game.BoardState, *player.Player, error) {
	e.metrics.AddTurn()
	logger := e.logger.With().Int("round", e.round).Str("player", p.Name).Logger()

	e.collab.DisplayBoard(p)
	e.dice.Roll()
	logger.Debug().Str("dice", e.dice.String()).Msg("rolled")
	e.collab.DisplayDice(p, e.dice)
	e.collab.DisplayOptions(p, p.ValidWhitePlacements(e.dice), p.ValidColorPlacements(e.dice))

	// Everyone else may use the white roll.
	for _, other := range OtherPlayers(e.order, p, index) {
		e.collab.DisplayBoard(other)
		options := other.ValidPlacements(e.dice, true)
		move := e.collab.ChooseOffturnMove(other, options)
		if _, err := e.apply(other, move, options); err != nil {
			return game.Continue, nil, err
		}

		if state := other.State(); state != game.Continue {
			e.collab.NotifyBoardState(other, state)
			return state, other, nil
		}
	}

	e.collab.DisplayBoard(p)
	options := p.ValidPlacements(e.dice, true)
	passWhite, err := e.apply(p, e.collab.ChooseOnturnMove(p, true, options), options)
	if err != nil {
		return game.Continue, nil, err
	}

	e.collab.DisplayBoard(p)
	options = p.ValidPlacements(e.dice, false)
	passColor, err := e.apply(p, e.collab.ChooseOnturnMove(p, false, options), options)
	if err != nil {
		return game.Continue, nil, err
	}

	if passWhite && passColor {
		p.Penalize()
		e.metrics.AddPenalty()
		logger.Info().Int("penalties", p.Board.Penalties()).Msg("penalty")
		e.collab.NotifyPenalty(p)
	}

	e.updateLocks()
	e.collab.DisplayBoard(p)

	if state := p.State(); state != game.Continue {
		e.collab.NotifyBoardState(p, state)
		return state, p, nil
	}
	return game.Continue, nil, nil
}

// apply marks the chosen square, reporting whether the player passed.
func (e *Engine) apply(p *player.Player, move Move, options []game.Coord) (bool, error) {
	if move.Pass {
		return true, nil
	}
	if !utils.Contains(options, move.Coord) {
		return false, fmt.Errorf("%s chose %s: %w", p.Name, move.Coord, ErrIllegalChoice)
	}
	if !p.Board.Mark(move.Coord.Row, move.Coord.Col) {
		panic(fmt.Sprintf("turn validation failed: %s could not mark %s", p.Name, move.Coord))
	}
	e.metrics.AddMark()
	e.logger.Debug().Str("player", p.Name).Str("square", move.Coord.String()).Msg("marked")

	// Locks must be visible to the next validity check in the same turn.
	e.updateLocks()
	return false, nil
}

func (e *Engine) updateLocks() {
	for _, p := range e.players {
		for _, color := range p.Board.UpdateLock() {
			e.logger.Info().Str("player", p.Name).Str("color", color.String()).Msg("row locked")
		}
	}
}
