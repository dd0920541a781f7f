package engine

import (
	"qwixx/game"
	"qwixx/metrics"
	"qwixx/player"

	"golang.org/x/exp/slices"
)

// Standing is a player's final placing. Place starts at 1.
type Standing struct {
	Place  int
	Player *player.Player
	Score  int
}

// Rank orders players by descending score. Ties keep the order of players,
// so the earlier-registered player places higher.
func Rank(players []*player.Player) []Standing {
	standings := make([]Standing, len(players))
	for i, p := range players {
		standings[i] = Standing{Player: p, Score: p.Score()}
	}
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return b.Score - a.Score
	})
	for i := range standings {
		standings[i].Place = i + 1
	}
	return standings
}

// Result is the outcome of a finished game.
type Result struct {
	GameID    string
	EndState  game.BoardState
	EndedBy   *player.Player // the player whose board ended the game
	Standings []Standing
	Metric    metrics.GameMetric
}

func (r Result) Winner() *player.Player {
	if len(r.Standings) == 0 {
		return nil
	}
	return r.Standings[0].Player
}

func (r Result) StandingRecords() []metrics.StandingRecord {
	records := make([]metrics.StandingRecord, len(r.Standings))
	for i, s := range r.Standings {
		records[i] = metrics.StandingRecord{
			GameID:     r.GameID,
			Place:      s.Place,
			Player:     s.Player.Name,
			Score:      s.Score,
			Penalties:  s.Player.Board.Penalties(),
			LockedRows: s.Player.Board.LockedRows(),
		}
	}
	return records
}
