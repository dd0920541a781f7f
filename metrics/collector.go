package metrics

import (
	"sync/atomic"
	"time"
)

// GameMetric summarizes one finished game.
type GameMetric struct {
	GameID    string
	Players   int
	Rounds    int
	Turns     int
	Marks     int
	Penalties int
	EndState  string
	Winner    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start(gameID string, players int)
	AddRound()
	AddTurn()
	AddMark()
	AddPenalty()
	Complete(endState, winner string) GameMetric
}

type collector struct {
	gameID    string
	players   int
	startTime time.Time
	rounds    atomic.Int32
	turns     atomic.Int32
	marks     atomic.Int32
	penalties atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID string, players int) {
	m.gameID = gameID
	m.players = players
	m.startTime = time.Now()
	m.rounds.Store(0)
	m.turns.Store(0)
	m.marks.Store(0)
	m.penalties.Store(0)
}

func (m *collector) AddRound() {
	m.rounds.Add(1)
}

func (m *collector) AddTurn() {
	m.turns.Add(1)
}

func (m *collector) AddMark() {
	m.marks.Add(1)
}

func (m *collector) AddPenalty() {
	m.penalties.Add(1)
}

func (m *collector) Complete(endState, winner string) GameMetric {
	end := time.Now()
	return GameMetric{
		GameID:    m.gameID,
		Players:   m.players,
		Rounds:    int(m.rounds.Load()),
		Turns:     int(m.turns.Load()),
		Marks:     int(m.marks.Load()),
		Penalties: int(m.penalties.Load()),
		EndState:  endState,
		Winner:    winner,
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID string, players int) {}
func (m *dummyCollector) AddRound()                       {}
func (m *dummyCollector) AddTurn()                        {}
func (m *dummyCollector) AddMark()                        {}
func (m *dummyCollector) AddPenalty()                     {}
func (m *dummyCollector) Complete(endState, winner string) GameMetric {
	return GameMetric{}
}
