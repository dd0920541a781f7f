package game

// Rules holds the constants of the standard Qwixx rule set.
type Rules struct {
	LockMinimum   int // marks required in a row before its lock square can be marked
	PenaltyValue  int // points lost per penalty
	MaxPenalties  int // game ends once a board exceeds this many penalties
	MaxLockedRows int // game ends once more than this many rows are locked
}

func NewStandardRules() Rules {
	return Rules{
		LockMinimum:   5,
		PenaltyValue:  5,
		MaxPenalties:  3,
		MaxLockedRows: 1,
	}
}
