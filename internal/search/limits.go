package search

import (
	"time"

	"corvid/internal/moveslice"
)

// Limits describes how a single "go" command should bound its search - an
// explicit depth or move-time limit, or a time-control clock the search
// should manage itself, or "search until told to stop". Nodes and Mate are
// recorded from the command, but the search does not act on them.
type Limits struct {
	Infinite bool
	Ponder   bool
	Mate     int

	Depth int
	Nodes uint64
	Moves moveslice.MoveSlice

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewLimits returns an empty Limits (no bound at all - the caller should
// set at least one field, or Infinite, before starting a search).
func NewLimits() *Limits {
	return &Limits{}
}

// TimeBudget estimates how long the current move should spend searching
// under a clock-based time control: the remaining time divided across the
// moves still expected before the next control, plus that move's
// increment, shaved down to leave a safety margin against clock flagging.
func (l *Limits) TimeBudget(stm int) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if !l.TimeControl {
		return 0
	}
	var remaining, inc time.Duration
	if stm == 0 {
		remaining, inc = l.WhiteTime, l.WhiteInc
	} else {
		remaining, inc = l.BlackTime, l.BlackInc
	}
	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budget := remaining/time.Duration(movesToGo) + inc
	safety := budget / 10
	budget -= safety
	if budget < time.Millisecond {
		budget = time.Millisecond
	}
	if budget > remaining {
		budget = remaining
	}
	return budget
}
