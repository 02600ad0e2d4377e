package search

import (
	"sync/atomic"
	"time"

	"corvid/internal/moveslice"
	. "corvid/internal/types"
)

// Info holds the per-search scratch state that alphabeta and quiescence
// read and write as they recurse: node counts, the triangular PV table, the
// static-eval stack used by the "improving" heuristic, and the cooperative
// stop signal. Each Search owns one Info and resets it at the start of every
// go command; unlike History, its counts and PV do not carry over between
// searches.
type Info struct {
	Nodes      uint64
	SelDepth   int
	RootDepth  int

	// pv is a triangular table: pv[ply] holds the best continuation found
	// from ply onward, spliced together on the way back up the tree
	// (see SavePV). pv[0] is the search's principal variation.
	pv []*moveslice.MoveSlice

	// evalStack[ply] is the static evaluation recorded on entry to ply,
	// used to decide whether the side to move is "improving" relative to
	// its own position two plies ago - a signal reverse futility pruning and
	// late move pruning use to prune more aggressively when the position is
	// not improving.
	evalStack [MaxPly]Score

	StartTime time.Time
	TimeLimit time.Duration

	terminated int32 // atomic flag; set by Stop or by a time-limit check
}

// NewInfo returns a zeroed Info with its PV table allocated for MaxPly.
func NewInfo() *Info {
	i := &Info{
		pv: make([]*moveslice.MoveSlice, MaxPly+1),
	}
	for ply := range i.pv {
		i.pv[ply] = moveslice.NewMoveSlice(MaxPly)
	}
	return i
}

// Reset clears node counts and the PV table for a new search, without
// reallocating.
func (i *Info) Reset() {
	i.Nodes = 0
	i.SelDepth = 0
	for _, line := range i.pv {
		line.Clear()
	}
	i.StartTime = time.Time{}
	atomic.StoreInt32(&i.terminated, 0)
}

// SavePV records move as the best move at ply, followed by the
// continuation already found one ply deeper - the triangular table's
// splice step.
func (i *Info) SavePV(ply int, move Move) {
	dest := i.pv[ply]
	dest.Clear()
	dest.PushBack(move)
	if ply+1 < len(i.pv) {
		child := i.pv[ply+1]
		for j := 0; j < child.Len(); j++ {
			dest.PushBack(child.At(j))
		}
	}
}

// ClearPV drops whatever continuation was recorded at ply. It is called on
// entry to every node, so a node that never improves alpha leaves an empty
// continuation behind.
func (i *Info) ClearPV(ply int) {
	i.pv[ply].Clear()
}

// PVLine returns the full principal variation found by the last completed
// iteration.
func (i *Info) PVLine() *moveslice.MoveSlice {
	return i.pv[0]
}

// BestMove returns the root move of the current PV, or MoveNone if no PV
// has been established yet.
func (i *Info) BestMove() Move {
	if i.pv[0].Len() == 0 {
		return MoveNone
	}
	return i.pv[0].At(0)
}

// RecordEval stores the static evaluation seen on entry to ply.
func (i *Info) RecordEval(ply int, eval Score) {
	if ply < len(i.evalStack) {
		i.evalStack[ply] = eval
	}
}

// Improving reports whether the static eval at ply is better than the one
// recorded two plies earlier (same side to move) - used to tighten or
// relax pruning margins.
func (i *Info) Improving(ply int, eval Score) bool {
	if ply < 2 {
		return true
	}
	return eval > i.evalStack[ply-2]
}

// Terminate cooperatively signals every recursion level to unwind.
func (i *Info) Terminate() {
	atomic.StoreInt32(&i.terminated, 1)
}

// Terminated reports whether Terminate has been called, or the time limit
// has elapsed.
func (i *Info) Terminated() bool {
	if atomic.LoadInt32(&i.terminated) != 0 {
		return true
	}
	if i.TimeLimit > 0 && time.Since(i.StartTime) >= i.TimeLimit {
		return true
	}
	return false
}

// Elapsed returns how long the current search has been running.
func (i *Info) Elapsed() time.Duration {
	return time.Since(i.StartTime)
}

// Nps returns nodes per second over the elapsed search time.
func (i *Info) Nps() uint64 {
	elapsed := i.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(i.Nodes) / elapsed)
}
