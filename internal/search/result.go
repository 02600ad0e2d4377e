package search

import (
	"time"

	"corvid/internal/moveslice"
	. "corvid/internal/types"
)

// Result reports the outcome of a completed (or stopped) search. BestMove
// is MoveNone only when the root position has no legal move (checkmate or
// stalemate); if no iteration left a PV, Go falls back to the first root
// move.
type Result struct {
	BestMove    Move
	PonderMove  Move
	Value       Score
	Depth       int
	SelDepth    int
	Nodes       uint64
	Elapsed     time.Duration
	Pv          moveslice.MoveSlice
	Stats       Statistics
}
