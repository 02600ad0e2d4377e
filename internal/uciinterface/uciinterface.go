// Package uciinterface defines the callback a Search uses to report
// progress to a UCI frontend. It exists as its own package, separate from
// both search and uci, so the uci package can hold a *search.Search while
// search calls back into it without the two packages importing each other.
package uciinterface

import (
	"time"

	"corvid/internal/moveslice"
	. "corvid/internal/types"
)

// Driver receives progress reports from a running search.
type Driver interface {
	SendIterationEnd(depth, selDepth int, value Score, nodes, nps uint64, elapsed time.Duration, pv moveslice.MoveSlice)
	SendCurrentMove(move Move, moveNumber int)
	SendSearchUpdate(depth, selDepth int, nodes, nps uint64, elapsed time.Duration, hashfull int)
	SendInfoString(info string)
	SendResult(bestMove, ponderMove Move)
}
