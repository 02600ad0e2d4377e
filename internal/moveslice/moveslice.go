// Package moveslice provides growable containers for chess moves, used both
// as move generator output and as the backing storage for the triangular PV
// table built up during search.
package moveslice

import (
	"fmt"
	"strings"

	. "corvid/internal/types"
)

// MoveSlice is a plain, unscored list of moves - used for the PV table and
// anywhere ordering does not apply.
type MoveSlice []Move

// NewMoveSlice creates an empty move slice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

func (ms *MoveSlice) Len() int { return len(*ms) }

func (ms *MoveSlice) PushBack(m Move) { *ms = append(*ms, m) }

func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

func (ms *MoveSlice) At(i int) Move { return (*ms)[i] }

func (ms *MoveSlice) Set(i int, m Move) { (*ms)[i] = m }

// CopyFrom overwrites ms with a copy of src, growing ms if needed.
func (ms *MoveSlice) CopyFrom(src MoveSlice) {
	*ms = append((*ms)[:0], src...)
}

func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveSlice: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci renders ms as a space-separated list of UCI move strings, the
// format a "pv" field in a UCI "info" line expects.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}

// ScoredMove pairs a move with its move-ordering sort key. The dominance
// order's magnitudes (hash move, good/bad capture, killer, drop, history)
// span a range far wider than the 16 bits a Move has room for, so the key
// travels alongside the move instead of packed inside it.
type ScoredMove struct {
	Move  Move
	Score int32
}

// ScoredMoveList is the move generator's output: every pseudo-legal move
// paired with its ordering key, sorted once before the search loop consumes
// it move by move.
type ScoredMoveList []ScoredMove

func NewScoredMoveList(cap int) *ScoredMoveList {
	moves := make([]ScoredMove, 0, cap)
	return (*ScoredMoveList)(&moves)
}

func (ms *ScoredMoveList) Len() int { return len(*ms) }

func (ms *ScoredMoveList) PushBack(m Move, score int32) {
	*ms = append(*ms, ScoredMove{Move: m, Score: score})
}

func (ms *ScoredMoveList) Clear() { *ms = (*ms)[:0] }

func (ms *ScoredMoveList) At(i int) ScoredMove { return (*ms)[i] }

func (ms *ScoredMoveList) SetScore(i int, score int32) { (*ms)[i].Score = score }

// Sort orders moves from highest Score to lowest. Stable insertion sort:
// lists are typically small (<= ~40 moves) and already partially ordered by
// generation order, so insertion sort beats a general-purpose sort here.
func (ms *ScoredMoveList) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.Score > (*ms)[j-1].Score {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// Next returns the highest-scoring move not yet returned, selection-sorting
// lazily: it swaps the best of the unexamined tail into position i and
// returns it. Used by the search loop so the list is never fully sorted if
// a cutoff happens first; the keys themselves are assigned up front.
func (ms *ScoredMoveList) Next(i int) Move {
	best := i
	for j := i + 1; j < len(*ms); j++ {
		if (*ms)[j].Score > (*ms)[best].Score {
			best = j
		}
	}
	if best != i {
		(*ms)[i], (*ms)[best] = (*ms)[best], (*ms)[i]
	}
	return (*ms)[i].Move
}
