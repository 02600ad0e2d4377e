// Package history implements the move-ordering heuristics search accrues
// across a tree walk: main history (side-to-move/from/to), capture history
// (piece/to/captured), and a killer-move table per ply.
package history

import . "corvid/internal/types"

// MaxHistory bounds the magnitude of any history score, enforced by the
// gravity-style update in Update so repeated good moves saturate instead of
// overflowing and eventually dominating every other ordering signal.
const MaxHistory int32 = 16384

// History accumulates move-ordering statistics across an iterative
// deepening search. It is reset at ucinewgame, not between iterations or
// moves within one search, since colder statistics hurt ordering more than
// slightly stale ones help.
type History struct {
	main    [2][SqLength][SqLength]int32
	capture [PieceLength][SqLength][PieceLength]int32
	killers [MaxPly][2]Move
}

// New returns a zeroed History.
func New() *History {
	return &History{}
}

// Clear resets every table to zero, for ucinewgame.
func (h *History) Clear() {
	*h = History{}
}

// Main returns the quiet-move history score for a move by side-to-move
// stm from `from` to `to`.
func (h *History) Main(stm Color, from, to Square) int32 {
	return h.main[stm][from][to]
}

// Capture returns the capture history score for moving piece pc to square
// to, capturing captured.
func (h *History) Capture(pc Piece, to Square, captured Piece) int32 {
	return h.capture[pc][to][captured]
}

// UpdateMain applies a gravity-weighted bonus (or malus, if bonus < 0) to a
// quiet move's history score: the adjustment shrinks as the score
// approaches +-MaxHistory, so the value self-bounds instead of needing a
// hard clamp after every update.
func (h *History) UpdateMain(stm Color, from, to Square, bonus int32) {
	v := &h.main[stm][from][to]
	*v += bonus - *v*abs32(bonus)/MaxHistory
}

// UpdateCapture applies the same gravity-weighted update to capture history.
func (h *History) UpdateCapture(pc Piece, to Square, captured Piece, bonus int32) {
	v := &h.capture[pc][to][captured]
	*v += bonus - *v*abs32(bonus)/MaxHistory
}

// Killers returns the two killer moves stored for ply.
func (h *History) Killers(ply int) [2]Move {
	return h.killers[ply]
}

// StoreKiller records m as a killer at ply, shifting the previous first
// killer down to second. A move already stored as the first killer is not
// re-inserted.
func (h *History) StoreKiller(ply int, m Move) {
	if h.killers[ply][0] == m {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

// IsKiller reports whether m is one of the two killers stored at ply.
func (h *History) IsKiller(ply int, m Move) bool {
	return h.killers[ply][0] == m || h.killers[ply][1] == m
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
