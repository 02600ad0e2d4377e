// Package evaluator assigns a score to a position. The search core treats it
// as an external collaborator - here a scalar material+piece-square
// accumulator shaped like an NNUE update pipeline: pieces are
// activated/deactivated on an incremental accumulator between push/commit
// brackets, rather than summed from scratch on every call to Evaluate.
package evaluator

import (
	"corvid/internal/position"
	. "corvid/internal/types"
)

// pieceValue is the evaluator's own material table, distinct from the
// coarser types.PieceType.SeeValue table the search core's SEE uses for
// exchange approximation: evaluation wants finer-tuned centipawn values,
// SEE only needs values coarse enough to rank a capture sequence.
var pieceValue = [PtLength]int32{
	PtNone: 0,
	Pawn:   180,
	Knight: 478,
	Bishop: 478,
	Rook:   642,
	Queen:  900,
	King:   0,
}

// tempoBonus rewards the side to move for having the next move - a little
// over a quarter of pieceValue[Pawn].
const tempoBonus int32 = 48

// Accumulator holds the running material+positional sum per color. It is
// the unit pushed/popped across make/unmake so a evaluator can be kept in
// lockstep with search's position stack without rescanning the board at
// every node.
type Accumulator struct {
	sum [2]int32
}

// Evaluator wraps an Accumulator with the push/pop/activate/deactivate/
// commit lifecycle a real incremental network update would use: Push saves
// the current accumulator, Activate/Deactivate fold a piece in or out,
// Commit finalizes the pending update, and Pop restores the saved
// accumulator on search backtrack.
type Evaluator struct {
	current Accumulator
	stack   []Accumulator
}

// NewEvaluator returns an evaluator with an empty (all-zero) accumulator.
// Call SyncFromPosition before the first Evaluate.
func NewEvaluator() *Evaluator {
	return &Evaluator{stack: make([]Accumulator, 0, MaxPly)}
}

// Push saves the current accumulator so a later Pop can restore it -
// mirrors stepping one ply deeper in the search tree.
func (e *Evaluator) Push() {
	e.stack = append(e.stack, e.current)
}

// Pop restores the accumulator saved by the matching Push - mirrors
// backtracking one ply in the search tree (UndoMove).
func (e *Evaluator) Pop() {
	n := len(e.stack)
	e.current = e.stack[n-1]
	e.stack = e.stack[:n-1]
}

// Activate folds a piece newly placed on sq into the accumulator.
func (e *Evaluator) Activate(c Color, pt PieceType, sq Square) {
	e.current.sum[c] += pieceValue[pt] + pstValue(c, pt, sq)
}

// Deactivate folds a piece removed from sq out of the accumulator.
func (e *Evaluator) Deactivate(c Color, pt PieceType, sq Square) {
	e.current.sum[c] -= pieceValue[pt] + pstValue(c, pt, sq)
}

// Commit finalizes the updates made since the last Push. A real
// efficiently-updatable network would flush queued column updates here;
// this accumulator updates eagerly in Activate/Deactivate, so Commit is a
// no-op kept only to preserve the push/activate/deactivate/commit shape.
func (e *Evaluator) Commit() {}

// SyncFromPosition rebuilds the accumulator from scratch by activating
// every piece on the board. Used at the search root and after ucinewgame,
// where there is no incremental predecessor state to build on.
func (e *Evaluator) SyncFromPosition(p *position.Position) {
	e.current = Accumulator{}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.PiecesBb(c, pt)
			for bb != BbZero {
				sq := bb.PopLsb()
				e.Activate(c, pt, sq)
			}
		}
	}
}

// Evaluate returns the position's score from the side-to-move's
// perspective, clamped away from the mate-score band.
func (e *Evaluator) Evaluate(p *position.Position) Score {
	us, them := p.SideToMove(), p.SideToMove().Flip()
	v := e.current.sum[us] - e.current.sum[them] + tempoBonus
	return Score(v).Clamp()
}
