package search

import (
	"corvid/internal/history"
	"corvid/internal/moveslice"
	"corvid/internal/position"
	. "corvid/internal/types"
)

// Move-ordering dominance constants. Magnitudes are spaced widely apart on
// purpose: a hash move must always sort above every capture, a good capture
// above every killer and quiet move, and so on, regardless of how large the
// finer-grained MVV or history components get layered on top.
const (
	hashMoveScore   int32 = 300_000_000
	goodCaptureBase int32 = 200_000_000
	badCaptureBase  int32 = -200_000_000
	killerScore     int32 = 100_000_000
	dropMoveScore   int32 = 100_000
)

// ScoreMoves assigns an ordering key to every move in ml, following the
// dominance order hash move > good capture > killer > drop > quiet (ranked
// by history) > bad capture. ttMove is the move recorded for this position
// in the transposition table, if any; ply indexes the killer table.
func ScoreMoves(p *position.Position, ml *moveslice.ScoredMoveList, ttMove Move, ply int, h *history.History) {
	stm := p.SideToMove()
	killers := h.Killers(ply)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i).Move

		if m == ttMove {
			ml.SetScore(i, hashMoveScore)
			continue
		}

		if p.IsCapturingMove(m) {
			captured := capturedType(p, m)
			mvv := 32 * captured.SeeValue()
			moved := p.GetPiece(m.From()).TypeOf()
			capHist := h.Capture(MakePiece(stm, moved), m.To(), MakePiece(stm.Flip(), captured))
			if SEE(p, m, 0) {
				ml.SetScore(i, goodCaptureBase+capHist+mvv)
			} else {
				ml.SetScore(i, badCaptureBase+capHist+mvv)
			}
			continue
		}

		if m == killers[0] || m == killers[1] {
			ml.SetScore(i, killerScore)
			continue
		}

		if m.MoveType() == Put {
			ml.SetScore(i, dropMoveScore)
			continue
		}

		ml.SetScore(i, h.Main(stm, m.From(), m.To()))
	}
}

// capturedType returns the type of the piece m removes from the board,
// accounting for en passant where the captured pawn is not on m.To().
func capturedType(p *position.Position, m Move) PieceType {
	if m.MoveType() == EnPassant {
		return Pawn
	}
	return p.GetPiece(m.To()).TypeOf()
}
