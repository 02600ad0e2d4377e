package search

import (
	"corvid/internal/movegen"
	"corvid/internal/position"
	"corvid/internal/transpositiontable"
	. "corvid/internal/types"
)

// quiescence extends a leaf node with captures (and, when in check, every
// legal reply) until the position is "quiet" - no more captures worth
// playing - so the static evaluator is never asked to judge a position in
// the middle of an exchange. SEE gates which captures are worth trying:
// a capture whose exchange nets less than QSeeThreshold is assumed to
// stay bad and is skipped rather than searched.
func (s *Search) quiescence(p *position.Position, ply int, alpha, beta Score) Score {
	s.info.Nodes++
	s.stats.QNodes++
	if ply > s.info.SelDepth {
		s.info.SelDepth = ply
	}
	if s.info.Nodes&2047 == 0 && s.info.Terminated() {
		return 0
	}

	if s.params.UseMDP {
		if mateAlpha := MatedIn(ply); alpha < mateAlpha {
			alpha = mateAlpha
		}
		if mateBeta := MateIn(ply + 1); beta > mateBeta {
			beta = mateBeta
		}
		if alpha >= beta {
			return alpha
		}
	}

	if ply >= MaxPly-1 {
		return s.eval.Evaluate(p)
	}

	inCheck := p.InCheck()

	var bestValue Score
	if !inCheck {
		staticEval := s.eval.Evaluate(p)
		if staticEval >= beta {
			s.stats.StandPatCuts++
			return staticEval
		}
		if staticEval > alpha {
			alpha = staticEval
		}
		bestValue = staticEval
	} else {
		bestValue = -Infinity
	}

	if entry, ok := s.tt.Probe(p.ZobristKey()); ok {
		s.stats.TTHits++
		ttValue := entry.Value().FromTT(ply)
		switch entry.Bound() {
		case transpositiontable.BoundExact:
			return ttValue
		case transpositiontable.BoundLower:
			if ttValue >= beta {
				s.stats.TTCuts++
				return ttValue
			}
		case transpositiontable.BoundUpper:
			if ttValue <= alpha {
				s.stats.TTCuts++
				return ttValue
			}
		}
	} else {
		s.stats.TTMisses++
	}

	var moves = movegen.GenerateCaptures(p)
	if inCheck {
		moves = movegen.GenerateLegalMoves(p)
	}
	if moves.Len() == 0 {
		if inCheck {
			return MatedIn(ply)
		}
		return bestValue
	}
	ScoreMoves(p, moves, MoveNone, ply, s.history)

	bestMove := MoveNone
	for i := 0; i < moves.Len(); i++ {
		m := moves.Next(i)

		if !inCheck && s.params.UseSEEPruning && !SEE(p, m, s.params.QSeeThreshold) {
			continue
		}

		s.doMove(p, m)
		if !p.WasLegalMove() {
			s.undoMove(p)
			continue
		}
		value := -s.quiescence(p, ply+1, -beta, -alpha)
		s.undoMove(p)

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				if value >= beta {
					s.stats.BetaCuts++
					break
				}
			}
		}
	}

	bound := transpositiontable.BoundUpper
	if bestValue >= beta {
		bound = transpositiontable.BoundLower
	}
	s.tt.Store(p.ZobristKey(), bestMove, 0, bound, bestValue.ToTT(ply), bestValue)

	return bestValue
}
