package search

import (
	"corvid/internal/movegen"
	"corvid/internal/moveslice"
	"corvid/internal/position"
	"corvid/internal/transpositiontable"
	. "corvid/internal/types"
)

// alphaBeta is the negamax tree walk: for a non-leaf node it tries every
// legal move (ordered to put the most promising ones first), negating and
// swapping the window on recursion, and returns the best score found. depth
// is remaining search depth; ply is distance from the root, used for
// mate-distance bookkeeping and the PV/killer tables.
func (s *Search) alphaBeta(p *position.Position, depth, ply int, alpha, beta Score) Score {
	s.info.ClearPV(ply)

	if s.info.Nodes&2047 == 0 && s.info.Terminated() {
		return 0
	}

	isRoot := ply == 0
	pvNode := beta-alpha > 1
	originalAlpha := alpha
	inCheck := p.InCheck()

	if !isRoot {
		if p.IsDraw() {
			return DrawScore
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
	}

	if ply >= MaxPly-1 {
		return s.eval.Evaluate(p)
	}
	if depth <= 0 && !inCheck {
		return s.quiescence(p, ply, alpha, beta)
	}
	if depth < 0 {
		depth = 0
	}

	ttMove := MoveNone
	if entry, ok := s.tt.Probe(p.ZobristKey()); ok {
		s.stats.TTHits++
		if !pvNode {
			if v, cut := validCutoff(entry, alpha, beta, depth, ply); cut {
				s.stats.TTCuts++
				return v
			}
		}
		ttMove = entry.Move()
	} else {
		s.stats.TTMisses++
	}

	if !isRoot && ttMove == MoveNone && s.params.UseIIR && depth >= s.params.IIRDepth {
		depth--
		s.stats.IIRReductions++
	}

	if inCheck && s.params.UseCheckExtension {
		depth++
		s.stats.CheckExtensions++
	}

	s.info.Nodes++
	if ply > s.info.SelDepth {
		s.info.SelDepth = ply
	}

	eval := s.eval.Evaluate(p)
	s.info.RecordEval(ply, eval)
	improving := !inCheck && s.info.Improving(ply, eval)

	if !inCheck && !pvNode && !isRoot {
		rfpMargin := s.params.RFPMargin(depth)
		if !improving {
			rfpMargin -= s.params.RFPMargin(1)
		}
		if s.params.UseRFP && depth < s.params.RFPDepth && eval-rfpMargin > beta {
			s.stats.RFPPrunings++
			return eval
		}
		if s.params.UseRazoring && depth <= s.params.RazoringDepth && eval+s.params.RazoringMargin(depth) <= alpha {
			score := s.quiescence(p, ply, alpha, beta)
			if score <= alpha {
				s.stats.RazoringCutoffs++
				return score
			}
		}
		if s.params.UseNMP && !p.LastMoveWasNull() && depth >= s.params.NMPMinDepth && eval > beta {
			r := s.params.NMPBaseR + depth/s.params.NMPDepthDiv
			if extra := int((eval - beta) / 200); extra < 4 {
				r += extra
			} else {
				r += 4
			}
			s.doNullMove(p)
			score := -s.alphaBeta(p, depth-r, ply+1, -beta, -beta+1)
			s.undoNullMove(p)
			if score >= beta {
				s.stats.NullMoveCuts++
				return beta
			}
		}
	}

	moves := movegen.GenerateLegalMoves(p)
	ScoreMoves(p, moves, ttMove, ply, s.history)

	if moves.Len() == 0 {
		if inCheck {
			return MatedIn(ply)
		}
		return DrawScore
	}

	bestScore := -Infinity
	bestMove := MoveNone
	captures := moveslice.NewMoveSlice(moves.Len())
	quiets := moveslice.NewMoveSlice(moves.Len())
	lmpThreshold := s.params.LMPMovesSearched(depth)
	if improving {
		lmpThreshold += lmpThreshold / 2
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.Next(i)
		isCapture := p.IsCapturingMove(m)

		if !isRoot && i > 0 && alpha > -MateBound {
			if s.params.UseFP && !pvNode && !inCheck && !isCapture &&
				depth <= s.params.FPDepth && eval+s.params.FPMargin(depth) < alpha {
				break
			}
			if s.params.UseLMP && !pvNode && !inCheck && !isCapture &&
				depth <= s.params.LMPDepth && i >= lmpThreshold {
				break
			}
			if s.params.UseSEEPruning && depth < s.params.SEEDepth {
				margin := s.params.SEEQuietMargin
				if isCapture {
					margin = s.params.SEENoisyMargin
				}
				if !SEE(p, m, int32(margin)*int32(depth)) {
					continue
				}
			}
		}

		s.doMove(p, m)

		var score Score
		if i == 0 {
			score = -s.alphaBeta(p, depth-1, ply+1, -beta, -alpha)
		} else {
			r := 1
			if s.params.UseLMR && i >= s.params.LMRMovesPlayed && depth >= s.params.LMRMinDepth &&
				ply >= 3 && !isCapture && m.MoveType() != Promotion && !inCheck && !s.history.IsKiller(ply, m) {
				r = s.params.LMRReduction(depth, i)
				if r < 1 {
					r = 1
				}
				score = -s.alphaBeta(p, depth-r, ply+1, -alpha-1, -alpha)
				s.stats.LMRReductions++
			} else {
				score = alpha + 1
			}
			if score > alpha {
				score = -s.alphaBeta(p, depth-1, ply+1, -alpha-1, -alpha)
				if score > alpha && score < beta {
					score = -s.alphaBeta(p, depth-1, ply+1, -beta, -alpha)
					s.stats.LMRResearches++
				}
			}
		}

		s.undoMove(p)

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				s.info.SavePV(ply, m)
			}
		}

		if alpha >= beta {
			s.stats.BetaCuts++
			if i == 0 {
				s.stats.BetaCuts1st++
			}
			break
		}

		if isCapture {
			captures.PushBack(m)
		} else {
			quiets.PushBack(m)
		}
	}

	bound := transpositiontable.BoundExact
	switch {
	case bestScore <= originalAlpha:
		bound = transpositiontable.BoundUpper
	case bestScore >= beta:
		bound = transpositiontable.BoundLower
	}
	if bound == transpositiontable.BoundLower && bestMove != MoveNone {
		s.updateOrderingHeuristics(p, depth, ply, bestMove, captures, quiets)
	}
	s.tt.Store(p.ZobristKey(), bestMove, depth, bound, bestScore.ToTT(ply), eval)

	return bestScore
}

// validCutoff reports whether a TT entry is deep enough and tight enough
// relative to its bound to resolve this node outright, returning the score
// to use if so.
func validCutoff(e transpositiontable.Entry, alpha, beta Score, depth, ply int) (Score, bool) {
	if e.Depth() < depth {
		return 0, false
	}
	v := e.Value().FromTT(ply)
	switch e.Bound() {
	case transpositiontable.BoundExact:
		return v, true
	case transpositiontable.BoundLower:
		if v >= beta {
			return v, true
		}
	case transpositiontable.BoundUpper:
		if v <= alpha {
			return v, true
		}
	}
	return 0, false
}

// updateOrderingHeuristics rewards bestMove (the move that produced a beta
// cutoff) and penalizes every other move of the same class tried at this
// node before it, so future searches try bestMove-like moves earlier and
// its rivals later. Capture and quiet moves are tracked in separate
// history tables since what makes a capture promising (it wins material)
// is a different signal from what makes a quiet move promising (it has
// cut off searches before).
func (s *Search) updateOrderingHeuristics(p *position.Position, depth, ply int, bestMove Move, captures, quiets *moveslice.MoveSlice) {
	bonus := int32(depth * depth)
	stm := p.SideToMove()

	if p.IsCapturingMove(bestMove) {
		moved := p.GetPiece(bestMove.From()).TypeOf()
		s.history.UpdateCapture(MakePiece(stm, moved), bestMove.To(), MakePiece(stm.Flip(), capturedType(p, bestMove)), bonus)
		for i := 0; i < captures.Len(); i++ {
			m := captures.At(i)
			if m == bestMove {
				continue
			}
			mv := p.GetPiece(m.From()).TypeOf()
			s.history.UpdateCapture(MakePiece(stm, mv), m.To(), MakePiece(stm.Flip(), capturedType(p, m)), -bonus)
		}
		return
	}

	s.history.StoreKiller(ply, bestMove)
	s.history.UpdateMain(stm, bestMove.From(), bestMove.To(), bonus)
	for i := 0; i < quiets.Len(); i++ {
		m := quiets.At(i)
		if m == bestMove {
			continue
		}
		s.history.UpdateMain(stm, m.From(), m.To(), -bonus)
	}
}
