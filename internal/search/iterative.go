package search

import (
	"corvid/internal/moveslice"
	"corvid/internal/position"
	. "corvid/internal/types"
)

// iterativeDeepening drives the search one ply at a time from depth 1 up to
// maxDepth, re-searching the same position at ever-increasing depth rather
// than jumping straight to maxDepth. Each finished iteration's best move is
// searched first at the next depth (root moves are re-sorted by the value
// just found), so a deeper iteration usually confirms the previous one's
// choice quickly instead of re-deriving it from scratch. The loop can be
// cut short at any time by Info.Terminated; the result of the last fully
// completed iteration is always what gets returned.
func (s *Search) iterativeDeepening(p *position.Position, maxDepth int, limits *Limits) *Result {
	moves := rootMoveList(p, limits)

	if moves.Len() == 0 {
		value := DrawScore
		if p.InCheck() {
			value = MatedIn(0)
		}
		return &Result{BestMove: MoveNone, Value: value}
	}

	ScoreMoves(p, moves, MoveNone, 0, s.history)
	moves.Sort()

	var bestValue Score
	var bestPv moveslice.MoveSlice
	completedDepth := 0

	for depth := 1; depth <= maxDepth; depth++ {
		s.info.RootDepth = depth

		var value Score
		if s.params.AspirationDelta > 0 && depth > 3 {
			value = s.aspirationSearch(p, moves, depth, bestValue)
		} else {
			value = s.rootSearch(p, moves, depth, -Infinity, Infinity)
		}

		if s.info.Terminated() && depth > 1 {
			break
		}

		bestValue = value
		completedDepth = depth
		bestPv = append(bestPv[:0], *s.info.PVLine()...)
		moves.Sort()

		if s.driver != nil {
			s.driver.SendIterationEnd(depth, s.info.SelDepth, bestValue, s.info.Nodes, s.info.Nps(), s.info.Elapsed(), *s.info.PVLine())
		}

		if moves.Len() == 1 || s.info.Terminated() {
			break
		}
	}

	result := &Result{
		Value:    bestValue,
		Depth:    completedDepth,
		SelDepth: s.info.SelDepth,
		Nodes:    s.info.Nodes,
		Elapsed:  s.info.Elapsed(),
		Pv:       bestPv,
		Stats:    s.stats,
	}
	if bestPv.Len() > 0 {
		result.BestMove = bestPv.At(0)
	} else if moves.Len() > 0 {
		result.BestMove = moves.At(0).Move
	}
	if bestPv.Len() > 1 {
		result.PonderMove = bestPv.At(1)
	}
	return result
}

// aspirationSearch re-searches depth with a window centered tightly around
// the previous iteration's score instead of the full (-Infinity, Infinity)
// range. A tight window lets alpha-beta prove most of the tree irrelevant
// far faster than a full search would - but if the true score has moved
// outside the window, the search "fails" and must be retried with a wider
// one. AspirationSteps gives the sequence of half-widths to retry with; the
// last step is always the full window, so the search always eventually
// resolves.
func (s *Search) aspirationSearch(p *position.Position, moves *moveslice.ScoredMoveList, depth int, previous Score) Score {
	alpha := previous - s.params.AspirationDelta
	beta := previous + s.params.AspirationDelta
	if alpha < -Infinity {
		alpha = -Infinity
	}
	if beta > Infinity {
		beta = Infinity
	}

	for _, delta := range s.params.AspirationSteps {
		value := s.rootSearch(p, moves, depth, alpha, beta)
		if s.info.Terminated() {
			return value
		}
		if value <= alpha {
			s.stats.AspirationResearches++
			alpha = previous - delta
			if alpha < -Infinity {
				alpha = -Infinity
			}
			continue
		}
		if value >= beta {
			s.stats.AspirationResearches++
			beta = previous + delta
			if beta > Infinity {
				beta = Infinity
			}
			continue
		}
		return value
	}

	return s.rootSearch(p, moves, depth, -Infinity, Infinity)
}

// rootSearch is alphaBeta's ply-0 counterpart: the move loop is identical in
// spirit (PVS window, best-move/PV tracking) but every root move is always
// tried in full - none of the main search's pruning applies at the root,
// since a root move pruned away could never become the engine's answer.
func (s *Search) rootSearch(p *position.Position, moves *moveslice.ScoredMoveList, depth int, alpha, beta Score) Score {
	s.info.ClearPV(0)
	bestValue := -Infinity

	for i := 0; i < moves.Len(); i++ {
		m := moves.Next(i)

		s.doMove(p, m)

		var value Score
		if i == 0 {
			value = -s.alphaBeta(p, depth-1, 1, -beta, -alpha)
		} else {
			value = -s.alphaBeta(p, depth-1, 1, -alpha-1, -alpha)
			if value > alpha && value < beta {
				value = -s.alphaBeta(p, depth-1, 1, -beta, -alpha)
			}
		}

		s.undoMove(p)

		moves.SetScore(i, int32(value))

		if s.info.Terminated() && depth > 1 {
			return bestValue
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				s.info.SavePV(0, m)
			}
		}

		if alpha >= beta {
			break
		}
	}

	return bestValue
}
