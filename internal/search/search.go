// Package search implements the engine's core: iterative deepening over a
// negamax alpha-beta tree with a transposition table, move ordering,
// selective pruning/reduction/extension, and quiescence search. The board,
// evaluator, and UCI front end are treated as external collaborators
// (constructed elsewhere and handed in), matching the distinction the
// engine itself draws between its search core and everything around it.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"corvid/internal/evaluator"
	"corvid/internal/history"
	"corvid/internal/movegen"
	"corvid/internal/moveslice"
	"corvid/internal/position"
	"corvid/internal/transpositiontable"
	. "corvid/internal/types"
	"corvid/internal/uciinterface"
)

// Search owns everything a single search run needs: the transposition
// table and history heuristics persist across searches (cleared only on
// ucinewgame), while Info is reset for every "go".
type Search struct {
	tt      *transpositiontable.Table
	eval    *evaluator.Evaluator
	history *history.History
	params  *Params
	info    *Info
	stats   Statistics

	driver uciinterface.Driver

	// isRunning is a weighted semaphore of capacity 1, held for the
	// duration of a search. IsSearching and Stop both probe or wait on it
	// rather than a separate flag, so "is a search in flight" and "block
	// until it isn't" share one piece of state.
	isRunning *semaphore.Weighted
}

// NewSearch builds a Search with a transposition table of the given size
// and default pruning parameters.
func NewSearch(ttSizeMB int) *Search {
	return &Search{
		tt:        transpositiontable.New(ttSizeMB),
		eval:      evaluator.NewEvaluator(),
		history:   history.New(),
		params:    DefaultParams(),
		info:      NewInfo(),
		isRunning: semaphore.NewWeighted(1),
	}
}

// SetDriver installs the UCI callback used to report progress. A nil
// driver (the default) makes reporting a no-op.
func (s *Search) SetDriver(d uciinterface.Driver) { s.driver = d }

// NewGame clears all state that should not survive across games: history
// heuristics and the transposition table. The table is a cache, not game
// state, but stale entries from a different game are never useful.
func (s *Search) NewGame() {
	s.history.Clear()
	s.tt.Clear()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// waitWhileSearching blocks until no search is in flight.
func (s *Search) waitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// Stop signals a running search to unwind as soon as it next checks, and
// waits for it to actually finish.
func (s *Search) Stop() {
	s.info.Terminate()
	s.waitWhileSearching()
}

// StartAsync begins searching rootPos under limits on a separate
// goroutine, and returns immediately. driver.SendResult is called exactly
// once, when the search finishes or is stopped. A call while a search is
// already running is ignored.
func (s *Search) StartAsync(rootPos *position.Position, limits *Limits) {
	if !s.isRunning.TryAcquire(1) {
		return
	}
	go func() {
		defer s.isRunning.Release(1)
		result := s.Go(rootPos, limits)
		if s.driver != nil {
			s.driver.SendResult(result.BestMove, result.PonderMove)
		}
	}()
}

// Go runs a synchronous search to completion (either its own time/depth
// limit, or an external Stop) and returns the result.
func (s *Search) Go(rootPos *position.Position, limits *Limits) *Result {
	s.stats.Clear()
	s.info.Reset()
	s.info.StartTime = time.Now()
	s.info.TimeLimit = limits.TimeBudget(int(rootPos.SideToMove()))
	if limits.Infinite || limits.Ponder {
		s.info.TimeLimit = 0
	}

	p := clonePosition(rootPos)
	s.eval.SyncFromPosition(p)

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	result := s.iterativeDeepening(p, maxDepth, limits)
	return result
}

// clonePosition copies a position by value so the search can make/unmake
// moves freely without disturbing the caller's position (e.g. the UCI
// handler's notion of "current position").
func clonePosition(p *position.Position) *position.Position {
	fen := p.Fen()
	clone, err := position.NewPositionFen(fen)
	if err != nil {
		panic("search: root position produced an unparsable FEN: " + err.Error())
	}
	return clone
}

// doMove plays m on p and keeps the evaluator's accumulator in lockstep by
// activating/deactivating exactly the squares m changes, mirroring
// position.DoMove's own case analysis by move type.
func (s *Search) doMove(p *position.Position, m Move) {
	us := p.SideToMove()
	them := us.Flip()
	from, to := m.From(), m.To()
	moving := p.GetPiece(from)
	captured := p.GetPiece(to)

	s.eval.Push()
	switch m.MoveType() {
	case Normal:
		if captured != PieceNone {
			s.eval.Deactivate(them, captured.TypeOf(), to)
		}
		s.eval.Deactivate(us, moving.TypeOf(), from)
		s.eval.Activate(us, moving.TypeOf(), to)
	case Promotion:
		if captured != PieceNone {
			s.eval.Deactivate(them, captured.TypeOf(), to)
		}
		s.eval.Deactivate(us, Pawn, from)
		s.eval.Activate(us, m.PromotionType(), to)
	case EnPassant:
		capSq := to.To(them.MoveDirection())
		s.eval.Deactivate(them, Pawn, capSq)
		s.eval.Deactivate(us, Pawn, from)
		s.eval.Activate(us, Pawn, to)
	case Castling:
		s.eval.Deactivate(us, King, from)
		s.eval.Activate(us, King, to)
		rookFrom, rookTo := castlingRookSquares(to)
		s.eval.Deactivate(us, Rook, rookFrom)
		s.eval.Activate(us, Rook, rookTo)
	}
	s.eval.Commit()
	p.DoMove(m)
}

// undoMove reverses doMove.
func (s *Search) undoMove(p *position.Position) {
	p.UndoMove()
	s.eval.Pop()
}

func (s *Search) doNullMove(p *position.Position) {
	s.eval.Push()
	s.eval.Commit()
	p.DoNullMove()
}

func (s *Search) undoNullMove(p *position.Position) {
	p.UndoNullMove()
	s.eval.Pop()
}

func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		return SqNone, SqNone
	}
}

// rootMoveList generates and orders the root's legal moves, restricted to
// limits.Moves (UCI's "searchmoves") when given.
func rootMoveList(p *position.Position, limits *Limits) *moveslice.ScoredMoveList {
	all := movegen.GenerateLegalMoves(p)
	if limits.Moves.Len() == 0 {
		return all
	}
	restricted := moveslice.NewScoredMoveList(limits.Moves.Len())
	for i := 0; i < all.Len(); i++ {
		m := all.At(i).Move
		for j := 0; j < limits.Moves.Len(); j++ {
			if limits.Moves.At(j) == m {
				restricted.PushBack(m, 0)
				break
			}
		}
	}
	return restricted
}
