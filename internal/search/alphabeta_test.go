package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"corvid/internal/movegen"
	"corvid/internal/position"
	. "corvid/internal/types"
)

func TestMateInOneFoundAtDepthThree(t *testing.T) {
	p := mustPosition(t, "6k1/5ppp/8/8/8/8/5PPP/R6K w - -")
	s := NewSearch(4)

	result := s.Go(p, &Limits{Depth: 3})

	want := movegen.MoveFromUci(p, "a1a8")
	assert.Equal(t, want, result.BestMove)
	assert.GreaterOrEqual(t, result.Value, MateBound)
}

func TestStalemateRootHasNoBestMoveAndReturnsDraw(t *testing.T) {
	// White king h1 is boxed in by its own corner and the g3 queen covers
	// every remaining square (g1, g2, h2) without touching h1 itself.
	p := mustPosition(t, "8/8/8/8/8/6q1/5k2/7K w - -")
	s := NewSearch(4)

	result := s.Go(p, &Limits{Depth: 2})

	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, DrawScore, result.Value)
}

func TestRepeatedPositionIsScoredAsDrawRegardlessOfDepth(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	s := NewSearch(4)
	s.eval.SyncFromPosition(p)

	shuffle := []string{"e1e2", "e8e7", "e2e1", "e7e8"}
	for round := 0; round < 2; round++ {
		for _, uci := range shuffle {
			m := movegen.MoveFromUci(p, uci)
			assert.NotEqual(t, MoveNone, m)
			s.doMove(p, m)
		}
	}
	assert.True(t, p.ThreeFoldRepetition())

	for _, depth := range []int{1, 3, 6} {
		assert.Equal(t, DrawScore, s.alphaBeta(p, depth, 1, -Infinity, Infinity))
	}
}

// disabledPruningParams turns off every selective pruning, reduction and
// extension heuristic, leaving only the plain negamax tree walk, PVS
// windowing and the transposition table - none of which can change the
// final backed-up score of a full-width search, only how fast it is found.
func disabledPruningParams() *Params {
	p := DefaultParams()
	p.UseIIR = false
	p.UseRFP = false
	p.UseRazoring = false
	p.UseNMP = false
	p.UseLMR = false
	p.UseLMP = false
	p.UseFP = false
	p.UseSEEPruning = false
	p.UseCheckExtension = false
	p.UseMDP = false
	return p
}

// referenceNegamax is a deliberately separate, un-pruned negamax walk over
// the full legal move list, mirroring alphaBeta's leaf and terminal-node
// handling (quiescence at a quiet horizon, full legal replies and mate
// detection while in check, draw detection) without any of its selective
// search heuristics - the independent baseline the property test below
// checks alphaBeta against.
func referenceNegamax(s *Search, p *position.Position, depth, ply int) Score {
	if p.IsDraw() {
		return DrawScore
	}
	inCheck := p.InCheck()
	if depth <= 0 && !inCheck {
		return s.quiescence(p, ply, -Infinity, Infinity)
	}
	if depth < 0 {
		depth = 0
	}

	moves := movegen.GenerateLegalMoves(p)
	if moves.Len() == 0 {
		if inCheck {
			return MatedIn(ply)
		}
		return DrawScore
	}

	best := -Infinity
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).Move
		s.doMove(p, m)
		v := -referenceNegamax(s, p, depth-1, ply+1)
		s.undoMove(p)
		if v > best {
			best = v
		}
	}
	return best
}

func TestAlphaBetaMatchesPlainNegamaxWithPruningDisabled(t *testing.T) {
	positions := []string{
		"4k3/8/8/4p3/3P4/8/8/4K3 w - - 0 1",
		"6k1/5ppp/8/8/8/8/5PPP/R6K w - -",
		"4k3/8/3p1p2/4p3/8/8/8/B3K3 w - - 0 1",
	}

	for _, fen := range positions {
		params := disabledPruningParams()

		pab := mustPosition(t, fen)
		sab := NewSearch(1)
		sab.params = params
		sab.eval.SyncFromPosition(pab)

		pref := mustPosition(t, fen)
		sref := NewSearch(1)
		sref.params = params
		sref.eval.SyncFromPosition(pref)

		abValue := sab.alphaBeta(pab, 3, 1, -Infinity, Infinity)
		refValue := referenceNegamax(sref, pref, 3, 1)

		assert.Equal(t, refValue, abValue, "fen %s", fen)
	}
}
