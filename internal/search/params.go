package search

import (
	"math"

	. "corvid/internal/types"
)

// Params collects every tunable margin and depth threshold the search uses
// for pruning, reduction and extension decisions. It is threaded through
// the search as a plain value (or pointer) rather than read from package
// globals, so a future self-play tuner can swap in a different Params per
// search without touching any other code. DefaultParams returns the values
// used today.
type Params struct {
	// UseIIR enables internal iterative reduction: a non-root node with no
	// hash move, at or above IIRDepth, is searched one ply shallower than
	// its nominal depth.
	UseIIR   bool
	IIRDepth int

	// Reverse futility (static null move) pruning: at shallow depth, if the
	// static eval already beats beta by more than the depth's margin, cut
	// without searching further.
	UseRFP   bool
	RFPDepth int
	rfp      [4]Score

	// Razoring: at very shallow depth, if the static eval is far below
	// alpha, drop straight into quiescence instead of a full search.
	UseRazoring    bool
	RazoringDepth  int
	razoringMargin [4]Score

	// Null move pruning: give the opponent a free move and research at a
	// reduced depth; if that still fails high, the position is so good a
	// real move would too.
	UseNMP       bool
	NMPMinDepth  int
	NMPBaseR     int
	NMPDepthDiv  int

	// Late move reductions: moves ordered late in a node are searched at
	// reduced depth first, re-searched at full depth only if they beat
	// alpha.
	UseLMR        bool
	LMRMinDepth   int
	LMRMovesPlayed int
	lmr           [32][64]int

	// Late move pruning: beyond a depth-dependent move count, remaining
	// quiet moves are skipped outright rather than reduced.
	UseLMP   bool
	LMPDepth int
	lmp      [16]int

	// Futility pruning: near the leaves, a quiet move that cannot possibly
	// raise the static eval above alpha by the margin is skipped.
	UseFP       bool
	FPDepth     int
	fp          [7]Score

	// SEE-based move pruning in the main search: quiet moves at shallow
	// depth with a sufficiently negative SEE are skipped; noisy (capture)
	// moves use a separate, smaller margin.
	UseSEEPruning  bool
	SEEDepth       int
	SEEQuietMargin Score
	SEENoisyMargin Score

	// QSeeThreshold gates which captures quiescence searches: a capture
	// whose SEE is below this threshold is assumed to lose material and is
	// skipped rather than explored.
	QSeeThreshold int32

	// Check extension: a move that gives check is searched one ply deeper.
	UseCheckExtension bool

	// Mate distance pruning narrows the window so a shorter mate already
	// found upstream is never passed up for a longer one.
	UseMDP bool

	// OrderingMain is a scale for main history in quiet-move ordering keys.
	// ScoreMoves does not read it: quiet moves are keyed by the raw main
	// history value, which matches the default scale of 1.
	OrderingMain int32

	// AspirationDelta is the initial half-width of the aspiration window
	// around the previous iteration's score; AspirationSteps widens it on
	// each fail (the last entry should always be the full Infinity bound).
	AspirationDelta Score
	AspirationSteps []Score
}

// DefaultParams returns the search's standard parameter set (late move
// reductions grow linearly with the product of depth and move count,
// futility/reverse-futility margins grow roughly linearly with depth left).
func DefaultParams() *Params {
	p := &Params{
		UseIIR:   true,
		IIRDepth: 4,

		UseRFP:   true,
		RFPDepth: 3,
		rfp:      [4]Score{0, 200, 400, 800},

		UseRazoring:    true,
		RazoringDepth:  3,
		razoringMargin: [4]Score{0, 300, 500, 700},

		UseNMP:      true,
		NMPMinDepth: 3,
		NMPBaseR:    3,
		NMPDepthDiv: 3,

		UseLMR:         true,
		LMRMinDepth:    3,
		LMRMovesPlayed: 3,

		UseLMP:   true,
		LMPDepth: 8,

		UseFP:   true,
		FPDepth: 6,
		fp:      [7]Score{0, 100, 200, 300, 500, 900, 1200},

		UseSEEPruning:  true,
		SEEDepth:       8,
		SEEQuietMargin: -64,
		SEENoisyMargin: -20,

		QSeeThreshold: 0,

		UseCheckExtension: true,
		UseMDP:            true,

		OrderingMain: 1,

		AspirationDelta: 50,
		AspirationSteps: []Score{100, 200, Infinity},
	}
	for i := 0; i < 32; i++ {
		for j := 0; j < 64; j++ {
			switch {
			case i <= 2, j <= 2:
				p.lmr[i][j] = 1
			default:
				p.lmr[i][j] = int(math.Round((float64(i)*0.7)*(float64(j)*0.05) + 1.0))
			}
		}
	}
	for i := 1; i < 16; i++ {
		p.lmp[i] = 4 + int(math.Pow(float64(i)+0.5, 1.3))
	}
	return p
}

// LMRReduction returns the depth reduction LMR applies at depth with the
// given zero-based move index already searched.
func (p *Params) LMRReduction(depth, movesSearched int) int {
	if depth >= 32 {
		depth = 31
	}
	if movesSearched >= 64 {
		movesSearched = 63
	}
	return p.lmr[depth][movesSearched]
}

// LMPMovesSearched returns the move count beyond which late move pruning
// skips remaining quiet moves at depth.
func (p *Params) LMPMovesSearched(depth int) int {
	if depth >= 16 {
		depth = 15
	}
	if depth < 0 {
		depth = 0
	}
	return p.lmp[depth]
}

// RFPMargin returns the reverse futility margin for depth, clamped to the
// table's largest tuned depth.
func (p *Params) RFPMargin(depth int) Score {
	if depth >= len(p.rfp) {
		depth = len(p.rfp) - 1
	}
	return p.rfp[depth]
}

// RazoringMargin returns the razoring margin for depth.
func (p *Params) RazoringMargin(depth int) Score {
	if depth >= len(p.razoringMargin) {
		depth = len(p.razoringMargin) - 1
	}
	return p.razoringMargin[depth]
}

// FPMargin returns the futility margin for depth.
func (p *Params) FPMargin(depth int) Score {
	if depth >= len(p.fp) {
		depth = len(p.fp) - 1
	}
	if depth < 0 {
		depth = 0
	}
	return p.fp[depth]
}
