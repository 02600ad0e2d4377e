// Package movegen generates legal chess moves. It is one of the external
// collaborators the search core treats as a black box: given a position it
// hands back every legal move, or just the capturing/promoting subset
// quiescence needs.
package movegen

import (
	"corvid/internal/moveslice"
	"corvid/internal/position"
	. "corvid/internal/types"
)

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateLegalMoves returns every legal move in p. Pseudo-legal moves are
// generated first and filtered by actually making each one and checking the
// mover's king is safe afterwards - simpler to get right than pin/check
// detection threaded through generation, and cheap enough since quiescence
// and leaf nodes dominate node count, not move generation.
func GenerateLegalMoves(p *position.Position) *moveslice.ScoredMoveList {
	pseudo := generatePseudoLegal(p, false)
	legal := moveslice.NewScoredMoveList(pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i).Move
		p.DoMove(m)
		ok := p.WasLegalMove()
		p.UndoMove()
		if ok {
			legal.PushBack(m, 0)
		}
	}
	return legal
}

// GenerateCaptures returns every legal capture in p (capture-promotions to
// any piece included) plus quiet pawn pushes that promote to a queen, for use
// in quiescence search. Quiet under-promotions are not generated.
func GenerateCaptures(p *position.Position) *moveslice.ScoredMoveList {
	pseudo := generatePseudoLegal(p, true)
	legal := moveslice.NewScoredMoveList(pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i).Move
		p.DoMove(m)
		ok := p.WasLegalMove()
		p.UndoMove()
		if ok {
			legal.PushBack(m, 0)
		}
	}
	return legal
}

// HasLegalMove reports whether p has at least one legal move, without
// building the full move list - used to distinguish checkmate/stalemate
// from a merely quiet position.
func HasLegalMove(p *position.Position) bool {
	pseudo := generatePseudoLegal(p, false)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i).Move
		p.DoMove(m)
		ok := p.WasLegalMove()
		p.UndoMove()
		if ok {
			return true
		}
	}
	return false
}

func generatePseudoLegal(p *position.Position, capturesOnly bool) *moveslice.ScoredMoveList {
	ml := moveslice.NewScoredMoveList(64)
	us := p.SideToMove()
	them := us.Flip()
	occupied := p.Occupied()
	ours := p.OccupiedBb(us)
	theirs := p.OccupiedBb(them)

	generatePawnMoves(p, us, them, occupied, theirs, capturesOnly, ml)

	for pt := Knight; pt <= King; pt++ {
		bb := p.PiecesBb(us, pt)
		for bb != BbZero {
			from := bb.PopLsb()
			targets := position.GetAttacksBb(pt, from, occupied) &^ ours
			if capturesOnly {
				targets &= theirs
			}
			for targets != BbZero {
				to := targets.PopLsb()
				ml.PushBack(CreateMove(from, to, Normal, PtNone), 0)
			}
		}
	}

	if !capturesOnly {
		generateCastling(p, us, occupied, ml)
	}
	return ml
}

func generatePawnMoves(p *position.Position, us, them Color, occupied, theirs Bitboard, capturesOnly bool, ml *moveslice.ScoredMoveList) {
	dir := us.MoveDirection()
	promRank := Rank8
	startRank := Rank2
	if us == Black {
		promRank = Rank1
		startRank = Rank7
	}

	pawns := p.PiecesBb(us, Pawn)
	for bb := pawns; bb != BbZero; {
		from := bb.PopLsb()

		one := from.To(dir)
		if one != SqNone && !occupied.Has(one) {
			if one.RankOf() == promRank {
				// A quiet push that promotes is still a tactically sharp
				// move quiescence needs to see, even with no capture
				// involved - queen promotion is enough to resolve the
				// position, so only it is generated here.
				if capturesOnly {
					ml.PushBack(CreateMove(from, one, Promotion, Queen), 0)
				} else {
					addPawnMove(from, one, promRank, ml)
				}
			} else if !capturesOnly {
				ml.PushBack(CreateMove(from, one, Normal, PtNone), 0)
				if from.RankOf() == startRank {
					two := one.To(dir)
					if two != SqNone && !occupied.Has(two) {
						ml.PushBack(CreateMove(from, two, Normal, PtNone), 0)
					}
				}
			}
		}

		for _, capDir := range pawnCaptureDirs(us) {
			to := from.To(capDir)
			if to == SqNone {
				continue
			}
			if theirs.Has(to) {
				addPawnMove(from, to, promRank, ml)
			} else if to == p.EnPassantSquare() {
				ml.PushBack(CreateMove(from, to, EnPassant, PtNone), 0)
			}
		}
	}
	_ = them
}

func pawnCaptureDirs(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func addPawnMove(from, to Square, promRank Rank, ml *moveslice.ScoredMoveList) {
	if to.RankOf() == promRank {
		for _, pt := range promotionPieces {
			ml.PushBack(CreateMove(from, to, Promotion, pt), 0)
		}
		return
	}
	ml.PushBack(CreateMove(from, to, Normal, PtNone), 0)
}

func generateCastling(p *position.Position, us Color, occupied Bitboard, ml *moveslice.ScoredMoveList) {
	them := us.Flip()
	cr := p.CastlingRights()
	if us == White {
		if cr.Has(CastleWhiteKing) && occupied&(SqF1.Bb()|SqG1.Bb()) == BbZero &&
			!p.IsAttacked(SqE1, them) && !p.IsAttacked(SqF1, them) && !p.IsAttacked(SqG1, them) {
			ml.PushBack(CreateMove(SqE1, SqG1, Castling, PtNone), 0)
		}
		if cr.Has(CastleWhiteQueen) && occupied&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == BbZero &&
			!p.IsAttacked(SqE1, them) && !p.IsAttacked(SqD1, them) && !p.IsAttacked(SqC1, them) {
			ml.PushBack(CreateMove(SqE1, SqC1, Castling, PtNone), 0)
		}
		return
	}
	if cr.Has(CastleBlackKing) && occupied&(SqF8.Bb()|SqG8.Bb()) == BbZero &&
		!p.IsAttacked(SqE8, them) && !p.IsAttacked(SqF8, them) && !p.IsAttacked(SqG8, them) {
		ml.PushBack(CreateMove(SqE8, SqG8, Castling, PtNone), 0)
	}
	if cr.Has(CastleBlackQueen) && occupied&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == BbZero &&
		!p.IsAttacked(SqE8, them) && !p.IsAttacked(SqD8, them) && !p.IsAttacked(SqC8, them) {
		ml.PushBack(CreateMove(SqE8, SqC8, Castling, PtNone), 0)
	}
}
