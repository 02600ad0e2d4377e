package search

import (
	"corvid/internal/position"
	. "corvid/internal/types"
)

// seeValues mirrors types.PieceType.SeeValue as a flat, allocation-free
// array for the exchange loop below.
var seeValues = [PtLength]int32{
	PtNone: 0,
	Pawn:   100,
	Knight: 400,
	Bishop: 400,
	Rook:   650,
	Queen:  1200,
	King:   0,
}

func moveValue(p *position.Position, m Move) int32 {
	if m.MoveType() == EnPassant {
		return seeValues[Pawn]
	}
	captured := p.GetPiece(m.To())
	if captured == PieceNone {
		return 0
	}
	return seeValues[captured.TypeOf()]
}

func byType(p *position.Position, pt PieceType) Bitboard {
	return p.PiecesBb(White, pt) | p.PiecesBb(Black, pt)
}

func leastValuableAttacker(p *position.Position, attackers Bitboard) (PieceType, bool) {
	for pt := Pawn; pt <= King; pt++ {
		if attackers&byType(p, pt) != BbZero {
			return pt, true
		}
	}
	return PtNone, false
}

// SEE runs a threshold static exchange evaluation on m: it reports whether
// the signed material outcome of fully playing out the capture sequence on
// m.To() is at least threshold. Put (variant drop), promotion and castling
// moves are always treated as favorable, since none of them is a capture
// SEE can meaningfully price.
//
// The exchange is simulated against a local copy of the occupancy bitboard
// only - the position itself is never mutated. Each side in turn contributes
// its least valuable attacker (by piece value) until one side runs out, or
// until the running balance proves the outcome either way without needing
// to finish the sequence.
func SEE(p *position.Position, m Move, threshold int32) bool {
	switch m.MoveType() {
	case Put, Promotion, Castling:
		return true
	}

	balance := moveValue(p, m) - threshold
	if balance < 0 {
		return false
	}

	movedType := p.GetPiece(m.From()).TypeOf()
	balance -= seeValues[movedType]
	if balance >= 0 {
		return true
	}

	occupied := p.Occupied()
	occupied.PopSquare(m.From())
	occupied.PushSquare(m.To())

	stm := p.SideToMove().Flip()
	attackers := (p.AttacksTo(m.To(), White, occupied) | p.AttacksTo(m.To(), Black, occupied)) & occupied

	diagonal := byType(p, Bishop) | byType(p, Queen)
	orthogonal := byType(p, Rook) | byType(p, Queen)

	for {
		ourAttackers := attackers & p.OccupiedBb(stm)
		if ourAttackers == BbZero {
			break
		}
		attackerType, ok := leastValuableAttacker(p, ourAttackers)
		if !ok {
			break
		}
		if attackerType == King && attackers&p.OccupiedBb(stm.Flip()) != BbZero {
			break
		}

		attackerSq := (byType(p, attackerType) & ourAttackers).Lsb()
		occupied.PopSquare(attackerSq)
		stm = stm.Flip()

		balance = -balance - 1 - seeValues[attackerType]
		if balance >= 0 {
			break
		}

		if attackerType == Pawn || attackerType == Bishop || attackerType == Queen {
			attackers |= position.GetBishopAttacks(m.To(), occupied) & diagonal
		}
		if attackerType == Rook || attackerType == Queen {
			attackers |= position.GetRookAttacks(m.To(), occupied) & orthogonal
		}
		attackers &= occupied
	}

	return stm != p.SideToMove()
}
