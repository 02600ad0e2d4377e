package types

import "strings"

// MoveType distinguishes the tagged move variants. Put is reserved for a
// variant (crazyhouse-style drop) move and is never produced by this
// standard-chess move generator, but the ordering and SEE code paths
// handle it so a future variant movegen can plug in without touching them.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
	Put
)

func (t MoveType) IsValid() bool { return t <= Put }

func (t MoveType) String() string {
	switch t {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	case Put:
		return "d"
	default:
		return "?"
	}
}

// Move packs a chess move into 16 bits:
//
//	bit 0-5:   to square
//	bit 6-11:  from square
//	bit 12-13: promotion piece type, biased so Knight..Queen fit 2 bits
//	bit 14-15: move type
//
// Move-ordering sort keys are NOT packed into this type: the dominance
// order's constants (hash move, good/bad capture, killer, drop) span a
// range far wider than 16 bits, so they are carried alongside the move in
// a ScoredMove (see the moveslice package) instead of inside it.
type Move uint16

const MoveNone Move = 0

const (
	fromShift     = 6
	promTypeShift = 12
	typeShift     = 14

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
)

// CreateMove packs a move.
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

func (m Move) MoveType() MoveType { return MoveType((m & moveTypeMask) >> typeShift) }

func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

func (m Move) To() Square   { return Square(m & toMask) }
func (m Move) From() Square { return Square((m & fromMask) >> fromShift) }

func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.MoveType().IsValid()
}

// StringUci renders the move as a UCI move string, e.g. "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		sb.WriteString(m.PromotionType().Char())
	}
	return sb.String()
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return m.StringUci()
}
