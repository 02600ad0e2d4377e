package types

// PieceType identifies a piece kind independent of color.
type PieceType uint8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool { return pt >= Pawn && pt < PtLength }

// SeeValue returns the material value used by static exchange evaluation and
// move ordering: deliberately coarser than positional centipawns (pawn 100
// .. queen 1200, king 0).
func (pt PieceType) SeeValue() int32 {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 400
	case Bishop:
		return 400
	case Rook:
		return 650
	case Queen:
		return 1200
	case King:
		return 0
	default:
		return 0
	}
}

func (pt PieceType) Char() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Piece is a PieceType owned by a Color, packed as color*6 + (pieceType-1),
// plus PieceNone.
type Piece uint8

const (
	PieceNone   Piece = 12
	PieceLength Piece = 13
)

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if !pt.IsValid() {
		return PieceNone
	}
	return Piece(c)*6 + Piece(pt-Pawn)
}

// TypeOf returns the PieceType of p.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(p%6) + Pawn
}

// ColorOf returns the Color of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if p < 6 {
		return White
	}
	return Black
}

// ValueOf returns the SEE value of the underlying piece type.
func (p Piece) ValueOf() int32 {
	return p.TypeOf().SeeValue()
}

func (p Piece) String() string {
	if p == PieceNone {
		return "-"
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == White {
		return string(rune(c[0] - 32))
	}
	return c
}
