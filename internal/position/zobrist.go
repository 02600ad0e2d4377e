package position

import (
	"math/rand"

	. "corvid/internal/types"
)

// zobristKeys holds one random 64-bit key per (piece, square), one per
// castling-rights combination, one per en-passant file, and one for side to
// move - the standard incremental Zobrist hashing scheme.
type zobristKeys struct {
	pieces        [PieceLength][SqLength]Key
	castling      [CastleAll + 1]Key
	enPassantFile [8]Key
	sideToMove    Key
}

var zobrist zobristKeys

// fixed seed: the table only needs to be internally consistent across a
// single process, not stable across builds, so a deterministic seed is
// preferred over crypto/rand for reproducible debugging.
func init() {
	r := rand.New(rand.NewSource(1070372))
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := SqA1; sq < SqNone; sq++ {
			zobrist.pieces[pc][sq] = Key(r.Uint64())
		}
	}
	for cr := CastlingRights(0); cr <= CastleAll; cr++ {
		zobrist.castling[cr] = Key(r.Uint64())
	}
	for f := FileA; f <= FileH; f++ {
		zobrist.enPassantFile[f] = Key(r.Uint64())
	}
	zobrist.sideToMove = Key(r.Uint64())
}
