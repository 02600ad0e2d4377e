package types

import "fmt"

// File is one of the eight files a-h.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// IsValid reports whether f is a-h.
func (f File) IsValid() bool { return f < FileNone }

func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + int(f)))
}

// Rank is one of the eight ranks 1-8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// IsValid reports whether r is 1-8.
func (r Rank) IsValid() bool { return r < RankNone }

func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('1' + int(r)))
}

// Square is one square of the 8x8 board, A1..H8, plus the sentinel SqNone.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = 64
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool { return sq < SqNone }

// FileOf returns the file of sq.
func (sq Square) FileOf() File { return File(sq & 7) }

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank { return Rank(sq >> 3) }

// SquareOf builds a square from a file and a rank, or SqNone if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses a two character square like "e4" into a Square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}

// Bb returns the single-bit bitboard for sq.
func (sq Square) Bb() Bitboard {
	if !sq.IsValid() {
		return BbZero
	}
	return Bitboard(1) << uint(sq)
}
