package position

import (
	"fmt"
	"strconv"
	"strings"

	. "corvid/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the make/unmake undo stack and is generous for any game
// length a UCI session will reach before ucinewgame resets it.
const maxHistory = 1024

type undoState struct {
	zobristKey      Key
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position is the bitboard board representation the search core treats as
// an external collaborator: piece placement, castling/en passant/halfmove
// state, a Zobrist fingerprint kept incrementally up to date, and a
// make/unmake undo stack.
type Position struct {
	board           [SqLength]Piece
	piecesBb        [2][PtLength]Bitboard
	occupiedBb      [2]Bitboard
	kingSquare      [2]Square
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int
	sideToMove      Color
	zobristKey      Key

	historyCount int
	history      [maxHistory]undoState

	// gameHistory records the Zobrist key reached after every move played
	// since the last irreversible event (capture, pawn move, promotion, en
	// passant, castling), used for three-fold repetition detection.
	gameHistory []Key
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return p
}

// NewPositionFen parses fen into a Position, or returns an error describing
// why the string is not a valid FEN.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	for i := range p.board {
		p.board[i] = PieceNone
	}
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) setupFromFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: fen %q has too few fields", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: fen %q does not have 8 ranks", fen)
	}
	for i := range p.piecesBb {
		for j := range p.piecesBb[i] {
			p.piecesBb[i][j] = BbZero
		}
	}
	p.occupiedBb[White], p.occupiedBb[Black] = BbZero, BbZero
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc, err := pieceFromFenChar(ch)
			if err != nil {
				return fmt.Errorf("position: fen %q: %w", fen, err)
			}
			if !f.IsValid() {
				return fmt.Errorf("position: fen %q: rank overruns the board", fen)
			}
			p.putPiece(pc, SquareOf(f, r))
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.zobristKey ^= zobrist.sideToMove
	default:
		return fmt.Errorf("position: fen %q: invalid side to move %q", fen, fields[1])
	}

	cr, err := castlingFromFen(fields[2])
	if err != nil {
		return fmt.Errorf("position: fen %q: %w", fen, err)
	}
	p.castlingRights = cr
	p.zobristKey ^= zobrist.castling[p.castlingRights]

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return fmt.Errorf("position: fen %q: invalid en passant square %q", fen, fields[3])
		}
		p.enPassantSquare = sq
		p.zobristKey ^= zobrist.enPassantFile[sq.FileOf()]
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = n
		}
	}
	p.fullMoveNumber = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullMoveNumber = n
		}
	}
	p.gameHistory = append(p.gameHistory[:0], p.zobristKey)
	return nil
}

func pieceFromFenChar(ch rune) (Piece, error) {
	var c Color
	if ch >= 'a' && ch <= 'z' {
		c = Black
	} else {
		c = White
	}
	var pt PieceType
	switch ch {
	case 'p', 'P':
		pt = Pawn
	case 'n', 'N':
		pt = Knight
	case 'b', 'B':
		pt = Bishop
	case 'r', 'R':
		pt = Rook
	case 'q', 'Q':
		pt = Queen
	case 'k', 'K':
		pt = King
	default:
		return PieceNone, fmt.Errorf("invalid piece character %q", ch)
	}
	return MakePiece(c, pt), nil
}

func castlingFromFen(s string) (CastlingRights, error) {
	if s == "-" {
		return CastleNone, nil
	}
	var cr CastlingRights
	for _, ch := range s {
		switch ch {
		case 'K':
			cr |= CastleWhiteKing
		case 'Q':
			cr |= CastleWhiteQueen
		case 'k':
			cr |= CastleBlackKing
		case 'q':
			cr |= CastleBlackQueen
		default:
			return CastleNone, fmt.Errorf("invalid castling rights character %q", ch)
		}
	}
	return cr, nil
}

// Fen renders the current position back to FEN notation.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

func (p *Position) String() string { return p.Fen() }

// castlingRightsTouching returns the castling rights that a move touching
// fromSq or toSq invalidates (moving a king or rook off its home square, or
// capturing a rook on its home square).
func castlingRightsTouching(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastleWhiteKing | CastleWhiteQueen
	case SqH1:
		return CastleWhiteKing
	case SqA1:
		return CastleWhiteQueen
	case SqE8:
		return CastleBlackKing | CastleBlackQueen
	case SqH8:
		return CastleBlackKing
	case SqA8:
		return CastleBlackQueen
	default:
		return CastleNone
	}
}

// DoMove commits m to the board. The caller is expected to have generated m
// from this exact position (pseudo-legally); DoMove does not validate that
// m is legal - call WasLegalMove afterwards to check the mover's king is
// safe.
func (p *Position) DoMove(m Move) {
	from, to := m.From(), m.To()
	fromPc := p.board[from]
	capturedPc := p.board[to]
	color := p.sideToMove

	h := &p.history[p.historyCount]
	h.zobristKey = p.zobristKey
	h.move = m
	h.capturedPiece = capturedPc
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	p.historyCount++

	irreversible := false

	switch m.MoveType() {
	case Normal:
		if touched := castlingRightsTouching(from) | castlingRightsTouching(to); touched != CastleNone {
			p.setCastlingRights(p.castlingRights &^ touched)
		}
		p.clearEnPassant()
		if capturedPc != PieceNone {
			p.removePiece(to)
			irreversible = true
		}
		if fromPc.TypeOf() == Pawn {
			irreversible = true
			if diff := int(to) - int(from); diff == 16 || diff == -16 {
				epSq := to.To(color.Flip().MoveDirection())
				p.enPassantSquare = epSq
				p.zobristKey ^= zobrist.enPassantFile[epSq.FileOf()]
			}
		}
		p.movePiece(from, to)

	case Promotion:
		p.clearEnPassant()
		if touched := castlingRightsTouching(from) | castlingRightsTouching(to); touched != CastleNone {
			p.setCastlingRights(p.castlingRights &^ touched)
		}
		if capturedPc != PieceNone {
			p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(MakePiece(color, m.PromotionType()), to)
		irreversible = true

	case EnPassant:
		p.clearEnPassant()
		capSq := to.To(color.Flip().MoveDirection())
		p.removePiece(capSq)
		p.movePiece(from, to)
		irreversible = true

	case Castling:
		p.clearEnPassant()
		p.movePiece(from, to)
		switch to {
		case SqG1:
			p.movePiece(SqH1, SqF1)
		case SqC1:
			p.movePiece(SqA1, SqD1)
		case SqG8:
			p.movePiece(SqH8, SqF8)
		case SqC8:
			p.movePiece(SqA8, SqD8)
		}
		p.setCastlingRights(p.castlingRights &^ castlingRightsTouching(from))
		irreversible = true
	}

	if irreversible {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if color == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.sideToMove

	if irreversible {
		p.gameHistory = p.gameHistory[:0]
	}
	p.gameHistory = append(p.gameHistory, p.zobristKey)
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove() {
	p.historyCount--
	h := &p.history[p.historyCount]
	m := h.move

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullMoveNumber--
	}

	switch m.MoveType() {
	case Normal:
		p.movePiece(m.To(), m.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, m.To())
		}
	case Promotion:
		p.removePiece(m.To())
		p.putPiece(MakePiece(p.sideToMove, Pawn), m.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, m.To())
		}
	case EnPassant:
		p.movePiece(m.To(), m.From())
		p.putPiece(MakePiece(p.sideToMove.Flip(), Pawn), m.To().To(p.sideToMove.Flip().MoveDirection()))
	case Castling:
		p.movePiece(m.To(), m.From())
		switch m.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey

	if len(p.gameHistory) > 0 {
		p.gameHistory = p.gameHistory[:len(p.gameHistory)-1]
	}
}

// DoNullMove passes the move without touching the board, for null-move
// pruning. En passant rights are cleared (a pass can never be met with an
// en passant capture).
func (p *Position) DoNullMove() {
	h := &p.history[p.historyCount]
	h.zobristKey = p.zobristKey
	h.move = MoveNone
	h.capturedPiece = PieceNone
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	p.historyCount++

	p.clearEnPassant()
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.sideToMove
	p.gameHistory = append(p.gameHistory, p.zobristKey)
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyCount--
	h := &p.history[p.historyCount]
	p.sideToMove = p.sideToMove.Flip()
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
	if len(p.gameHistory) > 0 {
		p.gameHistory = p.gameHistory[:len(p.gameHistory)-1]
	}
}

func (p *Position) setCastlingRights(cr CastlingRights) {
	p.zobristKey ^= zobrist.castling[p.castlingRights]
	p.castlingRights = cr
	p.zobristKey ^= zobrist.castling[p.castlingRights]
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) putPiece(pc Piece, sq Square) {
	color, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = pc
	if pt == King {
		p.kingSquare[color] = sq
	}
	p.piecesBb[color][pt].PushSquare(sq)
	p.occupiedBb[color].PushSquare(sq)
	p.zobristKey ^= zobrist.pieces[pc][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	color, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[color][pt].PopSquare(sq)
	p.occupiedBb[color].PopSquare(sq)
	p.zobristKey ^= zobrist.pieces[pc][sq]
	return pc
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// WasLegalMove reports whether the side that just moved (the opponent of
// the current side to move) left its own king safe. Call immediately after
// DoMove; if it returns false, UndoMove and discard the move.
func (p *Position) WasLegalMove() bool {
	justMoved := p.sideToMove.Flip()
	return !p.IsAttacked(p.kingSquare[justMoved], p.sideToMove)
}

// GivesCheck reports whether, after making m, the opponent's king would be
// in check. Used for check extension at the caller's discretion.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.InCheck()
	p.UndoMove()
	return check
}

// IsCapturingMove reports whether m removes an enemy piece from the board
// (including en passant).
func (p *Position) IsCapturingMove(m Move) bool {
	return m.MoveType() == EnPassant || p.board[m.To()] != PieceNone
}

// ThreeFoldRepetition reports whether the current position has occurred at
// least twice before since the last irreversible move (three total
// occurrences, including the current one).
func (p *Position) ThreeFoldRepetition() bool {
	count := 0
	for _, k := range p.gameHistory {
		if k == p.zobristKey {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsDraw reports whether the position is a draw by the fifty-move rule or
// three-fold repetition.
func (p *Position) IsDraw() bool {
	return p.halfMoveClock >= 100 || p.ThreeFoldRepetition()
}

func (p *Position) ZobristKey() Key                          { return p.zobristKey }
func (p *Position) SideToMove() Color                        { return p.sideToMove }
func (p *Position) GetPiece(sq Square) Piece                 { return p.board[sq] }
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard  { return p.piecesBb[c][pt] }
func (p *Position) OccupiedBb(c Color) Bitboard              { return p.occupiedBb[c] }
func (p *Position) Occupied() Bitboard                       { return p.occupiedBb[White] | p.occupiedBb[Black] }
func (p *Position) KingSquare(c Color) Square                { return p.kingSquare[c] }
func (p *Position) CastlingRights() CastlingRights           { return p.castlingRights }
func (p *Position) EnPassantSquare() Square                  { return p.enPassantSquare }
func (p *Position) HalfMoveClock() int                       { return p.halfMoveClock }

// LastMove returns the move that produced the current position, or
// MoveNone at the root.
func (p *Position) LastMove() Move {
	if p.historyCount == 0 {
		return MoveNone
	}
	return p.history[p.historyCount-1].move
}

// LastMoveWasNull reports whether the last move applied was a null move -
// used to forbid stacking two null moves in a row.
func (p *Position) LastMoveWasNull() bool {
	return p.historyCount > 0 && p.history[p.historyCount-1].move == MoveNone
}
