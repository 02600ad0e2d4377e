package movegen

import (
	"regexp"
	"strings"

	"corvid/internal/position"
	. "corvid/internal/types"
)

var regexUciMove = regexp.MustCompile(`([a-h][1-8][a-h][1-8])([nbrqNBRQ])?`)

// MoveFromUci matches a UCI move string (e.g. "e2e4", "e7e8q") against p's
// legal moves and returns the matching Move, or MoveNone if uciMove is
// malformed or not legal in p.
func MoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		promotionPart = strings.ToLower(matches[2])
	}

	legal := GenerateLegalMoves(p)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i).Move
		if m.StringUci() == movePart+promotionPart {
			return m
		}
	}
	return MoveNone
}
