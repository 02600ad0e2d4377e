// Package uci implements the engine's command loop: it reads UCI protocol
// lines from stdin, drives a search.Search accordingly, and writes UCI
// responses to stdout. It is the engine's only I/O surface - everything
// else communicates through Go function calls.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"corvid/internal/config"
	myLogging "corvid/internal/logging"
	"corvid/internal/movegen"
	"corvid/internal/moveslice"
	"corvid/internal/position"
	"corvid/internal/search"
	. "corvid/internal/types"
)

const engineName = "corvid"

// Handler owns the engine's position and search, and translates between
// UCI protocol lines and calls into them. Create one with NewHandler and
// call Loop to start reading commands from stdin.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos    *position.Position
	engine *search.Search
	uciLog *logging.Logger
	log    *logging.Logger
}

// NewHandler builds a Handler wired to stdin/stdout, with a fresh search
// engine configured from config.Settings.
func NewHandler() *Handler {
	config.Setup()
	h := &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    position.NewPosition(),
		engine: search.NewSearch(config.Settings.Search.TTSizeMB),
		uciLog: myLogging.GetUciLog(),
		log:    myLogging.GetLog(),
	}
	h.InIo.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	h.engine.SetDriver(h)
	return h
}

// Loop reads lines from InIo until "quit" is received or the input stream
// closes.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

var regexWhitespace = regexp.MustCompile(`\s+`)

// handle processes one line and reports whether the engine should quit.
func (h *Handler) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.uciLog.Infof("<< %s", line)

	tokens := regexWhitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		h.engine.Stop()
		return true
	case "uci":
		h.cmdUci()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.NewPosition()
		h.engine.NewGame()
	case "position":
		h.cmdPosition(tokens)
	case "go":
		h.cmdGo(tokens)
	case "stop":
		h.engine.Stop()
	case "ponderhit":
		// A ponder search runs with no time limit, like "go infinite", and
		// nothing here adds one: the search keeps running until "stop".
	case "setoption", "debug", "register":
		// accepted and ignored: no engine options are exposed yet
	default:
		h.log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) cmdUci() {
	h.send(fmt.Sprintf("id name %s", engineName))
	h.send("id author corvid contributors")
	h.send("uciok")
}

func (h *Handler) cmdPosition(tokens []string) {
	if len(tokens) < 2 {
		h.SendInfoString("malformed position command")
		return
	}
	i := 1
	fen := position.StartFen
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var sb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			sb.WriteString(tokens[i])
			sb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(sb.String())
	default:
		h.SendInfoString("malformed position command: " + strings.Join(tokens, " "))
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		h.SendInfoString("invalid fen: " + err.Error())
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := movegen.MoveFromUci(h.pos, tokens[i])
			if m == MoveNone {
				h.SendInfoString("invalid move in position command: " + tokens[i])
				return
			}
			h.pos.DoMove(m)
		}
	}
}

func (h *Handler) cmdGo(tokens []string) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		var n int64
		var err error
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "depth":
			i++
			limits.Depth, err = strconv.Atoi(tokens[i])
			i++
		case "nodes":
			i++
			n, err = strconv.ParseInt(tokens[i], 10, 64)
			limits.Nodes = uint64(n)
			i++
		case "mate":
			i++
			limits.Mate, err = strconv.Atoi(tokens[i])
			i++
		case "movetime":
			i++
			n, err = strconv.ParseInt(tokens[i], 10, 64)
			limits.MoveTime = time.Duration(n) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			n, err = strconv.ParseInt(tokens[i], 10, 64)
			limits.WhiteTime = time.Duration(n) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			n, err = strconv.ParseInt(tokens[i], 10, 64)
			limits.BlackTime = time.Duration(n) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			i++
			n, err = strconv.ParseInt(tokens[i], 10, 64)
			limits.WhiteInc = time.Duration(n) * time.Millisecond
			i++
		case "binc":
			i++
			n, err = strconv.ParseInt(tokens[i], 10, 64)
			limits.BlackInc = time.Duration(n) * time.Millisecond
			i++
		case "movestogo":
			i++
			limits.MovesToGo, err = strconv.Atoi(tokens[i])
			i++
		case "searchmoves":
			i++
			for i < len(tokens) {
				m := movegen.MoveFromUci(h.pos, tokens[i])
				if m == MoveNone {
					break
				}
				limits.Moves.PushBack(m)
				i++
			}
		default:
			h.SendInfoString("unknown go subcommand: " + tokens[i])
			return
		}
		if err != nil {
			h.SendInfoString("malformed go command near: " + tokens[i-1])
			return
		}
	}

	if !(limits.Infinite || limits.Ponder || limits.Depth > 0 || limits.Nodes > 0 ||
		limits.Mate > 0 || limits.TimeControl) {
		h.SendInfoString("go command has no effective limits")
		return
	}

	h.engine.StartAsync(h.pos, limits)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}

// The methods below implement uciinterface.Driver.

func (h *Handler) SendIterationEnd(depth, selDepth int, value Score, nodes, nps uint64, elapsed time.Duration, pv moveslice.MoveSlice) {
	h.send(fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d pv %s",
		depth, selDepth, value.String(), nodes, nps, elapsed.Milliseconds(), pv.StringUci()))
}

func (h *Handler) SendCurrentMove(move Move, moveNumber int) {
	h.send(fmt.Sprintf("info currmove %s currmovenumber %d", move.StringUci(), moveNumber))
}

func (h *Handler) SendSearchUpdate(depth, selDepth int, nodes, nps uint64, elapsed time.Duration, hashfull int) {
	h.send(fmt.Sprintf("info depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
		depth, selDepth, nodes, nps, elapsed.Milliseconds(), hashfull))
}

func (h *Handler) SendInfoString(info string) {
	h.send("info string " + info)
}

func (h *Handler) SendResult(bestMove, ponderMove Move) {
	var sb strings.Builder
	sb.WriteString("bestmove ")
	sb.WriteString(bestMove.String())
	if ponderMove != MoveNone {
		sb.WriteString(" ponder ")
		sb.WriteString(ponderMove.StringUci())
	}
	h.send(sb.String())
}
