//
// sentinelchess - a UCI chess engine written in Go for learning purposes
//
// MIT License
//
// Copyright (c) 2026 The sentinelchess contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package uci is the single-threaded line-protocol dispatcher of
// spec.md §5: it reads stdin, parses UCI commands and drives an
// engine.Driver. It holds no board or search state itself - that is
// the Driver's job - so Command (used by tests) can exercise the
// parser without a terminal attached.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sentinelchess/sentinelchess/internal/engine"
	myLogging "github.com/sentinelchess/sentinelchess/internal/logging"
	"github.com/sentinelchess/sentinelchess/internal/moveslice"
	"github.com/sentinelchess/sentinelchess/internal/search"
	. "github.com/sentinelchess/sentinelchess/internal/types"
	"github.com/sentinelchess/sentinelchess/internal/version"
)

var log = myLogging.GetLog("uci")

// Handler reads UCI commands from In and writes UCI responses to Out,
// driving one engine.Driver. Create with NewHandler(); In/Out default
// to stdin/stdout and may be swapped out for testing.
type Handler struct {
	In  *bufio.Scanner
	Out *bufio.Writer

	driver *engine.Driver
}

// NewHandler creates a Handler wired to a fresh engine.Driver and
// stdin/stdout.
func NewHandler() *Handler {
	h := &Handler{
		In:     bufio.NewScanner(os.Stdin),
		Out:    bufio.NewWriter(os.Stdout),
		driver: engine.NewDriver(),
	}
	h.driver.SetReporter(h)
	return h
}

// Loop reads commands from In until "quit" or end of input.
func (h *Handler) Loop() {
	for h.In.Scan() {
		if h.dispatch(h.In.Text()) {
			return
		}
	}
}

// Command runs a single UCI command line and returns everything it
// wrote to Out, for tests.
func (h *Handler) Command(cmd string) string {
	var buf strings.Builder
	saved := h.Out
	h.Out = bufio.NewWriter(&buf)
	h.dispatch(cmd)
	_ = h.Out.Flush()
	h.Out = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

func (h *Handler) dispatch(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	log.Debugf("<< %s", line)
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.driver.NewGame()
	case "setoption":
		h.setOptionCommand(tokens)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.driver.Stop()
	case "ponderhit":
		// no-op: Non-goal per spec.md (no pondering support).
	case "debug", "register":
		// Accepted and ignored; not part of spec.md §6.
	default:
		log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send(fmt.Sprintf("id name %s", version.String()))
	h.send(fmt.Sprintf("id author %s", version.Author))
	for _, opt := range *uciOptions.GetOptions() {
		h.send(opt)
	}
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		h.SendInfoString("malformed setoption command")
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	opt, found := uciOptions[name.String()]
	if !found {
		h.SendInfoString(fmt.Sprintf("no such option %q", name.String()))
		return
	}
	opt.CurrentValue = value
	opt.HandlerFunc(h, opt)
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.SendInfoString("malformed position command")
		return
	}
	fen := ""
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if fenb.Len() > 0 {
				fenb.WriteByte(' ')
			}
			fenb.WriteString(tokens[i])
			i++
		}
		fen = fenb.String()
	default:
		h.SendInfoString(fmt.Sprintf("malformed position command: %v", tokens))
		return
	}

	var moves []string
	if i < len(tokens) && tokens[i] == "moves" {
		moves = tokens[i+1:]
	}

	if err := h.driver.SetPosition(fen, moves); err != nil {
		h.SendInfoString(err.Error())
	}
}

func (h *Handler) goCommand(tokens []string) {
	limits, err := parseLimits(tokens)
	if err != nil {
		h.SendInfoString(err.Error())
		return
	}
	h.driver.Go(*limits)
}

func parseLimits(tokens []string) (*search.Limits, error) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "depth":
			i++
			v, err := intArg(tokens, i, "depth")
			if err != nil {
				return nil, err
			}
			limits.Depth = v
			i++
		case "movetime":
			i++
			v, err := intArg(tokens, i, "movetime")
			if err != nil {
				return nil, err
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			v, err := intArg(tokens, i, "wtime")
			if err != nil {
				return nil, err
			}
			limits.WhiteTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			v, err := intArg(tokens, i, "btime")
			if err != nil {
				return nil, err
			}
			limits.BlackTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc", "binc":
			// Accepted and ignored: increments are not part of spec.md
			// §6's time-budget formula.
			i += 2
		case "movestogo":
			i++
			v, err := intArg(tokens, i, "movestogo")
			if err != nil {
				return nil, err
			}
			limits.MovesToGo = v
			i++
		case "ponder":
			// Non-goal per spec.md: pondering is accepted and ignored.
			i++
		default:
			return nil, fmt.Errorf("go: invalid subcommand %q", tokens[i])
		}
	}
	return limits, nil
}

func intArg(tokens []string, i int, name string) (int, error) {
	if i >= len(tokens) {
		return 0, fmt.Errorf("go: missing value for %s", name)
	}
	v, err := strconv.Atoi(tokens[i])
	if err != nil {
		return 0, fmt.Errorf("go: %s value not a number: %s", name, tokens[i])
	}
	return v, nil
}

// ///////////////////////////////////////////////////////////////////
// search.Reporter implementation
// ///////////////////////////////////////////////////////////////////

// SendInfoString sends an arbitrary diagnostic string to the UI.
func (h *Handler) SendInfoString(msg string) {
	h.send("info string " + msg)
}

// SendIterationEnd reports one completed iterative-deepening depth.
func (h *Handler) SendIterationEnd(depth, seldepth int, value Value, nodes uint64, nps uint64, elapsed time.Duration, pv moveslice.MoveSlice) {
	h.send(fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d pv %s",
		depth, seldepth, value.String(), nodes, nps, elapsed.Milliseconds(), pv.StringUci()))
}

// SendBestMove reports the final chosen move, per spec.md §6.
func (h *Handler) SendBestMove(best, ponder Move) {
	if ponder.IsNone() {
		h.send("bestmove " + best.String())
		return
	}
	h.send("bestmove " + best.String() + " ponder " + ponder.String())
}

func (h *Handler) send(s string) {
	log.Debugf(">> %s", s)
	_, _ = h.Out.WriteString(s + "\n")
	_ = h.Out.Flush()
}
