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

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, quiescence search and a transposition table, per spec.md §4.7.
// It deliberately does not implement the teacher's PVS, null-move
// pruning, late-move reductions, internal iterative deepening or static
// exchange evaluation - none of those are part of this spec's search
// algorithm; see DESIGN.md.
package search

import (
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sentinelchess/sentinelchess/internal/config"
	"github.com/sentinelchess/sentinelchess/internal/evaluator"
	myLogging "github.com/sentinelchess/sentinelchess/internal/logging"
	"github.com/sentinelchess/sentinelchess/internal/moveslice"
	"github.com/sentinelchess/sentinelchess/internal/position"
	"github.com/sentinelchess/sentinelchess/internal/transpositiontable"
	. "github.com/sentinelchess/sentinelchess/internal/types"
	"github.com/sentinelchess/sentinelchess/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxDepth bounds iterative deepening, matching config.Settings.Search.MaxDepth.
const MaxDepth = 64

// Search holds all state for one engine's worth of iterative-deepening
// negamax search. It is not safe for concurrent StartSearch calls - the
// engine driver (internal/engine) serializes access with a mutex, per
// spec.md §5.
type Search struct {
	log *logging.Logger

	tt       *transpositiontable.Table
	reporter Reporter
	stopFlag *util.Bool

	mu        sync.Mutex
	wg        sync.WaitGroup
	isRunning bool

	startTime    time.Time
	deadline     time.Time
	nodesVisited uint64
	statistics   Statistics

	rootMoves  moveslice.MoveSlice
	lastResult *Result
}

// NewSearch creates a Search with its own transposition table, sized per
// config.Settings.Search.TTSizeMB.
func NewSearch() *Search {
	return &Search{
		log:      myLogging.GetLog("search"),
		tt:       transpositiontable.New(config.Settings.Search.TTSizeMB),
		reporter: nullReporter{},
		stopFlag: util.NewBool(false),
	}
}

// SetReporter attaches the sink for UCI-bound progress output. A nil
// reporter restores the silent default.
func (s *Search) SetReporter(r Reporter) {
	if r == nil {
		r = nullReporter{}
	}
	s.reporter = r
}

// NewGame resets cross-search state for a new game, per spec.md §6
// "ucinewgame".
func (s *Search) NewGame() {
	s.StopSearch()
	s.tt.Clear()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// WaitWhileSearching blocks until any running search has finished.
func (s *Search) WaitWhileSearching() {
	s.wg.Wait()
}

// StartSearch begins an asynchronous search of pos under the given
// limits. It returns once the worker goroutine has been launched; use
// WaitWhileSearching or the Reporter's SendBestMove to learn the result.
func (s *Search) StartSearch(pos *position.Position, limits Limits) {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		s.log.Warning("StartSearch called while a search is already running")
		return
	}
	s.isRunning = true
	s.mu.Unlock()

	s.stopFlag.Store(false)
	s.wg.Add(1)
	go s.run(pos, limits)
}

// StopSearch requests the running search to abort as soon as possible
// and blocks until it has, per spec.md §4.8 "stop()".
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// LastResult returns the most recently completed search's result, or
// nil if no search has ever completed.
func (s *Search) LastResult() *Result {
	return s.lastResult
}

// ClearHash empties the transposition table, per the UCI "Clear Hash"
// button option.
func (s *Search) ClearHash() {
	s.tt.Clear()
}

// ResizeHash reallocates the transposition table to sizeInMB, per the
// UCI "Hash" spin option.
func (s *Search) ResizeHash(sizeInMB int) {
	s.tt.Resize(sizeInMB)
}

// NodesVisited returns the running node count of the last (or current)
// search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a copy of the last (or current) search's extra
// counters, for UCI debug output and tests.
func (s *Search) Statistics() Statistics {
	return s.statistics
}

func (s *Search) run(pos *position.Position, limits Limits) {
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		s.wg.Done()
	}()

	s.startTime = time.Now()
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.setDeadline(pos, limits)

	result := s.iterativeDeepening(pos, limits)
	result.SearchTime = time.Since(s.startTime)

	s.log.Info(out.Sprintf("search finished: %s", result.String()))
	s.lastResult = result
	s.reporter.SendBestMove(result.BestMove, result.PonderMove)
}

// setDeadline computes s.deadline from the search limits and starts the
// timer goroutine when under time control, per spec.md §5's "dispatcher
// polling thread" - here folded into the worker itself since this engine
// has no separate polling thread.
func (s *Search) setDeadline(pos *position.Position, limits Limits) {
	if limits.Infinite {
		s.deadline = time.Time{}
		return
	}

	var budget time.Duration
	switch {
	case limits.MoveTime > 0:
		budget = limits.MoveTime
	case limits.TimeControl:
		budget = s.timeBudget(pos, limits)
	default:
		budget = time.Duration(config.Settings.Search.DefaultMoveTimeMs) * time.Millisecond
		min := time.Duration(config.Settings.Search.MinMoveTimeMs) * time.Millisecond
		max := time.Duration(config.Settings.Search.MaxMoveTimeMs) * time.Millisecond
		if budget < min {
			budget = min
		}
		if budget > max {
			budget = max
		}
	}

	s.deadline = s.startTime.Add(budget)
	s.startTimer()
}

// timeBudget estimates a per-move time slice from the clocks, per
// spec.md §6: "(own time) / max(1, movestogo)".
func (s *Search) timeBudget(pos *position.Position, limits Limits) time.Duration {
	var remaining time.Duration
	if pos.SideToMove() == White {
		remaining = limits.WhiteTime
	} else {
		remaining = limits.BlackTime
	}
	movesToGo := limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 1
	}
	return remaining / time.Duration(movesToGo)
}

// startTimer runs a goroutine that flips the cooperative stop flag once
// the deadline passes, per spec.md §5's "dispatcher polling ... in
// ~100ms increments" - adapted to poll every 20ms since the deadline is
// computed locally rather than by a separate dispatcher thread.
func (s *Search) startTimer() {
	deadline := s.deadline
	go func() {
		for {
			if s.stopFlag.Load() {
				return
			}
			remaining := time.Until(deadline)
			if remaining <= 0 {
				s.stopFlag.Store(true)
				return
			}
			wait := remaining
			if wait > 20*time.Millisecond {
				wait = 20 * time.Millisecond
			}
			time.Sleep(wait)
		}
	}()
}

func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime))
	if nps > 15_000_000 {
		nps = 0
	}
	return nps
}

// evalPosition calls the static evaluator. Kept as a method so a future
// TT-backed eval cache (the teacher's EvaluationsFromTT statistic) has a
// single seam to hook into.
func (s *Search) evalPosition(pos *position.Position) Value {
	s.nodesVisited++
	return evaluator.Evaluate(pos)
}
