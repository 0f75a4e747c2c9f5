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

package search

import (
	"time"

	"github.com/sentinelchess/sentinelchess/internal/moveslice"
	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// Reporter lets Search push UCI-bound progress to a caller without
// importing the uci package - the uci package imports engine which
// imports search, so search cannot import uci back. Trimmed from the
// teacher's uciInterface.UciDriver to the lines spec.md §6 requires:
// "info depth ... score cp ... pv ..." and the final "bestmove".
type Reporter interface {
	SendInfoString(msg string)
	SendIterationEnd(depth, seldepth int, value Value, nodes uint64, nps uint64, elapsed time.Duration, pv moveslice.MoveSlice)
	SendBestMove(best, ponder Move)
}

// nullReporter discards everything; used when no Reporter is attached
// (e.g. in tests or the perft harness).
type nullReporter struct{}

func (nullReporter) SendInfoString(string)                                                    {}
func (nullReporter) SendIterationEnd(int, int, Value, uint64, uint64, time.Duration, moveslice.MoveSlice) {}
func (nullReporter) SendBestMove(Move, Move)                                                   {}
