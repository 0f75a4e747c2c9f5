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

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUciHandshake(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")

	assert.True(t, strings.Contains(out, "id name"))
	assert.True(t, strings.Contains(out, "id author"))
	assert.True(t, strings.Contains(out, "option name Hash"))
	assert.True(t, strings.Contains(out, "option name Clear Hash"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "uciok"))
}

func TestIsReady(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestPositionStartposThenMoves(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "", out)
	assert.Equal(t, "black", h.driver.SideToMoveName())
}

func TestPositionFenWithMoves(t *testing.T) {
	h := NewHandler()
	out := h.Command("position fen 8/8/8/4k3/8/8/4K3/8 w - - 0 1 moves e2e4")
	assert.True(t, strings.Contains(out, "info string"), "there is no white pawn on e2 here")
}

func TestPositionMalformedReportsInfoString(t *testing.T) {
	h := NewHandler()
	out := h.Command("position")
	assert.True(t, strings.Contains(out, "info string"))
}

func TestGoDepthReportsBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position fen 6k1/5ppp/8/8/8/8/5PPP/R6K w - - 0 1")
	h.Command("go depth 3")
	h.driver.WaitSearchDone()

	result := h.driver.LastResult()
	assert.NotNil(t, result)
	assert.Equal(t, "a1a8", result.BestMove.String())
}

func TestSetOptionClearHash(t *testing.T) {
	h := NewHandler()
	out := h.Command("setoption name Clear Hash")
	assert.Equal(t, "", out)
}

func TestSetOptionHashResizes(t *testing.T) {
	h := NewHandler()
	out := h.Command("setoption name Hash value 2")
	assert.Equal(t, "", out)
}

func TestSetOptionUnknownNameReportsInfoString(t *testing.T) {
	h := NewHandler()
	out := h.Command("setoption name Nonexistent value 1")
	assert.True(t, strings.Contains(out, "info string"))
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	h := NewHandler()
	out := h.Command("bananas")
	assert.Equal(t, "", out)
}

func TestQuitStopsTheLoop(t *testing.T) {
	h := NewHandler()
	assert.True(t, h.dispatch("quit"))
	assert.False(t, h.dispatch("isready"))
}
