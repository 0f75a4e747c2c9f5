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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sentinelchess/sentinelchess/internal/types"
)

func TestNewPositionStartpos(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, AllCastleRights, p.CastleRights())
	_, _, ok := p.EnPassant()
	assert.False(t, ok)
	assert.Equal(t, StartFEN, p.FEN())
	assert.Equal(t, p.RecomputeHash(), p.Hash())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := NewPositionFromFEN(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, fen, p.FEN())
		assert.Equal(t, p.RecomputeHash(), p.Hash())
	}
}

func TestNewPositionFromFENRejectsMalformed(t *testing.T) {
	_, err := NewPositionFromFEN("not a fen")
	assert.Error(t, err)

	_, err = NewPositionFromFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err, "missing kings")
}

func TestMakeUnmakeRestoresState(t *testing.T) {
	p := NewPosition()
	before := p.FEN()
	beforeHash := p.Hash()

	m := NewMove(4, 6, 4, 4) // e2e4
	p.MakeMove(m)
	assert.NotEqual(t, before, p.FEN())
	assert.Equal(t, Black, p.SideToMove())

	p.UnmakeMove()
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeHash, p.Hash())
}

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	p := NewPosition()
	moves := []Move{
		NewMove(4, 6, 4, 4), // e2e4
		NewMove(4, 1, 4, 3), // e7e5
		NewMove(6, 7, 5, 5), // g1f3
		NewMove(1, 0, 2, 2), // b8c6
	}
	for _, m := range moves {
		p.MakeMove(m)
		assert.Equal(t, p.RecomputeHash(), p.Hash())
	}
	for range moves {
		p.UnmakeMove()
		assert.Equal(t, p.RecomputeHash(), p.Hash())
	}
}

func TestEnPassantCapture(t *testing.T) {
	p, err := NewPositionFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)

	epFile, epRank, ok := p.EnPassant()
	assert.True(t, ok)
	assert.Equal(t, 3, epFile)

	m := NewMove(4, 3, epFile, epRank) // exd6 e.p.
	p.MakeMove(m)
	assert.Equal(t, Empty, p.PieceAt(3, 3), "captured pawn removed from its own square")
	assert.Equal(t, WhitePawn, p.PieceAt(3, 2))
	assert.Equal(t, p.RecomputeHash(), p.Hash())
}

func TestCastlingMovesRookAndClearsRights(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	m := NewCastleMove(4, 7, 6, 7) // white O-O
	p.MakeMove(m)
	assert.Equal(t, WhiteKing, p.PieceAt(6, 7))
	assert.Equal(t, WhiteRook, p.PieceAt(5, 7))
	assert.Equal(t, Empty, p.PieceAt(7, 7))
	assert.False(t, p.CastleRights().Has(WhiteKingside))
	assert.False(t, p.CastleRights().Has(WhiteQueenside))
	assert.True(t, p.CastleRights().Has(BlackKingside))

	p.UnmakeMove()
	assert.Equal(t, WhiteKing, p.PieceAt(4, 7))
	assert.Equal(t, WhiteRook, p.PieceAt(7, 7))
	assert.True(t, p.CastleRights().Has(WhiteKingside))
}

func TestCapturingRookClearsCastleRight(t *testing.T) {
	p, err := NewPositionFromFEN("4k2r/5N2/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.CastleRights().Has(BlackKingside))

	m := NewMove(5, 1, 7, 0) // Nf7xh8
	p.MakeMove(m)
	assert.Equal(t, WhiteKnight, p.PieceAt(7, 0))
	assert.False(t, p.CastleRights().Has(BlackKingside))
}

func TestRepetitionCount(t *testing.T) {
	p := NewPosition()
	startHash := p.Hash()

	seq := []Move{
		NewMove(6, 7, 5, 5), // Ng1f3
		NewMove(6, 0, 5, 2), // Ng8f6
		NewMove(5, 5, 6, 7), // Nf3g1
		NewMove(5, 2, 6, 0), // Nf6g8
	}
	for _, m := range seq {
		p.MakeMove(m)
	}
	assert.Equal(t, startHash, p.Hash())
	assert.GreaterOrEqual(t, p.RepetitionCount(), 1)
}

func TestHistoryLen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, 0, p.HistoryLen())
	p.MakeMove(NewMove(4, 6, 4, 4))
	assert.Equal(t, 1, p.HistoryLen())
	p.UnmakeMove()
	assert.Equal(t, 0, p.HistoryLen())
}
