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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// emptyBoard returns a 12x12 sentinel board with OffBoard on the border
// and Empty everywhere on the inner 8x8.
func emptyBoard() *Board {
	var b Board
	for r := 0; r < ExtBoardDim; r++ {
		for c := 0; c < ExtBoardDim; c++ {
			b[r][c] = OffBoard
		}
	}
	for r := BorderWidth; r < BorderWidth+BoardDim; r++ {
		for c := BorderWidth; c < BorderWidth+BoardDim; c++ {
			b[r][c] = Empty
		}
	}
	return &b
}

func TestPawnAttacksDiagonalNotStraight(t *testing.T) {
	b := emptyBoard()
	b[5][4] = WhitePawn

	assert.True(t, IsAttacked(b, 4, 3, White))
	assert.True(t, IsAttacked(b, 4, 5, White))
	assert.False(t, IsAttacked(b, 4, 4, White), "pawns don't attack the square directly ahead")
}

func TestBlackPawnAttacksOppositeDirection(t *testing.T) {
	b := emptyBoard()
	b[4][4] = BlackPawn

	assert.True(t, IsAttacked(b, 5, 3, Black))
	assert.True(t, IsAttacked(b, 5, 5, Black))
	assert.False(t, IsAttacked(b, 3, 4, Black))
}

func TestKingAdjacency(t *testing.T) {
	b := emptyBoard()
	b[5][5] = BlackKing

	assert.True(t, IsAttacked(b, 4, 4, Black))
	assert.True(t, IsAttacked(b, 5, 4, Black))
	assert.False(t, IsAttacked(b, 3, 3, Black), "king does not attack two squares away")
}

func TestKnightLShape(t *testing.T) {
	b := emptyBoard()
	b[5][5] = WhiteKnight

	assert.True(t, IsAttacked(b, 3, 4, White))
	assert.True(t, IsAttacked(b, 7, 6, White))
	assert.False(t, IsAttacked(b, 5, 4, White), "adjacent squares are not a knight move")
}

func TestBishopSlideAndBlock(t *testing.T) {
	b := emptyBoard()
	b[5][5] = WhiteBishop

	assert.True(t, IsAttacked(b, 3, 3, White))

	b[4][4] = BlackPawn // blocker between (5,5) and (3,3)
	assert.False(t, IsAttacked(b, 3, 3, White), "a blocker stops the diagonal slide")
	assert.True(t, IsAttacked(b, 4, 4, White), "the blocker's own square is still reachable")
}

func TestRookSlideAndBlock(t *testing.T) {
	b := emptyBoard()
	b[5][5] = WhiteRook

	assert.True(t, IsAttacked(b, 5, 2, White))

	b[5][3] = BlackKnight // blocker between (5,5) and (5,2)
	assert.False(t, IsAttacked(b, 5, 2, White), "a blocker stops the orthogonal slide")
	assert.True(t, IsAttacked(b, 5, 3, White))
}

func TestQueenCombinesBishopAndRook(t *testing.T) {
	b := emptyBoard()
	b[5][5] = BlackQueen

	assert.True(t, IsAttacked(b, 2, 2, Black), "diagonal reach")
	assert.True(t, IsAttacked(b, 5, 2, Black), "orthogonal reach")
}

func TestSlideStopsAtBoardEdgeWithoutPanic(t *testing.T) {
	b := emptyBoard()
	b[2][2] = WhiteRook

	assert.NotPanics(t, func() {
		IsAttacked(b, 2, 9, White)
	})
}

func TestWrongColorAttackerIsIgnored(t *testing.T) {
	b := emptyBoard()
	b[5][5] = WhiteQueen

	assert.False(t, IsAttacked(b, 5, 2, Black), "a white queen doesn't count as a black attacker")
}
