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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareNameRoundTrip(t *testing.T) {
	cases := []string{"a1", "h1", "a8", "h8", "e2", "e4", "e7"}
	for _, sq := range cases {
		file, rank, ok := ParseSquareName(sq)
		assert.True(t, ok, sq)
		assert.Equal(t, sq, SquareName(file, rank))
	}
}

func TestParseSquareNameInvalid(t *testing.T) {
	_, _, ok := ParseSquareName("i9")
	assert.False(t, ok)
	_, _, ok = ParseSquareName("e")
	assert.False(t, ok)
}

func TestColorOther(t *testing.T) {
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
	assert.Equal(t, "w", White.String())
	assert.Equal(t, "b", Black.String())
}

func TestMakePieceAndKindColorOf(t *testing.T) {
	p := MakePiece(White, Knight)
	assert.Equal(t, WhiteKnight, p)
	assert.Equal(t, Knight, KindOf(p))
	assert.Equal(t, White, ColorOf(p))

	p = MakePiece(Black, Queen)
	assert.Equal(t, BlackQueen, p)
	assert.Equal(t, Queen, KindOf(p))
	assert.Equal(t, Black, ColorOf(p))
}

func TestPieceFromFEN(t *testing.T) {
	p, ok := PieceFromFEN('P')
	assert.True(t, ok)
	assert.Equal(t, WhitePawn, p)

	p, ok = PieceFromFEN('k')
	assert.True(t, ok)
	assert.Equal(t, BlackKing, p)

	_, ok = PieceFromFEN('x')
	assert.False(t, ok)
}

func TestMoveStringAndParse(t *testing.T) {
	m := NewMove(4, 6, 4, 4) // e2e4
	assert.Equal(t, "e2e4", m.String())

	parsed, err := ParseMove("e2e4")
	assert.NoError(t, err)
	assert.True(t, parsed.Equals(m))

	promo := NewPromotionMove(4, 1, 4, 0, Queen)
	assert.Equal(t, "e7e8q", promo.String())

	parsedPromo, err := ParseMove("e7e8q")
	assert.NoError(t, err)
	assert.True(t, parsedPromo.Equals(promo))
}

func TestParseMoveMalformed(t *testing.T) {
	_, err := ParseMove("e2e")
	assert.Error(t, err)
	_, err = ParseMove("z9e4")
	assert.Error(t, err)
	_, err = ParseMove("e2e4k")
	assert.Error(t, err)
}

func TestMoveEqualsIgnoresScoreAndCastle(t *testing.T) {
	a := Move{FromFile: 4, FromRank: 7, ToFile: 6, ToRank: 7, IsCastle: true, Score: 42}
	b := Move{FromFile: 4, FromRank: 7, ToFile: 6, ToRank: 7}
	assert.True(t, a.Equals(b))
}

func TestNoMove(t *testing.T) {
	assert.True(t, NoMove.IsNone())
	m := NewMove(0, 0, 1, 1)
	assert.False(t, m.IsNone())
}

func TestCastleRightsRoundTrip(t *testing.T) {
	cr := ParseCastleRights("KQkq")
	assert.Equal(t, AllCastleRights, cr)
	assert.Equal(t, "KQkq", cr.String())

	cr = cr.Clear(WhiteKingside)
	assert.False(t, cr.Has(WhiteKingside))
	assert.True(t, cr.Has(BlackQueenside))

	assert.Equal(t, "-", NoCastleRights.String())
	assert.Equal(t, NoCastleRights, ParseCastleRights("-"))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "cp 150", Value(150).String())
	assert.Equal(t, "mate 1", (MateValue - 1).String())
	assert.Equal(t, "mate -1", (-MateValue + 2).String())
}

func TestMateInAndIsMateScore(t *testing.T) {
	assert.False(t, IsMateScore(Value(500)))
	mateInFive := MateValue - 5
	assert.True(t, IsMateScore(mateInFive))
	assert.Equal(t, 5, MateIn(mateInFive))
}

func TestMvvLvaOrdering(t *testing.T) {
	// Capturing a queen should score higher than capturing a pawn,
	// regardless of attacker.
	assert.Greater(t, MvvLva[Queen][Pawn], MvvLva[Pawn][Queen])
	// Cheaper attacker wins ties on the same victim.
	assert.Greater(t, MvvLva[Rook][Pawn], MvvLva[Rook][Queen])
}
