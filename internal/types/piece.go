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

// PieceKind identifies a piece without its color.
type PieceKind uint8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	OffBoardKind // sentinel border marker
)

var pieceKindSymbol = [...]string{"", "P", "N", "B", "R", "Q", "K", "X"}

func (pk PieceKind) String() string {
	if int(pk) >= len(pieceKindSymbol) {
		return "?"
	}
	return pieceKindSymbol[pk]
}

// Piece is the cross product of Color and PieceKind packed into a single
// small integer: Empty=0, OffBoard=13, Black pieces 1..6 (P,N,B,R,Q,K),
// White pieces 7..12. kindOfTable/colorOfTable give kind_of/color_of in a
// single array read, as spec.md §3 requires.
type Piece uint8

const (
	Empty Piece = 0

	BlackPawn   Piece = 1
	BlackKnight Piece = 2
	BlackBishop Piece = 3
	BlackRook   Piece = 4
	BlackQueen  Piece = 5
	BlackKing   Piece = 6

	WhitePawn   Piece = 7
	WhiteKnight Piece = 8
	WhiteBishop Piece = 9
	WhiteRook   Piece = 10
	WhiteQueen  Piece = 11
	WhiteKing   Piece = 12

	OffBoard Piece = 13
)

var kindOfTable = [14]PieceKind{
	NoPieceKind,
	Pawn, Knight, Bishop, Rook, Queen, King,
	Pawn, Knight, Bishop, Rook, Queen, King,
	OffBoardKind,
}

var colorOfTable = [14]Color{
	None,
	Black, Black, Black, Black, Black, Black,
	White, White, White, White, White, White,
	None,
}

var pieceSymbol = [14]string{
	".",
	"p", "n", "b", "r", "q", "k",
	"P", "N", "B", "R", "Q", "K",
	"X",
}

// KindOf returns the PieceKind of p in a single array read.
func KindOf(p Piece) PieceKind {
	return kindOfTable[p]
}

// ColorOf returns the Color of p in a single array read.
func ColorOf(p Piece) Color {
	return colorOfTable[p]
}

// MakePiece builds the packed Piece for the given color and kind.
func MakePiece(c Color, k PieceKind) Piece {
	if k == NoPieceKind || k == OffBoardKind {
		return Empty
	}
	if c == White {
		return Piece(6 + k)
	}
	return Piece(k)
}

func (p Piece) String() string {
	if int(p) >= len(pieceSymbol) {
		return "?"
	}
	return pieceSymbol[p]
}

// PieceValue is the static material value for a piece kind, in centipawns.
var PieceValue = [7]int{
	NoPieceKind: 0,
	Pawn:        100,
	Knight:      320,
	Bishop:      330,
	Rook:        500,
	Queen:       900,
	King:        100_000,
}

// pieceKindFromSymbol maps a FEN letter (upper or lower case) to a PieceKind.
func pieceKindFromSymbol(c byte) (PieceKind, bool) {
	switch c {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceKind, false
	}
}

// PieceFromFEN maps a single FEN board-placement character to a Piece.
func PieceFromFEN(c byte) (Piece, bool) {
	kind, ok := pieceKindFromSymbol(c)
	if !ok {
		return Empty, false
	}
	if c >= 'a' && c <= 'z' {
		return MakePiece(Black, kind), true
	}
	return MakePiece(White, kind), true
}
