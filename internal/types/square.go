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

import "fmt"

// Files and ranks are 0..7. Rank 0 is rank 8 in chess notation: row 0 is the
// top of the printed board, and White's back rank is row 7. Implementers
// must keep this orientation - the evaluator's piece-square tables are
// indexed directly with row for White, and reflected for Black via 7-row.
const (
	FileA = 0
	FileH = 7
	Rank1 = 7 // White's back rank, row 7
	Rank8 = 0 // Black's back rank, row 0
)

// BoardDim is the playing-area side length; BorderWidth is the sentinel
// padding on each edge of the 12x12 array.
const (
	BoardDim    = 8
	BorderWidth = 2
	ExtBoardDim = BoardDim + 2*BorderWidth // 12
)

// NoSquare marks the absence of an en-passant square. It is outside the 0..7 board range so they can never collide with a real
// file/rank pair.
const NoSquare = -1

// ToBoardRow/ToBoardCol map an inner-board coordinate (0..7) to its index
// in the 12x12 sentinel array (2..9), per spec.md §3's piece_at accessor.
func ToBoardRow(rank int) int { return rank + BorderWidth }
func ToBoardCol(file int) int { return file + BorderWidth }

// FromBoardRow/FromBoardCol are the inverse mapping.
func FromBoardRow(row int) int { return row - BorderWidth }
func FromBoardCol(col int) int { return col - BorderWidth }

// OnBoard reports whether (rank, file) lies within the inner 8x8 area.
func OnBoard(rank, file int) bool {
	return rank >= 0 && rank < BoardDim && file >= 0 && file < BoardDim
}

// SquareName formats a (file, rank) pair as algebraic notation, e.g. "e4".
// rank is in the engine's internal orientation (0 = rank 8).
func SquareName(file, rank int) string {
	return fmt.Sprintf("%c%d", 'a'+file, Rank1-rank+1)
}

// ParseSquareName parses algebraic notation ("e4") into (file, rank) in the
// engine's internal orientation. Returns ok=false for malformed input.
func ParseSquareName(s string) (file, rank int, ok bool) {
	if len(s) != 2 {
		return 0, 0, false
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return 0, 0, false
	}
	file = int(f - 'a')
	rank = Rank1 - int(r-'1')
	return file, rank, true
}

// StartRank returns the rank on which color's pawns start (for double push
// legality), in internal orientation.
func StartRank(c Color) int {
	if c == White {
		return Rank1 - 1
	}
	return Rank8 + 1
}

// PromotionRank returns the rank a color's pawn promotes on.
func PromotionRank(c Color) int {
	if c == White {
		return Rank8
	}
	return Rank1
}

// PawnDirection returns the rank delta of a forward pawn push for color c:
// White moves toward decreasing rank (rank 7 -> 0), Black toward increasing.
func PawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}
