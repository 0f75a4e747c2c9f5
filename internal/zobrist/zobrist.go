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

// Package zobrist holds the process-wide random 64-bit constants used to
// maintain a Position's incremental hash: one value per (square, piece),
// per en-passant file (plus "no en passant"), per castle-rights mask, and
// per side to move.
package zobrist

import (
	"math/rand"

	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// PieceSquare is indexed [rank][file][piece] over 8x8x14 (piece indexed by
// the encoded Piece, including the unused Empty/OffBoard slots so a plain
// array read never needs a bounds check).
var PieceSquare [BoardDim][BoardDim][14]uint64

// EnPassantFile is indexed by file 0..7; NoEnPassant is XORed in instead
// when there is no en-passant square.
var EnPassantFile [BoardDim]uint64
var NoEnPassant uint64

// Castling is indexed by the 4-bit castle-rights mask, 0..15.
var Castling [16]uint64

// SideToMove holds one value per color; indexed by (color+1)/... via
// SideToMoveHash below since Color is signed.
var whiteToMove uint64
var blackToMove uint64

var initialized = false

func init() {
	if !initialized {
		seed := rand.New(rand.NewSource(0x5EED5EEDC0FFEE))
		for r := 0; r < BoardDim; r++ {
			for f := 0; f < BoardDim; f++ {
				for p := 0; p < 14; p++ {
					PieceSquare[r][f][p] = seed.Uint64()
				}
			}
		}
		for f := 0; f < BoardDim; f++ {
			EnPassantFile[f] = seed.Uint64()
		}
		NoEnPassant = seed.Uint64()
		for c := 0; c < 16; c++ {
			Castling[c] = seed.Uint64()
		}
		whiteToMove = seed.Uint64()
		blackToMove = seed.Uint64()
		initialized = true
	}
}

// SideToMoveHash returns the turn-hash contribution for c.
func SideToMoveHash(c Color) uint64 {
	if c == White {
		return whiteToMove
	}
	return blackToMove
}
