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

// Package position represents a chess position: a 12x12 sentinel-bordered
// piece board, side to move, castle rights, en-passant square, move
// counters, check flags and an incrementally-maintained Zobrist hash. It
// owns make/unmake (with an O(1) undo history stack) and FEN parsing and
// printing.
package position

import (
	. "github.com/sentinelchess/sentinelchess/internal/attacks"
	. "github.com/sentinelchess/sentinelchess/internal/types"
	"github.com/sentinelchess/sentinelchess/internal/zobrist"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxHistory is the initial capacity of the undo stack, chosen to cover
// the game moves replayed from a FEN plus the deepest search line (up to
// 64 plies plus the quiescence horizon, per spec.md §3). MakeMove appends
// to the stack, so it grows past this capacity if a line is longer.
const MaxHistory = 1024

// boardState is everything make/unmake mutate. It is what gets pushed to
// and popped from the history stack - deliberately excluding the history
// stack itself, so a snapshot stays a fixed-size value.
type boardState struct {
	board        Board
	sideToMove   Color
	castleRights CastleRights
	epFile       int
	epRank       int
	halfMoveClock   int
	fullMoveNumber  int
	whiteInCheck    bool
	blackInCheck    bool
	hash            uint64
	kingFile        [2]int
	kingRank        [2]int
}

// Position is a mutable chess position plus its undo history.
type Position struct {
	boardState
	history []boardState
}

func colorIndex(c Color) int {
	if c == White {
		return 0
	}
	return 1
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFromFEN(StartFEN)
	if err != nil {
		// StartFEN is a constant; a parse failure here is a programming error.
		panic(err)
	}
	return p
}

// PieceAt returns the piece on the inner-board square (file, rank), both
// in 0..7, using the engine's internal rank orientation (0 = rank 8).
func (p *Position) PieceAt(file, rank int) Piece {
	return p.board[ToBoardRow(rank)][ToBoardCol(file)]
}

func (p *Position) setPieceAt(file, rank int, piece Piece) {
	p.board[ToBoardRow(rank)][ToBoardCol(file)] = piece
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastleRights returns the current castle-rights mask.
func (p *Position) CastleRights() CastleRights { return p.castleRights }

// EnPassant returns the en-passant target square, if any.
func (p *Position) EnPassant() (file, rank int, ok bool) {
	if p.epFile == NoSquare {
		return 0, 0, false
	}
	return p.epFile, p.epRank, true
}

// HalfMoveClock returns the 50-move-rule half-move counter.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the current full-move number.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// Hash returns the incrementally-maintained Zobrist hash.
func (p *Position) Hash() uint64 { return p.hash }

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	if c == White {
		return p.whiteInCheck
	}
	return p.blackInCheck
}

// KingSquare returns the file/rank of c's king.
func (p *Position) KingSquare(c Color) (file, rank int) {
	i := colorIndex(c)
	return p.kingFile[i], p.kingRank[i]
}

// IsAttacked reports whether (file, rank) would be captured by a piece of
// attacker's color, per spec.md §4.3.
func (p *Position) IsAttacked(file, rank int, attacker Color) bool {
	return IsAttacked(&p.board, ToBoardRow(rank), ToBoardCol(file), attacker)
}

// HistoryLen returns the number of plies played since the position was
// (re)initialized from a FEN.
func (p *Position) HistoryLen() int {
	return len(p.history)
}

// RepetitionCount returns how many times the current hash occurs earlier
// in the history stack. Search treats a count >= 2 as a threefold draw
// (the current occurrence is the third), per spec.md §4.7 step 2.
func (p *Position) RepetitionCount() int {
	count := 0
	for i := len(p.history) - 1; i >= 0; i-- {
		h := p.history[i]
		if h.hash == p.hash {
			count++
		}
		// An irreversible move (pawn push or capture) bounds how far back
		// a repetition can reach; stop scanning past it.
		if h.halfMoveClock == 0 {
			break
		}
	}
	return count
}

func pieceHash(file, rank int, piece Piece) uint64 {
	return zobrist.PieceSquare[rank][file][piece]
}

func epHash(epFile int) uint64 {
	if epFile == NoSquare {
		return zobrist.NoEnPassant
	}
	return zobrist.EnPassantFile[epFile]
}

func castleHash(rights CastleRights) uint64 {
	return zobrist.Castling[rights]
}

func turnHash(c Color) uint64 {
	return zobrist.SideToMoveHash(c)
}

// RecomputeHash performs a full, non-incremental recompute of the Zobrist
// hash from the current board/state, per spec.md §3 invariant 3. Used by
// debug assertions and by tests to validate the incremental maintenance
// in make/unmake.
func (p *Position) RecomputeHash() uint64 {
	var h uint64
	for rank := 0; rank < BoardDim; rank++ {
		for file := 0; file < BoardDim; file++ {
			if piece := p.PieceAt(file, rank); piece != Empty {
				h ^= pieceHash(file, rank, piece)
			}
		}
	}
	h ^= epHash(p.epFile)
	h ^= castleHash(p.castleRights)
	h ^= turnHash(p.sideToMove)
	return h
}
