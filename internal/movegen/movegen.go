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

// Package movegen generates pseudo-legal moves for a position: moves that
// obey piece geometry and occupancy but may leave the mover's own king in
// check. The search filters for legality by making the move and checking
// whether the mover is then in check, per spec.md §4.2.
package movegen

import (
	"github.com/sentinelchess/sentinelchess/internal/moveslice"
	"github.com/sentinelchess/sentinelchess/internal/position"
	. "github.com/sentinelchess/sentinelchess/internal/types"
)

var knightDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var bishopDeltas = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var rookDeltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// Generate produces pseudo-legal moves for pos.SideToMove() into out. When
// capturesOnly is true, only capturing moves (including en passant and
// promotion-captures) are emitted - used by quiescence, per spec.md §4.2.
func Generate(pos *position.Position, out *moveslice.MoveSlice, capturesOnly bool) {
	side := pos.SideToMove()
	for rank := 0; rank < BoardDim; rank++ {
		for file := 0; file < BoardDim; file++ {
			piece := pos.PieceAt(file, rank)
			if piece == Empty || ColorOf(piece) != side {
				continue
			}
			switch KindOf(piece) {
			case Pawn:
				genPawnMoves(pos, out, file, rank, side, capturesOnly)
			case Knight:
				genStepMoves(pos, out, file, rank, side, knightDeltas[:], capturesOnly)
			case Bishop:
				genSlideMoves(pos, out, file, rank, side, bishopDeltas[:], capturesOnly)
			case Rook:
				genSlideMoves(pos, out, file, rank, side, rookDeltas[:], capturesOnly)
			case Queen:
				genSlideMoves(pos, out, file, rank, side, bishopDeltas[:], capturesOnly)
				genSlideMoves(pos, out, file, rank, side, rookDeltas[:], capturesOnly)
			case King:
				genKingMoves(pos, out, file, rank, side, capturesOnly)
			}
		}
	}
}

func addQuiet(out *moveslice.MoveSlice, m Move) {
	m.Score = 0
	out.PushBack(m)
}

func addCapture(out *moveslice.MoveSlice, m Move, victim, attacker PieceKind) {
	m.Score = MvvLva[victim][attacker]
	out.PushBack(m)
}

func genPawnMoves(pos *position.Position, out *moveslice.MoveSlice, file, rank int, side Color, capturesOnly bool) {
	dir := PawnDirection(side)
	promoRank := PromotionRank(side)

	emit := func(toFile, toRank int, isCapture bool, victim PieceKind) {
		if toRank == promoRank {
			for _, promo := range promotionKinds {
				m := NewPromotionMove(file, rank, toFile, toRank, promo)
				if isCapture {
					addCapture(out, m, victim, Pawn)
				} else {
					addQuiet(out, m)
				}
			}
			return
		}
		m := NewMove(file, rank, toFile, toRank)
		if isCapture {
			addCapture(out, m, victim, Pawn)
		} else {
			addQuiet(out, m)
		}
	}

	// quiet pushes
	if !capturesOnly {
		oneRank := rank + dir
		if OnBoard(oneRank, file) && pos.PieceAt(file, oneRank) == Empty {
			emit(file, oneRank, false, NoPieceKind)
			twoRank := rank + 2*dir
			if rank == StartRank(side) && OnBoard(twoRank, file) && pos.PieceAt(file, twoRank) == Empty {
				m := NewMove(file, rank, file, twoRank)
				addQuiet(out, m)
			}
		}
	}

	// diagonal captures
	for _, df := range [2]int{-1, 1} {
		toFile := file + df
		toRank := rank + dir
		if !OnBoard(toRank, toFile) {
			continue
		}
		target := pos.PieceAt(toFile, toRank)
		if target != Empty && ColorOf(target) == side.Other() {
			if KindOf(target) != King { // capturing a king is not a legal chess move
				emit(toFile, toRank, true, KindOf(target))
			}
			continue
		}
		if epFile, epRank, ok := pos.EnPassant(); ok && toFile == epFile && toRank == epRank {
			m := NewMove(file, rank, toFile, toRank)
			addCapture(out, m, Pawn, Pawn)
		}
	}
}

func genStepMoves(pos *position.Position, out *moveslice.MoveSlice, file, rank int, side Color, deltas [][2]int, capturesOnly bool) {
	piece := pos.PieceAt(file, rank)
	for _, d := range deltas {
		toFile, toRank := file+d[0], rank+d[1]
		if !OnBoard(toRank, toFile) {
			continue
		}
		target := pos.PieceAt(toFile, toRank)
		if target == Empty {
			if !capturesOnly {
				addQuiet(out, NewMove(file, rank, toFile, toRank))
			}
			continue
		}
		if ColorOf(target) != side {
			if KindOf(target) == King {
				continue // capturing a king is not a legal chess move
			}
			addCapture(out, NewMove(file, rank, toFile, toRank), KindOf(target), KindOf(piece))
		}
	}
}

func genSlideMoves(pos *position.Position, out *moveslice.MoveSlice, file, rank int, side Color, deltas [][2]int, capturesOnly bool) {
	piece := pos.PieceAt(file, rank)
	for _, d := range deltas {
		toFile, toRank := file+d[0], rank+d[1]
		for OnBoard(toRank, toFile) {
			target := pos.PieceAt(toFile, toRank)
			if target == Empty {
				if !capturesOnly {
					addQuiet(out, NewMove(file, rank, toFile, toRank))
				}
				toFile += d[0]
				toRank += d[1]
				continue
			}
			if ColorOf(target) != side && KindOf(target) != King {
				addCapture(out, NewMove(file, rank, toFile, toRank), KindOf(target), KindOf(piece))
			}
			break
		}
	}
}

// genKingMoves generates ordinary king steps and castling. Per spec.md
// §4.2, a king move's legality against being attacked is checked at
// generation time rather than left to the downstream make+check+unmake
// filter: IsAttacked(target, -side) runs before the move is emitted, the
// same check genCastling already applies to the king's start, transit and
// destination squares.
func genKingMoves(pos *position.Position, out *moveslice.MoveSlice, file, rank int, side Color, capturesOnly bool) {
	piece := pos.PieceAt(file, rank)
	enemy := side.Other()
	for _, d := range kingDeltas {
		toFile, toRank := file+d[0], rank+d[1]
		if !OnBoard(toRank, toFile) {
			continue
		}
		if pos.IsAttacked(toFile, toRank, enemy) {
			continue
		}
		target := pos.PieceAt(toFile, toRank)
		if target == Empty {
			if !capturesOnly {
				addQuiet(out, NewMove(file, rank, toFile, toRank))
			}
			continue
		}
		if ColorOf(target) != side {
			if KindOf(target) == King {
				continue // capturing a king is not a legal chess move
			}
			addCapture(out, NewMove(file, rank, toFile, toRank), KindOf(target), KindOf(piece))
		}
	}
	if !capturesOnly {
		genCastling(pos, out, file, rank, side)
	}
}

func genCastling(pos *position.Position, out *moveslice.MoveSlice, file, rank int, side Color) {
	rights := pos.CastleRights()
	enemy := side.Other()
	kingside, queenside := WhiteKingside, WhiteQueenside
	if side == Black {
		kingside, queenside = BlackKingside, BlackQueenside
	}

	if rights.Has(kingside) {
		f1, f2 := file+1, file+2
		if pos.PieceAt(f1, rank) == Empty && pos.PieceAt(f2, rank) == Empty &&
			!pos.IsAttacked(file, rank, enemy) &&
			!pos.IsAttacked(f1, rank, enemy) &&
			!pos.IsAttacked(f2, rank, enemy) {
			addQuiet(out, NewCastleMove(file, rank, f2, rank))
		}
	}
	if rights.Has(queenside) {
		f1, f2, f3 := file-1, file-2, file-3
		if pos.PieceAt(f1, rank) == Empty && pos.PieceAt(f2, rank) == Empty && pos.PieceAt(f3, rank) == Empty &&
			!pos.IsAttacked(file, rank, enemy) &&
			!pos.IsAttacked(f1, rank, enemy) &&
			!pos.IsAttacked(f2, rank, enemy) {
			addQuiet(out, NewCastleMove(file, rank, f2, rank))
		}
	}
}
