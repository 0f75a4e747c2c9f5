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
	"github.com/sentinelchess/sentinelchess/internal/assert"
	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// MakeMove applies m to the position, pushing the prior state onto the
// history stack for O(1) UnmakeMove. Implements spec.md §4.4. The move is
// assumed pseudo-legal (geometry/occupancy already checked by the move
// generator); callers are responsible for the "does this leave my own
// king in check" legality test via InCheck after MakeMove.
func (p *Position) MakeMove(m Move) {
	// push prior state (this copies the fixed-size boardState by value)
	p.history = append(p.history, p.boardState)

	// step 1: XOR out the contributions that will change
	p.hash ^= epHash(p.epFile)
	p.hash ^= castleHash(p.castleRights)
	p.hash ^= turnHash(p.sideToMove)

	mover := p.sideToMove
	moved := p.PieceAt(m.FromFile, m.FromRank)
	captured := p.PieceAt(m.ToFile, m.ToRank)

	if assert.DEBUG {
		assert.Assert(moved != Empty, "MakeMove: no piece on from-square for move %v", m)
		assert.Assert(ColorOf(moved) == mover, "MakeMove: piece on from-square does not belong to side to move")
		assert.Assert(KindOf(captured) != King, "MakeMove: king cannot be captured, move %v", m)
	}

	// step 3: XOR out a normally-captured piece
	if captured != Empty {
		p.hash ^= pieceHash(m.ToFile, m.ToRank, captured)
	}

	// step 4: place the moved (or promoted) piece at "to", clear "from"
	placed := moved
	if m.Promotion != NoPieceKind {
		placed = MakePiece(mover, m.Promotion)
	}
	p.setPieceAt(m.ToFile, m.ToRank, placed)
	p.hash ^= pieceHash(m.ToFile, m.ToRank, placed)
	p.setPieceAt(m.FromFile, m.FromRank, Empty)
	p.hash ^= pieceHash(m.FromFile, m.FromRank, moved)

	movedKind := KindOf(moved)

	// step 5: en-passant capture - the captured pawn sits on the pawn's
	// current rank, not the target square.
	if movedKind == Pawn && m.ToFile == p.epFile && m.ToRank == p.epRank && captured == Empty {
		capturedPawnRank := m.FromRank
		capturedPawnFile := m.ToFile
		epCaptured := p.PieceAt(capturedPawnFile, capturedPawnRank)
		p.hash ^= pieceHash(capturedPawnFile, capturedPawnRank, epCaptured)
		p.setPieceAt(capturedPawnFile, capturedPawnRank, Empty)
	}

	// step 6: castling rook relocation
	if movedKind == King {
		p.kingFile[colorIndex(mover)] = m.ToFile
		p.kingRank[colorIndex(mover)] = m.ToRank
		if m.ToFile-m.FromFile == 2 || m.FromFile-m.ToFile == 2 {
			rookFromFile, rookToFile := castleRookSquares(m.FromFile, m.ToFile)
			rook := MakePiece(mover, Rook)
			p.hash ^= pieceHash(rookFromFile, m.FromRank, rook)
			p.setPieceAt(rookFromFile, m.FromRank, Empty)
			p.setPieceAt(rookToFile, m.FromRank, rook)
			p.hash ^= pieceHash(rookToFile, m.FromRank, rook)
		}
		if mover == White {
			p.castleRights = p.castleRights.Clear(WhiteKingside).Clear(WhiteQueenside)
		} else {
			p.castleRights = p.castleRights.Clear(BlackKingside).Clear(BlackQueenside)
		}
	}

	// step 7: reset en passant, then set it for a double pawn push
	p.epFile, p.epRank = NoSquare, NoSquare
	if movedKind == Pawn {
		delta := m.ToRank - m.FromRank
		if delta == 2 || delta == -2 {
			p.epFile = m.FromFile
			p.epRank = (m.FromRank + m.ToRank) / 2
		}
	}

	// step 8: castle-rights updates from rook moves and rook captures
	p.updateCastleRightsForRookSquare(m.FromFile, m.FromRank)
	p.updateCastleRightsForRookSquare(m.ToFile, m.ToRank)

	// step 9: flip side to move, track halfmove clock / fullmove number
	if movedKind == Pawn || captured != Empty {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if mover == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = mover.Other()

	// step 10: recompute check flags
	p.whiteInCheck = p.IsAttacked(p.kingFile[0], p.kingRank[0], Black)
	p.blackInCheck = p.IsAttacked(p.kingFile[1], p.kingRank[1], White)

	// step 11: XOR back in the new contributions
	p.hash ^= epHash(p.epFile)
	p.hash ^= castleHash(p.castleRights)
	p.hash ^= turnHash(p.sideToMove)
}

// UnmakeMove restores the position to its state before the most recent
// MakeMove. O(1): it simply pops the saved snapshot back in.
func (p *Position) UnmakeMove() {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 0, "UnmakeMove: no move to undo")
	}
	n := len(p.history)
	p.boardState = p.history[n-1]
	p.history = p.history[:n-1]
}

// castleRookSquares returns the rook's home file and destination file for
// a king move of two files in the given direction.
func castleRookSquares(fromFile, toFile int) (rookFrom, rookTo int) {
	if toFile > fromFile {
		return FileH, toFile - 1 // kingside: rook from h-file to f-file
	}
	return FileA, toFile + 1 // queenside: rook from a-file to d-file
}

// updateCastleRightsForRookSquare clears the castle right tied to a home
// rook square whenever that square stops holding that color's rook -
// whether because the rook itself moved off it or because it was just
// captured there. Covers the "captured-rook castling bug" from spec.md §9.
func (p *Position) updateCastleRightsForRookSquare(file, rank int) {
	switch {
	case file == FileA && rank == Rank1:
		p.castleRights = p.castleRights.Clear(WhiteQueenside)
	case file == FileH && rank == Rank1:
		p.castleRights = p.castleRights.Clear(WhiteKingside)
	case file == FileA && rank == Rank8:
		p.castleRights = p.castleRights.Clear(BlackQueenside)
	case file == FileH && rank == Rank8:
		p.castleRights = p.castleRights.Clear(BlackKingside)
	}
}
