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
	"fmt"
	"strconv"
	"strings"

	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// NewPositionFromFEN parses a six-field FEN string into a fresh Position,
// per spec.md §6: piece placement, side to move, castle rights, en-passant
// square, half-move clock, full-move number.
func NewPositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("malformed FEN %q: need at least 4 fields", fen)
	}

	p := &Position{history: make([]boardState, 0, MaxHistory)}
	for r := 0; r < ExtBoardDim; r++ {
		for c := 0; c < ExtBoardDim; c++ {
			p.board[r][c] = OffBoard
		}
	}
	for rank := 0; rank < BoardDim; rank++ {
		for file := 0; file < BoardDim; file++ {
			p.setPieceAt(file, rank, Empty)
		}
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fmt.Errorf("malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	p.castleRights = ParseCastleRights(fields[2])

	if fields[3] == "-" {
		p.epFile, p.epRank = NoSquare, NoSquare
	} else {
		f, r, ok := ParseSquareName(fields[3])
		if !ok {
			return nil, fmt.Errorf("malformed FEN %q: bad en-passant square %q", fen, fields[3])
		}
		p.epFile, p.epRank = f, r
	}

	p.halfMoveClock = 0
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = n
		}
	}
	p.fullMoveNumber = 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullMoveNumber = n
		}
	}

	for _, c := range [2]Color{White, Black} {
		found := false
		for rank := 0; rank < BoardDim && !found; rank++ {
			for file := 0; file < BoardDim && !found; file++ {
				if p.PieceAt(file, rank) == MakePiece(c, King) {
					p.kingFile[colorIndex(c)] = file
					p.kingRank[colorIndex(c)] = rank
					found = true
				}
			}
		}
		if !found {
			return nil, fmt.Errorf("malformed FEN %q: missing %s king", fen, c)
		}
	}

	p.whiteInCheck = p.IsAttacked(p.kingFile[0], p.kingRank[0], Black)
	p.blackInCheck = p.IsAttacked(p.kingFile[1], p.kingRank[1], White)
	p.hash = p.RecomputeHash()

	return p, nil
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardDim {
		return fmt.Errorf("malformed FEN placement %q: expected 8 ranks, got %d", placement, len(ranks))
	}
	for rank, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := PieceFromFEN(c)
			if !ok {
				return fmt.Errorf("malformed FEN placement %q: bad character %q", placement, c)
			}
			if file >= BoardDim {
				return fmt.Errorf("malformed FEN placement %q: rank %d overflows", placement, rank+1)
			}
			p.setPieceAt(file, rank, piece)
			file++
		}
		if file != BoardDim {
			return fmt.Errorf("malformed FEN placement %q: rank %d has %d files", placement, rank+1, file)
		}
	}
	return nil
}

// FEN renders the position back into Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 0; rank < BoardDim; rank++ {
		empty := 0
		for file := 0; file < BoardDim; file++ {
			piece := p.PieceAt(file, rank)
			if piece == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != BoardDim-1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castleRights.String())
	sb.WriteByte(' ')
	if p.epFile == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(SquareName(p.epFile, p.epRank))
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

// String renders the position as its FEN.
func (p *Position) String() string {
	return p.FEN()
}
