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

// Move is a compact, fixed-size move record, cheap to copy by value so a
// MoveSlice never needs to allocate per element. Equality (see Equals)
// compares From/To/Promotion only; Score is ordering metadata, not part
// of a move's identity, per spec.md §3.
type Move struct {
	FromFile, FromRank int
	ToFile, ToRank     int
	Promotion          PieceKind
	IsCastle           bool
	Score              int
}

// NoMove is the reserved zero-value move. Generators must never emit it.
var NoMove = Move{}

// IsNone reports whether m is the NoMove sentinel.
func (m Move) IsNone() bool {
	return m == NoMove
}

// Equals compares two moves by identity (from, to, promotion), ignoring
// the ordering Score and the IsCastle flag (a castling move's from/to/
// promotion already uniquely identify it).
func (m Move) Equals(o Move) bool {
	return m.FromFile == o.FromFile && m.FromRank == o.FromRank &&
		m.ToFile == o.ToFile && m.ToRank == o.ToRank &&
		m.Promotion == o.Promotion
}

// NewMove builds a quiet or capture move (no promotion, no castling).
func NewMove(fromFile, fromRank, toFile, toRank int) Move {
	return Move{FromFile: fromFile, FromRank: fromRank, ToFile: toFile, ToRank: toRank}
}

// NewPromotionMove builds a promotion move.
func NewPromotionMove(fromFile, fromRank, toFile, toRank int, promo PieceKind) Move {
	return Move{FromFile: fromFile, FromRank: fromRank, ToFile: toFile, ToRank: toRank, Promotion: promo}
}

// NewCastleMove builds a castling move (king's from/to square; the
// make/unmake logic relocates the rook).
func NewCastleMove(fromFile, fromRank, toFile, toRank int) Move {
	return Move{FromFile: fromFile, FromRank: fromRank, ToFile: toFile, ToRank: toRank, IsCastle: true}
}

// String renders a move in UCI long algebraic notation: "e2e4", "e7e8q".
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := SquareName(m.FromFile, m.FromRank) + SquareName(m.ToFile, m.ToRank)
	if m.Promotion != NoPieceKind {
		s += promotionLetter(m.Promotion)
	}
	return s
}

func promotionLetter(k PieceKind) string {
	switch k {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

// ParseMove parses a UCI move string ("e2e4", "e7e8q") into a Move. The
// IsCastle flag and Score are not recoverable from the string alone and
// are left unset; callers that need them (make/unmake) re-derive IsCastle
// from the position (king moving two files).
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("malformed move string %q", s)
	}
	ff, fr, ok := ParseSquareName(s[0:2])
	if !ok {
		return NoMove, fmt.Errorf("malformed from-square in move %q", s)
	}
	tf, tr, ok := ParseSquareName(s[2:4])
	if !ok {
		return NoMove, fmt.Errorf("malformed to-square in move %q", s)
	}
	promo := NoPieceKind
	if len(s) == 5 {
		k, ok := pieceKindFromSymbol(s[4])
		if !ok || k == King {
			return NoMove, fmt.Errorf("malformed promotion piece in move %q", s)
		}
		promo = k
	}
	return Move{FromFile: ff, FromRank: fr, ToFile: tf, ToRank: tr, Promotion: promo}, nil
}

// MvvLva gives higher scores to captures of more valuable pieces by less
// valuable attackers ("Most Valuable Victim - Least Valuable Attacker").
// Indexed [victim][attacker]. King as victim is never consulted: the
// generators skip king captures, since capturing a king is illegal. King
// as attacker is consulted for king captures; its value outweighs any
// victim's, so those scores are negative and sort below quiet moves.
var MvvLva [7][7]int

func init() {
	kinds := []PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}
	for _, victim := range kinds {
		for _, attacker := range kinds {
			// Base victim value dominates; subtracting the attacker
			// value breaks ties in favor of the cheapest attacker.
			MvvLva[victim][attacker] = PieceValue[victim]*10 - PieceValue[attacker]
		}
	}
}
