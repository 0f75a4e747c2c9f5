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

// CastleRights is a 4-bit mask: WK=1, WQ=2, BK=4, BQ=8.
type CastleRights uint8

const (
	WhiteKingside  CastleRights = 1
	WhiteQueenside CastleRights = 2
	BlackKingside  CastleRights = 4
	BlackQueenside CastleRights = 8

	NoCastleRights  CastleRights = 0
	AllCastleRights CastleRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether the mask contains right.
func (cr CastleRights) Has(right CastleRights) bool {
	return cr&right != 0
}

// Clear returns cr with right removed. Rights only ever clear, never set,
// except by state restoration on unmake (spec.md §3 invariant 5).
func (cr CastleRights) Clear(right CastleRights) CastleRights {
	return cr &^ right
}

func (cr CastleRights) String() string {
	if cr == NoCastleRights {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingside) {
		s += "K"
	}
	if cr.Has(WhiteQueenside) {
		s += "Q"
	}
	if cr.Has(BlackKingside) {
		s += "k"
	}
	if cr.Has(BlackQueenside) {
		s += "q"
	}
	return s
}

// ParseCastleRights parses the FEN castle-rights field ("-" or a subset of
// "KQkq").
func ParseCastleRights(s string) CastleRights {
	var cr CastleRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= WhiteKingside
		case 'Q':
			cr |= WhiteQueenside
		case 'k':
			cr |= BlackKingside
		case 'q':
			cr |= BlackQueenside
		}
	}
	return cr
}
