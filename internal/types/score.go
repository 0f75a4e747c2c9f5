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

import "strconv"

// Value is a centipawn evaluation score.
type Value int

const (
	// Infinite is larger in magnitude than any reachable evaluation.
	Infinite Value = 1_000_000

	// MateValue - ply encodes "mate in ply plies", per spec.md §4.7 step 8
	// and §9: a larger ply means a mate farther away, scored as less bad
	// for the losing side, so shallower mates score higher in magnitude.
	MateValue Value = 900_000

	// DrawValue is returned for stalemate, threefold repetition and
	// quiescence/search draws.
	DrawValue Value = 0
)

// IsMateScore reports whether v encodes a forced mate in either direction.
func IsMateScore(v Value) bool {
	return v > MateValue-1000 || v < -(MateValue-1000)
}

// MateIn returns the number of plies to mate encoded in a mate score, or 0
// if v is not a mate score. Positive means the side to move delivers mate.
func MateIn(v Value) int {
	if v > MateValue-1000 {
		return int(MateValue - v)
	}
	if v < -(MateValue - 1000) {
		return -int(MateValue + v)
	}
	return 0
}

// String renders v the way the UCI "score" token does: "mate N" for a
// forced mate, "cp N" otherwise, N in whole moves for mate.
func (v Value) String() string {
	if IsMateScore(v) {
		plies := MateIn(v)
		moves := (plies + 1) / 2
		if plies < 0 {
			moves = -((-plies + 1) / 2)
		}
		return "mate " + strconv.Itoa(moves)
	}
	return "cp " + strconv.Itoa(int(v))
}
