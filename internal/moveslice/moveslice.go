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

// Package moveslice provides a fixed-capacity, allocation-free list of
// moves used by the move generator and the search's move-ordering step.
package moveslice

import (
	"sort"
	"strings"

	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// Capacity is the fixed backing-array size. No legal chess position has
// more than ~220 pseudo-legal moves; 256 gives headroom, per spec.md §3.
const Capacity = 256

// MoveSlice is a fixed-capacity, zero-allocation list of moves. The zero
// value is an empty, ready-to-use list.
type MoveSlice struct {
	moves [Capacity]Move
	len   int
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return ms.len
}

// Clear empties the list without releasing the backing array.
func (ms *MoveSlice) Clear() {
	ms.len = 0
}

// PushBack appends a move. Panics if the list is already at Capacity,
// which would indicate a move-generation bug rather than a legal position.
func (ms *MoveSlice) PushBack(m Move) {
	if ms.len >= Capacity {
		panic("moveslice: capacity exceeded")
	}
	ms.moves[ms.len] = m
	ms.len++
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) Move {
	return ms.moves[i]
}

// Set overwrites the move at index i (used to bump the PV move's ordering
// score before sorting).
func (ms *MoveSlice) Set(i int, m Move) {
	ms.moves[i] = m
}

// Slice returns the populated prefix of the backing array as a normal Go
// slice. The returned slice aliases MoveSlice's storage and is only valid
// until the next Clear/PushBack.
func (ms *MoveSlice) Slice() []Move {
	return ms.moves[:ms.len]
}

// SortByScore stable-sorts the list by descending Score, so the PV move
// (given the maximum score, see search.orderMoves) is tried first, then
// high-value captures (MVV-LVA), then quiet moves, per spec.md §4.7 step 5.
func (ms *MoveSlice) SortByScore() {
	sort.SliceStable(ms.moves[:ms.len], func(i, j int) bool {
		return ms.moves[i].Score > ms.moves[j].Score
	})
}

// Contains reports whether m (compared by identity, see Move.Equals) is
// present in the list.
func (ms *MoveSlice) Contains(m Move) bool {
	for i := 0; i < ms.len; i++ {
		if ms.moves[i].Equals(m) {
			return true
		}
	}
	return false
}

// PromoteToFront sets the ordering score of the first occurrence of m (by
// identity) to score, leaving it at its current index; a following
// SortByScore then moves it ahead of every lower-scored move, which is how
// the TT's move is tried first, per spec.md §4.7 step 5. Reports whether m
// was found.
func (ms *MoveSlice) PromoteToFront(m Move, score int) bool {
	for i := 0; i < ms.len; i++ {
		if ms.moves[i].Equals(m) {
			ms.moves[i].Score = score
			return true
		}
	}
	return false
}

// StringUci renders the list as a space-separated sequence of UCI move
// strings, as used in "info ... pv ..." output.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i := 0; i < ms.len; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(ms.moves[i].String())
	}
	return sb.String()
}
