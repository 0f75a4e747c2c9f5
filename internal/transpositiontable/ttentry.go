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

package transpositiontable

import (
	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// Flag records how Value relates to the true minimax value of the node
// that produced this entry, per spec.md §4.6.
type Flag uint8

const (
	// NoFlag marks an empty/never-written entry.
	NoFlag Flag = iota
	// Exact means Value is the node's true score.
	Exact
	// Alpha means Value is an upper bound (the node failed low).
	Alpha
	// Beta means Value is a lower bound (the node failed high).
	Beta
)

// Entry is one slot of the transposition table. Unlike the teacher's
// 16-byte bit-packed layout (Move folded into a uint16, depth/flag/age
// folded into a single uint16 "vmeta"), Move here is kept as the plain
// types.Move value since this engine does not bit-pack moves at all -
// see DESIGN.md. Entries are a little larger but the replacement and
// probing logic is otherwise the same idea: depth-preferred overwrite
// keyed on the full 64-bit Zobrist key.
type Entry struct {
	Key   uint64
	Move  Move
	Value Value
	Depth int
	Flag  Flag
}

func (e *Entry) empty() bool {
	return e.Flag == NoFlag
}
