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

package config

// evalConfiguration holds the material values and a small tempo bonus
// used by the evaluator, per spec.md §4.5. The teacher's eval config
// additionally gates mobility, king-safety, pawn-structure and advanced
// piece terms; none of those are in spec.md §4.5's material+PST scope
// (they are config-gated off by default in the teacher too) so they are
// not carried here - see DESIGN.md.
type evalConfiguration struct {
	// PieceValue is indexed by types.PieceKind (Pawn..King); index 0
	// (NoPieceKind) is unused.
	PieceValue [7]int

	// Tempo is a small bonus added for the side to move.
	Tempo int16
}

func init() {
	Settings.Eval.PieceValue = [7]int{
		0,       // NoPieceKind
		100,     // Pawn
		320,     // Knight
		330,     // Bishop
		500,     // Rook
		900,     // Queen
		100_000, // King
	}
	Settings.Eval.Tempo = 10
}
