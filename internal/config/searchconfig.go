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

// searchConfiguration holds the tunables of the search, trimmed to the
// single-PV, no-PVS/null-move/LMR/SEE algorithm spec.md §4.7 describes.
// The teacher's config additionally gates opening-book use and a dozen
// pruning/extension techniques (PVS, killer moves, IID, null-move,
// late-move reductions/pruning, futility pruning, static-exchange eval);
// none of those are part of this spec's search algorithm, so their
// toggles are not carried - see DESIGN.md.
type searchConfiguration struct {
	// Transposition table
	TTSizeMB int

	// Quiescence
	UseQuiescence bool

	// Iterative deepening bounds
	MaxDepth int

	// Time management defaults when the GUI provides no clocks, per
	// spec.md §6 "go" command (7-60s).
	DefaultMoveTimeMs int
	MinMoveTimeMs     int
	MaxMoveTimeMs     int

	// Open Question from spec.md §9: tracked but, matching the source,
	// not enforced by default.
	Enforce50MoveRule bool
}

func init() {
	Settings.Search.TTSizeMB = 64
	Settings.Search.UseQuiescence = true
	Settings.Search.MaxDepth = 64
	Settings.Search.DefaultMoveTimeMs = 7_000
	Settings.Search.MinMoveTimeMs = 7_000
	Settings.Search.MaxMoveTimeMs = 60_000
	Settings.Search.Enforce50MoveRule = false
}
