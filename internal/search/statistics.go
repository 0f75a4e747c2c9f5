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

package search

// Statistics are extra data not essential to a functioning search, kept
// for UCI debug info and tests. Trimmed hard from the teacher's 30-field
// struct (PVS/null-move/LMR/IID/SEE counters): this search has none of
// those techniques - see DESIGN.md. Node counts for "info nodes"/"info
// nps" live on Search.nodesVisited, the single authoritative counter;
// duplicating it here would just invite the two to drift.
type Statistics struct {
	CurrentIterationDepth   int
	CurrentSearchDepth      int
	CurrentExtraSearchDepth int

	TTHits   uint64
	TTMisses uint64
	TTCuts   uint64

	BetaCuts    uint64
	Checkmates  uint64
	Stalemates  uint64
	Repetitions uint64
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
