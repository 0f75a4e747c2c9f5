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

import (
	"time"

	"github.com/sentinelchess/sentinelchess/internal/config"
	"github.com/sentinelchess/sentinelchess/internal/movegen"
	"github.com/sentinelchess/sentinelchess/internal/moveslice"
	"github.com/sentinelchess/sentinelchess/internal/position"
	"github.com/sentinelchess/sentinelchess/internal/transpositiontable"
	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// iterativeDeepening drives the search depths 1..maxDepth, per spec.md
// §4.7. Each completed depth is reported through s.reporter; the result
// of the last *completed* depth is kept when a later depth is aborted by
// the stop flag mid-iteration.
func (s *Search) iterativeDeepening(pos *position.Position, limits Limits) *Result {
	result := &Result{}

	if pos.RepetitionCount() >= 2 || (config.Settings.Search.Enforce50MoveRule && pos.HalfMoveClock() >= 100) {
		result.BestValue = DrawValue
		return result
	}

	var rootMoves moveslice.MoveSlice
	movegen.Generate(pos, &rootMoves, false)
	legalRootMoves := s.filterLegal(pos, &rootMoves)

	if legalRootMoves.Len() == 0 {
		if pos.InCheck(pos.SideToMove()) {
			s.statistics.Checkmates++
			result.BestValue = -MateValue
		} else {
			s.statistics.Stalemates++
			result.BestValue = DrawValue
		}
		return result
	}

	maxDepth := MaxDepth
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth

		bestValue, bestMove, completed := s.searchRoot(pos, &legalRootMoves, depth)
		if !completed && depth > 1 {
			break
		}

		result.BestMove = bestMove
		result.BestValue = bestValue
		result.SearchDepth = depth
		s.statistics.CurrentSearchDepth = depth

		pv := s.extractPV(pos, depth)
		result.Pv = pv
		s.reporter.SendIterationEnd(depth, depth, bestValue, s.nodesVisited, s.getNps(), time.Since(s.startTime), pv)

		if s.stopFlag.Load() || legalRootMoves.Len() == 1 || IsMateScore(bestValue) {
			break
		}
	}

	if result.Pv.Len() > 1 {
		result.PonderMove = result.Pv.At(1)
	}
	return result
}

// filterLegal keeps only the pseudo-legal moves in moves that do not
// leave the mover's own king in check, using the "make, test, unmake"
// method spec.md §4.2 prescribes instead of generating legality inline.
func (s *Search) filterLegal(pos *position.Position, moves *moveslice.MoveSlice) moveslice.MoveSlice {
	var legal moveslice.MoveSlice
	mover := pos.SideToMove()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		if !pos.InCheck(mover) {
			legal.PushBack(m)
		}
		pos.UnmakeMove()
	}
	return legal
}

// searchRoot runs one iterative-deepening depth over the (already
// best-move-first sorted) root move list, sorting it by score in place
// for the next iteration.
func (s *Search) searchRoot(pos *position.Position, moves *moveslice.MoveSlice, depth int) (Value, Move, bool) {
	alpha, beta := -Infinite, Infinite
	bestValue := -Infinite
	bestMove := moves.At(0)

	for i := 0; i < moves.Len(); i++ {
		if s.stopFlag.Load() {
			return bestValue, bestMove, false
		}
		m := moves.At(i)
		pos.MakeMove(m)
		value := -s.alphabeta(pos, depth-1, -beta, -alpha, 1)
		pos.UnmakeMove()

		m.Score = int(value)
		moves.Set(i, m)

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
	}

	moves.SortByScore()
	return bestValue, bestMove, true
}

// alphabeta is negamax with alpha-beta pruning and a transposition
// table, returning a score from pos.SideToMove()'s perspective, per
// spec.md §4.7.
func (s *Search) alphabeta(pos *position.Position, depth int, alpha, beta Value, ply int) Value {
	if s.stopFlag.Load() {
		return 0
	}

	if pos.RepetitionCount() >= 2 {
		return DrawValue
	}

	origAlpha := alpha
	hash := pos.Hash()

	if entry, found := s.tt.Probe(hash); found && entry.Depth >= depth && s.legalInPosition(pos, entry.Move) {
		s.statistics.TTHits++
		switch entry.Flag {
		case transpositiontable.Exact:
			return entry.Value
		case transpositiontable.Beta:
			if entry.Value >= beta {
				return beta
			}
		case transpositiontable.Alpha:
			if entry.Value <= alpha {
				return alpha
			}
		}
	} else {
		s.statistics.TTMisses++
	}

	if depth == 0 {
		return s.quiesce(pos, alpha, beta)
	}

	var moves moveslice.MoveSlice
	movegen.Generate(pos, &moves, false)
	s.promoteTTMove(pos, &moves, hash)
	moves.SortByScore()

	bestValue := -Infinite
	bestMove := NoMove
	legalMoves := 0
	mover := pos.SideToMove()

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		if pos.InCheck(mover) {
			pos.UnmakeMove()
			continue
		}
		legalMoves++
		s.nodesVisited++
		value := -s.alphabeta(pos, depth-1, -beta, -alpha, ply+1)
		pos.UnmakeMove()

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			if !s.stopFlag.Load() {
				s.tt.Store(hash, bestMove, beta, depth, transpositiontable.Beta)
			}
			return alpha
		}
	}

	if legalMoves == 0 {
		if pos.InCheck(mover) {
			return -MateValue + Value(ply)
		}
		return DrawValue
	}

	if s.stopFlag.Load() {
		return alpha
	}

	if alpha > origAlpha {
		s.tt.Store(hash, bestMove, alpha, depth, transpositiontable.Exact)
	} else {
		s.tt.Store(hash, bestMove, origAlpha, depth, transpositiontable.Alpha)
	}

	return alpha
}

// quiesce extends the search along captures only, to avoid misjudging
// positions with hanging pieces right at the search horizon, per
// spec.md §4.7.
func (s *Search) quiesce(pos *position.Position, alpha, beta Value) Value {
	if s.stopFlag.Load() {
		return 0
	}

	standPat := s.evalPosition(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if !config.Settings.Search.UseQuiescence {
		return alpha
	}

	var moves moveslice.MoveSlice
	movegen.Generate(pos, &moves, true)
	moves.SortByScore()

	mover := pos.SideToMove()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		if pos.InCheck(mover) {
			pos.UnmakeMove()
			continue
		}
		value := -s.quiesce(pos, -beta, -alpha)
		pos.UnmakeMove()

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}

// legalInPosition reports whether m is among pos's legal moves - a TT
// entry's move must always be re-validated since the table is shared
// across unrelated positions that happen to hash to the same slot.
func (s *Search) legalInPosition(pos *position.Position, m Move) bool {
	if m.IsNone() {
		return false
	}
	var moves moveslice.MoveSlice
	movegen.Generate(pos, &moves, false)
	if !moves.Contains(m) {
		return false
	}
	mover := pos.SideToMove()
	pos.MakeMove(m)
	inCheck := pos.InCheck(mover)
	pos.UnmakeMove()
	return !inCheck
}

// promoteTTMove gives the transposition table's recommended move, if it
// is among the pseudo-legal moves, a score above any MVV-LVA capture
// score, so the caller's SortByScore puts it first, per spec.md §4.7
// step 5.
func (s *Search) promoteTTMove(pos *position.Position, moves *moveslice.MoveSlice, hash uint64) {
	entry, found := s.tt.Probe(hash)
	if !found || entry.Move.IsNone() {
		return
	}
	moves.PromoteToFront(entry.Move, 1<<20)
}

// extractPV walks the best line out of the transposition table, up to
// maxPlies deep, re-validating legality at each step the way a TT-move
// must always be re-checked against the current position.
func (s *Search) extractPV(pos *position.Position, maxPlies int) moveslice.MoveSlice {
	var pv moveslice.MoveSlice
	seen := make(map[uint64]bool)
	for i := 0; i < maxPlies; i++ {
		hash := pos.Hash()
		if seen[hash] {
			break
		}
		seen[hash] = true

		entry, found := s.tt.Probe(hash)
		if !found || entry.Move.IsNone() || !s.legalInPosition(pos, entry.Move) {
			break
		}
		pv.PushBack(entry.Move)
		pos.MakeMove(entry.Move)
	}
	for i := 0; i < pv.Len(); i++ {
		pos.UnmakeMove()
	}
	return pv
}
