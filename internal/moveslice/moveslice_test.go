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

package moveslice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sentinelchess/sentinelchess/internal/types"
)

// file/rank indices: a=0 ... h=7, rank 0 is chess rank 8, rank 7 is rank 1.
var (
	e2e4 = NewMove(4, 6, 4, 4)
	d7d5 = NewMove(3, 1, 3, 3)
	e4d5 = NewMove(4, 4, 3, 3)
	d8d5 = NewMove(3, 0, 3, 3)
	b1c3 = NewMove(1, 7, 2, 5)
)

func fiveMoves() *MoveSlice {
	var ms MoveSlice
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)
	return &ms
}

func TestNewIsEmpty(t *testing.T) {
	var ms MoveSlice
	assert.Equal(t, 0, ms.Len())
}

func TestPushBackAndAt(t *testing.T) {
	ms := fiveMoves()
	assert.Equal(t, 5, ms.Len())
	assert.Equal(t, b1c3, ms.At(4))
}

func TestPushBackPanicsAtCapacity(t *testing.T) {
	var ms MoveSlice
	assert.Panics(t, func() {
		for i := 0; i < Capacity+1; i++ {
			ms.PushBack(e2e4)
		}
	})
}

func TestClearKeepsBackingArray(t *testing.T) {
	ms := fiveMoves()
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	ms.PushBack(e2e4)
	assert.Equal(t, e2e4, ms.At(0))
}

func TestSet(t *testing.T) {
	ms := fiveMoves()
	ms.Set(0, b1c3)
	assert.Equal(t, b1c3, ms.At(0))
}

func TestSlice(t *testing.T) {
	ms := fiveMoves()
	s := ms.Slice()
	assert.Len(t, s, 5)
	assert.Equal(t, b1c3, s[4])
}

func TestStringUci(t *testing.T) {
	ms := fiveMoves()
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ms.StringUci())
}

func TestContains(t *testing.T) {
	ms := fiveMoves()
	assert.True(t, ms.Contains(e4d5))
	assert.False(t, ms.Contains(NewMove(FileA, Rank1, FileA, Rank2)))
}

func TestSortByScoreDescending(t *testing.T) {
	var ms MoveSlice
	for i := 0; i < 1000; i++ {
		m := e2e4
		m.Score = rand.Intn(10000)
		ms.PushBack(m)
	}
	ms.SortByScore()
	for i := 1; i < ms.Len(); i++ {
		assert.True(t, ms.At(i-1).Score >= ms.At(i).Score)
	}
}

func TestPromoteToFrontBumpsScoreAndReportsFound(t *testing.T) {
	ms := fiveMoves()
	found := ms.PromoteToFront(d8d5, 999999)
	assert.True(t, found)
	assert.Equal(t, 999999, ms.At(3).Score)

	assert.False(t, ms.PromoteToFront(NewMove(FileA, Rank1, FileA, Rank2), 1))
}
