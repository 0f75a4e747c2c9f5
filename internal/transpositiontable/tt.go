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

// Package transpositiontable implements a direct-mapped transposition
// table for the search, per spec.md §4.6. It is not safe for concurrent
// use; Resize and Clear must not run while a search is in progress.
package transpositiontable

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sentinelchess/sentinelchess/internal/logging"
	. "github.com/sentinelchess/sentinelchess/internal/types"
)

var out = message.NewPrinter(language.German)

var log = logging.GetLog("tt")

const bytesPerMB = 1024 * 1024

// Stats tracks usage counters, useful for tuning TTSizeMB. They are not
// part of the UCI "info" line.
type Stats struct {
	Puts, Overwrites, Probes, Hits, Misses uint64
}

// Table is the transposition table.
type Table struct {
	entries []Entry
	mask    uint64
	used    uint64
	Stats   Stats
}

// New creates a Table sized to the nearest power-of-two entry count that
// fits within sizeInMB megabytes.
func New(sizeInMB int) *Table {
	t := &Table{}
	t.Resize(sizeInMB)
	return t
}

// Resize reallocates the table, discarding all entries.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB < 1 {
		sizeInMB = 1
	}
	entrySize := uint64(unsafe.Sizeof(Entry{}))
	totalBytes := uint64(sizeInMB) * bytesPerMB
	count := uint64(1) << uint64(math.Floor(math.Log2(float64(totalBytes/entrySize))))
	if count == 0 {
		count = 1
	}
	t.entries = make([]Entry, count)
	t.mask = count - 1
	t.used = 0
	t.Stats = Stats{}
	log.Info(out.Sprintf("TT resized to %d MB, %d entries", sizeInMB, count))
}

// Clear wipes all entries without resizing.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.used = 0
	t.Stats = Stats{}
}

func (t *Table) index(key uint64) uint64 {
	return key & t.mask
}

// Probe looks up key and returns the entry and whether it was found.
func (t *Table) Probe(key uint64) (Entry, bool) {
	t.Stats.Probes++
	e := &t.entries[t.index(key)]
	if e.Key == key && !e.empty() {
		t.Stats.Hits++
		return *e, true
	}
	t.Stats.Misses++
	return Entry{}, false
}

// Store writes an entry, replacing the occupant of its slot unless the
// occupant has equal key and greater search depth (depth-preferred
// replacement per spec.md §4.6).
func (t *Table) Store(key uint64, move Move, value Value, depth int, flag Flag) {
	if len(t.entries) == 0 {
		return
	}
	t.Stats.Puts++
	slot := &t.entries[t.index(key)]
	if slot.empty() {
		t.used++
	} else if slot.Key != key {
		t.Stats.Overwrites++
	} else if slot.Key == key && slot.Depth > depth {
		return
	}
	*slot = Entry{Key: key, Move: move, Value: value, Depth: depth, Flag: flag}
}

// Hashfull reports table occupancy in permille, as required by the UCI
// "info hashfull" field.
func (t *Table) Hashfull() int {
	if len(t.entries) == 0 {
		return 0
	}
	return int(1000 * t.used / uint64(len(t.entries)))
}
