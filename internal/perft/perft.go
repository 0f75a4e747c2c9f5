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

// Package perft is a move-generation correctness harness: it walks the
// pseudo-legal tree to a fixed depth, filtering with the same "make,
// check own king, unmake" legality test the search uses. It consumes
// movegen and position only and contributes no engine logic, per
// spec.md §1 and §4.13. Grounded on internal/movegen/perft.go and
// internal/testsuite/testsuite.go (for the EPD line reader), trimmed to
// the single statistic spec.md §8 checks: the node count per depth.
package perft

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/sentinelchess/sentinelchess/internal/logging"
	"github.com/sentinelchess/sentinelchess/internal/movegen"
	"github.com/sentinelchess/sentinelchess/internal/moveslice"
	"github.com/sentinelchess/sentinelchess/internal/position"
	"github.com/sentinelchess/sentinelchess/internal/util"
)

var out = message.NewPrinter(language.German)
var log = myLogging.GetLog("perft")

// Perft counts leaf nodes reached from a position at a fixed depth,
// and can be asked to abort early via Stop - mirroring the teacher's
// stoppable perft, though nothing in this spec runs it concurrently
// with a search.
type Perft struct {
	Nodes    uint64
	stopFlag *util.Bool
}

// New creates an idle Perft.
func New() *Perft {
	return &Perft{stopFlag: util.NewBool(false)}
}

// Stop aborts a running Run call as soon as it next polls the flag.
func (p *Perft) Stop() {
	p.stopFlag.Store(true)
}

// Run counts the leaf nodes depth plies below fen's position, printing
// a short report in the teacher's style. depth <= 0 is treated as 1.
func (p *Perft) Run(fen string, depth int) (uint64, error) {
	if depth <= 0 {
		depth = 1
	}
	p.stopFlag.Store(false)
	p.Nodes = 0

	pos, err := position.NewPositionFromFEN(fen)
	if err != nil {
		return 0, fmt.Errorf("perft: %w", err)
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)

	start := time.Now()
	nodes := p.walk(pos, depth)
	elapsed := time.Since(start)

	if p.stopFlag.Load() {
		out.Print("Perft stopped\n")
		return 0, nil
	}

	p.Nodes = nodes
	out.Printf("Nodes: %d   Time: %s   NPS: %d\n", nodes, elapsed, util.Nps(nodes, elapsed))
	return nodes, nil
}

func (p *Perft) walk(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if p.stopFlag.Load() {
		return 0
	}

	var moves moveslice.MoveSlice
	movegen.Generate(pos, &moves, false)
	mover := pos.SideToMove()

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		if !pos.InCheck(mover) {
			nodes += p.walk(pos, depth-1)
		}
		pos.UnmakeMove()
		if p.stopFlag.Load() {
			return 0
		}
	}
	return nodes
}

// EPDCase is one line of a perft EPD file: a FEN and the expected node
// count at each depth present on the line, per spec.md §6's format
// "<FEN> ;D1 <n> ;D2 <n> ...".
type EPDCase struct {
	FEN    string
	Depths map[int]uint64
	Line   string
}

var depthField = regexp.MustCompile(`D(\d+)\s+(\d+)`)

// ReadEPDFile reads a perft EPD file, one EPDCase per non-blank,
// non-comment line.
func ReadEPDFile(path string) ([]EPDCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("perft: %w", err)
	}
	defer f.Close()

	var cases []EPDCase
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, ok := parseEPDLine(line)
		if !ok {
			log.Warningf("skipping malformed perft EPD line: %s", line)
			continue
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("perft: %w", err)
	}
	return cases, nil
}

func parseEPDLine(line string) (EPDCase, bool) {
	fields := strings.Split(line, ";")
	fen := strings.TrimSpace(fields[0])
	if fen == "" {
		return EPDCase{}, false
	}
	depths := make(map[int]uint64)
	for _, field := range fields[1:] {
		m := depthField.FindStringSubmatch(strings.TrimSpace(field))
		if m == nil {
			continue
		}
		depth, _ := strconv.Atoi(m[1])
		nodes, _ := strconv.ParseUint(m[2], 10, 64)
		depths[depth] = nodes
	}
	if len(depths) == 0 {
		return EPDCase{}, false
	}
	return EPDCase{FEN: fen, Depths: depths, Line: line}, true
}

// RunEPDFile runs every case in path once for each depth listed on its
// line and reports mismatches; it returns the number of failed
// (case, depth) checks.
func RunEPDFile(path string) (failed int, err error) {
	cases, err := ReadEPDFile(path)
	if err != nil {
		return 0, err
	}
	p := New()
	for _, c := range cases {
		for depth, want := range c.Depths {
			got, err := p.Run(c.FEN, depth)
			if err != nil {
				log.Warningf("perft EPD case %q: %v", c.FEN, err)
				failed++
				continue
			}
			if got != want {
				log.Warningf("perft EPD mismatch: fen=%q depth=%d want=%d got=%d", c.FEN, depth, want, got)
				failed++
			}
		}
	}
	return failed, nil
}
