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

package perft

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sentinelchess/sentinelchess/internal/position"
)

func TestRunCountsStartposLeafNodes(t *testing.T) {
	p := New()
	nodes, err := p.Run(position.StartFEN, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint64(8902), nodes)
	assert.Equal(t, uint64(8902), p.Nodes)
}

func TestRunRejectsMalformedFEN(t *testing.T) {
	p := New()
	_, err := p.Run("not a fen", 2)
	assert.Error(t, err)
}

func TestRunTreatsNonPositiveDepthAsOne(t *testing.T) {
	p := New()
	nodes, err := p.Run(position.StartFEN, 0)
	assert.NoError(t, err)
	assert.Equal(t, uint64(20), nodes)
}

func TestParseEPDLine(t *testing.T) {
	c, ok := parseEPDLine(position.StartFEN + " ;D1 20 ;D2 400")
	assert.True(t, ok)
	assert.Equal(t, position.StartFEN, c.FEN)
	assert.Equal(t, uint64(20), c.Depths[1])
	assert.Equal(t, uint64(400), c.Depths[2])
}

func TestParseEPDLineRejectsEmptyFEN(t *testing.T) {
	_, ok := parseEPDLine(" ;D1 20")
	assert.False(t, ok)
}

func TestParseEPDLineRejectsNoDepths(t *testing.T) {
	_, ok := parseEPDLine(position.StartFEN)
	assert.False(t, ok)
}

func TestReadAndRunEPDFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.epd")
	content := "# a comment\n" +
		position.StartFEN + " ;D1 20 ;D2 400\n" +
		"\n" +
		"this line is malformed and should be skipped\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cases, err := ReadEPDFile(path)
	assert.NoError(t, err)
	assert.Len(t, cases, 1)
	assert.Equal(t, position.StartFEN, cases[0].FEN)

	failed, err := RunEPDFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 0, failed)
}

func TestRunEPDFileReportsMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.epd")
	content := position.StartFEN + " ;D1 21\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	failed, err := RunEPDFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, failed)
}
