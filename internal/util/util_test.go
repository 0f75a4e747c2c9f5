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

package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 0, Abs(0))
}

func TestAbs16(t *testing.T) {
	assert.Equal(t, int16(5), Abs16(5))
	assert.Equal(t, int16(5), Abs16(-5))
}

func TestAbs64(t *testing.T) {
	assert.Equal(t, int64(5), Abs64(5))
	assert.Equal(t, int64(5), Abs64(-5))
}

func TestNps(t *testing.T) {
	nps := Nps(1_000_000, time.Second)
	assert.InDelta(t, 1_000_000, nps, 1000)
}

func TestNpsGuardsZeroDuration(t *testing.T) {
	assert.NotPanics(t, func() {
		Nps(1000, 0)
	})
}

func TestFormatNodesGroupsByGermanLocale(t *testing.T) {
	assert.Equal(t, "4.865.609", FormatNodes(4865609))
	assert.Equal(t, "20", FormatNodes(20))
}

func TestAtomicBool(t *testing.T) {
	b := NewBool(false)
	assert.False(t, b.Load())

	b.Store(true)
	assert.True(t, b.Load())

	assert.True(t, b.CAS(true, false))
	assert.False(t, b.Load())
	assert.False(t, b.CAS(true, false), "CAS must fail when the old value doesn't match")

	prev := b.Swap(true)
	assert.False(t, prev)
	assert.True(t, b.Load())
}

func TestResolveFileAbsolute(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "settings.toml")
	assert.NoError(t, os.WriteFile(f, []byte("x=1"), 0o644))

	resolved, err := ResolveFile(f)
	assert.NoError(t, err)
	assert.Equal(t, f, resolved)
}

func TestResolveFileRelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("x=1"), 0o644))

	cwd, err := os.Getwd()
	assert.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()
	assert.NoError(t, os.Chdir(dir))

	resolved, err := ResolveFile("settings.toml")
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))
}

func TestResolveFileMissing(t *testing.T) {
	_, err := ResolveFile("/definitely/does/not/exist.toml")
	assert.Error(t, err)
}
