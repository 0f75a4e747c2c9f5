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

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the project's root directory, since Setup resolves
// ConfFile relative to the working directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestSetupFallsBackToDefaultsWithoutAFile(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()

	assert.Equal(t, 64, Settings.Search.TTSizeMB)
	assert.Equal(t, 64, Settings.Search.MaxDepth)
	assert.Equal(t, 100, Settings.Eval.PieceValue[1])
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()
	Settings.Search.TTSizeMB = 7
	Setup()
	assert.Equal(t, 7, Settings.Search.TTSizeMB, "a second Setup call must not reload and clobber in-process changes")
}

func TestLogLevelsKnowsTheStandardLevels(t *testing.T) {
	for _, lvl := range []string{"critical", "error", "warning", "notice", "info", "debug"} {
		assert.True(t, LogLevels[lvl], lvl)
	}
	assert.False(t, LogLevels["verbose"])
}
