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

// Package logging sets up the engine-wide leveled logger. The UCI protocol
// on stdout/stdin must stay pristine, so all logging goes to stderr.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/sentinelchess/sentinelchess/internal/config"
)

var (
	setupOnce sync.Once
	backend   logging.LeveledBackend
)

var levelByName = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

func setup() {
	raw := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	formatted := logging.NewBackendFormatter(raw, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level(), "")
	logging.SetBackend(leveled)
	backend = leveled
}

func level() logging.Level {
	if lvl, ok := levelByName[config.Settings.Log.Level]; ok {
		return lvl
	}
	if lvl, ok := levelByName[config.LogLevel]; ok {
		return lvl
	}
	return logging.INFO
}

// GetLog returns the named logger, configuring the shared backend on
// first use.
func GetLog(name string) *logging.Logger {
	setupOnce.Do(setup)
	return logging.MustGetLogger(name)
}

// SetLevel changes the severity of all loggers, e.g. in response to the
// "-loglvl" CLI flag.
func SetLevel(name string) {
	setupOnce.Do(setup)
	if lvl, ok := levelByName[name]; ok && backend != nil {
		backend.SetLevel(lvl, "")
	}
}
