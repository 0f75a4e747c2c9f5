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

// Package config holds globally available configuration variables, either
// set by defaults, read from a TOML config file, or set by command line
// options/UCI setoption commands.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/sentinelchess/sentinelchess/internal/util"
)

// ConfFile holds the path to the used config file, relative to the
// working directory.
var ConfFile = "./config.toml"

// LogLevel is the general log level, overridable by cmd line options or
// the config file.
var LogLevel = "info"

// LogLevels is the set of UCI/CLI log-level names that have an
// op/go-logging severity - kept here (rather than in the logging package)
// so config has no dependency on the logging package.
var LogLevels = map[string]bool{
	"critical": true, "error": true, "warning": true,
	"notice": true, "info": true, "debug": true,
}

// Settings is the global configuration, read in from file and overridden
// by defaults/flags.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the configuration file and falls back to the package
// defaults (set in each setting group's init()) for anything the file
// does not specify or when the file is absent.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found, using defaults. (", err, ")")
	}
	initialized = true
}
