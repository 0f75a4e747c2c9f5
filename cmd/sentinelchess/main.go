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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sentinelchess/sentinelchess/internal/config"
	"github.com/sentinelchess/sentinelchess/internal/logging"
	"github.com/sentinelchess/sentinelchess/internal/perft"
	"github.com/sentinelchess/sentinelchess/internal/position"
	"github.com/sentinelchess/sentinelchess/internal/uci"
	"github.com/sentinelchess/sentinelchess/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	perftDepth := flag.Int("perft", 0, "run perft on the given position to the given depth and exit")
	perftFen := flag.String("fen", position.StartFEN, "fen for -perft (defaults to the start position)")
	epdPath := flag.String("epd", "", "run the perft EPD test suite at the given path and exit")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) of this run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if config.LogLevels[*logLvl] {
		config.LogLevel = *logLvl
	}
	logging.SetLevel(config.LogLevel)

	if *perftDepth > 0 {
		p := perft.New()
		if _, err := p.Run(*perftFen, *perftDepth); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *epdPath != "" {
		failed, err := perft.RunEPDFile(*epdPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if failed > 0 {
			out.Printf("%d perft case(s) failed\n", failed)
			os.Exit(1)
		}
		out.Println("all perft cases passed")
		return
	}

	h := uci.NewHandler()
	h.Loop()
}

func printVersionInfo() {
	out.Printf("%s\n", version.String())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
