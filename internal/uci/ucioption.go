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

package uci

import (
	"strconv"
	"strings"

	"github.com/sentinelchess/sentinelchess/internal/config"
)

// Trimmed hard from the teacher's two dozen UCI options (one per
// pruning/extension/eval toggle - PVS, killer moves, IID, null-move,
// LMR/LMP, futility, SEE, opening book, ponder): none of those
// techniques exist in this search, see DESIGN.md. Only the table size
// and a way to empty it survive, since both are meaningful for any TT.
func init() {
	uciOptions = map[string]*uciOption{
		"Clear Hash": {NameID: "Clear Hash", HandlerFunc: clearHash, OptionType: Button},
		"Hash": {NameID: "Hash", HandlerFunc: resizeHash, OptionType: Spin,
			DefaultValue: strconv.Itoa(config.Settings.Search.TTSizeMB),
			CurrentValue: strconv.Itoa(config.Settings.Search.TTSizeMB),
			MinValue:     "1", MaxValue: "4096"},
	}
	sortOrderUciOptions = []string{"Hash", "Clear Hash"}
}

// GetOptions returns all available uci options as a slice of strings
// to be sent to the UCI user interface during the "uci" handshake.
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String renders a uciOption the way the UCI protocol requires during
// the "uci" handshake.
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Button:
		os.WriteString("button")
	}
	return os.String()
}

type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Button
)

// optionHandler is called when "setoption" changes the option.
type optionHandler func(*Handler, *uciOption)

// uciOption defines one UCI option as described by the UCI protocol.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

type optionMap map[string]*uciOption

var uciOptions optionMap

var sortOrderUciOptions []string

func clearHash(h *Handler, o *uciOption) {
	h.driver.ClearHash()
	log.Debug("cleared transposition table")
}

func resizeHash(h *Handler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		log.Warningf("setoption Hash: not a number: %s", o.CurrentValue)
		return
	}
	h.driver.ResizeHash(v)
	log.Debugf("resized transposition table to %d MB", v)
}
