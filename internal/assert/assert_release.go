// +build !debug

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

// Package assert provides internal-invariant checks that compile away
// entirely in release builds (build tag "debug" off). Build with
// "-tags debug" to enable them during development and testing.
package assert

// DEBUG reports whether assertions are evaluated in this build.
const DEBUG = false

// Assert is a no-op in release builds. The GO compiler eliminates the
// call entirely once inlined since DEBUG is a compile-time constant, but
// callers still guard expensive argument expressions with "if assert.DEBUG"
// since arguments are evaluated before the call.
func Assert(test bool, msg string, a ...interface{}) {}
