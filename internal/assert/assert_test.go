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

package assert

import "testing"

// This runs against whichever build is active (release by default, since
// the "debug" build tag is off unless passed to the toolchain explicitly).
// In a release build DEBUG is false and Assert never panics, even on a
// failing condition - that is the whole point of the pair.
func TestAssertNeverPanicsWhenDebugIsOff(t *testing.T) {
	if DEBUG {
		t.Skip("built with -tags debug, skipping the release-build contract check")
	}
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Assert panicked in a release build: %v", r)
			}
		}()
		Assert(false, "this must not panic: %d", 42)
	}()
}
