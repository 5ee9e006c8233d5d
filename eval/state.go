/*
 * MIT License
 *
 * Copyright (c) 2026 arithd contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package eval

import liberr "github.com/nabbar/golib/errors"

// MaxFuncName is the maximum length, in bytes, of an identifier. A longer
// alpha run is consumed whole (never split) and will fail registry lookup.
const MaxFuncName = 4

// eof is the sentinel value of State.ch once the input is exhausted.
const eof byte = 0

// State is the evaluator's per-request state. It owns an immutable view of
// the request bytes and a cursor; it is created fresh for every request by
// the caller (one per in-flight evaluation) and must never be shared across
// goroutines or reused across requests.
type State struct {
	input     []byte
	pos       int
	ch        byte
	precision int
	registry  *Registry
	err       liberr.CodeError
}

// NewState returns an evaluator ready to parse expr at the given precision
// (significant digits) using reg as the function/constant catalogue. If reg
// is nil, DefaultRegistry is used.
func NewState(expr []byte, precision int, reg *Registry) *State {
	if reg == nil {
		reg = DefaultRegistry
	}
	s := &State{
		input:     expr,
		precision: precision,
		registry:  reg,
	}
	s.advance()
	return s
}

// Err returns the sticky error code set on this evaluator, or 0 (no error
// registered) if none was encountered.
func (s *State) Err() liberr.CodeError {
	return s.err
}

// setError sets the sticky error, if one is not already set. Once set, an
// evaluator never clears or overwrites it: the first failure wins.
func (s *State) setError(code liberr.CodeError) {
	if s.err == 0 {
		s.err = code
	}
}

// failed reports whether a sticky error has already been recorded.
func (s *State) failed() bool {
	return s.err != 0
}

// advance reads the byte at the cursor into ch, then skips any run of
// blanks (space, tab), leaving ch positioned at the next significant byte
// or at eof. Safe to call any number of times past the end of input.
func (s *State) advance() {
	s.readch()
	for s.ch == ' ' || s.ch == '\t' {
		s.readch()
	}
}

// readch reads exactly one byte (no blank-skipping) and advances the
// cursor, or sets ch to eof once the input is exhausted.
func (s *State) readch() {
	if s.pos >= len(s.input) {
		s.ch = eof
		return
	}
	s.ch = s.input[s.pos]
	s.pos++
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
