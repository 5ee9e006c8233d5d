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

import (
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

// Error codes for the eval package.
//
// These compose with the rest of the error taxonomy used across arithd
// (wire, server) through the shared liberr.CodeError numbering scheme: each
// package reserves a block starting at liberr.MinAvailable, the range
// github.com/nabbar/golib/errors sets aside for downstream consumers.
const (
	// ErrSyntax reports a malformed expression: unexpected character,
	// missing ')' or trailing garbage after a complete expression.
	ErrSyntax liberr.CodeError = iota + liberr.MinAvailable

	// ErrUnknownFunc reports an identifier that is not in the function
	// registry.
	ErrUnknownFunc

	// ErrDivByZero reports division whose divisor compares equal to zero.
	ErrDivByZero

	// ErrNaN reports a domain error (sqrt of a negative number, asin out of
	// range, ...) or any IEEE-754 NaN result.
	ErrNaN

	// ErrInfinity reports overflow or a result that is IEEE-754 infinite.
	ErrInfinity
)

// MinErrorEval is the first code reserved for packages layered on top of
// eval (wire reserves the next block).
const MinErrorEval = ErrSyntax + 10

func init() {
	if liberr.ExistInMapMessage(ErrSyntax) {
		panic(fmt.Errorf("error code collision with package eval"))
	}
	liberr.RegisterIdFctMessage(ErrSyntax, getMessage)
}

// getMessage maps an eval error code to its canonical, wire-level message.
// The wording and exact punctuation (including "Nan." rather than "NaN.")
// are the canonical forms the protocol has always used and that existing
// clients depend on; do not "fix" the spelling.
func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrSyntax:
		return "Syntax error."
	case ErrUnknownFunc:
		return "Function not defined."
	case ErrDivByZero:
		return "Divide by zero."
	case ErrNaN:
		return "Nan."
	case ErrInfinity:
		return "Infinity."
	default:
		return ""
	}
}

// Message returns the canonical response text for a sticky evaluator error.
// It is only meaningful when State.Err() is non-zero.
func Message(code liberr.CodeError) string {
	return code.Message()
}
