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
	"math"
	"strconv"

	liberr "github.com/nabbar/golib/errors"
)

// Evaluate parses and evaluates the full expression held by the State. It
// is the single entry point production callers use; expression/term/factor/
// token/number below are the grammar's internal productions.
//
// On success it returns the result and a zero error code. On failure it
// returns 0 and the sticky error code recorded on the State; the State must
// be discarded afterwards (it is never reset and reused for a different
// request).
func (s *State) Evaluate() (float64, liberr.CodeError) {
	val := s.expression()
	if s.failed() {
		return 0, s.err
	}
	if s.ch != eof {
		s.setError(ErrSyntax)
		return 0, s.err
	}
	return val, 0
}

// expression := term { (+|-) term }
func (s *State) expression() float64 {
	val := s.term()
	for !s.failed() && (s.ch == '+' || s.ch == '-') {
		op := s.ch
		s.advance()
		rhs := s.term()
		if s.failed() {
			return 0
		}
		if op == '+' {
			val += rhs
		} else {
			val -= rhs
		}
	}
	return val
}

// term := factor { (*|/|^) factor }
//
// "^" is deliberately handled at this precedence level, left-associative,
// same as "*" and "/" — see the package doc comment.
func (s *State) term() float64 {
	val := s.factor()
	for !s.failed() && (s.ch == '*' || s.ch == '/' || s.ch == '^') {
		op := s.ch
		s.advance()
		rhs := s.factor()
		if s.failed() {
			return 0
		}
		switch op {
		case '*':
			val *= rhs
		case '/':
			if rhs == 0 {
				s.setError(ErrDivByZero)
				return 0
			}
			val /= rhs
		case '^':
			val = s.pow(val, rhs)
		}
	}
	return val
}

// factor := '(' expression ')' | token
func (s *State) factor() float64 {
	if s.failed() {
		return 0
	}
	if s.ch == '(' {
		s.advance()
		val := s.expression()
		if s.failed() {
			return 0
		}
		if s.ch != ')' {
			s.setError(ErrSyntax)
			return 0
		}
		s.advance()
		return val
	}
	return s.token()
}

// token := [+|-]? ( number | identifier )
//
// Unary sign is only accepted here, immediately before a number or
// identifier; it is not a general unary-prefix operator, so "--5" is a
// syntax error (the second '-' is not in token position once the first has
// been consumed as the sign of this token).
func (s *State) token() float64 {
	if s.failed() {
		return 0
	}

	neg := false
	switch s.ch {
	case '+':
		s.advance()
	case '-':
		neg = true
		s.advance()
	}

	var val float64
	switch {
	case isDigit(s.ch):
		val = s.number()
	case isAlpha(s.ch):
		val = s.identifier()
	default:
		s.setError(ErrSyntax)
		return 0
	}
	if s.failed() {
		return 0
	}
	if neg {
		val = -val
	}
	return val
}

// number := digit+ ( '.' digit+ )?
//
// At least one digit must follow a '.'; "5." is a syntax error rather than
// being silently accepted as 5.0.
func (s *State) number() float64 {
	// Collect the significant characters one by one: advance() skips
	// blanks, so the input between two of them may contain spaces or tabs.
	var text []byte
	for isDigit(s.ch) {
		text = append(text, s.ch)
		s.advance()
	}
	if s.ch == '.' {
		text = append(text, s.ch)
		s.advance()
		if !isDigit(s.ch) {
			s.setError(ErrSyntax)
			return 0
		}
		for isDigit(s.ch) {
			text = append(text, s.ch)
			s.advance()
		}
	}
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		s.setError(ErrSyntax)
		return 0
	}
	return v
}

// identifier consumes the entire run of alphabetic characters, never
// split, even past MaxFuncName, then resolves it as a 0-, 1- or 2-ary
// function/constant. A run longer than any registered name simply fails
// lookup and becomes ErrUnknownFunc.
func (s *State) identifier() float64 {
	var run []byte
	for isAlpha(s.ch) {
		run = append(run, s.ch)
		s.advance()
	}
	name := string(run)

	entry, ok := s.registry.lookup(name)
	if !ok {
		s.setError(ErrUnknownFunc)
		return 0
	}

	switch entry.arity {
	case arity0:
		return s.call(entry, nil)
	case arity1:
		args := s.args(1)
		if s.failed() {
			return 0
		}
		return s.call(entry, args)
	case arity2:
		args := s.args(2)
		if s.failed() {
			return 0
		}
		return s.call(entry, args)
	default:
		s.setError(ErrSyntax)
		return 0
	}
}

// args parses "(" expr {"," expr} ")" for a function call with exactly n
// formal arguments; a trailing comma or wrong argument count is a syntax
// error.
func (s *State) args(n int) []float64 {
	if s.ch != '(' {
		s.setError(ErrSyntax)
		return nil
	}
	s.advance()

	vals := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			if s.ch != ',' {
				s.setError(ErrSyntax)
				return nil
			}
			s.advance()
		}
		vals = append(vals, s.expression())
		if s.failed() {
			return nil
		}
	}
	if s.ch == ',' {
		s.setError(ErrSyntax)
		return nil
	}
	if s.ch != ')' {
		s.setError(ErrSyntax)
		return nil
	}
	s.advance()
	return vals
}

// call dispatches to the registry entry's implementation, exhaustively
// switching on arity (the Go rendition of a function-pointer union tagged
// by arity), then classifies the raw float64 result the same way every
// libm call is checked in the source: NaN becomes ErrNaN, infinite becomes
// ErrInfinity.
func (s *State) call(e funcEntry, args []float64) float64 {
	var v float64
	switch e.arity {
	case arity0:
		v = e.f0()
	case arity1:
		v = e.f1(args[0])
	case arity2:
		v = e.f2(args[0], args[1])
	}
	return s.checked(v)
}

// pow implements the "^" operator. math.Pow(0, negative) returns +Inf (or
// -Inf for an odd negative exponent), not NaN, so the domain special case
// pow(0, negative) = NaN is enforced explicitly here rather than left to
// math.Pow and the usual infinite-result classification below.
func (s *State) pow(base, exp float64) float64 {
	if base == 0 && exp < 0 {
		s.setError(ErrNaN)
		return 0
	}
	return s.checked(math.Pow(base, exp))
}

// checked classifies a raw floating-point result and records the matching
// sticky error, or passes the value through unchanged when it is finite.
func (s *State) checked(v float64) float64 {
	switch classify(v) {
	case errNaNResult:
		s.setError(ErrNaN)
		return 0
	case errInfResult:
		s.setError(ErrInfinity)
		return 0
	default:
		return v
	}
}
