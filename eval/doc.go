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

// Package eval implements the recursive-descent parser and evaluator for the
// closed arithmetic grammar served by arithd: infix +,-,*,/, unary sign,
// exponentiation, a fixed catalogue of named functions and constants, and
// IEEE-754 error discipline.
//
// Grammar (right-associative is NOT used for ^; see below):
//
//	expression := term   { (+|-) term }
//	term       := factor { (*|/|^) factor }
//	factor     := '(' expression ')' | token
//	token      := [+|-]? ( number | identifier )
//	number     := digit+ ( '.' digit+ )?
//	identifier := alpha+ (up to MaxFuncName characters)
//
// Exponentiation ("^") is evaluated at term precedence, left-associative,
// the same as "*" and "/". This is a deliberate departure from the usual
// convention that "^" binds tighter than "*" and is right-associative: it is
// inherited from the service this implementation is compatible with, and is
// preserved intentionally. 2*3^2 evaluates to (2*3)^2 = 36, not 18.
//
// Every evaluator error is sticky: once State.err is set, every further
// production method returns 0.0 without side effects until a fresh State is
// created for the next request. No State is ever shared across goroutines.
package eval
