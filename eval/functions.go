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

import "math"

// These are the reference service's literal digit strings for pi and e.
// As float64 values they are identical to math.Pi and math.E; at
// precision 12 "pi" formats as 3.14159265359.
const (
	piDigits = 3.14159265358979323846264338327950288
	eDigits  = 2.71828182845904523536028747135266249
)

// arity is the number of arguments a registry entry accepts.
type arity int

const (
	arity0 arity = 0
	arity1 arity = 1
	arity2 arity = 2
)

type fn0 func() float64
type fn1 func(float64) float64
type fn2 func(float64, float64) float64

// funcEntry is the registry's sum-type dispatch record: exactly one of
// f0/f1/f2 is populated, selected by arity, and the evaluator exhaustively
// switches on arity rather than doing a type assertion on an interface{}.
type funcEntry struct {
	name  string
	arity arity
	f0    fn0
	f1    fn1
	f2    fn2
}

// Registry is the process-wide, read-only-after-construction catalogue of
// named constants and functions. Names are matched case-sensitively and are
// unique; lookups are a linear scan, which is more than fast enough for a
// fixed catalogue of this size and keeps the entries declared in one
// readable, ordered list.
type Registry struct {
	entries []funcEntry
}

// DefaultRegistry is the catalogue every server session evaluates against
// unless a caller supplies its own (tests build scoped registries to probe
// edge cases without touching shared state).
var DefaultRegistry = NewRegistry()

// NewRegistry builds the fixed function/constant catalogue. It is
// ordinarily called once per process; the resulting Registry is immutable
// and safe to share across every concurrent session.
func NewRegistry() *Registry {
	r := &Registry{}
	r.add0("pi", func() float64 { return piDigits })
	r.add0("e", func() float64 { return eDigits })
	r.add1("abs", math.Abs)
	r.add1("sqrt", math.Sqrt)
	r.add1("sin", math.Sin)
	r.add1("cos", math.Cos)
	r.add1("tan", math.Tan)
	r.add1("asin", math.Asin)
	r.add1("acos", math.Acos)
	r.add1("atan", math.Atan)
	r.add1("exp", math.Exp)
	r.add1("ln", math.Log)
	r.add1("log", math.Log10)
	r.add1("rad", func(x float64) float64 { return x * piDigits / 180 })
	r.add1("deg", func(x float64) float64 { return x * 180 / piDigits })
	r.add1("n", factorial)
	r.add2("nPr", permutations)
	r.add2("nCr", combinations)
	return r
}

func (r *Registry) add0(name string, f fn0) {
	r.entries = append(r.entries, funcEntry{name: name, arity: arity0, f0: f})
}

func (r *Registry) add1(name string, f fn1) {
	r.entries = append(r.entries, funcEntry{name: name, arity: arity1, f1: f})
}

func (r *Registry) add2(name string, f fn2) {
	r.entries = append(r.entries, funcEntry{name: name, arity: arity2, f2: f})
}

// lookup returns the entry registered under name, if any.
func (r *Registry) lookup(name string) (funcEntry, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e, true
		}
	}
	return funcEntry{}, false
}

// classify maps a raw float64 result to the sticky error it represents, or
// 0 if the value is a normal finite number. This stands in for the
// "clear FP exception flags; call; check flags" dance of the IEEE
// environment the service was originally built against: Go does not expose
// FE_INVALID/FE_OVERFLOW directly, but every condition that dance detects
// (domain errors, overflow) surfaces as NaN or +/-Inf in the returned
// value, which is sufficient to reconstruct the same taxonomy.
func classify(v float64) (code float64Error) {
	switch {
	case math.IsNaN(v):
		return errNaNResult
	case math.IsInf(v, 0):
		return errInfResult
	default:
		return errNone
	}
}

type float64Error int

const (
	errNone float64Error = iota
	errNaNResult
	errInfResult
)

// factorial extends the integer factorial to the evaluator's domain:
// non-integer n is a domain error (NaN); negative integer n returns the
// negated factorial of |n|. The loop is iterative, never
// recursive and never routed through math.Gamma, so that overflow for
// |n| >= 171 (170! is still finite) behaves the same as the source service
// (saturates to +/-Inf, classified as Infinity).
func factorial(n float64) float64 {
	if math.Trunc(n) != n {
		return math.NaN()
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	if neg {
		result = -result
	}
	return result
}

// permutations computes n!/(n-r)!. n<0, r<0 or n<r are domain errors.
func permutations(n, r float64) float64 {
	if n < 0 || r < 0 || n < r {
		return math.NaN()
	}
	return factorial(n) / factorial(n-r)
}

// combinations computes n!/(r!(n-r)!). n<0, r<0 or n<r are domain errors.
func combinations(n, r float64) float64 {
	if n < 0 || r < 0 || n < r {
		return math.NaN()
	}
	return factorial(n) / (factorial(r) * factorial(n-r))
}
