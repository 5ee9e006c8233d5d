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

import "strconv"

// DefaultDigit and MaxDigit bound the precision (significant digits) a
// caller may configure. MaxDigit is overridden to 30 in debug builds by
// limits_debug.go (build tag "debug"); limits_release.go supplies the
// release value of 15 otherwise.
const DefaultDigit = 12

// ClampPrecision bounds a requested precision: values above MaxDigit clamp
// down to MaxDigit, values at or below zero reset to DefaultDigit.
func ClampPrecision(p int) int {
	switch {
	case p > MaxDigit:
		return MaxDigit
	case p <= 0:
		return DefaultDigit
	default:
		return p
	}
}

// Format renders a finite float64 at the given significant-digit precision,
// equivalent to C's "%.{p}g": the shortest representation at p significant
// digits, switching to scientific notation outside strconv's conventional
// exponent window.
//
// The byte slice returned is allocated exactly once, sized by first
// measuring the formatted length with the same formatter (strconv's),
// mirroring the source's two-pass "measure, then snprintf into a malloc'd
// buffer of that exact size" discipline — appending a trailing NUL remains
// the caller's (wire-codec's) responsibility, not this function's.
func Format(val float64, precision int) []byte {
	n := len(strconv.FormatFloat(val, 'g', precision, 64))
	buf := make([]byte, 0, n)
	return strconv.AppendFloat(buf, val, 'g', precision, 64)
}
