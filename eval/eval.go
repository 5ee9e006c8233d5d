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

// Run parses and evaluates expr once, at the given precision, against reg
// (DefaultRegistry if nil), and returns exactly the text that belongs on
// the wire: either the formatted numeric result or the canonical error
// message for a sticky evaluator error. The two are mutually exclusive and
// the result is never empty.
//
// This is the single call a session worker needs: it owns its own State
// (never shared, never reused across requests) and never panics on
// malformed input — every failure mode of the grammar resolves to a
// canonical message instead.
func Run(expr []byte, precision int, reg *Registry) []byte {
	st := NewState(expr, precision, reg)
	val, code := st.Evaluate()
	if code != 0 {
		return []byte(code.Message())
	}
	return Format(val, precision)
}
