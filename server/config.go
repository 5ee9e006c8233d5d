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

package server

import (
	"github.com/sluchin/arithd/eval"
)

// Config holds everything a Server needs: where to listen and what every
// session worker evaluates against.
type Config struct {
	// Address is a "host:port" or "host:service" listen address, passed
	// through to the underlying TCP listener unchanged.
	Address string

	// Precision is the significant-digits setting every session worker
	// applies when formatting a result. ClampPrecision is applied once
	// here so a bad config value can never reach eval.Run per request.
	Precision int

	// Registry is the function/constant catalogue sessions evaluate
	// against. Nil means eval.DefaultRegistry.
	Registry *eval.Registry
}

func (c Config) precision() int {
	return eval.ClampPrecision(c.Precision)
}
