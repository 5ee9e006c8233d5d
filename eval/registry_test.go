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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// This file uses the internal (non "_test") package so it can reach into
// Registry's unexported fields; the rest of the suite exercises eval only
// through its exported surface.
var _ = Describe("Registry", func() {
	It("has no duplicate names", func() {
		seen := map[string]bool{}
		for _, e := range DefaultRegistry.entries {
			Expect(seen[e.name]).To(BeFalse(), "duplicate entry: %s", e.name)
			seen[e.name] = true
		}
	})

	It("never registers a name longer than MaxFuncName", func() {
		for _, e := range DefaultRegistry.entries {
			Expect(len(e.name)).To(BeNumerically("<=", MaxFuncName))
		}
	})

	It("populates exactly the function slot matching its arity", func() {
		for _, e := range DefaultRegistry.entries {
			switch e.arity {
			case arity0:
				Expect(e.f0).ToNot(BeNil())
				Expect(e.f1).To(BeNil())
				Expect(e.f2).To(BeNil())
			case arity1:
				Expect(e.f1).ToNot(BeNil())
				Expect(e.f0).To(BeNil())
				Expect(e.f2).To(BeNil())
			case arity2:
				Expect(e.f2).ToNot(BeNil())
				Expect(e.f0).To(BeNil())
				Expect(e.f1).To(BeNil())
			}
		}
	})
})

var _ = Describe("classify", func() {
	It("detects NaN", func() {
		Expect(classify(math.NaN())).To(Equal(errNaNResult))
	})
	It("detects +/-Inf", func() {
		Expect(classify(math.Inf(1))).To(Equal(errInfResult))
		Expect(classify(math.Inf(-1))).To(Equal(errInfResult))
	})
	It("passes finite values through", func() {
		Expect(classify(1.5)).To(Equal(errNone))
	})
})
