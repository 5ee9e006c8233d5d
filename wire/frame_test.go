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

package wire_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"net"

	liberr "github.com/nabbar/golib/errors"
	"github.com/sluchin/arithd/wire"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Encode", func() {
	It("pads the body to a multiple of 8 and writes the padded length big-endian", func() {
		frame := wire.Encode([]byte("1+1\x00"))
		Expect(len(frame) % 8).To(Equal(0))
		Expect(len(frame)).To(BeNumerically(">=", wire.HeaderSize+5))

		length := binary.BigEndian.Uint32(frame[0:4])
		Expect(int(length)).To(Equal(len(frame) - wire.HeaderSize))
		Expect(frame[4:8]).To(Equal([]byte{0, 0, 0, 0}))
	})

	It("zero-pads the body past the payload", func() {
		frame := wire.Encode([]byte("ab\x00"))
		body := frame[wire.HeaderSize:]
		Expect(body[:3]).To(Equal([]byte("ab\x00")))
		for _, b := range body[3:] {
			Expect(b).To(Equal(byte(0)))
		}
	})
})

var _ = Describe("ReadFrame", func() {
	It("round-trips a frame written in one piece", func() {
		var buf bytes.Buffer
		buf.Write(wire.EncodeText([]byte("nCr(5,2)")))

		body, code, err := wire.ReadFrame(&buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(Equal(liberr.CodeError(0)))

		text, tcode := wire.Text(body)
		Expect(tcode).To(Equal(liberr.CodeError(0)))
		Expect(string(text)).To(Equal("nCr(5,2)"))
	})

	It("reassembles a frame delivered across many short reads", func() {
		frame := wire.EncodeText([]byte("1+1"))
		r, w := net.Pipe()
		done := make(chan struct{})
		go func() {
			defer close(done)
			defer w.Close()
			for _, b := range frame {
				_, _ = w.Write([]byte{b})
			}
		}()

		body, code, err := wire.ReadFrame(r)
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(Equal(liberr.CodeError(0)))
		text, _ := wire.Text(body)
		Expect(string(text)).To(Equal("1+1"))
		<-done
	})

	It("reports io.EOF on a clean close before any header bytes arrive", func() {
		r, w := net.Pipe()
		w.Close()
		_, _, err := wire.ReadFrame(r)
		Expect(err).To(Equal(io.EOF))
	})

	It("reports a framing error on a connection that dies mid-header", func() {
		r, w := net.Pipe()
		go func() {
			_, _ = w.Write([]byte{0, 0})
			w.Close()
		}()
		_, code, err := wire.ReadFrame(r)
		Expect(err).To(HaveOccurred())
		Expect(code).To(Equal(wire.ErrFraming))
	})

	It("reports a framing error when the declared length exceeds the cap", func() {
		var hdr [8]byte
		binary.BigEndian.PutUint32(hdr[0:4], wire.MaxFrameBody+8)
		var buf bytes.Buffer
		buf.Write(hdr[:])
		_, code, err := wire.ReadFrame(&buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(Equal(wire.ErrFraming))
	})
})

var _ = Describe("Text", func() {
	It("stops at the first NUL and ignores trailing padding", func() {
		body := append([]byte("120\x00"), 0, 0, 0)
		text, code := wire.Text(body)
		Expect(code).To(Equal(liberr.CodeError(0)))
		Expect(string(text)).To(Equal("120"))
	})

	It("reports a framing error for a body with no NUL at all", func() {
		_, code := wire.Text([]byte("no terminator here"))
		Expect(code).To(Equal(wire.ErrFraming))
	})
})

var _ = Describe("back to back frames on one connection", func() {
	It("reads two sequential frames independently off the same stream", func() {
		var buf bytes.Buffer
		buf.Write(wire.EncodeText([]byte("1+1")))
		buf.Write(wire.EncodeText([]byte("2+2")))

		body1, _, err := wire.ReadFrame(&buf)
		Expect(err).ToNot(HaveOccurred())
		text1, _ := wire.Text(body1)
		Expect(string(text1)).To(Equal("1+1"))

		body2, _, err := wire.ReadFrame(&buf)
		Expect(err).ToNot(HaveOccurred())
		text2, _ := wire.Text(body2)
		Expect(string(text2)).To(Equal("2+2"))
	})
})

