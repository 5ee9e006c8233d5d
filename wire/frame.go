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

package wire

import (
	"bytes"
	"encoding/binary"
	"io"

	liberr "github.com/nabbar/golib/errors"
)

// HeaderSize is the fixed size, in bytes, of a frame header: a big-endian
// uint32 padded-body length followed by 4 bytes of padding.
const HeaderSize = 8

// MaxFrameBody bounds the padded body length this implementation will
// allocate for on receive. The wire protocol itself has no such ceiling, but
// an unbounded allocation driven directly by an attacker-controlled length
// field is not something a server should ever do; a session that declares a
// longer frame is treated as a framing error and the connection is closed.
const MaxFrameBody = 1 << 20

// Encode returns a complete frame for payload: an 8-byte header whose length
// field holds the padded body length, followed by payload, followed by
// however many zero bytes bring the body up to a multiple of 8.
//
// payload is expected to already carry its own NUL terminator for text
// frames; Encode does not add one, matching the line between "build the
// string" (the caller's job) and "frame it" (this function's).
func Encode(payload []byte) []byte {
	padded := padLen(len(payload))
	frame := make([]byte, HeaderSize+padded)
	binary.BigEndian.PutUint32(frame[0:4], uint32(padded))
	// frame[4:8] is left zeroed: the 4 padding bytes of the header itself.
	copy(frame[HeaderSize:], payload)
	return frame
}

// padLen rounds n up to the next multiple of 8.
func padLen(n int) int {
	return (n + 7) &^ 7
}

// ReadFrame reads one complete frame from r and returns its body, with
// trailing zero padding still attached (callers that want the NUL-terminated
// text payload use Text on the result).
//
// It first reads exactly HeaderSize bytes via FullRead, then exactly
// `length` more. A clean close before any header bytes arrive returns
// io.EOF, signalling a graceful end of session; every other short count or
// an oversized declared length is reported as ErrFraming.
func ReadFrame(r io.Reader) ([]byte, liberr.CodeError, error) {
	var hdr [HeaderSize]byte
	if err := FullRead(r, hdr[:]); err != nil {
		if err == io.EOF {
			return nil, 0, io.EOF
		}
		return nil, ErrFraming, err
	}

	length := binary.BigEndian.Uint32(hdr[0:4])
	if length > MaxFrameBody {
		return nil, ErrFraming, nil
	}

	body := make([]byte, length)
	if err := FullRead(r, body); err != nil {
		return nil, ErrFraming, err
	}
	return body, 0, nil
}

// Text returns the NUL-terminated string payload carried in a frame body,
// i.e. everything up to (not including) the first zero byte. A body with no
// NUL byte at all is an unterminated payload, reported as ErrFraming per the
// protocol's text-framing rule.
func Text(body []byte) ([]byte, liberr.CodeError) {
	i := bytes.IndexByte(body, 0)
	if i < 0 {
		return nil, ErrFraming
	}
	return body[:i], 0
}

// EncodeText is a convenience wrapper that NUL-terminates s and frames it in
// one call, the shape both the session worker and the client use for every
// request and response.
func EncodeText(s []byte) []byte {
	payload := make([]byte, len(s)+1)
	copy(payload, s)
	return Encode(payload)
}
