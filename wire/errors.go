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
	"errors"
	"fmt"

	liberr "github.com/nabbar/golib/errors"

	"github.com/sluchin/arithd/eval"
)

// Error codes for the wire package, reserved in the block that follows eval's
// (see eval.MinErrorEval), so the two packages' liberr.CodeError values never
// collide even though each is registered independently.
const (
	// ErrFraming reports a header/body that cannot be interpreted as a
	// valid frame: a declared length that exceeds MaxFrameBody, or an
	// unterminated text payload where one was required.
	ErrFraming liberr.CodeError = iota + eval.MinErrorEval

	// ErrPeerClosed is the code for a clean half-close from the remote
	// side. FullRead and ReadFrame do not return it: they report a peer
	// close as io.EOF (or io.ErrUnexpectedEOF partway through a frame).
	ErrPeerClosed
)

// MinErrorWire is the first code after wire's block, left for packages
// layered on top of wire.
const MinErrorWire = ErrPeerClosed + 10

func init() {
	if liberr.ExistInMapMessage(ErrFraming) {
		panic(fmt.Errorf("error code collision with package wire"))
	}
	liberr.RegisterIdFctMessage(ErrFraming, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrFraming:
		return "malformed frame"
	case ErrPeerClosed:
		return "peer closed the connection"
	default:
		return ""
	}
}

// ErrShortWrite is returned by FullWrite when a Write call makes no
// progress (returns 0 bytes and a nil error), which would otherwise spin
// the retry loop forever.
var ErrShortWrite = errors.New("wire: writer made no progress")
