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
	"io"

	"github.com/nabbar/golib/logger"
	loglvl "github.com/nabbar/golib/logger/level"
	libsck "github.com/nabbar/golib/socket"

	"github.com/sluchin/arithd/eval"
	"github.com/sluchin/arithd/wire"
)

// session runs the request/response loop for one accepted connection: read
// a frame, evaluate it, write a frame back, until the peer half-closes or a
// framing error ends the session. Every per-request allocation (the
// evaluator State, the result buffer) lives only for the one request it
// serves.
//
// A session never panics on malformed client input; every failure mode of
// the frame or the grammar resolves to either a clean session end or a
// canonical error message sent back to the peer.
func session(cfg Config, log logger.FuncLog) libsck.HandlerFunc {
	return func(c libsck.Context) {
		defer func() {
			_ = c.Close()
		}()

		lg := log()
		precision := cfg.precision()
		reg := cfg.Registry

		for {
			body, code, err := wire.ReadFrame(c)
			if err != nil {
				if err != io.EOF {
					lg.Entry(loglvl.DebugLevel, "session ended: %s", err.Error()).Log()
				}
				return
			}
			if code != 0 {
				// Malformed frame: nothing meaningful to reply with, end
				// the session the same way a protocol violation would in
				// any other framed protocol.
				return
			}

			text, tcode := wire.Text(body)
			if tcode != 0 {
				return
			}

			result := eval.Run(text, precision, reg)

			if err := wire.FullWrite(c, wire.EncodeText(result)); err != nil {
				return
			}
		}
	}
}
