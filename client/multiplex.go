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

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/sluchin/arithd/wire"
)

// quitWords are the two exact, whitespace-free lines that end a session
// cleanly without ever reaching the wire.
var quitWords = map[string]bool{"quit": true, "exit": true}

// Options configures a Session.
type Options struct {
	// Addr is the "host:port" the session dials.
	Addr string

	// Timing, when true, measures and prints the round-trip latency of
	// every request, the behavior the reference client gated on its -t
	// flag.
	Timing bool

	// Stdin is where expressions are read from (os.Stdin in production;
	// overridable for tests).
	Stdin io.Reader

	// Stdout is where answers (and, with Timing, latency lines) are
	// printed.
	Stdout io.Writer
}

// Session owns one TCP connection for the lifetime of an interactive REPL.
type Session struct {
	opt     Options
	conn    net.Conn
	started chan time.Time // buffered 1; carries Options.Timing start times across goroutines
}

// Dial connects to opt.Addr and returns a ready Session.
func Dial(opt Options) (*Session, error) {
	conn, err := net.Dial("tcp", opt.Addr)
	if err != nil {
		return nil, err
	}
	return &Session{opt: opt, conn: conn, started: make(chan time.Time, 1)}, nil
}

// Close closes the underlying connection.
func (s *Session) Close() error {
	return s.conn.Close()
}

// lineEvent carries one stdin line (with quit set when it is an exact
// quit/exit word), or the error that ended the reader goroutine (io.EOF
// once stdin is exhausted).
type lineEvent struct {
	text string
	quit bool
	err  error
}

// Run drives the interactive loop until stdin signals quit/EOF, the
// connection is closed by the peer, or ctx is cancelled (the Go stand-in
// for the reference client's SIGINT/SIGTERM/SIGQUIT handler, which simply
// closed the socket and exited).
//
// Frame receipt is atomic from this loop's perspective: a response is never
// interleaved with stdin handling mid-frame, because reading one frame is a
// single blocking call on the separate readFrames goroutine, which hands
// the loop only complete frames; the select below never sees a partial one.
func (s *Session) Run(ctx context.Context) error {
	lines := make(chan lineEvent)
	go s.readLines(lines)

	responses := make(chan frameEvent)
	go s.readFrames(responses)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ln := <-lines:
			switch {
			case ln.err != nil:
				return nil
			case ln.quit:
				return nil
			case ln.text == "":
				continue
			default:
				if err := s.send(ln.text); err != nil {
					return err
				}
			}

		case rsp := <-responses:
			if rsp.closed {
				return nil
			}
			if rsp.err != nil {
				return rsp.err
			}
			fmt.Fprintln(s.opt.Stdout, rsp.text)
		}
	}
}

// send frames and transmits one expression, optionally timing the
// round-trip when Options.Timing is set (printed once the matching
// response arrives, in readFrames, since the wire reply is what stops the
// clock).
func (s *Session) send(expr string) error {
	if s.opt.Timing {
		s.started <- time.Now()
	}
	return wire.FullWrite(s.conn, wire.EncodeText([]byte(expr)))
}

// readLines feeds ch one lineEvent per stdin line; an empty line is
// reported but never sent, and the two exact quit words end the session
// without touching the wire at all.
func (s *Session) readLines(ch chan<- lineEvent) {
	sc := bufio.NewScanner(s.opt.Stdin)
	for sc.Scan() {
		text := sc.Text()
		ch <- lineEvent{text: text, quit: quitWords[text]}
	}
	ch <- lineEvent{err: io.EOF}
}

type frameEvent struct {
	text   string
	err    error
	closed bool // peer closed the connection gracefully; not an error
}

// readFrames feeds ch one frameEvent per response frame received on the
// connection, printing the elapsed round-trip time first when Timing is on
// (mirroring the original client's start_timer/stop_timer pair around
// send_sock/read_sock).
//
// A peer that closes the connection, whether between frames (io.EOF) or
// mid-header (io.ErrUnexpectedEOF, per wire.ReadFrame), ends the session
// silently rather than as an error: from the client's perspective a closed
// peer is a normal way for a session to end, not a failure.
func (s *Session) readFrames(ch chan<- frameEvent) {
	for {
		body, code, err := wire.ReadFrame(s.conn)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			ch <- frameEvent{closed: true}
			return
		}
		if err != nil {
			ch <- frameEvent{err: err}
			return
		}
		if code != 0 {
			ch <- frameEvent{err: errors.New(code.Message())}
			return
		}
		text, tcode := wire.Text(body)
		if tcode != 0 {
			ch <- frameEvent{err: errors.New(tcode.Message())}
			return
		}
		if s.opt.Timing {
			select {
			case start := <-s.started:
				fmt.Fprintf(s.opt.Stdout, "time: %s\n", time.Since(start))
			default:
			}
		}
		ch <- frameEvent{text: string(text)}
	}
}
