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

package client_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/sluchin/arithd/client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session", func() {
	var (
		addr string
		stop func()
	)

	BeforeEach(func() {
		addr, stop = echoEvalListener()
	})

	AfterEach(func() {
		stop()
	})

	It("sends each stdin line and prints the matching answer", func() {
		stdin := strings.NewReader("(105+312)+2*(5-3)\n1+1\n")
		var stdout bytes.Buffer

		sess, err := client.Dial(client.Options{Addr: addr, Stdin: stdin, Stdout: &stdout})
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = sess.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- sess.Run(ctx) }()

		Eventually(func() string { return stdout.String() }, 2*time.Second, 10*time.Millisecond).
			Should(Equal("421\n2\n"))

		cancel()
		Eventually(done, time.Second).Should(Receive())
	})

	It("ends the session cleanly on the exact word 'quit'", func() {
		stdin := strings.NewReader("quit\n1+1\n")
		var stdout bytes.Buffer

		sess, err := client.Dial(client.Options{Addr: addr, Stdin: stdin, Stdout: &stdout})
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = sess.Close() }()

		done := make(chan error, 1)
		go func() { done <- sess.Run(context.Background()) }()

		Eventually(done, 2*time.Second).Should(Receive(BeNil()))
		// "1+1" was never reached: quit ends the loop before it is sent.
		Expect(stdout.String()).To(Equal(""))
	})

	It("ignores a blank line without sending anything", func() {
		stdin := strings.NewReader("\n1+1\n")
		var stdout bytes.Buffer

		sess, err := client.Dial(client.Options{Addr: addr, Stdin: stdin, Stdout: &stdout})
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = sess.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		go func() { _ = sess.Run(ctx) }()

		Eventually(func() string { return stdout.String() }, 2*time.Second, 10*time.Millisecond).
			Should(Equal("2\n"))
	})

	It("ends the session silently when the peer closes the connection", func() {
		oneShotAddr, oneShotStop := closeAfterOneListener()
		defer oneShotStop()

		// stdinR is never closed or written to past the first line, so
		// readLines blocks waiting for more input instead of racing the
		// peer close with a stdin EOF of its own.
		stdinR, stdinW := io.Pipe()
		defer func() { _ = stdinW.Close() }()
		var stdout bytes.Buffer

		sess, err := client.Dial(client.Options{Addr: oneShotAddr, Stdin: stdinR, Stdout: &stdout})
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = sess.Close() }()

		go func() { _, _ = stdinW.Write([]byte("1+1\n")) }()

		done := make(chan error, 1)
		go func() { done <- sess.Run(context.Background()) }()

		Eventually(done, 2*time.Second).Should(Receive(BeNil()))
		Expect(stdout.String()).To(Equal("2\n"))
	})

	It("prints a round-trip time line before the answer when Timing is enabled", func() {
		stdin := strings.NewReader("1+1\n")
		var stdout bytes.Buffer

		sess, err := client.Dial(client.Options{Addr: addr, Stdin: stdin, Stdout: &stdout, Timing: true})
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = sess.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		go func() { _ = sess.Run(ctx) }()

		Eventually(func() string { return stdout.String() }, 2*time.Second, 10*time.Millisecond).
			Should(ContainSubstring("time:"))
		Expect(stdout.String()).To(ContainSubstring("2\n"))
	})
})
