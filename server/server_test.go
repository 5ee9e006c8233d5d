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

package server_test

import (
	"context"
	"time"

	"github.com/sluchin/arithd/server"
	"github.com/sluchin/arithd/wire"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Server", func() {
	var (
		addr string
		cfg  server.Config
		srv  *server.Server
		ctx  context.Context
		cnl  context.CancelFunc
	)

	BeforeEach(func() {
		addr = freeAddr()
		cfg = server.Config{Address: addr, Precision: 12}

		var err error
		srv, err = server.New(cfg, testLogger())
		Expect(err).ToNot(HaveOccurred())

		ctx, cnl = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		_ = srv.Close()
		cnl()
		time.Sleep(20 * time.Millisecond)
	})

	It("starts, accepts a connection and evaluates a request", func() {
		go func() { _ = srv.Listen(ctx) }()
		Eventually(srv.IsRunning, 2*time.Second, 10*time.Millisecond).Should(BeTrue())

		con := dial(addr, 2*time.Second)
		defer func() { _ = con.Close() }()

		_, err := con.Write(wire.EncodeText([]byte("(105+312)+2*(5-3)")))
		Expect(err).ToNot(HaveOccurred())

		body, code, err := wire.ReadFrame(con)
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(BeZero())
		text, _ := wire.Text(body)
		Expect(string(text)).To(Equal("421"))
	})

	It("serves multiple requests on the same connection", func() {
		go func() { _ = srv.Listen(ctx) }()
		Eventually(srv.IsRunning, 2*time.Second, 10*time.Millisecond).Should(BeTrue())

		con := dial(addr, 2*time.Second)
		defer func() { _ = con.Close() }()

		for _, tc := range []struct{ expr, want string }{
			{"1+1", "2"},
			{"5/0", "Divide by zero."},
			{"nCr(5,2)", "10"},
		} {
			_, err := con.Write(wire.EncodeText([]byte(tc.expr)))
			Expect(err).ToNot(HaveOccurred())

			body, _, err := wire.ReadFrame(con)
			Expect(err).ToNot(HaveOccurred())
			text, _ := wire.Text(body)
			Expect(string(text)).To(Equal(tc.want))
		}
	})

	It("tracks open connections and releases them on close", func() {
		go func() { _ = srv.Listen(ctx) }()
		Eventually(srv.IsRunning, 2*time.Second, 10*time.Millisecond).Should(BeTrue())

		con := dial(addr, 2*time.Second)
		Eventually(srv.OpenConnections, 2*time.Second, 10*time.Millisecond).Should(Equal(int64(1)))

		_ = con.Close()
		Eventually(srv.OpenConnections, 2*time.Second, 10*time.Millisecond).Should(Equal(int64(0)))
	})

	It("keeps accepting connections after one dies mid-header", func() {
		go func() { _ = srv.Listen(ctx) }()
		Eventually(srv.IsRunning, 2*time.Second, 10*time.Millisecond).Should(BeTrue())

		bad := dial(addr, 2*time.Second)
		// Two header bytes out of eight, then the connection closes: a
		// truncated frame, not a clean close.
		_, err := bad.Write([]byte{0x00, 0x00})
		Expect(err).ToNot(HaveOccurred())
		Expect(bad.Close()).To(Succeed())

		Eventually(srv.OpenConnections, 2*time.Second, 10*time.Millisecond).Should(Equal(int64(0)))

		good := dial(addr, 2*time.Second)
		defer func() { _ = good.Close() }()

		_, err = good.Write(wire.EncodeText([]byte("1+1")))
		Expect(err).ToNot(HaveOccurred())

		body, code, err := wire.ReadFrame(good)
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(BeZero())
		text, _ := wire.Text(body)
		Expect(string(text)).To(Equal("2"))
	})

	It("answers two pipelined requests written in a single call, in order", func() {
		go func() { _ = srv.Listen(ctx) }()
		Eventually(srv.IsRunning, 2*time.Second, 10*time.Millisecond).Should(BeTrue())

		con := dial(addr, 2*time.Second)
		defer func() { _ = con.Close() }()

		batch := append(wire.EncodeText([]byte("1+1")), wire.EncodeText([]byte("2+2"))...)
		_, err := con.Write(batch)
		Expect(err).ToNot(HaveOccurred())

		body1, _, err := wire.ReadFrame(con)
		Expect(err).ToNot(HaveOccurred())
		text1, _ := wire.Text(body1)
		Expect(string(text1)).To(Equal("2"))

		body2, _, err := wire.ReadFrame(con)
		Expect(err).ToNot(HaveOccurred())
		text2, _ := wire.Text(body2)
		Expect(string(text2)).To(Equal("4"))
	})

	It("stops accepting after Shutdown", func() {
		go func() { _ = srv.Listen(ctx) }()
		Eventually(srv.IsRunning, 2*time.Second, 10*time.Millisecond).Should(BeTrue())

		shutCtx, shutCnl := context.WithTimeout(context.Background(), time.Second)
		defer shutCnl()
		Expect(srv.Shutdown(shutCtx)).ToNot(HaveOccurred())
		Expect(srv.IsRunning()).To(BeFalse())
	})
})
