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
	"context"

	"github.com/nabbar/golib/logger"
	libptc "github.com/nabbar/golib/network/protocol"
	sckcfg "github.com/nabbar/golib/socket/config"
	scktcp "github.com/nabbar/golib/socket/server/tcp"
)

// Server owns a listening socket and spawns one session worker per accepted
// connection, delegating the accept loop's bookkeeping (non-blocking
// accept, timed wait, open-connection counting) to the wrapped
// scktcp.ServerTcp.
type Server struct {
	cfg Config
	log logger.FuncLog
	srv scktcp.ServerTcp
}

// New builds a Server listening on cfg.Address. log supplies the logger used
// by every session worker; pass a FuncLog that always returns the same
// instance to share one Logger process-wide.
func New(cfg Config, log logger.FuncLog) (*Server, error) {
	tcfg := sckcfg.Server{
		Network: libptc.NetworkTCP,
		Address: cfg.Address,
	}

	raw, err := scktcp.New(nil, session(cfg, log), tcfg)
	if err != nil {
		return nil, err
	}

	return &Server{cfg: cfg, log: log, srv: raw}, nil
}

// Listen runs the accept loop until ctx is cancelled or a fatal accept error
// occurs. It blocks; callers run it in its own goroutine (see the lifecycle
// runner in signal.go) and use Shutdown or Close to stop it.
func (s *Server) Listen(ctx context.Context) error {
	return s.srv.Listen(ctx)
}

// Shutdown stops accepting new connections and waits (bounded by ctx) for
// in-flight sessions to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Close stops the server immediately, without waiting for in-flight
// sessions.
func (s *Server) Close() error {
	return s.srv.Close()
}

// IsRunning reports whether the accept loop is currently active.
func (s *Server) IsRunning() bool {
	return s.srv.IsRunning()
}

// OpenConnections reports the number of sessions currently in flight.
func (s *Server) OpenConnections() int64 {
	return s.srv.OpenConnections()
}
