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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nabbar/golib/logger"
	loglvl "github.com/nabbar/golib/logger/level"
	"github.com/nabbar/golib/runner/startStop"
)

// shutdownGrace bounds how long RunWithSignals waits for in-flight sessions
// to finish once a shutdown signal arrives.
const shutdownGrace = 5 * time.Second

// Lifecycle drives a Server's accept loop through runner/startStop: Start
// runs Listen in the background, Stop shuts the accept loop down, and
// RunWithSignals additionally installs the process-wide signal handling:
// SIGINT/SIGTERM/SIGQUIT request a clean shutdown, SIGHUP requests a
// shutdown followed by the process re-executing its own image with its
// original argv/envp, the same strategy a SIGHUP handler built on execve
// implements.
type Lifecycle struct {
	srv *Server
	log logger.FuncLog
	run startStop.StartStop
}

// NewLifecycle wraps srv in a startStop.StartStop runner.
func NewLifecycle(srv *Server, log logger.FuncLog) *Lifecycle {
	l := &Lifecycle{srv: srv, log: log}
	l.run = startStop.New(
		func(ctx context.Context) error {
			return srv.Listen(ctx)
		},
		func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	)
	return l
}

// IsRunning reports whether the underlying accept loop is active.
func (l *Lifecycle) IsRunning() bool {
	return l.run.IsRunning()
}

// RunWithSignals starts the server and blocks until the process receives a
// terminating signal or ctx is cancelled, then performs the matching
// shutdown. It returns true if the caller should re-exec the process (a
// SIGHUP reload was requested), along with any error from starting or
// stopping the server.
func (l *Lifecycle) RunWithSignals(ctx context.Context) (reload bool, err error) {
	if err = l.run.Start(ctx); err != nil {
		return false, err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	lg := l.log()

	select {
	case sig := <-sigCh:
		lg.Entry(loglvl.InfoLevel, "received signal %s, shutting down", sig.String()).Log()
		reload = sig == syscall.SIGHUP
	case <-ctx.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if stopErr := l.run.Stop(stopCtx); stopErr != nil {
		lg.Entry(loglvl.WarnLevel, "shutdown error: %s", stopErr.Error()).Log()
		if err == nil {
			err = stopErr
		}
	}

	return reload, err
}

// Reexec replaces the current process image with a fresh copy of the
// running executable (as resolved by os.Executable) using the same
// arguments and environment, the Go equivalent of the
// original service's execve(argv[0], argv, envp) SIGHUP handler. It only
// returns if the exec itself fails; on success the process image is
// replaced and this call never returns.
func Reexec() error {
	self, err := os.Executable()
	if err != nil {
		return err
	}
	return syscall.Exec(self, os.Args, os.Environ())
}
