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

// Package config binds arithd's process-wide settings to cobra flags and a
// viper store, the same RegisterFlag-then-bind convention
// github.com/nabbar/golib/config's Component interface uses, scaled down to
// the handful of settings this service actually has: a listen/dial address
// and the formatter's significant-digits precision.
//
// Precision is set once at startup and never mutated afterwards; the
// supported way to change it is the SIGHUP reload, which re-executes the
// process and re-parses flags from scratch (see server.Reexec).
package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sluchin/arithd/eval"
)

const (
	flagPort      = "port"
	flagDigit     = "digit"
	flagDebug     = "debug"
	flagIPAddress = "ipaddress"
	flagTiming    = "time"

	defaultPort = 12345
)

// Server holds the settings the server command needs.
type Server struct {
	Address   string
	Precision int
	Debug     bool
}

// RegisterServerFlags adds the server's flags to cmd and binds them into v,
// the pattern every nabbar-golib config Component follows for
// RegisterFlag(cmd, viper).
func RegisterServerFlags(cmd *cobra.Command, v *viper.Viper) error {
	cmd.Flags().IntP(flagPort, "p", defaultPort, "port to listen on")
	cmd.Flags().IntP(flagDigit, "d", eval.DefaultDigit, "significant digits for results")
	cmd.Flags().BoolP(flagDebug, "g", false, "enable debug-level logging")

	for _, name := range []string{flagPort, flagDigit, flagDebug} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// LoadServer reads the bound flags back out of v, clamping precision the
// same way the formatter requires of any input.
func LoadServer(v *viper.Viper) Server {
	return Server{
		Address:   fmt.Sprintf(":%d", v.GetInt(flagPort)),
		Precision: eval.ClampPrecision(v.GetInt(flagDigit)),
		Debug:     v.GetBool(flagDebug),
	}
}

// Client holds the settings the client command needs.
type Client struct {
	Address string
	Timing  bool
	Debug   bool
}

// RegisterClientFlags adds the client's flags to cmd and binds them into v.
// Timing mirrors the reference client's -t flag: measure and print each
// request's round-trip latency.
func RegisterClientFlags(cmd *cobra.Command, v *viper.Viper) error {
	cmd.Flags().StringP(flagIPAddress, "i", "127.0.0.1", "server address to connect to")
	cmd.Flags().IntP(flagPort, "p", defaultPort, "server port to connect to")
	cmd.Flags().BoolP(flagTiming, "t", false, "print round-trip time for each request")
	cmd.Flags().BoolP(flagDebug, "g", false, "enable debug-level logging")

	for _, name := range []string{flagIPAddress, flagPort, flagTiming, flagDebug} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// LoadClient reads the bound flags back out of v.
func LoadClient(v *viper.Viper) Client {
	return Client{
		Address: fmt.Sprintf("%s:%d", v.GetString(flagIPAddress), v.GetInt(flagPort)),
		Timing:  v.GetBool(flagTiming),
		Debug:   v.GetBool(flagDebug),
	}
}
