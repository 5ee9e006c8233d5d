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

// Command arithd-server listens for arithd clients and evaluates whatever
// expressions they send.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nabbar/golib/logger"
	loglvl "github.com/nabbar/golib/logger/level"

	"github.com/sluchin/arithd/config"
	"github.com/sluchin/arithd/eval"
	"github.com/sluchin/arithd/server"
)

func main() {
	v := viper.New()
	log := logger.New(context.Background())
	log.SetLevel(loglvl.InfoLevel)

	cmd := &cobra.Command{
		Use:   "arithd-server",
		Short: "evaluates arithmetic expressions sent over TCP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadServer(v)
			if cfg.Debug {
				log.SetLevel(loglvl.DebugLevel)
			}
			return run(cmd.Context(), cfg, func() logger.Logger { return log })
		},
		SilenceUsage: true,
	}

	if err := config.RegisterServerFlags(cmd, v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log logger.FuncLog) error {
	srv, err := server.New(server.Config{
		Address:   cfg.Address,
		Precision: cfg.Precision,
		Registry:  eval.NewRegistry(),
	}, log)
	if err != nil {
		return err
	}

	life := server.NewLifecycle(srv, log)

	reload, err := life.RunWithSignals(ctx)
	if err != nil {
		return err
	}
	if !reload {
		return nil
	}

	log().Entry(loglvl.InfoLevel, "reloading on SIGHUP").Log()
	return server.Reexec()
}
