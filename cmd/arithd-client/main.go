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

// Command arithd-client connects to an arithd server and evaluates whatever
// expressions are typed at it, one per line, until "quit", "exit", EOF or a
// signal ends the session.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sluchin/arithd/client"
	"github.com/sluchin/arithd/config"
)

func main() {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "arithd-client",
		Short: "interactive client for arithd",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), config.LoadClient(v))
		},
		SilenceUsage: true,
	}

	if err := config.RegisterClientFlags(cmd, v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		os.Exit(1)
	}
}

func run(parent context.Context, cfg config.Client) error {
	ctx, cancel := client.WithSignalShutdown(parent)
	defer cancel()

	sess, err := client.Dial(client.Options{
		Addr:   cfg.Address,
		Timing: cfg.Timing,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	return sess.Run(ctx)
}
