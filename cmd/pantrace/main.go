// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pantrace replays recorded touch traces through the pan
// gesture recognizer and prints the resulting gesture events.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/gesture/logx"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &Config{}
	root := &cobra.Command{
		Use:          "pantrace",
		Short:        "Replay touch traces through pan gesture recognition",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringArrayVar(&c.Config, "config", nil, "TOML file with gesture options; may be repeated, with later files taking precedence")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "show debug log messages, including state transitions")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "only show error log messages")

	replay := &cobra.Command{
		Use:   "replay <trace.yaml>",
		Short: "Replay a trace and print the pan events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Watch {
				return Watch(cmd.Context(), c, args[0], cmd.OutOrStdout())
			}
			return Replay(c, args[0], cmd.OutOrStdout())
		},
	}
	rf := replay.Flags()
	rf.IntVar(&c.MinTouches, "min-touches", 0, "minimum number of contacts, overriding the trace")
	rf.IntVar(&c.MaxTouches, "max-touches", 0, "maximum number of contacts, overriding the trace")
	rf.BoolVarP(&c.Watch, "watch", "w", false, "replay again whenever the trace or config file changes")

	config := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved gesture options as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintConfig(c, cmd.OutOrStdout())
		},
	}

	root.AddCommand(replay, config)
	return root
}
