// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"cogentcore.org/gesture/base/iox/tomlx"
	"cogentcore.org/gesture/gesture"
)

// Config has the command line settings for pantrace.
type Config struct {

	// Config are the TOML files with gesture options, in order,
	// so that later files override earlier ones.
	Config []string

	// MinTouches overrides the minimum contacts of the trace, if > 0.
	MinTouches int

	// MaxTouches overrides the maximum contacts of the trace, if > 0.
	MaxTouches int

	// Watch replays again whenever the trace or config file changes.
	Watch bool

	VeryVerbose bool
	Verbose     bool
	Quiet       bool
}

// PrintConfig writes the resolved gesture options as TOML.
func PrintConfig(c *Config, w io.Writer) error {
	opts, err := gesture.LoadOptions(c.Config...)
	if err != nil {
		return err
	}
	return tomlx.Write(gesture.NewOptions(opts.PanDistance(), opts.MotionSamples()), w)
}
