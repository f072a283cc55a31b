// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/gesture"
	"cogentcore.org/gesture/trace"
)

// Replay plays the given trace file through a pan recognizer,
// writing one line per pan event to w.
func Replay(c *Config, file string, w io.Writer) error {
	opts, err := gesture.LoadOptions(c.Config...)
	if err != nil {
		return err
	}
	tr, err := trace.Open(file)
	if err != nil {
		return err
	}
	req, err := request(c, tr)
	if err != nil {
		return fmt.Errorf("replaying %q: %w", file, err)
	}
	slog.Info("replaying trace", "file", file, "name", tr.Name, "samples", len(tr.Samples), "minTouches", req.MinTouches, "maxTouches", req.MaxTouches, "options", opts.String())

	var werr error
	n := 0
	pr := gesture.NewPanRecognizer(req, opts, gesture.SinkFunc(func(ev *events.Pan) {
		n++
		if werr == nil {
			_, werr = fmt.Fprintln(w, ev.String())
		}
	}))
	trace.Play(tr, pr.ProcessSample)
	if werr != nil {
		return werr
	}
	slog.Info("replay done", "events", n, "state", pr.State())
	return nil
}

// request returns the pan request for the trace, with any
// bounds set in the config taking precedence. It returns an
// error if the resulting bounds are not valid.
func request(c *Config, tr *trace.Trace) (gesture.PanRequest, error) {
	mn, mx := tr.Touches()
	if c.MinTouches > 0 {
		mn = c.MinTouches
		mx = max(mx, mn)
	}
	if c.MaxTouches > 0 {
		mx = c.MaxTouches
	}
	req := gesture.PanRequest{MinTouches: mn, MaxTouches: mx}
	return req, req.Validate()
}
