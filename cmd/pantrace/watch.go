// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"cogentcore.org/gesture/base/errors"
	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long the watched files must go without changes
// before they are replayed, so that a file is not read while it is
// still being written.
var WatchDelay = 100 * time.Millisecond

// Watch replays the trace, and then replays it again each time the
// trace file or a config file is written, until the context is done.
func Watch(ctx context.Context, c *Config, file string, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace files, so watch the directories
	files := map[string]bool{}
	for _, f := range append([]string{file}, c.Config...) {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		files[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watching %q: %w", f, err)
		}
	}

	errors.Log(Replay(c, file, w))

	timer := time.NewTimer(WatchDelay)
	timer.Stop()
	defer timer.Stop()
	var changed []string
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Debug("file changed", "file", ev.Name, "op", ev.Op)
			if !slices.Contains(changed, ev.Name) {
				changed = append(changed, ev.Name)
			}
			timer.Reset(WatchDelay)
		case <-timer.C:
			for _, name := range changed {
				fmt.Fprintf(w, "--- %s changed\n", filepath.Base(name))
			}
			changed = changed[:0]
			errors.Log(Replay(c, file, w))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
