// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logging setup,
// with colored level output on terminals that support it.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] from the end user's command line flags.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the following order:
//   - vv: Debug
//   - v: Info
//   - q: Error
//   - default: Warn
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return Debug.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewHandler returns a text [slog.Handler] writing to w that only
// shows messages at or above the given level. The level field is
// colored when w is a terminal with color support.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{Level: level}
	if out.Profile != termenv.Ascii {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lev, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lev.String()).Foreground(levelColor(lev)).Bold().String())
			return a
		}
	}
	return slog.NewTextHandler(w, opts)
}

// levelColor returns the terminal color used for the given level.
func levelColor(lev slog.Level) termenv.Color {
	switch {
	case lev >= slog.LevelError:
		return termenv.ANSIRed
	case lev >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lev >= slog.LevelInfo:
		return termenv.ANSIGreen
	default:
		return termenv.ANSIBlue
	}
}

// SetDefaultLogger sets the default logger to one that writes to
// stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// Enabled returns whether the default logger would log at the given level,
// for skipping work that only builds log attributes.
func Enabled(lev slog.Level) bool {
	return slog.Default().Enabled(context.Background(), lev)
}
