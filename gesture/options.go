// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"cogentcore.org/gesture/base/iox/tomlx"
)

const (
	// DefaultPanDistance is the distance in pixels the primary contact
	// must move before a pan starts, when not set in [Options].
	DefaultPanDistance = 15

	// DefaultMotionSamples is the number of motion samples after the
	// down sample needed before a pan can start, when not set in [Options].
	DefaultMotionSamples = 2
)

// Environment variables that override [Options] in [LoadOptions].
const (
	EnvPanDistance   = "CORE_PAN_MINIMUM_DISTANCE"
	EnvMotionSamples = "CORE_PAN_MINIMUM_MOTION_SAMPLES"
)

// Options are the environment-supplied tunables for gesture detection.
// A nil field is not set, and the default is used instead.
// Options are read once when a detector is made.
type Options struct {

	// MinimumPanDistance is the distance in pixels the primary contact
	// must move from where it went down before a pan starts.
	// Negative values are treated as 0.
	MinimumPanDistance *int `toml:"minimum_pan_distance,omitempty"`

	// MinimumMotionSamples is the number of motion samples, not counting
	// the down sample, that must arrive before a pan can start.
	// Negative values are treated as 0.
	MinimumMotionSamples *int `toml:"minimum_motion_samples,omitempty"`
}

// NewOptions returns options with both values set.
func NewOptions(panDistance, motionSamples int) *Options {
	return &Options{MinimumPanDistance: &panDistance, MinimumMotionSamples: &motionSamples}
}

// PanDistance returns the resolved minimum pan distance in pixels.
func (o *Options) PanDistance() int {
	if o == nil || o.MinimumPanDistance == nil {
		return DefaultPanDistance
	}
	return max(*o.MinimumPanDistance, 0)
}

// MotionSamples returns the resolved minimum number of motion samples.
func (o *Options) MotionSamples() int {
	if o == nil || o.MinimumMotionSamples == nil {
		return DefaultMotionSamples
	}
	return max(*o.MinimumMotionSamples, 0)
}

// SetPanDistance sets the minimum pan distance.
func (o *Options) SetPanDistance(v int) *Options {
	o.MinimumPanDistance = &v
	return o
}

// SetMotionSamples sets the minimum number of motion samples.
func (o *Options) SetMotionSamples(v int) *Options {
	o.MinimumMotionSamples = &v
	return o
}

func (o *Options) String() string {
	return fmt.Sprintf("Options{PanDistance: %d, MotionSamples: %d}", o.PanDistance(), o.MotionSamples())
}

// LoadOptions returns options read from the given TOML files, in order,
// so that later files override earlier ones. Empty names are skipped.
// Any values set in the [EnvPanDistance] and [EnvMotionSamples]
// environment variables take precedence over all files.
// Environment values that are not integers are logged and ignored.
func LoadOptions(files ...string) (*Options, error) {
	o := &Options{}
	files = slices.DeleteFunc(slices.Clone(files), func(f string) bool { return f == "" })
	if len(files) > 0 {
		if err := tomlx.OpenFiles(o, files...); err != nil {
			return nil, fmt.Errorf("gesture.LoadOptions: %w", err)
		}
	}
	o.ApplyEnv()
	return o, nil
}

// ApplyEnv sets any options given in the environment.
func (o *Options) ApplyEnv() {
	if v, ok := envInt(EnvPanDistance); ok {
		o.SetPanDistance(v)
	}
	if v, ok := envInt(EnvMotionSamples); ok {
		o.SetMotionSamples(v)
	}
}

// Save writes the options to the given TOML file.
func (o *Options) Save(file string) error {
	return tomlx.Save(o, file)
}

func envInt(name string) (int, bool) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		slog.Warn("ignoring invalid gesture option", "env", name, "value", s, "err", err)
		return 0, false
	}
	return v, true
}
