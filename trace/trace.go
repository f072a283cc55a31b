// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace reads, writes and replays recordings of touch samples,
// stored as YAML.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cogentcore.org/gesture/base/errors"
	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/math32"
	"gopkg.in/yaml.v3"
)

// Trace is a recorded sequence of touch samples, along with the
// contact bounds for the pan detection it is meant to drive.
type Trace struct {

	// Name describes the trace.
	Name string `yaml:"name,omitempty"`

	// MinTouches is the minimum number of contacts for a pan; 0 means 1.
	MinTouches int `yaml:"min_touches,omitempty"`

	// MaxTouches is the maximum number of contacts for a pan;
	// 0 means the same as MinTouches.
	MaxTouches int `yaml:"max_touches,omitempty"`

	// Samples are the touch samples in time order.
	Samples []Sample `yaml:"samples"`
}

// Sample is one recorded touch sample.
type Sample struct {

	// Time is the time of the sample in milliseconds.
	Time uint64 `yaml:"time"`

	// Points are the active contacts, primary first.
	Points []Point `yaml:"points"`
}

// Point is one recorded touch contact.
type Point struct {
	ID    int                `yaml:"id,omitempty"`
	State events.PointStates `yaml:"state"`
	X     float32            `yaml:"x"`
	Y     float32            `yaml:"y"`
}

// Touches returns the resolved contact bounds of the trace.
func (tr *Trace) Touches() (minTouches, maxTouches int) {
	minTouches = max(tr.MinTouches, 1)
	maxTouches = max(tr.MaxTouches, minTouches)
	return
}

// Touch returns the sample as a touch event.
func (s *Sample) Touch() *events.Touch {
	pts := make([]events.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = events.Point{ID: p.ID, State: p.State, Screen: math32.Vec2(p.X, p.Y)}
	}
	return events.NewTouch(s.Time, pts...)
}

// SampleFromTouch returns the recorded form of the given touch event.
func SampleFromTouch(t *events.Touch) Sample {
	s := Sample{Time: t.Time, Points: make([]Point, len(t.Points))}
	for i, p := range t.Points {
		s.Points[i] = Point{ID: p.ID, State: p.State, X: p.Screen.X, Y: p.Screen.Y}
	}
	return s
}

// Validate returns an error if any sample has no points, or if
// sample times decrease.
func (tr *Trace) Validate() error {
	var errs []error
	var last uint64
	for i, s := range tr.Samples {
		if len(s.Points) == 0 {
			errs = append(errs, fmt.Errorf("sample %d has no points", i))
		}
		if i > 0 && s.Time < last {
			errs = append(errs, fmt.Errorf("sample %d time %d is before previous time %d", i, s.Time, last))
		}
		last = s.Time
	}
	return errors.Join(errs...)
}

// Play calls fun on each sample of the trace in order.
func Play(tr *Trace, fun func(t *events.Touch)) {
	for i := range tr.Samples {
		fun(tr.Samples[i].Touch())
	}
}

// Open reads a trace from the given YAML file, and validates it.
func Open(filename string) (*Trace, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	tr, err := Read(bufio.NewReader(fp))
	if err != nil {
		return nil, fmt.Errorf("trace.Open %q: %w", filename, err)
	}
	return tr, nil
}

// Read reads a trace from the given YAML reader, and validates it.
func Read(r io.Reader) (*Trace, error) {
	tr := &Trace{}
	if err := yaml.NewDecoder(r).Decode(tr); err != nil {
		return nil, err
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return tr, nil
}

// Save writes the trace to the given file as YAML.
func (tr *Trace) Save(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := tr.Write(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the trace as YAML.
func (tr *Trace) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return err
	}
	return enc.Close()
}
