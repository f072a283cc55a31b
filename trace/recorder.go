// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import "cogentcore.org/gesture/events"

// Recorder builds a [Trace] from touch samples as they happen.
// Put it in front of a detector to capture input for later replay:
//
//	rec := trace.NewRecorder("scroll", 1, 1)
//	handle := rec.Tap(mgr.SendTouch)
type Recorder struct {
	trace Trace
}

// NewRecorder returns a new recorder for a trace with the given
// name and contact bounds.
func NewRecorder(name string, minTouches, maxTouches int) *Recorder {
	return &Recorder{trace: Trace{Name: name, MinTouches: minTouches, MaxTouches: maxTouches}}
}

// Record adds the given touch sample.
func (r *Recorder) Record(t *events.Touch) {
	r.trace.Samples = append(r.trace.Samples, SampleFromTouch(t))
}

// Tap returns a function that records each touch sample and
// then passes it on to next.
func (r *Recorder) Tap(next func(t *events.Touch)) func(t *events.Touch) {
	return func(t *events.Touch) {
		r.Record(t)
		next(t)
	}
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.trace.Samples)
}

// Trace returns a copy of the trace recorded so far.
func (r *Recorder) Trace() *Trace {
	tr := r.trace
	tr.Samples = append([]Sample(nil), r.trace.Samples...)
	return &tr
}
