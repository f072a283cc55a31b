// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import "cogentcore.org/gesture/events"

// Sink receives the gesture events emitted by a detector.
// HandlePan is called synchronously from the goroutine driving
// detection, once per emitted event.
type Sink interface {
	HandlePan(ev *events.Pan)
}

// SinkFunc is a function that implements [Sink].
type SinkFunc func(ev *events.Pan)

func (f SinkFunc) HandlePan(ev *events.Pan) {
	f(ev)
}

// QueueSink sends each event to a [events.Queue], so that another
// goroutine can consume them without blocking detection.
type QueueSink struct {
	Queue *events.Queue
}

// NewQueueSink returns a [QueueSink] with a new initialized queue.
func NewQueueSink() *QueueSink {
	return &QueueSink{Queue: events.NewQueue()}
}

func (qs *QueueSink) HandlePan(ev *events.Pan) {
	qs.Queue.Send(ev)
}

// ListenersSink calls the registered [events.Listeners] for
// the type of each event.
type ListenersSink struct {
	Listeners events.Listeners
}

func (ls *ListenersSink) HandlePan(ev *events.Pan) {
	ls.Listeners.Call(ev)
}

// Sinks sends each event to every sink in order.
type Sinks []Sink

func (ss Sinks) HandlePan(ev *events.Pan) {
	for _, s := range ss {
		s.HandlePan(ev)
	}
}

// Recorder is a [Sink] that keeps every event it receives,
// which is mostly useful for tests and tools.
type Recorder struct {
	Events []*events.Pan
}

func (r *Recorder) HandlePan(ev *events.Pan) {
	r.Events = append(r.Events, ev)
}

// States returns the state of each recorded event in order.
func (r *Recorder) States() []events.GestureStates {
	sts := make([]events.GestureStates, len(r.Events))
	for i, ev := range r.Events {
		sts[i] = ev.State
	}
	return sts
}

// Last returns the last recorded event, or nil if there are none.
func (r *Recorder) Last() *events.Pan {
	if len(r.Events) == 0 {
		return nil
	}
	return r.Events[len(r.Events)-1]
}

// Reset removes all recorded events. Slices of events
// taken before the reset are not changed by later events.
func (r *Recorder) Reset() {
	r.Events = nil
}
