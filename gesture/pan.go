// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gesture/base/errors"
	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/math32"
)

const (
	// SlowPanThreshold is the time in milliseconds between the down
	// sample and the start of a pan beyond which the pan is slow, and
	// the pan distance threshold is phased in over the first events.
	SlowPanThreshold = 100

	// thresholdAdjustmentsNum / thresholdAdjustmentsDen is the number of
	// threshold adjustment steps per pixel of minimum pan distance.
	thresholdAdjustmentsNum = 2
	thresholdAdjustmentsDen = 3
)

// States are the classification states of a [PanRecognizer].
type States int32

const (
	// StateClear is when no pan candidate is being tracked.
	StateClear States = iota

	// StatePossible is when the required contacts are down
	// but have not yet moved far enough for a pan.
	StatePossible

	// StateStarted is when a pan is in progress.
	StateStarted

	// StateFinished is when a pan has ended but the primary
	// contact is still down.
	StateFinished

	// StateFailed is when a candidate was abandoned and the
	// primary contact is still down.
	StateFailed
)

var statesNames = [...]string{
	StateClear:    "Clear",
	StatePossible: "Possible",
	StateStarted:  "Started",
	StateFinished: "Finished",
	StateFailed:   "Failed",
}

func (st States) String() string {
	if st >= 0 && int(st) < len(statesNames) {
		return statesNames[st]
	}
	return fmt.Sprintf("States(%d)", int32(st))
}

// sample is the part of a touch sample kept in [sampleHistory].
type sample struct {
	pos  math32.Vector2
	time uint64
}

// sampleHistory is the sequence of samples of the current candidate.
// Only the two most recent samples are ever read, so only
// those are kept, along with the total count.
type sampleHistory struct {
	n    int
	last [2]sample
}

func (h *sampleHistory) push(t *events.Touch) {
	h.last[0] = h.last[1]
	h.last[1] = sample{pos: t.Primary().Screen, time: t.Time}
	h.n++
}

// previous returns the second most recent sample.
func (h *sampleHistory) previous() sample {
	return h.last[0]
}

func (h *sampleHistory) len() int {
	return h.n
}

func (h *sampleHistory) clear() {
	*h = sampleHistory{}
}

// PanRecognizer is a state machine that classifies a stream of touch
// samples into a pan gesture, sending [events.Pan] events to its [Sink].
// When a pan starts slowly, the jump by the minimum pan distance is
// spread over the first events instead of happening all at once.
//
// A PanRecognizer must only be used from one goroutine.
type PanRecognizer struct {
	sink Sink

	state      States
	minTouches int
	maxTouches int

	// minDistanceSquared is the squared distance the primary contact
	// must move from downPosition before a pan starts.
	minDistanceSquared float32

	// minMotionSamples is the number of motion samples needed
	// after the down sample before a pan can start.
	minMotionSamples int

	// totalAdjustments is the number of events over which the
	// pan threshold is phased in for a slow pan.
	totalAdjustments int

	downPosition math32.Vector2
	downTime     uint64
	motionCount  int
	history      sampleHistory

	// prevPosition is the last emitted, possibly adjusted, position.
	prevPosition math32.Vector2

	adjustmentsRemaining int
	adjustmentStep       math32.Vector2
}

// NewPanRecognizer returns a new [PanRecognizer] in [StateClear] for the
// given request, sending events to the given sink. The options are read
// once here; nil options use the defaults. It panics if the request is
// not valid or the sink is nil.
func NewPanRecognizer(req PanRequest, opts *Options, sink Sink) *PanRecognizer {
	if sink == nil {
		panic("gesture.NewPanRecognizer: nil Sink")
	}
	pr := &PanRecognizer{sink: sink}
	pr.Configure(req.MinTouches, req.MaxTouches)
	dist := opts.PanDistance()
	pr.minDistanceSquared = float32(dist * dist)
	pr.totalAdjustments = dist * thresholdAdjustmentsNum / thresholdAdjustmentsDen
	pr.minMotionSamples = opts.MotionSamples()
	return pr
}

// Kind returns [Pan].
func (pr *PanRecognizer) Kind() Kinds {
	return Pan
}

// State returns the current classification state.
func (pr *PanRecognizer) State() States {
	return pr.state
}

// Touches returns the inclusive bounds on the number of contacts.
func (pr *PanRecognizer) Touches() (minTouches, maxTouches int) {
	return pr.minTouches, pr.maxTouches
}

// Configure sets the inclusive bounds on the number of concurrent
// contacts for a pan. It may be called at any time; later samples are
// checked against the new bounds. It panics if minTouches < 1 or
// maxTouches < minTouches.
func (pr *PanRecognizer) Configure(minTouches, maxTouches int) {
	errors.Must(PanRequest{MinTouches: minTouches, MaxTouches: maxTouches}.Validate())
	pr.minTouches = minTouches
	pr.maxTouches = maxTouches
}

// Update implements [Detector] by calling [PanRecognizer.Configure]
// with the bounds of the given [PanRequest]. It panics for any other request.
func (pr *PanRecognizer) Update(req Request) {
	pan, ok := req.(PanRequest)
	if !ok {
		panic(fmt.Sprintf("gesture.PanRecognizer.Update: %v request is not a PanRequest", req.Kind()))
	}
	pr.Configure(pan.MinTouches, pan.MaxTouches)
}

// ProcessSample handles one touch sample. Any resulting pan events are
// sent to the sink before it returns; an Up sample that both starts and
// ends a pan sends Started and then Finished. The sample must have at
// least one point, and times must not decrease.
func (pr *PanRecognizer) ProcessSample(t *events.Touch) {
	primary := t.Primary().State

	if primary == events.PointInterrupted {
		if pr.state == StateStarted || pr.state == StatePossible {
			pr.history.push(t)
			pr.emit(events.Cancelled, t)
		}
		pr.clear(t)
		return
	}

	switch pr.state {
	case StateClear:
		if primary == events.PointDown && t.PointCount() == pr.minTouches {
			pr.begin(t)
			pr.setState(StatePossible, t)
			pr.emit(events.Possible, t)
			pr.history.push(t)
		}

	case StatePossible:
		n := t.PointCount()
		if !pr.inRange(n) {
			pr.emit(events.Cancelled, t)
			if n == 1 && primary == events.PointUp {
				pr.clear(t)
			} else {
				pr.setState(StateFailed, t)
			}
			return
		}
		switch primary {
		case events.PointMotion:
			pr.history.push(t)
			pr.motionCount++
			if pr.motionCount >= pr.minMotionSamples && pr.movedEnough(t) {
				pr.setState(StateStarted, t)
				pr.emit(events.Started, t)
			}
		case events.PointUp:
			if pr.movedEnough(t) {
				pr.emit(events.Started, t)
				pr.history.push(t)
				pr.emit(events.Finished, t)
			} else {
				pr.emit(events.Cancelled, t)
			}
			pr.clear(t)
		}

	case StateStarted:
		pr.history.push(t)
		n := t.PointCount()
		if !pr.inRange(n) {
			pr.emit(events.Finished, t)
			if n == 1 && primary == events.PointUp {
				pr.clear(t)
			} else {
				pr.setState(StateFinished, t)
			}
			return
		}
		switch primary {
		case events.PointMotion:
			pr.emit(events.Continuing, t)
		case events.PointUp:
			pr.emit(events.Finished, t)
			pr.clear(t)
		case events.PointStationary:
			// a secondary contact lifting takes us below the minimum
			if n == pr.minTouches && t.AnySecondaryIn(events.PointUp) {
				pr.emit(events.Finished, t)
				pr.setState(StateFinished, t)
			}
		}

	case StateFinished, StateFailed:
		if primary == events.PointUp {
			pr.clear(t)
		}
	}
}

func (pr *PanRecognizer) inRange(n int) bool {
	return n >= pr.minTouches && n <= pr.maxTouches
}

// movedEnough returns whether the primary contact is at least the
// minimum pan distance from where it went down.
func (pr *PanRecognizer) movedEnough(t *events.Touch) bool {
	return t.Primary().Screen.DistanceToSquared(pr.downPosition) >= pr.minDistanceSquared
}

// begin starts a new candidate at the given down sample.
func (pr *PanRecognizer) begin(t *events.Touch) {
	pr.downPosition = t.Primary().Screen
	pr.downTime = t.Time
	pr.motionCount = 0
	pr.history.clear()
	pr.prevPosition = pr.downPosition
	pr.adjustmentsRemaining = 0
	pr.adjustmentStep.SetZero()
}

// clear drops the current candidate and returns to [StateClear].
func (pr *PanRecognizer) clear(t *events.Touch) {
	pr.setState(StateClear, t)
	pr.history.clear()
	pr.downPosition.SetZero()
	pr.downTime = 0
	pr.motionCount = 0
}

func (pr *PanRecognizer) setState(st States, t *events.Touch) {
	if pr.state == st {
		return
	}
	slog.Debug("pan state", "from", pr.state, "to", st, "touches", t.PointCount(), "time", t.Time)
	pr.state = st
}

// emit builds the pan event for the given sample and sends it to the sink.
// Once there are at least two samples in the history, the previous
// position and time delta come from the last emitted position and the
// second most recent sample, except that Started measures from the down
// sample so the movement needed to start the pan is included. A slow
// start then sets up the threshold adjustment, which pulls each emitted
// position back toward the down position by a shrinking amount.
func (pr *PanRecognizer) emit(state events.GestureStates, t *events.Touch) {
	ev := events.NewPan(state)
	ev.Position = t.Primary().Screen
	ev.NumTouches = t.PointCount()
	ev.Time = t.Time

	if pr.history.len() > 1 {
		prevPos := pr.prevPosition
		prevTime := pr.history.previous().time

		if state == events.Started {
			prevPos = pr.downPosition
			prevTime = pr.downTime
			if elapsed(prevTime, t.Time) > SlowPanThreshold && pr.totalAdjustments > 0 {
				pr.adjustmentsRemaining = pr.totalAdjustments
				pr.adjustmentStep = ev.Position.Sub(prevPos).DivScalar(float32(pr.totalAdjustments))
			} else {
				pr.adjustmentsRemaining = 0
				pr.adjustmentStep.SetZero()
			}
		}

		ev.PrevPosition = prevPos
		ev.TimeDelta = elapsed(prevTime, t.Time)

		if pr.adjustmentsRemaining > 0 {
			pr.adjustmentsRemaining--
			ev.Position.SetSub(pr.adjustmentStep.MulScalar(float32(pr.adjustmentsRemaining)))
		}
		pr.prevPosition = ev.Position
	} else {
		ev.PrevPosition = ev.Position
	}

	pr.sink.HandlePan(ev)
}

// elapsed returns to - from, or 0 if time went backwards.
func elapsed(from, to uint64) uint64 {
	if to < from {
		return 0
	}
	return to - from
}
