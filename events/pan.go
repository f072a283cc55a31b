// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/gesture/math32"
)

// GestureStates is the phase of a continuous gesture.
type GestureStates int32

const (
	// Possible is when the gesture may start but has not yet.
	Possible GestureStates = iota

	// Started is the first event of a recognized gesture.
	Started

	// Continuing is every event between Started and Finished.
	Continuing

	// Finished is the last event of a recognized gesture.
	Finished

	// Cancelled is when the gesture was abandoned.
	Cancelled
)

var gestureStatesNames = [...]string{
	Possible:   "Possible",
	Started:    "Started",
	Continuing: "Continuing",
	Finished:   "Finished",
	Cancelled:  "Cancelled",
}

var gestureStatesTypes = [...]Types{
	Possible:   PanPossible,
	Started:    PanStart,
	Continuing: PanMove,
	Finished:   PanEnd,
	Cancelled:  PanCancel,
}

func (gs GestureStates) String() string {
	if gs >= 0 && int(gs) < len(gestureStatesNames) {
		return gestureStatesNames[gs]
	}
	return fmt.Sprintf("GestureStates(%d)", int32(gs))
}

// PanType returns the pan event [Types] for the state.
func (gs GestureStates) PanType() Types {
	if gs >= 0 && int(gs) < len(gestureStatesTypes) {
		return gestureStatesTypes[gs]
	}
	return UnknownType
}

// Pan is a pan gesture event, sent by a pan detector for each
// phase of the gesture.
type Pan struct {
	Base

	// State is the gesture phase.
	State GestureStates

	// Position is the current position of the primary contact,
	// possibly adjusted to phase in the pan threshold.
	Position math32.Vector2

	// PrevPosition is the position the gesture moved from,
	// which for Started is where the contact went down.
	PrevPosition math32.Vector2

	// TimeDelta is the time in milliseconds since PrevPosition.
	TimeDelta uint64

	// Time is the time of the touch sample that produced the event.
	Time uint64

	// NumTouches is the number of active contacts.
	NumTouches int
}

// NewPan returns a new pan event in the given state.
func NewPan(state GestureStates) *Pan {
	ev := &Pan{}
	ev.Typ = state.PanType()
	ev.SetUnique()
	ev.State = state
	return ev
}

// Delta returns the displacement since PrevPosition.
func (ev *Pan) Delta() math32.Vector2 {
	return ev.Position.Sub(ev.PrevPosition)
}

// Velocity returns the displacement per millisecond since PrevPosition,
// or zero if no time has elapsed.
func (ev *Pan) Velocity() math32.Vector2 {
	if ev.TimeDelta == 0 {
		return math32.Vector2{}
	}
	return ev.Delta().DivScalar(float32(ev.TimeDelta))
}

func (ev *Pan) String() string {
	return fmt.Sprintf("%v{Pos: %v, Prev: %v, Delta: %dms, Touches: %d, Time: %d}", ev.Type(), ev.Position, ev.PrevPosition, ev.TimeDelta, ev.NumTouches, ev.Time)
}
