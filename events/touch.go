// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"

	"cogentcore.org/gesture/math32"
)

// PointStates is the lifecycle state of one touch contact
// within a [Touch] sample.
type PointStates int32

const (
	// PointDown is when the contact first touches the surface.
	PointDown PointStates = iota

	// PointUp is when the contact is lifted.
	PointUp

	// PointMotion is when the contact has moved since the last sample.
	PointMotion

	// PointStationary is when the contact is still down but has not moved,
	// typically because another contact changed state.
	PointStationary

	// PointInterrupted is when the system has taken over the input,
	// and all tracking of the contact must stop.
	PointInterrupted
)

var pointStatesNames = [...]string{
	PointDown:        "Down",
	PointUp:          "Up",
	PointMotion:      "Motion",
	PointStationary:  "Stationary",
	PointInterrupted: "Interrupted",
}

func (ps PointStates) String() string {
	if ps >= 0 && int(ps) < len(pointStatesNames) {
		return pointStatesNames[ps]
	}
	return fmt.Sprintf("PointStates(%d)", int32(ps))
}

// SetString sets the state from its string representation,
// ignoring case.
func (ps *PointStates) SetString(s string) error {
	for i, nm := range pointStatesNames {
		if strings.EqualFold(nm, s) {
			*ps = PointStates(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type PointStates", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (ps PointStates) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(ps.String())), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (ps *PointStates) UnmarshalText(text []byte) error {
	return ps.SetString(string(text))
}

// Point is the state of one touch contact in a [Touch] sample.
type Point struct {

	// ID identifies the contact across samples.
	ID int

	// State is the lifecycle state of the contact in this sample.
	State PointStates

	// Screen is the position of the contact in screen coordinates.
	Screen math32.Vector2
}

// Touch is one low-level touch sample, sent whenever any contact
// changes state. The first point is the primary contact, and
// gesture recognition is driven by its state.
type Touch struct {
	Base

	// Points has every active contact, primary first.
	// It is never empty.
	Points []Point

	// Time is the monotonic time of the sample in milliseconds.
	Time uint64
}

// NewTouch returns a new touch sample at the given time with the given points.
func NewTouch(time uint64, points ...Point) *Touch {
	ev := &Touch{}
	ev.Typ = TouchSample
	ev.SetUnique()
	ev.Points = points
	ev.Time = time
	return ev
}

// NewSingleTouch returns a new touch sample with a single contact.
func NewSingleTouch(state PointStates, where math32.Vector2, time uint64) *Touch {
	return NewTouch(time, Point{State: state, Screen: where})
}

// PointCount returns the number of active contacts.
func (ev *Touch) PointCount() int {
	return len(ev.Points)
}

// Primary returns the primary contact.
func (ev *Touch) Primary() Point {
	return ev.Points[0]
}

// AnySecondaryIn returns whether any contact after the primary
// one has the given state.
func (ev *Touch) AnySecondaryIn(state PointStates) bool {
	if len(ev.Points) < 2 {
		return false
	}
	for _, p := range ev.Points[1:] {
		if p.State == state {
			return true
		}
	}
	return false
}

func (ev *Touch) String() string {
	if len(ev.Points) == 0 {
		return fmt.Sprintf("%v{Points: 0, Time: %d}", ev.Type(), ev.Time)
	}
	p := ev.Primary()
	return fmt.Sprintf("%v{Primary: %v %v, Points: %d, Time: %d}", ev.Type(), p.State, p.Screen, len(ev.Points), ev.Time)
}
