// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Event is the interface for all events that flow through
// the [Queue] and [Listeners]. Concrete events embed [Base].
type Event interface {
	// Type returns the type of event.
	Type() Types

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so that later listeners do not receive it.
	SetHandled()

	// IsUnique returns whether this event must be sent,
	// and not subject to compression.
	IsUnique() bool

	String() string
}

// Base is the base type for events.
// It is designed to be embedded in concrete event types.
type Base struct {

	// Typ is the type of event
	Typ Types

	// Flags has the event properties
	Flags EventFlags
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) IsHandled() bool {
	return ev.Flags&Handled.bit() != 0
}

func (ev *Base) SetHandled() {
	ev.Flags |= Handled.bit()
}

// ClearHandled resets the handled flag, so the event
// can be delivered again.
func (ev *Base) ClearHandled() {
	ev.Flags &^= Handled.bit()
}

func (ev *Base) IsUnique() bool {
	return ev.Flags&Unique.bit() != 0
}

func (ev *Base) SetUnique() {
	ev.Flags |= Unique.bit()
}
