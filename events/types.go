// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of event, and also the
// level at which one can select which events to listen to.
// Raw input arrives as [Touch] samples, and the gesture
// detectors turn those into the higher-level Pan types.
// Unless otherwise noted, all events are marked as Unique,
// meaning they are always sent.
type Types int64

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// TouchSample is one low-level touch sample, carrying the state
	// and position of every active contact. See [Touch].
	TouchSample

	// PanPossible is sent when enough contacts are down for a pan
	// to begin, but they have not yet moved far enough.
	PanPossible

	// PanStart is sent once the contacts have moved the minimum pan
	// distance over the minimum number of motion samples.
	PanStart

	// PanMove is sent for every motion sample after PanStart.
	PanMove

	// PanEnd is sent when the pan completes, typically when the
	// primary contact is lifted.
	PanEnd

	// PanCancel is sent when a pan candidate is abandoned, either
	// before it started or because input was interrupted.
	PanCancel
)

var typesNames = [...]string{
	UnknownType: "UnknownType",
	TouchSample: "TouchSample",
	PanPossible: "PanPossible",
	PanStart:    "PanStart",
	PanMove:     "PanMove",
	PanEnd:      "PanEnd",
	PanCancel:   "PanCancel",
}

func (tp Types) String() string {
	if tp >= 0 && int(tp) < len(typesNames) {
		return typesNames[tp]
	}
	return fmt.Sprintf("Types(%d)", int64(tp))
}

// IsPan returns whether the type is one of the pan gesture types.
func (tp Types) IsPan() bool {
	return tp >= PanPossible && tp <= PanCancel
}

// EventFlags encode boolean event properties
type EventFlags int64

const (
	// Handled indicates that the event has been handled
	Handled EventFlags = iota

	// Unique indicates that the event is Unique and not
	// to be compressed with like events.
	Unique
)

// bit returns the bit mask for the flag.
func (fl EventFlags) bit() EventFlags {
	return 1 << fl
}
