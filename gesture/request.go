// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"

	"cogentcore.org/gesture/events"
)

// Kinds are the kinds of gesture that can be detected.
type Kinds int32

const (
	// Pan is a continuous drag of one or more contacts.
	Pan Kinds = iota
)

func (k Kinds) String() string {
	switch k {
	case Pan:
		return "Pan"
	}
	return fmt.Sprintf("Kinds(%d)", int32(k))
}

// Request asks for detection of a kind of gesture, with
// kind-specific requirements.
type Request interface {
	Kind() Kinds
}

// PanRequest asks for pan detection with the given inclusive
// bounds on the number of concurrent contacts.
type PanRequest struct {
	MinTouches int
	MaxTouches int
}

// SinglePan is the request for a pan with exactly one contact.
var SinglePan = PanRequest{MinTouches: 1, MaxTouches: 1}

func (pr PanRequest) Kind() Kinds {
	return Pan
}

// Validate returns an error if the bounds are not usable:
// MinTouches must be at least 1 and MaxTouches at least MinTouches.
func (pr PanRequest) Validate() error {
	if pr.MinTouches < 1 {
		return fmt.Errorf("gesture.PanRequest: MinTouches must be >= 1, not %d", pr.MinTouches)
	}
	if pr.MaxTouches < pr.MinTouches {
		return fmt.Errorf("gesture.PanRequest: MaxTouches %d must be >= MinTouches %d", pr.MaxTouches, pr.MinTouches)
	}
	return nil
}

// Detector turns touch samples into gesture events.
// Detectors are driven from a single goroutine.
type Detector interface {
	// Kind returns the kind of gesture detected.
	Kind() Kinds

	// ProcessSample handles one touch sample, emitting any
	// resulting gesture events before it returns.
	ProcessSample(t *events.Touch)

	// Update applies new requirements from a request of the same kind.
	Update(req Request)
}
