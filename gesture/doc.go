// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gesture recognizes gestures from streams of touch samples.
//
// A [PanRecognizer] classifies touch samples into pan gesture events,
// moving through the [States] Clear, Possible, Started, Finished and
// Failed, and sends [events.Pan] events to a [Sink]. A [Manager] sends
// each touch sample to all of its registered detectors.
//
// Detection is synchronous and single-threaded: events are sent to the
// sink before [PanRecognizer.ProcessSample] returns. Use a [QueueSink]
// to hand events to another goroutine.
package gesture
