// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/gesture/events"
)

// Manager owns the gesture detectors for one input source and
// sends every touch sample to each of them. Like the detectors,
// it must only be used from one goroutine.
type Manager struct {
	opts      *Options
	sink      Sink
	detectors []Detector
	running   bool
}

// NewManager returns a new running [Manager] whose detectors use the
// given options and send their events to the given sink.
func NewManager(opts *Options, sink Sink) *Manager {
	slog.Debug("creating gesture manager", "options", opts.String())
	return &Manager{opts: opts, sink: sink, running: true}
}

// Running returns whether the manager has not been stopped.
func (m *Manager) Running() bool {
	return m.running
}

// Detectors returns the number of registered detectors.
func (m *Manager) Detectors() int {
	return len(m.detectors)
}

// Detector returns the first detector of the given kind, or nil.
func (m *Manager) Detector(kind Kinds) Detector {
	if i := m.index(kind); i >= 0 {
		return m.detectors[i]
	}
	return nil
}

// Register adds a detector for the given request.
// It panics for a request it does not know how to detect.
func (m *Manager) Register(req Request) {
	if !m.running {
		return
	}
	slog.Debug("registering gesture detector", "kind", req.Kind())
	switch r := req.(type) {
	case PanRequest:
		m.detectors = append(m.detectors, NewPanRecognizer(r, m.opts, m.sink))
	default:
		panic(fmt.Sprintf("gesture.Manager.Register: unsupported request %T", req))
	}
}

// Unregister removes the first detector of the given kind.
func (m *Manager) Unregister(kind Kinds) {
	if !m.running {
		return
	}
	if i := m.index(kind); i >= 0 {
		slog.Debug("unregistering gesture detector", "kind", kind)
		m.detectors = slices.Delete(m.detectors, i, i+1)
	}
}

// Update applies the given request to the first detector of its kind.
func (m *Manager) Update(req Request) {
	if i := m.index(req.Kind()); i >= 0 {
		slog.Debug("updating gesture detector", "kind", req.Kind())
		m.detectors[i].Update(req)
	}
}

// SendTouch sends the given touch sample to every detector.
// Detectors may be registered or unregistered by the sink while
// the sample is being handled; that only affects later samples.
func (m *Manager) SendTouch(t *events.Touch) {
	if !m.running {
		return
	}
	for _, d := range slices.Clone(m.detectors) {
		d.ProcessSample(t)
	}
}

// Stop removes all detectors. The manager ignores all later calls.
func (m *Manager) Stop() {
	if !m.running {
		return
	}
	slog.Debug("stopping gesture manager")
	m.detectors = nil
	m.running = false
}

func (m *Manager) index(kind Kinds) int {
	return slices.IndexFunc(m.detectors, func(d Detector) bool {
		return d.Kind() == kind
	})
}
