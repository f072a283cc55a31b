// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific objects.
type Listeners map[Types][]func(ev Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// AddPan adds a function for every pan gesture type,
// receiving the event as a [Pan].
func (ls *Listeners) AddPan(fun func(ev *Pan)) {
	for typ := PanPossible; typ <= PanCancel; typ++ {
		ls.Add(typ, func(ev Event) {
			if pe, ok := ev.(*Pan); ok {
				fun(pe)
			}
		})
	}
}

// Len returns the number of functions registered for given type.
func (ls *Listeners) Len(typ Types) int {
	if *ls == nil {
		return 0
	}
	return len((*ls)[typ])
}

// Call calls all functions for given event.
// It goes in _reverse_ order to the last functions added are the first called
// and it stops when the event is marked as Handled.  This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}
