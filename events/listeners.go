// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closures with all context
// captured, registered on specific widgets.
type Listeners map[Types][]func(e *Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(*Event))
}

// Add adds a function for the given type.
func (ls *Listeners) Add(typ Types, fun func(e *Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions registered for the type of the given
// event, in registration order.
func (ls Listeners) Call(e *Event) {
	for _, fun := range ls[e.Type] {
		fun(e)
	}
}

// Len returns the number of functions registered for the given type.
func (ls Listeners) Len(typ Types) int {
	return len(ls[typ])
}
