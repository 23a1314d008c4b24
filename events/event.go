// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"widgetzero.org/wz/tree"
)

// Event is a semantic widget event. Type selects which of the payload
// fields are meaningful; the doc of each [Types] value names them.
type Event struct {

	// Type is the type of the event.
	Type Types

	// Source is the widget that emitted the event.
	Source tree.Node

	// Index is a selected item or tab index.
	Index int

	// OldValue and NewValue are the values of a value change.
	OldValue, NewValue int

	// Checked is the new state of a toggle.
	Checked bool

	// Tab is the tab an event refers to.
	Tab tree.Node

	// Window is the new floating window of an undocking.
	Window tree.Node

	// Text is the new text of a text change.
	Text string

	// Edge is the dock edge of a docking event, as the index of a
	// core.DockEdge. Use core.EventDockEdge to read it.
	Edge int
}

// New returns a new event of the given type emitted by src.
func New(typ Types, src tree.Node) *Event {
	return &Event{Type: typ, Source: src}
}

func (e *Event) String() string {
	return fmt.Sprintf("%v{source: %v, index: %d, old: %d, new: %d}", e.Type, e.Source, e.Index, e.OldValue, e.NewValue)
}
