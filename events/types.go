// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the high-level semantic events that widgets
// synthesize from low-level input, and the per-widget listener lists
// they are delivered to.
package events

import "fmt"

// Types determines the type of a semantic widget event.
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// ButtonPressed is sent when a button is pressed down.
	ButtonPressed

	// ButtonClicked is sent when a button is released while hovered
	// after having been pressed.
	ButtonClicked

	// CheckboxToggled is sent when a checkbox changes state.
	// [Event.Checked] holds the new state.
	CheckboxToggled

	// RadioButtonSelected is sent when a radio button becomes the
	// selected button of its group.
	RadioButtonSelected

	// ListItemSelected is sent when a list item is selected.
	// [Event.Index] holds the selected item index.
	ListItemSelected

	// ComboItemSelected is sent when a combo selection changes.
	// [Event.Index] holds the selected item index.
	ComboItemSelected

	// ScrollerValueChanged is sent when a scroller value changes.
	// [Event.OldValue] and [Event.NewValue] hold the values.
	ScrollerValueChanged

	// TabBarTabChanged is sent when the selected tab changes.
	// [Event.Tab] is the newly selected tab and [Event.Index] its index.
	TabBarTabChanged

	// TabBarTabAdded is sent when a tab is added.
	TabBarTabAdded

	// TabBarTabRemoved is sent when a tab is removed, before it is destroyed.
	TabBarTabRemoved

	// TextEditChanged is sent when the text of a text edit changes.
	// [Event.Text] holds the new text.
	TextEditChanged

	// WindowDocked is sent by the main window after a window has been
	// docked. [Event.Edge] is the dock edge and [Event.Tab] the new tab.
	WindowDocked

	// WindowUndocked is sent by the main window after a docked tab has
	// been turned back into a floating window. [Event.Window] is the window.
	WindowUndocked

	typesN
)

var typeNames = [...]string{
	UnknownType:          "UnknownType",
	ButtonPressed:        "ButtonPressed",
	ButtonClicked:        "ButtonClicked",
	CheckboxToggled:      "CheckboxToggled",
	RadioButtonSelected:  "RadioButtonSelected",
	ListItemSelected:     "ListItemSelected",
	ComboItemSelected:    "ComboItemSelected",
	ScrollerValueChanged: "ScrollerValueChanged",
	TabBarTabChanged:     "TabBarTabChanged",
	TabBarTabAdded:       "TabBarTabAdded",
	TabBarTabRemoved:     "TabBarTabRemoved",
	TextEditChanged:      "TextEditChanged",
	WindowDocked:         "WindowDocked",
	WindowUndocked:       "WindowUndocked",
}

func (t Types) String() string {
	if t < 0 || t >= typesN {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typeNames[t]
}

// TypesValues returns all valid event types.
func TypesValues() []Types {
	vs := make([]Types, 0, typesN)
	for t := UnknownType; t < typesN; t++ {
		vs = append(vs, t)
	}
	return vs
}
