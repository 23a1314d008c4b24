// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
)

// Combo is a drop-down chooser. Clicking it opens a [List] of its items
// below it, drawn above everything else with [DrawPriorityComboDropdown]
// and locking the input until it closes. The list is not clipped by the
// window of the combo. Choosing an item sends [events.ComboItemSelected];
// clicking anywhere else closes the list.
type Combo struct {
	WidgetBase
	list *List
	open bool
}

// NewCombo returns a new [Combo] of the given items, with nothing selected.
func NewCombo(items ...string) *Combo {
	c := &Combo{}
	initWidget(c)
	c.list.SetItems(items...)
	return c
}

func (c *Combo) Init() {
	c.WidgetBase.Init()
	c.list = NewList()
	c.list.setHidden(true)
	c.list.SetDrawPriority(DrawPriorityComboDropdown)
	c.list.ignoreWindowClip = true
	addPart(c, c.list, "dropdown")
	c.list.On(events.ListItemSelected, c.listItemSelected)
}

// Items returns the items of the combo.
func (c *Combo) Items() []string { return c.list.items }

// SetItems replaces the items of the combo and clears the selection.
func (c *Combo) SetItems(items ...string) {
	c.list.SetItems(items...)
	c.remeasure()
	c.refreshRect()
}

// Selected returns the index of the selected item, or -1.
func (c *Combo) Selected() int { return c.list.selected }

// SetSelected selects the item at the given index without sending an event.
func (c *Combo) SetSelected(index int) {
	c.list.SetSelected(index)
}

// Text returns the text of the selected item, or "".
func (c *Combo) Text() string {
	if i := c.list.selected; i >= 0 {
		return c.list.items[i]
	}
	return ""
}

// IsOpen returns whether the drop-down list is shown.
func (c *Combo) IsOpen() bool { return c.open }

// List returns the drop-down list.
func (c *Combo) List() *List { return c.list }

func (c *Combo) Measure() geom.Size {
	m := c.config().Metrics
	w := 0
	for _, it := range c.list.items {
		w = max(w, c.measureText(it).W)
	}
	return geom.Sz(w+2*m.ButtonPaddingX+m.ComboArrowWidth, c.lineHeight()+2*m.ButtonPaddingY)
}

// SetRect places the drop-down list right below the combo, as wide as it.
func (c *Combo) SetRect(r geom.Rect) {
	c.rect = r
	lm := c.list.Measure()
	c.list.SetRect(geom.R(0, r.H, r.W, lm.H))
}

func (c *Combo) Draw(r Renderer, clip geom.Rect) {
	r.DrawCombo(c, clip)
}

// Open shows the drop-down list.
func (c *Combo) Open() {
	if c.open {
		return
	}
	c.open = true
	c.list.setHidden(false)
	c.refreshRect()
	if c.mainWindow != nil {
		c.mainWindow.PushLockInput(c.this())
	}
}

// Close hides the drop-down list.
func (c *Combo) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.list.setHidden(true)
	c.list.hover = false
	if c.mainWindow != nil {
		c.mainWindow.PopLockInput(c.this())
	}
}

func (c *Combo) MouseButtonDown(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft {
		return
	}
	if c.open {
		if !c.list.hover {
			c.Close()
		}
		return
	}
	if c.hover {
		c.Open()
	}
}

func (c *Combo) listItemSelected(le *events.Event) {
	e := c.newEvent(events.ComboItemSelected)
	e.Index = le.Index
	e.OldValue = le.OldValue
	e.NewValue = le.NewValue
	e.Text = le.Text
	c.Close()
	c.send(e)
}
