// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"slices"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/keymap"
	"widgetzero.org/wz/styles"
)

// List shows a column of text items, one of which can be selected.
// When the items do not fit, a vertical [Scroller] appears on the
// right. Clicking an item, or moving with the arrow keys while the
// list has the keyboard focus, selects it and sends
// [events.ListItemSelected].
type List struct {
	WidgetBase

	items    []string
	selected int
	hovered  int
	pressed  int

	// itemHeight is the height of one item, or 0 for the line
	// height of the renderer plus padding.
	itemHeight int

	scroller *Scroller
}

// NewList returns a new [List] of the given items.
func NewList(items ...string) *List {
	l := &List{items: slices.Clone(items)}
	initWidget(l)
	return l
}

func (l *List) Init() {
	l.WidgetBase.Init()
	l.selected, l.hovered, l.pressed = -1, -1, -1
	l.scroller = NewScroller(styles.Vertical, 0, 1, 0)
	l.scroller.setHidden(true)
	addPart(l, l.scroller, "scroller")
}

// Items returns the items of the list.
func (l *List) Items() []string { return l.items }

// SetItems replaces the items of the list and clears the selection.
func (l *List) SetItems(items ...string) {
	l.items = slices.Clone(items)
	l.selected, l.hovered, l.pressed = -1, -1, -1
	l.scroller.SetValue(0)
	l.remeasure()
	l.refreshRect()
}

// Selected returns the index of the selected item, or -1.
func (l *List) Selected() int { return l.selected }

// SetSelected selects the item at the given index, or nothing with -1,
// without sending an event.
func (l *List) SetSelected(index int) {
	if index < -1 || index >= len(l.items) {
		index = -1
	}
	l.selected = index
	l.scrollTo(index)
}

// Hovered returns the index of the item under the mouse, or -1.
func (l *List) Hovered() int { return l.hovered }

// Scroller returns the scroller of the list.
func (l *List) Scroller() *Scroller { return l.scroller }

// ItemHeight returns the height of one item.
func (l *List) ItemHeight() int {
	if l.itemHeight > 0 {
		return l.itemHeight
	}
	return max(l.lineHeight()+2*l.config().Metrics.ListItemPadding, 1)
}

// SetItemHeight sets the height of one item; 0 uses the line height of
// the renderer plus padding.
func (l *List) SetItemHeight(h int) {
	l.itemHeight = h
	l.remeasure()
	l.refreshRect()
}

func (l *List) acceptsKeyboardFocus() bool { return true }

func (l *List) Measure() geom.Size {
	m := l.config().Metrics
	w := 0
	for _, it := range l.items {
		w = max(w, l.measureText(it).W)
	}
	if w == 0 {
		return geom.Size{}
	}
	return geom.Sz(w+2*m.ListItemPadding+2*m.ListBorder, len(l.items)*l.ItemHeight()+2*m.ListBorder)
}

// innerRect returns the parent-relative rect inside the border.
func (l *List) innerRect() geom.Rect {
	return geom.R(0, 0, l.rect.W, l.rect.H).Inset(geom.Uniform(l.config().Metrics.ListBorder))
}

// ItemsRect returns the absolute rect the items are drawn in, inside the
// border and left of the scroller.
func (l *List) ItemsRect() geom.Rect {
	r := l.innerRect()
	if l.scroller.IsVisible() {
		r.W -= l.scroller.rect.W
	}
	return r.Add(l.Rect().Pos())
}

// ItemRect returns the absolute rect of the item at the given index,
// taking scrolling into account. It may lie outside of [List.ItemsRect].
func (l *List) ItemRect(index int) geom.Rect {
	ir := l.ItemsRect()
	ih := l.ItemHeight()
	return geom.R(ir.X, ir.Y+index*ih-l.scroller.value, ir.W, ih)
}

// itemAt returns the index of the item at the given absolute point, or -1.
func (l *List) itemAt(p geom.Position) int {
	ir := l.ItemsRect()
	if !ir.Contains(p) {
		return -1
	}
	i := (p.Y - ir.Y + l.scroller.value) / l.ItemHeight()
	if i >= len(l.items) {
		return -1
	}
	return i
}

func (l *List) SetRect(r geom.Rect) {
	l.rect = r
	l.updateScroller()
}

// updateScroller shows the scroller when the items do not fit.
func (l *List) updateScroller() {
	inner := l.innerRect()
	ih := l.ItemHeight()
	content := len(l.items) * ih
	if content <= inner.H || inner.H <= 0 {
		l.scroller.setHidden(true)
		l.scroller.SetMaxValue(0)
		return
	}
	size := l.config().Metrics.ScrollerSize
	l.scroller.setHidden(false)
	l.scroller.SetRect(geom.R(inner.Right()-size, inner.Y, size, inner.H))
	l.scroller.SetStepValue(ih)
	l.scroller.SetNubScale(float32(inner.H) / float32(content))
	l.scroller.SetMaxValue(content - inner.H)
}

// scrollTo scrolls the item at the given index into view.
func (l *List) scrollTo(index int) {
	if index < 0 || !l.scroller.IsVisible() {
		return
	}
	ih := l.ItemHeight()
	top := index * ih
	view := l.ItemsRect().H
	switch {
	case top < l.scroller.value:
		l.scroller.SetValue(top)
	case top+ih > l.scroller.value+view:
		l.scroller.SetValue(top + ih - view)
	}
}

func (l *List) ChildrenClipRect() (geom.Rect, bool) {
	return l.innerRect().Add(l.Rect().Pos()), true
}

func (l *List) Draw(r Renderer, clip geom.Rect) {
	r.DrawList(l, clip)
}

// selectItem selects the item at the given index and sends [events.ListItemSelected].
func (l *List) selectItem(index int) {
	old := l.selected
	l.selected = index
	l.scrollTo(index)
	e := l.newEvent(events.ListItemSelected)
	e.Index = index
	e.OldValue = old
	e.NewValue = index
	e.Text = l.items[index]
	l.send(e)
}

func (l *List) MouseMove(x, y, dx, dy int) {
	if !l.hover || l.scroller.hover {
		l.hovered = -1
		return
	}
	l.hovered = l.itemAt(geom.Pos(x, y))
}

func (l *List) MouseHoverOff() {
	l.hovered = -1
}

func (l *List) MouseButtonDown(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft || !l.hover || l.scroller.hover {
		l.pressed = -1
		return
	}
	l.setKeyboardFocus()
	l.pressed = l.itemAt(geom.Pos(x, y))
}

func (l *List) MouseButtonUp(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft {
		return
	}
	pressed := l.pressed
	l.pressed = -1
	if pressed >= 0 && pressed < len(l.items) && l.itemAt(geom.Pos(x, y)) == pressed {
		l.selectItem(pressed)
	}
}

func (l *List) MouseWheelMove(x, y int) {
	if l.scroller.hover || !l.scroller.IsVisible() {
		return
	}
	l.scroller.SetValue(l.scroller.value - y*l.ItemHeight())
}

func (l *List) KeyDown(code key.Code, mods key.Modifiers) {
	if len(l.items) == 0 {
		return
	}
	last := len(l.items) - 1
	page := max(l.ItemsRect().H/l.ItemHeight(), 1)
	switch l.keyFunction(code, mods) {
	case keymap.MoveUp:
		if l.selected > 0 {
			l.selectItem(l.selected - 1)
		} else if l.selected < 0 {
			l.selectItem(0)
		}
	case keymap.MoveDown:
		if l.selected < last {
			l.selectItem(l.selected + 1)
		}
	case keymap.PageUp:
		l.selectItem(max(l.selected-page, 0))
	case keymap.PageDown:
		l.selectItem(min(l.selected+page, last))
	case keymap.Home:
		l.selectItem(0)
	case keymap.End:
		l.selectItem(last)
	}
}
