// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/styles"
)

// Frame is a plain container widget. It draws nothing itself, and
// places each of its children inside itself according to the stretch,
// alignment and margin of the child (see [placeChild]). A child without
// stretch or alignment keeps the position it was given.
type Frame struct {
	WidgetBase
}

// NewFrame returns a new [Frame].
func NewFrame() *Frame {
	f := &Frame{}
	initWidget(f)
	return f
}

func (fr *Frame) SetRect(r geom.Rect) {
	fr.rect = r
	placeChildren(&fr.WidgetBase)
}

func (fr *Frame) canAddChild(child Widget) bool {
	return isPlainChild(child)
}

// isPlainChild returns whether the widget can be a child of a plain
// container: anything but a window.
func isPlainChild(child Widget) bool {
	switch child.(type) {
	case *Window, *MainWindow:
		return false
	}
	return true
}

// placeChildren places the visible children of wb inside it.
func placeChildren(wb *WidgetBase) {
	area := geom.R(0, 0, wb.rect.W, wb.rect.H)
	wb.forVisibleChildren(func(i int, cw Widget, cwb *WidgetBase) bool {
		cw.SetRect(placeChild(area, cwb))
		return true
	})
}

// placeChild returns the rect of the child inside the given
// parent-relative area, according to the stretch, alignment and margin
// of the child. Along an axis without stretch or alignment the child
// keeps its current position.
func placeChild(area geom.Rect, cwb *WidgetBase) geom.Rect {
	r := cwb.rect
	m := cwb.margin
	a := cwb.align
	switch {
	case cwb.stretch.Has(styles.StretchWidth):
		r.X, r.W = area.X+m.Left, area.W-m.Horizontal()
	case a.Has(styles.AlignCenter):
		r.X = area.X + m.Left + (area.W-m.Horizontal()-r.W)/2
	case a.Has(styles.AlignRight):
		r.X = area.Right() - r.W - m.Right
	case a.Has(styles.AlignLeft):
		r.X = area.X + m.Left
	}
	switch {
	case cwb.stretch.Has(styles.StretchHeight):
		r.Y, r.H = area.Y+m.Top, area.H-m.Vertical()
	case a.Has(styles.AlignMiddle):
		r.Y = area.Y + m.Top + (area.H-m.Vertical()-r.H)/2
	case a.Has(styles.AlignBottom):
		r.Y = area.Bottom() - r.H - m.Bottom
	case a.Has(styles.AlignTop):
		r.Y = area.Y + m.Top
	}
	return r
}

// Spacer is an invisible widget that takes up space, typically
// stretched inside a [StackLayout] to push its siblings apart.
type Spacer struct {
	WidgetBase
}

// NewSpacer returns a new [Spacer] of the given size.
func NewSpacer(w, h int) *Spacer {
	s := &Spacer{}
	initWidget(s)
	s.SetSize(w, h)
	return s
}
