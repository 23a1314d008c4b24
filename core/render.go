// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"slices"

	"widgetzero.org/wz/geom"
)

// Draw priorities. Widgets are drawn in ascending order of their
// effective draw priority (see [WidgetBase.EffectiveDrawPriority]),
// one full pass over the tree per distinct priority.
const (
	DrawPriorityDefault = 0

	// DrawPriorityWindowStart and DrawPriorityWindowEnd bound the band
	// used by floating windows. Each floating window gets its own
	// value, the topmost window the highest.
	DrawPriorityWindowStart = 1
	DrawPriorityWindowEnd   = 99

	DrawPriorityDockIcon      = 100
	DrawPriorityDockPreview   = 101
	DrawPriorityComboDropdown = 102

	DrawPriorityMax = 1023
)

// Rendering logic:
//
// DrawTree first collects the distinct effective priorities of all the
// displayed widgets, then runs one pass over the tree for each of them in
// ascending order. In the pass for priority P a widget is drawn if its
// effective priority is P, and once a widget has been drawn its
// descendants with a lower or equal priority are drawn in the same pass.
// Since effective priorities never decrease from parent to child, the
// children of a raised widget (a window being dragged, an open combo box
// dropdown) are drawn in the same pass as the widget itself, on top of
// everything with a lower priority.
//
// The clip rect starts as the rect of the root. A widget with a children
// clip rect restricts it for its descendants; when the intersection is
// empty the clip falls back to the rect of the root. Widgets that ignore
// the clip of their window (a combo box dropdown) start again from the
// rect of the root.

// DrawTree draws root and all of its displayed descendants with the
// given renderer, ordered by draw priority.
func DrawTree(r Renderer, root Widget) {
	rb := root.AsWidget()
	for _, p := range drawPriorities(root) {
		drawWidget(r, rb.Rect(), root, rb.Rect(), p, false)
	}
}

// drawPriorities returns the sorted distinct effective draw priorities
// of the displayed widgets under root.
func drawPriorities(root Widget) []int {
	var ps []int
	var collect func(w Widget)
	collect = func(w Widget) {
		wb := w.AsWidget()
		if !wb.IsVisible() || !wb.overlapsParentWindow() {
			return
		}
		p := wb.EffectiveDrawPriority()
		if !slices.Contains(ps, p) {
			ps = append(ps, p)
		}
		for _, c := range wb.Children {
			collect(c.(Widget))
		}
	}
	collect(root)
	slices.Sort(ps)
	return ps
}

// drawWidget draws w and its descendants for the pass of priority p.
// relaxed is set below a widget drawn in this pass.
func drawWidget(r Renderer, rootRect geom.Rect, w Widget, clip geom.Rect, p int, relaxed bool) {
	wb := w.AsWidget()
	if !wb.IsVisible() || !wb.overlapsParentWindow() {
		return
	}
	if wb.ignoreWindowClip {
		clip = rootRect
	}
	ep := wb.EffectiveDrawPriority()
	drawn := ep == p || (relaxed && ep < p)
	if drawn {
		w.Draw(r, clip)
	}
	if cr, ok := w.ChildrenClipRect(); ok {
		if ic, ok := geom.Intersect(clip, cr); ok {
			clip = ic
		} else {
			clip = rootRect
		}
	}
	for _, c := range wb.Children {
		drawWidget(r, rootRect, c.(Widget), clip, p, drawn)
	}
}
