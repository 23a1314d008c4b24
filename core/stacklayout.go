// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/styles"
)

// StackLayout arranges its visible children one after another along
// its direction, separated by its spacing.
//
// Children that stretch along the layout axis share the space left by
// the others evenly. Any pixels left over by the integer division go to
// the last stretching child, so the children always fill the layout
// exactly when at least one of them stretches. When none stretch and
// the children do not fit, they overflow the layout: they are neither
// clipped nor shrunk.
//
// Along the cross axis a child either stretches to the full extent of
// the layout minus its margins, or is aligned by its [styles.Align]
// flags (center, or the far edge for right and bottom), by default at
// the near edge plus its margin.
type StackLayout struct {
	WidgetBase

	direction styles.Directions
	spacing   int
}

// NewStackLayout returns a new [StackLayout] in the given direction.
func NewStackLayout(dir styles.Directions) *StackLayout {
	sl := &StackLayout{direction: dir}
	initWidget(sl)
	return sl
}

func (sl *StackLayout) Direction() styles.Directions { return sl.direction }

// SetDirection sets the direction of the layout.
func (sl *StackLayout) SetDirection(dir styles.Directions) {
	sl.direction = dir
	sl.layout()
}

func (sl *StackLayout) Spacing() int { return sl.spacing }

// SetSpacing sets the space between two consecutive children.
func (sl *StackLayout) SetSpacing(spacing int) {
	sl.spacing = spacing
	sl.layout()
}

func (sl *StackLayout) SetRect(r geom.Rect) {
	sl.rect = r
	sl.layout()
}

func (sl *StackLayout) canAddChild(child Widget) bool {
	return isPlainChild(child)
}

// span is one axis of a rect with the margins and flags of a child
// along it.
type span struct {
	pos, size       int
	lead, trail     int // margins
	stretch         bool
	center, farEdge bool
}

// axisSpans splits the rect, margin, stretch and align of the child into
// its spans along the main and cross axes of the given direction.
func axisSpans(dir styles.Directions, cwb *WidgetBase) (main, cross span) {
	r, m, a := cwb.rect, cwb.margin, cwb.align
	h := span{pos: r.X, size: r.W, lead: m.Left, trail: m.Right,
		stretch: cwb.stretch.Has(styles.StretchWidth),
		center:  a.Has(styles.AlignCenter), farEdge: a.Has(styles.AlignRight)}
	v := span{pos: r.Y, size: r.H, lead: m.Top, trail: m.Bottom,
		stretch: cwb.stretch.Has(styles.StretchHeight),
		center:  a.Has(styles.AlignMiddle), farEdge: a.Has(styles.AlignBottom)}
	if dir == styles.Horizontal {
		return h, v
	}
	return v, h
}

// axisRect assembles a rect from main and cross axis positions and sizes.
func axisRect(dir styles.Directions, mainPos, mainSize, crossPos, crossSize int) geom.Rect {
	if dir == styles.Horizontal {
		return geom.R(mainPos, crossPos, mainSize, crossSize)
	}
	return geom.R(crossPos, mainPos, crossSize, mainSize)
}

// layout computes the rects of the visible children.
func (sl *StackLayout) layout() {
	dir := sl.direction
	extent, crossExtent := sl.rect.H, sl.rect.W
	if dir == styles.Horizontal {
		extent, crossExtent = sl.rect.W, sl.rect.H
	}

	var kids []Widget
	sl.forVisibleChildren(func(i int, cw Widget, cwb *WidgetBase) bool {
		kids = append(kids, cw)
		return true
	})
	if len(kids) == 0 {
		return
	}

	// first pass: the space left for the stretching children
	avail := extent - sl.spacing*(len(kids)-1)
	nstretch, last := 0, -1
	for i, cw := range kids {
		main, _ := axisSpans(dir, cw.AsWidget())
		avail -= main.lead + main.trail
		if main.stretch {
			nstretch++
			last = i
		} else {
			avail -= main.size
		}
	}
	stretchSize, extra := 0, 0
	if nstretch > 0 && avail > 0 {
		stretchSize = avail / nstretch
		extra = avail - stretchSize*nstretch
	}

	// second pass: walk the cursor along the axis
	pos := 0
	for i, cw := range kids {
		main, cross := axisSpans(dir, cw.AsWidget())
		if i > 0 {
			pos += sl.spacing
		}
		pos += main.lead
		size := main.size
		if main.stretch {
			size = stretchSize
			if i == last {
				size += extra
			}
		}

		cpos, csize := cross.lead, cross.size
		switch {
		case cross.stretch:
			csize = crossExtent - cross.lead - cross.trail
		case cross.center:
			cpos = cross.lead + (crossExtent-cross.lead-cross.trail-csize)/2
		case cross.farEdge:
			cpos = crossExtent - csize - cross.trail
		}

		cw.SetRect(axisRect(dir, pos, size, cpos, csize))
		pos += size + main.trail
	}
}
