// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/styles"
)

func TestStackLayoutVertical(t *testing.T) {
	sl := NewStackLayout(styles.Vertical)
	sl.SetSpacing(10)
	a := NewSpacer(200, 20)
	b := NewSpacer(200, 0)
	b.SetStretch(styles.StretchHeight)
	sl.Add(a)
	sl.Add(b)
	sl.SetRect(geom.R(0, 0, 200, 100))

	assert.Equal(t, geom.R(0, 0, 200, 20), a.RelativeRect())
	assert.Equal(t, geom.R(0, 30, 200, 70), b.RelativeRect())
}

func TestStackLayoutHorizontal(t *testing.T) {
	sl := NewStackLayout(styles.Horizontal)
	sl.SetSpacing(5)
	a := NewSpacer(50, 10)
	a.SetAlign(styles.AlignMiddle)
	b := NewSpacer(0, 0)
	b.SetStretch(styles.StretchBoth)
	c := NewSpacer(30, 10)
	c.SetAlign(styles.AlignBottom)
	c.SetMargin(geom.Border{Right: 2, Bottom: 3})
	sl.Add(a)
	sl.Add(b)
	sl.Add(c)
	sl.SetRect(geom.R(0, 0, 300, 40))

	assert.Equal(t, geom.R(0, 15, 50, 10), a.RelativeRect())
	assert.Equal(t, geom.R(55, 0, 208, 40), b.RelativeRect())
	assert.Equal(t, geom.R(268, 27, 30, 10), c.RelativeRect())
}

func TestStackLayoutStretchRemainder(t *testing.T) {
	sl := NewStackLayout(styles.Vertical)
	sl.SetSpacing(2)
	fixed := NewSpacer(10, 10)
	sl.Add(fixed)
	var ss []*Spacer
	for range 3 {
		s := NewSpacer(10, 0)
		s.SetStretch(styles.StretchHeight)
		sl.Add(s)
		ss = append(ss, s)
	}
	sl.SetRect(geom.R(0, 0, 10, 101))

	assert.Equal(t, geom.R(0, 0, 10, 10), fixed.RelativeRect())
	assert.Equal(t, geom.R(0, 12, 10, 28), ss[0].RelativeRect())
	assert.Equal(t, geom.R(0, 42, 10, 28), ss[1].RelativeRect())
	assert.Equal(t, geom.R(0, 72, 10, 29), ss[2].RelativeRect())
}

// TestStackLayoutPartition checks that stretching children always fill
// the layout exactly, without gaps or overlaps.
func TestStackLayoutPartition(t *testing.T) {
	for _, dir := range []styles.Directions{styles.Vertical, styles.Horizontal} {
		for extent := 40; extent <= 160; extent += 7 {
			sl := NewStackLayout(dir)
			sl.SetSpacing(3)
			sl.Add(NewSpacer(8, 8))
			for range 4 {
				s := NewSpacer(8, 8)
				s.SetStretch(styles.StretchBoth)
				sl.Add(s)
			}
			if dir == styles.Vertical {
				sl.SetRect(geom.R(0, 0, 20, extent))
			} else {
				sl.SetRect(geom.R(0, 0, extent, 20))
			}

			pos := 0
			sl.ForWidgetChildren(func(i int, cw Widget, cwb *WidgetBase) bool {
				r := cwb.RelativeRect()
				start, size := r.Y, r.H
				if dir == styles.Horizontal {
					start, size = r.X, r.W
				}
				if i > 0 {
					pos += 3
				}
				assert.Equal(t, pos, start, "dir %v extent %d child %d", dir, extent, i)
				pos += size
				return true
			})
			assert.Equal(t, extent, pos, "dir %v", dir)
		}
	}
}

func TestStackLayoutDeterministic(t *testing.T) {
	build := func() []geom.Rect {
		sl := NewStackLayout(styles.Horizontal)
		sl.SetSpacing(4)
		for i := range 5 {
			s := NewSpacer(10+i, 10)
			if i%2 == 1 {
				s.SetStretch(styles.StretchWidth)
			}
			sl.Add(s)
		}
		sl.SetRect(geom.R(3, 4, 97, 30))
		var rs []geom.Rect
		sl.ForWidgetChildren(func(i int, cw Widget, cwb *WidgetBase) bool {
			rs = append(rs, cwb.RelativeRect())
			return true
		})
		// laying out again must not change anything
		sl.SetRect(geom.R(3, 4, 97, 30))
		sl.ForWidgetChildren(func(i int, cw Widget, cwb *WidgetBase) bool {
			assert.Equal(t, rs[i], cwb.RelativeRect())
			return true
		})
		return rs
	}
	assert.Equal(t, build(), build())
}

func TestStackLayoutMargins(t *testing.T) {
	sl := NewStackLayout(styles.Vertical)
	sl.SetSpacing(10)
	a := NewSpacer(100, 20)
	a.SetMargin(geom.Border{Top: 5, Bottom: 5})
	b := NewSpacer(100, 10)
	b.SetStretch(styles.StretchWidth)
	b.SetMargin(geom.Border{Left: 4, Right: 6})
	sl.Add(a)
	sl.Add(b)
	sl.SetRect(geom.R(0, 0, 200, 100))

	assert.Equal(t, geom.R(0, 5, 100, 20), a.RelativeRect())
	assert.Equal(t, geom.R(4, 40, 190, 10), b.RelativeRect())
}

func TestStackLayoutCrossAlign(t *testing.T) {
	sl := NewStackLayout(styles.Vertical)
	a := NewSpacer(40, 10)
	a.SetAlign(styles.AlignCenter)
	b := NewSpacer(40, 10)
	b.SetAlign(styles.AlignRight)
	b.SetMargin(geom.Border{Right: 5})
	c := NewSpacer(40, 10)
	c.SetMargin(geom.Border{Left: 7})
	sl.Add(a)
	sl.Add(b)
	sl.Add(c)
	sl.SetRect(geom.R(0, 0, 100, 30))

	assert.Equal(t, geom.R(30, 0, 40, 10), a.RelativeRect())
	assert.Equal(t, geom.R(55, 10, 40, 10), b.RelativeRect())
	assert.Equal(t, geom.R(7, 20, 40, 10), c.RelativeRect())
}

func TestStackLayoutInvisible(t *testing.T) {
	sl := NewStackLayout(styles.Vertical)
	sl.SetSpacing(10)
	a := NewSpacer(200, 20)
	b := NewSpacer(200, 0)
	b.SetStretch(styles.StretchHeight)
	sl.Add(a)
	sl.Add(b)
	sl.SetRect(geom.R(0, 0, 200, 100))

	a.SetVisible(false)
	assert.Equal(t, geom.R(0, 0, 200, 100), b.RelativeRect())

	a.SetVisible(true)
	assert.Equal(t, geom.R(0, 30, 200, 70), b.RelativeRect())
}

func TestStackLayoutRelayout(t *testing.T) {
	sl := NewStackLayout(styles.Vertical)
	a := NewSpacer(200, 20)
	b := NewSpacer(200, 0)
	b.SetStretch(styles.StretchHeight)
	sl.Add(a)
	sl.Add(b)
	sl.SetRect(geom.R(0, 0, 200, 100))
	assert.Equal(t, geom.R(0, 20, 200, 80), b.RelativeRect())

	sl.SetSpacing(20)
	assert.Equal(t, geom.R(0, 40, 200, 60), b.RelativeRect())

	a.SetHeight(30)
	assert.Equal(t, geom.R(0, 50, 200, 50), b.RelativeRect())

	sl.SetDirection(styles.Horizontal)
	assert.Equal(t, geom.R(0, 0, 200, 30), a.RelativeRect())
	assert.Equal(t, 220, b.RelativeRect().X)
}

func TestStackLayoutOverflow(t *testing.T) {
	sl := NewStackLayout(styles.Vertical)
	var ss []*Spacer
	for range 3 {
		s := NewSpacer(10, 50)
		sl.Add(s)
		ss = append(ss, s)
	}
	stretch := NewSpacer(10, 0)
	stretch.SetStretch(styles.StretchHeight)
	sl.Add(stretch)
	sl.SetRect(geom.R(0, 0, 10, 100))

	// the children are neither shrunk nor clipped
	for i, s := range ss {
		assert.Equal(t, geom.R(0, 50*i, 10, 50), s.RelativeRect())
	}
	assert.Equal(t, 0, stretch.Height())
}

func TestStackLayoutMeasured(t *testing.T) {
	mw, _ := newTestMainWindow()
	sl := NewStackLayout(styles.Vertical)
	sl.SetSize(300, 200)
	mw.Add(sl)
	ok := NewButton("OK")
	cancel := NewButton("Cancel")
	sl.Add(ok)
	sl.Add(cancel)

	// 7x13 font, 8x4 button padding
	require.Equal(t, geom.Sz(30, 21), ok.Size())
	assert.Equal(t, geom.R(0, 0, 30, 21), ok.RelativeRect())
	assert.Equal(t, geom.R(0, 21, 58, 21), cancel.RelativeRect())
}
