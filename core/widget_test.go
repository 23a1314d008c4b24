// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/styles"
)

func TestAttachPanics(t *testing.T) {
	mw, _ := newTestMainWindow()
	f := NewFrame()
	inner := NewFrame()
	f.Add(inner)

	assert.Panics(t, func() { inner.Add(f) }, "cycle")
	assert.Panics(t, func() { f.Add(f) }, "self")
	assert.Panics(t, func() { NewFrame().Add(inner) }, "already attached")
	assert.Panics(t, func() { NewButton("b").Add(NewLabel("l")) }, "not a container")
	assert.Panics(t, func() { f.Add(NewWindow("w")) }, "window outside of a main window")
	assert.Panics(t, func() { f.Add(NewMainWindow(nil, nil)) }, "main window as a child")
	assert.Panics(t, func() { mw.Remove(NewLabel("loose")) }, "not a child")
	assert.NotPanics(t, func() { mw.Add(f) })
}

func TestWidgetNames(t *testing.T) {
	f := NewFrame()
	b := NewButton("one")
	l := NewLabel("two")
	f.Add(b)
	f.Add(l)
	assert.Equal(t, "button-0", b.Name)
	assert.Equal(t, "label-1", l.Name)

	sl := NewStackLayout(styles.Vertical)
	sl.SetName("column")
	f.Add(sl)
	assert.Equal(t, "column", sl.Name)
}

func TestWidgetBackReferences(t *testing.T) {
	mw, _ := newTestMainWindow()
	w := NewWindow("win")
	f := NewFrame()
	b := NewButton("b")
	f.Add(b)
	w.Add(f)
	assert.Nil(t, b.MainWindow())
	assert.Equal(t, w, b.Window())

	mw.Add(w)
	assert.Equal(t, mw, b.MainWindow())
	assert.Equal(t, w, b.Window())
	assert.Equal(t, mw, w.MainWindow())
	assert.Nil(t, w.Window())

	w.Remove(f)
	assert.Nil(t, f.Parent)
	assert.Nil(t, b.MainWindow())
	assert.Nil(t, b.Window())
	assert.False(t, b.IsDestroyed(), "removed widgets are not destroyed")

	mw.Add(f)
	assert.Equal(t, mw, b.MainWindow())
	assert.Nil(t, b.Window())
}

func TestWidgetDestroy(t *testing.T) {
	var log []string
	root := newRecorder("root", &log)
	a := newRecorder("a", &log)
	a1 := newRecorder("a1", &log)
	a2 := newRecorder("a2", &log)
	b := newRecorder("b", &log)
	root.Add(a)
	a.Add(a1)
	a.Add(a2)
	root.Add(b)
	data := &struct{ n int }{42}
	a.Metadata = data

	a.Destroy()
	assert.Equal(t, []string{"destroy a1", "destroy a2", "destroy a"}, log)
	assert.True(t, a.IsDestroyed())
	assert.True(t, a1.IsDestroyed())
	assert.Equal(t, 1, root.NumChildren())
	assert.Same(t, data, a.Metadata)
	assert.Equal(t, 42, data.n)

	log = nil
	root.Destroy()
	assert.Equal(t, []string{"destroy b", "destroy root"}, log)

	// destroying twice does nothing
	log = nil
	root.Destroy()
	assert.Empty(t, log)
}

func TestDestroyForgetsState(t *testing.T) {
	mw, _ := newTestMainWindow()
	f := NewFrame()
	te := NewTextEdit("")
	f.Add(te)
	mw.Add(f)
	mw.SetKeyboardFocus(te)
	mw.PushLockInput(f)

	f.Destroy()
	assert.Nil(t, mw.KeyboardFocus())
	assert.Nil(t, mw.LockedInputWidget())
	assert.Equal(t, 0, mw.Content().NumChildren())
}

func TestWidgetSize(t *testing.T) {
	mw, _ := newTestMainWindow()
	b := NewButton("OK")
	assert.Equal(t, geom.Size{}, b.Size(), "no renderer to measure with")
	mw.Add(b)
	assert.Equal(t, geom.Sz(30, 21), b.Size())

	b.SetWidth(100)
	assert.Equal(t, geom.Sz(100, 21), b.Size())
	b.SetText("Hello")
	assert.Equal(t, geom.Sz(100, 21), b.Size(), "the user size wins")
	b.SetWidth(0)
	assert.Equal(t, geom.Sz(51, 21), b.Size())

	l := NewLabel("two\nlines")
	mw.Add(l)
	assert.Equal(t, geom.Sz(35, 26), l.Size())
}

func TestWidgetRect(t *testing.T) {
	outer := NewFrame()
	outer.SetRect(geom.R(10, 20, 300, 300))
	inner := NewFrame()
	inner.SetRect(geom.R(5, 5, 100, 100))
	b := NewButton("b")
	b.SetRect(geom.R(1, 2, 3, 4))
	outer.Add(inner)
	inner.Add(b)

	assert.Equal(t, geom.R(1, 2, 3, 4), b.RelativeRect())
	assert.Equal(t, geom.R(16, 27, 3, 4), b.Rect())
	assert.Equal(t, geom.Pos(1, 2), b.Position())
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 4, b.Height())
}

func TestFramePlacement(t *testing.T) {
	f := NewFrame()
	stretched := NewSpacer(10, 10)
	stretched.SetStretch(styles.StretchBoth)
	stretched.SetMargin(geom.Uniform(5))
	centered := NewSpacer(20, 10)
	centered.SetAlign(styles.AlignCenter | styles.AlignMiddle)
	corner := NewSpacer(20, 10)
	corner.SetAlign(styles.AlignRight | styles.AlignBottom)
	corner.SetMargin(geom.Border{Right: 3, Bottom: 4})
	free := NewSpacer(20, 10)
	free.SetPosition(7, 8)
	f.Add(stretched)
	f.Add(centered)
	f.Add(corner)
	f.Add(free)
	f.SetRect(geom.R(0, 0, 100, 50))

	assert.Equal(t, geom.R(5, 5, 90, 40), stretched.RelativeRect())
	assert.Equal(t, geom.R(40, 20, 20, 10), centered.RelativeRect())
	assert.Equal(t, geom.R(77, 36, 20, 10), corner.RelativeRect())
	assert.Equal(t, geom.R(7, 8, 20, 10), free.RelativeRect())
}

func TestDrawPriority(t *testing.T) {
	f := NewFrame()
	b := NewButton("b")
	f.Add(b)
	f.SetDrawPriority(5)
	assert.Equal(t, 0, b.DrawPriority())
	assert.Equal(t, 5, b.EffectiveDrawPriority())
	b.SetDrawPriority(9)
	assert.Equal(t, 9, b.EffectiveDrawPriority())

	b.SetDrawPriority(5000)
	assert.Equal(t, DrawPriorityMax, b.DrawPriority())
	b.SetDrawPriority(-3)
	assert.Equal(t, DrawPriorityDefault, b.DrawPriority())
}

func TestWidgetVisibility(t *testing.T) {
	f := NewFrame()
	b := NewButton("b")
	f.Add(b)
	assert.True(t, b.IsDisplayed())
	f.SetVisible(false)
	assert.True(t, b.IsVisible())
	assert.False(t, b.IsDisplayed())
}

func TestMainWindowUpdate(t *testing.T) {
	mw, _ := newTestMainWindow()
	te := NewTextEdit("")
	mw.Add(te)
	hidden := NewTextEdit("")
	hidden.SetVisible(false)
	mw.Add(hidden)
	mw.SetKeyboardFocus(te)

	assert.True(t, te.ShowCursor())
	for range cursorBlinkUpdates {
		mw.Update()
	}
	assert.False(t, te.ShowCursor())
	assert.Equal(t, 0, hidden.updates)
}
