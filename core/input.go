// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/keymap"
	"widgetzero.org/wz/tree"
)

// Input dispatch:
//
// The application feeds all input to the entry points of the
// [MainWindow] defined here, with absolute coordinates.
//
// MouseMove first recomputes the hover state of every widget, then calls
// the MouseHoverOff and MouseHoverOn hooks of the widgets whose state
// changed, then the MouseMove hook of every displayed widget. Hover is
// computed independently per widget, so overlapping siblings can be
// hovered at the same time. A widget is hovered when it and its
// ancestors are visible, the point is inside its rect and inside the
// content area of its window, and no floating window above it covers
// the point.
//
// Mouse button and wheel events are delivered depth first from the root,
// descending only into hovered children.
//
// While the input is locked (see [MainWindow.PushLockInput]) all of the
// above is limited to the subtree of the locked widget, which always
// receives the hooks, hovered or not.
//
// Key and text events go to the widget with the keyboard focus.
//
// Functions queued with [WidgetBase.Defer] while an entry point runs
// are called once it has finished dispatching.

func (mw *MainWindow) beginDispatch() {
	mw.dispatching++
}

func (mw *MainWindow) endDispatch() {
	mw.dispatching--
	if mw.dispatching == 0 {
		mw.runDeferred()
	}
}

// runDeferred calls the deferred functions, including any deferred
// by those functions.
func (mw *MainWindow) runDeferred() {
	for len(mw.deferred) > 0 {
		fs := mw.deferred
		mw.deferred = nil
		for _, f := range fs {
			f()
		}
	}
}

// PushLockInput limits input to the given widget and its descendants
// until it is popped with [MainWindow.PopLockInput]. Locks nest.
func (mw *MainWindow) PushLockInput(w Widget) {
	mw.lockStack = append(mw.lockStack, w)
}

// PopLockInput removes the input lock of the given widget if it is the
// innermost one.
func (mw *MainWindow) PopLockInput(w Widget) {
	if n := len(mw.lockStack); n > 0 && mw.lockStack[n-1] == w {
		mw.lockStack = mw.lockStack[:n-1]
	}
}

// LockedInputWidget returns the widget input is locked to, or nil.
func (mw *MainWindow) LockedInputWidget() Widget {
	if n := len(mw.lockStack); n > 0 {
		return mw.lockStack[n-1]
	}
	return nil
}

// inputTarget returns the root of the subtree receiving input.
func (mw *MainWindow) inputTarget() Widget {
	if lw := mw.LockedInputWidget(); lw != nil {
		return lw
	}
	return mw
}

// SetKeyboardFocus gives the keyboard focus to the given widget,
// or removes it with nil.
func (mw *MainWindow) SetKeyboardFocus(w Widget) {
	mw.keyboardFocus = w
	mw.focusClaimed = true
}

// KeyboardFocus returns the widget with the keyboard focus, or nil.
func (mw *MainWindow) KeyboardFocus() Widget {
	return mw.keyboardFocus
}

// focusable is implemented by widgets that take the keyboard
// focus when tabbed to.
type focusable interface {
	acceptsKeyboardFocus() bool
}

// focusNext moves the keyboard focus to the next (or previous)
// displayed focusable widget in tree order, wrapping around.
func (mw *MainWindow) focusNext(backward bool) {
	var start tree.Node = mw
	if mw.keyboardFocus != nil {
		start = mw.keyboardFocus
	}
	n := start
	for {
		if backward {
			n = tree.Previous(n)
			if n == nil {
				n = tree.Last(mw)
			}
		} else {
			n = tree.Next(n)
			if n == nil {
				n = mw
			}
		}
		if n == start {
			return
		}
		if f, ok := n.(focusable); ok && f.acceptsKeyboardFocus() && AsWidget(n).IsDisplayed() {
			mw.SetKeyboardFocus(n.(Widget))
			return
		}
	}
}

// MouseMove handles the mouse moving to the given absolute position
// by the given delta.
func (mw *MainWindow) MouseMove(x, y, dx, dy int) {
	mw.beginDispatch()
	defer mw.endDispatch()
	mw.updateHover(geom.Pos(x, y))

	var move func(w Widget)
	move = func(w Widget) {
		wb := w.AsWidget()
		if wb.This == nil || !wb.IsVisible() {
			return
		}
		if w != Widget(mw) {
			w.MouseMove(x, y, dx, dy)
		}
		for _, c := range wb.childWidgets() {
			move(c)
		}
	}
	move(mw.inputTarget())
}

// updateHover recomputes the hover state of every widget for the
// given absolute position and calls the hover hooks.
func (mw *MainWindow) updateHover(p geom.Position) {
	mw.mouse = p
	hw := mw.hoverWindowAt(p)
	lw := mw.LockedInputWidget()
	var on, off []Widget
	var walk func(w Widget, displayed bool)
	walk = func(w Widget, displayed bool) {
		wb := w.AsWidget()
		displayed = displayed && wb.IsVisible()
		hover := displayed &&
			(lw == nil || tree.IsAncestor(lw, w)) &&
			wb.Rect().Contains(p) &&
			wb.pointInParentWindow(p) &&
			!occludedBy(wb, hw)
		if hover != wb.hover {
			wb.hover = hover
			if hover {
				on = append(on, w)
			} else {
				off = append(off, w)
			}
		}
		for _, c := range wb.Children {
			walk(c.(Widget), displayed)
		}
	}
	walk(mw, true)
	for _, w := range off {
		if w.AsWidget().This != nil {
			w.MouseHoverOff()
		}
	}
	for _, w := range on {
		if w.AsWidget().This != nil {
			w.MouseHoverOn()
		}
	}
}

// occludedBy returns whether the given widget is covered by the given
// hovered floating window: it is neither inside the window nor one of its
// ancestors, and it is drawn below the window.
func occludedBy(wb *WidgetBase, hw *Window) bool {
	if hw == nil || wb.window == hw || tree.IsAncestor(wb.This, hw) {
		return false
	}
	return wb.EffectiveDrawPriority() < hw.EffectiveDrawPriority()
}

// dispatchHovered calls fun on w and then on its hovered descendants,
// depth first, descending only into hovered children. w itself
// receives the call even when it is not hovered.
func dispatchHovered(w Widget, fun func(w Widget)) {
	wb := w.AsWidget()
	if wb.This == nil || !wb.IsVisible() {
		return
	}
	fun(w)
	for _, c := range wb.childWidgets() {
		if c.AsWidget().hover {
			dispatchHovered(c, fun)
		}
	}
}

// syncHover recomputes hover when a button or wheel event arrives at a
// position other than the last mouse move.
func (mw *MainWindow) syncHover(x, y int) {
	if p := geom.Pos(x, y); p != mw.mouse {
		mw.updateHover(p)
	}
}

// MouseButtonDown handles a mouse button press at the given absolute position.
// Clicking outside of the widget with the keyboard focus removes the focus,
// unless another widget takes it.
func (mw *MainWindow) MouseButtonDown(button mouse.Button, x, y int) {
	mw.beginDispatch()
	defer mw.endDispatch()
	mw.syncHover(x, y)
	mw.focusClaimed = false
	dispatchHovered(mw.inputTarget(), func(w Widget) {
		if w != Widget(mw) {
			w.MouseButtonDown(button, x, y)
		}
	})
	if !mw.focusClaimed && mw.keyboardFocus != nil && !mw.keyboardFocus.AsWidget().hover {
		mw.keyboardFocus = nil
	}
}

// MouseButtonUp handles a mouse button release at the given absolute position.
func (mw *MainWindow) MouseButtonUp(button mouse.Button, x, y int) {
	mw.beginDispatch()
	defer mw.endDispatch()
	mw.syncHover(x, y)
	dispatchHovered(mw.inputTarget(), func(w Widget) {
		if w != Widget(mw) {
			w.MouseButtonUp(button, x, y)
		}
	})
}

// MouseWheelMove handles the mouse wheel scrolling by the given amount,
// positive y being away from the user.
func (mw *MainWindow) MouseWheelMove(x, y int) {
	mw.beginDispatch()
	defer mw.endDispatch()
	dispatchHovered(mw.inputTarget(), func(w Widget) {
		if w != Widget(mw) {
			w.MouseWheelMove(x, y)
		}
	})
}

// focusTarget returns the widget with the keyboard focus if it can
// receive input, or nil.
func (mw *MainWindow) focusTarget() Widget {
	f := mw.keyboardFocus
	if f == nil || !f.AsWidget().IsDisplayed() {
		return nil
	}
	if lw := mw.LockedInputWidget(); lw != nil && !tree.IsAncestor(lw, f) {
		return nil
	}
	return f
}

// KeyDown handles a key press. The [keymap.FocusNext] and
// [keymap.FocusPrevious] keys (Tab and Shift+Tab by default) move the
// keyboard focus; other keys go to the focused widget.
func (mw *MainWindow) KeyDown(code key.Code, mods key.Modifiers) {
	mw.beginDispatch()
	defer mw.endDispatch()
	switch mw.keyMap.Of(code, mods) {
	case keymap.FocusNext:
		mw.focusNext(false)
		return
	case keymap.FocusPrevious:
		mw.focusNext(true)
		return
	}
	if f := mw.focusTarget(); f != nil {
		f.KeyDown(code, mods)
	}
}

// KeyUp handles a key release.
func (mw *MainWindow) KeyUp(code key.Code, mods key.Modifiers) {
	mw.beginDispatch()
	defer mw.endDispatch()
	if f := mw.focusTarget(); f != nil {
		f.KeyUp(code, mods)
	}
}

// TextInput handles text typed by the user.
func (mw *MainWindow) TextInput(text string) {
	mw.beginDispatch()
	defer mw.endDispatch()
	if f := mw.focusTarget(); f != nil {
		f.TextInput(text)
	}
}
