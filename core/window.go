// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/geom"
)

// Window is a floating window with a title header. It can only be
// added to a [MainWindow]. Dragging it by its header moves it, and
// releasing it over an edge of the main window docks it there.
// Children added to a window go to its content frame.
type Window struct {
	WidgetBase

	title   string
	content *Frame

	dragging   bool
	dragOffset geom.Position
}

// NewWindow returns a new [Window] with the given title.
func NewWindow(title string) *Window {
	w := &Window{title: title}
	initWidget(w)
	return w
}

func (w *Window) Init() {
	w.WidgetBase.Init()
	w.content = NewFrame()
	addPart(w, w.content, "content")
}

// Title returns the title shown in the header.
func (w *Window) Title() string { return w.title }

// SetTitle sets the title shown in the header.
func (w *Window) SetTitle(title string) {
	w.title = title
}

// Content returns the frame hosting the children of the window.
func (w *Window) Content() *Frame { return w.content }

// Add adds the given widget to the content of the window.
func (w *Window) Add(child Widget) {
	attach(w.content, child)
}

// Remove removes the given widget from the content of the window.
func (w *Window) Remove(child Widget) {
	detach(w.content, child)
}

// IsDragging returns whether the window is being dragged by its header.
func (w *Window) IsDragging() bool { return w.dragging }

// HeaderHeight returns the height of the title header.
func (w *Window) HeaderHeight() int {
	return w.lineHeight() + 2*w.config().Metrics.WindowHeaderPadding
}

// HeaderRect returns the absolute rect of the title header.
func (w *Window) HeaderRect() geom.Rect {
	b := w.config().Metrics.WindowBorder
	r := w.Rect()
	return geom.R(r.X+b, r.Y+b, r.W-2*b, w.HeaderHeight())
}

// contentRect returns the absolute rect of the content area.
func (w *Window) contentRect() geom.Rect {
	return w.content.Rect()
}

func (w *Window) SetRect(r geom.Rect) {
	w.rect = r
	b := w.config().Metrics.WindowBorder
	hh := w.HeaderHeight()
	w.content.SetRect(geom.R(b, b+hh, r.W-2*b, r.H-2*b-hh))
}

func (w *Window) ChildrenClipRect() (geom.Rect, bool) {
	return w.contentRect(), true
}

func (w *Window) Draw(r Renderer, clip geom.Rect) {
	r.DrawWindow(w, clip)
}

// MouseButtonDown raises the window, and starts dragging it when
// the header is pressed.
func (w *Window) MouseButtonDown(button mouse.Button, x, y int) {
	mw := w.mainWindow
	if mw == nil || w.Parent != mw.This {
		return
	}
	mw.raiseWindow(w)
	p := geom.Pos(x, y)
	if button == mouse.ButtonLeft && w.HeaderRect().Contains(p) {
		w.beginDrag(p)
	}
}

// beginDrag starts dragging the window from the given absolute point.
func (w *Window) beginDrag(p geom.Position) {
	mw := w.mainWindow
	w.dragging = true
	w.dragOffset = p.Sub(w.Rect().Pos())
	mw.PushLockInput(w)
	mw.beginWindowDrag(w)
}

func (w *Window) MouseMove(x, y, dx, dy int) {
	if !w.dragging {
		return
	}
	p := geom.Pos(x, y)
	pos := p.Sub(w.dragOffset).Sub(w.mainWindow.Rect().Pos())
	w.SetPosition(pos.X, pos.Y)
	w.mainWindow.updateWindowDrag(w, p)
}

func (w *Window) MouseButtonUp(button mouse.Button, x, y int) {
	if !w.dragging || button != mouse.ButtonLeft {
		return
	}
	w.dragging = false
	w.mainWindow.PopLockInput(w)
	w.mainWindow.endWindowDrag(w)
}
