// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/geom"
)

// recorder is a container widget that logs every hook called on it.
type recorder struct {
	WidgetBase

	log *[]string

	// clip is returned by ChildrenClipRect when set.
	clip *geom.Rect

	// drawClip is the clip of the last draw.
	drawClip geom.Rect
}

func newRecorder(name string, log *[]string) *recorder {
	r := &recorder{log: log}
	initWidget(r)
	r.SetName(name)
	return r
}

func (r *recorder) logf(format string, args ...any) {
	*r.log = append(*r.log, fmt.Sprintf(format, args...))
}

func (r *recorder) canAddChild(child Widget) bool { return isPlainChild(child) }

func (r *recorder) ChildrenClipRect() (geom.Rect, bool) {
	if r.clip == nil {
		return geom.Rect{}, false
	}
	return *r.clip, true
}

func (r *recorder) Draw(rd Renderer, clip geom.Rect) {
	r.drawClip = clip
	r.logf("draw %s", r.Name)
}

func (r *recorder) Destroy() {
	if r.This == nil {
		return
	}
	name := r.Name
	r.WidgetBase.Destroy()
	r.logf("destroy %s", name)
}

func (r *recorder) MouseButtonDown(button mouse.Button, x, y int) {
	r.logf("down %s", r.Name)
}

func (r *recorder) MouseButtonUp(button mouse.Button, x, y int) {
	r.logf("up %s", r.Name)
}

func (r *recorder) MouseMove(x, y, dx, dy int) {
	r.logf("move %s", r.Name)
}

func (r *recorder) MouseWheelMove(x, y int) {
	r.logf("wheel %s", r.Name)
}

func (r *recorder) MouseHoverOn()  { r.logf("hover-on %s", r.Name) }
func (r *recorder) MouseHoverOff() { r.logf("hover-off %s", r.Name) }

func (r *recorder) KeyDown(code key.Code, mods key.Modifiers) {
	r.logf("key-down %s", r.Name)
}

func (r *recorder) TextInput(text string) {
	r.logf("text %s %s", r.Name, text)
}

// filterLog returns the entries of the log starting with the given prefix.
func filterLog(log []string, prefix string) []string {
	var res []string
	for _, s := range log {
		if strings.HasPrefix(s, prefix) {
			res = append(res, s)
		}
	}
	return res
}

// newTestMainWindow returns an 800x600 main window drawing to a new
// [RecordRenderer].
func newTestMainWindow() (*MainWindow, *RecordRenderer) {
	rr := NewRecordRenderer()
	mw := NewMainWindow(rr, nil)
	mw.SetSize(800, 600)
	return mw, rr
}

// click moves the mouse to the given point and clicks the left button there.
func click(mw *MainWindow, x, y int) {
	mw.MouseMove(x, y, 0, 0)
	mw.MouseButtonDown(mouse.ButtonLeft, x, y)
	mw.MouseButtonUp(mouse.ButtonLeft, x, y)
}

// clickOn clicks the center of the given widget.
func clickOn(mw *MainWindow, w Widget) {
	x, y := center(w)
	click(mw, x, y)
}

// center returns the center of the absolute rect of the widget.
func center(w Widget) (x, y int) {
	c := w.AsWidget().Rect().Center()
	return c.X, c.Y
}
