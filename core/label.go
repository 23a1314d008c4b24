// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "widgetzero.org/wz/geom"

// Label displays text, which can span several lines.
type Label struct {
	WidgetBase
	text string
}

// NewLabel returns a new [Label] with the given text.
func NewLabel(text string) *Label {
	l := &Label{text: text}
	initWidget(l)
	return l
}

// Text returns the text of the label.
func (l *Label) Text() string { return l.text }

// SetText sets the text of the label and resizes it to fit,
// unless the user has set its size.
func (l *Label) SetText(text string) {
	l.text = text
	l.remeasure()
}

func (l *Label) Measure() geom.Size {
	return l.measureText(l.text)
}

func (l *Label) Draw(r Renderer, clip geom.Rect) {
	r.DrawLabel(l, clip)
}

// GroupBox is a frame with a title drawn over its top border.
// Children added to it go to its content frame, inside the border.
type GroupBox struct {
	WidgetBase
	label   string
	content *Frame
}

// NewGroupBox returns a new [GroupBox] with the given title.
func NewGroupBox(label string) *GroupBox {
	g := &GroupBox{label: label}
	initWidget(g)
	return g
}

func (g *GroupBox) Init() {
	g.WidgetBase.Init()
	g.content = NewFrame()
	addPart(g, g.content, "content")
}

// Label returns the title of the group box.
func (g *GroupBox) Label() string { return g.label }

// SetLabel sets the title of the group box.
func (g *GroupBox) SetLabel(label string) {
	g.label = label
	g.remeasure()
}

// Content returns the frame hosting the children of the group box.
func (g *GroupBox) Content() *Frame { return g.content }

// Add adds the given widget to the content of the group box.
func (g *GroupBox) Add(child Widget) {
	attach(g.content, child)
}

// Remove removes the given widget from the content of the group box.
func (g *GroupBox) Remove(child Widget) {
	detach(g.content, child)
}

func (g *GroupBox) Measure() geom.Size {
	m := g.config().Metrics.GroupBoxMargin
	ts := g.measureText(g.label)
	return geom.Sz(ts.W+4*m, g.lineHeight()+2*m)
}

func (g *GroupBox) SetRect(r geom.Rect) {
	g.rect = r
	m := g.config().Metrics.GroupBoxMargin
	lh := g.lineHeight()
	g.content.SetRect(geom.R(m, lh+m, r.W-2*m, r.H-lh-2*m))
}

func (g *GroupBox) ChildrenClipRect() (geom.Rect, bool) {
	return g.content.Rect(), true
}

func (g *GroupBox) Draw(r Renderer, clip geom.Rect) {
	r.DrawGroupBox(g, clip)
}
