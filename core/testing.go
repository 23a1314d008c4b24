// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/paint"
)

// DrawCall is one call recorded by a [RecordRenderer].
type DrawCall struct {

	// Kind is the name of the draw method without its Draw prefix,
	// for example "Button".
	Kind string

	// Widget is the widget drawn, or nil for dock icons and previews.
	Widget Widget

	// Rect is the absolute rect drawn.
	Rect geom.Rect

	// Clip is the clip rect passed to the call.
	Clip geom.Rect
}

func (dc DrawCall) String() string {
	name := ""
	if dc.Widget != nil {
		name = " " + dc.Widget.AsTree().Name
	}
	return fmt.Sprintf("%s%s %v clip %v", dc.Kind, name, dc.Rect, dc.Clip)
}

// RecordRenderer is a [Renderer] that records every draw call instead
// of drawing. It measures text with a fixed 7x13 font. It is used for
// testing, and by the wz command to print the draw order of a scene.
type RecordRenderer struct {
	Face  *paint.Face
	Calls []DrawCall
}

// NewRecordRenderer returns a new [RecordRenderer] using [paint.FixedFace].
func NewRecordRenderer() *RecordRenderer {
	return &RecordRenderer{Face: paint.FixedFace()}
}

// Reset clears the recorded calls.
func (rr *RecordRenderer) Reset() {
	rr.Calls = nil
}

// Names returns the names of the widgets drawn, in draw order.
// Calls without a widget are reported by their kind.
func (rr *RecordRenderer) Names() []string {
	names := make([]string, len(rr.Calls))
	for i, dc := range rr.Calls {
		if dc.Widget != nil {
			names[i] = dc.Widget.AsTree().Name
		} else {
			names[i] = dc.Kind
		}
	}
	return names
}

// CallFor returns the last call that drew the given widget.
func (rr *RecordRenderer) CallFor(w Widget) (DrawCall, bool) {
	for i := len(rr.Calls) - 1; i >= 0; i-- {
		if rr.Calls[i].Widget == w {
			return rr.Calls[i], true
		}
	}
	return DrawCall{}, false
}

func (rr *RecordRenderer) String() string {
	var b strings.Builder
	for _, dc := range rr.Calls {
		b.WriteString(dc.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (rr *RecordRenderer) record(kind string, w Widget, clip geom.Rect) {
	rr.Calls = append(rr.Calls, DrawCall{Kind: kind, Widget: w, Rect: w.AsWidget().Rect(), Clip: clip})
}

func (rr *RecordRenderer) MeasureText(text string) geom.Size { return rr.Face.MeasureText(text) }
func (rr *RecordRenderer) LineHeight() int                   { return rr.Face.LineHeight() }

func (rr *RecordRenderer) DrawWindow(w *Window, clip geom.Rect) { rr.record("Window", w, clip) }
func (rr *RecordRenderer) DrawButton(b *Button, clip geom.Rect) { rr.record("Button", b, clip) }
func (rr *RecordRenderer) DrawLabel(l *Label, clip geom.Rect)   { rr.record("Label", l, clip) }
func (rr *RecordRenderer) DrawList(l *List, clip geom.Rect)     { rr.record("List", l, clip) }
func (rr *RecordRenderer) DrawCombo(c *Combo, clip geom.Rect)   { rr.record("Combo", c, clip) }
func (rr *RecordRenderer) DrawGroupBox(g *GroupBox, clip geom.Rect) {
	rr.record("GroupBox", g, clip)
}
func (rr *RecordRenderer) DrawCheckbox(c *Checkbox, clip geom.Rect) {
	rr.record("Checkbox", c, clip)
}
func (rr *RecordRenderer) DrawRadioButton(b *RadioButton, clip geom.Rect) {
	rr.record("RadioButton", b, clip)
}
func (rr *RecordRenderer) DrawScroller(s *Scroller, clip geom.Rect) {
	rr.record("Scroller", s, clip)
}
func (rr *RecordRenderer) DrawTextEdit(te *TextEdit, clip geom.Rect) {
	rr.record("TextEdit", te, clip)
}
func (rr *RecordRenderer) DrawTabButton(tb *TabButton, clip geom.Rect) {
	rr.record("TabButton", tb, clip)
}
func (rr *RecordRenderer) DrawTabPage(tp *TabPage, clip geom.Rect) {
	rr.record("TabPage", tp, clip)
}

func (rr *RecordRenderer) DrawDockIcon(edge DockEdge, r geom.Rect, clip geom.Rect) {
	rr.Calls = append(rr.Calls, DrawCall{Kind: "DockIcon-" + edge.String(), Rect: r, Clip: clip})
}

func (rr *RecordRenderer) DrawDockPreview(r geom.Rect, clip geom.Rect) {
	rr.Calls = append(rr.Calls, DrawCall{Kind: "DockPreview", Rect: r, Clip: clip})
}
