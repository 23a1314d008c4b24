// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "widgetzero.org/wz/geom"

// Renderer draws widgets and measures text. WidgetZero does not draw
// anything itself; an application supplies a Renderer for its graphics
// API and passes it to [NewMainWindow]. All rects are absolute, and
// each draw call receives the clip rect the drawing must be limited to.
// The widget accessors (for example [Button.Text] or [List.ItemRect])
// give the renderer everything it needs to draw a widget.
type Renderer interface {
	// MeasureText returns the size of the given text, which may
	// contain several lines.
	MeasureText(text string) geom.Size

	// LineHeight returns the height of one line of text.
	LineHeight() int

	DrawWindow(w *Window, clip geom.Rect)
	DrawButton(b *Button, clip geom.Rect)
	DrawCheckbox(c *Checkbox, clip geom.Rect)
	DrawRadioButton(rb *RadioButton, clip geom.Rect)
	DrawLabel(l *Label, clip geom.Rect)
	DrawGroupBox(g *GroupBox, clip geom.Rect)
	DrawList(l *List, clip geom.Rect)
	DrawScroller(s *Scroller, clip geom.Rect)
	DrawCombo(c *Combo, clip geom.Rect)
	DrawTextEdit(te *TextEdit, clip geom.Rect)
	DrawTabButton(tb *TabButton, clip geom.Rect)
	DrawTabPage(tp *TabPage, clip geom.Rect)

	// DrawDockIcon draws the icon of the given dock edge at the given rect,
	// shown while a window is dragged.
	DrawDockIcon(edge DockEdge, r geom.Rect, clip geom.Rect)

	// DrawDockPreview draws the rect a dragged window will occupy
	// if it is released.
	DrawDockPreview(r geom.Rect, clip geom.Rect)
}
