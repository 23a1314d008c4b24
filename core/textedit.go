// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"slices"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/keymap"
)

// cursorBlinkUpdates is the number of [MainWindow.Update] calls the
// cursor of a [TextEdit] stays shown, then hidden.
const cursorBlinkUpdates = 30

// TextEdit is a single line text field. Clicking it takes the keyboard
// focus and places the cursor; typed text is inserted at the cursor.
// Every change sends [events.TextEditChanged].
type TextEdit struct {
	WidgetBase

	text   []rune
	cursor int

	// maxLength is the maximum number of runes, or 0 for no limit.
	maxLength int

	updates int
}

// NewTextEdit returns a new [TextEdit] holding the given text.
func NewTextEdit(text string) *TextEdit {
	te := &TextEdit{text: []rune(text)}
	te.cursor = len(te.text)
	initWidget(te)
	return te
}

// Text returns the text.
func (te *TextEdit) Text() string { return string(te.text) }

// SetText replaces the text without sending an event, and moves the
// cursor to its end.
func (te *TextEdit) SetText(text string) {
	te.text = []rune(text)
	if te.maxLength > 0 && len(te.text) > te.maxLength {
		te.text = te.text[:te.maxLength]
	}
	te.cursor = len(te.text)
}

// SetMaxLength limits the number of runes of the text; 0 means no limit.
func (te *TextEdit) SetMaxLength(n int) {
	te.maxLength = max(n, 0)
}

// Cursor returns the rune index of the cursor.
func (te *TextEdit) Cursor() int { return te.cursor }

// TextRect returns the absolute rect of the text inside the padding.
func (te *TextEdit) TextRect() geom.Rect {
	return te.Rect().Inset(geom.Uniform(te.config().Metrics.TextEditPadding))
}

// CursorX returns the absolute horizontal position of the cursor.
func (te *TextEdit) CursorX() int {
	return te.TextRect().X + te.measureText(string(te.text[:te.cursor])).W
}

// ShowCursor returns whether the blinking cursor is currently shown.
func (te *TextEdit) ShowCursor() bool {
	return te.HasKeyboardFocus() && (te.updates/cursorBlinkUpdates)%2 == 0
}

func (te *TextEdit) acceptsKeyboardFocus() bool { return true }

func (te *TextEdit) Measure() geom.Size {
	m := te.config().Metrics
	return geom.Sz(m.TextEditWidth, te.lineHeight()+2*m.TextEditPadding)
}

func (te *TextEdit) Draw(r Renderer, clip geom.Rect) {
	r.DrawTextEdit(te, clip)
}

func (te *TextEdit) Update() {
	te.updates++
}

// indexAt returns the rune index closest to the given absolute x.
func (te *TextEdit) indexAt(x int) int {
	rel := x - te.TextRect().X
	best, bestDist := 0, abs(rel)
	for i := 1; i <= len(te.text); i++ {
		if d := abs(rel - te.measureText(string(te.text[:i])).W); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (te *TextEdit) MouseButtonDown(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft || !te.hover {
		return
	}
	te.setKeyboardFocus()
	te.cursor = te.indexAt(x)
	te.updates = 0
}

func (te *TextEdit) KeyDown(code key.Code, mods key.Modifiers) {
	te.updates = 0
	switch te.keyFunction(code, mods) {
	case keymap.MoveLeft:
		te.cursor = max(te.cursor-1, 0)
	case keymap.MoveRight:
		te.cursor = min(te.cursor+1, len(te.text))
	case keymap.Home:
		te.cursor = 0
	case keymap.End:
		te.cursor = len(te.text)
	case keymap.Backspace:
		if te.cursor > 0 {
			te.text = slices.Delete(te.text, te.cursor-1, te.cursor)
			te.cursor--
			te.changed()
		}
	case keymap.Delete:
		if te.cursor < len(te.text) {
			te.text = slices.Delete(te.text, te.cursor, te.cursor+1)
			te.changed()
		}
	case keymap.Kill:
		if te.cursor < len(te.text) {
			te.text = te.text[:te.cursor]
			te.changed()
		}
	}
}

func (te *TextEdit) TextInput(text string) {
	rs := []rune(text)
	if te.maxLength > 0 {
		rs = rs[:min(len(rs), max(te.maxLength-len(te.text), 0))]
	}
	if len(rs) == 0 {
		return
	}
	te.text = slices.Insert(te.text, te.cursor, rs...)
	te.cursor += len(rs)
	te.updates = 0
	te.changed()
}

func (te *TextEdit) changed() {
	e := te.newEvent(events.TextEditChanged)
	e.Text = string(te.text)
	te.send(e)
}
