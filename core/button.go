// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
)

// Button is a push button with a text label. Pressing it sends
// [events.ButtonPressed]; releasing it while still hovered sends
// [events.ButtonClicked]. While pressed it locks the input, so the
// release is seen wherever it happens.
type Button struct {
	WidgetBase

	text    string
	pressed bool
}

// NewButton returns a new [Button] with the given text.
func NewButton(text string) *Button {
	b := &Button{text: text}
	initWidget(b)
	return b
}

// Text returns the text of the button.
func (b *Button) Text() string { return b.text }

// SetText sets the text of the button.
func (b *Button) SetText(text string) {
	b.text = text
	b.remeasure()
}

// IsPressed returns whether the button is currently held down.
func (b *Button) IsPressed() bool { return b.pressed }

// OnClick adds an event handler for [events.ButtonClicked].
func (b *Button) OnClick(fun func(e *events.Event)) {
	b.On(events.ButtonClicked, fun)
}

func (b *Button) Measure() geom.Size {
	m := b.config().Metrics
	ts := b.measureText(b.text)
	return geom.Sz(ts.W+2*m.ButtonPaddingX, max(ts.H, b.lineHeight())+2*m.ButtonPaddingY)
}

func (b *Button) Draw(r Renderer, clip geom.Rect) {
	r.DrawButton(b, clip)
}

func (b *Button) MouseButtonDown(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft || !b.hover {
		return
	}
	b.pressed = true
	if b.mainWindow != nil {
		b.mainWindow.PushLockInput(b.this())
	}
	b.send(b.newEvent(events.ButtonPressed))
}

func (b *Button) MouseButtonUp(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft || !b.pressed {
		return
	}
	b.pressed = false
	if b.mainWindow != nil {
		b.mainWindow.PopLockInput(b.this())
	}
	if b.hover {
		b.This.(clicker).click()
	}
}

// clicker is implemented by the button types to react to a click.
type clicker interface {
	click()
}

func (b *Button) click() {
	b.send(b.newEvent(events.ButtonClicked))
}

// Checkbox is a button with a check box that toggles on each click,
// sending [events.CheckboxToggled].
type Checkbox struct {
	Button
	checked bool
}

// NewCheckbox returns a new unchecked [Checkbox] with the given label.
func NewCheckbox(label string) *Checkbox {
	c := &Checkbox{}
	c.text = label
	initWidget(c)
	return c
}

// IsChecked returns whether the checkbox is checked.
func (c *Checkbox) IsChecked() bool { return c.checked }

// SetChecked sets the state of the checkbox without sending an event.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// BoxRect returns the absolute rect of the check box.
func (c *Checkbox) BoxRect() geom.Rect {
	return indicatorRect(c.Rect(), c.config().Metrics.CheckboxBoxSize)
}

// indicatorRect returns the rect of a square indicator of the given
// size at the left of r, centered vertically.
func indicatorRect(r geom.Rect, size int) geom.Rect {
	return geom.R(r.X, r.Y+(r.H-size)/2, size, size)
}

func (c *Checkbox) Measure() geom.Size {
	m := c.config().Metrics
	ts := c.measureText(c.text)
	return geom.Sz(m.CheckboxBoxSize+m.CheckboxSpacing+ts.W, max(m.CheckboxBoxSize, ts.H))
}

func (c *Checkbox) Draw(r Renderer, clip geom.Rect) {
	r.DrawCheckbox(c, clip)
}

func (c *Checkbox) click() {
	c.checked = !c.checked
	e := c.newEvent(events.CheckboxToggled)
	e.Checked = c.checked
	c.send(e)
}

// RadioButton is a button of a group of mutually exclusive choices.
// The radio buttons sharing a parent form a group: selecting one
// deselects the others, and sends [events.RadioButtonSelected].
type RadioButton struct {
	Button
	checked bool
}

// NewRadioButton returns a new unselected [RadioButton] with the given label.
func NewRadioButton(label string) *RadioButton {
	rb := &RadioButton{}
	rb.text = label
	initWidget(rb)
	return rb
}

// IsChecked returns whether the radio button is the selected one of its group.
func (rb *RadioButton) IsChecked() bool { return rb.checked }

// SetChecked selects the radio button without sending an event,
// deselecting the others of its group.
func (rb *RadioButton) SetChecked(checked bool) {
	if checked {
		for _, s := range rb.group() {
			s.checked = false
		}
	}
	rb.checked = checked
}

// group returns the radio buttons sharing the parent of this one,
// including itself.
func (rb *RadioButton) group() []*RadioButton {
	pwb := rb.parentWidget()
	if pwb == nil {
		return []*RadioButton{rb}
	}
	var g []*RadioButton
	for _, c := range pwb.Children {
		if s, ok := c.(*RadioButton); ok {
			g = append(g, s)
		}
	}
	return g
}

// IndicatorRect returns the absolute rect of the round indicator.
func (rb *RadioButton) IndicatorRect() geom.Rect {
	return indicatorRect(rb.Rect(), rb.config().Metrics.RadioButtonSize)
}

func (rb *RadioButton) Measure() geom.Size {
	m := rb.config().Metrics
	ts := rb.measureText(rb.text)
	return geom.Sz(m.RadioButtonSize+m.CheckboxSpacing+ts.W, max(m.RadioButtonSize, ts.H))
}

func (rb *RadioButton) Draw(r Renderer, clip geom.Rect) {
	r.DrawRadioButton(rb, clip)
}

func (rb *RadioButton) click() {
	if rb.checked {
		return
	}
	g := rb.group()
	index := 0
	for i, s := range g {
		s.checked = s == rb
		if s == rb {
			index = i
		}
	}
	e := rb.newEvent(events.RadioButtonSelected)
	e.Index = index
	e.Checked = true
	rb.send(e)
}
