// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/styles"
)

// Scroller is a scroll bar: a track with a draggable nub between a
// decrement and an increment button. Its value ranges from 0 to its
// max value; changes send [events.ScrollerValueChanged].
type Scroller struct {
	WidgetBase

	direction styles.Directions
	value     int
	maxValue  int
	stepValue int

	// nubScale is the length of the nub relative to the track.
	nubScale float32

	dragging   bool
	dragOffset int
}

// NewScroller returns a new [Scroller] in the given direction.
func NewScroller(dir styles.Directions, value, stepValue, maxValue int) *Scroller {
	s := &Scroller{direction: dir, stepValue: stepValue, maxValue: max(maxValue, 0), nubScale: 0.1}
	s.value = min(max(value, 0), s.maxValue)
	initWidget(s)
	return s
}

func (s *Scroller) Direction() styles.Directions { return s.direction }
func (s *Scroller) Value() int                   { return s.value }
func (s *Scroller) MaxValue() int                { return s.maxValue }
func (s *Scroller) StepValue() int               { return s.stepValue }

// IsDragging returns whether the nub is being dragged.
func (s *Scroller) IsDragging() bool { return s.dragging }

// SetValue sets the value, clamped to [0, max value], sending
// [events.ScrollerValueChanged] if it changes.
func (s *Scroller) SetValue(value int) {
	value = min(max(value, 0), s.maxValue)
	if value == s.value {
		return
	}
	e := s.newEvent(events.ScrollerValueChanged)
	e.OldValue = s.value
	e.NewValue = value
	s.value = value
	s.send(e)
}

// SetMaxValue sets the max value, clamping the value to it.
func (s *Scroller) SetMaxValue(maxValue int) {
	s.maxValue = max(maxValue, 0)
	s.SetValue(s.value)
}

// SetStepValue sets the amount the value changes by for the buttons
// and one mouse wheel notch.
func (s *Scroller) SetStepValue(step int) {
	s.stepValue = step
}

// SetNubScale sets the length of the nub relative to the track, in (0, 1].
func (s *Scroller) SetNubScale(scale float32) {
	s.nubScale = min(max(scale, 0), 1)
}

func (s *Scroller) Measure() geom.Size {
	size := s.config().Metrics.ScrollerSize
	if s.direction == styles.Vertical {
		return geom.Sz(size, 0)
	}
	return geom.Sz(0, size)
}

// buttonSize returns the length of the buttons along the axis.
func (s *Scroller) buttonSize() int {
	if s.direction == styles.Vertical {
		return min(s.rect.W, s.rect.H/2)
	}
	return min(s.rect.H, s.rect.W/2)
}

// DecrementButtonRect returns the absolute rect of the button decreasing the value.
func (s *Scroller) DecrementButtonRect() geom.Rect {
	r, bs := s.Rect(), s.buttonSize()
	if s.direction == styles.Vertical {
		return geom.R(r.X, r.Y, r.W, bs)
	}
	return geom.R(r.X, r.Y, bs, r.H)
}

// IncrementButtonRect returns the absolute rect of the button increasing the value.
func (s *Scroller) IncrementButtonRect() geom.Rect {
	r, bs := s.Rect(), s.buttonSize()
	if s.direction == styles.Vertical {
		return geom.R(r.X, r.Bottom()-bs, r.W, bs)
	}
	return geom.R(r.Right()-bs, r.Y, bs, r.H)
}

// TrackRect returns the absolute rect of the track between the buttons.
func (s *Scroller) TrackRect() geom.Rect {
	r, bs := s.Rect(), s.buttonSize()
	if s.direction == styles.Vertical {
		return geom.R(r.X, r.Y+bs, r.W, r.H-2*bs)
	}
	return geom.R(r.X+bs, r.Y, r.W-2*bs, r.H)
}

// trackSpan returns the start and length of the track along the axis.
func (s *Scroller) trackSpan() (start, length int) {
	t := s.TrackRect()
	if s.direction == styles.Vertical {
		return t.Y, t.H
	}
	return t.X, t.W
}

func (s *Scroller) nubLength() int {
	_, length := s.trackSpan()
	nub := max(int(float32(length)*s.nubScale), s.config().Metrics.ScrollerMinNub)
	return max(min(nub, length), 0)
}

// NubRect returns the absolute rect of the nub.
func (s *Scroller) NubRect() geom.Rect {
	start, length := s.trackSpan()
	nub := s.nubLength()
	pos := start
	if s.maxValue > 0 {
		pos += (length - nub) * s.value / s.maxValue
	}
	t := s.TrackRect()
	if s.direction == styles.Vertical {
		return geom.R(t.X, pos, t.W, nub)
	}
	return geom.R(pos, t.Y, nub, t.H)
}

// axisPos returns the coordinate of the point along the axis.
func (s *Scroller) axisPos(p geom.Position) int {
	if s.direction == styles.Vertical {
		return p.Y
	}
	return p.X
}

func (s *Scroller) Draw(r Renderer, clip geom.Rect) {
	r.DrawScroller(s, clip)
}

func (s *Scroller) MouseButtonDown(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft || !s.hover {
		return
	}
	p := geom.Pos(x, y)
	nub := s.NubRect()
	switch {
	case nub.Contains(p):
		s.dragging = true
		s.dragOffset = s.axisPos(p) - s.axisPos(nub.Pos())
		if s.mainWindow != nil {
			s.mainWindow.PushLockInput(s.this())
		}
	case s.DecrementButtonRect().Contains(p):
		s.SetValue(s.value - s.stepValue)
	case s.IncrementButtonRect().Contains(p):
		s.SetValue(s.value + s.stepValue)
	case s.axisPos(p) < s.axisPos(nub.Pos()):
		s.SetValue(s.value - s.stepValue)
	default:
		s.SetValue(s.value + s.stepValue)
	}
}

func (s *Scroller) MouseMove(x, y, dx, dy int) {
	if !s.dragging {
		return
	}
	start, length := s.trackSpan()
	free := length - s.nubLength()
	if free <= 0 {
		return
	}
	pos := s.axisPos(geom.Pos(x, y)) - s.dragOffset - start
	s.SetValue(pos * s.maxValue / free)
}

func (s *Scroller) MouseButtonUp(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft || !s.dragging {
		return
	}
	s.dragging = false
	if s.mainWindow != nil {
		s.mainWindow.PopLockInput(s.this())
	}
}

func (s *Scroller) MouseWheelMove(x, y int) {
	s.SetValue(s.value - y*s.stepValue)
}
