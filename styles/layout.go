// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the per-widget layout flags used by
// containers to place their children: stretch, alignment and
// stacking direction.
package styles

import "strings"

// Stretch is a bit flag set of the axes along which a widget grows
// to fill the space its container makes available.
type Stretch int32

const (
	// StretchNone keeps the widget at its own size.
	StretchNone Stretch = 0

	// StretchWidth grows the widget horizontally.
	StretchWidth Stretch = 1 << (iota - 1)

	// StretchHeight grows the widget vertically.
	StretchHeight

	// StretchBoth is StretchWidth | StretchHeight.
	StretchBoth = StretchWidth | StretchHeight
)

// Has returns whether all of the given flags are set.
func (s Stretch) Has(f Stretch) bool { return f != 0 && s&f == f }

func (s Stretch) String() string {
	switch s {
	case StretchNone:
		return "None"
	case StretchWidth:
		return "Width"
	case StretchHeight:
		return "Height"
	case StretchBoth:
		return "Width|Height"
	}
	return "Stretch(invalid)"
}

// Align is a bit flag set holding at most one horizontal
// (Left, Center, Right) and one vertical (Top, Middle, Bottom) alignment.
// The zero value aligns to the top left.
type Align int32

const (
	AlignNone Align = 0

	AlignLeft Align = 1 << (iota - 1)
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
)

const (
	alignHorizontal = AlignLeft | AlignCenter | AlignRight
	alignVertical   = AlignTop | AlignMiddle | AlignBottom
)

// Has returns whether the given flag is set.
func (a Align) Has(f Align) bool { return f != 0 && a&f == f }

// Horizontal returns only the horizontal flags of a.
func (a Align) Horizontal() Align { return a & alignHorizontal }

// Vertical returns only the vertical flags of a.
func (a Align) Vertical() Align { return a & alignVertical }

var alignNames = []struct {
	flag Align
	name string
}{
	{AlignLeft, "Left"}, {AlignCenter, "Center"}, {AlignRight, "Right"},
	{AlignTop, "Top"}, {AlignMiddle, "Middle"}, {AlignBottom, "Bottom"},
}

func (a Align) String() string {
	if a == AlignNone {
		return "None"
	}
	var parts []string
	for _, an := range alignNames {
		if a.Has(an.flag) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAlign parses a "|"-separated list of alignment names, as
// produced by [Align.String]. Names are case-insensitive.
// It returns false if a name is unknown.
func ParseAlign(s string) (Align, bool) {
	var a Align
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "none") {
			continue
		}
		found := false
		for _, an := range alignNames {
			if strings.EqualFold(part, an.name) {
				a |= an.flag
				found = true
				break
			}
		}
		if !found {
			return a, false
		}
	}
	return a, true
}

// ParseStretch parses "none", "width", "height" or "both"
// (also "width|height"). Names are case-insensitive.
func ParseStretch(s string) (Stretch, bool) {
	var st Stretch
	for _, part := range strings.Split(s, "|") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "", "none":
		case "width":
			st |= StretchWidth
		case "height":
			st |= StretchHeight
		case "both":
			st |= StretchBoth
		default:
			return st, false
		}
	}
	return st, true
}

// Directions are the stacking directions of a stack layout.
type Directions int32

const (
	// Vertical stacks children top to bottom.
	Vertical Directions = iota

	// Horizontal stacks children left to right.
	Horizontal
)

func (d Directions) String() string {
	if d == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}
