// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides text measurement for renderers that do not
// bring their own, backed by a [font.Face].
package paint

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"widgetzero.org/wz/geom"
)

// Face measures text with a [font.Face].
type Face struct {
	face font.Face
}

// NewFace returns a [Face] measuring with the given font face.
func NewFace(f font.Face) *Face {
	return &Face{face: f}
}

// FixedFace returns a [Face] backed by the fixed 7x13 [basicfont.Face7x13],
// which gives backend-independent, deterministic text sizes.
func FixedFace() *Face {
	return NewFace(basicfont.Face7x13)
}

// LineHeight returns the height of one line of text.
func (f *Face) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

// MeasureText returns the size of the given text, which may span
// several lines separated by '\n'. Empty text has zero width and
// the height of one line.
func (f *Face) MeasureText(text string) geom.Size {
	lines := strings.Split(text, "\n")
	w := 0
	for _, ln := range lines {
		w = max(w, font.MeasureString(f.face, ln).Ceil())
	}
	return geom.Size{W: w, H: len(lines) * f.LineHeight()}
}

// MeasurePrefix returns the width of the first n runes of the given
// single-line text, clamped to the text length.
func (f *Face) MeasurePrefix(text string, n int) int {
	rs := []rune(text)
	n = min(max(n, 0), len(rs))
	return font.MeasureString(f.face, string(rs[:n])).Ceil()
}
