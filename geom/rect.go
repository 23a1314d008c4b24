// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the integer rectangle math used by widget
// layout, hit-testing and clipping.
package geom

import "fmt"

// Position is a point in pixel coordinates.
type Position struct {
	X, Y int
}

// Pos returns a new [Position].
func Pos(x, y int) Position { return Position{x, y} }

// Add returns the sum of p and o.
func (p Position) Add(o Position) Position { return Position{p.X + o.X, p.Y + o.Y} }

// Sub returns p minus o.
func (p Position) Sub(o Position) Position { return Position{p.X - o.X, p.Y - o.Y} }

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Sz returns a new [Size].
func Sz(w, h int) Size { return Size{w, h} }

// Border holds a value for each side of a box, used for margins and padding.
type Border struct {
	Top, Right, Bottom, Left int
}

// Uniform returns a [Border] with all sides set to v.
func Uniform(v int) Border { return Border{v, v, v, v} }

// Horizontal returns the sum of the left and right sides.
func (b Border) Horizontal() int { return b.Left + b.Right }

// Vertical returns the sum of the top and bottom sides.
func (b Border) Vertical() int { return b.Top + b.Bottom }

// Rect is a half-open axis-aligned box: it covers [X, X+W) x [Y, Y+H).
// The all-zero Rect is used as an "unset" sentinel; see [Rect.IsEmpty].
type Rect struct {
	X, Y, W, H int
}

// R returns a new [Rect].
func R(x, y, w, h int) Rect { return Rect{x, y, w, h} }

// FromPosSize returns the rect at p with size s.
func FromPosSize(p Position, s Size) Rect { return Rect{p.X, p.Y, s.W, s.H} }

func (r Rect) String() string {
	return fmt.Sprintf("{%d %d %d %d}", r.X, r.Y, r.W, r.H)
}

// IsEmpty returns whether all fields are zero.
func (r Rect) IsEmpty() bool {
	return r.X == 0 && r.Y == 0 && r.W == 0 && r.H == 0
}

// Pos returns the top-left corner.
func (r Rect) Pos() Position { return Position{r.X, r.Y} }

// Size returns the width and height.
func (r Rect) Size() Size { return Size{r.W, r.H} }

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the center point, rounded down.
func (r Rect) Center() Position { return Position{r.X + r.W/2, r.Y + r.H/2} }

// Add returns r translated by p.
func (r Rect) Add(p Position) Rect { return Rect{r.X + p.X, r.Y + p.Y, r.W, r.H} }

// Inset returns r shrunk by b on each side.
func (r Rect) Inset(b Border) Rect {
	return Rect{r.X + b.Left, r.Y + b.Top, r.W - b.Horizontal(), r.H - b.Vertical()}
}

// Outset returns r grown by b on each side.
func (r Rect) Outset(b Border) Rect {
	return Rect{r.X - b.Left, r.Y - b.Top, r.W + b.Horizontal(), r.H + b.Vertical()}
}

// Contains returns whether p lies inside r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect returns whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Overlaps returns whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	_, ok := Intersect(r, o)
	return ok
}

// Intersect returns the intersection of a and b. It returns false if
// either rect has no area or they do not overlap, in which case the
// returned rect is the zero Rect.
func Intersect(a, b Rect) (Rect, bool) {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return Rect{}, false
	}
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.Right(), b.Right()), min(a.Bottom(), b.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}, true
}
