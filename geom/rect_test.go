// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	r, ok := Intersect(R(0, 0, 100, 100), R(50, 60, 100, 100))
	assert.True(t, ok)
	assert.Equal(t, R(50, 60, 50, 40), r)

	// touching edges do not overlap, since rects are half-open
	_, ok = Intersect(R(0, 0, 10, 10), R(10, 0, 10, 10))
	assert.False(t, ok)

	r, ok = Intersect(R(5, 5, 0, 10), R(0, 0, 100, 100))
	assert.False(t, ok)
	assert.True(t, r.IsEmpty())
}

func TestContains(t *testing.T) {
	r := R(10, 10, 20, 20)
	assert.True(t, r.Contains(Pos(10, 10)))
	assert.True(t, r.Contains(Pos(29, 29)))
	assert.False(t, r.Contains(Pos(30, 15)))
	assert.False(t, r.Contains(Pos(9, 15)))
	assert.True(t, r.ContainsRect(R(12, 12, 18, 18)))
	assert.False(t, r.ContainsRect(R(12, 12, 19, 18)))
}

func TestInsetOutset(t *testing.T) {
	b := Border{Top: 1, Right: 2, Bottom: 3, Left: 4}
	r := R(10, 10, 100, 50)
	assert.Equal(t, R(14, 11, 94, 46), r.Inset(b))
	assert.Equal(t, r, r.Inset(b).Outset(b))
	assert.Equal(t, 6, b.Horizontal())
	assert.Equal(t, 4, b.Vertical())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Rect{}.IsEmpty())
	assert.False(t, R(0, 0, 0, 1).IsEmpty())
	assert.Equal(t, Pos(15, 20), R(10, 10, 10, 20).Center())
}
