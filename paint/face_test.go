// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"widgetzero.org/wz/geom"
)

func TestFixedFace(t *testing.T) {
	f := FixedFace()
	assert.Equal(t, 13, f.LineHeight())
	assert.Equal(t, geom.Sz(7*5, 13), f.MeasureText("Hello"))
	assert.Equal(t, geom.Sz(7*6, 26), f.MeasureText("ab\nlonger"))
	assert.Equal(t, geom.Sz(0, 13), f.MeasureText(""))
	assert.Equal(t, 14, f.MeasurePrefix("Hello", 2))
	assert.Equal(t, 35, f.MeasurePrefix("Hello", 99))
}
