// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "widgetzero.org/wz/tree"

// initWidget initializes a newly allocated widget.
func initWidget(w Widget) {
	tree.InitNode(w)
}

// addPart adds an internal child widget that the user did not add,
// such as the content frame of a window. It bypasses the checks of
// [WidgetBase.Add] and must be called before w is attached anywhere.
func addPart(w Widget, part Widget, name string) {
	initWidget(part)
	part.AsTree().SetName(name)
	w.AsWidget().AddChild(part)
}
