// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex is tried first,
// which makes repeated lookups of a stable child cheap.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	if len(startIndex) > 0 {
		if si := startIndex[0]; si >= 0 && si < len(slice) && slice[si] == child {
			return si
		}
	}
	for i, n := range slice {
		if n == child {
			return i
		}
	}
	return -1
}

// IndexByName returns the index of the first node with the given
// name in the given slice, or -1 if it is not found.
func IndexByName(slice []Node, name string) int {
	for i, n := range slice {
		if n.AsTree().Name == name {
			return i
		}
	}
	return -1
}
