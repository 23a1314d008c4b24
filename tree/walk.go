// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides basic tree walking functions for iterative traversal
of the tree in up / down directions. As compared to the Node walk methods,
these are for more dynamic, piecemeal processing.
*/

package tree

// Last returns the last node in the tree under n in depth-first order.
func Last(n Node) Node {
	nb := n.AsTree()
	if nb.HasChildren() {
		return Last(nb.Child(nb.NumChildren() - 1))
	}
	return n
}

// Previous returns the previous node in the tree in depth-first
// order, or nil if n is the root.
func Previous(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	idx := nb.IndexInParent()
	if idx > 0 {
		return Last(nb.Parent.AsTree().Child(idx - 1))
	}
	return nb.Parent
}

// Next returns the next node in the tree in depth-first order,
// or nil if there are no more nodes.
func Next(n Node) Node {
	if !n.AsTree().HasChildren() {
		return NextSibling(n)
	}
	return n.AsTree().Child(0)
}

// NextSibling returns the next sibling of n, or the next sibling
// of the nearest ancestor that has one, or nil.
func NextSibling(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	idx := nb.IndexInParent()
	if idx >= 0 && idx < nb.Parent.AsTree().NumChildren()-1 {
		return nb.Parent.AsTree().Child(idx + 1)
	}
	return NextSibling(nb.Parent)
}
