// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"strconv"

	"github.com/iancoleman/strcase"
)

// InitNode initializes the node: it sets [NodeBase.This] and calls
// [Node.Init] the first time the node is seen. It does nothing for
// a node that is already initialized.
func InitNode(this Node) {
	n := this.AsTree()
	if n.This != this {
		n.This = this
		this.Init()
	}
}

// SetParent sets the parent of the given child to the given parent
// node, names the child if it has no name, and calls [Node.OnAdd].
// It does not add the child to the children of the parent; use
// [NodeBase.AddChild] for that.
func SetParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	if parent != nil {
		pn := parent.AsTree()
		pn.numLifetimeChildren++
		if n.Name == "" {
			n.Name = TypeIDName(child) + "-" + strconv.FormatUint(pn.numLifetimeChildren-1, 10)
		}
	}
	child.OnAdd()
}

// MoveToParent removes the given node from its current parent
// (if any) and adds it to the end of the children of the given parent.
func MoveToParent(child Node, parent Node) {
	if old := child.AsTree().Parent; old != nil {
		old.AsTree().RemoveChild(child)
	}
	parent.AsTree().AddChild(child)
}

// TypeIDName returns the kebab-case name of the concrete type of
// the given node, e.g. "stack-layout" for a *StackLayout.
func TypeIDName(n Node) string {
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strcase.ToKebab(t.Name())
}

// IsRoot returns whether the given node has no parent.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	for n.AsTree().Parent != nil {
		n = n.AsTree().Parent
	}
	return n
}

// ParentByType returns the nearest ancestor of the given node
// (excluding the node itself) that is of type T, or the zero T.
func ParentByType[T Node](n Node) T {
	var res T
	n.AsTree().WalkUpParent(func(p Node) bool {
		if t, ok := p.(T); ok {
			res = t
			return Break
		}
		return Continue
	})
	return res
}

// IsAncestor returns whether anc is n or one of its ancestors.
func IsAncestor(anc, n Node) bool {
	found := false
	n.AsTree().WalkUp(func(p Node) bool {
		if p == anc {
			found = true
			return Break
		}
		return Continue
	})
	return found
}
