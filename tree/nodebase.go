// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
	"strings"
)

// NodeBase implements the [Node] interface and provides the core tree
// functionality. It must be embedded in all higher-level node types.
//
// All nodes must be initialized with [InitNode] (which the child helpers
// do automatically) so that [NodeBase.This] refers to the outer type.
type NodeBase struct {

	// Name is the name of this node, typically unique among its siblings.
	// It defaults to the kebab-case type name plus the number of children
	// that have ever been added to the parent.
	Name string

	// This is the value of this Node as its true underlying type, which
	// lets methods defined on base types call methods overridden by
	// higher-level types. It is set to nil when the node is destroyed.
	This Node

	// Parent is the parent of this node, set when the node is added
	// as a child. Use [MoveToParent] to change it.
	Parent Node

	// Children is the ordered list of children of this node.
	// Use the child helper methods to modify it.
	Children []Node

	// numLifetimeChildren is the number of children ever added,
	// used for automatic unique naming.
	numLifetimeChildren uint64

	// index caches the last index in the parent.
	index int
}

// String returns the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the name of the node.
func (n *NodeBase) SetName(name string) *NodeBase {
	n.Name = name
	return n
}

// Init is a placeholder implementation of [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}

// IsDestroyed returns whether the node has been destroyed.
func (n *NodeBase) IsDestroyed() bool {
	return n.This == nil
}

// Parents:

// IndexInParent returns our index within our parent node, or -1
// if we do not have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	n.index = idx
	return idx
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child at the given index, or nil if the
// index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child with the given name, or nil.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// Path returns the path to this node from the tree root, using
// names separated by / delimiters.
func (n *NodeBase) Path() string {
	name := strings.ReplaceAll(n.Name, "/", `\\`)
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + name
	}
	return "/" + name
}

// Adding and removing children:

// AddChild adds the given child at the end of the children list.
// The child must not currently have a parent (see [MoveToParent]).
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// InsertChild adds the given child at the given position in the
// children list. The child must not currently have a parent.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
}

// RemoveChild detaches the given child from this node without
// destroying it; the child becomes the root of its own subtree.
// It returns false if the node is not a child of this node.
func (n *NodeBase) RemoveChild(kid Node) bool {
	idx := IndexOf(n.Children, kid)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	kid.AsTree().Parent = nil
	return true
}

// DeleteChild detaches and destroys the given child,
// returning false if it is not a child of this node.
func (n *NodeBase) DeleteChild(kid Node) bool {
	if !n.RemoveChild(kid) {
		return false
	}
	kid.Destroy()
	return true
}

// DeleteChildren destroys all children.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = nil
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.AsTree().Parent = nil
		kid.Destroy()
	}
}

// Delete removes this node from its parent and destroys it.
func (n *NodeBase) Delete() {
	if n.This == nil {
		return
	}
	if n.Parent == nil {
		n.This.Destroy()
		return
	}
	n.Parent.AsTree().DeleteChild(n.This)
}

// Destroy recursively destroys the children of the node and then
// marks the node itself as destroyed.
func (n *NodeBase) Destroy() {
	if n.This == nil {
		return
	}
	n.DeleteChildren()
	n.This = nil
}

// Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break]. It returns whether
// walking was finished.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for cur != nil {
		if !fun(cur) {
			return false
		}
		cur = cur.AsTree().Parent
	}
	return true
}

// WalkUpParent calls the given function on all of the node's parents
// (but not the node itself).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	if n.Parent == nil {
		return true
	}
	return n.Parent.AsTree().WalkUp(fun)
}

// WalkDown calls the given function on the node and all of its
// children in depth-first pre-order. It stops walking the current
// branch if the function returns [Break]. The function may destroy
// the node it is given; its children are then skipped.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) || n.This == nil {
		return
	}
	// copy so that fun can remove siblings without skipping any
	for _, kid := range slices.Clone(n.Children) {
		if kid == nil {
			continue
		}
		kid.AsTree().WalkDown(fun)
	}
}

// WalkDownPost calls shouldContinue on each node to test whether its
// branch should be processed, and then calls fun on the node after
// all of its children have been processed (post-order).
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil || !shouldContinue(n.This) {
		return
	}
	for _, kid := range slices.Clone(n.Children) {
		if kid == nil {
			continue
		}
		kid.AsTree().WalkDownPost(shouldContinue, fun)
	}
	if n.This != nil {
		fun(n.This)
	}
}
