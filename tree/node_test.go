// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "widgetzero.org/wz/tree"
)

// testNode is a node type that records its lifecycle calls.
type testNode struct {
	NodeBase
	inits     int
	adds      int
	destroyed *[]string
}

func (t *testNode) Init()  { t.inits++ }
func (t *testNode) OnAdd() { t.adds++ }

func (t *testNode) Destroy() {
	t.NodeBase.Destroy()
	if t.destroyed != nil {
		*t.destroyed = append(*t.destroyed, t.Name)
	}
}

func newRoot(name string) *testNode {
	n := &testNode{}
	InitNode(n)
	n.SetName(name)
	return n
}

func newChild(parent Node, name string) *testNode {
	n := &testNode{}
	n.SetName(name)
	parent.AsTree().AddChild(n)
	return n
}

func TestNodeAddChild(t *testing.T) {
	parent := newRoot("root")
	child := newChild(parent, "child1")
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/root/child1", child.Path())
	assert.Equal(t, 1, child.inits)
	assert.Equal(t, 1, child.adds)
}

func TestNodeDefaultName(t *testing.T) {
	parent := newRoot("root")
	a := &testNode{}
	parent.AddChild(a)
	b := &testNode{}
	parent.AddChild(b)
	assert.Equal(t, "test-node-0", a.Name)
	assert.Equal(t, "test-node-1", b.Name)
	assert.Equal(t, Node(b), parent.ChildByName("test-node-1"))
}

func TestNodeInsertChild(t *testing.T) {
	parent := newRoot("root")
	newChild(parent, "a")
	newChild(parent, "c")
	b := &testNode{}
	b.SetName("b")
	parent.InsertChild(b, 1)
	names := []string{}
	for _, c := range parent.Children {
		names = append(names, c.AsTree().Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 1, b.IndexInParent())
}

func TestNodeRemoveChildKeepsSubtree(t *testing.T) {
	parent := newRoot("root")
	child := newChild(parent, "child")
	grand := newChild(child, "grand")
	assert.True(t, parent.RemoveChild(child))
	assert.False(t, parent.RemoveChild(child))
	assert.Nil(t, child.Parent)
	assert.False(t, child.IsDestroyed())
	assert.Equal(t, "/child/grand", grand.Path())
	assert.True(t, IsRoot(child))
}

func TestNodeDestroyChildrenFirst(t *testing.T) {
	var order []string
	root := newRoot("root")
	root.destroyed = &order
	a := newChild(root, "a")
	a.destroyed = &order
	a1 := newChild(a, "a1")
	a1.destroyed = &order
	b := newChild(root, "b")
	b.destroyed = &order

	root.Destroy()
	assert.Equal(t, []string{"a1", "a", "b", "root"}, order)
	assert.True(t, root.IsDestroyed())
	assert.True(t, a1.IsDestroyed())
	assert.Empty(t, root.Children)
}

func TestNodeDelete(t *testing.T) {
	root := newRoot("root")
	a := newChild(root, "a")
	a.Delete()
	assert.True(t, a.IsDestroyed())
	assert.Empty(t, root.Children)
}

func TestMoveToParent(t *testing.T) {
	root := newRoot("root")
	a := newChild(root, "a")
	b := newChild(root, "b")
	c := newChild(a, "c")
	MoveToParent(c, b)
	assert.Empty(t, a.Children)
	assert.Equal(t, "/root/b/c", c.Path())
	assert.Equal(t, 2, c.adds)
	assert.Equal(t, Node(root), Root(c))
	assert.True(t, IsAncestor(root, c))
	assert.False(t, IsAncestor(a, c))
	assert.Equal(t, root, ParentByType[*testNode](b))
}

func TestWalkDownBreak(t *testing.T) {
	root := newRoot("root")
	a := newChild(root, "a")
	newChild(a, "a1")
	newChild(root, "b")
	var seen []string
	root.WalkDown(func(n Node) bool {
		seen = append(seen, n.AsTree().Name)
		if n == Node(a) {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "b"}, seen)

	seen = nil
	root.WalkDownPost(func(n Node) bool { return Continue }, func(n Node) bool {
		seen = append(seen, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"a1", "a", "b", "root"}, seen)
}
