// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the owned, ordered node tree that widgets are
// built on, centered on the [Node] interface and its [NodeBase]
// implementation.
package tree

// Node is an interface that all tree nodes satisfy. The core tree
// functionality is defined on [NodeBase], which all higher-level node
// types must embed. This interface only contains the methods that
// higher-level types may need to override.
type Node interface {

	// AsTree returns the [NodeBase] of this Node.
	AsTree() *NodeBase

	// Init is called once when the node is first initialized,
	// before it is added to any parent.
	Init()

	// OnAdd is called after the node has been added to a parent.
	// It is called again if the node is moved to another parent.
	OnAdd()

	// Destroy recursively destroys the node and all of its children,
	// children first. Node types implementing it must call
	// [NodeBase.Destroy] at the end of their implementation.
	Destroy()
}
