/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rptree

// Node is one item on a root path of an RP-tree. The root node carries a
// nil Item. Children own their subtrees; Parent is a non-owning back
// reference used only to walk paths during conditional-base extraction.
type Node struct {
	Item interface{}
	// Count is the number of transactions whose projection passes through
	// this node.
	Count int
	// Timestamps holds the timestamps of those transactions.
	Timestamps []int64

	children map[string]*Node
	parent   *Node
}

func newNode(item interface{}, parent *Node) *Node {
	return &Node{
		Item:     item,
		children: make(map[string]*Node),
		parent:   parent,
	}
}

// Child returns the child node for the given item key, nil when absent.
func (n *Node) Child(key string) *Node {
	return n.children[key]
}

// Parent returns the node's parent, nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether the node is the tree root.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool {
	return len(n.children) == 0
}

func (n *Node) record(timestamps []int64) {
	n.Count += len(timestamps)
	n.Timestamps = append(n.Timestamps, timestamps...)
}
