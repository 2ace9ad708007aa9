// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a rooted phylogenetic tree
// with branch lengths,
// as used to lay out and draw tree figures.
//
// A tree is built node by node,
// and the parent-child relations are set explicitly.
// The tree is not checked while it is built;
// use Validate (or the layout package)
// to check that the nodes form a valid rooted tree.
package tree

import "fmt"

// A node is a terminal (leaf) or an ancestral split
// (internal node) of a tree.
type node struct {
	name      string
	length    float64
	hasLength bool
	children  []int
}

// A Tree is a rooted tree.
// Node identifiers are the indexes
// in the order in which nodes were added.
type Tree struct {
	name  string
	nodes []*node
}

// New creates a new empty tree.
func New() *Tree {
	return &Tree{}
}

// Add adds a new node to the tree
// with a given branch length
// (the distance to its parent).
// It returns the ID of the new node.
func (t *Tree) Add(name string, length float64) int {
	t.nodes = append(t.nodes, &node{
		name:      name,
		length:    length,
		hasLength: true,
	})
	return len(t.nodes) - 1
}

// AddNoLength adds a new node without a branch length.
// The branch length of the node will be 0.
func (t *Tree) AddNoLength(name string) int {
	t.nodes = append(t.nodes, &node{name: name})
	return len(t.nodes) - 1
}

// AddChild adds child as the last descendant of parent.
func (t *Tree) AddChild(parent, child int) error {
	if !t.valid(parent) {
		return fmt.Errorf("tree: invalid parent node %d", parent)
	}
	if !t.valid(child) {
		return fmt.Errorf("tree: invalid child node %d", child)
	}

	p := t.nodes[parent]
	p.children = append(p.children, child)
	return nil
}

// Children returns the IDs of the children of a node,
// in the order in which they were added.
func (t *Tree) Children(id int) []int {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].children
}

// HasLength returns true if the branch length
// of the node was defined.
func (t *Tree) HasLength(id int) bool {
	if !t.valid(id) {
		return false
	}
	return t.nodes[id].hasLength
}

// IsLeaf returns true if the node has no children.
func (t *Tree) IsLeaf(id int) bool {
	if !t.valid(id) {
		return false
	}
	return len(t.nodes[id].children) == 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Length returns the branch length of a node.
// If the length is not defined,
// it returns 0.
func (t *Tree) Length(id int) float64 {
	if !t.valid(id) {
		return 0
	}
	return t.nodes[id].length
}

// Name returns the name of a node.
// Internal nodes usually have no name.
func (t *Tree) Name(id int) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].name
}

// Nodes returns the IDs of all nodes in the tree.
func (t *Tree) Nodes() []int {
	ids := make([]int, len(t.nodes))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// SetName sets the name of the tree.
func (t *Tree) SetName(name string) {
	t.name = name
}

// Title returns the name of the tree.
func (t *Tree) Title() string {
	return t.name
}

func (t *Tree) valid(id int) bool {
	return id >= 0 && id < len(t.nodes)
}
