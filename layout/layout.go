// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout implements the coordinates
// of the nodes of a rectangular tree drawing.
//
// The x coordinate of a node is the sum of branch lengths
// from the root to the node.
// The y coordinate of a leaf is its rank
// in the preorder of the leaves,
// and the y coordinate of an internal node
// is the mean of the y coordinates of its children.
package layout

import (
	"github.com/js-arias/treefig/tree"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Layout stores the coordinates
// of the nodes of a tree.
type Layout struct {
	t       *tree.Tree
	root    int
	order   []int
	leaves  []int
	parents tree.Parents

	x []float64
	y []float64
}

// New calculates the coordinates of the nodes of a tree.
// If the tree is malformed,
// it returns a *tree.MalformedTreeError
// and no layout.
func New(t *tree.Tree) (*Layout, error) {
	root, order, err := t.Validate()
	if err != nil {
		return nil, err
	}
	parents, err := t.Parents()
	if err != nil {
		return nil, err
	}

	l := &Layout{
		t:       t,
		root:    root,
		order:   order,
		parents: parents,
		x:       make([]float64, t.Len()),
		y:       make([]float64, t.Len()),
	}

	// leaves by rank
	for _, id := range order {
		if !t.IsLeaf(id) {
			continue
		}
		l.y[id] = float64(len(l.leaves))
		l.leaves = append(l.leaves, id)
	}

	// parents are always visited before their children
	for _, id := range order {
		if id == root {
			continue
		}
		l.x[id] = l.x[parents[id]] + t.Length(id)
	}

	// post-order: reverse of a preorder
	// visits all descendants before the node
	ys := make([]float64, 0, 2)
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		children := t.Children(id)
		if len(children) == 0 {
			continue
		}
		ys = ys[:0]
		for _, c := range children {
			ys = append(ys, l.y[c])
		}
		l.y[id] = stat.Mean(ys, nil)
	}

	return l, nil
}

// Leaves returns the IDs of the leaves
// sorted by its y coordinate.
func (l *Layout) Leaves() []int {
	return l.leaves
}

// MaxX returns the largest x coordinate
// of any node in the tree.
func (l *Layout) MaxX() float64 {
	return floats.Max(l.x)
}

// MaxY returns the largest y coordinate
// of any leaf in the tree.
func (l *Layout) MaxY() float64 {
	return float64(len(l.leaves) - 1)
}

// Order returns the IDs of the nodes in preorder.
func (l *Layout) Order() []int {
	return l.order
}

// Parent returns the parent of a node,
// or -1 if the node is the root.
func (l *Layout) Parent(id int) int {
	return l.parents.Parent(id)
}

// Root returns the ID of the root node.
func (l *Layout) Root() int {
	return l.root
}

// Tree returns the tree of the layout.
func (l *Layout) Tree() *tree.Tree {
	return l.t
}

// X returns the x coordinate of a node.
func (l *Layout) X(id int) float64 {
	return l.x[id]
}

// Y returns the y coordinate of a node.
func (l *Layout) Y(id int) float64 {
	return l.y[id]
}
