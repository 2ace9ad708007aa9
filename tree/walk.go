// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

// Parents is a lookup from a node ID
// to the ID of its parent.
// The root has no parent and it is stored as -1.
type Parents []int

// Parent returns the parent of a node,
// or -1 if the node is the root.
func (p Parents) Parent(id int) int {
	if id < 0 || id >= len(p) {
		return -1
	}
	return p[id]
}

// Parents builds the parent index of the tree
// from the children of each node.
// It returns a MalformedTreeError
// if a node is the child of two different parents.
func (t *Tree) Parents() (Parents, error) {
	p := make(Parents, len(t.nodes))
	for i := range p {
		p[i] = -1
	}
	for id, n := range t.nodes {
		for _, c := range n.children {
			if p[c] >= 0 {
				return nil, &MalformedTreeError{Kind: MultiParent, Node: c}
			}
			p[c] = id
		}
	}
	return p, nil
}

// Root returns the ID of the root,
// the single node that is not a child of any other node.
func (t *Tree) Root() (int, error) {
	if len(t.nodes) == 0 {
		return -1, &MalformedTreeError{Kind: Empty, Node: -1}
	}

	child := make([]bool, len(t.nodes))
	for _, n := range t.nodes {
		for _, c := range n.children {
			child[c] = true
		}
	}

	root := -1
	for id, isChild := range child {
		if isChild {
			continue
		}
		if root >= 0 {
			return -1, &MalformedTreeError{Kind: Disconnected, Node: id}
		}
		root = id
	}
	if root < 0 {
		return -1, &MalformedTreeError{Kind: NoRoot, Node: -1}
	}
	return root, nil
}

// States of a node during a walk.
const (
	unvisited = iota
	onStack
	done
)

// Validate checks that the nodes form a rooted tree.
// It returns the root
// and the nodes in preorder
// (each parent before its children,
// and the children in the order in which they were added).
func (t *Tree) Validate() (root int, order []int, err error) {
	root, err = t.Root()
	if err != nil {
		return -1, nil, err
	}

	state := make([]int, len(t.nodes))
	order = make([]int, 0, len(t.nodes))
	if err := t.preorder(root, state, &order); err != nil {
		return -1, nil, err
	}

	for id, s := range state {
		if s == unvisited {
			return -1, nil, t.unreached(id)
		}
	}
	return root, order, nil
}

// unreached returns the error of a node
// that can not be reached from the root.
// As the root is unique,
// the ancestors of the node end in a cycle.
func (t *Tree) unreached(id int) error {
	p, err := t.Parents()
	if err != nil {
		return err
	}

	seen := make(map[int]bool)
	for x := id; ; x = p[x] {
		if p[x] < 0 {
			return &MalformedTreeError{Kind: Disconnected, Node: x}
		}
		if seen[x] {
			return &MalformedTreeError{Kind: Cycle, Node: x}
		}
		seen[x] = true
	}
}

func (t *Tree) preorder(id int, state []int, order *[]int) error {
	switch state[id] {
	case onStack:
		return &MalformedTreeError{Kind: Cycle, Node: id}
	case done:
		return &MalformedTreeError{Kind: MultiParent, Node: id}
	}

	state[id] = onStack
	*order = append(*order, id)
	for _, c := range t.nodes[id].children {
		if err := t.preorder(c, state, order); err != nil {
			return err
		}
	}
	state[id] = done
	return nil
}

// Leaves returns the IDs of the leaves
// in preorder.
func (t *Tree) Leaves() ([]int, error) {
	_, order, err := t.Validate()
	if err != nil {
		return nil, err
	}

	var leaves []int
	for _, id := range order {
		if t.IsLeaf(id) {
			leaves = append(leaves, id)
		}
	}
	return leaves, nil
}

// Terms returns the names of the leaves
// in preorder.
func (t *Tree) Terms() ([]string, error) {
	leaves, err := t.Leaves()
	if err != nil {
		return nil, err
	}
	terms := make([]string, 0, len(leaves))
	for _, id := range leaves {
		terms = append(terms, t.Name(id))
	}
	return terms, nil
}
