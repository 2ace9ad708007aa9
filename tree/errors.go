// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "fmt"

// Kind is the structural rule
// violated by a malformed tree.
type Kind int

// Valid kinds of malformed trees.
const (
	// The tree has no nodes.
	Empty Kind = iota

	// Every node is a child of another node.
	NoRoot

	// A node is its own ancestor.
	Cycle

	// A node is a child of more than one node.
	MultiParent

	// There is more than one root.
	Disconnected
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty tree"
	case NoRoot:
		return "no root"
	case Cycle:
		return "cycle"
	case MultiParent:
		return "multiple parents"
	case Disconnected:
		return "disconnected node"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A MalformedTreeError is returned
// when the nodes of a tree do not form
// a valid rooted tree.
type MalformedTreeError struct {
	Kind Kind

	// Node is the ID of the offending node,
	// or -1 if there is no particular node.
	Node int
}

func (e *MalformedTreeError) Error() string {
	if e.Node < 0 {
		return fmt.Sprintf("malformed tree: %s", e.Kind)
	}
	return fmt.Sprintf("malformed tree: %s at node %d", e.Kind, e.Node)
}
