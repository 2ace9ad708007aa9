// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"

	"github.com/js-arias/timetree"
)

// MillionYears is the default scale
// used to convert node ages of a time calibrated tree
// into branch lengths.
const MillionYears = 1_000_000

// FromTimeTree creates a new tree
// from a time calibrated tree.
// The branch length of each node is the difference
// between its age and the age of its parent,
// divided by scale.
// The root has no branch length.
//
// Children are copied in the order defined by timetree,
// which sorts them by clade size,
// then by age,
// and then by the name of its first terminal.
func FromTimeTree(tt *timetree.Tree, scale float64) *Tree {
	if scale <= 0 {
		scale = MillionYears
	}

	t := New()
	t.SetName(tt.Name())
	t.copyTimeNode(tt, tt.Root(), -1, scale)
	return t
}

func (t *Tree) copyTimeNode(tt *timetree.Tree, id, parent int, scale float64) {
	var n int
	if parent < 0 {
		n = t.AddNoLength(tt.Taxon(id))
	} else {
		l := float64(tt.Age(tt.Parent(id))-tt.Age(id)) / scale
		n = t.Add(tt.Taxon(id), l)

		// both nodes were just added
		// so AddChild never fails
		t.AddChild(parent, n)
	}

	for _, c := range tt.Children(id) {
		t.copyTimeNode(tt, c, n, scale)
	}
}

func fromCollection(c *timetree.Collection, scale float64) []*Tree {
	ls := c.Names()
	ts := make([]*Tree, 0, len(ls))
	for _, tn := range ls {
		ts = append(ts, FromTimeTree(c.Tree(tn), scale))
	}
	return ts
}

// ReadNexus reads the trees of a nexus file,
// with branch lengths in million years,
// and returns them with branch lengths
// in the given scale (in years).
// The trees are read using timetree,
// so the order of the children is the order
// defined by FromTimeTree.
func ReadNexus(r io.Reader, scale float64) ([]*Tree, error) {
	c, err := timetree.Nexus(r, 0)
	if err != nil {
		return nil, err
	}
	ts := fromCollection(c, scale)
	if len(ts) == 0 {
		return nil, fmt.Errorf("nexus: no tree found")
	}
	return ts, nil
}

// ReadTimeTSV reads a collection of time calibrated trees
// from a timetree tab-delimited file,
// and returns them with branch lengths
// in the given scale (in years),
// in the order given by the tree names.
func ReadTimeTSV(r io.Reader, scale float64) ([]*Tree, error) {
	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, err
	}
	return fromCollection(c, scale), nil
}
