// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Record is the coordinate record of a node.
type Record struct {
	ID     int
	Name   string
	X, Y   float64
	Length float64
	Leaf   bool
}

// Records returns the coordinates of each node,
// in preorder.
func (l *Layout) Records() []Record {
	recs := make([]Record, 0, len(l.order))
	for _, id := range l.order {
		recs = append(recs, Record{
			ID:     id,
			Name:   l.t.Name(id),
			X:      l.x[id],
			Y:      l.y[id],
			Length: l.t.Length(id),
			Leaf:   l.t.IsLeaf(id),
		})
	}
	return recs
}

var header = []string{
	"node",
	"name",
	"x",
	"y",
	"length",
	"leaf",
}

// TSV writes the node coordinates
// as a tab-delimited table.
//
// The table contains the following fields:
//
//   - node, the ID of the node
//   - name, the name of the node (empty for unnamed nodes)
//   - x, the x coordinate
//   - y, the y coordinate
//   - length, the branch length of the node
//   - leaf, "true" if the node is a leaf
func (l *Layout) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# tree node coordinates\n")
	if tn := l.t.Title(); tn != "" {
		fmt.Fprintf(bw, "# tree: %s\n", tn)
	}
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for _, r := range l.Records() {
		row := []string{
			strconv.Itoa(r.ID),
			r.Name,
			strconv.FormatFloat(r.X, 'f', 6, 64),
			strconv.FormatFloat(r.Y, 'f', 6, 64),
			strconv.FormatFloat(r.Length, 'f', 6, 64),
			strconv.FormatBool(r.Leaf),
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// Outline writes the topology of the tree
// as an indented list,
// one node per line.
func (l *Layout) Outline(w io.Writer) error {
	depth := make([]int, len(l.x))
	bw := bufio.NewWriter(w)
	for _, id := range l.order {
		if p := l.parents[id]; p >= 0 {
			depth[id] = depth[p] + 1
		}

		name := l.t.Name(id)
		if name == "" {
			name = "internal"
		}
		var brLen string
		if l.t.HasLength(id) {
			brLen = fmt.Sprintf(":%.3f", l.t.Length(id))
		}
		fmt.Fprintf(bw, "%s%s%s\n", strings.Repeat("  ", depth[id]), name, brLen)
	}
	return bw.Flush()
}
