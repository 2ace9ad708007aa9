// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTSV reads one or more trees
// from a tab-delimited file.
//
// The file must contain the following columns:
//
//   - tree, the name of the tree
//   - node, the ID of the node in the file
//   - parent, the ID of the parent node (-1 for the root)
//   - length, the branch length (empty if not defined)
//   - name, the name of the node
//
// Here is an example file:
//
//	# phylogenetic trees
//	tree	node	parent	length	name
//	dummy	0	-1
//	dummy	1	0	1	A
//	dummy	2	0	2	B
//
// The children of each node are added
// in the order of the rows,
// and trees are returned in the order
// of their first row.
// Parent references are resolved after reading all rows,
// so the trees are not validated.
func ReadTSV(r io.Reader) ([]*Tree, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"tree", "node", "parent", "length", "name"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	field := func(row []string, f string) string {
		i := fields[f]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	type edge struct {
		parent int
		child  int
		row    int
	}

	var ts []*Tree
	trees := make(map[string]*Tree)
	ids := make(map[*Tree]map[int]int)
	edges := make(map[*Tree][]edge)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "tree"
		tn := strings.Join(strings.Fields(field(row, f)), " ")
		if tn == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty tree name", ln, f)
		}
		t, ok := trees[tn]
		if !ok {
			t = New()
			t.SetName(tn)
			trees[tn] = t
			ids[t] = make(map[int]int)
			ts = append(ts, t)
		}

		f = "node"
		nID, err := strconv.Atoi(field(row, f))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if _, dup := ids[t][nID]; dup {
			return nil, fmt.Errorf("on row %d: field %q: node %d already defined", ln, f, nID)
		}

		f = "parent"
		pID, err := strconv.Atoi(field(row, f))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		name := field(row, "name")
		f = "length"
		var id int
		if v := strings.TrimSpace(field(row, f)); v == "" {
			id = t.AddNoLength(name)
		} else {
			l, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
			id = t.Add(name, l)
		}
		ids[t][nID] = id
		if pID >= 0 {
			edges[t] = append(edges[t], edge{parent: pID, child: id, row: ln})
		}
	}

	for _, t := range ts {
		for _, e := range edges[t] {
			p, ok := ids[t][e.parent]
			if !ok {
				return nil, fmt.Errorf("on row %d: field %q: tree %q: node %d not found", e.row, "parent", t.Title(), e.parent)
			}
			t.AddChild(p, e.child)
		}
	}
	return ts, nil
}

// WriteTSV writes the trees into a tab-delimited file.
// Nodes are written in preorder,
// so the order of the children is preserved.
func WriteTSV(w io.Writer, ts ...*Tree) error {
	bw := csv.NewWriter(w)
	bw.Comma = '\t'
	bw.UseCRLF = true

	if _, err := fmt.Fprintf(w, "# phylogenetic trees\n"); err != nil {
		return err
	}
	if err := bw.Write([]string{"tree", "node", "parent", "length", "name"}); err != nil {
		return err
	}

	for _, t := range ts {
		_, order, err := t.Validate()
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Title(), err)
		}
		p, err := t.Parents()
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Title(), err)
		}

		for _, id := range order {
			var l string
			if t.HasLength(id) {
				l = strconv.FormatFloat(t.Length(id), 'g', -1, 64)
			}
			row := []string{
				t.Title(),
				strconv.Itoa(id),
				strconv.Itoa(p.Parent(id)),
				l,
				t.Name(id),
			}
			if err := bw.Write(row); err != nil {
				return err
			}
		}
	}

	bw.Flush()
	if err := bw.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
