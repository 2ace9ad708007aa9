// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package add_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/treefig/cmd/treefig/tree/add"
	"github.com/js-arias/treefig/project"
)

func TestAdd(t *testing.T) {
	dir := t.TempDir()
	prj := filepath.Join(dir, "project.tab")
	nwk := writeFile(t, dir, "sp.nwk", "((B:1,A:1):1,C:2);\n(X,Y);\n")

	if err := add.Command.Execute([]string{prj, nwk}); err != nil {
		t.Fatalf("unable to add trees: %v", err)
	}

	p, err := project.Read(prj)
	if err != nil {
		t.Fatalf("unable to read project: %v", err)
	}
	if f := p.File(project.Trees); f != filepath.Join(dir, "trees.tab") {
		t.Errorf("tree file: got %q, want %q", f, filepath.Join(dir, "trees.tab"))
	}
	ts, err := p.Trees()
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}
	var names []string
	for _, tr := range ts {
		names = append(names, tr.Title())
	}
	if want := []string{"sp", "sp.1"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("trees: got %v, want %v", names, want)
	}

	terms, err := ts[0].Terms()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"B", "A", "C"}; !reflect.DeepEqual(terms, want) {
		t.Errorf("terms: got %v, want %v", terms, want)
	}
	for _, id := range ts[1].Nodes() {
		if ts[1].HasLength(id) {
			t.Errorf("tree %q: node %d: unexpected branch length", ts[1].Title(), id)
		}
	}

	// trees are copied into a new tree file
	nex := writeFile(t, dir, "dated.nex", "#NEXUS\nBegin trees;\n\ttree dated = (A:1,B:1);\nEnd;\n")
	if err := add.Command.Execute([]string{"-f", "all.tab", prj, nex}); err != nil {
		t.Fatalf("unable to add trees: %v", err)
	}
	p, err = project.Read(prj)
	if err != nil {
		t.Fatalf("unable to read project: %v", err)
	}
	ts, err = p.Trees()
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}
	if len(ts) != 3 || ts[2].Title() != "dated" {
		t.Errorf("trees: got %d, want %d (last %q)", len(ts), 3, "dated")
	}
}

func TestAddErrors(t *testing.T) {
	dir := t.TempDir()
	prj := filepath.Join(dir, "project.tab")
	nwk := writeFile(t, dir, "sp.nwk", "(A:1,B:1);")
	if err := add.Command.Execute([]string{prj, nwk}); err != nil {
		t.Fatalf("unable to add trees: %v", err)
	}

	cycle := "tree\tnode\tparent\tlength\tname\n" +
		"bad\t0\t-1\t\tR\n" +
		"bad\t1\t2\t1\tX\n" +
		"bad\t2\t1\t1\tY\n"
	tests := map[string]struct {
		args []string
		msg  string
	}{
		"duplicated name": {
			args: []string{prj, nwk},
			msg:  "already in project",
		},
		"malformed tree": {
			args: []string{"--format", "tsv", prj, writeFile(t, dir, "bad.txt", cycle)},
			msg:  "cycle",
		},
		"unknown format": {
			args: []string{"--format", "phylip", prj, nwk},
			msg:  "unknown tree format",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := add.Command.Execute(test.args)
			if err == nil {
				t.Fatalf("expecting error")
			}
			if !strings.Contains(err.Error(), test.msg) {
				t.Errorf("got error %q, want %q", err, test.msg)
			}
		})
	}

	p, err := project.Read(prj)
	if err != nil {
		t.Fatalf("unable to read project: %v", err)
	}
	ts, err := p.Trees()
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}
	if len(ts) != 1 {
		t.Errorf("trees: got %d, want %d", len(ts), 1)
	}
}

func writeFile(t testing.TB, dir, name, data string) string {
	t.Helper()

	f := filepath.Join(dir, name)
	if err := os.WriteFile(f, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write %q: %v", name, err)
	}
	return f
}
