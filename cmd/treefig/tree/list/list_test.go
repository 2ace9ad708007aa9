// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package list_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/js-arias/treefig/cmd/treefig/tree/list"
	"github.com/js-arias/treefig/project"
	"github.com/js-arias/treefig/tree"
)

func TestStats(t *testing.T) {
	dir := t.TempDir()
	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	p.Add(project.Trees, "trees.tab")

	ts, err := tree.ReadNewick(strings.NewReader("(A:1,(B:1,C:2):0.5);(X,Y);"), "sp")
	if err != nil {
		t.Fatalf("unable to read newick: %v", err)
	}
	if err := p.WriteTrees(ts); err != nil {
		t.Fatalf("unable to write trees: %v", err)
	}
	if err := p.Write(); err != nil {
		t.Fatalf("unable to write project: %v", err)
	}

	tests := map[string]struct {
		args []string
		want string
	}{
		"names": {
			args: []string{p.Name()},
			want: "sp\nsp.1\n",
		},
		"terms": {
			args: []string{"--terms", p.Name()},
			want: "sp\t3\nsp.1\t2\n",
		},
		"stats": {
			args: []string{"--stats", p.Name()},
			want: "tree\tleaves\tinternal\tdepth\tmin\tmean\n" +
				"sp\t3\t2\t2.500000\t1.000000\t1.666667\n" +
				"sp.1\t2\t1\t0.000000\t0.000000\t0.000000\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			list.Command.SetStdout(&buf)
			if err := list.Command.Execute(test.args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != test.want {
				t.Errorf("output:\ngot:\n%s\nwant:\n%s", got, test.want)
			}
		})
	}
}
