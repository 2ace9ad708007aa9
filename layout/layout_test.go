// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout_test

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/treefig/layout"
	"github.com/js-arias/treefig/tree"
)

const tolerance = 1e-9

func TestTwoLeaves(t *testing.T) {
	tr := tree.New()
	root := tr.AddNoLength("")
	a := tr.Add("A", 1)
	b := tr.Add("B", 2)
	tr.AddChild(root, a)
	tr.AddChild(root, b)

	l, err := layout.New(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[int][2]float64{
		root: {0, 0.5},
		a:    {1, 0},
		b:    {2, 1},
	}
	testCoords(t, l, want)
	if m := l.MaxX(); m != 2 {
		t.Errorf("max x: got %.3f, want %.3f", m, 2.0)
	}
}

func TestBalanced(t *testing.T) {
	tr := tree.New()
	root := tr.AddNoLength("")
	c1 := tr.Add("", 1)
	c2 := tr.Add("", 1)
	tr.AddChild(root, c1)
	tr.AddChild(root, c2)

	var leaves []int
	for i, p := range []int{c1, c1, c2, c2} {
		id := tr.Add(string(rune('a'+i)), 1)
		tr.AddChild(p, id)
		leaves = append(leaves, id)
	}

	l, err := layout.New(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[int][2]float64{
		root: {0, 1.5},
		c1:   {1, 0.5},
		c2:   {1, 2.5},
	}
	for i, id := range leaves {
		want[id] = [2]float64{2, float64(i)}
	}
	testCoords(t, l, want)

	if !reflect.DeepEqual(l.Leaves(), leaves) {
		t.Errorf("leaves: got %v, want %v", l.Leaves(), leaves)
	}
	if m := l.MaxY(); m != 3 {
		t.Errorf("max y: got %.3f, want %.3f", m, 3.0)
	}
}

func TestSingleNode(t *testing.T) {
	tr := tree.New()
	root := tr.AddNoLength("alone")

	l, err := layout.New(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testCoords(t, l, map[int][2]float64{root: {0, 0}})
	if m := l.MaxX(); m != 0 {
		t.Errorf("max x: got %.3f, want %.3f", m, 0.0)
	}
	if !reflect.DeepEqual(l.Leaves(), []int{root}) {
		t.Errorf("leaves: got %v, want %v", l.Leaves(), []int{root})
	}
}

func TestStats(t *testing.T) {
	tr := tree.New()
	root := tr.AddNoLength("")
	a := tr.Add("A", 1)
	in := tr.Add("", 0.5)
	b := tr.Add("B", 1)
	c := tr.Add("C", 2)
	tr.AddChild(root, a)
	tr.AddChild(root, in)
	tr.AddChild(in, b)
	tr.AddChild(in, c)

	l, err := layout.New(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := l.Stats()
	if s.Leaves != 3 || s.Internal != 2 {
		t.Errorf("nodes: got %d leaves %d internal, want %d %d", s.Leaves, s.Internal, 3, 2)
	}
	if s.Depth != 2.5 || s.MinDepth != 1 {
		t.Errorf("depth: got %.3f-%.3f, want %.3f-%.3f", s.MinDepth, s.Depth, 1.0, 2.5)
	}
	if math.Abs(s.MeanDepth-5.0/3) > tolerance {
		t.Errorf("mean depth: got %.6f, want %.6f", s.MeanDepth, 5.0/3)
	}

	single, err := layout.New(func() *tree.Tree {
		tr := tree.New()
		tr.AddNoLength("alone")
		return tr
	}())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := single.Stats(); s.Leaves != 1 || s.Internal != 0 || s.Depth != 0 {
		t.Errorf("single node: got %+v", s)
	}
}

func TestNoLength(t *testing.T) {
	tr := tree.New()
	root := tr.AddNoLength("")
	in := tr.AddNoLength("")
	a := tr.Add("A", 1)
	b := tr.AddNoLength("B")
	tr.AddChild(root, in)
	tr.AddChild(in, a)
	tr.AddChild(in, b)

	l, err := layout.New(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testCoords(t, l, map[int][2]float64{
		root: {0, 0.5},
		in:   {0, 0.5},
		a:    {1, 0},
		b:    {0, 1},
	})
}

func TestCycle(t *testing.T) {
	tr := tree.New()
	root := tr.AddNoLength("")
	x := tr.Add("", 1)
	y := tr.Add("", 1)
	a := tr.Add("A", 1)
	tr.AddChild(root, x)
	tr.AddChild(x, y)
	tr.AddChild(y, a)
	tr.AddChild(y, x)

	l, err := layout.New(tr)
	if l != nil {
		t.Errorf("expecting no layout on a malformed tree")
	}
	var mErr *tree.MalformedTreeError
	if !errors.As(err, &mErr) {
		t.Fatalf("got error %v, want a malformed tree error", err)
	}
	if mErr.Kind != tree.Cycle {
		t.Errorf("got kind %q, want %q", mErr.Kind, tree.Cycle)
	}
}

func TestRandomTrees(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		tr := randTree(rnd, 2+rnd.IntN(40))

		l, err := layout.New(tr)
		if err != nil {
			t.Fatalf("tree %d: unexpected error: %v", i, err)
		}
		testProperties(t, tr, l)

		// a second pass gives the same coordinates
		l2, err := layout.New(tr)
		if err != nil {
			t.Fatalf("tree %d: unexpected error: %v", i, err)
		}
		for _, id := range tr.Nodes() {
			if l.X(id) != l2.X(id) || l.Y(id) != l2.Y(id) {
				t.Errorf("tree %d: node %d: coordinates differ between passes", i, id)
			}
		}
	}
}

func TestTSV(t *testing.T) {
	tr := tree.New()
	root := tr.AddNoLength("")
	a := tr.Add("A", 1)
	b := tr.Add("B", 2)
	tr.AddChild(root, a)
	tr.AddChild(root, b)

	l, err := layout.New(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := l.TSV(&buf); err != nil {
		t.Fatalf("unable to write TSV: %v", err)
	}

	want := "# tree node coordinates\n" +
		"node\tname\tx\ty\tlength\tleaf\r\n" +
		"0\t\t0.000000\t0.500000\t0.000000\tfalse\r\n" +
		"1\tA\t1.000000\t0.000000\t1.000000\ttrue\r\n" +
		"2\tB\t2.000000\t1.000000\t2.000000\ttrue\r\n"
	if got := buf.String(); got != want {
		t.Errorf("tsv: got\n%q\nwant\n%q", got, want)
	}
}

func TestOutline(t *testing.T) {
	tr := tree.New()
	root := tr.AddNoLength("")
	in := tr.Add("", 0.5)
	a := tr.Add("A", 1)
	b := tr.Add("B", 0.25)
	c := tr.AddNoLength("C")
	tr.AddChild(root, in)
	tr.AddChild(in, a)
	tr.AddChild(in, b)
	tr.AddChild(root, c)

	l, err := layout.New(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := l.Outline(&buf); err != nil {
		t.Fatalf("unable to write outline: %v", err)
	}
	want := strings.Join([]string{
		"internal",
		"  internal:0.500",
		"    A:1.000",
		"    B:0.250",
		"  C",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("outline: got\n%s\nwant\n%s", got, want)
	}
}

// randTree builds a random tree with n leaves
// by joining random pairs of subtrees.
func randTree(rnd *rand.Rand, n int) *tree.Tree {
	tr := tree.New()
	var pending []int
	for i := 0; i < n; i++ {
		if rnd.IntN(5) == 0 {
			pending = append(pending, tr.AddNoLength("leaf"))
			continue
		}
		pending = append(pending, tr.Add("leaf", rnd.Float64()))
	}
	for len(pending) > 1 {
		k := 2 + rnd.IntN(2)
		if k > len(pending) {
			k = len(pending)
		}
		var id int
		if len(pending) == k {
			id = tr.AddNoLength("")
		} else {
			id = tr.Add("", rnd.Float64())
		}
		for j := 0; j < k; j++ {
			p := rnd.IntN(len(pending))
			tr.AddChild(id, pending[p])
			pending = slices.Delete(pending, p, p+1)
		}
		pending = append(pending, id)
	}
	return tr
}

func testProperties(t testing.TB, tr *tree.Tree, l *layout.Layout) {
	t.Helper()

	var ys []float64
	for _, id := range l.Leaves() {
		ys = append(ys, l.Y(id))
	}
	slices.Sort(ys)
	for i, y := range ys {
		if y != float64(i) {
			t.Errorf("leaf y coordinates: got %v, want 0..%d", ys, len(ys)-1)
			break
		}
	}

	for _, id := range tr.Nodes() {
		p := l.Parent(id)
		if p < 0 {
			if l.X(id) != 0 {
				t.Errorf("root %d: got x %.6f, want 0", id, l.X(id))
			}
		} else if x := l.X(p) + tr.Length(id); math.Abs(l.X(id)-x) > tolerance {
			t.Errorf("node %d: got x %.6f, want %.6f", id, l.X(id), x)
		}

		children := tr.Children(id)
		if len(children) == 0 {
			continue
		}
		var sum float64
		for _, c := range children {
			sum += l.Y(c)
		}
		if y := sum / float64(len(children)); math.Abs(l.Y(id)-y) > tolerance {
			t.Errorf("node %d: got y %.6f, want %.6f", id, l.Y(id), y)
		}
	}
}

func testCoords(t testing.TB, l *layout.Layout, want map[int][2]float64) {
	t.Helper()

	for id, w := range want {
		if x := l.X(id); math.Abs(x-w[0]) > tolerance {
			t.Errorf("node %d: got x %.6f, want %.6f", id, x, w[0])
		}
		if y := l.Y(id); math.Abs(y-w[1]) > tolerance {
			t.Errorf("node %d: got y %.6f, want %.6f", id, y, w[1])
		}
	}
}
