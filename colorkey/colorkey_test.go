// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colorkey_test

import (
	"bytes"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/treefig/colorkey"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 128, 0, 255}
	gray  = color.RGBA{211, 211, 211, 255}
)

func TestClassify(t *testing.T) {
	k := colorkey.New()
	k.Add("A", red)
	k.Add("A1", green)
	k.Add("Bx", gray)

	tests := []struct {
		name  string
		group colorkey.Group
		ok    bool
	}{
		{"A1", 1, true},  // exact match wins
		{"A12", 0, true}, // first prefix wins
		{"A2", 0, true},
		{"Bx3", 2, true},
		{"B1", colorkey.NoGroup, false},
		{"", colorkey.NoGroup, false},
	}
	for _, test := range tests {
		g, ok := k.Classify(test.name)
		if g != test.group || ok != test.ok {
			t.Errorf("classify %q: got %d %v, want %d %v", test.name, g, ok, test.group, test.ok)
		}
	}

	if c, ok := k.Color(1); !ok || c != green {
		t.Errorf("color of group 1: got %v %v, want %v", c, ok, green)
	}
	if _, ok := k.Color(colorkey.NoGroup); ok {
		t.Errorf("color of no group: unexpected color")
	}
}

func TestAddReplace(t *testing.T) {
	k := colorkey.New()
	k.Add("A", red)
	k.Add("B", green)
	if g := k.Add("A", gray); g != 0 {
		t.Errorf("replace: got group %d, want %d", g, 0)
	}
	if k.Len() != 2 {
		t.Errorf("len: got %d, want %d", k.Len(), 2)
	}
	if c, _ := k.Color(0); c != gray {
		t.Errorf("replaced color: got %v, want %v", c, gray)
	}
}

func TestMerge(t *testing.T) {
	k := colorkey.New()
	k.Add("A", red)
	k.Add("B", green)

	o := colorkey.New()
	o.AddLabel("B", gray, "clade B")
	o.Add("C", red)
	k.Merge(o)

	want := []colorkey.Entry{
		{Prefix: "A", Color: red},
		{Prefix: "B", Color: gray, Label: "clade B"},
		{Prefix: "C", Color: red},
	}
	if got := k.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("merge: got %v, want %v", got, want)
	}

	k.Merge(nil)
	if k.Len() != len(want) {
		t.Errorf("merge with nil key: got len %d, want %d", k.Len(), len(want))
	}
}

func TestNilKey(t *testing.T) {
	var k *colorkey.Key
	if g, ok := k.Classify("A"); ok || g != colorkey.NoGroup {
		t.Errorf("nil key: got %d %v, want no group", g, ok)
	}
	if k.Len() != 0 {
		t.Errorf("nil key: got len %d, want 0", k.Len())
	}
}

func TestParse(t *testing.T) {
	tests := map[string]color.RGBA{
		"#D3D3D3":       gray,
		"#f00":          red,
		"211, 211, 211": gray,
		"red":           red,
		"LightGray":     gray,
	}
	for v, want := range tests {
		c, err := colorkey.Parse(v)
		if err != nil {
			t.Errorf("parse %q: unexpected error: %v", v, err)
			continue
		}
		if c != want {
			t.Errorf("parse %q: got %v, want %v", v, c, want)
		}
	}

	for _, v := range []string{"", "#12", "#gggggg", "1,2", "1,2,300", "not-a-color"} {
		if _, err := colorkey.Parse(v); err == nil {
			t.Errorf("parse %q: expecting error", v)
		}
	}

	if s := colorkey.Format(gray); s != "#d3d3d3" {
		t.Errorf("format: got %q, want %q", s, "#d3d3d3")
	}
}

func TestPaint(t *testing.T) {
	k := colorkey.New()
	k.AddAuto("A", "")
	k.Add("B", red)
	k.AddAuto("C", "")

	if err := k.Paint(colorkey.Iridescent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cs, _ := colorkey.Scheme(colorkey.Iridescent, 2)
	want := []color.RGBA{cs[0], red, cs[1]}
	for i, e := range k.Entries() {
		if e.Color != want[i] {
			t.Errorf("entry %d: got %v, want %v", i, e.Color, want[i])
		}
	}

	if err := k.Paint("plaid"); err == nil {
		t.Errorf("paint: expecting error on unknown scheme")
	}
}

func TestTSV(t *testing.T) {
	in := `# colors
prefix	color	label
A	211, 211, 211	clade A
B	#ff0000	
C	auto	clade C
`
	k, err := colorkey.ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read key: %v", err)
	}
	want := []colorkey.Entry{
		{Prefix: "A", Color: gray, Label: "clade A"},
		{Prefix: "B", Color: red},
		{Prefix: "C", Label: "clade C", Auto: true},
	}
	testEntries(t, "read", k, want)

	var buf bytes.Buffer
	if err := k.TSV(&buf); err != nil {
		t.Fatalf("unable to write key: %v", err)
	}
	nk, err := colorkey.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("unable to read key: %v", err)
	}
	testEntries(t, "write", nk, want)
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"no color field": "prefix\tlabel\nA\tx\n",
		"bad color":      "prefix\tcolor\nA\tnope\n",
		"empty prefix":   "prefix\tcolor\n\tred\n",
	}
	for name, in := range tests {
		if _, err := colorkey.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func testEntries(t testing.TB, name string, k *colorkey.Key, want []colorkey.Entry) {
	t.Helper()

	if got := k.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}
