// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/treefig/colorkey"
	"github.com/js-arias/treefig/project"
	"github.com/js-arias/treefig/tree"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Trees, "trees.tab"},
		{project.Colors, "colors.tab"},
		{project.Settings, "figure.yaml"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")
	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Settings, ""); prev != "figure.yaml" {
		t.Errorf("remove settings: got previous %q, want %q", prev, "figure.yaml")
	}
	testProject(t, np, []setPath{sets[0], sets[1]})

	want := filepath.Join(filepath.Dir(name), "trees.tab")
	if f := np.File(project.Trees); f != want {
		t.Errorf("trees file: got %q, want %q", f, want)
	}
	abs := filepath.Join(t.TempDir(), "colors.tab")
	np.Add(project.Colors, abs)
	if f := np.File(project.Colors); f != abs {
		t.Errorf("colors file: got %q, want %q", f, abs)
	}
	if f := np.File(project.Settings); f != "" {
		t.Errorf("settings file: got %q, want an empty path", f)
	}
}

func TestReadErrors(t *testing.T) {
	head := "# treefig project files\ndataset\tpath\n"
	tests := map[string]string{
		"no header":       "",
		"missing field":   "dataset\tfile\ntrees\ttrees.tab\n",
		"unknown dataset": head + "ranges\tranges.tab\n",
		"duplicated":      head + "trees\ttrees.tab\nTrees\tother.tab\n",
		"empty path":      head + "trees\t \n",
	}

	dir := t.TempDir()
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			f := filepath.Join(dir, strings.ReplaceAll(name, " ", "-")+".tab")
			if err := os.WriteFile(f, []byte(in), 0o644); err != nil {
				t.Fatalf("unable to write project: %v", err)
			}
			if _, err := project.Read(f); err == nil {
				t.Errorf("expecting error")
			}
		})
	}

	if _, err := project.ParseDataset("Colors"); err != nil {
		t.Errorf("dataset %q: unexpected error: %v", "Colors", err)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func TestSettings(t *testing.T) {
	dir := t.TempDir()
	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))

	cfg, err := p.Settings()
	if err != nil {
		t.Fatalf("settings without files: %v", err)
	}
	if cfg.Colors.Len() != 0 {
		t.Errorf("default settings: got %d color groups, want 0", cfg.Colors.Len())
	}

	settings := filepath.Join(dir, "figure.yaml")
	in := `scale_bar_fraction: 0.2
color_groups:
  A: red
  B: "#00ff00"
`
	if err := os.WriteFile(settings, []byte(in), 0o644); err != nil {
		t.Fatalf("unable to write settings: %v", err)
	}
	colors := filepath.Join(dir, "colors.tab")
	key := "prefix\tcolor\tlabel\nB\t0,0,255\tclade B\nC\tauto\tclade C\n"
	if err := os.WriteFile(colors, []byte(key), 0o644); err != nil {
		t.Fatalf("unable to write color key: %v", err)
	}
	p.Add(project.Settings, settings)
	p.Add(project.Colors, colors)

	cfg, err = p.Settings()
	if err != nil {
		t.Fatalf("unable to read settings: %v", err)
	}
	if cfg.ScaleBarFraction != 0.2 {
		t.Errorf("scale bar fraction: got %.3f, want %.3f", cfg.ScaleBarFraction, 0.2)
	}

	es := cfg.Colors.Entries()
	var prefixes []string
	for _, e := range es {
		prefixes = append(prefixes, e.Prefix)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(prefixes, want) {
		t.Fatalf("color groups: got %v, want %v", prefixes, want)
	}
	if want := (color.RGBA{0, 0, 255, 255}); es[1].Color != want {
		t.Errorf("group B: got color %v, want %v", es[1].Color, want)
	}
	if es[2].Color.A == 0 {
		t.Errorf("group C: automatic color not painted")
	}
	if g, ok := cfg.Colors.Classify("C12"); !ok || g != colorkey.Group(2) {
		t.Errorf("classify C12: got %d %v, want %d", g, ok, 2)
	}
}

func TestTrees(t *testing.T) {
	dir := t.TempDir()
	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))

	if _, err := p.Tree(""); err == nil {
		t.Errorf("expecting error on a project without trees")
	}
	if _, err := p.Select(""); err == nil {
		t.Errorf("expecting error on a project without trees")
	}
	if err := p.WriteTrees(nil); err == nil {
		t.Errorf("expecting error on a project without tree file")
	}

	ts, err := tree.ReadNewick(strings.NewReader("((B1:1,A2:1):1,A1:2);(X:1,Y:1);"), "example")
	if err != nil {
		t.Fatalf("unable to read newick: %v", err)
	}

	// relative to the project file
	p.Add(project.Trees, "trees.tab")
	if err := p.WriteTrees(ts); err != nil {
		t.Fatalf("unable to write trees: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "trees.tab")); err != nil {
		t.Fatalf("tree file: %v", err)
	}

	tr, err := p.Tree("")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	terms, err := tr.Terms()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"B1", "A2", "A1"}; !reflect.DeepEqual(terms, want) {
		t.Errorf("terms: got %v, want %v", terms, want)
	}

	tr, err = p.Tree("example.1")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	if tr.Title() != "example.1" {
		t.Errorf("tree: got %q, want %q", tr.Title(), "example.1")
	}

	if _, err := p.Tree("unknown"); err == nil {
		t.Errorf("expecting error on an undefined tree")
	}

	sel, err := p.Select("")
	if err != nil {
		t.Fatalf("unable to select trees: %v", err)
	}
	if len(sel) != 2 {
		t.Errorf("select all: got %d trees, want %d", len(sel), 2)
	}
	sel, err = p.Select("example.1")
	if err != nil {
		t.Fatalf("unable to select trees: %v", err)
	}
	if len(sel) != 1 || sel[0].Title() != "example.1" {
		t.Errorf("select %q: got %d trees", "example.1", len(sel))
	}
}
