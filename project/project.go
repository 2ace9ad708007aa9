// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of treefig project files.
//
// A treefig project is a tab-delimited file (TSV)
// that points to the data files
// used to draw a tree figure:
// the trees,
// the color key of the leaves,
// and the figure settings.
// Relative paths are relative to the directory
// of the project file.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for phylogenetic trees.
	Trees Dataset = "trees"

	// File for leaf color keys
	// (name prefixes and colors).
	Colors Dataset = "colors"

	// File for figure settings
	// (a YAML or TOML file).
	Settings Dataset = "settings"
)

// Datasets is the list of valid datasets,
// in the order used in project files.
var Datasets = []Dataset{
	Trees,
	Colors,
	Settings,
}

// ParseDataset returns the dataset
// identified by a keyword.
func ParseDataset(s string) (Dataset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Datasets {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dataset %q", s)
}

// A Project is a set of dataset files.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{paths: make(map[Dataset]string)}
}

// Read reads a project file.
//
// The file is a TSV with the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Here is an example file:
//
//	# treefig project files
//	dataset	path
//	trees	trees.tab
//	colors	colors.tab
//	settings	figure.yaml
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func decode(r io.Reader) (*Project, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(h)] = i
	}
	for _, h := range []string{"dataset", "path"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "dataset"
		set, err := ParseDataset(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if _, dup := p.paths[set]; dup {
			return nil, fmt.Errorf("on row %d: field %q: dataset %q already defined", ln, f, set)
		}

		f = "path"
		path := strings.TrimSpace(row[fields[f]])
		if path == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty path", ln, f)
		}
		p.paths[set] = path
	}
	return p, nil
}

// Add sets the path of a dataset
// and returns the previous path.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}
	p.paths[set] = path
	return prev
}

// File returns the path of a dataset
// ready to be opened:
// a relative path is joined
// to the directory of the project file.
// It returns an empty string
// if the dataset is not defined.
func (p *Project) File(set Dataset) string {
	path := p.paths[set]
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(p.name), path)
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// Path returns the path of a dataset
// as stored in the project file.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the defined datasets.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for _, d := range Datasets {
		if _, ok := p.paths[d]; ok {
			sets = append(sets, d)
		}
	}
	return sets
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes the project file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := p.encode(bw); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *Project) encode(w io.Writer) error {
	fmt.Fprintf(w, "# treefig project files\n")
	fmt.Fprintf(w, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"dataset", "path"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tab.Write([]string{string(s), p.paths[s]}); err != nil {
			return err
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
