// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/treefig/colorkey"
	"github.com/js-arias/treefig/config"
	"github.com/js-arias/treefig/tree"
)

// Colors reads the color key file of the project.
// If no file is defined,
// it returns an empty key.
func (p *Project) Colors() (*colorkey.Key, error) {
	name := p.File(Colors)
	if name == "" {
		return colorkey.New(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	k, err := colorkey.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return k, nil
}

// Settings reads the figure settings of the project.
// Colors from the color key file of the project
// are merged into the color groups of the settings.
// If no settings file is defined,
// the default settings are used.
func (p *Project) Settings() (config.Config, error) {
	cfg := config.Default()
	if name := p.File(Settings); name != "" {
		var err error
		cfg, err = config.Read(name)
		if err != nil {
			return config.Config{}, err
		}
	}

	k, err := p.Colors()
	if err != nil {
		return config.Config{}, err
	}
	cfg.Colors.Merge(k)
	if err := cfg.Colors.Paint(cfg.Palette); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Trees reads the trees of the project,
// in the order of the tree file.
// If no file is defined,
// it returns an empty list.
func (p *Project) Trees() ([]*tree.Tree, error) {
	name := p.File(Trees)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := tree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return ts, nil
}

// Tree returns a tree of the project.
// If name is empty,
// it returns the first tree.
func (p *Project) Tree(name string) (*tree.Tree, error) {
	ts, err := p.Trees()
	if err != nil {
		return nil, err
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("project %q: no trees defined", p.name)
	}
	if name == "" {
		return ts[0], nil
	}
	for _, t := range ts {
		if t.Title() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("project %q: tree %q not found", p.name, name)
}

// Select returns the trees of the project
// with the given name.
// If name is empty,
// it returns all the trees.
func (p *Project) Select(name string) ([]*tree.Tree, error) {
	if name != "" {
		t, err := p.Tree(name)
		if err != nil {
			return nil, err
		}
		return []*tree.Tree{t}, nil
	}

	ts, err := p.Trees()
	if err != nil {
		return nil, err
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("project %q: no trees defined", p.name)
	}
	return ts, nil
}

// WriteTrees writes the trees
// into the tree file of the project.
func (p *Project) WriteTrees(ts []*tree.Tree) (err error) {
	name := p.File(Trees)
	if name == "" {
		return fmt.Errorf("project %q: tree file not defined", p.name)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tree.WriteTSV(f, ts...); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
