// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add trees
// to a treefig project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/treefig/project"
	"github.com/js-arias/treefig/tree"
)

var Command = &command.Command{
	Usage: `add [-f|--file <tree-file>] [--format <format>]
	[--name <tree-name>] [--scale <value>]
	<project-file> [<tree-file>...]`,
	Short: "add phylogenetic trees to a treefig project",
	Long: `
Command add reads one or more trees from one or more tree files, and adds the
trees to a treefig project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more tree files can be given as arguments. If no file is given, or the
file is "-", the trees will be read from the standard input.

The flag --format sets the format of the input files. Valid formats are:

	newick    trees in parenthetical format
	nexus     the trees block of a nexus file
	tsv       a treefig tree file
	timetree  a tab-delimited file of time calibrated trees

If the flag is not set, the format is guessed from the file extension (.nex
and .nexus for nexus files, .tab and .tsv for treefig tree files), and any
other file will be read as a newick file.

Newick and treefig tree files keep the order of the children as found in the
file. Nexus and timetree files are read as time calibrated trees, so the
children are sorted by size and age, and branch lengths are always defined.

Newick trees are named after the name of the file (without extension). Use
the flag --name to set a different name. If a file has more than one tree,
the trees after the first one will be named <name>.1, <name>.2, and so on.

Branch lengths of nexus and timetree files are stored in million years. Use
the flag --scale, with the value in years of a unit of branch length, to use
a different scale.

By default the trees will be stored in the tree file currently defined for the
project. If the project does not have a tree file, a new one will be created
with the name 'trees.tab'. A different tree file name can be defined using the
flag --file, or -f. If this flag is used, the trees already in the project
will be copied into the new file. Relative paths are relative to the directory
of the project file.

Every added tree is validated before it is stored: it must have a single root,
no cycles, and each node must have a single parent. Tree names must be unique
in the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var format string
var treeName string
var scale float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&format, "format", "", "")
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().Float64Var(&scale, "scale", tree.MillionYears, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	ts, err := p.Trees()
	if err != nil {
		return fmt.Errorf("on project %q: %v", pFile, err)
	}
	names := make(map[string]bool, len(ts))
	for _, t := range ts {
		names[t.Title()] = true
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		nt, err := readTrees(c.Stdin(), a)
		if err != nil {
			return err
		}
		for _, t := range nt {
			if _, _, err := t.Validate(); err != nil {
				return fmt.Errorf("on file %q: tree %q: %v", a, t.Title(), err)
			}
			if names[t.Title()] {
				return fmt.Errorf("on file %q: tree %q already in project", a, t.Title())
			}
			names[t.Title()] = true
			ts = append(ts, t)
		}
	}

	if treeFile != "" {
		p.Add(project.Trees, treeFile)
	} else if p.Path(project.Trees) == "" {
		p.Add(project.Trees, "trees.tab")
	}
	if err := p.WriteTrees(ts); err != nil {
		return err
	}
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readTrees(r io.Reader, name string) ([]*tree.Tree, error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var ts []*tree.Tree
	var err error
	switch ff := fileFormat(name); ff {
	case "newick":
		tn := treeName
		if tn == "" {
			tn = baseName(name)
		}
		ts, err = tree.ReadNewick(r, tn)
	case "nexus":
		ts, err = tree.ReadNexus(r, scale)
	case "tsv":
		ts, err = tree.ReadTSV(r)
	case "timetree":
		ts, err = tree.ReadTimeTSV(r, scale)
	default:
		return nil, fmt.Errorf("unknown tree format %q", ff)
	}
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return ts, nil
}

func fileFormat(name string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".nex", ".nexus":
		return "nexus"
	case ".tab", ".tsv":
		return "tsv"
	}
	return "newick"
}

func baseName(name string) string {
	if name == "-" {
		return "tree"
	}
	name = filepath.Base(name)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
