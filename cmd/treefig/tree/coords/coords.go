// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package coords implements a command to print
// the layout coordinates of the nodes
// of the trees in a treefig project.
package coords

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/treefig/layout"
	"github.com/js-arias/treefig/project"
)

var Command = &command.Command{
	Usage: `coords [--tree <tree-name>] [-o|--output <file>]
	<project-file>`,
	Short: "print node coordinates of project trees",
	Long: `
Command coords reads the trees from a treefig project, calculates the
coordinates of each node in a rectangular layout, and prints them as a
tab-delimited table.

The argument of the command is the name of the project file.

The table has the following columns:

	- node    the ID of the node in the layout
	- name    the name of the node (empty for internal nodes)
	- x       the distance from the root
	- y       the vertical position (leaves are placed at 0, 1, 2...)
	- length  the length of the branch
	- leaf    "true" if the node is a leaf

By default, all trees in the project will be printed. If the flag --tree is
set, only the indicated tree will be printed.

By default, the table is printed in the standard output. Use the flag -o, or
--output, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	ts, err := p.Select(treeName)
	if err != nil {
		return err
	}

	var w io.Writer = c.Stdout()
	if output != "" {
		var f *os.File
		f, err = os.Create(output)
		if err != nil {
			return err
		}
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
		w = f
	}
	bw := bufio.NewWriter(w)

	for _, t := range ts {
		l, err := layout.New(t)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Title(), err)
		}
		if err := l.TSV(bw); err != nil {
			return fmt.Errorf("tree %q: %v", t.Title(), err)
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return nil
}
