// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package outline implements a command to print
// the topology of the trees in a treefig project
// as an indented list.
package outline

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/treefig/layout"
	"github.com/js-arias/treefig/project"
)

var Command = &command.Command{
	Usage: "outline [--tree <tree-name>] <project-file>",
	Short: "print the topology of project trees",
	Long: `
Command outline reads the trees from a treefig project and prints each tree
as an indented list, in which each node is printed with its branch length,
below its parent, in the same order in which the tree will be drawn.

The argument of the command is the name of the project file.

By default, all trees in the project will be printed. If the flag --tree is
set, only the indicated tree will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
}

func run(c *command.Command, args []string) error {
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

	for _, t := range ts {
		l, err := layout.New(t)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Title(), err)
		}
		fmt.Fprintf(c.Stdout(), "# %s\n", t.Title())
		if err := l.Outline(c.Stdout()); err != nil {
			return err
		}
	}
	return nil
}
