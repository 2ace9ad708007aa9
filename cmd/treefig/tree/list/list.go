// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a treefig project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/treefig/layout"
	"github.com/js-arias/treefig/project"
)

var Command = &command.Command{
	Usage: "list [--terms] [--stats] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a treefig project and print the tree names
in the standard output.

The argument of the command is the name of the project file.

If the flag --terms is set, the number of terminals of each tree will be
printed after the tree name.

If the flag --stats is set, a tab-delimited table is printed with the
following columns:

	- tree      the name of the tree
	- leaves    the number of terminals
	- internal  the number of internal nodes
	- depth     the largest distance from the root to a terminal
	- min       the smallest distance from the root to a terminal
	- mean      the mean distance from the root to the terminals
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numTerms bool
var stats bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&numTerms, "terms", false, "")
	c.Flags().BoolVar(&stats, "stats", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	ts, err := p.Trees()
	if err != nil {
		return err
	}

	if stats {
		fmt.Fprintf(c.Stdout(), "tree\tleaves\tinternal\tdepth\tmin\tmean\n")
	}
	for _, t := range ts {
		switch {
		case stats:
			l, err := layout.New(t)
			if err != nil {
				return fmt.Errorf("tree %q: %v", t.Title(), err)
			}
			s := l.Stats()
			fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\t%.6f\t%.6f\t%.6f\n", t.Title(), s.Leaves, s.Internal, s.Depth, s.MinDepth, s.MeanDepth)
		case numTerms:
			leaves, err := t.Leaves()
			if err != nil {
				return fmt.Errorf("tree %q: %v", t.Title(), err)
			}
			fmt.Fprintf(c.Stdout(), "%s\t%d\n", t.Title(), len(leaves))
		default:
			fmt.Fprintf(c.Stdout(), "%s\n", t.Title())
		}
	}
	return nil
}
