// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in the trees of a treefig project.
package terms

import (
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/treefig/project"
)

var Command = &command.Command{
	Usage: "terms [--tree <tree-name>] [--groups] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the trees from a treefig project and print the name of
the terminals in the standard output.

The argument of the command is the name of the project file.

By default all terminals will be printed. If the flag --tree is set, only the
terminals of the indicated tree will be printed.

If the flag --groups is set, the prefix of the color group assigned to each
terminal will be printed after the terminal name, using the color groups
defined in the project settings and color key. Terminals without a group will
be marked with a "-".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var groups bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&groups, "groups", false, "")
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

	terms := make(map[string]bool)
	for _, t := range ts {
		tt, err := t.Terms()
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Title(), err)
		}
		for _, tax := range tt {
			terms[tax] = true
		}
	}

	termList := make([]string, 0, len(terms))
	for tax := range terms {
		termList = append(termList, tax)
	}
	slices.Sort(termList)

	if !groups {
		for _, term := range termList {
			fmt.Fprintf(c.Stdout(), "%s\n", term)
		}
		return nil
	}

	cfg, err := p.Settings()
	if err != nil {
		return err
	}
	es := cfg.Colors.Entries()
	for _, term := range termList {
		g, ok := cfg.Colors.Classify(term)
		if !ok {
			fmt.Fprintf(c.Stdout(), "%s\t-\n", term)
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", term, es[g].Prefix)
	}
	return nil
}
