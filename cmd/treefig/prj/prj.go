// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/treefig/config"
	"github.com/js-arias/treefig/layout"
	"github.com/js-arias/treefig/project"
)

var Command = &command.Command{
	Usage: "prj [--settings <file>] <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a treefig project and prints the information of the
different project elements into the standard output. For each tree, it prints
the number of terminals, the number of internal nodes, and the depth of the
tree (the largest distance from the root to a terminal).

The argument of the command is the name of the project file. If the project
file does not exist, and the flag --settings is defined, a new project will be
created.

If the flag --settings is defined, the indicated file will be used as the
settings file of the project. A relative path is relative to the directory of
the project file. The file must be a valid YAML or TOML settings
file. See "treefig help settings".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var settingsFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&settingsFile, "settings", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	if settingsFile != "" {
		return addSettings(args[0])
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if tf := p.Path(project.Trees); tf != "" {
		if err := readTrees(c.Stdout(), p); err != nil {
			return err
		}
	}
	if err := readSettings(c.Stdout(), p); err != nil {
		return err
	}
	return nil
}

func addSettings(name string) error {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p = project.New()
		p.SetName(name)
	} else if err != nil {
		return err
	}

	p.Add(project.Settings, settingsFile)
	if _, err := config.Read(p.File(project.Settings)); err != nil {
		return err
	}
	return p.Write()
}

func readTrees(w io.Writer, p *project.Project) error {
	ts, err := p.Trees()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Trees:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Trees))
	for _, t := range ts {
		l, err := layout.New(t)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Title(), err)
		}
		s := l.Stats()
		fmt.Fprintf(w, "\t%s: %d terminals, %d internal nodes [depth %.3f]\n", t.Title(), s.Leaves, s.Internal, s.Depth)
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func readSettings(w io.Writer, p *project.Project) error {
	cfg, err := p.Settings()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Settings:\n")
	if sf := p.Path(project.Settings); sf != "" {
		fmt.Fprintf(w, "\tfile: %s\n", sf)
	} else {
		fmt.Fprintf(w, "\tfile: (default settings)\n")
	}
	if kf := p.Path(project.Colors); kf != "" {
		fmt.Fprintf(w, "\tcolor key: %s\n", kf)
	}
	fmt.Fprintf(w, "\tcolor groups: %d\n", cfg.Colors.Len())
	fmt.Fprintf(w, "\tpalette: %s\n", cfg.Palette)
	fmt.Fprintf(w, "\tleaf labels: %v\n", cfg.Labels)
	fmt.Fprintf(w, "\n")
	return nil
}
