// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in a treefig project as image files.
package draw

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/js-arias/command"
	"github.com/js-arias/treefig/config"
	"github.com/js-arias/treefig/figure"
	"github.com/js-arias/treefig/project"
	"github.com/js-arias/treefig/render"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>]
	[--format <format>] [--width <value>] [--height <value>]
	[--labels] [-v|--verbose]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw project trees as image files",
	Long: `
Command draw reads a treefig project and draws the trees as rectangular tree
figures. Terminal branches are colored using the color groups defined in the
project, and each run of contiguous leaves with the same color is marked with a
bar at the right of the tree. A scale bar is drawn below the tree.

The argument of the command is the name of the project file.

The figure settings are read from the settings file of the project, and the
color groups from the settings and the color key file of the project. See
"treefig help settings" and "treefig help color-keys".

By default, all trees in the project will be drawn. If the flag --tree is set,
only the indicated tree will be drawn.

By default, the output is an SVG file. Use the flag --format to define a
different format. Valid formats are: eps, jpg, pdf, png, svg, and tif.

By default, the width of the tree is 600 points, and the height is 20 points
per leaf. Use the flags --width and --height to set a different size.

If the flag --labels is set, leaf names will be drawn at the right of the side
bars, regardless of the settings file.

If the flag --verbose, or -v, is set, the progress of the command will be
reported in the standard error.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var labels bool
var verbose bool
var width float64
var height float64
var format string
var treeName string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&labels, "labels", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	c.Flags().Float64Var(&width, "width", 600, "")
	c.Flags().Float64Var(&height, "height", 0, "")
	c.Flags().StringVar(&format, "format", "svg", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
}

// leafHeight is the default height
// used for each leaf.
const leafHeight = 20

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	format = strings.ToLower(format)
	if !slices.Contains(render.Formats, format) {
		return c.UsageError(fmt.Sprintf("unknown format %q", format))
	}
	if width <= 0 || height < 0 {
		return c.UsageError("invalid image size")
	}

	logger := newLogger()

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	cfg, err := p.Settings()
	if err != nil {
		return err
	}
	if labels {
		cfg.Labels = true
	}
	logger.Debug("settings", "file", p.Path(project.Settings), "groups", cfg.Colors.Len())

	ts, err := p.Select(treeName)
	if err != nil {
		return err
	}

	for _, t := range ts {
		tn := t.Title()
		start := time.Now()
		f, err := figure.New(t, cfg)
		if err != nil {
			return fmt.Errorf("tree %q: %v", tn, err)
		}
		warnUngrouped(logger, tn, f, cfg)

		name, err := writeFigure(tn, f)
		if err != nil {
			return err
		}
		logger.Info("tree drawn",
			"tree", tn,
			"leaves", len(f.Layout.Leaves()),
			"runs", len(f.Runs),
			"file", name,
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	}
	return nil
}

func newLogger() *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func warnUngrouped(logger *log.Logger, tn string, f *figure.Figure, cfg config.Config) {
	if cfg.Colors.Len() == 0 {
		return
	}

	t := f.Layout.Tree()
	var n int
	for _, id := range f.Layout.Leaves() {
		if _, ok := cfg.Colors.Classify(t.Name(id)); !ok {
			n++
			logger.Debug("leaf without color group", "tree", tn, "leaf", t.Name(id))
		}
	}
	if n > 0 {
		logger.Warn("leaves without color group", "tree", tn, "leaves", n)
	}
}

func writeFigure(name string, f *figure.Figure) (_ string, err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.%s", outPrefix, name, format)
	} else {
		name = fmt.Sprintf("%s.%s", name, format)
	}

	h := height
	if h == 0 {
		h = float64(len(f.Layout.Leaves())+1) * leafHeight
	}

	file, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer func() {
		e := file.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(file)
	if format == "svg" {
		err = render.SVG(bw, f, width, h)
	} else {
		err = render.Write(bw, f, vg.Length(width), vg.Length(h), format)
	}
	if err != nil {
		return "", fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("while writing file %q: %v", name, err)
	}
	return name, nil
}
