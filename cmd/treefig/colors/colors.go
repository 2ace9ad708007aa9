// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colors implements a command to manage
// the leaf color key of a project.
package colors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/treefig/colorkey"
	"github.com/js-arias/treefig/project"
)

var Command = &command.Command{
	Usage: `colors [--add <file>]
	[--set <value>] [--label <value>]
	<project-file>`,
	Short: "manage leaf color groups",
	Long: `
Command colors manages the color key of a treefig project. The color key
assigns a color to the leaves of a tree, based on the prefix of the leaf
names. See "treefig help color-keys" for the format of the key file.

The argument of the command is the name of the project file.

By default, the command will print the currently defined color groups into the
standard output, in the order used to match leaf names. Automatic colors are
printed with the color assigned from the palette of the project settings.

If the flag --add is defined, the indicated file will be used as the color key
file of the project. A relative path is relative to the directory of the
project file. If the file does not exist, an empty key file will be created.

If the flag --set is defined, it will set the color of a prefix. The syntax of
the definition is:

	"<prefix>=<color>"

Always use the quotations. The color can be an RGB value separated by commas,
a hexadecimal value, an SVG color name, or "auto". If the prefix is not
defined, it will be added at the end of the key.

If the flag --label is defined, it will set the label of a prefix. The syntax
of the definition is:

	"<prefix>=<label>"

Always use quotations.

If the project does not have a color key file, a new one will be created using
the name of the project file with the suffix "-colors.tab".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var keyFile string
var labelFlag string
var setFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&keyFile, "add", "", "")
	c.Flags().StringVar(&labelFlag, "label", "", "")
	c.Flags().StringVar(&setFlag, "set", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if keyFile != "" {
		p.Add(project.Colors, keyFile)
		if err := validKeyFile(p.File(project.Colors)); err != nil {
			return err
		}
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	if setFlag == "" && labelFlag == "" {
		return report(c.Stdout(), p)
	}

	k, err := p.Colors()
	if err != nil {
		return err
	}
	if setFlag != "" {
		if err := setColor(k); err != nil {
			return err
		}
	}
	if labelFlag != "" {
		if err := setLabel(k); err != nil {
			return err
		}
	}

	if p.Path(project.Colors) == "" {
		p.Add(project.Colors, defKeyFileName(args[0]))
		if err := p.Write(); err != nil {
			return err
		}
	}
	return writeKeyFile(p.File(project.Colors), k)
}

func report(w io.Writer, p *project.Project) error {
	cfg, err := p.Settings()
	if err != nil {
		return err
	}

	for _, e := range cfg.Colors.Entries() {
		cv := colorkey.Format(e.Color)
		if e.Auto {
			cv = fmt.Sprintf("%s (%s)", colorkey.AutoColor, cv)
		}
		l := e.Label
		if l == "" {
			l = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Prefix, cv, l)
	}
	return nil
}

func validKeyFile(name string) error {
	f, err := os.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return writeKeyFile(name, colorkey.New())
	}
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := colorkey.ReadTSV(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

// defKeyFileName returns the default name of the key file,
// relative to the project file.
func defKeyFileName(path string) string {
	p := filepath.Base(path)
	return strings.TrimSuffix(p, filepath.Ext(p)) + "-colors.tab"
}

func writeKeyFile(name string, k *colorkey.Key) (err error) {
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

	if err := k.TSV(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}

func setColor(k *colorkey.Key) error {
	prefix, v, ok := strings.Cut(setFlag, "=")
	if !ok || prefix == "" {
		return fmt.Errorf("invalid --set value: %q", setFlag)
	}

	var label string
	if e, ok := entry(k, prefix); ok {
		label = e.Label
	}

	if strings.ToLower(strings.TrimSpace(v)) == colorkey.AutoColor {
		k.AddAuto(prefix, label)
		return nil
	}
	cv, err := colorkey.Parse(v)
	if err != nil {
		return fmt.Errorf("invalid --set value: %q: %v", setFlag, err)
	}
	k.AddLabel(prefix, cv, label)
	return nil
}

func setLabel(k *colorkey.Key) error {
	prefix, l, ok := strings.Cut(labelFlag, "=")
	if !ok || prefix == "" {
		return fmt.Errorf("invalid --label value: %q", labelFlag)
	}

	e, ok := entry(k, prefix)
	if !ok {
		return fmt.Errorf("invalid --label value: %q: prefix %q not defined", labelFlag, prefix)
	}
	if e.Auto {
		k.AddAuto(prefix, l)
		return nil
	}
	k.AddLabel(prefix, e.Color, l)
	return nil
}

func entry(k *colorkey.Key, prefix string) (colorkey.Entry, bool) {
	for _, e := range k.Entries() {
		if e.Prefix == prefix {
			return e, true
		}
	}
	return colorkey.Entry{}, false
}
