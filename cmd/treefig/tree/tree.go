// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with phylogenetic trees.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/treefig/cmd/treefig/tree/add"
	"github.com/js-arias/treefig/cmd/treefig/tree/coords"
	"github.com/js-arias/treefig/cmd/treefig/tree/draw"
	"github.com/js-arias/treefig/cmd/treefig/tree/list"
	"github.com/js-arias/treefig/cmd/treefig/tree/outline"
	"github.com/js-arias/treefig/cmd/treefig/tree/terms"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for phylogenetic trees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(coords.Command)
	Command.Add(draw.Command)
	Command.Add(list.Command)
	Command.Add(outline.Command)
	Command.Add(terms.Command)
}
