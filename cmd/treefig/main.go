// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Treefig is a tool to draw rectangular phylogenetic trees
// with colored leaf groups.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/treefig/cmd/treefig/colors"
	"github.com/js-arias/treefig/cmd/treefig/prj"
	"github.com/js-arias/treefig/cmd/treefig/tree"
)

var app = &command.Command{
	Usage: "treefig <command> [<argument>...]",
	Short: "a tool to draw phylogenetic tree figures",
}

func init() {
	app.Add(colors.Command)
	app.Add(prj.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
