// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(colorKeyGuide)
	app.Add(projectsGuide)
	app.Add(settingsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Treefig uses a project file to keep the reference of the files required to
draw a tree figure. This guide explains the structure of the file, but most of
the time, the best and most secure way to edit or view this file is by using
treefig commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# treefig project files
	dataset	path
	trees	trees.tab
	colors	colors.tab
	settings	figure.yaml

The valid file types are:

- Color keys. Defined by the dataset keyword "colors". This file contains the
  colors assigned to the prefixes of the leaf names. The recommended way to
  add or edit a color key is by using the command 'treefig colors'.
- Figure settings. Defined by the dataset keyword "settings". This file is a
  YAML or a TOML file with the options used to draw the figure. The
  recommended way to add a settings file is by using the command
  'treefig prj --settings'.
- Phylogenetic trees. Defined by the dataset keyword "trees". This file
  contains one or more trees in the form of a tab-delimited file. The
  recommended way to add a tree file is by using the command
  'treefig tree add'.

Paths can be absolute, or relative to the directory of the project file.
	`,
}

var colorKeyGuide = &command.Command{
	Usage: "color-keys",
	Short: "about color key files",
	Long: `
Leaves of a tree are grouped by the prefix of their names. Each group has a
color, used to draw the terminal branch of the leaf and the bar at the right
of the tree that marks contiguous leaves of the same color.

A color key file is a tab-delimited file with the following fields:

	- prefix  the prefix of the leaf names in the group
	- color   the color of the group
	- label   an optional description of the group

Here is an example file:

	prefix	color	label
	Acer	211,211,211	maples
	Betula	#90ee90	birches
	Quercus	auto	oaks

Colors can be given as RGB values separated by commas, as hexadecimal values
(#rrggbb or #rgb), or as SVG color names (e.g. "lightgreen"). The value
"auto" assigns a color from a color-blind safe palette.

The order of the rows is important. A leaf name that is equal to a prefix is
assigned to that group. Otherwise, the leaf is assigned to the first group
whose prefix is a prefix of the leaf name. Leaves without a group are drawn
with the default color and are not marked with a bar.

In a treefig project, the file that contains the color key is indicated with
the "colors" keyword.
	`,
}

var settingsGuide = &command.Command{
	Usage: "settings",
	Short: "about figure settings files",
	Long: `
The appearance of a tree figure is defined in a settings file. The file can be
a TOML file (if its extension is ".toml") or a YAML file (any other
extension). Options not defined in the file keep their default value.

The valid options are:

	side_bar_offset_fraction  position of the side bars, as a fraction
	                          of the tree depth (default 1.05)
	side_bar_width_fraction   width of the side bars, as a fraction of
	                          the tree depth (default 0.03)
	side_bar_padding          vertical padding of the side bars in
	                          leaf units, less than 0.5
	                          (default 0.4)
	side_bar_alpha            opacity of the side bars (default 0.8)
	scale_bar_fraction        length of the scale bar, as a fraction of
	                          the tree depth (default 0.1)
	scale_bar_offset          distance from the lowest leaf to the scale
	                          bar, in leaf units (default 0.3)
	scale_bar_decimals        decimals of the scale bar label (default 2)
	leaf_width                width of the terminal branches (default 1.5)
	internal_width            width of the other lines (default 1.0)
	neutral_color             color of internal branches (default black)
	default_color             color of leaves without group
	                          (default black)
	palette                   palette for "auto" colors: iridescent,
	                          incandescent, or rainbow
	                          (default iridescent)
	labels                    if true, leaf names are drawn
	color_groups              an ordered mapping of prefixes to colors

Here is an example YAML file:

	side_bar_width_fraction: 0.05
	labels: true
	color_groups:
	  Acer: "#d3d3d3"
	  Betula: lightgreen
	  Quercus:
	    color: auto
	    label: oaks

Color groups defined in the color key file of the project are added after the
groups defined in the settings file.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In treefig, phylogenetic trees are stored in a tab-delimited file. Each row
of the file is a node, and the children of a node are drawn in the order of
the rows (from top to bottom).

The recommended way to interact with trees in a treefig project is by using
the commands in "treefig tree".

A tree file is a tab-delimited file with the following fields:

	- tree      the name of the tree
	- node      the ID of the node
	- parent    the ID of the parent node (-1 for the root)
	- length    the length of the branch to the parent (empty if undefined)
	- name      the name of the node (usually only for terminals)

Here is an example file:

	# phylogenetic trees
	tree	node	parent	length	name
	example	0	-1
	example	1	0	1
	example	2	1	1	A1
	example	3	1	1	A2
	example	4	0	2	B1

Trees can be imported with the command 'treefig tree add', from newick
(parenthetical) files, nexus files, and time calibrated tree files. Trees in
newick format keep the order of the children found in the file, and nodes
without a branch length are drawn with a zero length branch. Nexus and time
calibrated trees are sorted by clade size and age.
	`,
}
