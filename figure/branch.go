// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package figure

import (
	"github.com/js-arias/treefig/config"
	"github.com/js-arias/treefig/layout"
)

// Branches returns the lines of the branches of a tree,
// in preorder.
//
// Each branch is drawn as an elbow:
// a vertical line at the x of the parent,
// from the y of the parent to the y of the node,
// and a horizontal line at the y of the node,
// from the x of the parent to the x of the node.
// Leaf branches use the color of its group
// and the leaf width.
// Internal branches and vertical lines
// use the neutral color and the internal width.
func Branches(l *layout.Layout, cfg config.Config) []Line {
	t := l.Tree()
	lines := make([]Line, 0, 2*len(l.Order()))
	for _, id := range l.Order() {
		p := l.Parent(id)
		if p < 0 {
			continue
		}

		px, py := l.X(p), l.Y(p)
		x, y := l.X(id), l.Y(id)

		// vertical line
		lines = append(lines, Line{
			From:  Point{X: px, Y: py},
			To:    Point{X: px, Y: y},
			Color: cfg.Neutral,
			Width: cfg.InternalWidth,
		})

		// horizontal line
		hz := Line{
			From:  Point{X: px, Y: y},
			To:    Point{X: x, Y: y},
			Color: cfg.Neutral,
			Width: cfg.InternalWidth,
		}
		if t.IsLeaf(id) {
			hz.Color = leafColor(cfg, t.Name(id))
			hz.Width = cfg.LeafWidth
		}
		lines = append(lines, hz)
	}
	return lines
}
