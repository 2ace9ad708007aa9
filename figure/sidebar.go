// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package figure

import (
	"image/color"

	"github.com/js-arias/treefig/colorkey"
	"github.com/js-arias/treefig/config"
	"github.com/js-arias/treefig/layout"
)

// A Run is a maximal set of contiguous leaves
// (sorted by y)
// that share the same group color.
type Run struct {
	Color color.RGBA

	// Group is the group of the first leaf of the run.
	Group colorkey.Group

	// Leaves of the run,
	// sorted by y.
	Leaves []int

	MinY, MaxY float64
}

// Runs returns the colored runs of leaves of a tree.
// Runs of leaves without a group are not returned.
// Two leaves of the same color
// separated by a leaf of a different color,
// or a leaf without a group,
// are in different runs.
func Runs(l *layout.Layout, cfg config.Config) []Run {
	t := l.Tree()

	var runs []Run
	cur := -1
	for _, id := range l.Leaves() {
		g, ok := cfg.Colors.Classify(t.Name(id))
		if !ok {
			cur = -1
			continue
		}
		c, _ := cfg.Colors.Color(g)
		y := l.Y(id)
		if cur >= 0 && runs[cur].Color == c {
			runs[cur].Leaves = append(runs[cur].Leaves, id)
			runs[cur].MaxY = y
			continue
		}

		runs = append(runs, Run{
			Color:  c,
			Group:  g,
			Leaves: []int{id},
			MinY:   y,
			MaxY:   y,
		})
		cur = len(runs) - 1
	}
	return runs
}

// SideBars returns the side bars of the colored runs.
// Each bar is placed at a distance from the root
// proportional to the largest x coordinate,
// and covers the run leaves
// with a padding above and below.
// If the largest x coordinate is 0,
// no bars are returned.
func SideBars(l *layout.Layout, runs []Run, cfg config.Config) []Rect {
	maxX := l.MaxX()
	width := maxX * cfg.SideBarWidth
	if width <= 0 {
		return nil
	}
	x := maxX * cfg.SideBarOffset

	bars := make([]Rect, 0, len(runs))
	for _, r := range runs {
		minY := r.MinY - cfg.SideBarPadding
		maxY := r.MaxY + cfg.SideBarPadding
		bars = append(bars, Rect{
			Min:    Point{X: x, Y: minY},
			Width:  width,
			Height: maxY - minY,
			Color:  r.Color,
			Alpha:  cfg.SideBarAlpha,
		})
	}
	return bars
}

func leafColor(cfg config.Config, name string) color.RGBA {
	g, ok := cfg.Colors.Classify(name)
	if !ok {
		return cfg.Default
	}
	c, _ := cfg.Colors.Color(g)
	return c
}
