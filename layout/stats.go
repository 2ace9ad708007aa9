// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats is a summary of the size and depth of a tree.
type Stats struct {
	Leaves   int
	Internal int

	// Depth is the largest distance
	// from the root to a leaf.
	Depth float64

	// MinDepth is the smallest distance
	// from the root to a leaf.
	MinDepth float64

	// MeanDepth is the mean distance
	// from the root to the leaves.
	MeanDepth float64
}

// Stats returns a summary of the tree of the layout.
func (l *Layout) Stats() Stats {
	depths := make([]float64, 0, len(l.leaves))
	for _, id := range l.leaves {
		depths = append(depths, l.x[id])
	}

	return Stats{
		Leaves:    len(l.leaves),
		Internal:  len(l.order) - len(l.leaves),
		Depth:     floats.Max(depths),
		MinDepth:  floats.Min(depths),
		MeanDepth: stat.Mean(depths, nil),
	}
}
