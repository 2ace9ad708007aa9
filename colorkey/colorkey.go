// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colorkey implements a color key
// for the leaves of a tree,
// based on the prefix of the leaf names.
package colorkey

import (
	"image/color"
	"strings"
)

// Group is the index of an entry in a color key.
type Group int

// NoGroup is the group of a leaf
// that does not match any entry of a key.
const NoGroup Group = -1

// An Entry is a prefix associated with a color.
type Entry struct {
	Prefix string
	Color  color.RGBA

	// Label is an optional description of the group.
	Label string

	// Auto is true if the color
	// must be taken from a color scheme.
	Auto bool
}

// Key stores the colors for leaf name prefixes.
// The order of the entries is the order
// in which they were added.
type Key struct {
	entries []Entry
}

// New creates a new empty key.
func New() *Key {
	return &Key{}
}

// Add adds a prefix with a color to the key.
// If the prefix is already defined,
// its color will be replaced,
// but it keeps its position.
func (k *Key) Add(prefix string, c color.RGBA) Group {
	return k.AddLabel(prefix, c, "")
}

// AddLabel adds a prefix with a color and a label to the key.
func (k *Key) AddLabel(prefix string, c color.RGBA, label string) Group {
	return k.add(Entry{
		Prefix: prefix,
		Color:  c,
		Label:  label,
	})
}

// AddAuto adds a prefix to the key
// with a color that will be set
// when the key is painted with a color scheme.
func (k *Key) AddAuto(prefix, label string) Group {
	return k.add(Entry{
		Prefix: prefix,
		Label:  label,
		Auto:   true,
	})
}

func (k *Key) add(e Entry) Group {
	for i, old := range k.entries {
		if old.Prefix == e.Prefix {
			k.entries[i] = e
			return Group(i)
		}
	}
	k.entries = append(k.entries, e)
	return Group(len(k.entries) - 1)
}

// Merge adds the entries of another key.
// Entries with a prefix already in the key
// replace the previous entry.
func (k *Key) Merge(o *Key) {
	for _, e := range o.Entries() {
		k.add(e)
	}
}

// Paint sets the colors of the entries
// added with AddAuto,
// using colors evenly spaced on the given color scheme.
func (k *Key) Paint(scheme string) error {
	var auto []int
	for i, e := range k.entries {
		if e.Auto {
			auto = append(auto, i)
		}
	}
	if len(auto) == 0 {
		return nil
	}

	cs, err := Scheme(scheme, len(auto))
	if err != nil {
		return err
	}
	for i, id := range auto {
		k.entries[id].Color = cs[i]
	}
	return nil
}

// Classify returns the group of a leaf name.
// It returns the first entry whose prefix
// is equal to the name,
// or else the first entry
// whose prefix is a prefix of the name.
// If no entry matches,
// or the name is empty,
// it returns NoGroup and false.
func (k *Key) Classify(name string) (Group, bool) {
	if k == nil || name == "" {
		return NoGroup, false
	}

	for i, e := range k.entries {
		if e.Prefix == name {
			return Group(i), true
		}
	}
	for i, e := range k.entries {
		if strings.HasPrefix(name, e.Prefix) {
			return Group(i), true
		}
	}
	return NoGroup, false
}

// Color returns the color of a group.
// If the group is not defined,
// it will return transparent black.
func (k *Key) Color(g Group) (color.RGBA, bool) {
	if k == nil || g < 0 || int(g) >= len(k.entries) {
		return color.RGBA{}, false
	}
	return k.entries[g].Color, true
}

// Entries returns the entries of the key,
// in insertion order.
func (k *Key) Entries() []Entry {
	if k == nil {
		return nil
	}
	return k.entries
}

// Len returns the number of entries in the key.
func (k *Key) Len() int {
	if k == nil {
		return 0
	}
	return len(k.entries)
}
