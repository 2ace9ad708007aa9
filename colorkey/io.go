// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colorkey

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads a key file used to define the colors
// for the prefixes of leaf names.
//
// A key file is a tab-delimited file
// with the following required columns:
//
//	-prefix	the prefix of the leaf names in the group
//	-color	the color of the group,
//		as an RGB value separated by commas,
//		a hexadecimal RGB value,
//		an SVG color name,
//		or "auto" to use a color scheme.
//
// Optionally it can contain the following columns:
//
//	-label	a description of the group
//
// Any other columns, will be ignored.
// The order of the rows is the order used
// to match the prefixes.
// Here is an example of a key file:
//
//	prefix	color	label
//	A	211, 211, 211	clade A
//	B	#90ee90	clade B
//	C	auto	clade C
func ReadTSV(r io.Reader) (*Key, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"prefix", "color"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	k := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "prefix"
		prefix := row[fields[f]]
		if prefix == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty prefix", ln, f)
		}

		var label string
		if i, ok := fields["label"]; ok {
			label = row[i]
		}

		f = "color"
		v := row[fields[f]]
		if strings.ToLower(strings.TrimSpace(v)) == AutoColor {
			k.AddAuto(prefix, label)
			continue
		}
		c, err := Parse(v)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		k.AddLabel(prefix, c, label)
	}
	return k, nil
}

// TSV writes a key as a tab-delimited file.
func (k *Key) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# leaf color key\n")
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write([]string{"prefix", "color", "label"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, e := range k.entries {
		c := fmt.Sprintf("%d,%d,%d", e.Color.R, e.Color.G, e.Color.B)
		if e.Auto {
			c = AutoColor
		}
		row := []string{
			e.Prefix,
			c,
			e.Label,
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
