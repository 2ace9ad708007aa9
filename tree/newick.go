// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ReadNewick reads one or more trees in newick (parenthetical) format.
//
// The children of each node keep the order of the file,
// and nodes without a branch length
// are added without length.
// Names are kept as they are in the file,
// quoted names can include any character
// (use two single quotes for a quote).
// Labels of internal nodes that are numbers
// are taken as support values and ignored.
// Comments (in square brackets) are ignored.
//
// The first tree will have the given name,
// any other tree name will be in the form <name>.<number>,
// starting from 1.
func ReadNewick(r io.Reader, name string) ([]*Tree, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil, errors.New("newick: empty tree name")
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := &newickParser{s: string(b)}
	var ts []*Tree
	for {
		p.skip()
		if p.pos >= len(p.s) {
			break
		}

		nm := name
		if len(ts) > 0 {
			nm = fmt.Sprintf("%s.%d", name, len(ts))
		}
		t, err := p.tree(nm)
		if err != nil {
			return nil, fmt.Errorf("newick: tree %q: %v", nm, err)
		}
		ts = append(ts, t)
	}
	if len(ts) == 0 {
		return nil, errors.New("newick: no tree found")
	}
	return ts, nil
}

type newickParser struct {
	s   string
	pos int
	t   *Tree
}

func (p *newickParser) tree(name string) (*Tree, error) {
	p.t = New()
	p.t.SetName(name)
	if err := p.node(-1); err != nil {
		return nil, err
	}
	p.skip()
	if !p.next(';') {
		return nil, p.errorf("expecting ';'")
	}
	return p.t, nil
}

// node reads a node and its descendants.
func (p *newickParser) node(parent int) error {
	id := p.t.AddNoLength("")
	if parent >= 0 {
		p.t.AddChild(parent, id)
	}

	p.skip()
	if p.next('(') {
		for {
			if err := p.node(id); err != nil {
				return err
			}
			p.skip()
			if p.next(',') {
				continue
			}
			if p.next(')') {
				break
			}
			return p.errorf("expecting ',' or ')'")
		}
	}

	label, err := p.label()
	if err != nil {
		return err
	}
	n := p.t.nodes[id]
	if len(n.children) == 0 {
		n.name = label
	} else if _, err := strconv.ParseFloat(label, 64); err != nil {
		n.name = label
	}

	p.skip()
	if p.next(':') {
		l, err := p.length()
		if err != nil {
			return err
		}
		n.length = l
		n.hasLength = true
	}
	return nil
}

func (p *newickParser) label() (string, error) {
	p.skip()
	if !p.next('\'') {
		start := p.pos
		for p.pos < len(p.s) {
			c := rune(p.s[p.pos])
			if strings.ContainsRune("(),:;[", c) || unicode.IsSpace(c) {
				break
			}
			p.pos++
		}
		return p.s[start:p.pos], nil
	}

	var sb strings.Builder
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		p.pos++
		if c != '\'' {
			sb.WriteByte(c)
			continue
		}
		if p.next('\'') {
			sb.WriteByte('\'')
			continue
		}
		return sb.String(), nil
	}
	return "", p.errorf("unterminated quoted name")
}

func (p *newickParser) length() (float64, error) {
	p.skip()
	start := p.pos
	for p.pos < len(p.s) && strings.IndexByte("+-.0123456789eE", p.s[p.pos]) >= 0 {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("invalid branch length %q", p.s[start:p.pos])
	}
	return v, nil
}

// skip skips spaces and comments.
func (p *newickParser) skip() {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == '[':
			end := strings.IndexByte(p.s[p.pos:], ']')
			if end < 0 {
				p.pos = len(p.s)
				return
			}
			p.pos += end + 1
		case unicode.IsSpace(rune(c)):
			p.pos++
		default:
			return
		}
	}
}

func (p *newickParser) next(c byte) bool {
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *newickParser) errorf(format string, args ...any) error {
	return fmt.Errorf("at byte %d: %s", p.pos, fmt.Sprintf(format, args...))
}
