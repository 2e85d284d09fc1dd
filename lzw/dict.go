// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package lzw

import "slices"

const (
	// codes below firstCode are literals
	firstCode = 256
	// the dictionary is reset instead of assigning maxCode
	maxCode = 1<<16 - 1
)

// node is a dictionary entry: the string of prefix extended by c.
type node struct {
	prefix int32
	n      int32
	c      byte
}

// dict is the LZW dictionary. Entries live in an arena addressed by code.
// The encoder additionally looks up codes by (prefix, byte) in index.
type dict struct {
	nodes []node
	index map[uint32]uint16
}

func newDict(indexed bool) *dict {
	d := &dict{nodes: make([]node, firstCode, maxCode)}
	for i := range d.nodes[:firstCode] {
		d.nodes[i] = node{prefix: -1, n: 1, c: byte(i)}
	}
	if indexed {
		d.index = make(map[uint32]uint16, 1<<12)
	}
	return d
}

func key(prefix uint16, c byte) uint32 {
	return uint32(prefix)<<8 | uint32(c)
}

// next returns the code the next added entry receives.
func (d *dict) next() int { return len(d.nodes) }

func (d *dict) reset() {
	d.nodes = d.nodes[:firstCode]
	if d.index != nil {
		clear(d.index)
	}
}

func (d *dict) lookup(prefix uint16, c byte) (code uint16, ok bool) {
	code, ok = d.index[key(prefix, c)]
	return code, ok
}

func (d *dict) add(prefix uint16, c byte) {
	code := len(d.nodes)
	d.nodes = append(d.nodes, node{
		prefix: int32(prefix),
		n:      d.nodes[prefix].n + 1,
		c:      c,
	})
	if d.index != nil {
		d.index[key(prefix, c)] = uint16(code)
	}
}

// appendString appends the string for code to p.
func (d *dict) appendString(p []byte, code uint16) []byte {
	n := int(d.nodes[code].n)
	k := len(p)
	p = slices.Grow(p, n)[:k+n]
	for i := k + n - 1; i >= k; i-- {
		e := d.nodes[code]
		p[i] = e.c
		code = uint16(e.prefix)
	}
	return p
}
