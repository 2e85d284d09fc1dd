// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package lz77 implements a sliding-window LZ77 codec in the LZSS style.
//
// The stream starts with the uncompressed size as uvarint and the CRC-32 of
// the data, little endian. Tokens follow in
// groups of eight, each group preceded by a flag byte whose bits, least
// significant first, mark matches. A literal is a single byte. A match is a
// big-endian 16-bit word holding distance-1 in the upper 12 bits and
// length-3 in the lower 4 bits.
package lz77

import (
	"io"

	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/xio"
	"github.com/pkg/errors"
	"github.com/ulikunitz/lz"
)

const (
	windowSize = 1 << 12
	minMatch   = 3
	maxMatch   = minMatch + 15
)

// Compress reads r completely and writes the compressed stream to w.
func Compress(w io.Writer, r io.Reader) error {
	data, err := xio.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "lz77")
	}
	var blk lz.Block
	Parse(&blk, data)
	out := xio.NewHeader(data).AppendBinary(make([]byte, 0, len(data)/2+16))
	out = appendBlock(out, &blk)
	return errors.Wrap(xio.Write(w, out), "lz77")
}

// appendBlock serializes the parse. Literals following the last sequence
// are emitted as literal tokens.
func appendBlock(p []byte, blk *lz.Block) []byte {
	var g group
	lits := blk.Literals
	for _, s := range blk.Sequences {
		for _, c := range lits[:s.LitLen] {
			p = g.literal(p, c)
		}
		lits = lits[s.LitLen:]
		if s.MatchLen > 0 {
			p = g.match(p, s.MatchLen, s.Offset)
		}
	}
	for _, c := range lits {
		p = g.literal(p, c)
	}
	return p
}

// group tracks the flag byte of the current token group.
type group struct {
	flagPos int
	n       int
}

func (g *group) token(p []byte, match bool) []byte {
	if g.n == 0 {
		g.flagPos = len(p)
		p = append(p, 0)
	}
	if match {
		p[g.flagPos] |= 1 << g.n
	}
	g.n = (g.n + 1) & 7
	return p
}

func (g *group) literal(p []byte, c byte) []byte {
	return append(g.token(p, false), c)
}

func (g *group) match(p []byte, n, dist uint32) []byte {
	if !(minMatch <= n && n <= maxMatch) || !(1 <= dist && dist <= windowSize) {
		panic("lz77: match out of range")
	}
	v := (dist-1)<<4 | (n - minMatch)
	return append(g.token(p, true), byte(v>>8), byte(v))
}

// Decompress reads a compressed stream from r and writes the data to w.
func Decompress(w io.Writer, r io.Reader) error {
	out, err := decode(xio.NewReader(r))
	if err != nil {
		return errors.Wrap(err, "lz77")
	}
	return errors.Wrap(xio.Write(w, out), "lz77")
}

func decode(r *xio.Reader) ([]byte, error) {
	h, err := r.Header()
	if err != nil {
		return nil, err
	}
	size := h.Size
	out := xio.Alloc(size)
	for uint64(len(out)) < size {
		flags, err := r.Byte()
		if err != nil {
			return nil, err
		}
		for k := 0; k < 8 && uint64(len(out)) < size; k++ {
			if flags&(1<<k) == 0 {
				c, err := r.Byte()
				if err != nil {
					return nil, err
				}
				out = append(out, c)
				continue
			}
			off := r.Offset()
			hi, err := r.Byte()
			if err != nil {
				return nil, err
			}
			lo, err := r.Byte()
			if err != nil {
				return nil, err
			}
			v := int(hi)<<8 | int(lo)
			dist, n := v>>4+1, v&15+minMatch
			if dist > len(out) {
				return nil, fault.CorruptAt(off,
					"match distance beyond start of output")
			}
			if uint64(len(out)+n) > size {
				return nil, fault.CorruptAt(off,
					"match exceeds announced size")
			}
			for j := 0; j < n; j++ {
				out = append(out, out[len(out)-dist])
			}
		}
	}
	if err = h.Verify(out, r.Offset()); err != nil {
		return nil, err
	}
	return out, r.ExpectEOF()
}
