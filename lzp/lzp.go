// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package lzp implements flzp, a fast byte-oriented LZP codec.
//
// The stream starts with the uncompressed size as uvarint and the CRC-32 of
// the data, little endian. The input is split into blocks of at most 64 KiB that leave at least 32
// byte values unused. Each block starts with a 32-byte bitmap, least
// significant bit first, marking the byte values used as literals. The
// first unused value ends the block; the following ones encode match
// lengths 1, 2, 3 and so on. A match copies the bytes that followed the
// last occurrence of the current order-4 context.
package lzp

import (
	"io"

	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/xio"
	"github.com/pkg/errors"
)

const (
	maxBlockSize = 1 << 16
	minFree      = 32
	bitmapSize   = 32
)

// scanBlock returns the length of the next block and its literal bitmap.
// maxLen is the largest match length the block can express.
func scanBlock(data []byte) (n int, bitmap [bitmapSize]byte, maxLen int) {
	maxLen = 255
	for n < len(data) && n < maxBlockSize && maxLen > minFree {
		c := data[n]
		if bitmap[c>>3]&(1<<(c&7)) == 0 {
			bitmap[c>>3] |= 1 << (c & 7)
			maxLen--
		}
		n++
	}
	return n, bitmap, maxLen
}

type encoder struct {
	*window
	// codes[0] ends the block, codes[n] stands for a match of length n
	codes  [256]byte
	maxLen int
	mpos   uint32
	mlen   int
	out    []byte
}

// block encodes the next block of data and returns its length.
func (e *encoder) block(data []byte) int {
	n, bitmap, maxLen := scanBlock(data)
	e.maxLen = maxLen
	j := 0
	for i := 0; i < 256; i++ {
		if bitmap[i>>3]&(1<<(i&7)) == 0 {
			e.codes[j] = byte(i)
			j++
		}
	}
	e.out = append(e.out, bitmap[:]...)
	for _, c := range data[:n] {
		e.byte(c)
	}
	e.flushMatch()
	e.out = append(e.out, e.codes[0])
	return n
}

func (e *encoder) byte(c byte) {
	if e.mlen == 0 {
		e.mpos = e.predicted()
	}
	if e.mlen < e.maxLen && e.at(e.mpos+uint32(e.mlen)) == c {
		e.mlen++
	} else {
		e.flushMatch()
		e.mpos = e.predicted()
		if e.at(e.mpos) == c {
			e.mlen = 1
		} else {
			e.out = append(e.out, c)
		}
	}
	e.update(c)
}

// flushMatch emits the pending match. A single byte is cheaper as literal.
func (e *encoder) flushMatch() {
	switch {
	case e.mlen == 1:
		e.out = append(e.out, e.at(e.p-1))
	case e.mlen > 1:
		e.out = append(e.out, e.codes[e.mlen])
	}
	e.mlen = 0
}

// Compress reads r completely and writes the compressed blocks to w.
func Compress(w io.Writer, r io.Reader) error {
	data, err := xio.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "lzp")
	}
	e := encoder{window: newWindow()}
	e.out = xio.NewHeader(data).AppendBinary(e.out)
	for len(data) > 0 {
		data = data[e.block(data):]
		if len(e.out) >= maxBlockSize {
			if err = xio.Write(w, e.out); err != nil {
				return errors.Wrap(err, "lzp")
			}
			e.out = e.out[:0]
		}
	}
	return errors.Wrap(xio.Write(w, e.out), "lzp")
}

// Decompress reads compressed blocks from r and writes the data to w.
func Decompress(w io.Writer, r io.Reader) error {
	out, err := decode(xio.NewReader(r))
	if err != nil {
		return errors.Wrap(err, "lzp")
	}
	return errors.Wrap(xio.Write(w, out), "lzp")
}

const (
	literal = -1
	eob     = 0
)

func decode(r *xio.Reader) ([]byte, error) {
	h, err := r.Header()
	if err != nil {
		return nil, err
	}
	out := xio.Alloc(h.Size)
	win := newWindow()
	var (
		dec    [256]int
		bitmap [bitmapSize]byte
	)
	for {
		eof, err := r.EOF()
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}
		if err = r.Full(bitmap[:]); err != nil {
			return nil, err
		}
		n := -1
		for i := range dec {
			if bitmap[i>>3]&(1<<(i&7)) != 0 {
				dec[i] = literal
			} else {
				n++
				dec[i] = n
			}
		}
		if n < 0 {
			return nil, fault.CorruptAt(r.Offset()-bitmapSize,
				"block header without end of block code")
		}
		for {
			off := r.Offset()
			c, err := r.Byte()
			if err != nil {
				return nil, err
			}
			d := dec[c]
			if d == eob {
				break
			}
			if d == literal {
				out = append(out, c)
				win.update(c)
			} else {
				pos := win.predicted()
				for i := 0; i < d; i++ {
					c := win.at(pos + uint32(i))
					out = append(out, c)
					win.update(c)
				}
			}
			if uint64(len(out)) > h.Size {
				return nil, fault.CorruptAt(off,
					"output exceeds announced size")
			}
		}
	}
	return out, h.Verify(out, r.Offset())
}
