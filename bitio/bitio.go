// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package bitio reads and writes bit sequences. Bits are ordered most
// significant bit first within a byte.
package bitio

import (
	"errors"
	"io"
)

// Reader reads single bits from a byte reader.
type Reader struct {
	br    io.ByteReader
	cur   byte
	nbits uint
	// n counts the bytes read from br
	n int64
}

// NewReader returns a bit reader on top of br.
func NewReader(br io.ByteReader) *Reader {
	return &Reader{br: br}
}

// ReadBit returns the next bit. At the end of the byte stream io.EOF is
// returned.
func (r *Reader) ReadBit() (bit int, err error) {
	if r.nbits == 0 {
		if r.cur, err = r.br.ReadByte(); err != nil {
			return 0, err
		}
		r.n++
		r.nbits = 8
	}
	r.nbits--
	return int(r.cur>>r.nbits) & 1, nil
}

// ReadBits reads n bits, n <= 32, and returns them as the low bits of v. If
// the stream ends after the first bit io.ErrUnexpectedEOF is returned.
func (r *Reader) ReadBits(n int) (v uint32, err error) {
	if n < 0 || n > 32 {
		return 0, errors.New("bitio: bit count out of range")
	}
	for i := 0; i < n; i++ {
		b, err := r.ReadBit()
		if err != nil {
			if err == io.EOF && i > 0 {
				err = io.ErrUnexpectedEOF
			}
			return v, err
		}
		v = v<<1 | uint32(b)
	}
	return v, nil
}

// ReadByte reads eight bits.
func (r *Reader) ReadByte() (c byte, err error) {
	v, err := r.ReadBits(8)
	return byte(v), err
}

// Aligned reports whether the reader is positioned at a byte boundary.
func (r *Reader) Aligned() bool { return r.nbits == 0 }

// Align skips to the next byte boundary and returns the skipped bits.
func (r *Reader) Align() uint32 {
	v := uint32(r.cur) & (1<<r.nbits - 1)
	r.nbits = 0
	return v
}

// Pos returns the number of bits consumed so far.
func (r *Reader) Pos() int64 { return r.n*8 - int64(r.nbits) }

// Writer writes single bits to a byte writer.
type Writer struct {
	bw    io.ByteWriter
	cur   byte
	nbits uint
}

// NewWriter returns a bit writer on top of bw.
func NewWriter(bw io.ByteWriter) *Writer {
	return &Writer{bw: bw}
}

// WriteBit writes the lowest bit of b.
func (w *Writer) WriteBit(b int) error {
	w.cur = w.cur<<1 | byte(b&1)
	w.nbits++
	if w.nbits < 8 {
		return nil
	}
	c := w.cur
	w.cur, w.nbits = 0, 0
	return w.bw.WriteByte(c)
}

// WriteBits writes the lowest n bits of v, n <= 32.
func (w *Writer) WriteBits(v uint32, n int) error {
	if n < 0 || n > 32 {
		return errors.New("bitio: bit count out of range")
	}
	for i := n - 1; i >= 0; i-- {
		if err := w.WriteBit(int(v >> uint(i))); err != nil {
			return err
		}
	}
	return nil
}

// WriteByte writes eight bits.
func (w *Writer) WriteByte(c byte) error {
	if w.nbits == 0 {
		return w.bw.WriteByte(c)
	}
	return w.WriteBits(uint32(c), 8)
}

// Aligned reports whether the writer is positioned at a byte boundary.
func (w *Writer) Aligned() bool { return w.nbits == 0 }

// Flush writes a partially filled byte padded with zero bits. It doesn't
// flush the underlying writer.
func (w *Writer) Flush() error {
	if w.nbits == 0 {
		return nil
	}
	c := w.cur << (8 - w.nbits)
	w.cur, w.nbits = 0, 0
	return w.bw.WriteByte(c)
}
