// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package xio contains the I/O helpers shared by the codecs and the pack
// command. Read and write failures are reported as fault.IOError, malformed
// compressed data as fault.CorruptInputError carrying the offset.
package xio

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/aufdj/compression-algorithms/fault"
)

// MaxSize is the largest uncompressed size a size header may announce.
const MaxSize = 1 << 40

// ReadAll reads r until EOF.
func ReadAll(r io.Reader) ([]byte, error) {
	p, err := io.ReadAll(r)
	return p, fault.IO("read", err)
}

// Write writes p completely to w.
func Write(w io.Writer, p []byte) error {
	_, err := w.Write(p)
	return fault.IO("write", err)
}

// AppendUvarint appends the varint encoding of the size n.
func AppendUvarint(p []byte, n int) []byte {
	return binary.AppendUvarint(p, uint64(n))
}

// Reader reads compressed data and tracks the offset.
type Reader struct {
	r   *bufio.Reader
	off int64
	// first error of the underlying reader other than io.EOF
	err error
}

// NewReader wraps r. A *bufio.Reader is used directly.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int64 { return r.off }

// ReadByte reads a single byte. The end of the input is reported as io.EOF.
func (r *Reader) ReadByte() (byte, error) {
	c, err := r.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		err = fault.IO("read", err)
		if r.err == nil {
			r.err = err
		}
		return 0, err
	}
	r.off++
	return c, nil
}

// EOF reports whether the input is exhausted.
func (r *Reader) EOF() (bool, error) {
	_, err := r.r.Peek(1)
	if err == io.EOF {
		return true, nil
	}
	return false, fault.IO("read", err)
}

// Byte reads a byte that must be present.
func (r *Reader) Byte() (byte, error) {
	c, err := r.ReadByte()
	if err == io.EOF {
		return 0, r.truncated()
	}
	return c, err
}

// Full fills p. A short read is corrupt input.
func (r *Reader) Full(p []byte) error {
	n, err := io.ReadFull(r.r, p)
	r.off += int64(n)
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		return r.truncated()
	}
	return fault.IO("read", err)
}

// Uvarint reads a varint that must not exceed max.
func (r *Reader) Uvarint(max uint64) (uint64, error) {
	start := r.off
	u, err := binary.ReadUvarint(r)
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return 0, r.truncated()
	case r.err != nil:
		return 0, r.err
	case err != nil:
		return 0, fault.CorruptAt(start, "varint overflows 64 bits")
	case u > max:
		return 0, fault.CorruptAt(start, "value exceeds limit")
	}
	return u, nil
}

func (r *Reader) truncated() error {
	return fault.CorruptAt(r.off, "unexpected end of input")
}

// Alloc returns an empty slice for an announced size. The capacity is
// bounded so a corrupt header cannot force a huge allocation.
func Alloc(size uint64) []byte {
	const max = 1 << 20
	if size > max {
		size = max
	}
	return make([]byte, 0, size)
}
