// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package bwt implements the Burrows-Wheeler transform on blocks.
//
// Every block is written as its length in uvarint format, the CRC-32 of the
// block, little endian, and the primary index as uvarint, followed by the
// last column of the sorted rotation matrix. The primary index is the row
// holding the untransformed block. The transform
// doesn't compress by itself; it groups equal contexts for a following
// entropy coder.
package bwt

import (
	"bufio"
	"io"

	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/xio"
	"github.com/aufdj/compression-algorithms/xlog"
	"github.com/pkg/errors"
)

const (
	// DefaultBlockSize is the block size used if none is configured.
	DefaultBlockSize = 1 << 20
	// MaxBlockSize is the largest block size accepted.
	MaxBlockSize = 1 << 24
)

// Transform returns the last column of the sorted rotations of block and
// the row of the block itself.
func Transform(block []byte) (last []byte, primary int) {
	n := len(block)
	p := sortRotations(block)
	last = make([]byte, n)
	for i, start := range p {
		if start == 0 {
			primary = i
			last[i] = block[n-1]
			continue
		}
		last[i] = block[start-1]
	}
	return last, primary
}

// Inverse restores the block from the last column and the primary index.
// It panics if primary is out of range.
func Inverse(last []byte, primary int) []byte {
	n := len(last)
	if n == 0 {
		return nil
	}
	if primary < 0 || primary >= n {
		panic("bwt: primary index out of range")
	}
	var start [256]int
	for _, c := range last {
		start[c]++
	}
	sum := 0
	for c, k := range start {
		start[c] = sum
		sum += k
	}
	lf := make([]int32, n)
	for i, c := range last {
		lf[i] = int32(start[c])
		start[c]++
	}
	out := make([]byte, n)
	row := primary
	for k := n - 1; k >= 0; k-- {
		out[k] = last[row]
		row = int(lf[row])
	}
	return out
}

// Config configures the transform.
type Config struct {
	// BlockSize is the maximum block length. Zero selects
	// DefaultBlockSize.
	BlockSize int
	// Logger receives debug output if not nil.
	Logger xlog.Logger
}

// SetDefaults replaces zero values by defaults.
func (c *Config) SetDefaults() {
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
}

// Verify checks the configuration.
func (c *Config) Verify() error {
	if c == nil {
		return errors.New("bwt: config is nil")
	}
	if !(1 <= c.BlockSize && c.BlockSize <= MaxBlockSize) {
		return errors.Errorf("bwt: block size %d out of range [1,%d]",
			c.BlockSize, MaxBlockSize)
	}
	return nil
}

// Compress transforms r block by block and writes the result to w.
func (c Config) Compress(w io.Writer, r io.Reader) error {
	c.SetDefaults()
	if err := c.Verify(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	block := make([]byte, c.BlockSize)
	for {
		n, err := io.ReadFull(r, block)
		if err == io.EOF {
			break
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return errors.Wrap(fault.IO("read", err), "bwt")
		}
		last, primary := Transform(block[:n])
		xlog.Printf(c.Logger, "bwt: block of %d bytes, primary index %d",
			n, primary)
		hdr := xio.NewHeader(block[:n]).AppendBinary(nil)
		hdr = xio.AppendUvarint(hdr, primary)
		if _, err = bw.Write(hdr); err != nil {
			return errors.Wrap(fault.IO("write", err), "bwt")
		}
		if _, err = bw.Write(last); err != nil {
			return errors.Wrap(fault.IO("write", err), "bwt")
		}
		if n < len(block) {
			break
		}
	}
	return errors.Wrap(fault.IO("write", bw.Flush()), "bwt")
}

// Decompress reads transformed blocks from r and writes the restored data
// to w.
func (c Config) Decompress(w io.Writer, r io.Reader) error {
	xr := xio.NewReader(r)
	for {
		eof, err := xr.EOF()
		if err != nil {
			return errors.Wrap(err, "bwt")
		}
		if eof {
			return nil
		}
		if err = c.block(w, xr); err != nil {
			return errors.Wrap(err, "bwt")
		}
	}
}

func (c Config) block(w io.Writer, r *xio.Reader) error {
	off := r.Offset()
	h, err := r.Header()
	if err != nil {
		return err
	}
	n := h.Size
	switch {
	case n == 0:
		return fault.CorruptAt(off, "empty block")
	case n > MaxBlockSize:
		return fault.CorruptAt(off, "block size exceeds limit")
	}
	primary, err := r.Uvarint(n - 1)
	if err != nil {
		return err
	}
	last := make([]byte, n)
	if err = r.Full(last); err != nil {
		return err
	}
	xlog.Printf(c.Logger, "bwt: restoring block of %d bytes", n)
	block := Inverse(last, int(primary))
	if err = h.Verify(block, r.Offset()); err != nil {
		return err
	}
	return xio.Write(w, block)
}

// Compress transforms r with the default block size.
func Compress(w io.Writer, r io.Reader) error {
	return Config{}.Compress(w, r)
}

// Decompress restores the data transformed by Compress.
func Decompress(w io.Writer, r io.Reader) error {
	return Config{}.Decompress(w, r)
}
