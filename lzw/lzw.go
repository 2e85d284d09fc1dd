// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package lzw implements Lempel-Ziv-Welch compression with fixed 16-bit
// codes written little endian. Codes 0 to 255 stand for single bytes. The
// dictionary starts over when code 65535 would be assigned.
//
// The codes follow a header with the uncompressed size as uvarint and the
// CRC-32 of the data, little endian.
package lzw

import (
	"io"

	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/xio"
	"github.com/pkg/errors"
)

// Compress reads r completely and writes the code stream to w.
func Compress(w io.Writer, r io.Reader) error {
	data, err := xio.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "lzw")
	}
	return errors.Wrap(xio.Write(w, encode(data)), "lzw")
}

func encode(data []byte) []byte {
	out := make([]byte, 0, len(data)+16)
	out = xio.NewHeader(data).AppendBinary(out)
	if len(data) == 0 {
		return out
	}
	emit := func(code uint16) {
		out = append(out, byte(code), byte(code>>8))
	}
	d := newDict(true)
	cur := uint16(data[0])
	for _, c := range data[1:] {
		if code, ok := d.lookup(cur, c); ok {
			cur = code
			continue
		}
		emit(cur)
		if d.next() == maxCode {
			d.reset()
		} else {
			d.add(cur, c)
		}
		cur = uint16(c)
	}
	emit(cur)
	return out
}

// Decompress reads a code stream from r and writes the data to w.
func Decompress(w io.Writer, r io.Reader) error {
	out, err := decode(xio.NewReader(r))
	if err != nil {
		return errors.Wrap(err, "lzw")
	}
	return errors.Wrap(xio.Write(w, out), "lzw")
}

func decode(r *xio.Reader) ([]byte, error) {
	h, err := r.Header()
	if err != nil {
		return nil, err
	}
	base := r.Offset()
	p, err := r.Rest()
	if err != nil {
		return nil, err
	}
	if len(p)%2 != 0 {
		return nil, fault.Corruptf("odd length %d of code stream", len(p))
	}
	out := xio.Alloc(h.Size)
	d := newDict(false)
	prev := -1
	for i := 0; i < len(p); i += 2 {
		code := int(p[i]) | int(p[i+1])<<8
		if prev >= 0 && d.next() == maxCode {
			d.reset()
			prev = -1
		}
		start := len(out)
		switch {
		case code < d.next():
			out = d.appendString(out, uint16(code))
		case code == d.next() && prev >= 0:
			out = d.appendString(out, uint16(prev))
			out = append(out, out[start])
		default:
			return nil, fault.CorruptAt(base+int64(i),
				"code beyond next dictionary entry")
		}
		if uint64(len(out)) > h.Size {
			return nil, fault.CorruptAt(base+int64(i),
				"output exceeds announced size")
		}
		if prev >= 0 {
			d.add(uint16(prev), out[start])
		}
		prev = code
	}
	return out, h.Verify(out, r.Offset())
}
