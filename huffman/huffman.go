// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a static canonical Huffman codec.
//
// The stream starts with the uncompressed size as uvarint and the CRC-32 of
// the data, little endian. For non-empty data 256 code lengths follow, one
// byte per symbol with 0 for unused symbols, then the codes, most
// significant bit first, padded with zeros to a byte boundary.
package huffman

import (
	"bufio"
	"io"

	"github.com/aufdj/compression-algorithms/bitio"
	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/xio"
	"github.com/pkg/errors"
)

// Compress reads r completely and writes the compressed stream to w.
func Compress(w io.Writer, r io.Reader) error {
	data, err := xio.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "huffman")
	}
	return errors.Wrap(encode(w, data), "huffman")
}

func encode(w io.Writer, data []byte) error {
	var (
		lens  [256]uint8
		codes [256]uint32
		err   error
	)
	hdr := xio.NewHeader(data).AppendBinary(nil)
	if len(data) > 0 {
		var freq [256]int64
		for _, c := range data {
			freq[c]++
		}
		lens = codeLengths(freq)
		if codes, err = canonical(&lens); err != nil {
			return err
		}
		hdr = append(hdr, lens[:]...)
	}
	bw := bufio.NewWriter(w)
	if _, err = bw.Write(hdr); err != nil {
		return fault.IO("write", err)
	}
	bits := bitio.NewWriter(bw)
	for _, c := range data {
		if err = bits.WriteBits(codes[c], int(lens[c])); err != nil {
			return fault.IO("write", err)
		}
	}
	if err = bits.Flush(); err != nil {
		return fault.IO("write", err)
	}
	return fault.IO("write", bw.Flush())
}

// Decompress reads a compressed stream from r and writes the data to w.
func Decompress(w io.Writer, r io.Reader) error {
	out, err := decode(xio.NewReader(r))
	if err != nil {
		return errors.Wrap(err, "huffman")
	}
	return errors.Wrap(xio.Write(w, out), "huffman")
}

func decode(r *xio.Reader) ([]byte, error) {
	h, err := r.Header()
	if err != nil {
		return nil, err
	}
	out := xio.Alloc(h.Size)
	if h.Size > 0 {
		if out, err = decodeSymbols(out, r, h.Size); err != nil {
			return nil, err
		}
	}
	if err = h.Verify(out, r.Offset()); err != nil {
		return nil, err
	}
	return out, r.ExpectEOF()
}

func decodeSymbols(out []byte, r *xio.Reader, size uint64) ([]byte, error) {
	var lens [256]uint8
	if err := r.Full(lens[:]); err != nil {
		return nil, err
	}
	if lens == [256]uint8{} {
		return nil, fault.CorruptAt(r.Offset()-256, "no code lengths")
	}
	if _, err := canonical(&lens); err != nil {
		return nil, err
	}
	d := newDecoder(&lens)
	bits := bitio.NewReader(r)
	for i := uint64(0); i < size; i++ {
		c, ok, err := d.decode(bits)
		if err == io.EOF {
			return nil, fault.CorruptAt(r.Offset(), "unexpected end of input")
		}
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fault.CorruptAt(r.Offset(), "invalid code")
		}
		out = append(out, c)
	}
	if bits.Align() != 0 {
		return nil, fault.CorruptAt(r.Offset()-1, "nonzero padding bits")
	}
	return out, nil
}
