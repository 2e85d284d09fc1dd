// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ari drives the arithmetic coding of a byte sequence with a bit
predictor.

A Session codes every byte as eight bits, most significant bit first. For
each bit the predictor supplies the probability of a 1 bit, the range coder
codes the bit and the predictor is updated with it. The decoder performs the
same steps in the same order, so both predictors observe identical histories.

The compressed stream starts with a header:

	uvarint   size of the uncompressed data
	4 bytes   CRC-32 (IEEE) of the uncompressed data, little endian
	1 byte    predictor parameter

followed by the range coder stream. The stream is absent for empty input.
*/
package ari

import (
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/aufdj/compression-algorithms/fault"
	"github.com/pkg/errors"
)

// Predictor estimates the probability of the next bit.
type Predictor interface {
	// P returns the probability of a 1 bit in the range [1, 4095].
	P() int
	// Update informs the predictor about the actual bit.
	Update(bit int)
}

// MaxSize is the largest uncompressed size supported.
const MaxSize = 1 << 40

// Header describes the compressed data.
type Header struct {
	Size  int64
	CRC   uint32
	Param byte
}

// AppendBinary appends the encoded header to p.
func (h *Header) AppendBinary(p []byte) []byte {
	p = binary.AppendUvarint(p, uint64(h.Size))
	p = binary.LittleEndian.AppendUint32(p, h.CRC)
	return append(p, h.Param)
}

// ReadHeader reads the header from r.
func ReadHeader(r io.ByteReader) (h Header, err error) {
	cr := &countingReader{r: r}
	u, err := binary.ReadUvarint(cr)
	if err != nil {
		switch {
		case err == io.EOF:
			return h, fault.Corruptf("ari: missing header")
		case cr.err == nil:
			return h, fault.Corruptf("ari: invalid size")
		}
		return h, headerError(err)
	}
	if u > MaxSize {
		return h, fault.Corruptf("ari: size %d exceeds maximum", u)
	}
	h.Size = int64(u)
	var p [5]byte
	for i := range p {
		if p[i], err = r.ReadByte(); err != nil {
			return h, headerError(err)
		}
	}
	h.CRC = binary.LittleEndian.Uint32(p[:4])
	h.Param = p[4]
	return h, nil
}

func headerError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fault.Corruptf("ari: truncated header")
	}
	return fault.IO("read", errors.Wrap(err, "ari: header"))
}

// NewPredictorFunc creates a predictor for the given parameter.
type NewPredictorFunc func(param byte) (Predictor, error)

// checksum computes the CRC stored in the header.
func checksum(p []byte) uint32 { return crc32.ChecksumIEEE(p) }
