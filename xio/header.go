// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package xio

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/aufdj/compression-algorithms/fault"
)

// Header describes the uncompressed data of a stream. It is encoded as the
// size in uvarint format followed by the CRC-32 (IEEE) of the data, little
// endian.
type Header struct {
	Size uint64
	CRC  uint32
}

// NewHeader returns the header for data.
func NewHeader(data []byte) Header {
	return Header{Size: uint64(len(data)), CRC: crc32.ChecksumIEEE(data)}
}

// AppendBinary appends the encoded header to p.
func (h Header) AppendBinary(p []byte) []byte {
	p = binary.AppendUvarint(p, h.Size)
	return binary.LittleEndian.AppendUint32(p, h.CRC)
}

// Verify checks data against the header. Mismatches are reported as corrupt
// input at offset off.
func (h Header) Verify(data []byte, off int64) error {
	if n := uint64(len(data)); n != h.Size {
		return fault.CorruptAt(off, fmt.Sprintf(
			"decoded %d bytes; header announces %d", n, h.Size))
	}
	if crc32.ChecksumIEEE(data) != h.CRC {
		return fault.CorruptAt(off, "checksum mismatch")
	}
	return nil
}

// Header reads a header. The size must not exceed MaxSize.
func (r *Reader) Header() (h Header, err error) {
	if h.Size, err = r.Uvarint(MaxSize); err != nil {
		return h, err
	}
	var p [4]byte
	if err = r.Full(p[:]); err != nil {
		return h, err
	}
	h.CRC = binary.LittleEndian.Uint32(p[:])
	return h, nil
}

// ExpectEOF reports data following the end of a stream as corrupt input.
func (r *Reader) ExpectEOF() error {
	eof, err := r.EOF()
	if err != nil || eof {
		return err
	}
	return fault.CorruptAt(r.off, "trailing data")
}

// Rest reads the remaining input.
func (r *Reader) Rest() ([]byte, error) {
	p, err := io.ReadAll(r.r)
	r.off += int64(len(p))
	return p, fault.IO("read", err)
}
