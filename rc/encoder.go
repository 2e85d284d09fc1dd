// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package rc

import (
	"io"
)

// Encoder codes bits into a byte stream.
type Encoder struct {
	interval
	w io.ByteWriter
	// n counts the bytes written
	n int64
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.ByteWriter) *Encoder {
	e := &Encoder{w: w}
	e.init()
	return e
}

// Encode codes the bit using p as the probability for a 1 bit.
func (e *Encoder) Encode(bit int, p int) error {
	if bit&^1 != 0 {
		return errBit
	}
	mid, err := e.split(p)
	if err != nil {
		return err
	}
	e.update(bit, mid)
	for e.settled() {
		if err = e.w.WriteByte(byte(e.high >> 24)); err != nil {
			return err
		}
		e.n++
		e.shift()
	}
	return nil
}

// Flush writes the leading byte of high. Since the leading bytes of low and
// high always differ after Encode, the value (high>>24)<<24 lies inside the
// interval and identifies it.
func (e *Encoder) Flush() error {
	if err := e.w.WriteByte(byte(e.high >> 24)); err != nil {
		return err
	}
	e.n++
	return nil
}

// Compressed returns the number of bytes written so far.
func (e *Encoder) Compressed() int64 { return e.n }
