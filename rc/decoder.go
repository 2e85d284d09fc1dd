// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package rc

import (
	"io"

	"github.com/aufdj/compression-algorithms/fault"
)

// maxPad is the number of zero bytes the decoder appends to the stream. The
// encoder's flush writes a single byte where the decoder expects four.
const maxPad = 3

// Decoder decodes bits from a stream created by Encoder.
type Decoder struct {
	interval
	r io.ByteReader
	x uint32
	// n counts the bytes consumed including padding
	n   int64
	pad int
}

// NewDecoder creates a decoder and reads the first four bytes of the stream.
func NewDecoder(r io.ByteReader) (d *Decoder, err error) {
	d = &Decoder{r: r}
	d.init()
	for i := 0; i < 4; i++ {
		if err = d.next(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// next shifts the next byte of the stream into x.
func (d *Decoder) next() error {
	c, err := d.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			return err
		}
		if d.pad >= maxPad {
			return fault.CorruptAt(d.n-int64(d.pad),
				"rc: unexpected end of input")
		}
		c = 0
		d.pad++
	}
	d.n++
	d.x = d.x<<8 | uint32(c)
	return nil
}

// Decode returns the next bit using p as the probability for a 1 bit.
func (d *Decoder) Decode(p int) (bit int, err error) {
	if d.x < d.low || d.x > d.high {
		return 0, fault.CorruptAt(d.n-int64(d.pad),
			"rc: code value outside of interval")
	}
	mid, err := d.split(p)
	if err != nil {
		return 0, err
	}
	if d.x <= mid {
		bit = 1
	}
	d.update(bit, mid)
	for d.settled() {
		d.shift()
		if err = d.next(); err != nil {
			return 0, err
		}
	}
	return bit, nil
}

// Finish checks that the stream ended exactly with the flush byte of the
// encoder and that the code value is the one the encoder's flush produced.
func (d *Decoder) Finish() error {
	off := d.n - int64(d.pad)
	if d.pad < maxPad {
		return fault.CorruptAt(off, "rc: trailing data after stream")
	}
	if d.x != d.high&0xff000000 {
		return fault.CorruptAt(off, "rc: stream end doesn't match interval")
	}
	return nil
}

// Consumed returns the number of stream bytes read.
func (d *Decoder) Consumed() int64 { return d.n - int64(d.pad) }
