// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package rc implements a carry-less binary arithmetic coder.

The coder keeps the interval [low, high] in two 32-bit unsigned integers. A
bit is coded with a 12-bit probability p for the bit being 1. The interval is
split at

	mid = low + (r>>12)*p + ((r&0xfff)*p)>>12, r = high - low

and bit 1 selects [low, mid] while bit 0 selects [mid+1, high]. As long as
the leading bytes of low and high agree, that byte is settled: it is written
out and both bounds are shifted left by 8 bits, filling low with zeros and
high with ones. Since a written byte is never changed again there is no carry
propagation.

The decoder mirrors the arithmetic on a 32-bit code value x and decides bit 1
if x <= mid.
*/
package rc

import "github.com/pkg/errors"

// ProbBits is the number of bits of a probability value.
const ProbBits = 12

// Limits for probability values. P(1) = p/ProbScale.
const (
	ProbScale = 1 << ProbBits
	ProbMin   = 1
	ProbMax   = ProbScale - 1
)

var (
	errProb = errors.New("rc: probability out of range")
	errBit  = errors.New("rc: bit value must be 0 or 1")
)

// interval holds the range state shared by encoder and decoder.
type interval struct {
	low  uint32
	high uint32
}

func (iv *interval) init() {
	iv.low = 0
	iv.high = 0xffffffff
}

// split computes the split point for probability p.
func (iv *interval) split(p int) (mid uint32, err error) {
	if p < ProbMin || p > ProbMax {
		return 0, errors.Wrapf(errProb, "p=%d", p)
	}
	if iv.low > iv.high {
		return 0, errors.Errorf("rc: interval collapsed low=%#08x high=%#08x",
			iv.low, iv.high)
	}
	r := iv.high - iv.low
	q := uint32(p)
	mid = iv.low + (r>>12)*q + ((r&0xfff)*q)>>12
	return mid, nil
}

// update selects the subinterval for the bit.
func (iv *interval) update(bit int, mid uint32) {
	if bit != 0 {
		iv.high = mid
	} else {
		iv.low = mid + 1
	}
}

// settled reports whether the leading bytes of low and high agree.
func (iv *interval) settled() bool {
	return (iv.low^iv.high)&0xff000000 == 0
}

// shift removes the leading byte of the interval.
func (iv *interval) shift() {
	iv.low <<= 8
	iv.high = iv.high<<8 | 0xff
}

// Low returns the lower bound of the interval.
func (iv *interval) Low() uint32 { return iv.low }

// High returns the upper bound of the interval.
func (iv *interval) High() uint32 { return iv.high }
