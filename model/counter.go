// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package model

// Parameters of Counter. While the hit count is below counterLimit the
// probability moves by 1/(n+1.5) of the error. Afterwards it moves by
// 2^-counterRate.
const (
	counterLimit = 30
	counterRate  = 5
)

// counterRecip holds 65536/(n+1.5).
var counterRecip [counterLimit]int64

func init() {
	for n := range counterRecip {
		counterRecip[n] = 2 * 65536 / int64(2*n+3)
	}
}

// Counter is an adaptive probability with a hit count. The zero value is not
// ready for use; see NewCounter.
type Counter struct {
	p uint16
	n uint8
}

// NewCounter returns a counter predicting both bits with probability 1/2.
func NewCounter() Counter { return Counter{p: 1 << 15} }

// P returns the probability of a 1 bit.
func (c *Counter) P() int { return ClampP(int(c.p >> 4)) }

// Update moves the probability toward the bit.
func (c *Counter) Update(bit int) {
	target := int64(bit) * 0xffff
	p := int64(c.p)
	if c.n < counterLimit {
		p += (target - p) * counterRecip[c.n] >> 16
		c.n++
	} else {
		p += (target - p) >> counterRate
	}
	c.p = uint16(p)
}
