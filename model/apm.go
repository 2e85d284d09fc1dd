// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package model

// APM is an adaptive probability map. It refines a probability given a
// small context. The stretched probability is quantized into 33 buckets;
// the output interpolates between the two nearest buckets and both are moved
// toward the observed bit.
type APM struct {
	t    []uint16
	rate uint
	idx  int
}

const apmBuckets = 33

// NewAPM creates a map for n contexts. Each context initially maps a
// probability to itself. The rate controls the adaptation speed; higher
// values adapt more slowly.
func NewAPM(n int, rate int) *APM {
	if rate < 1 || rate > 16 {
		panic("model: APM rate out of range")
	}
	a := &APM{t: make([]uint16, n*apmBuckets), rate: uint(rate)}
	for i := 0; i < n; i++ {
		for j := 0; j < apmBuckets; j++ {
			a.t[i*apmBuckets+j] = uint16(Squash((j-16)*128) * 16)
		}
	}
	return a
}

// Refine returns the refined probability of pr in context cx.
func (a *APM) Refine(pr int, cx int) int {
	s := Stretch(pr)
	w := s & 127
	a.idx = (s+2048)>>7 + cx*apmBuckets
	return (int(a.t[a.idx])*(128-w) + int(a.t[a.idx+1])*w) >> 11
}

// Update moves the two buckets used by the last Refine toward the bit.
func (a *APM) Update(bit int) {
	g := (bit << 16) + (bit << a.rate) - bit - bit
	for _, i := range [2]int{a.idx, a.idx + 1} {
		v := int(a.t[i])
		a.t[i] = uint16(v + (g-v)>>a.rate)
	}
}
