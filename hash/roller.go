// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package hash provides the rolling hash used by the LZ77 match finder to
// index the positions of short byte sequences in the sliding window.
package hash

// Roller is a rolling hash over byte sequences of a fixed length.
//
// Push shifts the hash and adds the youngest byte. Pop removes the
// contribution of the oldest byte without shifting.
type Roller interface {
	Len() int
	Push(h uint64, b byte) uint64
	Pop(h uint64, b byte) uint64
}

// Hashes returns the hashes for every window of r.Len() bytes in p. The
// result is empty if p is shorter than the window.
func Hashes(r Roller, p []byte) []uint64 {
	m, n := len(p), r.Len()
	if m < n {
		return nil
	}
	h := make([]uint64, m-n+1)
	for _, b := range p[:n] {
		h[0] = r.Push(h[0], b)
	}
	for i := 1; i < len(h); i++ {
		h[i] = r.Push(r.Pop(h[i-1], p[i-1]), p[n-1+i])
	}
	return h
}

// Bucket reduces a hash to a table index with the given number of bits.
// The high bits are used since the low bits of a multiplicative hash mix
// poorly.
func Bucket(h uint64, bits uint) int {
	return int(h >> (64 - bits))
}
