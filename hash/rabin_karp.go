// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

// A is the default multiplier for the Rabin-Karp hash. It is a random prime.
const A = 252097800623

// RabinKarp computes a polynomial rolling hash modulo 2^64.
type RabinKarp struct {
	A uint64
	N int
	// a^(n-1)
	oldest uint64
}

// NewRabinKarp returns a rolling hash over n bytes using the multiplier A.
func NewRabinKarp(n int) *RabinKarp {
	return NewRabinKarpConst(n, A)
}

// NewRabinKarpConst returns a rolling hash over n bytes using the
// multiplier a. It panics if n is not positive.
func NewRabinKarpConst(n int, a uint64) *RabinKarp {
	if n <= 0 {
		panic("hash: window length must be positive")
	}
	oldest := uint64(1)
	for i := 0; i < n-1; i++ {
		oldest *= a
	}
	return &RabinKarp{A: a, N: n, oldest: oldest}
}

// Push multiplies h by the constant and adds b.
func (r *RabinKarp) Push(h uint64, b byte) uint64 {
	return h*r.A + uint64(b)
}

// Pop removes the contribution of the oldest byte b.
func (r *RabinKarp) Pop(h uint64, b byte) uint64 {
	return h - uint64(b)*r.oldest
}

// Len returns the window length.
func (r *RabinKarp) Len() int { return r.N }
