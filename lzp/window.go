// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package lzp

const (
	bufBits  = 22
	hashBits = 20
	bufMask  = 1<<bufBits - 1
	hashMask = 1<<hashBits - 1
	// hashMul spreads an order-4 context over the hash bits
	hashMul = 96
)

// window is the rotating history shared by encoder and decoder. ht maps
// the hash of the last four bytes to the position that followed them the
// last time.
type window struct {
	buf []byte
	ht  []uint32
	h   uint32
	p   uint32
}

func newWindow() *window {
	return &window{
		buf: make([]byte, 1<<bufBits),
		ht:  make([]uint32, 1<<hashBits),
	}
}

func (w *window) update(c byte) {
	w.ht[w.h] = w.p
	w.h = (w.h*hashMul + uint32(c)) & hashMask
	w.buf[w.p&bufMask] = c
	w.p++
}

// predicted returns the position predicted by the current context.
func (w *window) predicted() uint32 { return w.ht[w.h] }

func (w *window) at(pos uint32) byte { return w.buf[pos&bufMask] }
