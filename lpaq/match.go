// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package lpaq

import "github.com/aufdj/compression-algorithms/model"

// maxMatch is the longest match length tracked.
const maxMatch = 62

// matchModel finds the last occurrence of the current context and predicts
// the bit that followed it. Lookups use a long and a short context hash; the
// index has no collision detection. A match is kept until a bit is
// mispredicted.
//
// The prediction maps the expected bit, the match length (1..15 or quantized
// by 4 up to 62) and the last byte through a StateMap. Without a match the
// partial byte is the context.
type matchModel struct {
	buf     []byte
	ht      []uint32
	bufMask int
	htMask  uint32

	// ptr points to the predicted byte in buf
	ptr    int
	pos    int
	length int
	hs, hl uint32

	sm *model.StateMap
}

func newMatchModel(bufSize, htSize int) *matchModel {
	return &matchModel{
		buf:     make([]byte, bufSize),
		ht:      make([]uint32, htSize),
		bufMask: bufSize - 1,
		htMask:  uint32(htSize - 1),
		sm:      model.NewStateMap(56<<8, model.DefaultLimit),
	}
}

// update processes the partial byte c0 containing bits bits. When bits is 8
// the byte is complete and c0 is 256 plus the byte.
func (m *matchModel) update(c0 uint32, bits int) {
	if bits < 8 {
		return
	}
	m.hl = (m.hl*(3<<3) + c0) & m.htMask
	m.hs = (m.hs*(5<<5) + c0) & m.htMask
	m.buf[m.pos] = byte(c0)
	m.pos = (m.pos + 1) & m.bufMask

	if m.length > 0 {
		m.ptr = (m.ptr + 1) & m.bufMask
		if m.length < maxMatch {
			m.length++
		}
	} else {
		m.find(m.hl)
	}
	if m.length < 2 {
		m.length = 0
		m.find(m.hs)
	}
	m.ht[m.hs] = uint32(m.pos)
	m.ht[m.hl] = uint32(m.pos)
}

// find looks for a match at the position stored for hash h and extends it
// backwards.
func (m *matchModel) find(h uint32) {
	m.ptr = int(m.ht[h])
	if m.ptr == m.pos {
		return
	}
	m1 := (m.ptr - m.length - 1) & m.bufMask
	m2 := (m.pos - m.length - 1) & m.bufMask
	for m.length < maxMatch && m1 != m.pos && m.buf[m1] == m.buf[m2] {
		m.length++
		m1 = (m1 - 1) & m.bufMask
		m2 = (m2 - 1) & m.bufMask
	}
}

// p returns the prediction for the next bit of the partial byte c0.
func (m *matchModel) p(c0 uint32, bits int) int {
	cx := int(c0)
	if m.length > 0 {
		b := uint32(m.buf[m.ptr])
		if (b+256)>>uint(8-bits) == c0 {
			expected := int(b>>uint(7-bits)) & 1
			if m.length < 16 {
				cx = m.length*2 + expected
			} else {
				cx = (m.length>>2)*2 + expected + 24
			}
			cx = cx<<8 | int(m.buf[(m.pos-1)&m.bufMask])
		} else {
			m.length = 0
		}
	}
	return m.sm.P(cx)
}
