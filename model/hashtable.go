// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package model

import "math/bits"

// SlotSize is the size of a slot in a HashTable. Byte 0 of a slot holds a
// checksum of the context, bytes 1 to 15 hold the bit history states for the
// 15 nodes of a nibble.
const SlotSize = 16

// HashTable maps context hashes to slots of bit history states. It is a byte
// arena; slots are addressed by index. A context is searched in three
// adjacent slots. If none carries its checksum, the slot whose first state
// has the lowest priority is cleared and claimed.
type HashTable struct {
	t []byte
}

// NewHashTable creates a table of n bytes. The size n must be a power of
// two of at least 4*SlotSize.
func NewHashTable(n int) *HashTable {
	if n < 4*SlotSize || n&(n-1) != 0 {
		panic("model: hash table size must be a power of two >= 64")
	}
	return &HashTable{t: make([]byte, n)}
}

// Slot returns the index of the slot for the context hash h.
func (ht *HashTable) Slot(h uint32) int {
	h = bits.RotateLeft32(h*123456791, -16) * 234567891
	chk := byte(h >> 24)
	i := int(h*SlotSize) & (len(ht.t) - SlotSize)
	t := ht.t
	for _, j := range [3]int{i, i ^ SlotSize, i ^ 2*SlotSize} {
		if t[j] == chk {
			return j
		}
	}
	if t[i+1] > t[(i^SlotSize)+1] || t[i+1] > t[(i^2*SlotSize)+1] {
		i ^= SlotSize
	}
	if t[i+1] > t[(i^SlotSize^2*SlotSize)+1] {
		i ^= SlotSize ^ 2*SlotSize
	}
	s := t[i : i+SlotSize]
	for k := range s {
		s[k] = 0
	}
	s[0] = chk
	return i
}

// State returns the bit history at index i.
func (ht *HashTable) State(i int) uint8 { return ht.t[i] }

// SetState stores a bit history at index i.
func (ht *HashTable) SetState(i int, s uint8) { ht.t[i] = s }

// Len returns the size of the table in bytes.
func (ht *HashTable) Len() int { return len(ht.t) }
