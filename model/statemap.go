// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package model

// A StateMap maps a context to a probability. Each entry packs a 22-bit
// probability and a 10-bit count into 32 bits. After the bit y has been
// observed the count is incremented up to the limit and the probability is
// adjusted by p += (y - p)/(n + 1.5).
type StateMap struct {
	t     []uint32
	limit uint32
	cx    int
}

// StateMap limits. A higher limit adapts more slowly.
const (
	MaxLimit     = 1023
	DefaultLimit = 127
)

// stateMapRecip holds 16384/(n+1.5).
var stateMapRecip [MaxLimit + 1]int64

func init() {
	for n := range stateMapRecip {
		stateMapRecip[n] = 16384 / int64(n+n+3)
	}
}

// NewStateMap creates a map for n contexts. All probabilities start at 1/2.
func NewStateMap(n int, limit int) *StateMap {
	if limit < 0 || limit > MaxLimit {
		panic("model: StateMap limit out of range")
	}
	sm := &StateMap{t: make([]uint32, n), limit: uint32(limit)}
	for i := range sm.t {
		sm.t[i] = 1 << 31
	}
	return sm
}

// NewHistoryMap creates a map indexed by bit history states. The
// probabilities are initialized from the counts of the states.
func NewHistoryMap(limit int) *StateMap {
	sm := NewStateMap(256, limit)
	for s := 0; s < NumStates(); s++ {
		n0, n1 := StateCounts(uint8(s))
		p := (int64(2*n1+1) << 22) / int64(2*(n0+n1)+2)
		sm.t[s] = uint32(p) << 10
	}
	return sm
}

// P selects the context and returns its probability.
func (sm *StateMap) P(cx int) int {
	sm.cx = cx
	return int(sm.t[cx] >> 20)
}

// Update adjusts the entry selected by the last call of P.
func (sm *StateMap) Update(bit int) {
	v := sm.t[sm.cx]
	n := v & 1023
	p := int64(v >> 10)
	if n < sm.limit {
		n++
	} else {
		n = sm.limit
	}
	err := ((int64(bit) << 22) - p) >> 3
	p += (err * stateMapRecip[v&1023]) >> 10
	if p < 0 {
		p = 0
	} else if p > 1<<22-1 {
		p = 1<<22 - 1
	}
	sm.t[sm.cx] = uint32(p)<<10 | n
}
