// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"container/heap"

	"github.com/aufdj/compression-algorithms/fault"
)

// maxCodeLen is the longest code length.
const maxCodeLen = 24

type item struct {
	w  int64
	id int
}

// itemHeap orders tree nodes by weight. Ties are broken by id so that the
// code doesn't depend on heap internals.
type itemHeap []item

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	if h[i].w != h[j].w {
		return h[i].w < h[j].w
	}
	return h[i].id < h[j].id
}
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(item)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old) - 1
	x := old[n]
	*h = old[:n]
	return x
}

// buildLengths computes Huffman code lengths for the frequencies and
// returns the longest length. A single symbol gets length 1.
func buildLengths(freq *[256]int64, lens *[256]uint8) int {
	*lens = [256]uint8{}
	var (
		h      itemHeap
		syms   []int
		parent []int
	)
	for s, f := range freq {
		if f > 0 {
			h = append(h, item{w: f, id: len(parent)})
			parent = append(parent, -1)
			syms = append(syms, s)
		}
	}
	switch len(syms) {
	case 0:
		return 0
	case 1:
		lens[syms[0]] = 1
		return 1
	}
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(item)
		b := heap.Pop(&h).(item)
		id := len(parent)
		parent = append(parent, -1)
		parent[a.id], parent[b.id] = id, id
		heap.Push(&h, item{w: a.w + b.w, id: id})
	}
	longest := 0
	for i, s := range syms {
		d := 0
		for p := parent[i]; p >= 0; p = parent[p] {
			d++
		}
		lens[s] = uint8(d)
		if d > longest {
			longest = d
		}
	}
	return longest
}

// codeLengths returns code lengths of at most maxCodeLen. Frequencies are
// halved until the tree is shallow enough.
func codeLengths(freq [256]int64) (lens [256]uint8) {
	for buildLengths(&freq, &lens) > maxCodeLen {
		for s, f := range freq {
			if f > 0 {
				freq[s] = (f + 1) / 2
			}
		}
	}
	return lens
}

// canonical assigns canonical codes: shorter codes first, equal lengths in
// symbol order. Lengths that oversubscribe the code space are rejected.
func canonical(lens *[256]uint8) (codes [256]uint32, err error) {
	var count [maxCodeLen + 1]int
	for _, l := range lens {
		if l > maxCodeLen {
			return codes, fault.Corruptf("huffman: code length %d", l)
		}
		count[l]++
	}
	count[0] = 0
	left := 1
	for l := 1; l <= maxCodeLen; l++ {
		left = left<<1 - count[l]
		if left < 0 {
			return codes, fault.Corruptf(
				"huffman: code lengths oversubscribed")
		}
	}
	var next [maxCodeLen + 1]uint32
	code := uint32(0)
	for l := 1; l <= maxCodeLen; l++ {
		code = (code + uint32(count[l-1])) << 1
		next[l] = code
	}
	for s, l := range lens {
		if l > 0 {
			codes[s] = next[l]
			next[l]++
		}
	}
	return codes, nil
}

// decoder decodes canonical codes bit by bit.
type decoder struct {
	count [maxCodeLen + 1]int
	// symbols sorted by code length, then value
	symbols []byte
}

func newDecoder(lens *[256]uint8) *decoder {
	d := &decoder{symbols: make([]byte, 0, 256)}
	for l := 1; l <= maxCodeLen; l++ {
		for s, k := range lens {
			if int(k) == l {
				d.count[l]++
				d.symbols = append(d.symbols, byte(s))
			}
		}
	}
	return d
}

type bitReader interface {
	ReadBit() (int, error)
}

// decode reads one symbol. ok is false if the bits match no code.
func (d *decoder) decode(br bitReader) (c byte, ok bool, err error) {
	code, first, index := 0, 0, 0
	for l := 1; l <= maxCodeLen; l++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, false, err
		}
		code |= bit
		n := d.count[l]
		if code-first < n {
			return d.symbols[index+code-first], true, nil
		}
		index += n
		first = (first + n) << 1
		code <<= 1
	}
	return 0, false, nil
}
