// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package lz77

import (
	"github.com/aufdj/compression-algorithms/hash"
	"github.com/ulikunitz/lz"
)

const (
	hashBits = 14
	maxChain = 64
)

// finder is a hash-chain match finder. Positions are stored plus one so
// that zero marks an empty entry.
type finder struct {
	hashes []uint64
	head   [1 << hashBits]int32
	prev   [windowSize]int32
}

func newFinder(data []byte) *finder {
	return &finder{hashes: hash.Hashes(hash.NewRabinKarp(minMatch), data)}
}

func (f *finder) insert(i int) {
	if i >= len(f.hashes) {
		return
	}
	b := hash.Bucket(f.hashes[i], hashBits)
	f.prev[i%windowSize] = f.head[b]
	f.head[b] = int32(i + 1)
}

// longest returns the longest match for position i and its distance.
func (f *finder) longest(data []byte, i int) (n, dist int) {
	if i >= len(f.hashes) {
		return 0, 0
	}
	limit := len(data) - i
	if limit > maxMatch {
		limit = maxMatch
	}
	cand := int(f.head[hash.Bucket(f.hashes[i], hashBits)]) - 1
	for chain := 0; cand >= 0 && i-cand <= windowSize && chain < maxChain; chain++ {
		k := 0
		for k < limit && data[cand+k] == data[i+k] {
			k++
		}
		if k > n {
			n, dist = k, i-cand
			if n == limit {
				break
			}
		}
		next := int(f.prev[cand%windowSize]) - 1
		if next >= cand {
			break
		}
		cand = next
	}
	return n, dist
}

// Parse appends the greedy LZ77 parse of data to blk. Every sequence holds
// a match of minMatch to maxMatch bytes within the window; the literals
// after the last match have no sequence.
func Parse(blk *lz.Block, data []byte) {
	f := newFinder(data)
	start := 0
	for i := 0; i < len(data); {
		n, dist := f.longest(data, i)
		if n < minMatch {
			f.insert(i)
			i++
			continue
		}
		blk.Sequences = append(blk.Sequences, lz.Seq{
			LitLen:   uint32(i - start),
			MatchLen: uint32(n),
			Offset:   uint32(dist),
		})
		blk.Literals = append(blk.Literals, data[start:i]...)
		for k := 0; k < n; k++ {
			f.insert(i + k)
		}
		i += n
		start = i
	}
	blk.Literals = append(blk.Literals, data[start:]...)
}
