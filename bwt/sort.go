// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package bwt

// sortRotations returns the start positions of the cyclic rotations of s in
// sorted order. Ranks are refined by prefix doubling; each round sorts by
// the rank pair (rank[i], rank[i+h]) with a counting sort.
func sortRotations(s []byte) []int32 {
	n := len(s)
	p := make([]int32, n)
	rank := make([]int32, n)
	if n == 0 {
		return p
	}
	cnt := make([]int32, max(256, n))
	for _, c := range s {
		cnt[c]++
	}
	for i := 1; i < 256; i++ {
		cnt[i] += cnt[i-1]
	}
	for i := n - 1; i >= 0; i-- {
		cnt[s[i]]--
		p[cnt[s[i]]] = int32(i)
	}
	classes := int32(1)
	for i := 1; i < n; i++ {
		if s[p[i]] != s[p[i-1]] {
			classes++
		}
		rank[p[i]] = classes - 1
	}
	pn := make([]int32, n)
	rn := make([]int32, n)
	for h := 1; h < n && int(classes) < n; h <<= 1 {
		// p sorted by rank[i+h] gives the order of p[i]-h by its
		// second key
		for i, v := range p {
			v -= int32(h)
			if v < 0 {
				v += int32(n)
			}
			pn[i] = v
		}
		clear(cnt[:classes])
		for _, v := range pn {
			cnt[rank[v]]++
		}
		for i := int32(1); i < classes; i++ {
			cnt[i] += cnt[i-1]
		}
		for i := n - 1; i >= 0; i-- {
			r := rank[pn[i]]
			cnt[r]--
			p[cnt[r]] = pn[i]
		}
		rn[p[0]] = 0
		classes = 1
		for i := 1; i < n; i++ {
			a, b := p[i], p[i-1]
			if rank[a] != rank[b] || rank[(int(a)+h)%n] != rank[(int(b)+h)%n] {
				classes++
			}
			rn[a] = classes - 1
		}
		rank, rn = rn, rank
	}
	return p
}
