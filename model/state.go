// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package model

// A bit history is represented by a byte naming a pair of counts (n0, n1) of
// zero and one bits. State 0 is the empty history. The counts are bounded
// by (41,0), (40,1), (12,2), (5,3) and (4,4) and likewise for (n1, n0). When
// a bit is observed its count is incremented and an opposite count larger
// than 2 is reduced to n/2+1, which favors recent history. If the result
// exceeds the bounds, the opposite count and then the count itself is
// decremented until the pair is valid again.
//
// States are numbered in order of increasing total count, so a larger state
// number indicates a more frequently used context.

type counts struct {
	n0, n1 int
}

// maxCounts gives for the smaller count of a pair the maximum of the
// larger count.
var maxCounts = [...]int{41, 40, 12, 5, 4}

func (c counts) valid() bool {
	a, b := c.n0, c.n1
	if a > b {
		a, b = b, a
	}
	return a < len(maxCounts) && b <= maxCounts[a]
}

var (
	stateCounts []counts
	stateNext   [256][2]uint8
)

func init() {
	index := make(map[counts]uint8)
	for total := 0; total <= 2*maxCounts[0]; total++ {
		for n1 := 0; n1 <= total; n1++ {
			c := counts{total - n1, n1}
			if !c.valid() {
				continue
			}
			if len(stateCounts) > 255 {
				panic("model: too many bit history states")
			}
			index[c] = uint8(len(stateCounts))
			stateCounts = append(stateCounts, c)
		}
	}
	for s, c := range stateCounts {
		for bit := 0; bit < 2; bit++ {
			stateNext[s][bit] = index[c.next(bit)]
		}
	}
}

func (c counts) next(bit int) counts {
	inc, opp := &c.n0, &c.n1
	if bit != 0 {
		inc, opp = opp, inc
	}
	*inc++
	if *opp > 2 {
		*opp = *opp/2 + 1
	}
	for !c.valid() {
		if *opp > 0 {
			*opp--
		} else {
			*inc--
		}
	}
	return c
}

// NextState returns the bit history state after observing bit.
func NextState(s uint8, bit int) uint8 {
	return stateNext[s][bit&1]
}

// StateCounts returns the number of zero and one bits the state represents.
func StateCounts(s uint8) (n0, n1 int) {
	if int(s) >= len(stateCounts) {
		return 0, 0
	}
	c := stateCounts[s]
	return c.n0, c.n1
}

// NumStates returns the number of bit history states.
func NumStates() int { return len(stateCounts) }
