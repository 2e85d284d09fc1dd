// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package model

// Mixer combines stretched predictions with a single layer neural network.
// The output is p = squash(sum_i w_i*x_i) with the weight set selected by a
// small context. After the bit y is known the weights are trained with
// w_i += x_i*(y-p)*lr, which minimizes the coding cost.
//
// Weights are 16.16 fixed point numbers.
type Mixer struct {
	n   int
	x   []int32
	w   []int32
	set int
	pr  int
}

// Mixer constants.
const (
	mixerInitWeight = 1 << 14
	mixerMaxWeight  = 1 << 19
	mixerLearnRate  = 7
)

// NewMixer creates a mixer for n inputs and m weight sets. All weights start
// at 0.25.
func NewMixer(n, m int) *Mixer {
	mx := &Mixer{
		n:  n,
		x:  make([]int32, 0, n),
		w:  make([]int32, n*m),
		pr: 2048,
	}
	for i := range mx.w {
		mx.w[i] = mixerInitWeight
	}
	return mx
}

// Add appends a stretched prediction to the inputs.
func (mx *Mixer) Add(st int) {
	if len(mx.x) == mx.n {
		panic("model: too many mixer inputs")
	}
	mx.x = append(mx.x, int32(st))
}

// Select chooses the weight set used by P and Update.
func (mx *Mixer) Select(cx int) {
	mx.set = cx * mx.n
}

// P returns the mixed probability.
func (mx *Mixer) P() int {
	w := mx.w[mx.set : mx.set+mx.n]
	var dot int64
	for i, x := range mx.x {
		dot += int64(x) * int64(w[i])
	}
	mx.pr = Squash(int(dot >> 16))
	return mx.pr
}

// Update trains the selected weights and clears the inputs.
func (mx *Mixer) Update(bit int) {
	err := int64((bit<<12)-mx.pr) * mixerLearnRate
	w := mx.w[mx.set : mx.set+mx.n]
	for i, x := range mx.x {
		v := int64(w[i]) + (int64(x)*err+0x8000)>>16
		if v > mixerMaxWeight {
			v = mixerMaxWeight
		} else if v < -mixerMaxWeight {
			v = -mixerMaxWeight
		}
		w[i] = int32(v)
	}
	mx.x = mx.x[:0]
}
