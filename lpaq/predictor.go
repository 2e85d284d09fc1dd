// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package lpaq

import (
	"github.com/aufdj/compression-algorithms/ari"
	"github.com/aufdj/compression-algorithms/model"
	"github.com/pkg/errors"
)

// Contexts stored in the shared hash table.
const (
	ctxWord = iota
	ctxOrder2
	ctxOrder3
	ctxOrder4
	ctxOrder6
	numHashed
)

// numInputs is the number of mixer inputs: the match model, order 1 and the
// hashed contexts.
const numInputs = numHashed + 2

// numWeightSets is the number of mixer weight sets. A set is selected by the
// context order (0..9) and the three high bits of the last byte.
const numWeightSets = 80

// hashedContext tracks the bit history of one context in the hash table.
type hashedContext struct {
	// h is the context hash of the current byte
	h uint32
	// i is the index of the current bit history
	i int
}

// Predictor mixes the predictions of seven models: a match model, a word
// model and contexts of orders 1, 2, 3, 4 and 6. The contexts map to bit
// histories, which are mapped to probabilities by StateMaps. The stretched
// probabilities are combined by a Mixer and refined by two APM stages using
// the partial byte and a hash of the partial byte and the last byte.
type Predictor struct {
	pr   int
	c0   uint32
	bits int
	c4   uint32
	word uint32
	h6   uint32

	// t0 holds the order 1 bit histories
	t0 []byte
	o1 int
	ht *model.HashTable
	hc [numHashed]hashedContext
	// sm[0] maps order 1 histories, sm[1:] the hashed contexts
	sm [numHashed + 1]*model.StateMap
	mm *matchModel
	mx *model.Mixer
	a1 *model.APM
	a2 *model.APM
}

// NewPredictor creates a predictor. The hash table uses 2^(memBits+1) bytes;
// the match model uses a buffer of 2^(memBits-1) bytes and an index of
// 2^(memBits-3) entries.
func NewPredictor(memBits int) (*Predictor, error) {
	if !(MinMemBits <= memBits && memBits <= MaxMemBits) {
		return nil, errors.Errorf("lpaq: memory bits %d out of range [%d,%d]",
			memBits, MinMemBits, MaxMemBits)
	}
	p := &Predictor{
		c0: 1,
		t0: make([]byte, 1<<16),
		ht: model.NewHashTable(1 << uint(memBits+1)),
		mm: newMatchModel(1<<uint(memBits-1), 1<<uint(memBits-3)),
		mx: model.NewMixer(numInputs, numWeightSets),
		a1: model.NewAPM(256, 7),
		a2: model.NewAPM(1<<14, 7),
	}
	for i := range p.sm {
		p.sm[i] = model.NewHistoryMap(model.MaxLimit)
	}
	p.byteContexts(0)
	p.o1 = int(p.c0)
	p.predict()
	return p, nil
}

// NewPredictorParam creates a predictor from the header parameter.
func NewPredictorParam(param byte) (ari.Predictor, error) {
	return NewPredictor(int(param))
}

// P returns the probability that the next bit is 1.
func (p *Predictor) P() int { return p.pr }

// Update trains all models with the bit and computes the next prediction.
func (p *Predictor) Update(bit int) {
	bit &= 1
	p.mx.Update(bit)
	p.a1.Update(bit)
	p.a2.Update(bit)
	p.mm.sm.Update(bit)
	for _, sm := range p.sm {
		sm.Update(bit)
	}
	p.t0[p.o1] = model.NextState(p.t0[p.o1], bit)
	for _, c := range p.hc {
		p.ht.SetState(c.i, model.NextState(p.ht.State(c.i), bit))
	}

	p.c0 = p.c0<<1 | uint32(bit)
	p.bits++
	p.mm.update(p.c0, p.bits)
	switch p.bits {
	case 8:
		c := p.c0 & 0xff
		p.c4 = p.c4<<8 | c
		p.c0, p.bits = 1, 0
		p.byteContexts(c)
	case 4:
		for i := range p.hc {
			p.hc[i].i = p.ht.Slot(p.hc[i].h+p.c0) + 1
		}
	default:
		// nodes of the nibble tree
		j := (bit + 1) << uint((p.bits&3)-1)
		for i := range p.hc {
			p.hc[i].i += j
		}
	}
	p.o1 = int(p.c4&0xff)<<8 | int(p.c0)
	p.predict()
}

// byteContexts computes the context hashes after the byte c.
func (p *Predictor) byteContexts(c uint32) {
	p.h6 = (p.h6*(11<<5) + c*13) & 0x3fffffff
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	if 'a' <= c && c <= 'z' {
		p.word = (p.word + c) * (7 << 3)
	} else {
		p.word = 0
	}
	p.hc[ctxWord].h = p.word
	p.hc[ctxOrder2].h = (p.c4&0xffff)<<5 | 0x57000000
	p.hc[ctxOrder3].h = (p.c4 << 8) * 3
	p.hc[ctxOrder4].h = p.c4 * 5
	p.hc[ctxOrder6].h = p.h6
	for i := range p.hc {
		p.hc[i].i = p.ht.Slot(p.hc[i].h) + 1
	}
}

// order estimates the length of the context that has been seen before.
func (p *Predictor) order() int {
	n := p.mm.length
	if n == 0 {
		k := 0
		for _, c := range p.hc[ctxOrder2:] {
			if p.ht.State(c.i) != 0 {
				k++
			}
		}
		return k
	}
	k := 5
	for _, t := range [...]int{8, 12, 16, 32} {
		if n >= t {
			k++
		}
	}
	return k
}

func (p *Predictor) predict() {
	p.mx.Add(model.Stretch(p.mm.p(p.c0, p.bits)))
	p.mx.Add(model.Stretch(p.sm[0].P(int(p.t0[p.o1]))))
	for i, c := range p.hc {
		p.mx.Add(model.Stretch(p.sm[i+1].P(int(p.ht.State(c.i)))))
	}
	c1 := int(p.c4 & 0xff)
	p.mx.Select(p.order() + 10*(c1>>5))
	pr := p.mx.P()
	c0 := int(p.c0)
	pr = (pr + 3*p.a1.Refine(pr, c0)) >> 2
	pr = (pr + 3*p.a2.Refine(pr, c0^c1<<6)) >> 2
	p.pr = model.ClampP(pr)
}
