// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package fpaq

import (
	"github.com/aufdj/compression-algorithms/ari"
	"github.com/aufdj/compression-algorithms/model"
	"github.com/pkg/errors"
)

// Predictor predicts each bit with one counter. The counter is selected by
// the partial byte c0, which carries a leading 1 bit, and the last order
// bytes. Order 1 indexes the table directly; higher orders hash the
// preceding bytes to a block of 256 counters.
type Predictor struct {
	t     []model.Counter
	order int
	c0    uint32
	hist  uint32
	base  uint32
	idx   uint32
}

// NewPredictor creates a predictor for the given order.
func NewPredictor(order int) (*Predictor, error) {
	if !(MinOrder <= order && order <= MaxOrder) {
		return nil, errors.Errorf("fpaq: order %d out of range [%d,%d]",
			order, MinOrder, MaxOrder)
	}
	n := 1 << 16
	if order > 1 {
		n = 1 << hashBits
	}
	p := &Predictor{
		t:     make([]model.Counter, n),
		order: order,
		c0:    1,
	}
	for i := range p.t {
		p.t[i] = model.NewCounter()
	}
	p.setContext()
	return p, nil
}

// NewPredictorParam creates a predictor from the header parameter.
func NewPredictorParam(param byte) (ari.Predictor, error) {
	return NewPredictor(int(param))
}

// setContext computes the table block for the byte history.
func (p *Predictor) setContext() {
	if p.order == 1 {
		p.base = (p.hist & 0xff) << 8
	} else {
		h := p.hist
		if p.order < 4 {
			h &= 1<<(8*uint(p.order)) - 1
		}
		h = (h + uint32(p.order)) * 2654435761
		p.base = (h >> (32 - hashBits + 8)) << 8
	}
	p.idx = p.base | p.c0
}

// P returns the probability that the next bit is 1.
func (p *Predictor) P() int { return p.t[p.idx].P() }

// Update trains the selected counter and advances the context.
func (p *Predictor) Update(bit int) {
	p.t[p.idx].Update(bit)
	p.c0 = p.c0<<1 | uint32(bit&1)
	if p.c0 >= 256 {
		p.hist = p.hist<<8 | p.c0&0xff
		p.c0 = 1
		p.setContext()
		return
	}
	p.idx = p.base | p.c0
}
