// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package lpaq

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/fpaq"
	"github.com/aufdj/compression-algorithms/internal/randtxt"
	"github.com/aufdj/compression-algorithms/model"
)

func roundTrip(t *testing.T, cfg Config, data []byte) []byte {
	t.Helper()
	var c bytes.Buffer
	if err := cfg.Compress(&c, bytes.NewReader(data)); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	var d bytes.Buffer
	if err := Decompress(&d, bytes.NewReader(c.Bytes())); err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if !bytes.Equal(d.Bytes(), data) {
		t.Fatalf("decompressed data differs")
	}
	return c.Bytes()
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	random := make([]byte, 10000)
	rnd.Read(random)
	mixed := append(randtxt.Text(22, 20000), random[:3000]...)
	mixed = append(mixed, randtxt.Text(22, 20000)...)
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single", []byte{'q'}},
		{"AAAAAAAAAA", []byte("AAAAAAAAAA")},
		{"random", random},
		{"text", randtxt.Text(23, 40000)},
		{"repeated text", mixed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := roundTrip(t, Config{MemBits: 18}, tc.data)
			t.Logf("%d -> %d bytes", len(tc.data), len(c))
		})
	}
}

func TestRun(t *testing.T) {
	data := bytes.Repeat([]byte{0x55}, 10000)
	c := roundTrip(t, Config{}, data)
	if len(c) > 100 {
		t.Fatalf("compressed run to %d bytes", len(c))
	}
}

func TestRandomExpansion(t *testing.T) {
	rnd := rand.New(rand.NewSource(24))
	data := make([]byte, 20000)
	rnd.Read(data)
	c := roundTrip(t, Config{}, data)
	if len(c) > len(data)+len(data)/50 {
		t.Fatalf("random data expanded from %d to %d bytes", len(data), len(c))
	}
}

func TestBetterThanDirect(t *testing.T) {
	data := randtxt.Text(25, 50000)
	c := roundTrip(t, Config{}, data)
	var d bytes.Buffer
	if err := (fpaq.Config{Order: 2}).Compress(&d, bytes.NewReader(data)); err != nil {
		t.Fatalf("fpaq.Compress error %s", err)
	}
	if len(c) >= d.Len() {
		t.Fatalf("lpaq size %d; fpaq order 2 size %d", len(c), d.Len())
	}
	t.Logf("lpaq %d bytes, fpaq %d bytes", len(c), d.Len())
}

func TestMemBits(t *testing.T) {
	data := randtxt.Text(26, 20000)
	a := roundTrip(t, Config{MemBits: MinMemBits}, data)
	b := roundTrip(t, Config{MemBits: 20}, data)
	if bytes.Equal(a, b) {
		t.Fatalf("header doesn't record the memory parameter")
	}
	for _, m := range []int{MinMemBits - 1, MaxMemBits + 1} {
		cfg := Config{MemBits: m}
		err := cfg.Compress(new(bytes.Buffer), bytes.NewReader(data))
		if err == nil {
			t.Errorf("memory bits %d accepted", m)
		}
	}
}

func TestCorruption(t *testing.T) {
	data := randtxt.Text(27, 20000)
	var c bytes.Buffer
	if err := (Config{MemBits: 18}).Compress(&c, bytes.NewReader(data)); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	p := c.Bytes()
	p[len(p)/2] ^= 0x01
	err := Decompress(new(bytes.Buffer), bytes.NewReader(p))
	if !fault.IsCorrupt(err) {
		t.Fatalf("Decompress error %v; want corrupt input", err)
	}
}

func TestPredictorFavorsOnes(t *testing.T) {
	p, err := NewPredictor(MinMemBits)
	if err != nil {
		t.Fatalf("NewPredictor error %s", err)
	}
	if p.P() < 1 || p.P() > 4095 {
		t.Fatalf("initial P() = %d", p.P())
	}
	for i := 0; i < 8*500; i++ {
		p.Update(1)
	}
	if q := p.sm[0].P(int(p.t0[p.o1])); q <= 2048 {
		t.Fatalf("order 1 predicts %d", q)
	}
	for i, c := range p.hc {
		if q := p.sm[i+1].P(int(p.ht.State(c.i))); q <= 2048 {
			t.Fatalf("hashed context %d predicts %d", i, q)
		}
	}
	if q := p.P(); q < 4000 {
		t.Fatalf("P() = %d after 4000 one bits", q)
	}
}

func TestSynchronized(t *testing.T) {
	data := randtxt.Text(28, 5000)
	enc, _ := NewPredictor(MinMemBits)
	dec, _ := NewPredictor(MinMemBits)
	for i, c := range data {
		for k := 7; k >= 0; k-- {
			bit := int(c>>uint(k)) & 1
			if enc.P() != dec.P() {
				t.Fatalf("byte %d: predictions %d and %d differ",
					i, enc.P(), dec.P())
			}
			q := model.ClampP(enc.P())
			if q != enc.P() {
				t.Fatalf("byte %d: prediction %d out of range", i, enc.P())
			}
			enc.Update(bit)
			dec.Update(bit)
		}
	}
}
