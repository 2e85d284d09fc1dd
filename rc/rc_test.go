// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package rc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/aufdj/compression-algorithms/fault"
)

type step struct {
	bit int
	p   int
}

func encodeSteps(t *testing.T, steps []step) []byte {
	t.Helper()
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	for i, s := range steps {
		if err := e.Encode(s.bit, s.p); err != nil {
			t.Fatalf("Encode(%d, %d) step %d error %s", s.bit, s.p, i, err)
		}
		if e.Low() >= e.High() {
			t.Fatalf("step %d: low %#08x >= high %#08x",
				i, e.Low(), e.High())
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush error %s", err)
	}
	if e.Compressed() != int64(buf.Len()) {
		t.Fatalf("Compressed() = %d; want %d", e.Compressed(), buf.Len())
	}
	return buf.Bytes()
}

func decodeSteps(t *testing.T, data []byte, steps []step) {
	t.Helper()
	d, err := NewDecoder(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewDecoder error %s", err)
	}
	for i, s := range steps {
		bit, err := d.Decode(s.p)
		if err != nil {
			t.Fatalf("Decode step %d error %s", i, err)
		}
		if bit != s.bit {
			t.Fatalf("step %d: got bit %d; want %d", i, bit, s.bit)
		}
	}
	if err = d.Finish(); err != nil {
		t.Fatalf("Finish error %s", err)
	}
	if d.Consumed() != int64(len(data)) {
		t.Fatalf("Consumed() = %d; want %d", d.Consumed(), len(data))
	}
}

func randomSteps(r *rand.Rand, n int, prob func() int) []step {
	steps := make([]step, n)
	for i := range steps {
		p := prob()
		bit := 0
		if r.Intn(ProbScale) < p {
			bit = 1
		}
		steps[i] = step{bit, p}
	}
	return steps
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tests := []struct {
		name  string
		steps []step
	}{
		{"single one", []step{{1, 2048}}},
		{"single zero", []step{{0, 2048}}},
		{"uniform", randomSteps(r, 10000, func() int {
			return ProbMin + r.Intn(ProbMax)
		})},
		{"skewed", randomSteps(r, 10000, func() int { return 4000 })},
		{"low", randomSteps(r, 10000, func() int { return 20 })},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := encodeSteps(t, tc.steps)
			decodeSteps(t, data, tc.steps)
		})
	}
}

// TestAdversarial codes bits against the probability they are given, at both
// extremes of the probability domain.
func TestAdversarial(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	steps := make([]step, 5000)
	for i := range steps {
		switch r.Intn(4) {
		case 0:
			steps[i] = step{0, ProbMax}
		case 1:
			steps[i] = step{1, ProbMin}
		case 2:
			steps[i] = step{1, ProbMax}
		default:
			steps[i] = step{0, ProbMin}
		}
	}
	data := encodeSteps(t, steps)
	decodeSteps(t, data, steps)
}

func TestCompression(t *testing.T) {
	steps := make([]step, 8000)
	for i := range steps {
		steps[i] = step{1, ProbMax}
	}
	data := encodeSteps(t, steps)
	// 8000 bits at p=4095/4096 cost less than 3 bits in total
	if len(data) > 4 {
		t.Fatalf("encoded %d bits into %d bytes", len(steps), len(data))
	}
}

func TestInvalidArguments(t *testing.T) {
	e := NewEncoder(new(bytes.Buffer))
	for _, p := range []int{0, ProbScale, -1} {
		if err := e.Encode(1, p); err == nil {
			t.Errorf("Encode(1, %d) succeeded", p)
		}
	}
	if err := e.Encode(2, 2048); err == nil {
		t.Errorf("Encode(2, 2048) succeeded")
	}
}

func TestCorruptStream(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	steps := randomSteps(r, 2000, func() int { return 1 + r.Intn(ProbMax) })
	data := encodeSteps(t, steps)

	t.Run("trailing", func(t *testing.T) {
		d, err := NewDecoder(bytes.NewReader(append(data[:len(data):len(data)], 0)))
		if err != nil {
			t.Fatalf("NewDecoder error %s", err)
		}
		for _, s := range steps {
			if _, err = d.Decode(s.p); err != nil {
				t.Fatalf("Decode error %s", err)
			}
		}
		if err = d.Finish(); !fault.IsCorrupt(err) {
			t.Fatalf("Finish returned %v; want corrupt input error", err)
		}
	})
	t.Run("truncated", func(t *testing.T) {
		d, err := NewDecoder(bytes.NewReader(data[:len(data)/2]))
		if err != nil {
			t.Fatalf("NewDecoder error %s", err)
		}
		for _, s := range steps {
			if _, err = d.Decode(s.p); err != nil {
				break
			}
		}
		if err == nil {
			err = d.Finish()
		}
		if !fault.IsCorrupt(err) {
			t.Fatalf("got error %v; want corrupt input error", err)
		}
	})
}
