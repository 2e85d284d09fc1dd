// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/internal/randtxt"
	"github.com/aufdj/compression-algorithms/xio"
)

func roundTrip(t *testing.T, data []byte) []byte {
	t.Helper()
	var c bytes.Buffer
	if err := Compress(&c, bytes.NewReader(data)); err != nil {
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
	random := make([]byte, 20000)
	rnd.Read(random)
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single", []byte{0}},
		{"one symbol", bytes.Repeat([]byte{7}, 1000)},
		{"two symbols", []byte("abbabbbaaab")},
		{"random", random},
		{"text", randtxt.Text(22, 50000)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := roundTrip(t, tc.data)
			t.Logf("%d -> %d", len(tc.data), len(c))
		})
	}
}

func TestFormat(t *testing.T) {
	var c bytes.Buffer
	if err := Compress(&c, bytes.NewReader([]byte("aab"))); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	want := xio.NewHeader([]byte("aab")).AppendBinary(nil)
	lens := make([]byte, 256)
	lens['a'], lens['b'] = 1, 1
	want = append(want, lens...)
	// codes 0, 0, 1
	want = append(want, 0x20)
	if !bytes.Equal(c.Bytes(), want) {
		t.Fatalf("compressed % x; want % x", c.Bytes(), want)
	}
	c.Reset()
	if err := Compress(&c, bytes.NewReader(nil)); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	if !bytes.Equal(c.Bytes(), []byte{0, 0, 0, 0, 0}) {
		t.Fatalf("empty input compressed to % x", c.Bytes())
	}
}

func TestLengthLimit(t *testing.T) {
	// Fibonacci weights produce the deepest trees.
	var freq [256]int64
	a, b := int64(1), int64(1)
	for i := 0; i < 60; i++ {
		freq[i] = a
		a, b = b, a+b
	}
	var lens [256]uint8
	if n := buildLengths(&freq, &lens); n <= maxCodeLen {
		t.Fatalf("unlimited tree depth %d; want more than %d", n, maxCodeLen)
	}
	lens = codeLengths(freq)
	for s, l := range lens {
		if l > maxCodeLen {
			t.Fatalf("symbol %d has length %d", s, l)
		}
		if (freq[s] > 0) != (l > 0) {
			t.Fatalf("symbol %d: frequency %d, length %d", s, freq[s], l)
		}
	}
	if _, err := canonical(&lens); err != nil {
		t.Fatalf("canonical error %s", err)
	}
}

func TestCanonical(t *testing.T) {
	var lens [256]uint8
	lens['a'], lens['b'], lens['c'], lens['d'] = 2, 1, 3, 3
	codes, err := canonical(&lens)
	if err != nil {
		t.Fatalf("canonical error %s", err)
	}
	want := map[byte]uint32{'b': 0, 'a': 2, 'c': 6, 'd': 7}
	for s, c := range want {
		if codes[s] != c {
			t.Errorf("code[%c] = %b; want %b", s, codes[s], c)
		}
	}
}

func TestTextCompresses(t *testing.T) {
	data := randtxt.Text(23, 100000)
	if c := roundTrip(t, data); len(c) > len(data)*65/100 {
		t.Fatalf("text compressed to %d of %d bytes", len(c), len(data))
	}
}

func header(size uint64, lens map[byte]uint8) []byte {
	p := xio.Header{Size: size}.AppendBinary(nil)
	n := len(p)
	p = append(p, make([]byte, 256)...)
	for s, l := range lens {
		p[n+int(s)] = l
	}
	return p
}

func encoded(t *testing.T, s string) []byte {
	t.Helper()
	var c bytes.Buffer
	if err := Compress(&c, bytes.NewReader([]byte(s))); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	return c.Bytes()
}

func TestCorrupt(t *testing.T) {
	tests := []struct {
		name string
		p    []byte
	}{
		{"empty", nil},
		{"short header", []byte{3, 0, 0}},
		{"short lengths", append(header(3, nil)[:5], 0, 1)},
		{"no lengths", header(3, nil)},
		{"too long", header(3, map[byte]uint8{'a': 25, 'b': 1})},
		{"oversubscribed", header(3, map[byte]uint8{'a': 1, 'b': 1, 'c': 1})},
		{"truncated", append(header(100, map[byte]uint8{'a': 1, 'b': 1}), 0)},
		{"invalid code", append(header(1, map[byte]uint8{'a': 1}), 0x80)},
		{"padding", append(header(1, map[byte]uint8{'a': 1, 'b': 1}), 0x40)},
		{"checksum", append(header(1, map[byte]uint8{'a': 1, 'b': 1}), 0x00)},
		{"trailing data", append(encoded(t, "ab"), 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Decompress(new(bytes.Buffer), bytes.NewReader(tc.p))
			if !fault.IsCorrupt(err) {
				t.Fatalf("Decompress error %v; want corrupt input", err)
			}
		})
	}
}

func TestFlippedBytes(t *testing.T) {
	data := randtxt.Text(24, 2000)
	c := roundTrip(t, data)
	p := make([]byte, len(c))
	for i := range c {
		for _, x := range []byte{0x01, 0x80, 0xff} {
			copy(p, c)
			p[i] ^= x
			var d bytes.Buffer
			err := Decompress(&d, bytes.NewReader(p))
			if err == nil {
				if !bytes.Equal(d.Bytes(), data) {
					t.Fatalf("byte %d ^ %#x: decoded %d bytes without error",
						i, x, d.Len())
				}
				continue
			}
			if !fault.IsCorrupt(err) {
				t.Fatalf("byte %d ^ %#x: error %v; want corrupt input",
					i, x, err)
			}
		}
	}
}
