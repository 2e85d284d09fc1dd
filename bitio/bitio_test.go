// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package bitio

import (
	"bytes"
	"io"
	"testing"
)

func TestWriterMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, b := range []int{1, 0, 1, 1} {
		if err := w.WriteBit(b); err != nil {
			t.Fatalf("WriteBit error %s", err)
		}
	}
	if w.Aligned() {
		t.Fatalf("writer aligned after 4 bits")
	}
	if err := w.WriteBits(0x5, 3); err != nil {
		t.Fatalf("WriteBits error %s", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush error %s", err)
	}
	if got, want := buf.Bytes(), []byte{0xba}; !bytes.Equal(got, want) {
		t.Fatalf("got %#x; want %#x", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	vals := []struct {
		v uint32
		n int
	}{
		{1, 1}, {0x1ff, 9}, {0, 3}, {0xdeadbeef, 32}, {0x41, 8}, {2, 2},
	}
	for _, x := range vals {
		if err := w.WriteBits(x.v, x.n); err != nil {
			t.Fatalf("WriteBits error %s", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush error %s", err)
	}
	r := NewReader(bytes.NewReader(buf.Bytes()))
	var pos int64
	for _, x := range vals {
		v, err := r.ReadBits(x.n)
		if err != nil {
			t.Fatalf("ReadBits error %s", err)
		}
		if v != x.v {
			t.Fatalf("ReadBits(%d) = %#x; want %#x", x.n, v, x.v)
		}
		pos += int64(x.n)
		if r.Pos() != pos {
			t.Fatalf("Pos() = %d; want %d", r.Pos(), pos)
		}
	}
}

func TestBytes(t *testing.T) {
	data := []byte("bit stream")
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, c := range data {
		if err := w.WriteByte(c); err != nil {
			t.Fatalf("WriteByte error %s", err)
		}
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Fatalf("got %q; want %q", buf.Bytes(), data)
	}
	r := NewReader(bytes.NewReader(data))
	for i := range data {
		c, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte error %s", err)
		}
		if c != data[i] {
			t.Fatalf("byte %d: got %q; want %q", i, c, data[i])
		}
	}
	if _, err := r.ReadBit(); err != io.EOF {
		t.Fatalf("ReadBit at end returned %v; want io.EOF", err)
	}
}

func TestUnexpectedEOF(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff}))
	if _, err := r.ReadBits(4); err != nil {
		t.Fatalf("ReadBits error %s", err)
	}
	if _, err := r.ReadBits(8); err != io.ErrUnexpectedEOF {
		t.Fatalf("ReadBits returned %v; want io.ErrUnexpectedEOF", err)
	}
}

func TestAlign(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xa5, 0xff}))
	if _, err := r.ReadBits(3); err != nil {
		t.Fatalf("ReadBits error %s", err)
	}
	if v := r.Align(); v != 0x05 {
		t.Fatalf("Align = %#x; want 0x05", v)
	}
	if !r.Aligned() {
		t.Fatalf("reader not aligned after Align")
	}
	if v := r.Align(); v != 0 {
		t.Fatalf("Align at boundary = %#x; want 0", v)
	}
	c, err := r.ReadByte()
	if err != nil || c != 0xff {
		t.Fatalf("ReadByte = %#x, %v", c, err)
	}
}
