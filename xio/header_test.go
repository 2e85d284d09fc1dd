// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package xio

import (
	"bytes"
	"testing"

	"github.com/aufdj/compression-algorithms/fault"
)

func TestHeader(t *testing.T) {
	data := []byte("abracadabra")
	h := NewHeader(data)
	p := h.AppendBinary(nil)
	p = append(p, 'x')
	r := NewReader(bytes.NewReader(p))
	g, err := r.Header()
	if err != nil {
		t.Fatalf("Header error %s", err)
	}
	if g != h {
		t.Fatalf("Header = %+v; want %+v", g, h)
	}
	if err = g.Verify(data, r.Offset()); err != nil {
		t.Fatalf("Verify error %s", err)
	}
	if err = r.ExpectEOF(); !fault.IsCorrupt(err) {
		t.Fatalf("ExpectEOF returned %v; want corrupt input", err)
	}
	rest, err := r.Rest()
	if err != nil || string(rest) != "x" {
		t.Fatalf("Rest = %q, %v", rest, err)
	}
	if err = r.ExpectEOF(); err != nil {
		t.Fatalf("ExpectEOF at end returned %s", err)
	}
}

func TestHeaderEmpty(t *testing.T) {
	p := NewHeader(nil).AppendBinary(nil)
	if !bytes.Equal(p, []byte{0, 0, 0, 0, 0}) {
		t.Fatalf("empty header % x", p)
	}
}

func TestHeaderVerify(t *testing.T) {
	h := NewHeader([]byte("abc"))
	tests := []struct {
		name string
		data string
	}{
		{"short", "ab"},
		{"long", "abcd"},
		{"changed", "abd"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := h.Verify([]byte(tc.data), 5); !fault.IsCorrupt(err) {
				t.Fatalf("Verify(%q) returned %v; want corrupt input",
					tc.data, err)
			}
		})
	}
}

func TestHeaderTruncated(t *testing.T) {
	p := NewHeader([]byte("abc")).AppendBinary(nil)
	for n := 0; n < len(p); n++ {
		r := NewReader(bytes.NewReader(p[:n]))
		if _, err := r.Header(); !fault.IsCorrupt(err) {
			t.Fatalf("Header(% x) returned %v; want corrupt input",
				p[:n], err)
		}
	}
}
