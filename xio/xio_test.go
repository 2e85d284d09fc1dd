// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package xio

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/aufdj/compression-algorithms/fault"
)

func TestReaderUvarint(t *testing.T) {
	p := AppendUvarint(nil, 300)
	p = append(p, 7)
	r := NewReader(bytes.NewReader(p))
	u, err := r.Uvarint(MaxSize)
	if err != nil {
		t.Fatalf("Uvarint error %s", err)
	}
	if u != 300 {
		t.Fatalf("Uvarint = %d; want 300", u)
	}
	if r.Offset() != 2 {
		t.Fatalf("Offset = %d; want 2", r.Offset())
	}
	c, err := r.Byte()
	if err != nil || c != 7 {
		t.Fatalf("Byte = %d, %v", c, err)
	}
	eof, err := r.EOF()
	if err != nil || !eof {
		t.Fatalf("EOF = %t, %v", eof, err)
	}
	if _, err = r.Byte(); !fault.IsCorrupt(err) {
		t.Fatalf("Byte at end returned %v; want corrupt input", err)
	}
}

func TestReaderCorrupt(t *testing.T) {
	tests := []struct {
		name string
		p    []byte
		max  uint64
	}{
		{"empty", nil, MaxSize},
		{"truncated", []byte{0x80, 0x80}, MaxSize},
		{"overflow", bytes.Repeat([]byte{0xff}, 11), MaxSize},
		{"limit", AppendUvarint(nil, 100), 99},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tc.p))
			_, err := r.Uvarint(tc.max)
			if !fault.IsCorrupt(err) {
				t.Fatalf("Uvarint(%x) returned %v; want corrupt input",
					tc.p, err)
			}
		})
	}
}

func TestReaderIOError(t *testing.T) {
	errRead := errors.New("disk on fire")
	r := NewReader(iotest.ErrReader(errRead))
	_, err := r.Uvarint(MaxSize)
	var ie *fault.IOError
	if !errors.As(err, &ie) {
		t.Fatalf("Uvarint returned %v; want IOError", err)
	}
	if !errors.Is(err, errRead) {
		t.Fatalf("errors.Is(%v, errRead) is false", err)
	}
}

func TestFull(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("abc")))
	p := make([]byte, 2)
	if err := r.Full(p); err != nil {
		t.Fatalf("Full error %s", err)
	}
	if err := r.Full(p); !fault.IsCorrupt(err) {
		t.Fatalf("short Full returned %v; want corrupt input", err)
	}
}

func TestWriteError(t *testing.T) {
	w := &failWriter{}
	err := Write(w, []byte("x"))
	var ie *fault.IOError
	if !errors.As(err, &ie) {
		t.Fatalf("Write returned %v; want IOError", err)
	}
	if _, err = ReadAll(iotest.ErrReader(io.ErrClosedPipe)); !errors.As(err, &ie) {
		t.Fatalf("ReadAll returned %v; want IOError", err)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, io.ErrShortWrite }

func TestAlloc(t *testing.T) {
	if c := cap(Alloc(10)); c != 10 {
		t.Fatalf("cap(Alloc(10)) = %d", c)
	}
	if c := cap(Alloc(MaxSize)); c > 1<<20 {
		t.Fatalf("cap(Alloc(MaxSize)) = %d", c)
	}
}
