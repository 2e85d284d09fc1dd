// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package xio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
)

type closeRecorder struct {
	bytes.Buffer
	name   string
	closed *[]string
	err    error
}

func (c *closeRecorder) Close() error {
	*c.closed = append(*c.closed, c.name)
	return c.err
}

func TestWriteCloserStack(t *testing.T) {
	var closed []string
	errBottom := errors.New("bottom close failed")
	bottom := &closeRecorder{name: "bottom", closed: &closed, err: errBottom}
	bw := bufio.NewWriter(bottom)

	var s WriteCloserStack
	s.Push(bottom)
	s.Push(FlushCloser{W: bw})
	mid := &closeRecorder{name: "mid", closed: &closed}
	s.Push(&stackEntry{Writer: bw, c: mid})

	if _, err := io.WriteString(&s, "abc"); err != nil {
		t.Fatalf("Write error %s", err)
	}
	if bottom.Len() != 0 {
		t.Fatalf("data reached bottom before Close")
	}
	err := s.Close()
	if !errors.Is(err, errBottom) {
		t.Fatalf("Close returned %v; want %v", err, errBottom)
	}
	if got := bottom.String(); got != "abc" {
		t.Fatalf("bottom got %q; want %q", got, "abc")
	}
	if len(closed) != 2 || closed[0] != "mid" || closed[1] != "bottom" {
		t.Fatalf("close order %v", closed)
	}
	if len(s.Stack) != 0 {
		t.Fatalf("stack not cleared")
	}
}

type stackEntry struct {
	io.Writer
	c io.Closer
}

func (e *stackEntry) Close() error { return e.c.Close() }

func TestEmptyStack(t *testing.T) {
	var s WriteCloserStack
	n, err := s.Write([]byte("xyz"))
	if n != 3 || err != nil {
		t.Fatalf("Write on empty stack = %d, %v", n, err)
	}
	if err = s.Close(); err != nil {
		t.Fatalf("Close on empty stack: %s", err)
	}
}
