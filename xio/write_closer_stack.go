// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package xio

import (
	"errors"
	"io"
)

// WriteCloserStack combines a chain of writers, for instance a buffer on top
// of a file, into a single io.WriteCloser. Writes go to the top of the
// stack; Close closes from the top down.
type WriteCloserStack struct {
	Stack []io.WriteCloser
}

// Write writes to the top of the stack. An empty stack discards p.
func (w *WriteCloserStack) Write(p []byte) (n int, err error) {
	k := len(w.Stack)
	if k == 0 {
		return len(p), nil
	}
	return w.Stack[k-1].Write(p)
}

// Close closes all writers, joins their errors and empties the stack.
func (w *WriteCloserStack) Close() error {
	var errs []error
	for k := len(w.Stack) - 1; k >= 0; k-- {
		errs = append(errs, w.Stack[k].Close())
	}
	w.Stack = nil
	return errors.Join(errs...)
}

// Push puts wc on top of the stack. It panics if wc is nil.
func (w *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("xio: cannot push nil WriteCloser onto stack")
	}
	w.Stack = append(w.Stack, wc)
}

// FlushCloser adapts a buffered writer that must be flushed but not closed.
type FlushCloser struct {
	W interface {
		io.Writer
		Flush() error
	}
}

func (f FlushCloser) Write(p []byte) (int, error) { return f.W.Write(p) }

// Close flushes the buffered writer.
func (f FlushCloser) Close() error { return f.W.Flush() }
