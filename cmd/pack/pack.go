// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"time"

	compression "github.com/aufdj/compression-algorithms"
	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/xio"
	"github.com/aufdj/compression-algorithms/xlog"
	"github.com/pkg/errors"
)

// signalHandler removes the temporary file on an interrupt and exits. The
// returned channel must be closed to stop the handler.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
		case <-sigch:
			os.Remove(tmpPath)
			os.Exit(exitInterrupted)
		}
	}()
	return quit
}

type countingReader struct {
	r io.Reader
	n int64
}

func (r *countingReader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	r.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (w *countingWriter) Write(p []byte) (n int, err error) {
	n, err = w.w.Write(p)
	w.n += int64(n)
	return n, err
}

// openInput opens a regular file for reading.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fault.IO("open", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fault.IO("stat", err)
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, fault.Usagef("%s is not a regular file", path)
	}
	return f, nil
}

// createTmp creates the temporary output file. With force a stale file is
// removed first.
func createTmp(path string, force bool) (*os.File, error) {
	if force {
		os.Remove(path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	return f, fault.IO("create", err)
}

// code runs the codec between the opened files.
func code(w io.Writer, r io.Reader, opts *options) error {
	c, err := compression.NewCodec(opts.alg,
		&compression.Options{Logger: xlog.Std()})
	if err != nil {
		return err
	}
	if opts.decompress {
		return c.Decompress(w, r)
	}
	return c.Compress(w, r)
}

// processFile codes the input file into a temporary file that is renamed
// to the output path on success.
func processFile(opts *options) (err error) {
	if _, err = os.Lstat(opts.output); err == nil && !opts.force {
		return fault.Usagef("file %s exists", opts.output)
	}
	tmpPath := opts.output + ".tmp"
	quit := signalHandler(tmpPath)
	defer close(quit)

	start := time.Now()
	in, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer in.Close()
	f, err := createTmp(tmpPath, opts.force)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	var stack xio.WriteCloserStack
	stack.Push(f)
	stack.Push(xio.FlushCloser{W: bufio.NewWriterSize(f, 1<<16)})
	cw := &countingWriter{w: &stack}
	cr := &countingReader{r: in}
	err = code(cw, bufio.NewReaderSize(cr, 1<<16), opts)
	if cerr := stack.Close(); err == nil && cerr != nil {
		err = fault.IO("close", cerr)
	}
	if err != nil {
		return err
	}
	if err = os.Rename(tmpPath, opts.output); err != nil {
		return fault.IO("rename", err)
	}
	xlog.Printnf("%d bytes -> %d bytes in %v", cr.n, cw.n,
		time.Since(start).Round(time.Millisecond))
	return nil
}

// userError removes the operation from path errors; the user only needs
// the path and the reason.
func userError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return errors.Errorf("%s: %s", pe.Path, pe.Err)
	}
	return err
}
