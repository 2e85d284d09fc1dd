// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package ari

import (
	"bufio"
	"bytes"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/aufdj/compression-algorithms/bitio"
	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/rc"
	"github.com/aufdj/compression-algorithms/xlog"
	"github.com/pkg/errors"
)

// State is the processing state of a session.
type State int

// Session states. A session moves from Init to Done exactly once. An error
// moves the session directly to Done.
const (
	Init State = iota
	Coding
	Flushing
	Done
)

var stateNames = [...]string{"init", "coding", "flushing", "done"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Session codes a single byte sequence with a predictor. The predictor must
// be fresh and must not be shared with another session.
type Session struct {
	pred  Predictor
	state State
	bits  int64

	// Logger receives debug output if not nil.
	Logger xlog.Logger
}

// NewSession creates a session using the predictor p.
func NewSession(p Predictor) *Session {
	return &Session{pred: p}
}

// State returns the current state of the session.
func (s *Session) State() State { return s.state }

// Bits returns the number of bits coded so far.
func (s *Session) Bits() int64 { return s.bits }

func (s *Session) start() error {
	if s.state != Init {
		return errors.Errorf("ari: session is in state %s", s.state)
	}
	if s.pred == nil {
		return errors.New("ari: session has no predictor")
	}
	s.state = Coding
	return nil
}

// position adds the current byte and bit position to err.
func (s *Session) position(err error) error {
	return errors.Wrapf(err, "ari: byte %d bit %d", s.bits/8, s.bits%8)
}

// Encode writes the header and the coded data to w. It returns the number of
// bytes written.
func (s *Session) Encode(w io.Writer, data []byte, param byte) (n int64, err error) {
	if err = s.start(); err != nil {
		return 0, err
	}
	defer func() { s.state = Done }()
	if w == nil {
		return 0, errors.New("ari: nil writer")
	}
	if int64(len(data)) > MaxSize {
		return 0, errors.Errorf("ari: input size %d exceeds maximum", len(data))
	}
	h := Header{Size: int64(len(data)), CRC: checksum(data), Param: param}
	bw := bufio.NewWriter(w)
	hdr := h.AppendBinary(nil)
	if _, err = bw.Write(hdr); err != nil {
		return 0, fault.IO("write", err)
	}
	out := ioWriter{bw}
	enc := rc.NewEncoder(out)
	in := bitio.NewReader(bytes.NewReader(data))
	for {
		bit, err := in.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, s.position(err)
		}
		if err = enc.Encode(bit, s.pred.P()); err != nil {
			return 0, s.position(err)
		}
		s.pred.Update(bit)
		s.bits++
	}

	s.state = Flushing
	if h.Size > 0 {
		if err = enc.Flush(); err != nil {
			return 0, s.position(err)
		}
	}
	if err = bw.Flush(); err != nil {
		return 0, fault.IO("write", err)
	}
	n = int64(len(hdr)) + enc.Compressed()
	xlog.Printf(s.Logger, "ari: encoded %d bytes into %d bytes", h.Size, n)
	return n, nil
}

// Decode decodes the data described by header h from r and writes it to w.
// The header must have been read from r already. It returns the number of
// bytes written.
func (s *Session) Decode(w io.Writer, r io.ByteReader, h Header) (n int64, err error) {
	if err = s.start(); err != nil {
		return 0, err
	}
	defer func() { s.state = Done }()
	if w == nil || r == nil {
		return 0, errors.New("ari: nil reader or writer")
	}
	in := &countingReader{r: ioReader{r}}
	out := &sink{w: w, buf: make([]byte, 0, 32*1024)}
	if h.Size == 0 {
		s.state = Flushing
		return 0, expectEOF(in)
	}

	dec, err := rc.NewDecoder(in)
	if err != nil {
		return 0, s.position(err)
	}
	bw := bitio.NewWriter(out)
	for total := h.Size * 8; s.bits < total; s.bits++ {
		bit, err := dec.Decode(s.pred.P())
		if err != nil {
			return out.n, s.position(err)
		}
		s.pred.Update(bit)
		if err = bw.WriteBit(bit); err != nil {
			return out.n, s.position(err)
		}
	}

	s.state = Flushing
	if err = dec.Finish(); err != nil {
		return out.n, err
	}
	if err = out.flush(); err != nil {
		return out.n, err
	}
	if out.crc != h.CRC {
		return out.n, fault.Corruptf("ari: checksum mismatch")
	}
	xlog.Printf(s.Logger, "ari: decoded %d bytes from %d bytes",
		out.n, dec.Consumed())
	return out.n, nil
}

// expectEOF checks that r has no more data.
func expectEOF(r io.ByteReader) error {
	_, err := r.ReadByte()
	switch err {
	case io.EOF:
		return nil
	case nil:
		return fault.Corruptf("ari: trailing data")
	}
	return err
}

// ioWriter marks write errors as IOError.
type ioWriter struct {
	w io.ByteWriter
}

func (w ioWriter) WriteByte(c byte) error {
	return fault.IO("write", w.w.WriteByte(c))
}

// ioReader marks read errors other than io.EOF as IOError.
type ioReader struct {
	r io.ByteReader
}

func (r ioReader) ReadByte() (c byte, err error) {
	c, err = r.r.ReadByte()
	if err != nil && err != io.EOF {
		err = fault.IO("read", err)
	}
	return c, err
}

// countingReader counts the bytes read and records the first error.
type countingReader struct {
	r   io.ByteReader
	n   int64
	err error
}

func (r *countingReader) ReadByte() (c byte, err error) {
	c, err = r.r.ReadByte()
	if err != nil {
		if r.err == nil {
			r.err = err
		}
		return c, err
	}
	r.n++
	return c, nil
}

// sink collects decoded bytes, computes their checksum and forwards them to
// the writer.
type sink struct {
	w   io.Writer
	buf []byte
	crc uint32
	n   int64
}

func (s *sink) WriteByte(c byte) error {
	s.buf = append(s.buf, c)
	if len(s.buf) < cap(s.buf) {
		return nil
	}
	return s.flush()
}

func (s *sink) flush() error {
	s.crc = crc32.Update(s.crc, crc32.IEEETable, s.buf)
	k, err := s.w.Write(s.buf)
	s.n += int64(k)
	s.buf = s.buf[:0]
	return fault.IO("write", err)
}

// Codec compresses and decompresses complete streams.
type Codec struct {
	// Param is written to the header and passed to NewPredictor.
	Param        byte
	NewPredictor NewPredictorFunc
	Logger       xlog.Logger
}

// ByteReader returns r as io.ByteReader, adding a buffer if required.
func ByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// Compress reads r completely and writes the compressed stream to w.
func (c *Codec) Compress(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fault.IO("read", err)
	}
	p, err := c.NewPredictor(c.Param)
	if err != nil {
		return err
	}
	s := NewSession(p)
	s.Logger = c.Logger
	_, err = s.Encode(w, data, c.Param)
	return err
}

// Decompress reads a compressed stream from r and writes the decoded data to
// w. The predictor parameter is taken from the header.
func (c *Codec) Decompress(w io.Writer, r io.Reader) error {
	br := ByteReader(r)
	h, err := ReadHeader(br)
	if err != nil {
		return err
	}
	p, err := c.NewPredictor(h.Param)
	if err != nil {
		return fault.Corruptf("ari: %v", err)
	}
	s := NewSession(p)
	s.Logger = c.Logger
	_, err = s.Decode(w, br, h)
	return err
}
