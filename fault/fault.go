// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package fault defines the error kinds shared by the codecs and the pack
// command. Errors may be wrapped with github.com/pkg/errors; use errors.As to
// recover the kind.
package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef creates a UsageError with a formatted message.
func Usagef(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// IOError reports a failure to open, read or write a file or stream.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error { return e.Err }

// IO wraps err as IOError for the given operation. A nil error is returned
// unchanged. Errors that already have a kind are not wrapped again.
func IO(op string, err error) error {
	if err == nil || hasKind(err) {
		return err
	}
	return &IOError{Op: op, Err: err}
}

// CorruptInputError reports compressed data that cannot be decoded. Offset is
// the position in the compressed stream if known, otherwise -1.
type CorruptInputError struct {
	Msg    string
	Offset int64
}

func (e *CorruptInputError) Error() string {
	if e.Offset < 0 {
		return "corrupt input: " + e.Msg
	}
	return fmt.Sprintf("corrupt input at offset %d: %s", e.Offset, e.Msg)
}

// Corruptf creates a CorruptInputError without offset.
func Corruptf(format string, args ...interface{}) error {
	return &CorruptInputError{Msg: fmt.Sprintf(format, args...), Offset: -1}
}

// CorruptAt creates a CorruptInputError for the given offset.
func CorruptAt(off int64, msg string) error {
	return &CorruptInputError{Msg: msg, Offset: off}
}

// UnsupportedAlgorithmError reports an algorithm name that is not known.
type UnsupportedAlgorithmError struct {
	Name string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm %q", e.Name)
}

// IsCorrupt reports whether err is or wraps a CorruptInputError.
func IsCorrupt(err error) bool {
	var c *CorruptInputError
	return errors.As(err, &c)
}

func hasKind(err error) bool {
	var (
		u  *UsageError
		ie *IOError
		c  *CorruptInputError
		a  *UnsupportedAlgorithmError
	)
	return errors.As(err, &u) || errors.As(err, &ie) ||
		errors.As(err, &c) || errors.As(err, &a)
}
