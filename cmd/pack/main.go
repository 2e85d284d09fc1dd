// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Command pack compresses and decompresses files with one of the codecs of
// the compression module.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/xlog"
	"github.com/pkg/errors"
)

const usageStr = `Usage: pack [-v] [-q] [-f] -ALGORITHM -c|-d INPUT OUTPUT
Compress or decompress INPUT into OUTPUT.

  -c, --compress    compress
  -d, --decompress  decompress
  -f, --force       overwrite an existing output file
  -h, --help        give this help
  -q, --quiet       suppress warnings
  -v, --verbose     print debug output

Algorithms: -lz77 -lzw -flzp -fpaq -lpaq1 -huffman -bwt
`

// Exit codes follow sysexits.h.
const (
	exitOK          = 0
	exitUsage       = 64
	exitDataErr     = 65
	exitUnavailable = 69
	exitSoftware    = 70
	exitIOErr       = 74
	exitInterrupted = 130
)

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// exitCode maps the error kind to the exit status. Errors without a kind
// are internal errors.
func exitCode(err error) int {
	var (
		u  *fault.UsageError
		c  *fault.CorruptInputError
		a  *fault.UnsupportedAlgorithmError
		ie *fault.IOError
		pe *os.PathError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &u):
		return exitUsage
	case errors.As(err, &c):
		return exitDataErr
	case errors.As(err, &a):
		return exitUnavailable
	case errors.As(err, &ie), errors.As(err, &pe):
		return exitIOErr
	}
	return exitSoftware
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	xlog.SetFlags(0)

	opts, err := parseArgs(cmdName, os.Args[1:])
	if err != nil {
		xlog.Exit(exitCode(err), err, "\nfor help, type pack -h")
	}
	if opts.help {
		usage(os.Stdout)
		os.Exit(exitOK)
	}
	switch {
	case opts.verbose:
		xlog.SetLevel(xlog.Ldebug)
	case opts.quiet:
		xlog.SetLevel(xlog.Lquiet)
	}
	xlog.Debugf("algorithm %s decompress %t force %t",
		opts.alg, opts.decompress, opts.force)

	if err = processFile(opts); err != nil {
		xlog.Exit(exitCode(err), userError(err))
	}
}
