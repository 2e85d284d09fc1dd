// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"io"
	"strings"

	compression "github.com/aufdj/compression-algorithms"
	"github.com/aufdj/compression-algorithms/fault"
	"github.com/ogier/pflag"
)

// shortFlags are the single letter options understood by pflag.
const shortFlags = "cdfvqh"

type options struct {
	alg        compression.Algorithm
	decompress bool
	force      bool
	verbose    bool
	quiet      bool
	help       bool
	input      string
	output     string
}

// isAlgorithmArg reports whether arg is a single-dash word that isn't a
// group of short flags, like -lz77.
func isAlgorithmArg(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	for _, c := range arg[1:] {
		if !strings.ContainsRune(shortFlags, c) {
			return true
		}
	}
	return false
}

// filterAlgorithm removes the algorithm word from args and returns its
// name. Arguments after "--" are left alone.
func filterAlgorithm(args []string) (name string, rest []string, err error) {
	rest = make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		if !isAlgorithmArg(arg) {
			rest = append(rest, arg)
			continue
		}
		if name != "" {
			return "", nil, fault.Usagef(
				"more than one algorithm: -%s and %s", name, arg)
		}
		name = arg[1:]
	}
	return name, rest, nil
}

// parseArgs parses the command line without the program name.
func parseArgs(cmdName string, args []string) (*options, error) {
	name, rest, err := filterAlgorithm(args)
	if err != nil {
		return nil, err
	}
	var opts options
	fs := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(true)
	var compress bool
	fs.BoolVarP(&compress, "compress", "c", false, "")
	fs.BoolVarP(&opts.decompress, "decompress", "d", false, "")
	fs.BoolVarP(&opts.force, "force", "f", false, "")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "")
	fs.BoolVarP(&opts.help, "help", "h", false, "")
	if err = fs.Parse(rest); err != nil {
		return nil, fault.Usagef("%s", err)
	}
	if opts.help {
		return &opts, nil
	}
	if name == "" {
		return nil, fault.Usagef("no algorithm given")
	}
	if opts.alg, err = compression.ParseAlgorithm(name); err != nil {
		return nil, err
	}
	switch {
	case compress == opts.decompress:
		return nil, fault.Usagef("exactly one of -c and -d is required")
	case opts.verbose && opts.quiet:
		return nil, fault.Usagef("-v and -q exclude each other")
	case fs.NArg() != 2:
		return nil, fault.Usagef("expected input and output path, got %d arguments",
			fs.NArg())
	}
	opts.input, opts.output = fs.Arg(0), fs.Arg(1)
	if opts.input == "" || opts.output == "" {
		return nil, fault.Usagef("empty path")
	}
	return &opts, nil
}
