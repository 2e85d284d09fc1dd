// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package compression

import (
	"fmt"
	"io"

	"github.com/aufdj/compression-algorithms/bwt"
	"github.com/aufdj/compression-algorithms/fault"
	"github.com/aufdj/compression-algorithms/fpaq"
	"github.com/aufdj/compression-algorithms/huffman"
	"github.com/aufdj/compression-algorithms/lpaq"
	"github.com/aufdj/compression-algorithms/lz77"
	"github.com/aufdj/compression-algorithms/lzp"
	"github.com/aufdj/compression-algorithms/lzw"
	"github.com/aufdj/compression-algorithms/xlog"
	"github.com/pkg/errors"
)

// Algorithm identifies a codec.
type Algorithm int

// Supported algorithms.
const (
	LZ77 Algorithm = iota + 1
	LZW
	FLZP
	FPAQ
	LPAQ1
	Huffman
	BWT
)

var names = map[Algorithm]string{
	LZ77:    "lz77",
	LZW:     "lzw",
	FLZP:    "flzp",
	FPAQ:    "fpaq",
	LPAQ1:   "lpaq1",
	Huffman: "huffman",
	BWT:     "bwt",
}

// Algorithms returns all supported algorithms in the order of their
// values.
func Algorithms() []Algorithm {
	return []Algorithm{LZ77, LZW, FLZP, FPAQ, LPAQ1, Huffman, BWT}
}

func (a Algorithm) String() string {
	if s, ok := names[a]; ok {
		return s
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the algorithm with the given name. Unknown names
// result in a *fault.UnsupportedAlgorithmError.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, s := range names {
		if s == name {
			return a, nil
		}
	}
	return 0, &fault.UnsupportedAlgorithmError{Name: name}
}

// Codec compresses and decompresses complete streams.
type Codec interface {
	Compress(w io.Writer, r io.Reader) error
	Decompress(w io.Writer, r io.Reader) error
}

// Options tune the codecs that have parameters. Zero values select the
// defaults of the respective package.
type Options struct {
	// FPAQOrder is the context order of fpaq.
	FPAQOrder int
	// LPAQMemBits is the table size exponent of lpaq1.
	LPAQMemBits int
	// BWTBlockSize is the block size of the transform.
	BWTBlockSize int
	// Logger receives debug output if not nil.
	Logger xlog.Logger
}

type funcCodec struct {
	compress   func(w io.Writer, r io.Reader) error
	decompress func(w io.Writer, r io.Reader) error
}

func (c funcCodec) Compress(w io.Writer, r io.Reader) error {
	return c.compress(w, r)
}

func (c funcCodec) Decompress(w io.Writer, r io.Reader) error {
	return c.decompress(w, r)
}

// NewCodec returns the codec for a. The options may be nil.
func NewCodec(a Algorithm, opts *Options) (Codec, error) {
	if opts == nil {
		opts = &Options{}
	}
	switch a {
	case LZ77:
		return funcCodec{lz77.Compress, lz77.Decompress}, nil
	case LZW:
		return funcCodec{lzw.Compress, lzw.Decompress}, nil
	case FLZP:
		return funcCodec{lzp.Compress, lzp.Decompress}, nil
	case Huffman:
		return funcCodec{huffman.Compress, huffman.Decompress}, nil
	case FPAQ:
		cfg := fpaq.Config{Order: opts.FPAQOrder, Logger: opts.Logger}
		cfg.SetDefaults()
		if err := cfg.Verify(); err != nil {
			return nil, err
		}
		return cfg, nil
	case LPAQ1:
		cfg := lpaq.Config{MemBits: opts.LPAQMemBits, Logger: opts.Logger}
		cfg.SetDefaults()
		if err := cfg.Verify(); err != nil {
			return nil, err
		}
		return cfg, nil
	case BWT:
		cfg := bwt.Config{BlockSize: opts.BWTBlockSize, Logger: opts.Logger}
		cfg.SetDefaults()
		if err := cfg.Verify(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, &fault.UnsupportedAlgorithmError{Name: a.String()}
}

// Compress compresses r into w using algorithm a with default options.
func Compress(w io.Writer, r io.Reader, a Algorithm) error {
	c, err := NewCodec(a, nil)
	if err != nil {
		return err
	}
	return errors.WithMessagef(c.Compress(w, r), "%s compress", a)
}

// Decompress decompresses r into w using algorithm a.
func Decompress(w io.Writer, r io.Reader, a Algorithm) error {
	c, err := NewCodec(a, nil)
	if err != nil {
		return err
	}
	return errors.WithMessagef(c.Decompress(w, r), "%s decompress", a)
}
