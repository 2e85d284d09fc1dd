// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package lpaq implements an arithmetic coder driven by a context mixing
predictor in the style of lpaq1.

Seven models predict each bit: a match model, a unigram word model and
context models of orders 1, 2, 3, 4 and 6. The order 1 model indexes a
direct table of bit histories, the others share a hash table of nibble
oriented slots. A mixer with 80 weight sets combines the predictions and two
adaptive probability maps refine the result.

The memory parameter is stored in the stream header, so the decompressor
doesn't need to be configured.
*/
package lpaq

import (
	"io"

	"github.com/aufdj/compression-algorithms/ari"
	"github.com/aufdj/compression-algorithms/xlog"
	"github.com/pkg/errors"
)

// Limits for the memory parameter.
const (
	MinMemBits     = 16
	MaxMemBits     = 26
	DefaultMemBits = 22
)

// Config configures the coder.
type Config struct {
	// MemBits controls the table sizes; the predictor uses about
	// 3*2^MemBits bytes. Zero selects DefaultMemBits.
	MemBits int
	// Logger receives debug output if not nil.
	Logger xlog.Logger
}

// SetDefaults replaces zero values by defaults.
func (c *Config) SetDefaults() {
	if c.MemBits == 0 {
		c.MemBits = DefaultMemBits
	}
}

// Verify checks the configuration.
func (c *Config) Verify() error {
	if c == nil {
		return errors.New("lpaq: config is nil")
	}
	if !(MinMemBits <= c.MemBits && c.MemBits <= MaxMemBits) {
		return errors.Errorf("lpaq: memory bits %d out of range [%d,%d]",
			c.MemBits, MinMemBits, MaxMemBits)
	}
	return nil
}

func (c *Config) codec() (*ari.Codec, error) {
	cfg := *c
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return &ari.Codec{
		Param:        byte(cfg.MemBits),
		NewPredictor: NewPredictorParam,
		Logger:       cfg.Logger,
	}, nil
}

// Compress compresses all data from r and writes it to w.
func (c Config) Compress(w io.Writer, r io.Reader) error {
	codec, err := c.codec()
	if err != nil {
		return err
	}
	return codec.Compress(w, r)
}

// Decompress decompresses data from r and writes it to w.
func (c Config) Decompress(w io.Writer, r io.Reader) error {
	codec, err := c.codec()
	if err != nil {
		return err
	}
	return codec.Decompress(w, r)
}

// Compress compresses r into w using the default configuration.
func Compress(w io.Writer, r io.Reader) error {
	return Config{}.Compress(w, r)
}

// Decompress decompresses r into w.
func Decompress(w io.Writer, r io.Reader) error {
	return Config{}.Decompress(w, r)
}
