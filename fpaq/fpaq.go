// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package fpaq implements an arithmetic coder driven by a direct context
// predictor. Each bit is predicted by a single adaptive counter selected by
// the partial current byte and the preceding bytes.
package fpaq

import (
	"io"

	"github.com/aufdj/compression-algorithms/ari"
	"github.com/aufdj/compression-algorithms/xlog"
	"github.com/pkg/errors"
)

// Supported context orders.
const (
	MinOrder     = 1
	MaxOrder     = 4
	DefaultOrder = 1
)

// hashBits is the size exponent of the counter table for orders above 1.
const hashBits = 22

// Config configures the coder.
type Config struct {
	// Order is the number of preceding bytes in the context. Zero selects
	// DefaultOrder.
	Order int
	// Logger receives debug output if not nil.
	Logger xlog.Logger
}

// SetDefaults replaces zero values by defaults.
func (c *Config) SetDefaults() {
	if c.Order == 0 {
		c.Order = DefaultOrder
	}
}

// Verify checks the configuration.
func (c *Config) Verify() error {
	if c == nil {
		return errors.New("fpaq: config is nil")
	}
	if !(MinOrder <= c.Order && c.Order <= MaxOrder) {
		return errors.Errorf("fpaq: order %d out of range [%d,%d]",
			c.Order, MinOrder, MaxOrder)
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
		Param:        byte(cfg.Order),
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

// Decompress decompresses data from r and writes it to w. The order is read
// from the header.
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
