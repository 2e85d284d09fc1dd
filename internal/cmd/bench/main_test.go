// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"testing"

	compression "github.com/aufdj/compression-algorithms"
	"github.com/aufdj/compression-algorithms/internal/corpus"
	"github.com/aufdj/compression-algorithms/internal/randtxt"
)

func testFiles() []corpus.File {
	return []corpus.File{
		{Name: "text", Data: randtxt.Text(61, 20000)},
		{Name: "run", Data: bytes.Repeat([]byte{'x'}, 5000)},
	}
}

func TestSizes(t *testing.T) {
	files := testFiles()
	total := corpus.Size(files)
	funcs := map[string]sizeFunc{
		"huffman": codecSize(compression.Huffman),
		"zstd":    zstdSize,
		"xz":      xzSize,
	}
	for name, f := range funcs {
		n, err := f(files)
		if err != nil {
			t.Fatalf("%s: error %s", name, err)
		}
		if n <= 0 || n >= total {
			t.Errorf("%s: compressed size %d of %d", name, n, total)
		}
	}
}

func TestBenchmarkRatio(t *testing.T) {
	r := testing.Benchmark(benchmark(testFiles(), codecSize(compression.LZW)))
	x := ratio(r)
	if !(0 < x && x < 1) {
		t.Fatalf("ratio %g", x)
	}
	if v := mbPerSec(r); v <= 0 {
		t.Fatalf("mbPerSec = %g", v)
	}
}
