// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package compression_test

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	compression "github.com/aufdj/compression-algorithms"
)

func ExampleCompress() {
	const text = "The quick brown fox jumps over the lazy dog.\n"
	var buf bytes.Buffer
	err := compression.Compress(&buf, strings.NewReader(text), compression.LPAQ1)
	if err != nil {
		log.Fatalf("Compress error %s", err)
	}
	var out bytes.Buffer
	err = compression.Decompress(&out, &buf, compression.LPAQ1)
	if err != nil {
		log.Fatalf("Decompress error %s", err)
	}
	fmt.Print(out.String())
	// Output:
	// The quick brown fox jumps over the lazy dog.
}

func ExampleParseAlgorithm() {
	a, err := compression.ParseAlgorithm("huffman")
	fmt.Println(a, err)
	_, err = compression.ParseAlgorithm("zip")
	fmt.Println(err)
	// Output:
	// huffman <nil>
	// unsupported algorithm "zip"
}
