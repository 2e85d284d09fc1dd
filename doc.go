// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package compression provides a common entry point to the codecs of this
// module: LZ77, LZW, the flzp LZP variant, the fpaq and lpaq1 context
// model coders, static Huffman coding and the Burrows-Wheeler transform.
//
// A codec is selected by its Algorithm. Compress and Decompress process a
// whole stream; the compressed formats carry no algorithm tag, so the same
// algorithm must be used in both directions.
package compression
