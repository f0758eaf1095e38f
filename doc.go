// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

/*
Package lz4 implements the LZ4 block format: a byte-oriented, single-pass
compressor and a decompressor that reproduce each other's input exactly.

This is the block format only — no frame header, no magic number, no
checksums, no block linking, no dictionary, and no HC (high-compression)
search. It targets correctness and simplicity over peak ratio.

# Compress

Options may be nil (default acceleration 1). Output is sized for the
worst case up front and never reallocated:

	out, err := lz4.Compress(data, nil)
	out, err := lz4.Compress(data, &lz4.CompressOptions{Acceleration: 4})

To reuse caller-managed output memory:

	dst := make([]byte, lz4.CompressBound(len(data)))
	n, err := lz4.CompressInto(dst, data, nil)

# Decompress

The decompressed length hint is optional; see DecompressOptions for the
tri-state contract (exact size, upper bound, or conservative default):

	out, err := lz4.Decompress(block, lz4.ExpectedLen(len(data)))
	out, err := lz4.Decompress(block, lz4.MaxLen(1<<20))
	out, err := lz4.Decompress(block, nil) // conservative 2^31 cap

To reuse caller-managed output memory:

	dst := make([]byte, expectedLen)
	out, err := lz4.DecompressInto(dst, block)

# String/blob variants

CompressString and DecompressString behave identically but accept and
return immutable byte blobs:

	block, err := lz4.CompressString(data, nil)
	out, err := lz4.DecompressString(block, lz4.ExpectedLen(len(data)))
*/
package lz4
