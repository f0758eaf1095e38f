// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

// DecompressOptions configures decompression.
//
// DecompressedLen is tri-state:
//   - positive: the exact expected output size. Growth is disabled; if the
//     block would decode to anything else, decoding fails. Decoding stops at
//     the end of the literal run that reaches this size, so input bytes
//     after that point are not read.
//   - negative: abs(DecompressedLen) is an upper bound; the output buffer
//     grows geometrically up to that cap.
//   - zero (the default, e.g. from DefaultDecompressOptions): a conservative
//     cap of 2^31 bytes, with an initial capacity of 512 KiB.
type DecompressOptions struct {
	DecompressedLen int
}

// DefaultDecompressOptions returns options with no size hint: the output
// grows geometrically up to a conservative 2^31-byte cap.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// ExpectedLen returns options asserting the exact decompressed size. Growth
// is disabled; a mismatch is a decode error.
func ExpectedLen(n int) *DecompressOptions {
	return &DecompressOptions{DecompressedLen: n}
}

// MaxLen returns options bounding the decompressed size to n, with the
// output buffer growing geometrically up to that bound.
func MaxLen(n int) *DecompressOptions {
	return &DecompressOptions{DecompressedLen: -n}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Acceleration controls the initial skip step used when scanning
	// incompressible regions. Larger values scan faster at the cost of
	// worse ratio. Must be >= 1; DefaultCompressOptions uses 1.
	Acceleration int
}

// DefaultCompressOptions returns options with Acceleration 1.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Acceleration: 1}
}
