// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

import "errors"

// Sentinel errors for compression and decompression. The one precondition
// failure on the public entry points (a non-positive acceleration) is
// returned as a plain fmt.Errorf value, not a sentinel.
var (
	// ErrShortBuffer is returned when the destination buffer passed to a
	// *Into variant is too small for the worst-case or decoded size.
	ErrShortBuffer = errors.New("lz4: destination buffer too short")
	// ErrMalformedBlock is returned when the block ends mid-sequence
	// (mid-literal or mid-match) instead of immediately after a literal run,
	// or when it decodes to fewer bytes than an exact expected length.
	ErrMalformedBlock = errors.New("lz4: malformed block")
	// ErrMatchOffsetOutOfRange is returned when a decoded match offset is
	// zero or exceeds the number of bytes written to the output so far.
	ErrMatchOffsetOutOfRange = errors.New("lz4: match offset out of range")
	// ErrMaxDecompressedLenExceeded is returned when decoding would grow the
	// output past the configured or default cap.
	ErrMaxDecompressedLenExceeded = errors.New("lz4: maximum decompressed length exceeded")
)
