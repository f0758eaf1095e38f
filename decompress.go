// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

import (
	"encoding/binary"
	"errors"
)

// Decompress decompresses an LZ4 block from src. opts may be nil (a
// conservative 2^31-byte cap with a 512 KiB initial buffer); see
// DecompressOptions for the exact-size and upper-bound variants.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	dst, _, err := DecompressN(src, opts)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// DecompressN behaves like Decompress but also returns the number of input
// bytes consumed, for decoding back-to-back blocks in a larger container.
// Bytes after the block are left unread only when the decoded size is given
// exactly (ExpectedLen): decoding then stops at the end of the literal run
// that completes that size. Otherwise the block runs to the end of src.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	initial, limit := resolveDecompressLimits(opts)
	exact := opts != nil && opts.DecompressedLen > 0
	dst, n, err := decompressCore(make([]byte, initial), src, limit, exact)
	if err != nil {
		return nil, 0, err
	}
	if exact && len(dst) != limit {
		return nil, 0, ErrMalformedBlock
	}
	return dst, n, nil
}

// DecompressInto decompresses src into the caller-provided dst and returns
// the decoded slice. dst must already be sized for the expected output; it
// is never grown, so an undersized dst yields ErrShortBuffer.
func DecompressInto(dst, src []byte) ([]byte, error) {
	decoded, _, err := DecompressNInto(dst, src)
	return decoded, err
}

// DecompressNInto behaves like DecompressInto but also returns the number
// of input bytes consumed. Decoding stops at the end of a literal run that
// fills dst exactly, leaving any bytes after it unread.
func DecompressNInto(dst, src []byte) ([]byte, int, error) {
	decoded, n, err := decompressCore(dst, src, len(dst), true)
	if errors.Is(err, ErrMaxDecompressedLenExceeded) {
		return nil, 0, ErrShortBuffer
	}
	if err != nil {
		return nil, 0, err
	}
	return decoded, n, nil
}

func resolveDecompressLimits(opts *DecompressOptions) (initial, limit int) {
	if opts == nil {
		return defaultInitialCapacity, defaultMaxDecompressedLen
	}
	switch {
	case opts.DecompressedLen > 0:
		return opts.DecompressedLen, opts.DecompressedLen
	case opts.DecompressedLen < 0:
		limit = -opts.DecompressedLen
		initial = limit
		if initial > defaultInitialCapacity {
			initial = defaultInitialCapacity
		}
		return initial, limit
	default:
		return defaultInitialCapacity, defaultMaxDecompressedLen
	}
}

// decompressCore decodes one LZ4 block from src into dst, growing dst (per
// growOutput's policy, capped at limit) as needed, and returns the decoded
// slice and the number of input bytes consumed. The loop reads a token,
// copies its literal run, and — unless the block ends there (the final,
// truncated sequence) — reads a 2-byte offset and copies the match,
// handling the overlapping case via copyMatch. When stopAtLimit is set, a
// literal run that brings the output to exactly limit bytes also ends the
// block, since any match after it would exceed limit.
func decompressCore(dst, src []byte, limit int, stopAtLimit bool) ([]byte, int, error) {
	var si, outNext int

	for {
		token, ok := readByte(src, &si)
		if !ok {
			return nil, 0, ErrMalformedBlock
		}
		literalCount := int(token >> 4)
		matchHint := int(token & 0xF)

		if literalCount == 0xF {
			n, ok := readLengthExtension(src, &si)
			if !ok {
				return nil, 0, ErrMalformedBlock
			}
			literalCount += n
		}

		grown, err := growOutput(dst, outNext+literalCount, limit)
		if err != nil {
			return nil, 0, err
		}
		dst = grown

		if si+literalCount > len(src) {
			return nil, 0, ErrMalformedBlock
		}
		copy(dst[outNext:outNext+literalCount], src[si:si+literalCount])
		si += literalCount
		outNext += literalCount

		if si >= len(src) || (stopAtLimit && outNext == limit) {
			// Ran out of input (or filled the exact-size output) immediately
			// after a literal copy: last sequence.
			return dst[:outNext], si, nil
		}

		offRaw, ok := readUint16(src, &si)
		if !ok {
			return nil, 0, ErrMalformedBlock
		}
		matchOffset := int(offRaw)
		if matchOffset < 1 || matchOffset > outNext {
			return nil, 0, ErrMatchOffsetOutOfRange
		}

		matchLength := matchHint
		if matchHint == 0xF {
			n, ok := readLengthExtension(src, &si)
			if !ok {
				return nil, 0, ErrMalformedBlock
			}
			matchLength += n
		}
		matchLength += minMatch

		grown, err = growOutput(dst, outNext+matchLength, limit)
		if err != nil {
			return nil, 0, err
		}
		dst = grown

		outNext = copyMatch(dst, outNext, matchOffset, matchLength)
	}
}

// readByte reads one byte from src at *si and advances *si.
func readByte(src []byte, si *int) (byte, bool) {
	if *si >= len(src) {
		return 0, false
	}
	b := src[*si]
	*si++
	return b, true
}

// readUint16 reads one little-endian uint16 from src at *si and advances *si by 2.
func readUint16(src []byte, si *int) (uint16, bool) {
	if *si+2 > len(src) {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(src[*si:])
	*si += 2
	return v, true
}

// readLengthExtension reads the varint-like extension bytes for a literal
// or match length whose hint nibble was 15: accumulate bytes until one is
// less than 255 (inclusive of that final byte).
func readLengthExtension(src []byte, si *int) (int, bool) {
	count := 0
	for {
		b, ok := readByte(src, si)
		if !ok {
			return 0, false
		}
		count += int(b)
		if b < 0xFF {
			return count, true
		}
	}
}
