// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

import (
	"encoding/binary"
	"fmt"
)

// Compress compresses src into a freshly allocated LZ4 block. opts may be
// nil (Acceleration 1). The returned slice is never larger than
// CompressBound(len(src)).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	acceleration, err := resolveAcceleration(opts)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, CompressBound(len(src)))
	n := compressBlock(dst, src, acceleration)
	return dst[:n], nil
}

// CompressInto compresses src into the caller-provided dst, which must be
// at least CompressBound(len(src)) bytes, and returns the number of bytes
// written. opts may be nil (Acceleration 1).
func CompressInto(dst, src []byte, opts *CompressOptions) (int, error) {
	acceleration, err := resolveAcceleration(opts)
	if err != nil {
		return 0, err
	}

	if len(dst) < CompressBound(len(src)) {
		return 0, ErrShortBuffer
	}

	return compressBlock(dst, src, acceleration), nil
}

func resolveAcceleration(opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if opts.Acceleration < 1 {
		return 0, fmt.Errorf("acceleration must be an integer >= 1")
	}
	return opts.Acceleration, nil
}

// compressBlock runs the single-pass LZ4 match finder over src and writes
// the resulting block into dst[:0]'s underlying array, returning the
// number of bytes written. dst must have capacity >= CompressBound(len(src)).
//
// The scan cursor pos and the anchor (first unemitted literal) start at the
// input's beginning; a single-slot 65536-entry hash table maps a 4-byte
// fingerprint to the most recent input offset with that fingerprint. An
// accepted match is extended backwards into pending literals and forwards
// as far as the bytes agree, then emitted as token+literals+offset+extension.
// Misses advance the scan cursor by an adaptively growing step (the
// acceleration skip heuristic), making incompressible regions cheap to scan.
func compressBlock(dst, src []byte, acceleration int) int {
	out := dst[:0]
	inputEnd := len(src)
	anchor := 0

	if inputEnd >= minInputLen {
		var hashTable [hashSize]int32
		for i := range hashTable {
			hashTable[i] = -1 // sentinel: no offset stored yet
		}

		pos := 0
		counter := acceleration << skipInitBits

		for pos+4 < inputEnd-lastLiterals {
			h := fingerprint(src, pos)
			ref := hashTable[h]
			hashTable[h] = int32(pos)

			offset := pos - int(ref)
			if ref < 0 || offset > maxOffset ||
				!bytesEqual4(src, int(ref), pos) {
				step := counter >> skipInitBits
				pos += step
				counter++
				continue
			}

			matchStart, matchRef := pos, int(ref)
			for matchStart > anchor && matchRef > 0 &&
				src[matchStart-1] == src[matchRef-1] {
				matchStart--
				matchRef--
			}

			literalCount := matchStart - anchor

			fwdPos, fwdRef := matchStart+minMatch, matchRef+minMatch
			for fwdPos < inputEnd-lastLiterals && src[fwdPos] == src[fwdRef] {
				fwdPos++
				fwdRef++
			}
			matchLength := fwdPos - (matchStart + minMatch)
			matchOffset := matchStart - matchRef

			out = emitSequence(out, src, anchor, literalCount, matchOffset, matchLength)

			anchor = fwdPos
			pos = fwdPos
			counter = acceleration << skipInitBits
		}
	}

	return len(emitTail(out, src, anchor))
}

// bytesEqual4 reports whether the 4-byte windows at a and b in buf are equal.
func bytesEqual4(buf []byte, a, b int) bool {
	return binary.LittleEndian.Uint32(buf[a:]) == binary.LittleEndian.Uint32(buf[b:])
}

// emitSequence appends one non-final sequence: token, literal-length
// extension, literals, the 2-byte little-endian match offset, and the
// match-length extension.
func emitSequence(out, src []byte, anchor, literalCount, matchOffset, matchLength int) []byte {
	token := byte(min(literalCount, 0xF)<<4) | byte(min(matchLength, 0xF))
	out = append(out, token)

	if literalCount >= 0xF {
		out = appendLengthExtension(out, literalCount)
	}
	out = append(out, src[anchor:anchor+literalCount]...)

	out = append(out, byte(matchOffset), byte(matchOffset>>8))

	if matchLength >= 0xF {
		out = appendLengthExtension(out, matchLength)
	}

	return out
}

// emitTail appends the final, truncated sequence: a token with no match
// component, the literal-length extension, and the remaining literal bytes.
func emitTail(out, src []byte, anchor int) []byte {
	literalCount := len(src) - anchor
	token := byte(min(literalCount, 0xF) << 4)
	out = append(out, token)

	if literalCount >= 0xF {
		out = appendLengthExtension(out, literalCount)
	}
	return append(out, src[anchor:]...)
}
