// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

// defaultInitialCapacity is the starting output buffer size when the
// caller omits a decompressed-length hint.
const defaultInitialCapacity = 512 * 1024

// defaultMaxDecompressedLen is the conservative cap applied when the
// caller omits a decompressed-length hint entirely.
const defaultMaxDecompressedLen = 1 << 31

// growOutput ensures dst has room for at least needed bytes, growing by
// doubling (capped at limit) and copying existing contents as required.
// It returns ErrMaxDecompressedLenExceeded if needed would exceed limit.
func growOutput(dst []byte, needed, limit int) ([]byte, error) {
	if needed <= len(dst) {
		return dst, nil
	}
	if needed > limit {
		return nil, ErrMaxDecompressedLenExceeded
	}

	current := len(dst)
	for current < needed {
		if current >= limit {
			return nil, ErrMaxDecompressedLenExceeded
		}
		next := current * 2
		if next > limit {
			next = limit
		}
		if next <= current {
			next = needed
		}
		current = next
	}

	grown := make([]byte, current)
	copy(grown, dst)
	return grown, nil
}
