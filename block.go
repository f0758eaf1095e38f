// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

// appendLengthExtension appends the varint-like extension bytes for a
// literal or match length whose hint nibble was 15: repeated 0xFF while the
// remainder is >= 255, then the final remainder byte (which may be 0).
// count is the full length; the hint (15) has already been written by the
// caller. Shares one helper for both literal- and match-length extension
// bytes, since both follow the same "hint==15 triggers extension, first
// byte<255 terminates" rule.
func appendLengthExtension(out []byte, count int) []byte {
	remainder := count - 0xF
	for remainder >= 0xFF {
		out = append(out, 0xFF)
		remainder -= 0xFF
	}
	return append(out, byte(remainder))
}
