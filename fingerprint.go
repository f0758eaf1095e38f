// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

import "encoding/binary"

// fingerprint hashes the 4-byte little-endian window in[at:at+4] into a
// hashSize-bucket value. It need not be cryptographic; it only needs to
// distribute common byte patterns across the hash table's 65536 slots.
func fingerprint(in []byte, at int) uint32 {
	word := binary.LittleEndian.Uint32(in[at:])
	return (word * hashMultiplier) >> (32 - hashLog)
}
