// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

// LZ4 block format constants: token layout, hash table sizing, and the
// trailing-literal safety margin.

// Token nibble layout: high nibble = literal-length hint, low nibble = match-length hint.
const (
	mlBits  = 4   // bits used by the match-length hint
	mlMask  = 0xF // mask for the match-length hint (15 = "read extension bytes")
	runBits = 4   // bits used by the literal-length hint
	runMask = 0xF // mask for the literal-length hint (15 = "read extension bytes")
)

// Match shape bounds.
const (
	minMatch  = 4     // implicit minimum match length; encoded length is this much less
	maxOffset = 65535 // largest representable match offset (2-byte little-endian)
)

// Hash table sizing: one slot per 16-bit fingerprint.
const (
	hashLog  = 16
	hashSize = 1 << hashLog // 65536 slots
)

// hashMultiplier is Knuth's multiplicative constant used to scramble a
// 4-byte little-endian window into a hashSize-bucket fingerprint.
const hashMultiplier = 2654435761

// lastLiterals is the number of trailing input bytes that the format
// requires to always end up in the final literal run, never inside a match.
const lastLiterals = 5

// mfLimit is the minimum lookahead (in bytes) the main loop needs at pos
// before it is safe to test for a match: a 4-byte window plus the
// lastLiterals safety margin.
const mfLimit = minMatch + lastLiterals

// minInputLen is the smallest input for which the main loop runs at all;
// shorter inputs are emitted as a single literal tail (spec: "Degenerate input").
const minInputLen = mfLimit + 4

// skipInitBits is how many low bits of the adaptive skip counter are the
// miss counter; the remaining high bits are the current step.
const skipInitBits = 6

// worstCaseNumerator/worstCaseDenominator express the LZ4-standard
// worst-case growth factor 1 + 1/250.
const (
	worstCaseNumerator   = 251
	worstCaseDenominator = 250
)
