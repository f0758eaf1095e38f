// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

// CompressBound returns the worst-case compressed size of an input of n
// bytes: ceil(n * (1 + 1/250)) + 2. The growth factor covers the
// literal-length extension bytes (at most one per 255 literals); the 2
// extra bytes cover the final sequence's token and its last extension
// byte, which an input with no matches needs on top of its n literals.
// A correct compressor never exceeds this.
func CompressBound(n int) int {
	if n <= 0 {
		return 1
	}
	bound := (n*worstCaseNumerator+worstCaseDenominator-1)/worstCaseDenominator + 2
	if bound < 1 {
		bound = 1
	}
	return bound
}
