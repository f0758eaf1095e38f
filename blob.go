// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/RiskoZoSlovenska/llz4

package lz4

// CompressString behaves like Compress but accepts and returns immutable
// byte blobs. It is a thin wrapper with no decoding logic of its own.
func CompressString(src string, opts *CompressOptions) (string, error) {
	out, err := Compress([]byte(src), opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecompressString behaves like Decompress but accepts and returns
// immutable byte blobs. It forwards opts.DecompressedLen to the
// buffer-level decompressor unchanged.
func DecompressString(src string, opts *DecompressOptions) (string, error) {
	out, err := Decompress([]byte(src), opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
