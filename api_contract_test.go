package lz4

import (
	"bytes"
	"testing"
)

func TestAPIContract_DecompressAllowsTrailingBytes(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	compressed, err := Compress(src, &CompressOptions{Acceleration: 5})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	payload := append(append([]byte{}, compressed...), []byte("tail")...)
	out, err := Decompress(payload, ExpectedLen(len(src)))
	if err != nil {
		t.Fatalf("Decompress with trailing bytes failed: %v", err)
	}

	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch for trailing-byte input")
	}
}

func TestAPIContract_DecompressCanReturnShorterThanMaxLen(t *testing.T) {
	src := bytes.Repeat([]byte("short-output"), 32)

	compressed, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(compressed, MaxLen(len(src)+256))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	if len(out) != len(src) {
		t.Fatalf("decoded length mismatch: got=%d want=%d", len(out), len(src))
	}

	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch")
	}
}

func TestAPIContract_DecompressCanonicalStream(t *testing.T) {
	// A single literal run of 16 zero bytes, matching the concrete
	// all-literal encoding shape: token 0xF0, extension byte 0x01, 16 zeros.
	compressed := append([]byte{0xF0, 0x01}, make([]byte, 16)...)
	expected := make([]byte, 16)

	out, err := Decompress(compressed, ExpectedLen(16))
	if err != nil {
		t.Fatalf("Decompress failed for canonical stream: %v", err)
	}

	if !bytes.Equal(out, expected) {
		t.Fatal("canonical stream decoded data mismatch")
	}
}

func TestAPIContract_NilOptionsMatchDefaults(t *testing.T) {
	src := bytes.Repeat([]byte("nil-options-path"), 128)

	cmpNil, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress(nil) failed: %v", err)
	}
	cmpDefault, err := Compress(src, DefaultCompressOptions())
	if err != nil {
		t.Fatalf("Compress(DefaultCompressOptions()) failed: %v", err)
	}
	if !bytes.Equal(cmpNil, cmpDefault) {
		t.Fatal("nil CompressOptions should behave like DefaultCompressOptions()")
	}

	outNil, err := Decompress(cmpNil, nil)
	if err != nil {
		t.Fatalf("Decompress(nil) failed: %v", err)
	}
	if !bytes.Equal(outNil, src) {
		t.Fatal("Decompress(nil) round-trip mismatch")
	}
}
