package lz4

import (
	"bytes"
	"testing"
)

func TestCompress_AccelerationValidation(t *testing.T) {
	_, err := Compress([]byte("data"), &CompressOptions{Acceleration: 0})
	if err == nil {
		t.Fatal("expected error for acceleration 0")
	}

	_, err = Compress([]byte("data"), &CompressOptions{Acceleration: -1})
	if err == nil {
		t.Fatal("expected error for negative acceleration")
	}
}

func TestCompress_DefaultMatchesAccelerationOne(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmpDefault, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress default failed: %v", err)
	}

	cmpOne, err := Compress(data, &CompressOptions{Acceleration: 1})
	if err != nil {
		t.Fatalf("Compress acceleration=1 failed: %v", err)
	}

	if !bytes.Equal(cmpDefault, cmpOne) {
		t.Fatal("default compression should match Acceleration: 1")
	}
}

func TestCompressInto_BufferTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("too-small-destination"), 64)

	_, err := CompressInto(make([]byte, 2), data, nil)
	if err != ErrShortBuffer {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestCompressInto_MatchesCompress(t *testing.T) {
	data := bytes.Repeat([]byte("compress-into-path"), 300)

	want, err := Compress(data, &CompressOptions{Acceleration: 2})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	dst := make([]byte, CompressBound(len(data)))
	n, err := CompressInto(dst, data, &CompressOptions{Acceleration: 2})
	if err != nil {
		t.Fatalf("CompressInto failed: %v", err)
	}

	if !bytes.Equal(dst[:n], want) {
		t.Fatal("CompressInto output should match Compress output for identical options")
	}
}

func TestCompressBound_NeverExceeded(t *testing.T) {
	sizes := []int{0, 1, 12, 13, 14, 100, 1000, 1 << 20}
	for _, n := range sizes {
		data := bytes.Repeat([]byte{0x37}, n)
		cmp, err := Compress(data, nil)
		if err != nil {
			t.Fatalf("Compress(n=%d) failed: %v", n, err)
		}
		if bound := CompressBound(n); len(cmp) > bound {
			t.Fatalf("n=%d: compressed len %d exceeds bound %d", n, len(cmp), bound)
		}
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(1))
	f.Add([]byte("hello world"), uint8(2))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(16))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(200))

	f.Fuzz(func(t *testing.T, data []byte, accel uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := Compress(data, &CompressOptions{Acceleration: int(accel)%64 + 1})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp, ExpectedLen(len(data)))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
