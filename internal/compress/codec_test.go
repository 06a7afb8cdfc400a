package compress

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		algo Algorithm
	}{
		{"none", None},
		{"lz4", LZ4},
		{"zstd", Zstd},
	}

	payloads := [][]byte{
		nil,
		[]byte{},
		[]byte("a"),
		bytes.Repeat([]byte("mapinfo-tab-coord-block"), 64),
		{0x00, 0xff, 0x10, 0x20, 0x00, 0x00},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			codec, err := New(c.algo)
			if err != nil {
				t.Fatalf("New(%v): %v", c.algo, err)
			}
			for _, p := range payloads {
				compressed, err := codec.Compress(p)
				if err != nil {
					t.Fatalf("Compress(%v): %v", p, err)
				}
				got, err := codec.Decompress(compressed)
				if err != nil {
					t.Fatalf("Decompress: %v", err)
				}
				if !bytes.Equal(got, p) && !(len(got) == 0 && len(p) == 0) {
					t.Fatalf("round trip mismatch: got %v, want %v", got, p)
				}
			}
		})
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	if _, err := New(Algorithm(99)); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestAlgorithmString(t *testing.T) {
	if None.String() != "none" || LZ4.String() != "lz4" || Zstd.String() != "zstd" {
		t.Fatalf("unexpected String() values")
	}
	if Algorithm(42).String() != "unknown" {
		t.Fatalf("expected unknown for unmapped algorithm")
	}
}
