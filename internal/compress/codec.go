// Package compress provides block-level compression for the coordinate
// and toolblock streams a map file's block allocator multiplexes.
//
// This sits below the geometry codec: it compresses whole committed
// blocks of already-encoded bytes, independent of the per-vertex
// "compressed coordinate" wire variant PLINE/REGION/etc use, which
// stays a fixed on-wire layout regardless of whether the block holding
// it is itself compressed on disk.
package compress

import "fmt"

// Algorithm selects a block Codec.
type Algorithm int

const (
	// None stores blocks uncompressed.
	None Algorithm = iota
	// LZ4 trades ratio for very fast decompression.
	LZ4
	// Zstd trades decompression speed for a better ratio.
	Zstd
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Codec compresses and decompresses opaque blocks.
//
// Compress/Decompress round trip exactly: Decompress(Compress(b)) == b
// for any b, including the empty slice.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// New returns the Codec for the given algorithm.
func New(a Algorithm) (Codec, error) {
	switch a {
	case None:
		return noopCodec{}, nil
	case LZ4:
		return NewLZ4Codec(), nil
	case Zstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %d", a)
	}
}

type noopCodec struct{}

func (noopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (noopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
