package compress

import (
	"encoding/binary"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; the compressor keeps
// an internal hash table that is expensive to rebuild per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses blocks with LZ4, prefixing each compressed block
// with its uncompressed length so Decompress never has to guess a
// buffer size.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec returns an LZ4 block codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 4+lz4.CompressBlockBound(len(data)))
	binary.LittleEndian.PutUint32(dst[:4], uint32(len(data)))

	c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)

	n, err := c.CompressBlock(data, dst[4:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible input: lz4 reports n==0 rather than expanding it.
		// Store raw with a sentinel length of 0 in the prefix area by
		// falling back to an uncompressed block four bytes larger.
		raw := make([]byte, 4+len(data))
		binary.LittleEndian.PutUint32(raw[:4], 0)
		copy(raw[4:], data)
		return raw, nil
	}

	return dst[:4+n], nil
}

func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	uncompressedLen := binary.LittleEndian.Uint32(data[:4])
	if uncompressedLen == 0 {
		out := make([]byte, len(data)-4)
		copy(out, data[4:])
		return out, nil
	}

	dst := make([]byte, uncompressedLen)
	n, err := lz4.UncompressBlock(data[4:], dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
