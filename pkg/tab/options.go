package tab

import "github.com/beetlebugorg/tabgeo/internal/compress"

// CodecOptions configures how a FileHandle reads and writes the
// block-structured map file.
type CodecOptions struct {
	// ByteOrder selects big- or little-endian for the map-file body.
	// Little is the format's default.
	ByteOrder ByteOrder

	// Compression selects the block-level compression codec layered
	// beneath the coordinate codec's own compressed/uncompressed
	// variant (none by default, matching files produced without it).
	Compression compress.Algorithm

	// WriteCompressedCoords names a coordinate form for new features:
	// the 16-bit delta form (true) or full 32-bit pairs (false).
	// FileHandle does not read this field; the form each feature is
	// written in comes from the compressed argument of ClassifyFeature.
	WriteCompressedCoords bool
}

// ByteOrder selects the endianness CodecOptions.ByteOrder uses.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// DefaultCodecOptions returns the options a new file is created with
// absent any caller override: little-endian, no block compression,
// uncompressed coordinates.
func DefaultCodecOptions() CodecOptions {
	return CodecOptions{
		ByteOrder:             LittleEndian,
		Compression:           compress.None,
		WriteCompressedCoords: false,
	}
}
