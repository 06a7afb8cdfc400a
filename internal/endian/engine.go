// Package endian provides the byte-order engine ByteCursor reads and
// writes through.
//
// It combines binary.ByteOrder and binary.AppendByteOrder into a single
// interface so callers can pick an order once and get both in-place and
// append-style encoding from it, instead of juggling two stdlib types.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy Engine already,
// so no adapter type is needed.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine.
//
// The map-file body (coordinates, style records, feature headers) is
// little-endian; Little is the default a Header should use.
func Little() Engine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
//
// Kept alongside Little because ByteCursor is a typed big-/
// little-endian cursor; some producers of this format emit
// big-endian projection parameters.
func Big() Engine {
	return binary.BigEndian
}
