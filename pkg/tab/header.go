package tab

import "github.com/beetlebugorg/tabgeo/internal/codec"

// Header is the map-file header: the coordinate affine every feature
// shares, the file's overall bounds, and the per-tag object-size table
// the iterator (out of scope here) uses to skip unknown or corrupt
// features. It is initialized at file creation and immutable
// thereafter.
type Header struct {
	affine     codec.Affine
	bounds     codec.MBR
	objectSize map[codec.Tag]int
}

// NewHeader builds a Header from a coordinate affine and the file's
// overall bounds. objectSize may be nil; a nil or missing entry means
// the tag's size is not known ahead of time.
func NewHeader(affine codec.Affine, bounds codec.MBR, objectSize map[codec.Tag]int) Header {
	if objectSize == nil {
		objectSize = map[codec.Tag]int{}
	}
	cp := make(map[codec.Tag]int, len(objectSize))
	for k, v := range objectSize {
		cp[k] = v
	}
	return Header{affine: affine, bounds: bounds, objectSize: cp}
}

// Affine returns the header's world<->storage coordinate affine.
func (h Header) Affine() codec.Affine {
	return h.affine
}

// Transform returns a Transform built from the header's affine.
func (h Header) Transform() codec.Transform {
	return codec.NewTransform(h.affine)
}

// Bounds returns the file's overall MBR.
func (h Header) Bounds() codec.MBR {
	return h.bounds
}

// ObjectSize returns the declared on-disk byte size for tag, and
// whether the table has an entry for it.
func (h Header) ObjectSize(tag codec.Tag) (int, bool) {
	n, ok := h.objectSize[tag]
	return n, ok
}
