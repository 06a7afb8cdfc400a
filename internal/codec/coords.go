package codec

// CoordStream is the compressed/uncompressed coordinate reader-writer.
// It wraps a Cursor bound to the coordinate block and decides, from
// the geometry tag alone, whether vertices are full 32-bit pairs or
// 16-bit deltas around a per-feature origin. Callers never branch on
// compression themselves.
type CoordStream struct {
	cur *Cursor
}

// NewCoordStream wraps cur (already positioned at the coordinate data)
// as a CoordStream.
func NewCoordStream(cur *Cursor) *CoordStream {
	return &CoordStream{cur: cur}
}

// SetOrigin establishes the per-feature coordinate origin. Required
// before ReadVertex/ReadVertices for a compressed tag; a no-op for
// uncompressed tags, but always safe to call.
func (cs *CoordStream) SetOrigin(cx, cy int32) {
	cs.cur.SetCompressedOrigin(cx, cy)
}

// ReadVertex reads one vertex, using tag to decide compressed vs. full
// width.
func (cs *CoordStream) ReadVertex(tag Tag) (IntPoint, error) {
	return cs.cur.ReadIntCoord(tag.Compressed())
}

// ReadVertices reads n vertices.
func (cs *CoordStream) ReadVertices(tag Tag, n int) ([]IntPoint, error) {
	return cs.cur.ReadIntCoords(tag.Compressed(), n)
}

// WriteVertex writes one vertex, matching the width tag's compression
// implies. Every vertex in a feature must use the same width; mixing
// widths within one feature is a caller bug, not something CoordStream
// can detect after the fact.
func (cs *CoordStream) WriteVertex(tag Tag, p IntPoint) error {
	return cs.cur.WriteIntCoord(p, tag.Compressed())
}

// WriteVertices writes a run of vertices.
func (cs *CoordStream) WriteVertices(tag Tag, pts []IntPoint) error {
	return cs.cur.WriteIntCoords(pts, tag.Compressed())
}

// VertexWidth returns the on-wire byte width of one vertex for tag: 4
// (2×int16) if compressed, 8 (2×int32) otherwise.
func VertexWidth(tag Tag) int {
	if tag.Compressed() {
		return 4
	}
	return 8
}
