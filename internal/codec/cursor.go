package codec

import (
	"github.com/beetlebugorg/tabgeo/internal/compress"
	"github.com/beetlebugorg/tabgeo/internal/endian"
)

// IntPoint is a raw (i, j) storage-space coordinate pair, as it
// appears on the wire before CoordinateTransform converts it to world
// space.
type IntPoint struct {
	X, Y int32
}

// IntMBR is an axis-aligned MBR in storage-space integer units.
type IntMBR struct {
	MinX, MinY, MaxX, MaxY int32
}

func (m IntMBR) extend(p IntPoint) IntMBR {
	return IntMBR{
		MinX: min32(m.MinX, p.X),
		MinY: min32(m.MinY, p.Y),
		MaxX: max32(m.MaxX, p.X),
		MaxY: max32(m.MaxY, p.Y),
	}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Cursor is the typed, endian-aware read/write cursor over a
// block-backed Stream. One Cursor is bound to a single logical stream
// (an object block or a coordinate block); the enclosing reader is
// responsible for handing the codec the right cursor for the right
// stream, one feature at a time.
type Cursor struct {
	stream Stream
	order  endian.Engine
	pos    int64

	featureStart int64
	mbr          IntMBR
	mbrSet       bool

	originSet bool
	originX   int32
	originY   int32

	// blockCodec, if set, compresses every coordinate run this cursor
	// commits via CommitCoordRange. Nil means commits stay uncompressed
	// (the case for every cursor that isn't a FileHandle's coordinate
	// cursor).
	blockCodec compress.Codec
}

// NewCursor returns a Cursor over stream using the given byte order.
// Pass endian.Little() for the map-file body (the default the format
// uses) or endian.Big() where a producer emits big-endian fields.
func NewCursor(stream Stream, order endian.Engine) *Cursor {
	return &Cursor{stream: stream, order: order}
}

// Offset returns the cursor's current absolute byte position, used by
// error types to report where a failure occurred.
func (c *Cursor) Offset() int64 {
	return c.pos
}

// GotoByteRel performs a relative seek. A CoordBlockFault is the
// enclosing code's responsibility to raise when seeking to a specific
// declared offset that Stream never committed — see RequireCommitted.
func (c *Cursor) GotoByteRel(delta int64) error {
	c.pos += delta
	if c.pos < 0 {
		return &ErrCoordBlockFault{Offset: c.pos, Reason: "seek before start of stream"}
	}
	return nil
}

// GotoByte performs an absolute seek, used when a header gives a coord
// block pointer directly.
func (c *Cursor) GotoByte(offset int64) {
	c.pos = offset
}

// RequireCommitted checks that the cursor's current position falls
// within a segment previously committed via MemStream.Commit, raising
// ErrCoordBlockFault otherwise. Only meaningful when the backing Stream
// is a *MemStream; other Stream implementations are assumed to enforce
// their own bounds.
func (c *Cursor) RequireCommitted() error {
	ms, ok := c.stream.(*MemStream)
	if !ok {
		return nil
	}
	if _, ok := ms.Covered(c.pos); !ok {
		return &ErrCoordBlockFault{Offset: c.pos, Reason: "offset not within any committed block"}
	}
	return nil
}

// SetBlockCodec installs the block codec CommitCoordRange compresses
// through. FileHandle calls this once on its coordinate cursor at open
// time; geometry-encoding code stays unaware whether compression is
// actually happening underneath.
func (c *Cursor) SetBlockCodec(codec compress.Codec) {
	c.blockCodec = codec
}

// CommitCoordRange commits [start, end) of the cursor's backing
// stream, compressing it through the cursor's block codec first if one
// is set. Every multi-block geometry writer (PLINE, MULTIPLINE,
// REGION, TEXT) calls this right after it finishes writing a
// coordinate run, so the matching reader's GotoByte+RequireCommitted
// pair can validate the declared pointer actually lands on real data.
func (c *Cursor) CommitCoordRange(start, end int64) error {
	ms, ok := c.stream.(*MemStream)
	if !ok {
		return nil
	}
	if c.blockCodec != nil {
		return ms.CommitCompressed(start, end, c.blockCodec)
	}
	ms.Commit(start, end)
	return nil
}

// SetCompressedOrigin establishes the per-feature coordinate origin
// compressed vertices are read relative to. Must be called before the
// first relative coordinate is consumed.
func (c *Cursor) SetCompressedOrigin(cx, cy int32) {
	c.originX, c.originY = cx, cy
	c.originSet = true
}

// StartNewFeature resets the per-feature byte-count and MBR
// accumulator and commits the bytes written or read for the previous
// feature (if the backing stream is a *MemStream) so later seeks into
// that region can be validated.
func (c *Cursor) StartNewFeature() {
	if ms, ok := c.stream.(*MemStream); ok && c.pos > c.featureStart {
		ms.Commit(c.featureStart, c.pos)
	}
	c.featureStart = c.pos
	c.mbr = IntMBR{}
	c.mbrSet = false
	c.originSet = false
}

// CurrentAddress returns the absolute byte offset of the start of the
// record currently being written or read.
func (c *Cursor) CurrentAddress() int64 {
	return c.featureStart
}

// FeatureDataSize returns the number of bytes written or read since the
// last StartNewFeature.
func (c *Cursor) FeatureDataSize() int64 {
	return c.pos - c.featureStart
}

// FeatureMBR returns the accumulated MBR of every coordinate written or
// read since the last StartNewFeature, and whether any coordinate has
// been seen yet.
func (c *Cursor) FeatureMBR() (IntMBR, bool) {
	return c.mbr, c.mbrSet
}

func (c *Cursor) accumulate(p IntPoint) {
	if !c.mbrSet {
		c.mbr = IntMBR{p.X, p.Y, p.X, p.Y}
		c.mbrSet = true
		return
	}
	c.mbr = c.mbr.extend(p)
}

// --- reads ---

func (c *Cursor) read(n int, field string) ([]byte, error) {
	buf := make([]byte, n)
	got, err := c.stream.ReadAt(c.pos, buf)
	if err != nil {
		return nil, err
	}
	if got < n {
		return nil, &ErrTruncatedRecord{Offset: c.pos, Field: field, Need: n, Have: got}
	}
	c.pos += int64(n)
	return buf, nil
}

// ReadByte reads a single byte.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.read(1, "byte")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt16 reads a signed 16-bit integer.
func (c *Cursor) ReadInt16() (int16, error) {
	b, err := c.read(2, "int16")
	if err != nil {
		return 0, err
	}
	return int16(c.order.Uint16(b)), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (c *Cursor) ReadInt32() (int32, error) {
	b, err := c.read(4, "int32")
	if err != nil {
		return 0, err
	}
	return int32(c.order.Uint32(b)), nil
}

// ReadBytes reads n raw bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	return c.read(n, "bytes")
}

// ReadIntCoord reads one coordinate pair, full 32-bit if compressed is
// false, or a 16-bit delta around the cursor's origin (set via
// SetCompressedOrigin) if true.
func (c *Cursor) ReadIntCoord(compressed bool) (IntPoint, error) {
	if !compressed {
		x, err := c.ReadInt32()
		if err != nil {
			return IntPoint{}, err
		}
		y, err := c.ReadInt32()
		if err != nil {
			return IntPoint{}, err
		}
		p := IntPoint{x, y}
		c.accumulate(p)
		return p, nil
	}

	dx, err := c.ReadInt16()
	if err != nil {
		return IntPoint{}, err
	}
	dy, err := c.ReadInt16()
	if err != nil {
		return IntPoint{}, err
	}
	p := IntPoint{c.originX + int32(dx), c.originY + int32(dy)}
	c.accumulate(p)
	return p, nil
}

// ReadIntCoords reads n coordinate pairs.
func (c *Cursor) ReadIntCoords(compressed bool, n int) ([]IntPoint, error) {
	out := make([]IntPoint, n)
	for i := range out {
		p, err := c.ReadIntCoord(compressed)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// --- writes ---

func (c *Cursor) write(b []byte) error {
	if _, err := c.stream.WriteAt(c.pos, b); err != nil {
		return err
	}
	c.pos += int64(len(b))
	return nil
}

// WriteByte writes a single byte.
func (c *Cursor) WriteByte(v byte) error {
	return c.write([]byte{v})
}

// WriteInt16 writes a signed 16-bit integer.
func (c *Cursor) WriteInt16(v int16) error {
	buf := make([]byte, 2)
	c.order.PutUint16(buf, uint16(v))
	return c.write(buf)
}

// WriteInt32 writes a signed 32-bit integer.
func (c *Cursor) WriteInt32(v int32) error {
	buf := make([]byte, 4)
	c.order.PutUint32(buf, uint32(v))
	return c.write(buf)
}

// WriteBytes writes raw bytes verbatim.
func (c *Cursor) WriteBytes(b []byte) error {
	return c.write(b)
}

// WriteIntCoord writes one coordinate pair, full 32-bit if compressed
// is false, or as a 16-bit delta from the cursor's origin if true. The
// origin must already be set via SetCompressedOrigin when compressed is
// true.
func (c *Cursor) WriteIntCoord(p IntPoint, compressed bool) error {
	c.accumulate(p)
	if !compressed {
		if err := c.WriteInt32(p.X); err != nil {
			return err
		}
		return c.WriteInt32(p.Y)
	}
	if err := c.WriteInt16(int16(p.X - c.originX)); err != nil {
		return err
	}
	return c.WriteInt16(int16(p.Y - c.originY))
}

// WriteIntCoords writes a run of coordinate pairs.
func (c *Cursor) WriteIntCoords(pts []IntPoint, compressed bool) error {
	for _, p := range pts {
		if err := c.WriteIntCoord(p, compressed); err != nil {
			return err
		}
	}
	return nil
}
