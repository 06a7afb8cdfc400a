package tab

import (
	"github.com/beetlebugorg/tabgeo/internal/codec"
	"github.com/beetlebugorg/tabgeo/internal/compress"
	"github.com/beetlebugorg/tabgeo/internal/endian"
)

// FileHandle owns one open map file's object-block and coordinate-
// block streams, its style pool, and its immutable header. A
// FileHandle is single-threaded and cooperative:
// every ReadFeature/WriteFeature call holds exclusive access to the
// underlying cursors for its duration — there is no concurrent use.
type FileHandle struct {
	header Header
	opts   CodecOptions
	order  endian.Engine

	objStream   codec.Stream
	coordStream codec.Stream

	objCursor   *codec.Cursor
	coordCursor *codec.Cursor

	styles *codec.Pool
	block  compress.Codec

	projection    ProjectionRecord
	hasProjection bool
}

// NewFileHandle opens a FileHandle over in-memory object and
// coordinate streams. objStream/coordStream implement the
// block-stream abstraction this package treats as an external
// collaborator; pass codec.NewMemStream() for a fresh in-memory file,
// or any other codec.Stream implementation backing a real block
// allocator. Returns an error only if opts.Compression names an
// unknown algorithm.
func NewFileHandle(header Header, opts CodecOptions, objStream, coordStream codec.Stream) (*FileHandle, error) {
	order := endian.Little()
	if opts.ByteOrder == BigEndian {
		order = endian.Big()
	}
	block, err := compress.New(opts.Compression)
	if err != nil {
		return nil, err
	}
	coordCursor := codec.NewCursor(coordStream, order)
	coordCursor.SetBlockCodec(block)
	return &FileHandle{
		header:      header,
		opts:        opts,
		order:       order,
		objStream:   objStream,
		coordStream: coordStream,
		objCursor:   codec.NewCursor(objStream, order),
		coordCursor: coordCursor,
		styles:      codec.NewPool(),
		block:       block,
	}, nil
}

// CompressBlock compresses data using the handle's configured block
// codec, for a block allocator (out of scope here) to persist the
// smaller form to disk. This is the same codec WritePline/WriteRegion/
// WriteText already compress every coordinate run through as they
// commit it (see coordCursor.SetBlockCodec in NewFileHandle);
// CompressBlock exposes it directly for a caller compressing some
// other block, such as the object stream. With compress.None
// configured this returns data itself, unchanged.
func (h *FileHandle) CompressBlock(data []byte) ([]byte, error) {
	return h.block.Compress(data)
}

// DecompressBlock reverses CompressBlock.
func (h *FileHandle) DecompressBlock(data []byte) ([]byte, error) {
	return h.block.Decompress(data)
}

// Header returns the file's immutable header.
func (h *FileHandle) Header() Header {
	return h.header
}

// Styles returns the file's single style pool.
func (h *FileHandle) Styles() *StylePool {
	return newStylePool(h.styles)
}

// Projection returns the file's projection record and whether one has
// been set. ProjectionRecord is opaque to this package and persisted
// verbatim.
func (h *FileHandle) Projection() (ProjectionRecord, bool) {
	return h.projection, h.hasProjection
}

// SetProjection stores rec for the next WriteProjection, without
// interpreting it.
func (h *FileHandle) SetProjection(rec ProjectionRecord) {
	h.projection = rec
	h.hasProjection = true
}

// WriteProjection writes the current projection record at the
// object-block cursor's current position.
func (h *FileHandle) WriteProjection() error {
	if !h.hasProjection {
		return nil
	}
	return codec.WriteProjectionRecord(h.objCursor, h.projection.toInternal())
}

// ReadProjection reads a projection record at the object-block
// cursor's current position and stores it as the handle's current
// projection.
func (h *FileHandle) ReadProjection() (ProjectionRecord, error) {
	rec, err := codec.ReadProjectionRecord(h.objCursor)
	if err != nil {
		return ProjectionRecord{}, err
	}
	h.projection, h.hasProjection = fromInternalProjection(rec), true
	return h.projection, nil
}

// GotoObjectByte positions the object-block cursor at an absolute byte
// offset, as the caller would after consulting a feature index (public
// iteration over features is an external concern, out of scope here).
func (h *FileHandle) GotoObjectByte(offset int64) {
	h.objCursor.GotoByte(offset)
}

// GotoCoordByte positions the coordinate-block cursor at an absolute
// byte offset.
func (h *FileHandle) GotoCoordByte(offset int64) {
	h.coordCursor.GotoByte(offset)
}

func (h *FileHandle) newContext() *codec.Context {
	return &codec.Context{
		Obj:       h.objCursor,
		Coord:     codec.NewCoordStream(h.coordCursor),
		Transform: h.header.Transform(),
		Styles:    h.styles,
	}
}

// ReadFeature reads one feature given its geometry tag byte (already
// consumed by the caller along with the common 4-byte feature-id
// offset). A caller typically reads the tag itself, then calls
// ReadFeature to decode the rest.
func (h *FileHandle) ReadFeature(tag byte) (Feature, error) {
	h.objCursor.StartNewFeature()
	f, err := codec.ReadFeature(h.newContext(), codec.Tag(tag))
	if err != nil {
		return Feature{}, err
	}
	return Feature{inner: f}, nil
}

// WriteFeature writes f using its previously-classified tag (see
// ClassifyFeature).
func (h *FileHandle) WriteFeature(f Feature) error {
	h.objCursor.StartNewFeature()
	return codec.WriteFeature(h.newContext(), f.inner)
}

// ClassifyFeature picks the on-disk tag for geom given the caller's
// declared class and stamps it onto f, ready for WriteFeature, using
// codec.ValidateMapInfoType; WriteFeature itself does not run that
// check and trusts the stamped tag. compressed
// selects the _C tag variant; the caller chooses compression policy at
// write time.
func ClassifyFeature(f Feature, class GeometryClass, compressed bool) (Feature, error) {
	tag, err := codec.ValidateMapInfoType(f.inner.Geometry, class.toInternal())
	if err != nil {
		return Feature{}, err
	}
	if compressed {
		tag = compressedTag(tag)
	}
	f.inner.Tag = tag
	return f, nil
}

func compressedTag(base codec.Tag) codec.Tag {
	switch base {
	case codec.TagSymbol:
		return codec.TagSymbolC
	case codec.TagLine:
		return codec.TagLineC
	case codec.TagPline:
		return codec.TagPlineC
	case codec.TagArc:
		return codec.TagArcC
	case codec.TagRegion:
		return codec.TagRegionC
	case codec.TagRect:
		return codec.TagRectC
	case codec.TagRoundRect:
		return codec.TagRoundRectC
	case codec.TagEllipse:
		return codec.TagEllipseC
	case codec.TagText:
		return codec.TagTextC
	case codec.TagMultiPline:
		return codec.TagMultiPlineC
	case codec.TagFontSymbol:
		return codec.TagFontSymbolC
	case codec.TagCustomSymbol:
		return codec.TagCustomSymbolC
	default:
		return base
	}
}

// Stats summarizes the handle's current resource usage.
type Stats struct {
	ObjectBytes int64
	CoordBytes  int64
	PenCount    int
	BrushCount  int
	FontCount   int
	SymbolCount int

	// ObjectDigest and CoordDigest are the running xxhash fingerprints
	// of every committed record in the object and coordinate streams,
	// respectively (see codec.MemStream.Digest). Zero if the backing
	// stream isn't a *codec.MemStream or nothing has been committed
	// yet.
	ObjectDigest uint64
	CoordDigest  uint64
}

// Stats reports the handle's current byte counts, style-pool sizes,
// and running stream digests.
func (h *FileHandle) Stats() Stats {
	s := Stats{
		ObjectBytes: h.objStream.Len(),
		CoordBytes:  h.coordStream.Len(),
		PenCount:    h.styles.PenCount(),
		BrushCount:  h.styles.BrushCount(),
		FontCount:   h.styles.FontCount(),
		SymbolCount: h.styles.SymbolCount(),
	}
	if ms, ok := h.objStream.(*codec.MemStream); ok {
		s.ObjectDigest = ms.Digest()
	}
	if ms, ok := h.coordStream.(*codec.MemStream); ok {
		s.CoordDigest = ms.Digest()
	}
	return s
}
