package codec

// plineSmoothBit marks coordDataSize's top bit as the PLINE smooth
// flag.
const plineSmoothBit = int32(1) << 31

// ReadLine decodes a LINE body: IntCoord(x0,y0); IntCoord(x1,y1); byte
// penIdx. LINE always has exactly 2 vertices.
func ReadLine(obj *Cursor, tr Transform, compressed bool) (Feature, error) {
	p0, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	p1, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	penIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}

	x0, y0 := tr.IntToWorld(p0.X, p0.Y)
	x1, y1 := tr.IntToWorld(p1.X, p1.Y)
	verts := []Point{{x0, y0}, {x1, y1}}
	mbr, _ := boundsOf(verts)
	return Feature{
		Tag:      tagFor(TagLine, compressed),
		Geometry: Geometry{Kind: KindLineString, Vertices: verts},
		Styles:   StyleRefs{Pen: int(penIdx)},
		MBR:      mbr,
	}, nil
}

// WriteLine encodes f as a LINE body. f must have exactly 2 vertices.
func WriteLine(obj *Cursor, tr Transform, f Feature, compressed bool) error {
	if f.Geometry.Kind != KindLineString || len(f.Geometry.Vertices) != 2 {
		return &ErrGeometryShapeMismatch{Class: ClassAuto, Reason: "LINE requires a LineString with exactly 2 vertices"}
	}
	for _, v := range f.Geometry.Vertices {
		i, j, err := tr.WorldToInt(v.X, v.Y)
		if err != nil {
			return err
		}
		if err := obj.WriteIntCoord(IntPoint{i, j}, compressed); err != nil {
			return err
		}
	}
	return obj.WriteByte(byte(f.Styles.Pen))
}

// multiVertexHeader is the shared object-block header shape PLINE,
// REGION, and MULTIPLINE all use.
type multiVertexHeader struct {
	coordBlockPtr int32
	coordDataSize int32
	numSections   int16
	centerX       int32
	centerY       int32
	mbrMin        IntPoint
	mbrMax        IntPoint
}

func readMultiVertexHeader(obj *Cursor, compressed, hasSections bool) (multiVertexHeader, error) {
	var h multiVertexHeader
	coordBlockPtr, err := obj.ReadInt32()
	if err != nil {
		return h, err
	}
	h.coordBlockPtr = coordBlockPtr
	coordDataSize, err := obj.ReadInt32()
	if err != nil {
		return h, err
	}
	h.coordDataSize = coordDataSize

	if hasSections {
		n, err := obj.ReadInt16()
		if err != nil {
			return h, err
		}
		h.numSections = n
	}
	if compressed {
		if _, err := obj.ReadInt16(); err != nil { // pad_x
			return h, err
		}
		if _, err := obj.ReadInt16(); err != nil { // pad_y
			return h, err
		}
	}
	cx, err := obj.ReadInt32()
	if err != nil {
		return h, err
	}
	cy, err := obj.ReadInt32()
	if err != nil {
		return h, err
	}
	h.centerX, h.centerY = cx, cy

	mbrMin, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return h, err
	}
	mbrMax, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return h, err
	}
	h.mbrMin, h.mbrMax = mbrMin, mbrMax
	return h, nil
}

func writeMultiVertexHeader(obj *Cursor, h multiVertexHeader, compressed, hasSections bool, coordBlockPtr int32) error {
	if err := obj.WriteInt32(coordBlockPtr); err != nil {
		return err
	}
	if err := obj.WriteInt32(h.coordDataSize); err != nil {
		return err
	}
	if hasSections {
		if err := obj.WriteInt16(h.numSections); err != nil {
			return err
		}
	}
	if compressed {
		if err := obj.WriteInt16(0); err != nil {
			return err
		}
		if err := obj.WriteInt16(0); err != nil {
			return err
		}
	}
	if err := obj.WriteInt32(h.centerX); err != nil {
		return err
	}
	if err := obj.WriteInt32(h.centerY); err != nil {
		return err
	}
	if err := obj.WriteIntCoord(h.mbrMin, compressed); err != nil {
		return err
	}
	return obj.WriteIntCoord(h.mbrMax, compressed)
}

// ReadPline decodes a PLINE: header in obj, vertex run in the
// coordinate stream.
func ReadPline(obj *Cursor, coord *CoordStream, tr Transform, compressed bool) (Feature, error) {
	h, err := readMultiVertexHeader(obj, compressed, false)
	if err != nil {
		return Feature{}, err
	}
	penIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}

	smooth := h.coordDataSize&plineSmoothBit != 0
	dataSize := h.coordDataSize &^ plineSmoothBit
	width := int32(VertexWidth(tagFor(TagPline, compressed)))
	numPoints := int(dataSize / width)

	coord.cur.GotoByte(int64(h.coordBlockPtr))
	if err := coord.cur.RequireCommitted(); err != nil {
		return Feature{}, err
	}
	coord.SetOrigin(h.centerX, h.centerY)
	pts, err := coord.ReadVertices(tagFor(TagPline, compressed), numPoints)
	if err != nil {
		return Feature{}, err
	}

	verts := make([]Point, len(pts))
	for i, p := range pts {
		verts[i].X, verts[i].Y = tr.IntToWorld(p.X, p.Y)
	}
	mbr, _ := boundsOf(verts)
	return Feature{
		Tag:      tagFor(TagPline, compressed),
		Geometry: Geometry{Kind: KindLineString, Vertices: verts},
		Styles:   StyleRefs{Pen: int(penIdx)},
		MBR:      mbr,
		Smooth:   smooth,
	}, nil
}

// WritePline encodes f as a PLINE, writing the coordinate run first so
// the header's byte-count and MBR can be filled in afterward.
func WritePline(obj *Cursor, coord *CoordStream, tr Transform, f Feature, compressed bool) error {
	if f.Geometry.Kind != KindLineString || len(f.Geometry.Vertices) < 2 {
		return &ErrGeometryShapeMismatch{Class: ClassAuto, Reason: "PLINE requires a LineString with >= 2 vertices"}
	}
	pts := make([]IntPoint, len(f.Geometry.Vertices))
	for i, v := range f.Geometry.Vertices {
		x, y, err := tr.WorldToInt(v.X, v.Y)
		if err != nil {
			return err
		}
		pts[i] = IntPoint{x, y}
	}
	tag := tagFor(TagPline, compressed)
	origin := pts[0]
	coord.SetOrigin(origin.X, origin.Y)
	coordStart := coord.cur.Offset()
	if err := coord.WriteVertices(tag, pts); err != nil {
		return err
	}
	if err := coord.cur.CommitCoordRange(coordStart, coord.cur.Offset()); err != nil {
		return err
	}
	dataSize := int32(coord.cur.Offset() - coordStart)
	if f.Smooth {
		dataSize |= plineSmoothBit
	}

	var imbr IntMBR
	for i, p := range pts {
		if i == 0 {
			imbr = IntMBR{p.X, p.Y, p.X, p.Y}
		} else {
			imbr = imbr.extend(p)
		}
	}
	h := multiVertexHeader{
		coordDataSize: dataSize,
		centerX:       origin.X,
		centerY:       origin.Y,
		mbrMin:        IntPoint{imbr.MinX, imbr.MinY},
		mbrMax:        IntPoint{imbr.MaxX, imbr.MaxY},
	}
	if err := writeMultiVertexHeader(obj, h, compressed, false, int32(coordStart)); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Pen))
}

// ReadMultiPline decodes a MULTIPLINE: numSections independent
// polylines sharing one pen, stored section-header-then-vertices like
// REGION.
func ReadMultiPline(obj *Cursor, coord *CoordStream, tr Transform, compressed bool) (Feature, error) {
	h, err := readMultiVertexHeader(obj, compressed, true)
	if err != nil {
		return Feature{}, err
	}
	penIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}

	coord.cur.GotoByte(int64(h.coordBlockPtr))
	if err := coord.cur.RequireCommitted(); err != nil {
		return Feature{}, err
	}
	coord.SetOrigin(h.centerX, h.centerY)
	sections, err := readSections(coord, tagFor(TagMultiPline, compressed), int(h.numSections))
	if err != nil {
		return Feature{}, err
	}

	parts := make([]Geometry, len(sections))
	var overall MBR
	haveOverall := false
	for i, sec := range sections {
		verts := make([]Point, len(sec))
		for j, p := range sec {
			verts[j].X, verts[j].Y = tr.IntToWorld(p.X, p.Y)
		}
		parts[i] = Geometry{Kind: KindLineString, Vertices: verts}
		if b, ok := boundsOf(verts); ok {
			if !haveOverall {
				overall, haveOverall = b, true
			} else {
				overall = overall.Union(b)
			}
		}
	}
	return Feature{
		Tag:      tagFor(TagMultiPline, compressed),
		Geometry: Geometry{Kind: KindCollection, Parts: parts},
		Styles:   StyleRefs{Pen: int(penIdx)},
		MBR:      overall,
	}, nil
}

// WriteMultiPline encodes f as a MULTIPLINE.
func WriteMultiPline(obj *Cursor, coord *CoordStream, tr Transform, f Feature, compressed bool) error {
	if f.Geometry.Kind != KindCollection || len(f.Geometry.Parts) == 0 {
		return &ErrGeometryShapeMismatch{Class: ClassAuto, Reason: "MULTIPLINE requires a non-empty Collection of LineStrings"}
	}
	sections := make([][]IntPoint, len(f.Geometry.Parts))
	for i, part := range f.Geometry.Parts {
		if part.Kind != KindLineString || len(part.Vertices) < 2 {
			return &ErrGeometryShapeMismatch{Class: ClassAuto, Reason: "each MULTIPLINE section must be a LineString with >= 2 vertices"}
		}
		pts := make([]IntPoint, len(part.Vertices))
		for j, v := range part.Vertices {
			x, y, err := tr.WorldToInt(v.X, v.Y)
			if err != nil {
				return err
			}
			pts[j] = IntPoint{x, y}
		}
		sections[i] = pts
	}

	origin := sections[0][0]
	tag := tagFor(TagMultiPline, compressed)
	coord.SetOrigin(origin.X, origin.Y)
	coordStart := coord.cur.Offset()
	imbr, err := writeSections(coord, tag, sections)
	if err != nil {
		return err
	}
	if err := coord.cur.CommitCoordRange(coordStart, coord.cur.Offset()); err != nil {
		return err
	}
	dataSize := int32(coord.cur.Offset() - coordStart)

	h := multiVertexHeader{
		coordDataSize: dataSize,
		numSections:   int16(len(sections)),
		centerX:       origin.X,
		centerY:       origin.Y,
		mbrMin:        IntPoint{imbr.MinX, imbr.MinY},
		mbrMax:        IntPoint{imbr.MaxX, imbr.MaxY},
	}
	if err := writeMultiVertexHeader(obj, h, compressed, true, int32(coordStart)); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Pen))
}
