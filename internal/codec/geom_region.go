package codec

// sectionHeader is one of REGION/MULTIPLINE's 24-byte per-section
// records: {numVertices, numHoles, MBR, nDataOffset, nVertexOffset}.
// numHoles is REGION-specific bookkeeping the source never actually
// populates; write it as 0 and accept any value on read.
type sectionHeader struct {
	numVertices  int32
	numHoles     int32
	mbrMin       IntPoint
	mbrMax       IntPoint
	dataOffset   int32
	vertexOffset int32
}

const sectionHeaderSize = 24

func readSectionHeader(cur *Cursor) (sectionHeader, error) {
	var h sectionHeader
	nv, err := cur.ReadInt32()
	if err != nil {
		return h, err
	}
	nh, err := cur.ReadInt32()
	if err != nil {
		return h, err
	}
	minX, err := cur.ReadInt32()
	if err != nil {
		return h, err
	}
	minY, err := cur.ReadInt32()
	if err != nil {
		return h, err
	}
	// MBR packed as two IntPoints but fixed-width int32 regardless of
	// the feature's compression, matching the source's section-header
	// layout (distinct from per-vertex IntCoord width).
	h.numVertices = nv
	h.numHoles = nh
	h.mbrMin = IntPoint{minX, minY}
	maxX, err := cur.ReadInt32()
	if err != nil {
		return h, err
	}
	maxY, err := cur.ReadInt32()
	if err != nil {
		return h, err
	}
	h.mbrMax = IntPoint{maxX, maxY}
	if h.dataOffset, err = cur.ReadInt32(); err != nil {
		return h, err
	}
	if h.vertexOffset, err = cur.ReadInt32(); err != nil {
		return h, err
	}
	return h, nil
}

func writeSectionHeader(cur *Cursor, h sectionHeader) error {
	if err := cur.WriteInt32(h.numVertices); err != nil {
		return err
	}
	if err := cur.WriteInt32(h.numHoles); err != nil {
		return err
	}
	if err := cur.WriteInt32(h.mbrMin.X); err != nil {
		return err
	}
	if err := cur.WriteInt32(h.mbrMin.Y); err != nil {
		return err
	}
	if err := cur.WriteInt32(h.mbrMax.X); err != nil {
		return err
	}
	if err := cur.WriteInt32(h.mbrMax.Y); err != nil {
		return err
	}
	if err := cur.WriteInt32(h.dataOffset); err != nil {
		return err
	}
	return cur.WriteInt32(h.vertexOffset)
}

// readSections reads numSections section headers followed by all
// vertices in section order, returning each section's vertex run.
func readSections(coord *CoordStream, tag Tag, numSections int) ([][]IntPoint, error) {
	headers := make([]sectionHeader, numSections)
	for i := range headers {
		h, err := readSectionHeader(coord.cur)
		if err != nil {
			return nil, err
		}
		headers[i] = h
	}
	out := make([][]IntPoint, numSections)
	for i, h := range headers {
		pts, err := coord.ReadVertices(tag, int(h.numVertices))
		if err != nil {
			return nil, err
		}
		out[i] = pts
	}
	return out, nil
}

// writeSections writes numSections section headers followed by all
// vertices, and returns the IntMBR of the whole feature (the union of
// every section's bounds).
func writeSections(coord *CoordStream, tag Tag, sections [][]IntPoint) (IntMBR, error) {
	headers := make([]sectionHeader, len(sections))
	vertexOffset := int32(0)
	for i, sec := range sections {
		var mbr IntMBR
		for j, p := range sec {
			if j == 0 {
				mbr = IntMBR{p.X, p.Y, p.X, p.Y}
			} else {
				mbr = mbr.extend(p)
			}
		}
		headers[i] = sectionHeader{
			numVertices:  int32(len(sec)),
			numHoles:     0,
			mbrMin:       IntPoint{mbr.MinX, mbr.MinY},
			mbrMax:       IntPoint{mbr.MaxX, mbr.MaxY},
			dataOffset:   int32(len(sections))*sectionHeaderSize + vertexOffset*int32(VertexWidth(tag)),
			vertexOffset: vertexOffset,
		}
		vertexOffset += int32(len(sec))
	}
	for _, h := range headers {
		if err := writeSectionHeader(coord.cur, h); err != nil {
			return IntMBR{}, err
		}
	}

	var overall IntMBR
	haveOverall := false
	for i, sec := range sections {
		if err := coord.WriteVertices(tag, sec); err != nil {
			return IntMBR{}, err
		}
		h := headers[i]
		secMBR := IntMBR{h.mbrMin.X, h.mbrMin.Y, h.mbrMax.X, h.mbrMax.Y}
		if !haveOverall {
			overall, haveOverall = secMBR, true
		} else {
			overall.MinX = min32(overall.MinX, secMBR.MinX)
			overall.MinY = min32(overall.MinY, secMBR.MinY)
			overall.MaxX = max32(overall.MaxX, secMBR.MaxX)
			overall.MaxY = max32(overall.MaxY, secMBR.MaxY)
		}
	}
	return overall, nil
}

// ReadRegion decodes a REGION: header in obj, section-header-then-
// vertices body in the coordinate stream. Ring 0 of the returned
// polygon is the exterior; the rest are holes of ring 0.
func ReadRegion(obj *Cursor, coord *CoordStream, tr Transform, compressed bool) (Feature, error) {
	h, err := readMultiVertexHeader(obj, compressed, true)
	if err != nil {
		return Feature{}, err
	}
	penIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	brushIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}

	coord.cur.GotoByte(int64(h.coordBlockPtr))
	if err := coord.cur.RequireCommitted(); err != nil {
		return Feature{}, err
	}
	coord.SetOrigin(h.centerX, h.centerY)
	sections, err := readSections(coord, tagFor(TagRegion, compressed), int(h.numSections))
	if err != nil {
		return Feature{}, err
	}

	rings := make([][]Point, len(sections))
	var overall MBR
	haveOverall := false
	for i, sec := range sections {
		ring := make([]Point, len(sec))
		for j, p := range sec {
			ring[j].X, ring[j].Y = tr.IntToWorld(p.X, p.Y)
		}
		rings[i] = ring
		if b, ok := boundsOf(ring); ok {
			if !haveOverall {
				overall, haveOverall = b, true
			} else {
				overall = overall.Union(b)
			}
		}
	}
	return Feature{
		Tag:      tagFor(TagRegion, compressed),
		Geometry: Geometry{Kind: KindPolygon, Rings: rings},
		Styles:   StyleRefs{Pen: int(penIdx), Brush: int(brushIdx)},
		MBR:      overall,
	}, nil
}

// WriteRegion encodes f as a REGION. f.Geometry.Rings[0] is treated as
// the exterior; subsequent rings are written as holes of ring 0, with
// numHoles always emitted as 0 regardless of nesting depth.
func WriteRegion(obj *Cursor, coord *CoordStream, tr Transform, f Feature, compressed bool) error {
	if f.Geometry.Kind != KindPolygon || len(f.Geometry.Rings) == 0 {
		return &ErrGeometryShapeMismatch{Class: ClassAuto, Reason: "REGION requires a Polygon with at least one ring"}
	}
	sections := make([][]IntPoint, len(f.Geometry.Rings))
	for i, ring := range f.Geometry.Rings {
		if len(ring) < 3 {
			return &ErrGeometryShapeMismatch{Class: ClassAuto, Reason: "each REGION ring must have at least 3 vertices"}
		}
		pts := make([]IntPoint, len(ring))
		for j, v := range ring {
			x, y, err := tr.WorldToInt(v.X, v.Y)
			if err != nil {
				return err
			}
			pts[j] = IntPoint{x, y}
		}
		sections[i] = pts
	}

	origin := sections[0][0]
	tag := tagFor(TagRegion, compressed)
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
	if err := obj.WriteByte(byte(f.Styles.Pen)); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Brush))
}
