package codec

import "math"

// RoundRectParams carries ROUNDRECT's corner radii, kept in memory as
// radii (half the on-disk diameter).
type RoundRectParams struct {
	RadiusX float64
	RadiusY float64
}

// ArcParams carries ARC's defining ellipse and sweep angles, in
// radians and already un-mirrored back to the in-memory convention by
// the angle-mirror involution.
type ArcParams struct {
	CenterX, CenterY float64
	RadiusX, RadiusY float64
	StartAngle       float64
	EndAngle         float64
}

// ReadRect decodes a RECT body: IntCoord(mbrMin); IntCoord(mbrMax);
// byte penIdx; byte brushIdx.
func ReadRect(obj *Cursor, tr Transform, compressed bool) (Feature, error) {
	return readRectLike(obj, tr, compressed, false)
}

// WriteRect encodes f as a RECT body.
func WriteRect(obj *Cursor, tr Transform, f Feature, compressed bool) error {
	return writeRectLike(obj, tr, f, compressed, false)
}

// ReadRoundRect decodes a ROUNDRECT body, which additionally carries
// corner diameters ahead of the MBR.
func ReadRoundRect(obj *Cursor, tr Transform, compressed bool) (Feature, error) {
	return readRectLike(obj, tr, compressed, true)
}

// WriteRoundRect encodes f as a ROUNDRECT body.
func WriteRoundRect(obj *Cursor, tr Transform, f Feature, compressed bool) error {
	return writeRectLike(obj, tr, f, compressed, true)
}

func readRectLike(obj *Cursor, tr Transform, compressed, rounded bool) (Feature, error) {
	var rr *RoundRectParams
	if rounded {
		diam, err := obj.ReadIntCoord(compressed)
		if err != nil {
			return Feature{}, err
		}
		dx, dy := tr.IntToWorldDist(diam.X, diam.Y)
		rr = &RoundRectParams{RadiusX: dx / 2, RadiusY: dy / 2}
	}
	mbrMin, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	mbrMax, err := obj.ReadIntCoord(compressed)
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

	minX, minY := tr.IntToWorld(mbrMin.X, mbrMin.Y)
	maxX, maxY := tr.IntToWorld(mbrMax.X, mbrMax.Y)
	mbr := MBR{minX, minY, maxX, maxY}

	tag := TagRect
	if rounded {
		tag = TagRoundRect
	}

	var ring []Point
	if rounded && rr != nil && (rr.RadiusX > 0 || rr.RadiusY > 0) {
		ring = rasterizeRoundRectRing(mbr, rr.RadiusX, rr.RadiusY)
	} else {
		ring = ClosePolygonRing([]Point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}})
	}

	return Feature{
		Tag:       tagFor(tag, compressed),
		Geometry:  Geometry{Kind: KindPolygon, Rings: [][]Point{ring}},
		Styles:    StyleRefs{Pen: int(penIdx), Brush: int(brushIdx)},
		MBR:       mbr,
		RoundRect: rr,
	}, nil
}

func writeRectLike(obj *Cursor, tr Transform, f Feature, compressed, rounded bool) error {
	if f.Geometry.Kind != KindPolygon || len(f.Geometry.Rings) != 1 {
		return &ErrGeometryShapeMismatch{Class: ClassRect, Reason: "RECT/ROUNDRECT requires a single-ring Polygon"}
	}
	mbr, ok := boundsOf(f.Geometry.Rings[0])
	if !ok {
		return &ErrGeometryShapeMismatch{Class: ClassRect, Reason: "empty ring"}
	}
	if rounded {
		rr := f.RoundRect
		if rr == nil {
			return &ErrGeometryShapeMismatch{Class: ClassRoundRect, Reason: "ROUNDRECT requires RoundRectParams"}
		}
		rx, ry := clampRoundRectRadii(rr.RadiusX, rr.RadiusY, mbr)
		dx, dy, err := tr.WorldToIntDist(rx*2, ry*2)
		if err != nil {
			return err
		}
		if err := obj.WriteIntCoord(IntPoint{dx, dy}, compressed); err != nil {
			return err
		}
	}
	minI, minJ, err := tr.WorldToInt(mbr.MinX, mbr.MinY)
	if err != nil {
		return err
	}
	maxI, maxJ, err := tr.WorldToInt(mbr.MaxX, mbr.MaxY)
	if err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{minI, minJ}, compressed); err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{maxI, maxJ}, compressed); err != nil {
		return err
	}
	if err := obj.WriteByte(byte(f.Styles.Pen)); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Brush))
}

// clampRoundRectRadii clamps requested corner radii so neither axis'
// rounding exceeds half the rectangle's own extent on that axis —
// matching the source's defensive clamp against a corner radius larger
// than the rectangle itself.
func clampRoundRectRadii(rx, ry float64, mbr MBR) (float64, float64) {
	halfW := (mbr.MaxX - mbr.MinX) / 2
	halfH := (mbr.MaxY - mbr.MinY) / 2
	if rx > halfW {
		rx = halfW
	}
	if ry > halfH {
		ry = halfH
	}
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}
	return rx, ry
}

// rasterizeRoundRectRing materializes a rounded rectangle's boundary
// as a single closed ring: four 45-vertex corner arcs joined by the
// straight edges between them.
func rasterizeRoundRectRing(mbr MBR, rx, ry float64) []Point {
	rx, ry = clampRoundRectRadii(rx, ry, mbr)
	type corner struct {
		cx, cy, alpha, beta float64
	}
	corners := []corner{
		{mbr.MaxX - rx, mbr.MinY + ry, -math.Pi / 2, 0},             // bottom-right
		{mbr.MaxX - rx, mbr.MaxY - ry, 0, math.Pi / 2},               // top-right
		{mbr.MinX + rx, mbr.MaxY - ry, math.Pi / 2, math.Pi},         // top-left
		{mbr.MinX + rx, mbr.MinY + ry, math.Pi, 3 * math.Pi / 2},     // bottom-left
	}
	var ring []Point
	for _, c := range corners {
		ring = append(ring, rasterizeArcRing(c.cx, c.cy, rx, ry, c.alpha, c.beta, 45)...)
	}
	return ClosePolygonRing(ring)
}

// ReadEllipse decodes an ELLIPSE body: IntCoord(mbrMin);
// IntCoord(mbrMax); byte penIdx; byte brushIdx. The in-memory geometry
// is the rasterized boundary ring.
func ReadEllipse(obj *Cursor, tr Transform, compressed bool) (Feature, error) {
	mbrMin, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	mbrMax, err := obj.ReadIntCoord(compressed)
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

	minX, minY := tr.IntToWorld(mbrMin.X, mbrMin.Y)
	maxX, maxY := tr.IntToWorld(mbrMax.X, mbrMax.Y)
	mbr := MBR{minX, minY, maxX, maxY}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	rx, ry := (maxX-minX)/2, (maxY-minY)/2
	ring := ClosePolygonRing(RasterizeEllipse(cx, cy, rx, ry))

	return Feature{
		Tag:      tagFor(TagEllipse, compressed),
		Geometry: Geometry{Kind: KindPolygon, Rings: [][]Point{ring}},
		Styles:   StyleRefs{Pen: int(penIdx), Brush: int(brushIdx)},
		MBR:      mbr,
	}, nil
}

// WriteEllipse encodes f as an ELLIPSE body. Only f.MBR is persisted;
// any ring in f.Geometry is for the caller's own round-trip checking
// and is not itself written.
func WriteEllipse(obj *Cursor, tr Transform, f Feature, compressed bool) error {
	if !f.MBR.Valid() {
		return &ErrGeometryShapeMismatch{Class: ClassEllipse, Reason: "ELLIPSE requires a valid MBR"}
	}
	minI, minJ, err := tr.WorldToInt(f.MBR.MinX, f.MBR.MinY)
	if err != nil {
		return err
	}
	maxI, maxJ, err := tr.WorldToInt(f.MBR.MaxX, f.MBR.MaxY)
	if err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{minI, minJ}, compressed); err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{maxI, maxJ}, compressed); err != nil {
		return err
	}
	if err := obj.WriteByte(byte(f.Styles.Pen)); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Brush))
}

// ReadArc decodes an ARC body: int16 endAngle×10; int16 startAngle×10;
// IntCoord(ellipseMin); IntCoord(ellipseMax); IntCoord(arcMbrMin);
// IntCoord(arcMbrMax); byte penIdx. The angle-mirror involution is
// un-applied here to recover the in-memory convention.
func ReadArc(obj *Cursor, tr Transform, compressed bool) (Feature, error) {
	endTenths, err := obj.ReadInt16()
	if err != nil {
		return Feature{}, err
	}
	startTenths, err := obj.ReadInt16()
	if err != nil {
		return Feature{}, err
	}
	ellipseMin, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	ellipseMax, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	arcMbrMin, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	arcMbrMax, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	penIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}

	start := tenthsToRadians(mirrorAngleTenths(startTenths))
	end := tenthsToRadians(mirrorAngleTenths(endTenths))

	eMinX, eMinY := tr.IntToWorld(ellipseMin.X, ellipseMin.Y)
	eMaxX, eMaxY := tr.IntToWorld(ellipseMax.X, ellipseMax.Y)
	cx, cy := (eMinX+eMaxX)/2, (eMinY+eMaxY)/2
	rx, ry := (eMaxX-eMinX)/2, (eMaxY-eMinY)/2

	mMinX, mMinY := tr.IntToWorld(arcMbrMin.X, arcMbrMin.Y)
	mMaxX, mMaxY := tr.IntToWorld(arcMbrMax.X, arcMbrMax.Y)

	verts := RasterizeArc(cx, cy, rx, ry, start, end)
	return Feature{
		Tag:      tagFor(TagArc, compressed),
		Geometry: Geometry{Kind: KindLineString, Vertices: verts},
		Styles:   StyleRefs{Pen: int(penIdx)},
		MBR:      MBR{mMinX, mMinY, mMaxX, mMaxY},
		Arc: &ArcParams{
			CenterX: cx, CenterY: cy,
			RadiusX: rx, RadiusY: ry,
			StartAngle: start, EndAngle: end,
		},
	}, nil
}

// WriteArc encodes f as an ARC body, applying the angle-mirror
// involution and the wire's start/end swap.
func WriteArc(obj *Cursor, tr Transform, f Feature, compressed bool) error {
	if f.Arc == nil {
		return &ErrGeometryShapeMismatch{Class: ClassArc, Reason: "ARC requires ArcParams"}
	}
	a := f.Arc
	startTenths := mirrorAngleTenths(radiansToTenths(a.StartAngle))
	endTenths := mirrorAngleTenths(radiansToTenths(a.EndAngle))
	if err := obj.WriteInt16(endTenths); err != nil {
		return err
	}
	if err := obj.WriteInt16(startTenths); err != nil {
		return err
	}

	eMinI, eMinJ, err := tr.WorldToInt(a.CenterX-a.RadiusX, a.CenterY-a.RadiusY)
	if err != nil {
		return err
	}
	eMaxI, eMaxJ, err := tr.WorldToInt(a.CenterX+a.RadiusX, a.CenterY+a.RadiusY)
	if err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{eMinI, eMinJ}, compressed); err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{eMaxI, eMaxJ}, compressed); err != nil {
		return err
	}

	if !f.MBR.Valid() {
		return &ErrGeometryShapeMismatch{Class: ClassArc, Reason: "ARC requires a valid MBR"}
	}
	mMinI, mMinJ, err := tr.WorldToInt(f.MBR.MinX, f.MBR.MinY)
	if err != nil {
		return err
	}
	mMaxI, mMaxJ, err := tr.WorldToInt(f.MBR.MaxX, f.MBR.MaxY)
	if err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{mMinI, mMinJ}, compressed); err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{mMaxI, mMaxJ}, compressed); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Pen))
}
