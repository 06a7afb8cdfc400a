package codec

import "math"

// textAlignment bit positions, counted from the LSB.
const (
	textAlignHJustifyShift = 9
	textAlignHJustifyMask  = 0x3 << textAlignHJustifyShift

	textAlignSpacingShift = 11
	textAlignSpacingMask  = 0x3 << textAlignSpacingShift

	textAlignDecorationShift = 13
	textAlignDecorationMask  = 0x3 << textAlignDecorationShift
)

// Horizontal justification values packed into textAlignment.
const (
	HJustifyLeft = iota
	HJustifyCenter
	HJustifyRight
)

// Line spacing values packed into textAlignment.
const (
	LineSpacingSingle = iota
	LineSpacing1_5
	LineSpacingDouble
)

// Line decoration values packed into textAlignment.
const (
	LineDecorationNone = iota
	LineDecorationSimple
	LineDecorationArrow
)

// TextParams carries TEXT's label payload: the string, its formatting,
// and the recovered (pre-rotation) anchor point.
type TextParams struct {
	String      string
	HJustify    int
	LineSpacing int
	Decoration  int
	AngleTenths int16
	FontStyle   int16
	FGColor     [3]byte
	BGColor     [3]byte
	ArrowEnd    Point
	Height      float64
	Anchor      Point // lower-left corner of the unrotated text box
}

func packTextAlignment(p *TextParams) int16 {
	var v int16
	v |= int16(p.HJustify) << textAlignHJustifyShift
	v |= int16(p.LineSpacing) << textAlignSpacingShift
	v |= int16(p.Decoration) << textAlignDecorationShift
	return v
}

func unpackTextAlignment(v int16) (hjustify, spacing, decoration int) {
	hjustify = int(v&textAlignHJustifyMask) >> textAlignHJustifyShift
	spacing = int(v&textAlignSpacingMask) >> textAlignSpacingShift
	decoration = int(v&textAlignDecorationMask) >> textAlignDecorationShift
	return
}

// recoverTextAnchor recovers the pre-rotation lower-left corner: given
// the post-rotation MBR, the rotation angle, and the text box height,
// it recovers the anchor the writer originally placed.
func recoverTextAnchor(mbr MBR, angleRadians, height float64) Point {
	s, c := math.Sin(angleRadians), math.Cos(angleRadians)
	switch {
	case s >= 0 && c >= 0:
		return Point{X: mbr.MinX + height*s, Y: mbr.MinY}
	case s >= 0 && c < 0:
		return Point{X: mbr.MaxX, Y: mbr.MinY - height*c}
	case s < 0 && c < 0:
		return Point{X: mbr.MaxX + height*s, Y: mbr.MaxY}
	default:
		return Point{X: mbr.MinX, Y: mbr.MaxY - height*c}
	}
}

// ReadText decodes a TEXT record. The header lives in obj; the string
// bytes live in the coordinate stream at stringPtr.
func ReadText(obj *Cursor, coord *CoordStream, tr Transform, compressed bool) (Feature, error) {
	stringPtr, err := obj.ReadInt32()
	if err != nil {
		return Feature{}, err
	}
	stringLen, err := obj.ReadInt16()
	if err != nil {
		return Feature{}, err
	}
	alignment, err := obj.ReadInt16()
	if err != nil {
		return Feature{}, err
	}
	angle, err := obj.ReadInt16()
	if err != nil {
		return Feature{}, err
	}
	fontStyle, err := obj.ReadInt16()
	if err != nil {
		return Feature{}, err
	}
	var fg, bg [3]byte
	for i := range fg {
		b, err := obj.ReadByte()
		if err != nil {
			return Feature{}, err
		}
		fg[i] = b
	}
	for i := range bg {
		b, err := obj.ReadByte()
		if err != nil {
			return Feature{}, err
		}
		bg[i] = b
	}
	arrow, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}

	var heightRaw int32
	if compressed {
		h16, err := obj.ReadInt16()
		if err != nil {
			return Feature{}, err
		}
		heightRaw = int32(h16)
	} else {
		heightRaw, err = obj.ReadInt32()
		if err != nil {
			return Feature{}, err
		}
	}
	fontIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
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

	coord.cur.GotoByte(int64(stringPtr))
	if stringLen > 0 {
		if err := coord.cur.RequireCommitted(); err != nil {
			return Feature{}, err
		}
	}
	raw, err := coord.cur.ReadBytes(int(stringLen))
	if err != nil {
		return Feature{}, err
	}

	minX, minY := tr.IntToWorld(mbrMin.X, mbrMin.Y)
	maxX, maxY := tr.IntToWorld(mbrMax.X, mbrMax.Y)
	mbr := MBR{minX, minY, maxX, maxY}
	_, heightWorld := tr.IntToWorldDist(0, heightRaw)
	angleRad := tenthsToRadians(angle)
	anchor := recoverTextAnchor(mbr, angleRad, heightWorld)

	arrowX, arrowY := tr.IntToWorld(arrow.X, arrow.Y)
	hj, spacing, decoration := unpackTextAlignment(alignment)

	return Feature{
		Tag:      tagFor(TagText, compressed),
		Geometry: Geometry{Kind: KindPoint, Point: anchor},
		Styles:   StyleRefs{Pen: int(penIdx), Font: int(fontIdx)},
		MBR:      mbr,
		Text: &TextParams{
			String: string(raw), HJustify: hj, LineSpacing: spacing, Decoration: decoration,
			AngleTenths: angle, FontStyle: fontStyle, FGColor: fg, BGColor: bg,
			ArrowEnd: Point{arrowX, arrowY}, Height: heightWorld, Anchor: anchor,
		},
	}, nil
}

// WriteText encodes f as a TEXT record. The coordinate stream's
// string bytes are written first so stringPtr is known when the
// header is emitted, so stringPtr is known up front.
func WriteText(obj *Cursor, coord *CoordStream, tr Transform, f Feature, compressed bool) error {
	if f.Text == nil {
		return &ErrGeometryShapeMismatch{Class: ClassText, Reason: "TEXT requires TextParams"}
	}
	p := f.Text

	stringPtr := coord.cur.Offset()
	if err := coord.cur.WriteBytes([]byte(p.String)); err != nil {
		return err
	}
	if err := coord.cur.CommitCoordRange(stringPtr, coord.cur.Offset()); err != nil {
		return err
	}

	if err := obj.WriteInt32(int32(stringPtr)); err != nil {
		return err
	}
	if err := obj.WriteInt16(int16(len(p.String))); err != nil {
		return err
	}
	alignment := packTextAlignment(p)
	if err := obj.WriteInt16(alignment); err != nil {
		return err
	}
	if err := obj.WriteInt16(p.AngleTenths); err != nil {
		return err
	}
	if err := obj.WriteInt16(p.FontStyle); err != nil {
		return err
	}
	for _, b := range p.FGColor {
		if err := obj.WriteByte(b); err != nil {
			return err
		}
	}
	for _, b := range p.BGColor {
		if err := obj.WriteByte(b); err != nil {
			return err
		}
	}
	ai, aj, err := tr.WorldToInt(p.ArrowEnd.X, p.ArrowEnd.Y)
	if err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{ai, aj}, compressed); err != nil {
		return err
	}

	_, heightRaw, err := tr.WorldToIntDist(0, p.Height)
	if err != nil {
		return err
	}
	if compressed {
		if err := obj.WriteInt16(int16(heightRaw)); err != nil {
			return err
		}
	} else {
		if err := obj.WriteInt32(heightRaw); err != nil {
			return err
		}
	}
	if err := obj.WriteByte(byte(f.Styles.Font)); err != nil {
		return err
	}

	if !f.MBR.Valid() {
		return &ErrGeometryShapeMismatch{Class: ClassText, Reason: "TEXT requires a valid post-rotation MBR"}
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
	return obj.WriteByte(byte(f.Styles.Pen))
}
