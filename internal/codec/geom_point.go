package codec

// FontSymbolParams carries the inline font/symbol payload FONTSYMBOL
// stores directly in the object block rather than through the style
// pool. Only the font reference travels through the pool
// (Feature.Styles.Font); everything else here is per-feature.
type FontSymbolParams struct {
	ShapeNo     int
	PointSize   int
	FontStyle   int16
	R, G, B     byte
	AngleTenths int16
}

// CustomSymbolParams carries CUSTOMSYMBOL's customStyle bitfield: bit 0
// toggles showing the background, bit 1 toggles applying the symbol's
// color.
type CustomSymbolParams struct {
	ShowBackground bool
	ApplyColor     bool
}

// ReadSymbol decodes a SYMBOL body: IntCoord(x,y); byte symbolIdx. The
// compressed origin, if any, must already be staged on obj by the
// caller — the outer block manager's job, not this function's.
func ReadSymbol(obj *Cursor, tr Transform, compressed bool) (Feature, error) {
	ip, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	symIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	x, y := tr.IntToWorld(ip.X, ip.Y)
	f := Feature{
		Tag:      tagFor(TagSymbol, compressed),
		Geometry: Geometry{Kind: KindPoint, Point: Point{X: x, Y: y}},
		Styles:   StyleRefs{Symbol: int(symIdx)},
		MBR:      MBR{x, y, x, y},
	}
	return f, nil
}

// WriteSymbol encodes f as a SYMBOL body.
func WriteSymbol(obj *Cursor, tr Transform, f Feature, compressed bool) error {
	if f.Geometry.Kind != KindPoint {
		return &ErrGeometryShapeMismatch{Class: ClassPoint, Reason: "SYMBOL requires a Point geometry"}
	}
	i, j, err := tr.WorldToInt(f.Geometry.Point.X, f.Geometry.Point.Y)
	if err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{i, j}, compressed); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Symbol))
}

// ReadFontSymbol decodes a FONTSYMBOL body.
func ReadFontSymbol(obj *Cursor, tr Transform, compressed bool) (Feature, error) {
	shapeNo, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	pointSize, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	fontStyle, err := obj.ReadInt16()
	if err != nil {
		return Feature{}, err
	}
	r, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	g, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	b, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	if _, err := obj.ReadBytes(3); err != nil { // reserved
		return Feature{}, err
	}
	angle, err := obj.ReadInt16()
	if err != nil {
		return Feature{}, err
	}
	ip, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	fontIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}

	x, y := tr.IntToWorld(ip.X, ip.Y)
	return Feature{
		Tag:      tagFor(TagFontSymbol, compressed),
		Geometry: Geometry{Kind: KindPoint, Point: Point{X: x, Y: y}},
		Styles:   StyleRefs{Font: int(fontIdx)},
		MBR:      MBR{x, y, x, y},
		FontSymbol: &FontSymbolParams{
			ShapeNo: int(shapeNo), PointSize: int(pointSize),
			FontStyle: fontStyle, R: r, G: g, B: b, AngleTenths: angle,
		},
	}, nil
}

// WriteFontSymbol encodes f as a FONTSYMBOL body.
func WriteFontSymbol(obj *Cursor, tr Transform, f Feature, compressed bool) error {
	if f.Geometry.Kind != KindPoint || f.FontSymbol == nil {
		return &ErrGeometryShapeMismatch{Class: ClassFontPoint, Reason: "FONTSYMBOL requires a Point geometry with FontSymbolParams"}
	}
	p := f.FontSymbol
	if err := obj.WriteByte(byte(p.ShapeNo)); err != nil {
		return err
	}
	if err := obj.WriteByte(byte(p.PointSize)); err != nil {
		return err
	}
	if err := obj.WriteInt16(p.FontStyle); err != nil {
		return err
	}
	if err := obj.WriteByte(p.R); err != nil {
		return err
	}
	if err := obj.WriteByte(p.G); err != nil {
		return err
	}
	if err := obj.WriteByte(p.B); err != nil {
		return err
	}
	if err := obj.WriteBytes([]byte{0, 0, 0}); err != nil {
		return err
	}
	if err := obj.WriteInt16(p.AngleTenths); err != nil {
		return err
	}
	i, j, err := tr.WorldToInt(f.Geometry.Point.X, f.Geometry.Point.Y)
	if err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{i, j}, compressed); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Font))
}

const (
	customStyleShowBackground = 1 << 0
	customStyleApplyColor     = 1 << 1
)

// ReadCustomSymbol decodes a CUSTOMSYMBOL body.
func ReadCustomSymbol(obj *Cursor, tr Transform, compressed bool) (Feature, error) {
	if _, err := obj.ReadByte(); err != nil { // reserved
		return Feature{}, err
	}
	styleByte, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	ip, err := obj.ReadIntCoord(compressed)
	if err != nil {
		return Feature{}, err
	}
	symIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}
	fontIdx, err := obj.ReadByte()
	if err != nil {
		return Feature{}, err
	}

	x, y := tr.IntToWorld(ip.X, ip.Y)
	return Feature{
		Tag:      tagFor(TagCustomSymbol, compressed),
		Geometry: Geometry{Kind: KindPoint, Point: Point{X: x, Y: y}},
		Styles:   StyleRefs{Symbol: int(symIdx), Font: int(fontIdx)},
		MBR:      MBR{x, y, x, y},
		Custom: &CustomSymbolParams{
			ShowBackground: styleByte&customStyleShowBackground != 0,
			ApplyColor:     styleByte&customStyleApplyColor != 0,
		},
	}, nil
}

// WriteCustomSymbol encodes f as a CUSTOMSYMBOL body.
func WriteCustomSymbol(obj *Cursor, tr Transform, f Feature, compressed bool) error {
	if f.Geometry.Kind != KindPoint || f.Custom == nil {
		return &ErrGeometryShapeMismatch{Class: ClassCustomPoint, Reason: "CUSTOMSYMBOL requires a Point geometry with CustomSymbolParams"}
	}
	if err := obj.WriteByte(0); err != nil { // reserved
		return err
	}
	var styleByte byte
	if f.Custom.ShowBackground {
		styleByte |= customStyleShowBackground
	}
	if f.Custom.ApplyColor {
		styleByte |= customStyleApplyColor
	}
	if err := obj.WriteByte(styleByte); err != nil {
		return err
	}
	i, j, err := tr.WorldToInt(f.Geometry.Point.X, f.Geometry.Point.Y)
	if err != nil {
		return err
	}
	if err := obj.WriteIntCoord(IntPoint{i, j}, compressed); err != nil {
		return err
	}
	if err := obj.WriteByte(byte(f.Styles.Symbol)); err != nil {
		return err
	}
	return obj.WriteByte(byte(f.Styles.Font))
}
