package codec

// Context bundles everything a geometry read or write needs for one
// feature: the object-block cursor (always present), the
// coordinate-stream wrapper (only touched by multi-block tags), the
// transform, and the style pool.
type Context struct {
	Obj       *Cursor
	Coord     *CoordStream
	Transform Transform
	Styles    *Pool
}

// ValidateMapInfoType chooses the on-disk tag for geom given the
// caller's declared class. It never touches obj/coord — a mismatch is
// reported as a GeometryShapeMismatch without writing anything.
func ValidateMapInfoType(geom Geometry, class GeometryClass) (Tag, error) {
	switch class {
	case ClassPoint:
		if geom.Kind != KindPoint {
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "point class requires a Point geometry"}
		}
		return TagSymbol, nil
	case ClassFontPoint:
		if geom.Kind != KindPoint {
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "font-point class requires a Point geometry"}
		}
		return TagFontSymbol, nil
	case ClassCustomPoint:
		if geom.Kind != KindPoint {
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "custom-point class requires a Point geometry"}
		}
		return TagCustomSymbol, nil
	case ClassText:
		if geom.Kind != KindPoint {
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "text class requires a Point geometry"}
		}
		return TagText, nil
	case ClassArc:
		if geom.Kind != KindLineString {
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "arc class requires a LineString geometry"}
		}
		return TagArc, nil
	case ClassRect:
		if geom.Kind != KindPolygon {
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "rect class requires a Polygon geometry"}
		}
		return TagRect, nil
	case ClassRoundRect:
		if geom.Kind != KindPolygon {
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "roundrect class requires a Polygon geometry"}
		}
		return TagRoundRect, nil
	case ClassEllipse:
		if geom.Kind != KindPolygon {
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "ellipse class requires a Polygon geometry"}
		}
		return TagEllipse, nil
	case ClassAuto:
		switch geom.Kind {
		case KindPoint:
			return TagSymbol, nil
		case KindLineString:
			if len(geom.Vertices) == 2 {
				return TagLine, nil
			}
			if len(geom.Vertices) > 2 {
				return TagPline, nil
			}
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "a LineString needs at least 2 vertices"}
		case KindPolygon:
			return TagRegion, nil
		case KindCollection:
			return TagMultiPline, nil
		default:
			return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "no geometry to classify"}
		}
	default:
		return TagNone, &ErrGeometryShapeMismatch{Class: class, Reason: "unknown geometry class"}
	}
}

// ReadFeature reads one feature given its tag byte: Tagged ->
// HeaderRead -> (CoordStreamRead)? -> Done. Style indices are returned
// as stored; ReadFeature does not look them up in ctx.Styles, so an
// index with no pool entry is not reported here. Any error
// aborts and returns a zero Feature; the caller is expected to resume
// at the next feature using the header's per-tag object-size table.
func ReadFeature(ctx *Context, tag Tag) (Feature, error) {
	if tag == TagNone {
		return Feature{Tag: TagNone, Geometry: Geometry{Kind: KindNone}}, nil
	}
	if !tag.Known() {
		return Feature{}, &ErrUnknownGeometryTag{Offset: ctx.Obj.Offset(), Tag: byte(tag)}
	}

	compressed := tag.Compressed()
	switch tag.Base() {
	case TagSymbol:
		return ReadSymbol(ctx.Obj, ctx.Transform, compressed)
	case TagFontSymbol:
		return ReadFontSymbol(ctx.Obj, ctx.Transform, compressed)
	case TagCustomSymbol:
		return ReadCustomSymbol(ctx.Obj, ctx.Transform, compressed)
	case TagLine:
		return ReadLine(ctx.Obj, ctx.Transform, compressed)
	case TagPline:
		return ReadPline(ctx.Obj, ctx.Coord, ctx.Transform, compressed)
	case TagMultiPline:
		return ReadMultiPline(ctx.Obj, ctx.Coord, ctx.Transform, compressed)
	case TagRegion:
		return ReadRegion(ctx.Obj, ctx.Coord, ctx.Transform, compressed)
	case TagRect:
		return ReadRect(ctx.Obj, ctx.Transform, compressed)
	case TagRoundRect:
		return ReadRoundRect(ctx.Obj, ctx.Transform, compressed)
	case TagEllipse:
		return ReadEllipse(ctx.Obj, ctx.Transform, compressed)
	case TagArc:
		return ReadArc(ctx.Obj, ctx.Transform, compressed)
	case TagText:
		return ReadText(ctx.Obj, ctx.Coord, ctx.Transform, compressed)
	default:
		return Feature{}, &ErrUnknownGeometryTag{Offset: ctx.Obj.Offset(), Tag: byte(tag)}
	}
}

// WriteFeature writes f using its Tag field to pick the variant
// encoder. Callers that want tag inference from geometry alone should
// call ValidateMapInfoType first and set f.Tag from its result.
func WriteFeature(ctx *Context, f Feature) error {
	if f.Tag == TagNone {
		return nil
	}
	if !f.Tag.Known() {
		return &ErrUnknownGeometryTag{Offset: ctx.Obj.Offset(), Tag: byte(f.Tag)}
	}

	compressed := f.Tag.Compressed()
	switch f.Tag.Base() {
	case TagSymbol:
		return WriteSymbol(ctx.Obj, ctx.Transform, f, compressed)
	case TagFontSymbol:
		return WriteFontSymbol(ctx.Obj, ctx.Transform, f, compressed)
	case TagCustomSymbol:
		return WriteCustomSymbol(ctx.Obj, ctx.Transform, f, compressed)
	case TagLine:
		return WriteLine(ctx.Obj, ctx.Transform, f, compressed)
	case TagPline:
		return WritePline(ctx.Obj, ctx.Coord, ctx.Transform, f, compressed)
	case TagMultiPline:
		return WriteMultiPline(ctx.Obj, ctx.Coord, ctx.Transform, f, compressed)
	case TagRegion:
		return WriteRegion(ctx.Obj, ctx.Coord, ctx.Transform, f, compressed)
	case TagRect:
		return WriteRect(ctx.Obj, ctx.Transform, f, compressed)
	case TagRoundRect:
		return WriteRoundRect(ctx.Obj, ctx.Transform, f, compressed)
	case TagEllipse:
		return WriteEllipse(ctx.Obj, ctx.Transform, f, compressed)
	case TagArc:
		return WriteArc(ctx.Obj, ctx.Transform, f, compressed)
	case TagText:
		return WriteText(ctx.Obj, ctx.Coord, ctx.Transform, f, compressed)
	default:
		return &ErrUnknownGeometryTag{Offset: ctx.Obj.Offset(), Tag: byte(f.Tag)}
	}
}
