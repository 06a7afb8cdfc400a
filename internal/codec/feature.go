package codec

// Point is a single (x, y) world coordinate.
type Point struct {
	X, Y float64
}

// MBR is an axis-aligned minimum bounding rectangle with Min ≤ Max on
// both axes.
type MBR struct {
	MinX, MinY, MaxX, MaxY float64
}

// Valid reports whether the MBR's Min/Max ordering holds on both axes.
func (m MBR) Valid() bool {
	return m.MinX <= m.MaxX && m.MinY <= m.MaxY
}

// Union returns the smallest MBR containing both m and o.
func (m MBR) Union(o MBR) MBR {
	return MBR{
		MinX: minF(m.MinX, o.MinX),
		MinY: minF(m.MinY, o.MinY),
		MaxX: maxF(m.MaxX, o.MaxX),
		MaxY: maxF(m.MaxY, o.MaxY),
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// GeometryKind discriminates the abstract geometry shape the codec
// exchanges with callers: Point, LineString, Polygon, or Collection.
type GeometryKind int

const (
	KindNone GeometryKind = iota
	KindPoint
	KindLineString
	KindPolygon
	KindCollection
)

func (k GeometryKind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindCollection:
		return "Collection"
	default:
		return "None"
	}
}

// Geometry is the opaque geometry value the codec produces and
// consumes.
//
// Only the field matching Kind is meaningful:
//   - KindPoint: Point
//   - KindLineString: Vertices
//   - KindPolygon: Rings (ring 0 is the exterior, others are holes of
//     ring 0)
//   - KindCollection: Parts, each itself a Geometry (used for
//     MULTIPLINE, a collection of LineStrings)
type Geometry struct {
	Kind     GeometryKind
	Point    Point
	Vertices []Point
	Rings    [][]Point
	Parts    []Geometry
}

// Bounds computes the geometry's own MBR. For KindNone it returns the
// zero MBR with ok=false.
func (g Geometry) Bounds() (MBR, bool) {
	switch g.Kind {
	case KindPoint:
		return MBR{g.Point.X, g.Point.Y, g.Point.X, g.Point.Y}, true
	case KindLineString:
		return boundsOf(g.Vertices)
	case KindPolygon:
		if len(g.Rings) == 0 {
			return MBR{}, false
		}
		return boundsOf(g.Rings[0])
	case KindCollection:
		var out MBR
		found := false
		for _, part := range g.Parts {
			b, ok := part.Bounds()
			if !ok {
				continue
			}
			if !found {
				out, found = b, true
			} else {
				out = out.Union(b)
			}
		}
		return out, found
	default:
		return MBR{}, false
	}
}

func boundsOf(pts []Point) (MBR, bool) {
	if len(pts) == 0 {
		return MBR{}, false
	}
	m := MBR{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < m.MinX {
			m.MinX = p.X
		}
		if p.Y < m.MinY {
			m.MinY = p.Y
		}
		if p.X > m.MaxX {
			m.MaxX = p.X
		}
		if p.Y > m.MaxY {
			m.MaxY = p.Y
		}
	}
	return m, true
}

// GeometryClass is the caller's declared intent for a feature — which
// on-disk tag family a Geometry should be validated and encoded as.
// Distinct from GeometryKind because e.g. a Polygon may be requested
// as RECT, ROUNDRECT, ELLIPSE, or REGION.
type GeometryClass int

const (
	ClassAuto GeometryClass = iota // infer from GeometryKind alone
	ClassPoint
	ClassFontPoint
	ClassCustomPoint
	ClassText
	ClassArc
	ClassRect
	ClassRoundRect
	ClassEllipse
)

func (c GeometryClass) String() string {
	switch c {
	case ClassPoint:
		return "point"
	case ClassFontPoint:
		return "font-point"
	case ClassCustomPoint:
		return "custom-point"
	case ClassText:
		return "text"
	case ClassArc:
		return "arc"
	case ClassRect:
		return "rect"
	case ClassRoundRect:
		return "roundrect"
	case ClassEllipse:
		return "ellipse"
	default:
		return "auto"
	}
}

// StyleRefs holds up to four 1-based style-pool indices; 0 means "none".
// Only the indices a given tag uses are meaningful.
type StyleRefs struct {
	Pen    int
	Brush  int
	Font   int
	Symbol int
}

// Feature is one row: an MBR, a geometry tag, an optional geometry
// value, and style-index references.
type Feature struct {
	MBR      MBR
	Tag      Tag
	Geometry Geometry
	Styles   StyleRefs

	// Variant-specific payload. Only the field(s) relevant to Tag are
	// populated; see geom_*.go for per-variant read/write.
	Arc        *ArcParams
	RoundRect  *RoundRectParams
	Text       *TextParams
	FontSymbol *FontSymbolParams
	Custom     *CustomSymbolParams
	Smooth     bool // PLINE only: coordDataSize top bit
}
