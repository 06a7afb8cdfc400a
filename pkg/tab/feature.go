package tab

import "github.com/beetlebugorg/tabgeo/internal/codec"

// GeometryKind discriminates the shape carried by a Geometry value.
type GeometryKind int

const (
	GeometryNone GeometryKind = iota
	GeometryPoint
	GeometryLineString
	GeometryPolygon
	GeometryCollection
)

func (k GeometryKind) String() string {
	return codec.GeometryKind(k).String()
}

// Point is a single (x, y) world coordinate.
type Point struct {
	X, Y float64
}

// Geometry is the public geometry value a Feature carries. All fields
// are private; use Kind and the matching accessor.
type Geometry struct {
	inner codec.Geometry
}

func newGeometry(g codec.Geometry) Geometry {
	return Geometry{inner: g}
}

func (g Geometry) toInternal() codec.Geometry {
	return g.inner
}

// Kind reports which accessor is meaningful.
func (g Geometry) Kind() GeometryKind {
	return GeometryKind(g.inner.Kind)
}

// Point returns the geometry's point; only meaningful for
// Kind()==GeometryPoint.
func (g Geometry) Point() Point {
	return Point{g.inner.Point.X, g.inner.Point.Y}
}

// Vertices returns the geometry's vertex run; only meaningful for
// Kind()==GeometryLineString.
func (g Geometry) Vertices() []Point {
	return toPublicPoints(g.inner.Vertices)
}

// Rings returns the geometry's rings (ring 0 exterior, rest holes);
// only meaningful for Kind()==GeometryPolygon.
func (g Geometry) Rings() [][]Point {
	out := make([][]Point, len(g.inner.Rings))
	for i, r := range g.inner.Rings {
		out[i] = toPublicPoints(r)
	}
	return out
}

// Parts returns the geometry's sub-geometries; only meaningful for
// Kind()==GeometryCollection.
func (g Geometry) Parts() []Geometry {
	out := make([]Geometry, len(g.inner.Parts))
	for i, p := range g.inner.Parts {
		out[i] = newGeometry(p)
	}
	return out
}

// NewPointGeometry builds a point geometry.
func NewPointGeometry(p Point) Geometry {
	return newGeometry(codec.Geometry{Kind: codec.KindPoint, Point: codec.Point{X: p.X, Y: p.Y}})
}

// NewLineStringGeometry builds a line-string geometry.
func NewLineStringGeometry(pts []Point) Geometry {
	return newGeometry(codec.Geometry{Kind: codec.KindLineString, Vertices: toInternalPoints(pts)})
}

// NewPolygonGeometry builds a polygon geometry from rings (ring 0 the
// exterior, the rest holes of ring 0).
func NewPolygonGeometry(rings [][]Point) Geometry {
	inner := make([][]codec.Point, len(rings))
	for i, r := range rings {
		inner[i] = toInternalPoints(r)
	}
	return newGeometry(codec.Geometry{Kind: codec.KindPolygon, Rings: inner})
}

// NewCollectionGeometry builds a collection geometry (used for
// multi-polyline features).
func NewCollectionGeometry(parts []Geometry) Geometry {
	inner := make([]codec.Geometry, len(parts))
	for i, p := range parts {
		inner[i] = p.inner
	}
	return newGeometry(codec.Geometry{Kind: codec.KindCollection, Parts: inner})
}

func toPublicPoints(pts []codec.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{p.X, p.Y}
	}
	return out
}

func toInternalPoints(pts []Point) []codec.Point {
	out := make([]codec.Point, len(pts))
	for i, p := range pts {
		out[i] = codec.Point{X: p.X, Y: p.Y}
	}
	return out
}

// MBR is an axis-aligned minimum bounding rectangle.
type MBR struct {
	MinX, MinY, MaxX, MaxY float64
}

func toPublicMBR(m codec.MBR) MBR {
	return MBR{m.MinX, m.MinY, m.MaxX, m.MaxY}
}

func toInternalMBR(m MBR) codec.MBR {
	return codec.MBR{MinX: m.MinX, MinY: m.MinY, MaxX: m.MaxX, MaxY: m.MaxY}
}

// GeometryClass is the caller's declared intent for a feature; see
// ValidateMapInfoType.
type GeometryClass int

const (
	ClassAuto GeometryClass = iota
	ClassPoint
	ClassFontPoint
	ClassCustomPoint
	ClassText
	ClassArc
	ClassRect
	ClassRoundRect
	ClassEllipse
)

func (c GeometryClass) toInternal() codec.GeometryClass {
	return codec.GeometryClass(c)
}

// StyleRefs holds up to four 1-based style indices into a StylePool;
// 0 means "none".
type StyleRefs struct {
	Pen    int
	Brush  int
	Font   int
	Symbol int
}

// Feature is one row: a bounding box, a geometry, and style
// references. All fields are private; construct with NewFeature and
// read back with accessors.
type Feature struct {
	inner codec.Feature
}

// NewFeature builds a Feature ready to be classified and written via
// FileHandle.WriteFeature.
func NewFeature(geom Geometry, styles StyleRefs) Feature {
	return Feature{inner: codec.Feature{
		Geometry: geom.inner,
		Styles: codec.StyleRefs{
			Pen: styles.Pen, Brush: styles.Brush, Font: styles.Font, Symbol: styles.Symbol,
		},
	}}
}

// MBR returns the feature's bounding box.
func (f Feature) MBR() MBR {
	return toPublicMBR(f.inner.MBR)
}

// Geometry returns the feature's geometry value.
func (f Feature) Geometry() Geometry {
	return newGeometry(f.inner.Geometry)
}

// Styles returns the feature's style-pool references.
func (f Feature) Styles() StyleRefs {
	return StyleRefs{
		Pen: f.inner.Styles.Pen, Brush: f.inner.Styles.Brush,
		Font: f.inner.Styles.Font, Symbol: f.inner.Styles.Symbol,
	}
}

// Smooth reports whether a PLINE feature was written/read with the
// smooth flag set; meaningless for other geometry kinds.
func (f Feature) Smooth() bool {
	return f.inner.Smooth
}

// WithSmooth returns a copy of f with the PLINE smooth flag set.
func (f Feature) WithSmooth(smooth bool) Feature {
	f.inner.Smooth = smooth
	return f
}

// WithArc attaches arc parameters (center, radii, start/end angle in
// radians) to a Feature being written as an arc.
func (f Feature) WithArc(centerX, centerY, radiusX, radiusY, startAngle, endAngle float64) Feature {
	f.inner.Arc = &codec.ArcParams{
		CenterX: centerX, CenterY: centerY,
		RadiusX: radiusX, RadiusY: radiusY,
		StartAngle: startAngle, EndAngle: endAngle,
	}
	return f
}

// WithRoundRectRadii attaches rounded-rectangle corner radii to a
// Feature being written as a rounded rectangle.
func (f Feature) WithRoundRectRadii(rx, ry float64) Feature {
	f.inner.RoundRect = &codec.RoundRectParams{RadiusX: rx, RadiusY: ry}
	return f
}

// WithMBR overrides the feature's bounding box (required for ELLIPSE,
// ARC, and TEXT, whose on-disk MBR is the post-rasterization bounds).
func (f Feature) WithMBR(m MBR) Feature {
	f.inner.MBR = toInternalMBR(m)
	return f
}

// WithText attaches a text label's payload to a Feature being written
// as TEXT.
func (f Feature) WithText(text TextParams) Feature {
	f.inner.Text = &codec.TextParams{
		String: text.String, HJustify: text.HJustify, LineSpacing: text.LineSpacing,
		Decoration: text.Decoration, AngleTenths: text.AngleTenths, FontStyle: text.FontStyle,
		FGColor: text.FGColor, BGColor: text.BGColor,
		ArrowEnd: codec.Point{X: text.ArrowEnd.X, Y: text.ArrowEnd.Y}, Height: text.Height,
	}
	return f
}

// Text returns the feature's decoded text payload and whether one is
// present (only set for TEXT features).
func (f Feature) Text() (TextParams, bool) {
	if f.inner.Text == nil {
		return TextParams{}, false
	}
	t := f.inner.Text
	return TextParams{
		String: t.String, HJustify: t.HJustify, LineSpacing: t.LineSpacing,
		Decoration: t.Decoration, AngleTenths: t.AngleTenths, FontStyle: t.FontStyle,
		FGColor: t.FGColor, BGColor: t.BGColor,
		ArrowEnd: Point{t.ArrowEnd.X, t.ArrowEnd.Y}, Height: t.Height,
		Anchor: Point{t.Anchor.X, t.Anchor.Y},
	}, true
}

// TextParams mirrors codec.TextParams for the public API.
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
	Anchor      Point
}
