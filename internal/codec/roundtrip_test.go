package codec

import (
	"math"
	"testing"

	"github.com/beetlebugorg/tabgeo/internal/endian"
)

func identityTransform() Transform {
	return NewTransform(Affine{ScaleX: 1, ScaleY: 1, TX: 0, TY: 0})
}

func newContext() (*Context, *Cursor) {
	objStream := NewMemStream()
	coordStream := NewMemStream()
	objCur := NewCursor(objStream, endian.Little())
	coordCur := NewCursor(coordStream, endian.Little())
	ctx := &Context{
		Obj:       objCur,
		Coord:     NewCoordStream(coordCur),
		Transform: identityTransform(),
		Styles:    NewPool(),
	}
	return ctx, objCur
}

// Scenario 1: SYMBOL round-trip.
func TestScenarioSymbolRoundTrip(t *testing.T) {
	ctx, objCur := newContext()
	symIdx, err := ctx.Styles.InternSymbol(SymbolDef{ShapeNo: 35, PointSize: 12, Color: 0xff0000})
	if err != nil {
		t.Fatal(err)
	}
	if symIdx != 1 {
		t.Fatalf("expected first symbol at index 1, got %d", symIdx)
	}

	f := Feature{
		Tag:      TagSymbol,
		Geometry: Geometry{Kind: KindPoint, Point: Point{X: 10, Y: 20}},
		Styles:   StyleRefs{Symbol: symIdx},
	}
	if err := WriteFeature(ctx, f); err != nil {
		t.Fatal(err)
	}
	if objCur.Offset() != 9 { // tag not included; header bytes + IntCoord(8) + byte(1)
		t.Fatalf("expected 9 header bytes written, got %d", objCur.Offset())
	}

	readCtx, _ := newContext()
	readCtx.Obj = NewCursor(objCur.stream, endian.Little())
	got, err := ReadFeature(readCtx, TagSymbol)
	if err != nil {
		t.Fatal(err)
	}
	if got.Geometry.Point != (Point{X: 10, Y: 20}) {
		t.Fatalf("got %+v", got.Geometry.Point)
	}
	if got.Styles.Symbol != 1 {
		t.Fatalf("expected decoded symbol index 1, got %d", got.Styles.Symbol)
	}
}

// Scenario 2: LINE.
func TestScenarioLine(t *testing.T) {
	ctx, objCur := newContext()
	f := Feature{
		Tag:      TagLine,
		Geometry: Geometry{Kind: KindLineString, Vertices: []Point{{0, 0}, {100, 50}}},
		Styles:   StyleRefs{Pen: 1},
	}
	if err := WriteFeature(ctx, f); err != nil {
		t.Fatal(err)
	}

	readCtx, _ := newContext()
	readCtx.Obj = NewCursor(objCur.stream, endian.Little())
	got, err := ReadFeature(readCtx, TagLine)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{0, 0}, {100, 50}}
	for i := range want {
		if got.Geometry.Vertices[i] != want[i] {
			t.Fatalf("vertex %d: got %+v, want %+v", i, got.Geometry.Vertices[i], want[i])
		}
	}
}

// Scenario 3: PLINE, 4 vertices, smooth=true.
func TestScenarioPlineSmooth(t *testing.T) {
	ctx, objCur := newContext()
	f := Feature{
		Tag: TagPline,
		Geometry: Geometry{Kind: KindLineString, Vertices: []Point{
			{0, 0}, {1, 0}, {1, 1}, {2, 1},
		}},
		Styles: StyleRefs{Pen: 1},
		Smooth: true,
	}
	if err := WriteFeature(ctx, f); err != nil {
		t.Fatal(err)
	}

	readObj := NewCursor(objCur.stream, endian.Little())
	h, err := readMultiVertexHeader(readObj, false, false)
	if err != nil {
		t.Fatal(err)
	}
	dataSize := h.coordDataSize &^ plineSmoothBit
	if dataSize != 32 {
		t.Fatalf("expected coordDataSize payload 32, got %d", dataSize)
	}
	if h.coordDataSize&plineSmoothBit == 0 {
		t.Fatal("expected smooth bit set")
	}

	readCtx, _ := newContext()
	readCtx.Obj = NewCursor(objCur.stream, endian.Little())
	readCtx.Coord = NewCoordStream(NewCursor(ctx.Coord.cur.stream, endian.Little()))
	got, err := ReadFeature(readCtx, TagPline)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Smooth {
		t.Fatal("expected smooth flag recovered as true")
	}
	if len(got.Geometry.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(got.Geometry.Vertices))
	}
}

// Scenario 4: REGION with one hole.
func TestScenarioRegionWithHole(t *testing.T) {
	ctx, objCur := newContext()
	exterior := []Point{{0, 0}, {10, 0}, {10, 10}, {5, 12}, {0, 10}}
	hole := []Point{{2, 2}, {4, 2}, {4, 4}, {2, 4}}
	f := Feature{
		Tag:      TagRegion,
		Geometry: Geometry{Kind: KindPolygon, Rings: [][]Point{exterior, hole}},
		Styles:   StyleRefs{Pen: 1, Brush: 2},
	}
	if err := WriteFeature(ctx, f); err != nil {
		t.Fatal(err)
	}

	readObj := NewCursor(objCur.stream, endian.Little())
	h, err := readMultiVertexHeader(readObj, false, true)
	if err != nil {
		t.Fatal(err)
	}
	if h.numSections != 2 {
		t.Fatalf("expected 2 sections, got %d", h.numSections)
	}

	coordCur := NewCursor(ctx.Coord.cur.stream, endian.Little())
	sh0, err := readSectionHeader(coordCur)
	if err != nil {
		t.Fatal(err)
	}
	if sh0.numVertices != 5 {
		t.Fatalf("expected section 0 to have 5 vertices, got %d", sh0.numVertices)
	}
	sh1, err := readSectionHeader(coordCur)
	if err != nil {
		t.Fatal(err)
	}
	if sh1.numVertices != 4 {
		t.Fatalf("expected section 1 to have 4 vertices, got %d", sh1.numVertices)
	}
	if sh1.vertexOffset != 5 {
		t.Fatalf("expected section 1 vertexOffset 5, got %d", sh1.vertexOffset)
	}

	readCtx, _ := newContext()
	readCtx.Obj = NewCursor(objCur.stream, endian.Little())
	readCtx.Coord = NewCoordStream(NewCursor(ctx.Coord.cur.stream, endian.Little()))
	got, err := ReadFeature(readCtx, TagRegion)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Geometry.Rings) != 2 {
		t.Fatalf("expected 2 rings, got %d", len(got.Geometry.Rings))
	}
	if len(got.Geometry.Rings[0]) != 5 || len(got.Geometry.Rings[1]) != 4 {
		t.Fatalf("ring lengths got %d/%d", len(got.Geometry.Rings[0]), len(got.Geometry.Rings[1]))
	}
}

// Scenario 5: ARC.
func TestScenarioArc(t *testing.T) {
	ctx, objCur := newContext()
	start := 30 * math.Pi / 180
	end := 60 * math.Pi / 180
	f := Feature{
		Tag: TagArc,
		Arc: &ArcParams{CenterX: 0, CenterY: 0, RadiusX: 10, RadiusY: 5, StartAngle: start, EndAngle: end},
		MBR: MBR{MinX: -10, MinY: -5, MaxX: 10, MaxY: 5},
		Styles: StyleRefs{Pen: 1},
	}
	if err := WriteFeature(ctx, f); err != nil {
		t.Fatal(err)
	}

	readObj := NewCursor(objCur.stream, endian.Little())
	endTenths, err := readObj.ReadInt16()
	if err != nil {
		t.Fatal(err)
	}
	startTenths, err := readObj.ReadInt16()
	if err != nil {
		t.Fatal(err)
	}
	if endTenths != 1200 {
		t.Fatalf("expected endAngle*10=1200, got %d", endTenths)
	}
	if startTenths != 1500 {
		t.Fatalf("expected startAngle*10=1500, got %d", startTenths)
	}

	readCtx, _ := newContext()
	readCtx.Obj = NewCursor(objCur.stream, endian.Little())
	got, err := ReadFeature(readCtx, TagArc)
	if err != nil {
		t.Fatal(err)
	}
	gotStartDeg := got.Arc.StartAngle * 180 / math.Pi
	gotEndDeg := got.Arc.EndAngle * 180 / math.Pi
	if math.Abs(gotStartDeg-30) > 1e-6 {
		t.Fatalf("expected recovered start angle 30deg, got %v", gotStartDeg)
	}
	if math.Abs(gotEndDeg-60) > 1e-6 {
		t.Fatalf("expected recovered end angle 60deg, got %v", gotEndDeg)
	}
	if len(got.Geometry.Vertices) != 16 {
		t.Fatalf("expected 16 vertices, got %d", len(got.Geometry.Vertices))
	}
}

// Scenario 6: TEXT rotated 90 degrees.
func TestScenarioTextRotated90(t *testing.T) {
	ctx, objCur := newContext()
	f := Feature{
		Tag: TagText,
		MBR: MBR{MinX: -2, MinY: 0, MaxX: 0, MaxY: 5},
		Text: &TextParams{
			String: "Hi", AngleTenths: 900, Height: 2,
		},
		Styles: StyleRefs{Pen: 1, Font: 1},
	}
	if err := WriteFeature(ctx, f); err != nil {
		t.Fatal(err)
	}

	readCtx, _ := newContext()
	readCtx.Obj = NewCursor(objCur.stream, endian.Little())
	readCtx.Coord = NewCoordStream(NewCursor(ctx.Coord.cur.stream, endian.Little()))
	got, err := ReadFeature(readCtx, TagText)
	if err != nil {
		t.Fatal(err)
	}
	if got.Text.String != "Hi" {
		t.Fatalf("got string %q", got.Text.String)
	}
	anchor := got.Text.Anchor
	if math.Abs(anchor.X-0) > 1e-6 || math.Abs(anchor.Y-0) > 1e-6 {
		t.Fatalf("expected recovered anchor (0,0), got %+v", anchor)
	}
}

// Property: angle-mirror involution applied twice is identity.
func TestMirrorInvolutionProperty(t *testing.T) {
	for deg := 0; deg < 360; deg += 7 {
		tenths := int16(deg * 10)
		if got := mirrorAngleTenths(mirrorAngleTenths(tenths)); got != tenths {
			t.Fatalf("mirror involution failed for %d tenths: got %d", tenths, got)
		}
	}
}

// Property: worldToInt(intToWorld(i,j)) = (i,j) for identity-ish affines.
func TestTransformRoundTripProperty(t *testing.T) {
	tr := NewTransform(Affine{ScaleX: 2.5, ScaleY: 2.5, TX: 100, TY: -50})
	cases := []struct{ i, j int32 }{
		{0, 0}, {1000, -2000}, {math.MaxInt32 / 4, math.MinInt32 / 4},
	}
	for _, c := range cases {
		x, y := tr.IntToWorld(c.i, c.j)
		gotI, gotJ, err := tr.WorldToInt(x, y)
		if err != nil {
			t.Fatal(err)
		}
		if gotI != c.i || gotJ != c.j {
			t.Fatalf("round trip mismatch: got (%d,%d), want (%d,%d)", gotI, gotJ, c.i, c.j)
		}
	}
}

// Property: intern(x) called twice on byte-equal payloads returns the
// same index; any byte difference gets a fresh index.
func TestPoolInternIdempotentProperty(t *testing.T) {
	p := NewPool()
	defs := []SymbolDef{
		{ShapeNo: 1, PointSize: 10, Color: 1},
		{ShapeNo: 1, PointSize: 10, Color: 1},
		{ShapeNo: 2, PointSize: 10, Color: 1},
	}
	i0, _ := p.InternSymbol(defs[0])
	i1, _ := p.InternSymbol(defs[1])
	i2, _ := p.InternSymbol(defs[2])
	if i0 != i1 {
		t.Fatalf("expected byte-equal payloads to share an index, got %d and %d", i0, i1)
	}
	if i2 == i0 {
		t.Fatal("expected a differing payload to get a fresh index")
	}
}
