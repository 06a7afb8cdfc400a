package tab

import (
	"testing"

	"github.com/beetlebugorg/tabgeo/internal/codec"
	"github.com/beetlebugorg/tabgeo/internal/compress"
)

func newTestHandle(t *testing.T) *FileHandle {
	t.Helper()
	header := NewHeader(codec.Affine{ScaleX: 1, ScaleY: 1}, toInternalMBR(MBR{}), nil)
	h, err := NewFileHandle(header, DefaultCodecOptions(), codec.NewMemStream(), codec.NewMemStream())
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestFileHandleSymbolRoundTrip(t *testing.T) {
	h := newTestHandle(t)
	symIdx, err := h.Styles().InternSymbol(SymbolDef{ShapeNo: 35, PointSize: 12, Color: 0xff0000})
	if err != nil {
		t.Fatal(err)
	}

	f := NewFeature(NewPointGeometry(Point{10, 20}), StyleRefs{Symbol: symIdx})
	f, err = ClassifyFeature(f, ClassPoint, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.WriteFeature(f); err != nil {
		t.Fatal(err)
	}

	h.GotoObjectByte(0)
	got, err := h.ReadFeature(byte(codec.TagSymbol))
	if err != nil {
		t.Fatal(err)
	}
	if got.Geometry().Point() != (Point{10, 20}) {
		t.Fatalf("got %+v", got.Geometry().Point())
	}
	if got.Styles().Symbol != symIdx {
		t.Fatalf("got symbol index %d, want %d", got.Styles().Symbol, symIdx)
	}
}

func TestFileHandleStats(t *testing.T) {
	h := newTestHandle(t)
	if _, err := h.Styles().InternPen(PenDef{Width: 1}); err != nil {
		t.Fatal(err)
	}
	f := NewFeature(NewLineStringGeometry([]Point{{0, 0}, {1, 1}}), StyleRefs{Pen: 1})
	f, err := ClassifyFeature(f, ClassAuto, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.WriteFeature(f); err != nil {
		t.Fatal(err)
	}
	stats := h.Stats()
	if stats.PenCount != 1 {
		t.Fatalf("expected 1 pen, got %d", stats.PenCount)
	}
	if stats.ObjectBytes == 0 {
		t.Fatal("expected non-zero object bytes written")
	}
}

func TestFileHandleProjectionRoundTrip(t *testing.T) {
	h := newTestHandle(t)
	rec := ProjectionRecord{ProjID: 8, EllipsoidID: 62, UnitsID: 7, Params: [6]float64{1, 2, 3, 4, 5, 6}}
	h.SetProjection(rec)
	if err := h.WriteProjection(); err != nil {
		t.Fatal(err)
	}
	h.GotoObjectByte(0)
	got, err := h.ReadProjection()
	if err != nil {
		t.Fatal(err)
	}
	if got != rec {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
}

func TestFileHandlePlineRoundTripWithBlockCompression(t *testing.T) {
	header := NewHeader(codec.Affine{ScaleX: 1, ScaleY: 1}, toInternalMBR(MBR{}), nil)
	opts := DefaultCodecOptions()
	opts.Compression = compress.LZ4
	h, err := NewFileHandle(header, opts, codec.NewMemStream(), codec.NewMemStream())
	if err != nil {
		t.Fatal(err)
	}

	f := NewFeature(NewLineStringGeometry([]Point{{0, 0}, {10, 0}, {10, 10}}), StyleRefs{Pen: 1})
	f, err = ClassifyFeature(f, ClassAuto, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.WriteFeature(f); err != nil {
		t.Fatal(err)
	}

	stats := h.Stats()
	if stats.CoordDigest == 0 {
		t.Fatal("expected a non-zero coordinate-stream digest after writing a PLINE")
	}

	h.GotoObjectByte(0)
	got, err := h.ReadFeature(byte(codec.TagPline))
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{0, 0}, {10, 0}, {10, 10}}
	if len(got.Geometry().Vertices()) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(got.Geometry().Vertices()), len(want))
	}
	for i, p := range want {
		if got.Geometry().Vertices()[i] != p {
			t.Fatalf("vertex %d: got %+v, want %+v", i, got.Geometry().Vertices()[i], p)
		}
	}
}

func TestClassifyFeatureCompressed(t *testing.T) {
	f := NewFeature(NewPointGeometry(Point{1, 2}), StyleRefs{})
	classified, err := ClassifyFeature(f, ClassPoint, true)
	if err != nil {
		t.Fatal(err)
	}
	if classified.inner.Tag != codec.TagSymbolC {
		t.Fatalf("expected compressed symbol tag, got %v", classified.inner.Tag)
	}
}
