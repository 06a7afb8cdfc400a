package codec

import (
	"testing"

	"github.com/beetlebugorg/tabgeo/internal/endian"
)

func TestCursorScalarRoundTrip(t *testing.T) {
	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	if err := w.WriteByte(0x2b); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt16(-1234); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteInt32(-123456789); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBytes([]byte("hi")); err != nil {
		t.Fatal(err)
	}

	r := NewCursor(s, endian.Little())
	b, err := r.ReadByte()
	if err != nil || b != 0x2b {
		t.Fatalf("ReadByte: %v, %v", b, err)
	}
	i16, err := r.ReadInt16()
	if err != nil || i16 != -1234 {
		t.Fatalf("ReadInt16: %v, %v", i16, err)
	}
	i32, err := r.ReadInt32()
	if err != nil || i32 != -123456789 {
		t.Fatalf("ReadInt32: %v, %v", i32, err)
	}
	raw, err := r.ReadBytes(2)
	if err != nil || string(raw) != "hi" {
		t.Fatalf("ReadBytes: %q, %v", raw, err)
	}
}

func TestCursorTruncated(t *testing.T) {
	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	_ = w.WriteByte(1)

	r := NewCursor(s, endian.Little())
	_, _ = r.ReadByte()
	_, err := r.ReadInt32()
	if err == nil {
		t.Fatal("expected truncated record error")
	}
	if _, ok := err.(*ErrTruncatedRecord); !ok {
		t.Fatalf("expected *ErrTruncatedRecord, got %T", err)
	}
}

func TestCursorCompressedCoord(t *testing.T) {
	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	w.SetCompressedOrigin(1000, 2000)
	if err := w.WriteIntCoord(IntPoint{1010, 1990}, true); err != nil {
		t.Fatal(err)
	}

	r := NewCursor(s, endian.Little())
	r.SetCompressedOrigin(1000, 2000)
	p, err := r.ReadIntCoord(true)
	if err != nil {
		t.Fatal(err)
	}
	if p != (IntPoint{1010, 1990}) {
		t.Fatalf("got %+v", p)
	}
}

func TestCursorUncompressedCoord(t *testing.T) {
	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	pts := []IntPoint{{0, 0}, {100, 50}, {-5, 1000000}}
	if err := w.WriteIntCoords(pts, false); err != nil {
		t.Fatal(err)
	}

	r := NewCursor(s, endian.Little())
	got, err := r.ReadIntCoords(false, len(pts))
	if err != nil {
		t.Fatal(err)
	}
	for i := range pts {
		if got[i] != pts[i] {
			t.Errorf("vertex %d: got %+v, want %+v", i, got[i], pts[i])
		}
	}
}

func TestCursorFeatureMBRAndSize(t *testing.T) {
	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	w.StartNewFeature()
	if err := w.WriteByte(0x07); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteIntCoords([]IntPoint{{0, 0}, {10, -5}, {20, 30}}, false); err != nil {
		t.Fatal(err)
	}
	mbr, ok := w.FeatureMBR()
	if !ok {
		t.Fatal("expected MBR to be set")
	}
	want := IntMBR{MinX: 0, MinY: -5, MaxX: 20, MaxY: 30}
	if mbr != want {
		t.Fatalf("got %+v, want %+v", mbr, want)
	}
	if got := w.FeatureDataSize(); got != 1+3*8 {
		t.Fatalf("FeatureDataSize got %d, want %d", got, 1+3*8)
	}
}

func TestCursorGotoByteRel(t *testing.T) {
	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	_ = w.WriteInt32(1)
	_ = w.WriteInt32(2)
	_ = w.WriteInt32(3)

	r := NewCursor(s, endian.Little())
	if err := r.GotoByteRel(4); err != nil {
		t.Fatal(err)
	}
	v, err := r.ReadInt32()
	if err != nil || v != 2 {
		t.Fatalf("got %v, %v", v, err)
	}
	if err := r.GotoByteRel(-1000); err == nil {
		t.Fatal("expected fault seeking before start")
	}
}

func TestCursorRequireCommitted(t *testing.T) {
	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	w.StartNewFeature()
	_ = w.WriteInt32(42)
	w.StartNewFeature() // commits [0,4)

	r := NewCursor(s, endian.Little())
	r.GotoByte(0)
	if err := r.RequireCommitted(); err != nil {
		t.Fatalf("expected offset 0 to be committed: %v", err)
	}
	r.GotoByte(100)
	if err := r.RequireCommitted(); err == nil {
		t.Fatal("expected ErrCoordBlockFault for uncommitted offset")
	}
}
