package codec

import (
	"testing"

	"github.com/beetlebugorg/tabgeo/internal/endian"
)

func TestProjectionRecordRoundTrip(t *testing.T) {
	rec := ProjectionRecord{
		ProjID:      8,
		EllipsoidID: 62,
		UnitsID:     7,
		DatumShiftX: 1.5,
		DatumShiftY: -2.25,
		DatumShiftZ: 0,
		Params:      [6]float64{1, 2, 3, 4, 5, 6},
	}

	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	if err := WriteProjectionRecord(w, rec); err != nil {
		t.Fatal(err)
	}
	if w.Offset() != projectionRecordSize {
		t.Fatalf("wrote %d bytes, want %d", w.Offset(), projectionRecordSize)
	}

	r := NewCursor(s, endian.Little())
	got, err := ReadProjectionRecord(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != rec {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
}

func TestProjectionRecordTruncated(t *testing.T) {
	s := NewMemStream()
	w := NewCursor(s, endian.Little())
	_ = w.WriteByte(1)

	r := NewCursor(s, endian.Little())
	if _, err := ReadProjectionRecord(r); err == nil {
		t.Fatal("expected truncated record error")
	}
}
