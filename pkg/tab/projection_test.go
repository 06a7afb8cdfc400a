package tab

import "testing"

func TestProjectionRecordConversionRoundTrip(t *testing.T) {
	rec := ProjectionRecord{
		ProjID: 1, EllipsoidID: 2, UnitsID: 3,
		DatumShiftX: 1.5, DatumShiftY: -2.5, DatumShiftZ: 0,
		Params: [6]float64{1, 2, 3, 4, 5, 6},
	}
	got := fromInternalProjection(rec.toInternal())
	if got != rec {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
}
