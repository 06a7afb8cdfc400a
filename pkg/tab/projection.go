package tab

import "github.com/beetlebugorg/tabgeo/internal/codec"

// ProjectionRecord is the fixed-layout projection-parameter record
// persisted verbatim at the end of the map file. Its contents are
// opaque to this package: CRS and projection modeling are out of
// scope.
type ProjectionRecord struct {
	ProjID      byte
	EllipsoidID byte
	UnitsID     byte
	DatumShiftX float64
	DatumShiftY float64
	DatumShiftZ float64
	Params      [6]float64
}

func (r ProjectionRecord) toInternal() codec.ProjectionRecord {
	return codec.ProjectionRecord{
		ProjID: r.ProjID, EllipsoidID: r.EllipsoidID, UnitsID: r.UnitsID,
		DatumShiftX: r.DatumShiftX, DatumShiftY: r.DatumShiftY, DatumShiftZ: r.DatumShiftZ,
		Params: r.Params,
	}
}

func fromInternalProjection(r codec.ProjectionRecord) ProjectionRecord {
	return ProjectionRecord{
		ProjID: r.ProjID, EllipsoidID: r.EllipsoidID, UnitsID: r.UnitsID,
		DatumShiftX: r.DatumShiftX, DatumShiftY: r.DatumShiftY, DatumShiftZ: r.DatumShiftZ,
		Params: r.Params,
	}
}
