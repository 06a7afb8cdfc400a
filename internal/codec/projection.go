package codec

import "math"

// ProjectionRecord is the fixed-layout projection-parameter record.
// Its contents are opaque to the codec beyond read/write: CRS and
// projection modeling are out of scope, so the core persists this
// record verbatim rather than interpreting it.
type ProjectionRecord struct {
	ProjID      byte
	EllipsoidID byte
	UnitsID     byte

	DatumShiftX float64
	DatumShiftY float64
	DatumShiftZ float64
	Params      [6]float64
}

// projectionRecordSize is the on-disk byte width of a ProjectionRecord:
// 4 header bytes (3 ids + 1 pad) plus 9 float64 fields.
const projectionRecordSize = 4 + 9*8

// ReadProjectionRecord reads a ProjectionRecord at the cursor's current
// position, using the verbatim layout: byte projId; byte ellipsoidId;
// byte unitsId; byte pad; f64 datumShiftX; f64 datumShiftY; f64
// datumShiftZ; f64 params[6].
func ReadProjectionRecord(c *Cursor) (ProjectionRecord, error) {
	var rec ProjectionRecord

	projID, err := c.ReadByte()
	if err != nil {
		return rec, err
	}
	ellipsoidID, err := c.ReadByte()
	if err != nil {
		return rec, err
	}
	unitsID, err := c.ReadByte()
	if err != nil {
		return rec, err
	}
	if _, err := c.ReadByte(); err != nil { // pad
		return rec, err
	}

	rec.ProjID = projID
	rec.EllipsoidID = ellipsoidID
	rec.UnitsID = unitsID

	if rec.DatumShiftX, err = readFloat64(c); err != nil {
		return rec, err
	}
	if rec.DatumShiftY, err = readFloat64(c); err != nil {
		return rec, err
	}
	if rec.DatumShiftZ, err = readFloat64(c); err != nil {
		return rec, err
	}
	for i := range rec.Params {
		if rec.Params[i], err = readFloat64(c); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

// WriteProjectionRecord writes rec at the cursor's current position in
// the verbatim layout ReadProjectionRecord expects back.
func WriteProjectionRecord(c *Cursor, rec ProjectionRecord) error {
	if err := c.WriteByte(rec.ProjID); err != nil {
		return err
	}
	if err := c.WriteByte(rec.EllipsoidID); err != nil {
		return err
	}
	if err := c.WriteByte(rec.UnitsID); err != nil {
		return err
	}
	if err := c.WriteByte(0); err != nil { // pad
		return err
	}
	if err := writeFloat64(c, rec.DatumShiftX); err != nil {
		return err
	}
	if err := writeFloat64(c, rec.DatumShiftY); err != nil {
		return err
	}
	if err := writeFloat64(c, rec.DatumShiftZ); err != nil {
		return err
	}
	for _, p := range rec.Params {
		if err := writeFloat64(c, p); err != nil {
			return err
		}
	}
	return nil
}

func readFloat64(c *Cursor) (float64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(c.order.Uint64(b)), nil
}

func writeFloat64(c *Cursor, v float64) error {
	buf := make([]byte, 8)
	c.order.PutUint64(buf, math.Float64bits(v))
	return c.WriteBytes(buf)
}
