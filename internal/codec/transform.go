package codec

import "math"

// Affine is the header's world↔integer coordinate transform:
// storage = world*scale + translate, applied independently per axis.
// It is initialized once at file creation and is immutable thereafter.
type Affine struct {
	ScaleX, ScaleY float64
	TX, TY         float64
}

// Transform is the pure, stateless bidirectional affine between world
// (float64) and storage (int32) coordinates.
//
// Transform holds no state beyond the header's affine; every method is
// a pure function of its inputs.
type Transform struct {
	affine Affine
}

// NewTransform builds a Transform from a header affine.
func NewTransform(a Affine) Transform {
	return Transform{affine: a}
}

// Affine returns the underlying affine.
func (t Transform) Affine() Affine {
	return t.affine
}

// WorldToInt converts a world coordinate to its 32-bit signed integer
// storage form. Returns ErrCoordinateOverflow if the result does not
// fit in int32.
func (t Transform) WorldToInt(x, y float64) (int32, int32, error) {
	fi := x*t.affine.ScaleX + t.affine.TX
	fj := y*t.affine.ScaleY + t.affine.TY
	i, err := toInt32(fi, x, y)
	if err != nil {
		return 0, 0, err
	}
	j, err := toInt32(fj, x, y)
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

// IntToWorld converts a 32-bit signed integer storage coordinate back
// to world space. Inverse of WorldToInt for any (i, j) that WorldToInt
// could have produced.
func (t Transform) IntToWorld(i, j int32) (float64, float64) {
	x := (float64(i) - t.affine.TX) / t.affine.ScaleX
	y := (float64(j) - t.affine.TY) / t.affine.ScaleY
	return x, y
}

// WorldToIntDist converts a world-space distance (dx, dy) to storage
// units, applying only the scale — never the translation.
func (t Transform) WorldToIntDist(dx, dy float64) (int32, int32, error) {
	fi := dx * t.affine.ScaleX
	fj := dy * t.affine.ScaleY
	i, err := toInt32(fi, dx, dy)
	if err != nil {
		return 0, 0, err
	}
	j, err := toInt32(fj, dx, dy)
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

// IntToWorldDist converts a storage-unit distance back to world space,
// applying only the scale.
func (t Transform) IntToWorldDist(di, dj int32) (float64, float64) {
	return float64(di) / t.affine.ScaleX, float64(dj) / t.affine.ScaleY
}

func toInt32(f, x, y float64) (int32, error) {
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, &ErrCoordinateOverflow{X: x, Y: y}
	}
	return int32(math.Round(f)), nil
}
