package codec

import "math"

// tenthsToRadians converts tenths-of-a-degree angle units, as stored on disk,
// to radians.
func tenthsToRadians(tenths int16) float64 {
	return float64(tenths) / 10 * math.Pi / 180
}

// radiansToTenths converts radians back to signed tenths of a degree,
// rounding to the nearest tenth.
func radiansToTenths(rad float64) int16 {
	deg := rad * 180 / math.Pi * 10
	return int16(math.Round(deg))
}

// RasterizeEllipse materializes the full boundary of the ellipse
// centered at (cx, cy) with radii (rx, ry) as a closed ring of 180
// vertices, 45 per quadrant.
func RasterizeEllipse(cx, cy, rx, ry float64) []Point {
	return rasterizeArcRing(cx, cy, rx, ry, 0, 2*math.Pi, 180)
}

// RasterizeRoundRectCorner materializes one corner of a rounded
// rectangle as an open run of 45 vertices (one quadrant of the full
// 180-vertex ellipse boundary), sweeping from α to β radians around
// the corner's own center (cx, cy) with the clamped corner radius
// applied on both axes.
func RasterizeRoundRectCorner(cx, cy, radius, alpha, beta float64) []Point {
	return rasterizeArcRing(cx, cy, radius, radius, alpha, beta, 45)
}

// RasterizeArc materializes a circular (or elliptical) arc centered at
// (cx, cy) with radii (rx, ry), sweeping from α to β radians, at a
// vertex density of n = max(2, ceil(|β-α|/2°)+1), wrapping β forward
// by a full turn if it is less than α.
func RasterizeArc(cx, cy, rx, ry, alpha, beta float64) []Point {
	if beta < alpha {
		beta += 2 * math.Pi
	}
	const twoDegrees = 2 * math.Pi / 180
	// Round off float noise before ceil: a 30° span divides to
	// 15.000000000000002, which must still count as 15 steps.
	steps := math.Round(math.Abs(beta-alpha)/twoDegrees*1e9) / 1e9
	n := int(math.Ceil(steps)) + 1
	if n < 2 {
		n = 2
	}
	return rasterizeArcRing(cx, cy, rx, ry, alpha, beta, n)
}

// rasterizeArcRing samples n vertices of theta in [alpha, beta]
// inclusive around the ellipse centered at (cx, cy) with radii (rx,
// ry). Closure (repeating the first vertex at the end) is the
// caller's responsibility for ring-shaped users (ellipse, rounded-rect
// corner); RasterizeArc's own callers never need it since an arc is a
// LineString, not a ring.
func rasterizeArcRing(cx, cy, rx, ry, alpha, beta float64, n int) []Point {
	pts := make([]Point, n)
	span := beta - alpha
	for i := 0; i < n; i++ {
		t := alpha + span*float64(i)/float64(n-1)
		pts[i] = Point{X: cx + rx*math.Cos(t), Y: cy + ry*math.Sin(t)}
	}
	return pts
}

// ClosePolygonRing appends a copy of the ring's first vertex if the
// ring isn't already closed, so rasterized rectangles and ellipses
// always come out as closed rings.
func ClosePolygonRing(ring []Point) []Point {
	if len(ring) == 0 || ring[0] == ring[len(ring)-1] {
		return ring
	}
	closed := make([]Point, len(ring)+1)
	copy(closed, ring)
	closed[len(ring)] = ring[0]
	return closed
}

// mirrorAngleTenths applies the angle-mirror involution ARC alone requires:
// angles are reflected across the X-axis on both read and write, i.e.
// stored = 180° − logical (mod 360°). Written as 1800-tenths rather
// than a mod-3600 reduction into [0,3600): for logical angles above
// 180° this yields a negative on-disk value instead of the equivalent
// positive one, which is a different on-disk representation of the
// same angle, not a different angle — RasterizeArc/tenthsToRadians
// both treat negative tenths as the expected negative-degree rotation,
// and the involution (mirroring twice returns the input exactly) holds
// either way.
func mirrorAngleTenths(tenths int16) int16 {
	return int16(1800 - int32(tenths))
}
