package codec

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRasterizeEllipseHas180Vertices(t *testing.T) {
	pts := RasterizeEllipse(0, 0, 10, 5)
	if len(pts) != 180 {
		t.Fatalf("got %d vertices, want 180", len(pts))
	}
	if !almostEqual(pts[0].X, 10) || !almostEqual(pts[0].Y, 0) {
		t.Fatalf("expected first vertex at (rx, 0), got %+v", pts[0])
	}
}

func TestRasterizeRoundRectCornerHas45Vertices(t *testing.T) {
	pts := RasterizeRoundRectCorner(0, 0, 3, 0, math.Pi/2)
	if len(pts) != 45 {
		t.Fatalf("got %d vertices, want 45", len(pts))
	}
}

func TestRasterizeArcVertexCount(t *testing.T) {
	// Worked example: 30 degree span => ceil(30/2)+1 = 16.
	pts := RasterizeArc(0, 0, 10, 5, 30*math.Pi/180, 60*math.Pi/180)
	if len(pts) != 16 {
		t.Fatalf("got %d vertices, want 16", len(pts))
	}
}

func TestRasterizeArcWrapsWhenBetaBeforeAlpha(t *testing.T) {
	pts := RasterizeArc(0, 0, 1, 1, 350*math.Pi/180, 10*math.Pi/180)
	if len(pts) < 2 {
		t.Fatal("expected a wrapped arc to still produce at least 2 vertices")
	}
	last := pts[len(pts)-1]
	wantX, wantY := math.Cos(10*math.Pi/180), math.Sin(10*math.Pi/180)
	if !almostEqual(last.X, wantX) || !almostEqual(last.Y, wantY) {
		t.Fatalf("expected wrapped arc to end at 10 degrees, got %+v", last)
	}
}

func TestClosePolygonRing(t *testing.T) {
	ring := []Point{{0, 0}, {1, 0}, {1, 1}}
	closed := ClosePolygonRing(ring)
	if len(closed) != 4 || closed[3] != ring[0] {
		t.Fatalf("expected ring to be closed, got %+v", closed)
	}
	// Already-closed ring is returned unchanged.
	alreadyClosed := []Point{{0, 0}, {1, 0}, {0, 0}}
	if got := ClosePolygonRing(alreadyClosed); len(got) != 3 {
		t.Fatalf("expected already-closed ring to pass through, got %+v", got)
	}
}

func TestMirrorAngleTenthsMatchesWorkedExample(t *testing.T) {
	// worked example: start=30 deg, end=60 deg =>
	// on-disk startAngle*10=1500, endAngle*10=1200.
	if got := mirrorAngleTenths(300); got != 1500 {
		t.Fatalf("mirror(30deg) got %d, want 1500", got)
	}
	if got := mirrorAngleTenths(600); got != 1200 {
		t.Fatalf("mirror(60deg) got %d, want 1200", got)
	}
	// Involution: mirroring twice returns the original.
	if got := mirrorAngleTenths(mirrorAngleTenths(300)); got != 300 {
		t.Fatalf("expected involution, got %d", got)
	}
}
