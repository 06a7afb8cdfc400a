package codec

import "testing"

func TestPoolInternDedups(t *testing.T) {
	p := NewPool()
	pen := PenDef{Width: 1, Pattern: 2, Style: 0, Color: 0xff0000}

	i1, err := p.InternPen(pen)
	if err != nil {
		t.Fatal(err)
	}
	i2, err := p.InternPen(pen)
	if err != nil {
		t.Fatal(err)
	}
	if i1 != i2 {
		t.Fatalf("expected byte-equal pens to share an index, got %d and %d", i1, i2)
	}
	if p.PenCount() != 1 {
		t.Fatalf("expected 1 distinct pen, got %d", p.PenCount())
	}

	other := pen
	other.Color = 0x00ff00
	i3, err := p.InternPen(other)
	if err != nil {
		t.Fatal(err)
	}
	if i3 == i1 {
		t.Fatal("expected a distinct definition to get a distinct index")
	}
}

func TestPoolSubPoolsAreDisjoint(t *testing.T) {
	p := NewPool()
	if _, err := p.InternPen(PenDef{Width: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.InternBrush(BrushDef{Pattern: 1}); err != nil {
		t.Fatal(err)
	}

	if _, err := p.LookupBrush(1); err != nil {
		t.Fatalf("expected brush index 1 to resolve in the brush sub-pool: %v", err)
	}
	if _, err := p.LookupFont(1); err == nil {
		t.Fatal("expected font sub-pool to reject an index that only the brush pool has filled")
	}
}

func TestPoolLookupOutOfRange(t *testing.T) {
	p := NewPool()
	if _, err := p.LookupSymbol(1); err == nil {
		t.Fatal("expected ErrStyleIndexOutOfRange for an empty sub-pool")
	}
	if _, err := p.InternSymbol(SymbolDef{ShapeNo: 32, PointSize: 12, Color: 0x123456}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.LookupSymbol(0); err == nil {
		t.Fatal("expected index 0 to be rejected, it is reserved for \"no style\"")
	}
	if _, err := p.LookupSymbol(2); err == nil {
		t.Fatal("expected out-of-range index to be rejected")
	}
}

func TestPoolFontRoundTrip(t *testing.T) {
	p := NewPool()
	idx, err := p.InternFont(FontDef{Name: "Arial"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.LookupFont(idx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Arial" {
		t.Fatalf("got %q", got.Name)
	}
}
