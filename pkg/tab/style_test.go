package tab

import (
	"testing"

	"github.com/beetlebugorg/tabgeo/internal/codec"
)

func TestStylePoolPenAndBrush(t *testing.T) {
	p := newStylePool(codec.NewPool())
	idx, err := p.InternPen(PenDef{Width: 2, Pattern: 1, Style: 0, Color: 0x112233})
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.LookupPen(idx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Color != 0x112233 {
		t.Fatalf("got %+v", got)
	}

	bidx, err := p.InternBrush(BrushDef{Pattern: 2, Transparent: true, FGColor: 1, BGColor: 2})
	if err != nil {
		t.Fatal(err)
	}
	brush, err := p.LookupBrush(bidx)
	if err != nil {
		t.Fatal(err)
	}
	if !brush.Transparent {
		t.Fatal("expected transparent brush")
	}
}

func TestStylePoolFontAndSymbol(t *testing.T) {
	p := newStylePool(codec.NewPool())
	fidx, err := p.InternFont(FontDef{Name: "Helvetica"})
	if err != nil {
		t.Fatal(err)
	}
	font, err := p.LookupFont(fidx)
	if err != nil {
		t.Fatal(err)
	}
	if font.Name != "Helvetica" {
		t.Fatalf("got %q", font.Name)
	}

	sidx, err := p.InternSymbol(SymbolDef{ShapeNo: 1, PointSize: 8, Color: 0xabcdef})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.LookupSymbol(sidx); err != nil {
		t.Fatal(err)
	}
}
