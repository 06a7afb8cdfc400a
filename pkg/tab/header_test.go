package tab

import (
	"testing"

	"github.com/beetlebugorg/tabgeo/internal/codec"
)

func TestHeaderObjectSizeLookup(t *testing.T) {
	h := NewHeader(codec.Affine{ScaleX: 1, ScaleY: 1}, toInternalMBR(MBR{}), map[codec.Tag]int{
		codec.TagSymbol: 9,
	})
	n, ok := h.ObjectSize(codec.TagSymbol)
	if !ok || n != 9 {
		t.Fatalf("got %d, %v", n, ok)
	}
	if _, ok := h.ObjectSize(codec.TagLine); ok {
		t.Fatal("expected no entry for an un-declared tag")
	}
}

func TestHeaderTransformUsesAffine(t *testing.T) {
	h := NewHeader(codec.Affine{ScaleX: 2, ScaleY: 2, TX: 10, TY: 10}, toInternalMBR(MBR{}), nil)
	tr := h.Transform()
	i, j, err := tr.WorldToInt(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if i != 20 || j != 20 {
		t.Fatalf("got (%d,%d)", i, j)
	}
}
