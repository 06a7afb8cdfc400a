package tab

import "github.com/beetlebugorg/tabgeo/internal/codec"

// PenDef is a pen style definition: width, dash pattern, line style,
// and a 24-bit RGB color.
type PenDef struct {
	Width   int
	Pattern int
	Style   int
	Color   uint32
}

// BrushDef is a fill style definition.
type BrushDef struct {
	Pattern     int
	Transparent bool
	FGColor     uint32
	BGColor     uint32
}

// FontDef names a font face used by TEXT, FONTSYMBOL, and
// CUSTOMSYMBOL features.
type FontDef struct {
	Name string
}

// SymbolDef is a point-symbol definition: a shape number, point size,
// and 24-bit RGB color.
type SymbolDef struct {
	ShapeNo   int
	PointSize int
	Color     uint32
}

// StylePool interns and looks up pen, brush, font, and symbol
// definitions by 1-based index. A Feature's style references (see
// Feature.Styles) are indices into the FileHandle's single StylePool.
type StylePool struct {
	inner *codec.Pool
}

func newStylePool(p *codec.Pool) *StylePool {
	return &StylePool{inner: p}
}

// InternPen interns def and returns its stable 1-based index.
func (s *StylePool) InternPen(def PenDef) (int, error) {
	return s.inner.InternPen(codec.PenDef{Width: def.Width, Pattern: def.Pattern, Style: def.Style, Color: def.Color})
}

// LookupPen resolves a pen index back to its definition.
func (s *StylePool) LookupPen(index int) (PenDef, error) {
	d, err := s.inner.LookupPen(index)
	if err != nil {
		return PenDef{}, err
	}
	return PenDef{Width: d.Width, Pattern: d.Pattern, Style: d.Style, Color: d.Color}, nil
}

// InternBrush interns def and returns its stable 1-based index.
func (s *StylePool) InternBrush(def BrushDef) (int, error) {
	return s.inner.InternBrush(codec.BrushDef{
		Pattern: def.Pattern, Transparent: def.Transparent, FGColor: def.FGColor, BGColor: def.BGColor,
	})
}

// LookupBrush resolves a brush index back to its definition.
func (s *StylePool) LookupBrush(index int) (BrushDef, error) {
	d, err := s.inner.LookupBrush(index)
	if err != nil {
		return BrushDef{}, err
	}
	return BrushDef{Pattern: d.Pattern, Transparent: d.Transparent, FGColor: d.FGColor, BGColor: d.BGColor}, nil
}

// InternFont interns def and returns its stable 1-based index.
func (s *StylePool) InternFont(def FontDef) (int, error) {
	return s.inner.InternFont(codec.FontDef{Name: def.Name})
}

// LookupFont resolves a font index back to its definition.
func (s *StylePool) LookupFont(index int) (FontDef, error) {
	d, err := s.inner.LookupFont(index)
	if err != nil {
		return FontDef{}, err
	}
	return FontDef{Name: d.Name}, nil
}

// InternSymbol interns def and returns its stable 1-based index.
func (s *StylePool) InternSymbol(def SymbolDef) (int, error) {
	return s.inner.InternSymbol(codec.SymbolDef{ShapeNo: def.ShapeNo, PointSize: def.PointSize, Color: def.Color})
}

// LookupSymbol resolves a symbol index back to its definition.
func (s *StylePool) LookupSymbol(index int) (SymbolDef, error) {
	d, err := s.inner.LookupSymbol(index)
	if err != nil {
		return SymbolDef{}, err
	}
	return SymbolDef{ShapeNo: d.ShapeNo, PointSize: d.PointSize, Color: d.Color}, nil
}
