package codec

// Pen, brush, font, and symbol payloads. Field names and grouping
// follow the pen/brush/font/symbol definition records used by the
// style tables this format's writer maintains: a pen carries width,
// pattern, line style, and a 24-bit color; a brush carries a fill
// pattern, a transparency flag, and foreground/background colors; a
// font is just a name; a symbol carries a shape number, a point size,
// and a color.
type PenDef struct {
	Width   int
	Pattern int
	Style   int
	Color   uint32
}

type BrushDef struct {
	Pattern     int
	Transparent bool
	FGColor     uint32
	BGColor     uint32
}

type FontDef struct {
	Name string
}

type SymbolDef struct {
	ShapeNo   int
	PointSize int
	Color     uint32
}

// subPool is the kind tag used to keep the four sub-pools from being
// cross-indexed: an index is only meaningful within its own sub-pool.
type subPool int

const (
	poolPen subPool = iota
	poolBrush
	poolFont
	poolSymbol
)

func (p subPool) String() string {
	switch p {
	case poolPen:
		return "pen"
	case poolBrush:
		return "brush"
	case poolFont:
		return "font"
	case poolSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// maxStyleIndex is the largest 1-based index any sub-pool can hand
// out; index 0 is reserved to mean "no style reference".
const maxStyleIndex = 255

// Pool is the style-definition pool. It interns pen,
// brush, font, and symbol definitions into four disjoint, 1-based
// sub-pools and hands back stable indices that features reference by
// number instead of embedding the full definition inline. Interning is
// byte-equal: two definitions with identical fields collapse to one
// entry and share a reference count, which Pool tracks internally but
// never exposes.
type Pool struct {
	pens    []PenDef
	penRefs []int

	brushes    []BrushDef
	brushRefs  []int

	fonts    []FontDef
	fontRefs []int

	symbols    []SymbolDef
	symbolRefs []int
}

// NewPool returns an empty style pool.
func NewPool() *Pool {
	return &Pool{}
}

// InternPen interns def, returning its 1-based index. An existing
// byte-equal entry is reused and its reference count incremented;
// otherwise a new entry is appended. Returns ErrStyleIndexOutOfRange if
// the sub-pool is already full.
func (p *Pool) InternPen(def PenDef) (int, error) {
	for i, existing := range p.pens {
		if existing == def {
			p.penRefs[i]++
			return i + 1, nil
		}
	}
	if len(p.pens) >= maxStyleIndex {
		return 0, &ErrStyleIndexOutOfRange{Pool: poolPen.String(), Index: len(p.pens) + 1, Size: maxStyleIndex}
	}
	p.pens = append(p.pens, def)
	p.penRefs = append(p.penRefs, 1)
	return len(p.pens), nil
}

// LookupPen returns the pen definition at the given 1-based index.
func (p *Pool) LookupPen(index int) (PenDef, error) {
	if index < 1 || index > len(p.pens) {
		return PenDef{}, &ErrStyleIndexOutOfRange{Pool: poolPen.String(), Index: index, Size: len(p.pens)}
	}
	return p.pens[index-1], nil
}

// InternBrush interns def, returning its 1-based index.
func (p *Pool) InternBrush(def BrushDef) (int, error) {
	for i, existing := range p.brushes {
		if existing == def {
			p.brushRefs[i]++
			return i + 1, nil
		}
	}
	if len(p.brushes) >= maxStyleIndex {
		return 0, &ErrStyleIndexOutOfRange{Pool: poolBrush.String(), Index: len(p.brushes) + 1, Size: maxStyleIndex}
	}
	p.brushes = append(p.brushes, def)
	p.brushRefs = append(p.brushRefs, 1)
	return len(p.brushes), nil
}

// LookupBrush returns the brush definition at the given 1-based index.
func (p *Pool) LookupBrush(index int) (BrushDef, error) {
	if index < 1 || index > len(p.brushes) {
		return BrushDef{}, &ErrStyleIndexOutOfRange{Pool: poolBrush.String(), Index: index, Size: len(p.brushes)}
	}
	return p.brushes[index-1], nil
}

// InternFont interns def, returning its 1-based index.
func (p *Pool) InternFont(def FontDef) (int, error) {
	for i, existing := range p.fonts {
		if existing == def {
			p.fontRefs[i]++
			return i + 1, nil
		}
	}
	if len(p.fonts) >= maxStyleIndex {
		return 0, &ErrStyleIndexOutOfRange{Pool: poolFont.String(), Index: len(p.fonts) + 1, Size: maxStyleIndex}
	}
	p.fonts = append(p.fonts, def)
	p.fontRefs = append(p.fontRefs, 1)
	return len(p.fonts), nil
}

// LookupFont returns the font definition at the given 1-based index.
func (p *Pool) LookupFont(index int) (FontDef, error) {
	if index < 1 || index > len(p.fonts) {
		return FontDef{}, &ErrStyleIndexOutOfRange{Pool: poolFont.String(), Index: index, Size: len(p.fonts)}
	}
	return p.fonts[index-1], nil
}

// InternSymbol interns def, returning its 1-based index.
func (p *Pool) InternSymbol(def SymbolDef) (int, error) {
	for i, existing := range p.symbols {
		if existing == def {
			p.symbolRefs[i]++
			return i + 1, nil
		}
	}
	if len(p.symbols) >= maxStyleIndex {
		return 0, &ErrStyleIndexOutOfRange{Pool: poolSymbol.String(), Index: len(p.symbols) + 1, Size: maxStyleIndex}
	}
	p.symbols = append(p.symbols, def)
	p.symbolRefs = append(p.symbolRefs, 1)
	return len(p.symbols), nil
}

// LookupSymbol returns the symbol definition at the given 1-based
// index.
func (p *Pool) LookupSymbol(index int) (SymbolDef, error) {
	if index < 1 || index > len(p.symbols) {
		return SymbolDef{}, &ErrStyleIndexOutOfRange{Pool: poolSymbol.String(), Index: index, Size: len(p.symbols)}
	}
	return p.symbols[index-1], nil
}

// PenCount, BrushCount, FontCount, and SymbolCount report how many
// distinct definitions each sub-pool currently holds, used by the
// facade's FileHandle.Stats.
func (p *Pool) PenCount() int    { return len(p.pens) }
func (p *Pool) BrushCount() int  { return len(p.brushes) }
func (p *Pool) FontCount() int   { return len(p.fonts) }
func (p *Pool) SymbolCount() int { return len(p.symbols) }
