package codec

import "fmt"

// Tag is the one-byte geometry tag that discriminates the on-disk
// feature record.
type Tag byte

// The closed set of geometry tags. Each uncompressed tag has a paired
// _C compressed form using 16-bit relative coordinates plus a
// per-feature origin.
const (
	TagNone Tag = 0x00

	TagSymbol  Tag = 0x01
	TagSymbolC Tag = 0x02

	TagLine  Tag = 0x04
	TagLineC Tag = 0x05

	TagPline  Tag = 0x07
	TagPlineC Tag = 0x08

	TagArc  Tag = 0x0a
	TagArcC Tag = 0x0b

	TagRegion  Tag = 0x0d
	TagRegionC Tag = 0x0e

	TagRect  Tag = 0x13
	TagRectC Tag = 0x14

	TagRoundRect  Tag = 0x16
	TagRoundRectC Tag = 0x17

	TagEllipse  Tag = 0x19
	TagEllipseC Tag = 0x1a

	TagText  Tag = 0x1c
	TagTextC Tag = 0x1d

	TagMultiPline  Tag = 0x25
	TagMultiPlineC Tag = 0x26

	TagFontSymbol  Tag = 0x28
	TagFontSymbolC Tag = 0x29

	TagCustomSymbol  Tag = 0x2b
	TagCustomSymbolC Tag = 0x2c
)

// tagInfo describes one entry of the closed tag table.
type tagInfo struct {
	name       string
	compressed bool
	base       Tag // the uncompressed counterpart; equal to itself when base
}

var tagTable = map[Tag]tagInfo{
	TagNone: {"NONE", false, TagNone},

	TagSymbol:  {"SYMBOL", false, TagSymbol},
	TagSymbolC: {"SYMBOL_C", true, TagSymbol},

	TagLine:  {"LINE", false, TagLine},
	TagLineC: {"LINE_C", true, TagLine},

	TagPline:  {"PLINE", false, TagPline},
	TagPlineC: {"PLINE_C", true, TagPline},

	TagArc:  {"ARC", false, TagArc},
	TagArcC: {"ARC_C", true, TagArc},

	TagRegion:  {"REGION", false, TagRegion},
	TagRegionC: {"REGION_C", true, TagRegion},

	TagRect:  {"RECT", false, TagRect},
	TagRectC: {"RECT_C", true, TagRect},

	TagRoundRect:  {"ROUNDRECT", false, TagRoundRect},
	TagRoundRectC: {"ROUNDRECT_C", true, TagRoundRect},

	TagEllipse:  {"ELLIPSE", false, TagEllipse},
	TagEllipseC: {"ELLIPSE_C", true, TagEllipse},

	TagText:  {"TEXT", false, TagText},
	TagTextC: {"TEXT_C", true, TagText},

	TagMultiPline:  {"MULTIPLINE", false, TagMultiPline},
	TagMultiPlineC: {"MULTIPLINE_C", true, TagMultiPline},

	TagFontSymbol:  {"FONTSYMBOL", false, TagFontSymbol},
	TagFontSymbolC: {"FONTSYMBOL_C", true, TagFontSymbol},

	TagCustomSymbol:  {"CUSTOMSYMBOL", false, TagCustomSymbol},
	TagCustomSymbolC: {"CUSTOMSYMBOL_C", true, TagCustomSymbol},
}

// String returns the tag's mnemonic name, e.g. "REGION_C".
func (t Tag) String() string {
	if info, ok := tagTable[t]; ok {
		return info.name
	}
	return fmt.Sprintf("Tag(%#02x)", byte(t))
}

// Known reports whether t is a member of the closed tag set.
func (t Tag) Known() bool {
	_, ok := tagTable[t]
	return ok
}

// Compressed reports whether t is a _C (compressed-coordinate) variant.
func (t Tag) Compressed() bool {
	info, ok := tagTable[t]
	return ok && info.compressed
}

// Base returns the uncompressed counterpart of t (t itself if t is
// already uncompressed, or unknown).
func (t Tag) Base() Tag {
	if info, ok := tagTable[t]; ok {
		return info.base
	}
	return t
}

// Multivertex reports whether t streams vertices through the coord
// block (as opposed to carrying its geometry inline in the object
// block header).
func (t Tag) Multivertex() bool {
	switch t.Base() {
	case TagPline, TagRegion, TagMultiPline:
		return true
	default:
		return false
	}
}

// tagFor returns base's compressed or uncompressed form, matching
// whichever variant compressed requests. Used by read routines that
// need to stamp a decoded Feature with the variant it was actually
// read from.
func tagFor(base Tag, compressed bool) Tag {
	if !compressed {
		return base
	}
	for t, info := range tagTable {
		if info.base == base && info.compressed {
			return t
		}
	}
	return base
}
