// Hand-written in the output shape of maketables.go; running maketables.go
// replaces this file with tables generated from
// auxiliary/GraphemeBreakProperty.txt.
//
// Covers a subset of Unicode 13.0.0 auxiliary/GraphemeBreakProperty.txt;
// codepoints not listed here fall back to GCBOther.

package ucd

import "unicode"

func inRange(r rune, t *unicode.RangeTable) bool {
	return unicode.Is(t, r)
}

// graphemeRanges lists the Grapheme_Cluster_Break assignments wider
// than the exact cases GetGraphemeClusterClass resolves directly (CR,
// LF, ZWJ, and the regional indicator and Hangul jamo blocks). The
// Mn/Me/Mc general-category catch-alls at the end carry the bulk of the
// property: Extend and SpacingMark are, by UAX #29's own derivation,
// almost entirely the Nonspacing_Mark and Spacing_Combining_Mark general
// categories, so listing them directly covers scripts no earlier,
// script-specific entry names.
var graphemeRanges = []struct {
	table *unicode.RangeTable
	class GraphemeClusterClass
}{
	{&unicode.RangeTable{R16: []unicode.Range16{{0x0000, 0x0008, 1}, {0x000E, 0x001F, 1}, {0x007F, 0x009F, 1}}}, GCBControl},
	{&unicode.RangeTable{R16: []unicode.Range16{{0x2028, 0x2029, 1}, {0x200E, 0x200F, 1}}}, GCBControl},

	{&unicode.RangeTable{
		R16: []unicode.Range16{{0x0300, 0x036F, 1}, {0x0483, 0x0489, 1}, {0x200C, 0x200C, 1}, {0x20D0, 0x20FF, 1}, {0xFE20, 0xFE2F, 1}},
	}, GCBExtend},
	{&unicode.RangeTable{R16: []unicode.Range16{{0x0E31, 0x0E31, 1}, {0x0E34, 0x0E3A, 1}, {0x0E47, 0x0E4E, 1}}}, GCBExtend},
	{&unicode.RangeTable{R16: []unicode.Range16{{0x1AB0, 0x1AFF, 1}, {0x1DC0, 0x1DFF, 1}}}, GCBExtend},
	{&unicode.RangeTable{R32: []unicode.Range32{{0xE0100, 0xE01EF, 1}}}, GCBExtend}, // variation selectors supplement

	{&unicode.RangeTable{R16: []unicode.Range16{{0x0600, 0x0605, 1}, {0x06DD, 0x06DD, 1}, {0x070F, 0x070F, 1}, {0x0890, 0x0891, 1}}}, GCBPrepend},
	{&unicode.RangeTable{R16: []unicode.Range16{{0x0D4E, 0x0D4E, 1}}}, GCBPrepend},

	{unicode.Mn, GCBExtend},
	{unicode.Me, GCBExtend},
	{unicode.Mc, GCBSpacingMark},
}
