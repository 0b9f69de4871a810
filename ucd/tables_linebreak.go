// Hand-written in the output shape of maketables.go; running maketables.go
// replaces this file with tables generated from LineBreak.txt.
//
// Covers a subset of Unicode 13.0.0 LineBreak-13.0.0.txt; codepoints not
// listed here fall back to XX in GetLineBreakClass.

package ucd

import "unicode"

// lineBreakExact holds single codepoints whose class is resolved without
// a range table: the mandatory-break and space characters, the
// punctuation/glue codepoints whose class would otherwise be swallowed
// by a wider neighboring range, and the CJK/fullwidth punctuation whose
// class depends on the exact codepoint rather than its block.
var lineBreakExact = map[rune]LineBreakClass{
	0x000A: LF,
	0x000B: BK,
	0x000C: BK,
	0x000D: CR,
	0x0085: NL,
	0x2028: BK,
	0x2029: BK,

	0x0020: SP,
	0x00A0: GL, // no-break space
	0x2007: GL, // figure space
	0x202F: GL, // narrow no-break space
	0x2011: GL, // non-breaking hyphen
	0x2060: WJ, // word joiner
	0xFEFF: WJ, // zero width no-break space
	0x200B: ZW, // zero width space
	0x200D: ZWJ,
	0x00AD: BA, // soft hyphen
	0x3000: ID, // ideographic space

	0x0021: EX,
	0x003F: EX,
	0x0022: QU,
	0x0027: QU,
	0x2018: QU,
	0x2019: QU,
	0x201C: QU,
	0x201D: QU,
	0x0028: OP,
	0x005B: OP,
	0x007B: OP,
	0x0029: CP,
	0x005D: CL,
	0x007D: CL,
	0x002C: IS,
	0x002E: IS,
	0x003A: IS,
	0x003B: IS,
	0x002D: HY,
	0x002F: SY,
	0x005C: PR,
	0x0024: PR,
	0x00A3: PR,
	0x00A5: PR,
	0x20AC: PR,
	0x0025: PO,
	0x00B0: PO,
	0x002B: PR,

	// Latin-1 Supplement punctuation and symbols not covered by the
	// accented-letter range below.
	0x00A1: OP, // inverted exclamation mark
	0x00BF: OP, // inverted question mark
	0x00AB: QU, // left guillemet
	0x00BB: QU, // right guillemet
	0x00A7: AL, // section sign
	0x00B6: AL, // pilcrow
	0x00B1: AL, // plus-minus
	0x00D7: AL, // multiplication sign
	0x00F7: AL, // division sign
	0x00A9: AL, // copyright
	0x00AE: AL, // registered
	0x00B5: AL, // micro sign

	// CJK Symbols and Punctuation.
	0x3001: CL, // ideographic comma
	0x3002: CL, // ideographic full stop
	0x3008: OP,
	0x3009: CL,
	0x300A: OP,
	0x300B: CL,
	0x300C: OP,
	0x300D: CL,
	0x300E: OP,
	0x300F: CL,
	0x3010: OP,
	0x3011: CL,
	0x3014: OP,
	0x3015: CL,
	0x30FB: NS, // katakana middle dot
	0x30FC: NS, // katakana-hiragana prolonged sound mark

	// Fullwidth forms.
	0xFF01: EX,
	0xFF08: OP,
	0xFF09: CL,
	0xFF0C: CL,
	0xFF0E: CL,
	0xFF1A: NS,
	0xFF1B: NS,
	0xFF1F: EX,
}

// lineBreakRanges lists the class assignments wider than one codepoint.
// Entries are checked in order; the first match wins, so combining-mark
// and emoji-component overrides are listed before the broader script and
// pictograph blocks they carve out of.
var lineBreakRanges = []struct {
	table *unicode.RangeTable
	class LineBreakClass
}{
	// Combining marks across scripts, ahead of the letter blocks they sit
	// inside so these marks resolve as CM rather than as the block's AL/HL.
	{&unicode.RangeTable{
		R16: []unicode.Range16{
			{0x0300, 0x036F, 1}, {0x0483, 0x0489, 1},
			{0x0591, 0x05BD, 1}, {0x05BF, 0x05BF, 1}, {0x05C1, 0x05C2, 1}, {0x05C4, 0x05C5, 1}, {0x05C7, 0x05C7, 1},
			{0x0610, 0x061A, 1}, {0x064B, 0x065F, 1}, {0x0670, 0x0670, 1},
			{0x06D6, 0x06DC, 1}, {0x06DF, 0x06E4, 1}, {0x06E7, 0x06E8, 1}, {0x06EA, 0x06ED, 1},
			{0x0900, 0x0902, 1}, {0x093A, 0x093A, 1}, {0x093C, 0x093C, 1}, {0x0941, 0x0948, 1}, {0x094D, 0x094D, 1},
			{0x0951, 0x0957, 1}, {0x0962, 0x0963, 1},
			{0x20D0, 0x20FF, 1}, {0xFE20, 0xFE2F, 1},
		},
	}, CM},

	// Emoji components: regional indicators, skin-tone modifiers, and the
	// person/family base emoji, ahead of the broader pictograph blocks.
	{&unicode.RangeTable{R32: []unicode.Range32{{0x1F1E6, 0x1F1FF, 1}}}, RI},
	{&unicode.RangeTable{R32: []unicode.Range32{{0x1F3FB, 0x1F3FF, 1}}}, EM},
	{&unicode.RangeTable{R32: []unicode.Range32{{0x1F466, 0x1F469, 1}, {0x1F9D1, 0x1F9DD, 1}}}, EB},

	{&unicode.RangeTable{R16: []unicode.Range16{{0x0030, 0x0039, 1}}}, NU},
	{&unicode.RangeTable{R16: []unicode.Range16{{0x0041, 0x005A, 1}, {0x0061, 0x007A, 1}, {0x00C0, 0x02AF, 1}}}, AL},

	// Greek and Coptic.
	{&unicode.RangeTable{R16: []unicode.Range16{{0x0370, 0x03FF, 1}}}, AL},

	// Cyrillic and Cyrillic Supplement.
	{&unicode.RangeTable{R16: []unicode.Range16{{0x0400, 0x052F, 1}}}, AL},

	// Armenian.
	{&unicode.RangeTable{R16: []unicode.Range16{{0x0531, 0x058F, 1}}}, AL},

	{unicode.Hebrew, HL},
	{unicode.Arabic, AL},

	// Indic scripts: Devanagari through Sinhala, treated as plain
	// alphabetic blocks at this granularity.
	{&unicode.RangeTable{
		R16: []unicode.Range16{
			{0x0900, 0x097F, 1}, {0x0980, 0x09FF, 1}, {0x0A00, 0x0A7F, 1}, {0x0A80, 0x0AFF, 1},
			{0x0B00, 0x0B7F, 1}, {0x0B80, 0x0BFF, 1}, {0x0C00, 0x0C7F, 1}, {0x0C80, 0x0CFF, 1},
			{0x0D00, 0x0D7F, 1}, {0x0D80, 0x0DFF, 1},
		},
	}, AL},

	// South East Asian scripts UAX #14 classifies SA by default.
	{&unicode.RangeTable{
		R16: []unicode.Range16{{0x0E80, 0x0EFF, 1}, {0x1000, 0x109F, 1}, {0x1780, 0x17FF, 1}, {0x1980, 0x19DF, 1}},
	}, SA},
	{unicode.Thai, SA},

	// Hiragana and Katakana.
	{&unicode.RangeTable{R16: []unicode.Range16{{0x3041, 0x30FF, 1}}}, ID},

	// CJK Unified Ideographs, Compatibility Ideographs, and extensions.
	{&unicode.RangeTable{
		R16: []unicode.Range16{{0x3400, 0x4DBF, 1}, {0x4E00, 0x9FFF, 1}, {0xF900, 0xFAFF, 1}},
		R32: []unicode.Range32{{0x20000, 0x2A6DF, 1}},
	}, ID},

	// Emoji and pictograph blocks: dingbats, misc symbols, emoticons,
	// transport, and supplemental symbols and pictographs.
	{&unicode.RangeTable{R16: []unicode.Range16{{0x2600, 0x26FF, 1}, {0x2700, 0x27BF, 1}}}, ID},
	{&unicode.RangeTable{
		R32: []unicode.Range32{{0x1F300, 0x1F5FF, 1}, {0x1F600, 0x1F64F, 1}, {0x1F680, 0x1F6FF, 1}, {0x1F900, 0x1F9FF, 1}},
	}, ID},

	{unicode.Han, ID},
}
