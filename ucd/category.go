package ucd

import "unicode"

// GeneralCategory is the Unicode general category of a codepoint. The
// numeric values are an internal convenience shared with the packed
// ASCII table in package codepoint; callers should use the named
// constants rather than the underlying ints.
type GeneralCategory byte

// Unicode general categories. Two of these, NonSpacingMark and
// SpacingCombiningMark, participate directly in line breaking: they are
// the categories that fold the SA class to CM under rule LB1.
const (
	Cc GeneralCategory = iota // Control
	Cf                        // Format
	Co                        // Private Use
	Cs                        // Surrogate
	Ll                        // Lowercase Letter
	Lm                        // Modifier Letter
	Lo                        // Other Letter
	Lt                        // Titlecase Letter
	Lu                        // Uppercase Letter
	Mc                        // Spacing Mark (SpacingCombiningMark)
	Me                        // Enclosing Mark
	Mn                        // Nonspacing Mark (NonSpacingMark)
	Nd                        // Decimal Number
	Nl                        // Letter Number
	No                        // Other Number
	Pc                        // Connector Punctuation
	Pd                        // Dash Punctuation
	Pe                        // Close Punctuation
	Pf                        // Final Punctuation
	Pi                        // Initial Punctuation
	Po                        // Other Punctuation
	Ps                        // Open Punctuation
	Sc                        // Currency Symbol
	Sk                        // Modifier Symbol
	Sm                        // Math Symbol
	So                        // Other Symbol
	Zl                        // Line Separator
	Zp                        // Paragraph Separator
	Zs                        // Space Separator
	Cn                        // Unassigned
)

// SpacingCombiningMark is the line-breaking-oriented alias for Mc.
const SpacingCombiningMark = Mc

// NonSpacingMark is the line-breaking-oriented alias for Mn.
const NonSpacingMark = Mn

// categoryOrder lists every two-letter category this package resolves,
// in the order they are probed. It excludes Cn (unassigned), which is
// the fallback when nothing in unicode.Categories claims the rune.
var categoryOrder = []struct {
	name string
	cat  GeneralCategory
}{
	{"Cc", Cc}, {"Cf", Cf}, {"Co", Co}, {"Cs", Cs},
	{"Ll", Ll}, {"Lm", Lm}, {"Lo", Lo}, {"Lt", Lt}, {"Lu", Lu},
	{"Mc", Mc}, {"Me", Me}, {"Mn", Mn},
	{"Nd", Nd}, {"Nl", Nl}, {"No", No},
	{"Pc", Pc}, {"Pd", Pd}, {"Pe", Pe}, {"Pf", Pf}, {"Pi", Pi}, {"Po", Po}, {"Ps", Ps},
	{"Sc", Sc}, {"Sk", Sk}, {"Sm", Sm}, {"So", So},
	{"Zl", Zl}, {"Zp", Zp}, {"Zs", Zs},
}

// GetGeneralCategory returns the Unicode general category of r, answered
// from the standard library's own UCD-derived range tables rather than a
// second copy of the same data: unicode.Categories is the same authority
// the table generator borrows its *unicode.RangeTable output shape from.
func GetGeneralCategory(r rune) GeneralCategory {
	for _, c := range categoryOrder {
		if rt, ok := unicode.Categories[c.name]; ok && unicode.Is(rt, r) {
			return c.cat
		}
	}
	return Cn
}
