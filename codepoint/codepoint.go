// Package codepoint implements the validated Unicode scalar value used
// throughout the font-handling stack, together with the UTF-16 decoder
// that turns a borrowed code-unit buffer into a sequence of them.
package codepoint

import (
	"github.com/pkg/errors"

	"github.com/acaly/fonts/ucd"
)

// MaxValue is the highest scalar value a CodePoint may hold.
const MaxValue = 0x10FFFF

const (
	surrogateLo = 0xD800
	surrogateHi = 0xDFFF
)

// Replacement is U+FFFD REPLACEMENT CHARACTER, substituted by the decoder
// for any malformed UTF-16 sequence.
const Replacement CodePoint = 0xFFFD

// CodePoint is a validated Unicode scalar value in U+0000..U+10FFFF. The
// surrogate range is never held by a value of this type; once
// constructed, a CodePoint is guaranteed valid.
type CodePoint rune

// New validates n and returns the CodePoint holding it. It fails if n lies
// outside U+0000..U+10FFFF or falls in the surrogate range, neither of
// which is a valid scalar value on the public boundary.
func New(n int32) (CodePoint, error) {
	if n < 0 || n > MaxValue {
		return 0, errors.Errorf("codepoint: %#x out of range", n)
	}
	if n >= surrogateLo && n <= surrogateHi {
		return 0, errors.Errorf("codepoint: %#x is a surrogate", n)
	}
	return CodePoint(n), nil
}

// Value returns the underlying scalar value.
func (c CodePoint) Value() rune {
	return rune(c)
}

// IsAscii reports whether c is in the ASCII range (<= U+007F).
func (c CodePoint) IsAscii() bool {
	return c <= 0x7F
}

// IsBmp reports whether c is in the Basic Multilingual Plane (<= U+FFFF).
func (c CodePoint) IsBmp() bool {
	return c <= 0xFFFF
}

// breakChars holds the codepoints that terminate a line outright: LF, VT,
// FF, CR, NEL, LS and PS.
var breakChars = map[rune]struct{}{
	0x0A: {}, 0x0B: {}, 0x0C: {}, 0x0D: {}, 0x85: {}, 0x2028: {}, 0x2029: {},
}

// IsBreakChar reports whether c is one of the characters that force a
// mandatory line break.
func (c CodePoint) IsBreakChar() bool {
	_, ok := breakChars[rune(c)]
	return ok
}

// IsWhiteSpace reports whether c is whitespace. ASCII uses the
// White_Space bit of the packed fast-path table; BMP codepoints beyond
// ASCII are whitespace exactly when their bidi character type is WS, so
// White_Space characters of another bidi type (U+0085, U+00A0, U+2029,
// U+202F) are not reported; codepoints outside the BMP carry no
// White_Space assignments in Unicode and are never reported as
// whitespace.
func (c CodePoint) IsWhiteSpace() bool {
	if c.IsAscii() {
		return asciiInfo[c]&asciiWhitespace != 0
	}
	if c.IsBmp() {
		return ucd.GetBidiType(rune(c)) == ucd.BidiWS
	}
	return false
}

// GeneralCategory returns the Unicode general category of c, via the
// ASCII fast path when possible.
func (c CodePoint) GeneralCategory() ucd.GeneralCategory {
	if c.IsAscii() {
		return ucd.GeneralCategory(asciiInfo[c] & asciiCategoryMask)
	}
	return ucd.GetGeneralCategory(rune(c))
}
