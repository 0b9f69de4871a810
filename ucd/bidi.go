package ucd

import "golang.org/x/text/unicode/bidi"

// BidiType is the Unicode bidirectional character type of a codepoint.
// It is a direct alias of x/text's own classification: there is no
// separate bidi data file in this package, since x/text already ships
// one and is already part of this domain's dependency stack.
type BidiType = bidi.Class

// BidiWS is the whitespace bidi class, the only one consulted by
// codepoint.CodePoint.IsWhiteSpace.
const BidiWS = bidi.WS

// GetBidiType returns the bidi character type of r.
func GetBidiType(r rune) BidiType {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}
