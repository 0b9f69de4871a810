package ucd

// GraphemeClusterClass is a UAX #29 grapheme cluster break property.
// It rides alongside the line-break tables as part of the shared
// codepoint property substrate; the line-break engine itself has no
// use for grapheme boundaries, but a renderer built on this package
// will want both properties from the same lookup surface.
type GraphemeClusterClass byte

const (
	GCBOther GraphemeClusterClass = iota
	GCBCR
	GCBLF
	GCBControl
	GCBExtend
	GCBZWJ
	GCBRegionalIndicator
	GCBPrepend
	GCBSpacingMark
	GCBL
	GCBV
	GCBT
	GCBLV
	GCBLVT
)

// GetGraphemeClusterClass returns the UAX #29 grapheme cluster class of r.
func GetGraphemeClusterClass(r rune) GraphemeClusterClass {
	switch {
	case r == 0x000D:
		return GCBCR
	case r == 0x000A:
		return GCBLF
	case r == 0x200D:
		return GCBZWJ
	case r >= 0x1F1E6 && r <= 0x1F1FF:
		return GCBRegionalIndicator
	}
	if cls, ok := hangulClass(r); ok {
		switch cls {
		case JL:
			return GCBL
		case JV:
			return GCBV
		case JT:
			return GCBT
		case H2:
			return GCBLV
		case H3:
			return GCBLVT
		}
	}
	for _, e := range graphemeRanges {
		if inRange(r, e.table) {
			return e.class
		}
	}
	return GCBOther
}
