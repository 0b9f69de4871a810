package codepoint

// Packed ASCII classification table: one byte per codepoint 0x00..0x7F.
//
//	bit 0x80 - White_Space
//	bit 0x40 - letter or digit (fast path for alphanumeric scans)
//	bits 0x1F - ucd.GeneralCategory value
//
// The byte layout is an internal fast path; it is never exposed to
// callers and is free to change as long as the three masks above stay
// consistent with ucd.GeneralCategory's numbering.
const (
	asciiWhitespace   = 0x80
	asciiLetterDigit  = 0x40
	asciiCategoryMask = 0x1F
)

var asciiInfo = [128]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x9c, 0x14, 0x14, 0x14, 0x16, 0x14, 0x14, 0x14,
	0x15, 0x11, 0x14, 0x18, 0x14, 0x10, 0x14, 0x14,
	0x4c, 0x4c, 0x4c, 0x4c, 0x4c, 0x4c, 0x4c, 0x4c,
	0x4c, 0x4c, 0x14, 0x14, 0x18, 0x18, 0x18, 0x14,
	0x14, 0x48, 0x48, 0x48, 0x48, 0x48, 0x48, 0x48,
	0x48, 0x48, 0x48, 0x48, 0x48, 0x48, 0x48, 0x48,
	0x48, 0x48, 0x48, 0x48, 0x48, 0x48, 0x48, 0x48,
	0x48, 0x48, 0x48, 0x15, 0x14, 0x11, 0x17, 0x0f,
	0x17, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44,
	0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44,
	0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44,
	0x44, 0x44, 0x44, 0x15, 0x18, 0x11, 0x18, 0x00,
}
