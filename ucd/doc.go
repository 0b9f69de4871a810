// Package ucd answers the Unicode property lookups the line-break engine
// and its codepoint substrate depend on: general category, UAX #14 line
// breaking class, UAX #29 grapheme cluster class, and bidi character
// type. Tables are immutable and process-wide; there is no mutation path.
//
//go:generate go run maketables.go
package ucd

// Version is the Unicode edition the generated tables in this package
// are derived from. See UAX #14 revision 37.
const Version = "13.0.0"
