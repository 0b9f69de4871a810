// Copyright 2013 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linebreak implements the Unicode line breaking algorithm,
// UAX #14, over UTF-16 text:
//
//     http://www.unicode.org/reports/tr14/
//
// Scanning is stateful and single-pass: a Scanner is built over a
// borrowed []uint16 and pulled with TryGetNextBreak until it reports no
// further break remains.
package linebreak

import "github.com/acaly/fonts/ucd"

// LineBreak is one emission of the scanner: a line break opportunity or
// mandatory break, together with the code-unit span of the trailing
// whitespace that the visible line content excludes.
type LineBreak struct {
	// PositionWrap is the code-unit index at which the visible line
	// content ends, i.e. the position immediately before any trailing
	// whitespace run that precedes the break.
	PositionWrap int
	// PositionRequired is the code-unit index immediately past the
	// break character, where the next line begins.
	PositionRequired int
	// Required is true for a mandatory break (following BK/CR/LF/NL,
	// or a terminal emission whose input ended in such a state) and
	// false for a soft break opportunity.
	Required bool
}

// resolveClass applies UAX #14 rule LB1, folding the classes that are
// never accepted by the pair table into one of the classes that is.
func resolveClass(cls ucd.LineBreakClass, cp codePointLike) ucd.LineBreakClass {
	switch cls {
	case ucd.AI, ucd.SG, ucd.XX:
		return ucd.AL
	case ucd.CJ:
		return ucd.NS
	case ucd.SA:
		switch cp.GeneralCategory() {
		case ucd.NonSpacingMark, ucd.SpacingCombiningMark:
			return ucd.CM
		default:
			return ucd.AL
		}
	default:
		return cls
	}
}

// codePointLike is the slice of the codepoint.CodePoint API resolveClass
// needs; declared here instead of importing package codepoint directly
// to keep this file's only dependency the ucd property tables, with the
// scanner supplying the concrete type.
type codePointLike interface {
	GeneralCategory() ucd.GeneralCategory
}

// mapFirstClass applies the scanner's first-codepoint adjustment to a
// folded class: LF and NL become BK, SP becomes WJ, and every other class
// is returned unchanged.
func mapFirstClass(cls ucd.LineBreakClass) ucd.LineBreakClass {
	switch cls {
	case ucd.LF, ucd.NL:
		return ucd.BK
	case ucd.SP:
		return ucd.WJ
	default:
		return cls
	}
}
