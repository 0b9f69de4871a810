// Copyright 2013 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linebreak

import (
	"github.com/acaly/fonts/codepoint"
	"github.com/acaly/fonts/ucd"
)

// NewScanner returns a Scanner over units. The slice is borrowed for the
// scanner's lifetime and must not be mutated while in use.
func NewScanner(units []uint16) *Scanner {
	return &Scanner{units: units, first: true}
}

// Scanner is a single-pass, stateful cursor over a UTF-16 source that
// yields line break opportunities on demand. It is not safe for
// concurrent use, and it cannot be restarted once exhausted.
//
// The codepoint cursor and total codepoint count of the reference state
// model collapse into the code-unit cursor here: unitPos against
// len(units) carries exactly the same information, since every codepoint
// decoded advances unitPos by its own width.
type Scanner struct {
	units []uint16

	unitPos int // code-unit index of the next codepoint to decode

	currentClass ucd.LineBreakClass
	nextClass    ucd.LineBreakClass

	first bool

	lb8a   bool
	lb21a  bool
	lb22ex bool
	lb24ex bool
	lb25ex bool
	lb30   bool
	lb31   bool

	lb30a int

	alphaNumericCount int

	exhausted  bool // terminal emission has already been produced
	lastEndPos int  // code-unit index of the most recent emission's PositionRequired
}

// decodeAt decodes the codepoint at code-unit index i and folds its
// UAX #14 class per LB1, returning the folded class, the scalar value,
// and the width in code units consumed.
func (s *Scanner) decodeAt(i int) (ucd.LineBreakClass, rune, int) {
	cp, width := codepoint.DecodeRune(s.units, i)
	raw := ucd.GetLineBreakClass(cp.Value())
	return resolveClass(raw, cp), cp.Value(), width
}

// peekClassAt returns the folded class of the codepoint at code-unit
// index i without touching the scanner's cursor, as bookkeeping rule 10
// (the SP/WJ/AL lookahead for lb25ex) requires.
func (s *Scanner) peekClassAt(i int) ucd.LineBreakClass {
	if i >= len(s.units) {
		return ucd.XX
	}
	cls, _, _ := s.decodeAt(i)
	return cls
}

// bookkeep applies the per-codepoint flag updates of spec §4.4 as a
// codepoint with scalar value r and folded class cur is accepted,
// following a codepoint whose folded class was prevClass. followingAt is
// the code-unit index immediately after the codepoint just decoded, used
// for the lb25ex lookahead.
func (s *Scanner) bookkeep(prevClass, cur ucd.LineBreakClass, r rune, followingAt int) {
	switch prevClass {
	case ucd.AL, ucd.HL, ucd.NU:
		s.alphaNumericCount++
	default:
		if s.alphaNumericCount > 0 && cur == ucd.CM {
			s.alphaNumericCount++
		}
	}

	if cur == ucd.CM {
		switch prevClass {
		case ucd.BK, ucd.CB, ucd.EX, ucd.LF, ucd.NL, ucd.SP, ucd.ZW, ucd.CR:
			s.lb22ex = true
		}
	}

	if s.first && cur == ucd.CM {
		s.lb31 = true
	}
	if cur == ucd.CM {
		switch prevClass {
		case ucd.BK, ucd.CB, ucd.EX, ucd.LF, ucd.NL, ucd.SP, ucd.ZW, ucd.CR, ucd.ZWJ:
			s.lb31 = true
		}
	}

	if s.first {
		switch cur {
		case ucd.PO, ucd.PR, ucd.SP:
			s.lb31 = true
		}
	}
	if prevClass == ucd.AL {
		switch cur {
		case ucd.PO, ucd.PR, ucd.SP:
			s.lb31 = true
		}
	}

	if s.lb31 && prevClass != ucd.PO && prevClass != ucd.PR && cur == ucd.OP && r == 0x0028 {
		s.lb31 = false
	}

	if s.first {
		switch cur {
		case ucd.CL, ucd.CP:
			s.lb24ex = true
		}
	}
	if s.first {
		switch cur {
		case ucd.CL, ucd.IS, ucd.SY:
			s.lb25ex = true
		}
	}

	switch cur {
	case ucd.SP, ucd.WJ, ucd.AL:
		switch s.peekClassAt(followingAt) {
		case ucd.CL, ucd.IS, ucd.SY:
			s.lb25ex = true
		}
	}

	s.lb30 = s.alphaNumericCount > 0 && cur == ucd.OP
	if s.lb30 {
		switch r {
		case 0x0028, 0x005B, 0x007B:
			s.lb30 = false
		}
	}
}

// consume decodes the codepoint at the current cursor into nextClass,
// running the bookkeeping rules, and advances the cursor past it. It
// reports false once the cursor has reached the end of the source.
func (s *Scanner) consume() bool {
	if s.unitPos >= len(s.units) {
		return false
	}
	prevClass := s.currentClass
	cls, r, width := s.decodeAt(s.unitPos)
	s.unitPos += width
	s.bookkeep(prevClass, cls, r, s.unitPos)
	s.nextClass = cls
	return true
}

// findPriorNonWhitespace walks back from the code-unit index from, first
// over a trailing terminator run (BK, LF, CR — a CRLF pair walks back
// over both halves) and then over a trailing run of SP, returning the
// resulting code-unit index.
func findPriorNonWhitespace(units []uint16, from int) int {
	pos := from
	for pos > 0 {
		cp, width := codepoint.DecodeLastRune(units, pos)
		cls := ucd.GetLineBreakClass(cp.Value())
		if cls != ucd.BK && cls != ucd.LF && cls != ucd.CR {
			break
		}
		pos -= width
	}
	for pos > 0 {
		cp, width := codepoint.DecodeLastRune(units, pos)
		if ucd.GetLineBreakClass(cp.Value()) != ucd.SP {
			break
		}
		pos -= width
	}
	return pos
}

// TryGetNextBreak advances the scanner past the next break opportunity
// and writes it into out, reporting true. It returns false exactly once,
// when no further break (including the synthetic end-of-text break)
// remains. The sequence is lazy, finite, and single-pass.
func (s *Scanner) TryGetNextBreak(out *LineBreak) bool {
	if s.exhausted {
		return false
	}

	if s.first {
		if !s.consume() {
			s.exhausted = true
			return false
		}
		s.first = false
		firstClass := s.nextClass
		s.currentClass = mapFirstClass(firstClass)
		s.lb8a = firstClass == ucd.ZWJ
		s.lb30a = 0
	}

	for s.unitPos < len(s.units) {
		lastPosition := s.unitPos
		lastClass := s.nextClass
		if !s.consume() {
			break
		}

		// Explicit newline.
		if s.currentClass == ucd.BK || (s.currentClass == ucd.CR && s.nextClass != ucd.LF) {
			out.Required = true
			out.PositionWrap = findPriorNonWhitespace(s.units, lastPosition)
			out.PositionRequired = lastPosition
			s.currentClass = mapFirstClass(s.nextClass)
			s.lastEndPos = lastPosition
			return true
		}

		// Rule LB8a bookkeeping: remember whether the previous codepoint
		// was ZWJ, then record whether this one is, on every path below.
		zwjBefore := s.lb8a
		s.lb8a = s.nextClass == ucd.ZWJ

		// Simple break handling for SP/BK/LF/NL/CR.
		switch s.nextClass {
		case ucd.SP:
			continue
		case ucd.BK, ucd.LF, ucd.NL:
			s.currentClass = ucd.BK
			continue
		case ucd.CR:
			s.currentClass = ucd.CR
			continue
		}

		shouldBreak := false
		switch lookupPair(s.currentClass, s.nextClass) {
		case DIBRK:
			shouldBreak = true
		case INBRK:
			switch {
			case s.lb31 && s.nextClass == ucd.OP:
				shouldBreak = true
				s.lb31 = false
			case s.lb30:
				shouldBreak = true
				s.lb30 = false
				s.alphaNumericCount = 0
			case s.lb25ex && (s.nextClass == ucd.PR || s.nextClass == ucd.NU):
				shouldBreak = true
				s.lb25ex = false
			case s.lb24ex && (s.nextClass == ucd.PO || s.nextClass == ucd.PR):
				shouldBreak = true
				s.lb24ex = false
			default:
				shouldBreak = lastClass == ucd.SP
			}
		case CIBRK:
			shouldBreak = lastClass == ucd.SP
			if !shouldBreak {
				continue
			}
		case CPBRK:
			// CPBRK never breaks. It only reaches the post-rules
			// and the currentClass update below when lastClass is
			// SP; otherwise it early-returns with currentClass left
			// stale, so the next iteration's pair-table lookup
			// resumes from the unchanged currentClass rather than
			// nextClass.
			if lastClass != ucd.SP {
				continue
			}
		case PRBRK:
			// shouldBreak stays false.
		}

		// Rule LB22: no break before IN, except where allowed.
		if s.nextClass == ucd.IN {
			switch lastClass {
			case ucd.BK, ucd.CB, ucd.EX, ucd.LF, ucd.NL, ucd.SP, ucd.ZW:
				// shouldBreak stands.
			case ucd.CM:
				if s.lb22ex {
					s.lb22ex = false
				} else {
					shouldBreak = false
				}
			default:
				shouldBreak = false
			}
		}

		// Rule LB8a: no break immediately after ZWJ.
		if zwjBefore {
			shouldBreak = false
		}

		// Rule LB21a: no break after HY/BA following HL.
		if s.lb21a && (s.currentClass == ucd.HY || s.currentClass == ucd.BA) {
			shouldBreak = false
			s.lb21a = false
		} else {
			s.lb21a = s.currentClass == ucd.HL
		}

		// Rule LB30a: regional indicator pairing.
		if s.currentClass == ucd.RI {
			s.lb30a++
			if s.lb30a == 2 && s.nextClass == ucd.RI {
				shouldBreak = true
				s.lb30a = 0
			}
		} else {
			s.lb30a = 0
		}

		s.currentClass = s.nextClass

		if shouldBreak {
			out.Required = false
			out.PositionWrap = findPriorNonWhitespace(s.units, lastPosition)
			out.PositionRequired = lastPosition
			s.lastEndPos = lastPosition
			return true
		}
	}

	// End of input: emit the terminal break, unless it was already
	// emitted as the explicit-newline break at the very end.
	if s.lastEndPos >= len(s.units) {
		s.exhausted = true
		return false
	}

	out.Required = s.currentClass == ucd.BK || (s.currentClass == ucd.CR && s.nextClass != ucd.LF)
	out.PositionWrap = findPriorNonWhitespace(s.units, len(s.units))
	out.PositionRequired = len(s.units)
	s.lastEndPos = len(s.units)
	s.exhausted = true
	return true
}
