package codepoint

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRuneBmp(t *testing.T) {
	assert := assert.New(t)
	units := utf16.Encode([]rune("ab"))
	cp, width := DecodeRune(units, 0)
	assert.Equal(CodePoint('a'), cp)
	assert.Equal(1, width)
}

func TestDecodeRuneSurrogatePair(t *testing.T) {
	assert := assert.New(t)
	units := utf16.Encode([]rune{0x1F600})
	assert.Len(units, 2)

	cp, width := DecodeRune(units, 0)
	assert.Equal(CodePoint(0x1F600), cp)
	assert.Equal(2, width)
}

func TestDecodeRuneLoneSurrogate(t *testing.T) {
	assert := assert.New(t)
	units := []uint16{0xD800, 'x'}

	cp, width := DecodeRune(units, 0)
	assert.Equal(Replacement, cp)
	assert.Equal(1, width)

	cp, width = DecodeRune(units, 1)
	assert.Equal(CodePoint('x'), cp)
	assert.Equal(1, width)
}

func TestDecodeRuneOutOfRange(t *testing.T) {
	assert := assert.New(t)
	cp, width := DecodeRune(nil, 0)
	assert.Equal(Replacement, cp)
	assert.Equal(1, width)
}

func TestDecodeLastRuneRoundtrip(t *testing.T) {
	assert := assert.New(t)
	units := utf16.Encode([]rune{'a', 0x1F600, 'b'})

	// Forward decode from each index, then reverse decode from the
	// resulting position, must land on the same codepoint.
	i := 0
	for i < len(units) {
		fwd, width := DecodeRune(units, i)
		back, backWidth := DecodeLastRune(units, i+width)
		assert.Equal(fwd, back)
		assert.Equal(width, backWidth)
		i += width
	}
}

func TestDecodeLastRuneLoneSurrogate(t *testing.T) {
	assert := assert.New(t)
	units := []uint16{'x', 0xDC00}

	cp, width := DecodeLastRune(units, 2)
	assert.Equal(Replacement, cp)
	assert.Equal(1, width)
}
