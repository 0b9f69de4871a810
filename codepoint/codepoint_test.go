package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acaly/fonts/ucd"
)

func TestNewRejectsOutOfRangeAndSurrogates(t *testing.T) {
	assert := assert.New(t)

	cp, err := New(0x41)
	assert.NoError(err)
	assert.Equal(rune('A'), cp.Value())

	_, err = New(-1)
	assert.Error(err)

	_, err = New(MaxValue + 1)
	assert.Error(err)

	_, err = New(0xD800)
	assert.Error(err)
}

func TestIsAsciiIsBmp(t *testing.T) {
	assert := assert.New(t)

	a, _ := New('a')
	assert.True(a.IsAscii())
	assert.True(a.IsBmp())

	han, _ := New(0x4E2D) // 中
	assert.False(han.IsAscii())
	assert.True(han.IsBmp())

	supplementary, _ := New(0x1F600)
	assert.False(supplementary.IsAscii())
	assert.False(supplementary.IsBmp())
}

func TestIsBreakChar(t *testing.T) {
	assert := assert.New(t)

	lf, _ := New(0x0A)
	assert.True(lf.IsBreakChar())

	nel, _ := New(0x85)
	assert.True(nel.IsBreakChar())

	a, _ := New('a')
	assert.False(a.IsBreakChar())
}

func TestIsWhiteSpace(t *testing.T) {
	assert := assert.New(t)

	space, _ := New(' ')
	assert.True(space.IsWhiteSpace())

	a, _ := New('a')
	assert.False(a.IsWhiteSpace())

	// U+2028 LINE SEPARATOR carries bidi type WS and lives in the BMP.
	lineSep, _ := New(0x2028)
	assert.True(lineSep.IsWhiteSpace())

	// No supplementary-plane codepoint carries White_Space.
	supplementary, _ := New(0x1F600)
	assert.False(supplementary.IsWhiteSpace())
}

func TestGeneralCategoryAsciiFastPath(t *testing.T) {
	assert := assert.New(t)

	a, _ := New('a')
	assert.Equal(ucd.Ll, a.GeneralCategory())

	digit, _ := New('5')
	assert.Equal(ucd.Nd, digit.GeneralCategory())

	space, _ := New(' ')
	assert.Equal(ucd.Zs, space.GeneralCategory())
}
