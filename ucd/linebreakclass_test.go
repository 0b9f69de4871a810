package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLineBreakClassExactEntries(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(LF, GetLineBreakClass(0x000A))
	assert.Equal(CR, GetLineBreakClass(0x000D))
	assert.Equal(SP, GetLineBreakClass(0x0020))
	assert.Equal(ZWJ, GetLineBreakClass(0x200D))
	assert.Equal(OP, GetLineBreakClass('('))
	assert.Equal(CP, GetLineBreakClass(')'))
}

func TestGetLineBreakClassRanges(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(NU, GetLineBreakClass('5'))
	assert.Equal(AL, GetLineBreakClass('a'))
	assert.Equal(RI, GetLineBreakClass(0x1F1E6))
	assert.Equal(ID, GetLineBreakClass(0x4E2D)) // 中
}

func TestGetLineBreakClassBroaderScripts(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(AL, GetLineBreakClass(0x03B1)) // α, Greek small letter alpha
	assert.Equal(AL, GetLineBreakClass(0x0410)) // А, Cyrillic capital letter A
	assert.Equal(AL, GetLineBreakClass(0x0531)) // Ա, Armenian capital letter Ayb
	assert.Equal(AL, GetLineBreakClass(0x0915)) // क, Devanagari letter Ka
	assert.Equal(HL, GetLineBreakClass(0x05D0)) // א, Hebrew letter Alef
	assert.Equal(CM, GetLineBreakClass(0x0591)) // Hebrew accent, not swallowed by the Hebrew block
	assert.Equal(SA, GetLineBreakClass(0x0E01)) // ก, Thai letter Ko Kai
	assert.Equal(SA, GetLineBreakClass(0x1000)) // က, Myanmar letter Ka
}

func TestGetLineBreakClassCJKPunctuationAndFullwidth(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(CL, GetLineBreakClass(0x3001)) // 、
	assert.Equal(CL, GetLineBreakClass(0x3002)) // 。
	assert.Equal(OP, GetLineBreakClass(0x300C)) // 「
	assert.Equal(CL, GetLineBreakClass(0x300D)) // 」
	assert.Equal(OP, GetLineBreakClass(0xFF08)) // fullwidth (
	assert.Equal(CL, GetLineBreakClass(0xFF09)) // fullwidth )
	assert.Equal(NS, GetLineBreakClass(0x30FB)) // katakana middle dot
}

func TestGetLineBreakClassEmojiBlocks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(RI, GetLineBreakClass(0x1F1EA)) // regional indicator E
	assert.Equal(EM, GetLineBreakClass(0x1F3FB)) // skin tone modifier
	assert.Equal(ID, GetLineBreakClass(0x1F600)) // grinning face emoticon
	assert.Equal(ID, GetLineBreakClass(0x1F680)) // rocket, transport block
	assert.Equal(ID, GetLineBreakClass(0x1F970)) // supplemental symbols and pictographs
	assert.Equal(ID, GetLineBreakClass(0x2702))  // scissors, dingbats
}

func TestGetLineBreakClassHangul(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(JL, GetLineBreakClass(0x1100))
	assert.Equal(JV, GetLineBreakClass(0x1161))
	assert.Equal(JT, GetLineBreakClass(0x11A8))
	assert.Equal(H2, GetLineBreakClass(0xAC00)) // GA, LV syllable
	assert.Equal(H3, GetLineBreakClass(0xAC01)) // GAG, LVT syllable
}

func TestGetLineBreakClassUnknownFallsBackToXX(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(XX, GetLineBreakClass(0x0530)) // unassigned Armenian-block codepoint
}
