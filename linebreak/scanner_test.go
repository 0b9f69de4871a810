package linebreak

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

type wantBreak struct {
	required int
	wrap     int
}

func collect(t *testing.T, text string) []wantBreak {
	t.Helper()
	units := utf16.Encode([]rune(text))
	s := NewScanner(units)
	var got []wantBreak
	var lb LineBreak
	for s.TryGetNextBreak(&lb) {
		got = append(got, wantBreak{required: lb.PositionRequired, wrap: lb.PositionWrap})
	}
	return got
}

func TestScannerEmptyInput(t *testing.T) {
	s := NewScanner(nil)
	var lb LineBreak
	assert.False(t, s.TryGetNextBreak(&lb))
}

func TestScannerHelloWorld(t *testing.T) {
	assert := assert.New(t)
	breaks := collect(t, "Hello world")
	assert.Equal([]wantBreak{{6, 5}, {11, 11}}, breaks)
}

func TestScannerMandatoryLF(t *testing.T) {
	assert := assert.New(t)
	units := utf16.Encode([]rune("Hello\nworld"))
	s := NewScanner(units)
	var lb LineBreak
	assert.True(s.TryGetNextBreak(&lb))
	assert.True(lb.Required)
	assert.Equal(6, lb.PositionRequired)
	assert.Equal(5, lb.PositionWrap)

	assert.True(s.TryGetNextBreak(&lb))
	assert.False(lb.Required)
	assert.Equal(11, lb.PositionRequired)
	assert.Equal(11, lb.PositionWrap)

	assert.False(s.TryGetNextBreak(&lb))
}

func TestScannerCRLF(t *testing.T) {
	assert := assert.New(t)
	units := utf16.Encode([]rune("a\r\nb"))
	s := NewScanner(units)
	var lb LineBreak
	assert.True(s.TryGetNextBreak(&lb))
	assert.True(lb.Required)
	assert.Equal(3, lb.PositionRequired)
	assert.Equal(1, lb.PositionWrap)

	assert.True(s.TryGetNextBreak(&lb))
	assert.False(lb.Required)
	assert.Equal(4, lb.PositionRequired)
	assert.Equal(4, lb.PositionWrap)

	assert.False(s.TryGetNextBreak(&lb))
}

func TestScannerLoneCR(t *testing.T) {
	assert := assert.New(t)
	units := utf16.Encode([]rune("a\rb"))
	s := NewScanner(units)
	var lb LineBreak
	assert.True(s.TryGetNextBreak(&lb))
	assert.True(lb.Required)
	assert.Equal(2, lb.PositionRequired)
	assert.Equal(1, lb.PositionWrap)

	assert.True(s.TryGetNextBreak(&lb))
	assert.False(lb.Required)
	assert.Equal(3, lb.PositionRequired)
	assert.Equal(3, lb.PositionWrap)

	assert.False(s.TryGetNextBreak(&lb))
}

func TestScannerRegionalIndicatorPairing(t *testing.T) {
	assert := assert.New(t)
	// U+1F1EC U+1F1E7 U+1F1E9 U+1F1EA: GB then DE flag components, each
	// a surrogate pair, for a UTF-16 length of 8.
	units := utf16.Encode([]rune{0x1F1EC, 0x1F1E7, 0x1F1E9, 0x1F1EA})
	assert.Len(units, 8)

	s := NewScanner(units)
	var lb LineBreak
	assert.True(s.TryGetNextBreak(&lb))
	assert.False(lb.Required)
	assert.Equal(4, lb.PositionRequired)
	assert.Equal(4, lb.PositionWrap)

	assert.True(s.TryGetNextBreak(&lb))
	assert.False(lb.Required)
	assert.Equal(8, lb.PositionRequired)
	assert.Equal(8, lb.PositionWrap)

	assert.False(s.TryGetNextBreak(&lb))
}

func TestScannerMonotonicAndTerminal(t *testing.T) {
	assert := assert.New(t)
	units := utf16.Encode([]rune("The quick, brown fox jumps over the lazy dog."))
	s := NewScanner(units)
	var lb LineBreak
	last := -1
	var final LineBreak
	for s.TryGetNextBreak(&lb) {
		assert.Greater(lb.PositionRequired, last)
		assert.LessOrEqual(lb.PositionWrap, lb.PositionRequired)
		last = lb.PositionRequired
		final = lb
	}
	assert.Equal(len(units), final.PositionRequired)
}

func TestScannerCPBRKFallthroughAfterSpace(t *testing.T) {
	assert := assert.New(t)
	// "(" (OP) then a space run then a combining accent (CM): the OP/CM
	// cell is CPBRK, but lastClass is SP, so the scanner must still run
	// the post-rules and advance currentClass from OP to CM. A trailing
	// "$" (PR) then tells OP and CM apart: CM/PR is a direct break,
	// OP/PR never breaks, so a stale currentClass would silently
	// swallow the break before "$".
	units := utf16.Encode([]rune{'(', ' ', 0x0300, '$'})
	s := NewScanner(units)
	var lb LineBreak

	assert.True(s.TryGetNextBreak(&lb))
	assert.False(lb.Required)
	assert.Equal(3, lb.PositionRequired)
	assert.Equal(3, lb.PositionWrap)

	assert.True(s.TryGetNextBreak(&lb))
	assert.False(lb.Required)
	assert.Equal(4, lb.PositionRequired)
	assert.Equal(4, lb.PositionWrap)

	assert.False(s.TryGetNextBreak(&lb))
}

func TestScannerNoBreakAfterZWJ(t *testing.T) {
	assert := assert.New(t)
	// ZWJ glues an emoji sequence together; no break may land right
	// after it even though the surrounding classes would otherwise
	// permit one.
	units := utf16.Encode([]rune{'a', 0x200D, 0x4E2D, ' ', 'c'})
	s := NewScanner(units)
	var lb LineBreak
	for s.TryGetNextBreak(&lb) {
		assert.NotEqual(2, lb.PositionRequired, "no break immediately after ZWJ at index 1")
	}
}
