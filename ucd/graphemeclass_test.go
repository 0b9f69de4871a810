package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGraphemeClusterClass(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(GCBCR, GetGraphemeClusterClass(0x000D))
	assert.Equal(GCBLF, GetGraphemeClusterClass(0x000A))
	assert.Equal(GCBZWJ, GetGraphemeClusterClass(0x200D))
	assert.Equal(GCBRegionalIndicator, GetGraphemeClusterClass(0x1F1E6))
	assert.Equal(GCBL, GetGraphemeClusterClass(0x1100))
	assert.Equal(GCBExtend, GetGraphemeClusterClass(0x0300))
	assert.Equal(GCBOther, GetGraphemeClusterClass('a'))
}

func TestGetGraphemeClusterClassCategoryFallbacks(t *testing.T) {
	assert := assert.New(t)

	// Devanagari vowel sign AA (Mc): not named by any explicit range,
	// resolved only through the Mc general-category catch-all.
	assert.Equal(GCBSpacingMark, GetGraphemeClusterClass(0x093E))
	// Hebrew accent etnahta (Mn): same story via the Mn catch-all.
	assert.Equal(GCBExtend, GetGraphemeClusterClass(0x0591))
	// Combining Cyrillic ten millions sign (Me), via the Me catch-all.
	assert.Equal(GCBExtend, GetGraphemeClusterClass(0xA670))
}

func TestGetGraphemeClusterClassPrependAndControl(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(GCBPrepend, GetGraphemeClusterClass(0x0600))
	assert.Equal(GCBControl, GetGraphemeClusterClass(0x2028))
}
