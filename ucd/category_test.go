package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGeneralCategory(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Ll, GetGeneralCategory('a'))
	assert.Equal(Lu, GetGeneralCategory('A'))
	assert.Equal(Nd, GetGeneralCategory('5'))
	assert.Equal(Zs, GetGeneralCategory(' '))
	assert.Equal(Mn, GetGeneralCategory(0x0300)) // combining grave accent
	assert.Equal(Cn, GetGeneralCategory(0x0378)) // unassigned
}
