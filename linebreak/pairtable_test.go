package linebreak

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acaly/fonts/ucd"
)

func TestClassIndexCoversTableClasses(t *testing.T) {
	assert := assert.New(t)

	i, ok := classIndex(ucd.OP)
	assert.True(ok)
	assert.Equal(0, i)

	i, ok = classIndex(ucd.CB)
	assert.True(ok)
	assert.Equal(numClasses-1, i)

	_, ok = classIndex(ucd.XX)
	assert.False(ok)
}

func TestLookupPairKnownCells(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(PRBRK, lookupPair(ucd.OP, ucd.CL))
	assert.Equal(DIBRK, lookupPair(ucd.CL, ucd.OP))
	assert.Equal(CIBRK, lookupPair(ucd.AL, ucd.CM))
	assert.Equal(DIBRK, lookupPair(ucd.CB, ucd.CB))
	assert.Equal(PRBRK, lookupPair(ucd.ID, ucd.EM))
	assert.Equal(INBRK, lookupPair(ucd.RI, ucd.RI))
}
