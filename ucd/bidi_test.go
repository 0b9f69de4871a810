package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBidiType(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(BidiWS, GetBidiType(0x2028)) // LINE SEPARATOR
	assert.NotEqual(BidiWS, GetBidiType('a'))
}
