package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandStr(t *testing.T) {
	for i := 0; i <= 10; i++ {
		s := RandStr(i)
		assert.Equal(t, i, len(s))
	}
}

func TestRandStrVaries(t *testing.T) {
	assert.NotEqual(t, RandStr(32), RandStr(32))
}
