package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("secret")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret", h)

	assert.True(t, Verify(h, "secret"))
	assert.False(t, Verify(h, "wrong"))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("secret")
	assert.NoError(t, err)
	h2, err := Hash("secret")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
