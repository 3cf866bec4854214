package trace_info

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogId(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetLogId(ctx))

	ctx = WithLogId(ctx, "log-1")
	assert.Equal(t, "log-1", GetLogId(ctx))
}
