package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, GetTraceID(SetTraceID(context.Background())))
}

func TestOwnerID(t *testing.T) {
	_, ok := GetOwnerID(context.Background())
	assert.False(t, ok)

	_, ok = GetOwnerID(WithOwnerID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := GetOwnerID(WithOwnerID(context.Background(), "owner-1"))
	assert.True(t, ok)
	assert.Equal(t, "owner-1", id)
}
