package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	id, ok := IDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-123", id)
}

func TestIDFromContextMissing(t *testing.T) {
	id, ok := IDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestIDFromContextEmptyValue(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	_, ok := IDFromContext(ctx)
	assert.False(t, ok)
}

func TestEnsureRequestID(t *testing.T) {
	t.Run("returns existing ID", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "existing")
		assert.Equal(t, "existing", EnsureRequestID(ctx))
	})

	t.Run("generates UUID when absent", func(t *testing.T) {
		id := EnsureRequestID(context.Background())
		assert.Len(t, id, 36)
	})
}
