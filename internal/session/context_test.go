package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpsaas/wpcloud/internal/kvstore"
)

func TestFromContext_RoundTrip(t *testing.T) {
	m := NewManager(context.Background(), kvstore.NewMemoryStore(), testLogger())
	ctx := NewContext(context.Background(), m)

	assert.Same(t, m, FromContext(ctx))
}

func TestFromContext_Missing_Panics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		assert.Equal(t, ErrContextMissing, r)
	}()
	FromContext(context.Background())
}
