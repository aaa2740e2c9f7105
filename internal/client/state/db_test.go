package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func TestOpen_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, store, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// The state table must exist and be usable right away.
	require.NoError(t, store.Set(ctx, "app.server", []byte(`{}`)))

	v, err := store.Get(ctx, "app.server")
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), v)
}

func TestOpen_Reopen_KeepsData(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	db, store, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, db.Close())

	db2, store2, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	v, err := store2.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
}
