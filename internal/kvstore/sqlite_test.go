package kvstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpsaas/wpcloud/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "app.auth", []byte(`{"user":null}`)))

	v, err := s.Get(ctx, "app.auth")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"user":null}`), v)
}

func TestSQLiteStore_Get_Absent_ReturnsNilNil(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_Set_Upserts(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLiteStore_List(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, s.Set(ctx, "b", []byte{0xBB, 0xCC}))

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, []byte{0xAA}, m["a"])
	assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])
}

func TestSQLiteStore_Delete_Idempotent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_Clear(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))
	require.NoError(t, s.Clear(ctx))

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestSQLiteStore_Get_ClosedDB_ReportsStorageError(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	require.NoError(t, db.Close())

	_, err := s.Get(context.Background(), "k")
	require.ErrorIs(t, err, common.ErrorStorage)
}
