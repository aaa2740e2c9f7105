// Package state wires the client's local SQLite database: it opens the
// connection and applies embedded goose migrations, returning the key-value
// store the session layer persists through.
package state

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/wpsaas/wpcloud/internal/client/migrations"
	"github.com/wpsaas/wpcloud/internal/kvstore"
)

// RunMigrations applies the embedded client migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (or creates) the state database at dsn and returns the durable
// key-value store backed by it. The caller owns closing the returned DB.
func Open(ctx context.Context, dsn string) (*sql.DB, kvstore.Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, kvstore.NewSQLiteStore(db), nil
}
