package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wpsaas/wpcloud/internal/common"
)

// SQLiteStore keeps state in a single `state(key, value)` table.
// The schema is created by the embedded goose migrations
// (internal/client/migrations).
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get state[%s]: %v", common.ErrorStorage, key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: set state[%s]: %v", common.ErrorStorage, key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: delete state[%s]: %v", common.ErrorStorage, key, err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM state`)
	if err != nil {
		return nil, fmt.Errorf("%w: list state: %v", common.ErrorStorage, err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: scan state row: %v", common.ErrorStorage, err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate state rows: %v", common.ErrorStorage, err)
	}

	return result, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM state`)
	if err != nil {
		return fmt.Errorf("%w: clear state: %v", common.ErrorStorage, err)
	}
	return nil
}
