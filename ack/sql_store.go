// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package ack

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DefaultKey is the row the map is stored under.
const DefaultKey = "checkedNames"

// SQLStore keeps the serialized map in one row of a key/value table.
type SQLStore struct {
	db  *sql.DB
	key string
}

// NewSQLStore creates a store over db. An empty key means DefaultKey.
func NewSQLStore(db *sql.DB, key string) *SQLStore {
	if key == "" {
		key = DefaultKey
	}

	return &SQLStore{db: db, key: key}
}

// CreateSchema creates the kv table.
func (s *SQLStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key VARCHAR PRIMARY KEY,
			value VARCHAR NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating kv table: %w", err)
	}

	return nil
}

// Load implements Store. A missing row is an empty map.
func (s *SQLStore) Load(ctx context.Context) (Map, error) {
	var value string

	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return Map{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.key, err)
	}

	return decode([]byte(value))
}

// Save implements Store.
func (s *SQLStore) Save(ctx context.Context, m Map) error {
	data, err := encode(m)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, s.key, string(data))
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.key, err)
	}

	return nil
}
