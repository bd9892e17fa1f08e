// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
)

type sqliteKV struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteKV returns a [KV] backed by the kv_store table of db.
// The schema must already be migrated.
func NewSQLiteKV(db *DB, logger *logger.Logger) KV {
	return &sqliteKV{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteKV.Get").Str("key", key).Msg("failed to build query")
		return nil, err
	}

	var payload []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrKeyNotFound
	case err != nil:
		log.Err(err).Str("func", "sqliteKV.Get").Str("key", key).Msg("failed to read value")
		return nil, fmt.Errorf("%w (key=%s): %w", ErrScanningRow, key, err)
	}

	return payload, nil
}

func (s *sqliteKV) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPutValueQuery(key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqliteKV.Put").Str("key", key).Msg("failed to build query")
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteKV.Put").Str("key", key).Msg("failed to execute upsert")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (s *sqliteKV) Close() error {
	return s.db.Close()
}
