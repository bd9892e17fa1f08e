// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-sync/internal/config"
	"github.com/MKhiriev/go-admin-sync/internal/logger"
)

// NewClientStorage initialises host persistence from cfg:
//  1. When cfg.DB.DSN is set, opens SQLite at that path, runs the schema
//     migrations and returns the SQL-backed [KV].
//  2. Otherwise returns the JSON file [KV] at cfg.File.Path.
func NewClientStorage(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (KV, error) {
	logger.Info().Msg("creating new storage...")

	if cfg.DB.DSN == "" {
		kv, err := NewFileKV(cfg.File.Path)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		logger.Info().Str("path", cfg.File.Path).Msg("using json file storage")
		return kv, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info().Str("dsn", cfg.DB.DSN).Msg("using sqlite storage")
	return NewSQLiteKV(db, logger), nil
}
