// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable         = "kv_store"
	kvNameColumn    = "name"
	kvPayloadColumn = "payload"
	kvUpdatedColumn = "updated_at"
)

// sqlite uses ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildGetValueQuery selects the payload stored under key.
func buildGetValueQuery(key string) (string, []any, error) {
	query, args, err := psql.
		Select(kvPayloadColumn).
		From(kvTable).
		Where(sq.Eq{kvNameColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPutValueQuery inserts payload under key or replaces the existing row.
func buildPutValueQuery(key string, payload []byte, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(kvTable).
		Columns(kvNameColumn, kvPayloadColumn, kvUpdatedColumn).
		Values(key, payload, now.UTC()).
		Suffix(fmt.Sprintf(
			"ON CONFLICT(%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s, %[3]s = excluded.%[3]s",
			kvNameColumn, kvPayloadColumn, kvUpdatedColumn,
		)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
