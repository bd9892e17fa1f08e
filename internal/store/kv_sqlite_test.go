// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSQLiteKV(t *testing.T) (*sqliteKV, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	kv := &sqliteKV{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return kv, mock, db
}

func TestSQLiteKV_Get_Success(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM kv_store WHERE name = ?")).
		WithArgs("sync_config").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{"sync_enabled":true}`)))

	got, err := kv.Get(context.Background(), "sync_config")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sync_enabled":true}`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Get_NotFound(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM kv_store").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, err := kv.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Get_QueryError(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	dbErr := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT payload FROM kv_store").
		WithArgs("k").
		WillReturnError(dbErr)

	_, err := kv.Get(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteKV_Put_Success(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("entities/tasks", []byte(`[{"id":"1"}]`), fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := kv.Put(context.Background(), "entities/tasks", []byte(`[{"id":"1"}]`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Put_ExecError(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))

	err := kv.Put(context.Background(), "k", []byte(`1`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "key=k")
}

func TestSQLiteKV_Close(t *testing.T) {
	kv, mock, _ := newTestSQLiteKV(t)

	mock.ExpectClose()
	require.NoError(t, kv.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
