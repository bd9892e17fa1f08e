// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by KV implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing was stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidValue is returned by the file store when the value is not a
	// valid JSON document.
	ErrInvalidValue = errors.New("value is not valid json")
)

// Low-level database operation errors. These are returned (or wrapped) when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
