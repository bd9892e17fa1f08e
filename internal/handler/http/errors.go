// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnknownKind is returned for /api/{kind} routes naming no collection.
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEmptyConfigUpdate is returned when PUT /api/sync/config carries no
	// field to change.
	ErrEmptyConfigUpdate = errors.New("no sync config field to update")
)
