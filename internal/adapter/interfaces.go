// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the
// administrative backend.
//
// The primary abstraction is [RemoteClient], one instance per entity
// resource, which issues create/read/update/delete calls in the backend wire
// shape. Every method returns a [models.Result] and never an error value:
// transport failures, non-2xx statuses and undecodable payloads are all
// normalised into the failure branch of the result.
//
// Status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError before being flattened into the result message, so the log
// lines written here still carry the classified error.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-admin-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// RemoteClient issues CRUD calls for a single backend resource whose wire
// representation is B.
type RemoteClient[B any] interface {
	// FetchAll lists every record of the resource (GET /api/<resource>).
	// Records are returned undecoded so that the caller can drop malformed
	// entries one by one instead of failing the whole listing.
	FetchAll(ctx context.Context) models.Result[[]json.RawMessage]

	// Create sends a new record (POST /api/<resource>) and returns the
	// record as stored by the backend.
	Create(ctx context.Context, record B) models.Result[B]

	// Update replaces the record identified by id
	// (PUT /api/<resource>/{id}) and returns the stored record.
	Update(ctx context.Context, id string, record B) models.Result[B]

	// Delete removes the record identified by id
	// (DELETE /api/<resource>/{id}).
	Delete(ctx context.Context, id string) models.Result[struct{}]
}
