// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-admin-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=Collection

// Syncer is the network side of one entity collection. Every method speaks
// the local entity shape and reports failures through the result, never as
// an error value.
type Syncer[L any] interface {
	// PullAll fetches every remote entity. Malformed records are dropped
	// individually; the call fails only when the listing itself fails.
	PullAll(ctx context.Context) models.Result[[]L]

	// PushCreate sends a new entity and returns the backend-confirmed value.
	PushCreate(ctx context.Context, entity L) models.Result[L]

	// PushUpdate replaces the entity identified by id with patch and returns
	// the backend-confirmed value.
	PushUpdate(ctx context.Context, id string, patch L) models.Result[L]

	// PushDelete removes the entity identified by id.
	PushDelete(ctx context.Context, id string) models.Result[struct{}]
}

// Collection is the kind-agnostic surface of an [EntityStore] that the
// [LocalStore] fans its controls out to.
type Collection interface {
	Kind() models.Kind
	SyncWithBackend(ctx context.Context) error
	ApplyPendingChanges(ctx context.Context) error
	ClearSyncErrors(ctx context.Context)
	SetOnline(ctx context.Context, online bool)
	Status() models.SyncStatus
	Load(ctx context.Context) error
}

// IDGenerator assigns identifiers to locally created entities.
type IDGenerator interface {
	Generate() string
}

// AutoSyncer is what the [SyncJob] drives on every tick.
type AutoSyncer interface {
	Config() models.SyncConfig
	Interval() time.Duration
	SyncWithBackend(ctx context.Context) error
}
