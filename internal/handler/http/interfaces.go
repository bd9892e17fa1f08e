// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-admin-sync/models"
)

// SyncControls are the user-facing sync operations of the local store.
type SyncControls interface {
	Status() models.StoreStatus
	SetSyncEnabled(ctx context.Context, enabled bool) (models.SyncConfig, error)
	SetAutoSync(ctx context.Context, enabled bool) (models.SyncConfig, error)
	SetSyncInterval(ctx context.Context, minutes int) (models.SyncConfig, error)
	SyncWithBackend(ctx context.Context) error
	ApplyPendingChanges(ctx context.Context) error
	ClearSyncErrors(ctx context.Context)
}

// EntityCollection is the CRUD surface of one entity store.
type EntityCollection[L any] interface {
	List() []L
	AddEntity(ctx context.Context, e L) (L, error)
	UpdateEntity(ctx context.Context, id string, patch func(*L)) (L, error)
	DeleteEntity(ctx context.Context, id string) error
}
