// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"

	"github.com/MKhiriev/go-admin-sync/models"
)

// Source emits connectivity signals to its subscribers.
type Source interface {
	// Subscribe registers fn for every future signal. The returned func
	// removes the subscription and is safe to call more than once.
	Subscribe(fn func(online bool)) (unsubscribe func())
}

// Target is what the [Monitor] reports to.
type Target interface {
	SetOnline(ctx context.Context, online bool)
	Config() models.SyncConfig
	SyncWithBackend(ctx context.Context) error
}
