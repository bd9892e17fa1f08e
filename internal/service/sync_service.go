// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-admin-sync/internal/adapter"
	"github.com/MKhiriev/go-admin-sync/internal/entity"
	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/retry"
	"github.com/MKhiriev/go-admin-sync/models"
)

// SyncService composes an entity adapter, a remote client and the retry
// executor into the four operations of one collection.
type SyncService[L models.Entity[L], B any] struct {
	kind    models.Kind
	client  adapter.RemoteClient[B]
	adapter entity.Adapter[L, B]
	policy  retry.Policy
	logger  *logger.Logger
}

// NewSyncService returns a [SyncService] for kind. Pushes are retried
// according to policy; the pull is issued once per call.
func NewSyncService[L models.Entity[L], B any](
	kind models.Kind,
	client adapter.RemoteClient[B],
	adapter entity.Adapter[L, B],
	policy retry.Policy,
	logger *logger.Logger,
) *SyncService[L, B] {
	return &SyncService[L, B]{
		kind:    kind,
		client:  client,
		adapter: adapter,
		policy:  policy,
		logger:  logger.WithKind(string(kind)),
	}
}

// PullAll implements [Syncer].
func (s *SyncService[L, B]) PullAll(ctx context.Context) models.Result[[]L] {
	res := s.client.FetchAll(ctx)
	if !res.OK {
		return models.FailMsg[[]L](res.Error)
	}

	entities := make([]L, 0, len(res.Data))
	dropped := 0
	for i, raw := range res.Data {
		local, err := s.decode(raw)
		if err != nil {
			dropped++
			s.logger.Warn().
				Err(err).
				Str("func", "SyncService.PullAll").
				Int("index", i).
				Msg("dropping malformed backend record")
			continue
		}
		entities = append(entities, local)
	}

	s.logger.Debug().
		Str("func", "SyncService.PullAll").
		Int("received", len(res.Data)).
		Int("dropped", dropped).
		Msg("pulled backend collection")

	return models.Ok(entities)
}

func (s *SyncService[L, B]) decode(raw json.RawMessage) (L, error) {
	var (
		remote B
		zero   L
	)
	if err := json.Unmarshal(raw, &remote); err != nil {
		return zero, fmt.Errorf("%w: %w", entity.ErrMalformedRecord, err)
	}
	return s.adapter.ToLocal(remote)
}

// PushCreate implements [Syncer].
func (s *SyncService[L, B]) PushCreate(ctx context.Context, e L) models.Result[L] {
	record := s.adapter.ToBackend(e)
	res := retry.Run(ctx, s.policy, func(ctx context.Context) models.Result[B] {
		return s.client.Create(ctx, record)
	})
	return s.toLocal("SyncService.PushCreate", res)
}

// PushUpdate implements [Syncer].
func (s *SyncService[L, B]) PushUpdate(ctx context.Context, id string, patch L) models.Result[L] {
	record := s.adapter.ToBackend(patch.WithID(id))
	res := retry.Run(ctx, s.policy, func(ctx context.Context) models.Result[B] {
		return s.client.Update(ctx, id, record)
	})
	return s.toLocal("SyncService.PushUpdate", res)
}

// PushDelete implements [Syncer].
func (s *SyncService[L, B]) PushDelete(ctx context.Context, id string) models.Result[struct{}] {
	res := retry.Run(ctx, s.policy, func(ctx context.Context) models.Result[struct{}] {
		return s.client.Delete(ctx, id)
	})
	if !res.OK {
		s.logger.Error().Str("func", "SyncService.PushDelete").Str("id", id).Str("error", res.Error).Msg("push failed")
	}
	return res
}

func (s *SyncService[L, B]) toLocal(fn string, res models.Result[B]) models.Result[L] {
	if !res.OK {
		s.logger.Error().Str("func", fn).Str("error", res.Error).Msg("push failed")
		return models.FailMsg[L](res.Error)
	}

	local, err := s.adapter.ToLocal(res.Data)
	if err != nil {
		s.logger.Err(err).Str("func", fn).Msg("backend confirmed an unusable record")
		return models.Fail[L](err)
	}
	return models.Ok(local)
}

// Reconcile merges a pulled collection into the local one: every backend
// entity in backend order, then the local entities whose id the backend does
// not know, in local order. Entities present on both sides take the backend
// value unchanged. A backend id listed twice keeps its first occurrence.
func Reconcile[L models.Entity[L]](backend, local []L) []L {
	seen := make(map[string]struct{}, len(backend))
	merged := make([]L, 0, len(backend)+len(local))

	for _, e := range backend {
		if _, dup := seen[e.EntityID()]; dup {
			continue
		}
		seen[e.EntityID()] = struct{}{}
		merged = append(merged, e)
	}
	for _, e := range local {
		if _, ok := seen[e.EntityID()]; ok {
			continue
		}
		merged = append(merged, e)
	}

	return merged
}
