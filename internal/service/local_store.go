// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/store"
	"github.com/MKhiriev/go-admin-sync/models"
)

// Syncers groups the network side of every collection.
type Syncers struct {
	Employees Syncer[models.Employee]
	Vendors   Syncer[models.Vendor]
	Systems   Syncer[models.System]
	Risks     Syncer[models.Risk]
	Assets    Syncer[models.Asset]
	Tasks     Syncer[models.Task]
}

// LocalStore aggregates the entity stores of every kind and the shared sync
// config. It is the only object the host surface talks to.
type LocalStore struct {
	Employees *EntityStore[models.Employee]
	Vendors   *EntityStore[models.Vendor]
	Systems   *EntityStore[models.System]
	Risks     *EntityStore[models.Risk]
	Assets    *EntityStore[models.Asset]
	Tasks     *EntityStore[models.Task]

	settings    *Settings
	collections []Collection
	syncing     atomic.Bool
	logger      *logger.Logger
}

// NewLocalStore builds an empty store for every kind. Call Load to restore
// what earlier sessions persisted.
func NewLocalStore(syncers Syncers, settings *Settings, kv store.KV, ids IDGenerator, logger *logger.Logger) *LocalStore {
	s := &LocalStore{
		Employees: NewEntityStore(models.KindEmployee, syncers.Employees, settings, kv, ids, logger),
		Vendors:   NewEntityStore(models.KindVendor, syncers.Vendors, settings, kv, ids, logger),
		Systems:   NewEntityStore(models.KindSystem, syncers.Systems, settings, kv, ids, logger),
		Risks:     NewEntityStore(models.KindRisk, syncers.Risks, settings, kv, ids, logger),
		Assets:    NewEntityStore(models.KindAsset, syncers.Assets, settings, kv, ids, logger),
		Tasks:     NewEntityStore(models.KindTask, syncers.Tasks, settings, kv, ids, logger),
		settings:  settings,
		logger:    logger,
	}
	s.collections = []Collection{s.Employees, s.Vendors, s.Systems, s.Risks, s.Assets, s.Tasks}
	return s
}

// Settings returns the shared sync settings.
func (s *LocalStore) Settings() *Settings {
	return s.settings
}

// Config implements [AutoSyncer].
func (s *LocalStore) Config() models.SyncConfig {
	return s.settings.Config()
}

// Interval implements [AutoSyncer].
func (s *LocalStore) Interval() time.Duration {
	return s.settings.Interval()
}

// Collection returns the kind-agnostic view of one entity store.
func (s *LocalStore) Collection(kind models.Kind) (Collection, bool) {
	for _, c := range s.collections {
		if c.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

func (s *LocalStore) SetSyncEnabled(ctx context.Context, enabled bool) (models.SyncConfig, error) {
	return s.settings.Update(ctx, func(c *models.SyncConfig) { c.SyncEnabled = enabled })
}

func (s *LocalStore) SetAutoSync(ctx context.Context, enabled bool) (models.SyncConfig, error) {
	return s.settings.Update(ctx, func(c *models.SyncConfig) { c.AutoSync = enabled })
}

// SetSyncInterval sets the auto-sync period in minutes.
func (s *LocalStore) SetSyncInterval(ctx context.Context, minutes int) (models.SyncConfig, error) {
	if minutes <= 0 {
		return s.settings.Config(), fmt.Errorf("%w: %d", ErrInvalidInterval, minutes)
	}
	return s.settings.Update(ctx, func(c *models.SyncConfig) { c.SyncIntervalMinutes = minutes })
}

// SyncWithBackend pulls and reconciles every collection concurrently. The
// per-kind failures are joined; a call made while another aggregate pass
// runs returns [ErrSyncInProgress].
func (s *LocalStore) SyncWithBackend(ctx context.Context) error {
	return s.fanOut(ctx, "LocalStore.SyncWithBackend", Collection.SyncWithBackend)
}

// ApplyPendingChanges flushes the queue of every collection concurrently.
func (s *LocalStore) ApplyPendingChanges(ctx context.Context) error {
	return s.fanOut(ctx, "LocalStore.ApplyPendingChanges", Collection.ApplyPendingChanges)
}

func (s *LocalStore) fanOut(ctx context.Context, fn string, op func(Collection, context.Context) error) error {
	if !s.syncing.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	errs := make([]error, len(s.collections))
	var wg sync.WaitGroup
	for i, c := range s.collections {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = op(c, ctx)
		}()
	}
	wg.Wait()

	err := errors.Join(errs...)
	if err != nil {
		s.logger.Err(err).Str("func", fn).Msg("pass finished with errors")
		return err
	}
	s.logger.Info().Str("func", fn).Msg("pass finished")
	return nil
}

func (s *LocalStore) ClearSyncErrors(ctx context.Context) {
	for _, c := range s.collections {
		c.ClearSyncErrors(ctx)
	}
}

// SetOnline records a connectivity signal on every collection.
func (s *LocalStore) SetOnline(ctx context.Context, online bool) {
	for _, c := range s.collections {
		c.SetOnline(ctx, online)
	}
}

// Status returns the per-kind state summary and the shared config.
func (s *LocalStore) Status() models.StoreStatus {
	out := models.StoreStatus{
		Config:      s.settings.Config(),
		Collections: make([]models.SyncStatus, 0, len(s.collections)),
	}
	for _, c := range s.collections {
		out.Collections = append(out.Collections, c.Status())
	}
	return out
}

// Load restores the config and every collection.
func (s *LocalStore) Load(ctx context.Context) error {
	errs := []error{s.settings.Load(ctx)}
	for _, c := range s.collections {
		errs = append(errs, c.Load(ctx))
	}
	return errors.Join(errs...)
}
