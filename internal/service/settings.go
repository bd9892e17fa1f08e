// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/store"
	"github.com/MKhiriev/go-admin-sync/models"
)

const syncConfigKey = "sync_config"

// SettingsOptions are the deployment-level knobs that shape the defaults of
// [Settings].
type SettingsOptions struct {
	// QueueWhileDisabled queues mutations issued while sync is disabled
	// instead of keeping them local only.
	QueueWhileDisabled bool

	// InitialSyncEnabled is the SyncEnabled value used until the user
	// changes it.
	InitialSyncEnabled bool

	// FallbackInterval is the auto-sync period used when the stored config
	// carries no positive interval.
	FallbackInterval time.Duration
}

// Settings holds the sync config shared by every collection. It changes only
// on explicit user action and is persisted on every change.
type Settings struct {
	mu   sync.RWMutex
	cfg  models.SyncConfig
	opts SettingsOptions

	kv     store.KV
	logger *logger.Logger
}

func NewSettings(kv store.KV, opts SettingsOptions, logger *logger.Logger) *Settings {
	return &Settings{
		cfg: models.SyncConfig{
			SyncEnabled:         opts.InitialSyncEnabled,
			SyncIntervalMinutes: models.DefaultSyncIntervalMinutes,
		},
		opts:   opts,
		kv:     kv,
		logger: logger,
	}
}

// Config returns a copy of the current config.
func (s *Settings) Config() models.SyncConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Settings) QueueWhileDisabled() bool {
	return s.opts.QueueWhileDisabled
}

// Interval returns the auto-sync period: the configured minutes, else the
// fallback interval, else five minutes.
func (s *Settings) Interval() time.Duration {
	cfg := s.Config()
	if cfg.SyncIntervalMinutes > 0 {
		return cfg.Interval()
	}
	if s.opts.FallbackInterval > 0 {
		return s.opts.FallbackInterval
	}
	return models.DefaultSyncIntervalMinutes * time.Minute
}

// Update applies fn to the config and persists the result. The in-memory
// value is updated even when persisting fails.
func (s *Settings) Update(ctx context.Context, fn func(*models.SyncConfig)) (models.SyncConfig, error) {
	s.mu.Lock()
	fn(&s.cfg)
	cfg := s.cfg
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "Settings.Update").
		Bool("sync_enabled", cfg.SyncEnabled).
		Bool("auto_sync", cfg.AutoSync).
		Int("interval_minutes", cfg.SyncIntervalMinutes).
		Msg("sync config changed")

	if s.kv == nil {
		return cfg, nil
	}
	if err := store.SaveJSON(context.WithoutCancel(ctx), s.kv, syncConfigKey, cfg); err != nil {
		return cfg, fmt.Errorf("persist sync config: %w", err)
	}
	return cfg, nil
}

// Load restores the persisted config. A missing key keeps the defaults.
func (s *Settings) Load(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	var cfg models.SyncConfig
	found, err := store.LoadJSON(ctx, s.kv, syncConfigKey, &cfg)
	if err != nil {
		return fmt.Errorf("load sync config: %w", err)
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}
