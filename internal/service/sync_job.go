// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
)

// SyncJob calls SyncWithBackend on a ticker while auto sync and sync are both
// enabled. A tick that finds a sync in flight is skipped, not queued.
type SyncJob struct {
	syncer AutoSyncer
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob returns an idle job; nothing happens until Start.
func NewSyncJob(syncer AutoSyncer, logger *logger.Logger) *SyncJob {
	return &SyncJob{syncer: syncer, logger: logger}
}

// Start stops any previously running job and launches a goroutine ticking
// every interval. A non-positive interval means the syncer's own interval;
// only then does a later change of it reset the ticker on the next tick.
func (j *SyncJob) Start(ctx context.Context, interval time.Duration) {
	follow := interval <= 0
	if follow {
		interval = j.syncer.Interval()
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		current := interval
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
				if !follow {
					continue
				}
				if next := j.syncer.Interval(); next > 0 && next != current {
					current = next
					t.Reset(next)
				}
			}
		}
	}()
}

func (j *SyncJob) tick(ctx context.Context) {
	cfg := j.syncer.Config()
	if !cfg.AutoSync || !cfg.SyncEnabled {
		return
	}

	err := j.syncer.SyncWithBackend(ctx)
	switch {
	case errors.Is(err, ErrSyncInProgress):
		j.logger.Debug().Str("func", "SyncJob.tick").Msg("tick skipped, sync in flight")
	case err != nil:
		j.logger.Err(err).Str("func", "SyncJob.tick").Msg("auto sync failed")
	}
}

// Stop cancels the goroutine and waits for it to exit. Safe to call when
// the job is not running.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run starts the job with the syncer's own interval.
func (j *SyncJob) Run(ctx context.Context) {
	j.Start(ctx, 0)
}
