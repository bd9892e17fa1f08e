// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
)

// Monitor subscribes to a [Source] between Start and Stop.
type Monitor struct {
	source Source
	target Target
	logger *logger.Logger

	mu          sync.Mutex
	online      bool
	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	inflight atomic.Bool
	wg       sync.WaitGroup
}

// NewMonitor returns a stopped monitor. The host is assumed online until the
// source says otherwise.
func NewMonitor(source Source, target Target, logger *logger.Logger) *Monitor {
	return &Monitor{
		source: source,
		target: target,
		logger: logger,
		online: true,
	}
}

// Start subscribes to the source. Background syncs run with a context
// derived from ctx. Calling Start on a running monitor restarts it.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.mu.Unlock()

	unsubscribe := m.source.Subscribe(m.handle)

	m.mu.Lock()
	m.unsubscribe = unsubscribe
	m.mu.Unlock()
}

// Run is Start for the workers runner.
func (m *Monitor) Run(ctx context.Context) {
	m.Start(ctx)
}

// Stop unsubscribes, cancels any triggered sync and waits for it to return.
func (m *Monitor) Stop() {
	m.mu.Lock()
	unsubscribe, cancel := m.unsubscribe, m.cancel
	m.unsubscribe, m.cancel = nil, nil
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *Monitor) handle(online bool) {
	m.mu.Lock()
	ctx, running := m.ctx, m.cancel != nil
	cameOnline := online && !m.online
	m.online = online
	m.mu.Unlock()

	if !running {
		return
	}

	m.target.SetOnline(ctx, online)
	m.logger.Debug().Str("func", "Monitor.handle").Bool("online", online).Msg("connectivity signal")

	if !cameOnline || !m.target.Config().SyncEnabled {
		return
	}
	if !m.inflight.CompareAndSwap(false, true) {
		return
	}

	m.mu.Lock()
	if m.cancel == nil {
		m.mu.Unlock()
		m.inflight.Store(false)
		return
	}
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		defer m.inflight.Store(false)

		if err := m.target.SyncWithBackend(ctx); err != nil {
			m.logger.Err(err).Str("func", "Monitor.handle").Msg("sync after reconnect failed")
		}
	}()
}
