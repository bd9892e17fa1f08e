// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/utils"
)

const DefaultProbeInterval = 30 * time.Second

// ProbeSource polls the backend health endpoint and emits a signal whenever
// reachability changes. A 2xx answer means online.
type ProbeSource struct {
	client   *utils.HTTPClient
	path     string
	interval time.Duration
	logger   *logger.Logger

	subs *ManualSource

	mu     sync.Mutex
	last   *bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewProbeSource(client *utils.HTTPClient, path string, interval time.Duration, logger *logger.Logger) *ProbeSource {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &ProbeSource{
		client:   client,
		path:     path,
		interval: interval,
		logger:   logger,
		subs:     NewManualSource(),
	}
}

// Subscribe implements [Source].
func (p *ProbeSource) Subscribe(fn func(online bool)) func() {
	return p.subs.Subscribe(fn)
}

// Start probes once right away and then every interval until Stop or ctx
// cancellation.
func (p *ProbeSource) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.check(probeCtx)
		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				p.check(probeCtx)
			}
		}
	}()
}

// Run is Start for the workers runner.
func (p *ProbeSource) Run(ctx context.Context) {
	p.Start(ctx)
}

func (p *ProbeSource) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *ProbeSource) check(ctx context.Context) {
	online := p.probe(ctx)
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	changed := p.last == nil || *p.last != online
	p.last = &online
	p.mu.Unlock()

	if !changed {
		return
	}
	p.logger.Info().Str("func", "ProbeSource.check").Bool("online", online).Msg("backend reachability changed")
	p.subs.Emit(online)
}

func (p *ProbeSource) probe(ctx context.Context) bool {
	resp, err := p.client.R().SetContext(ctx).Get(p.path)
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "ProbeSource.probe").Msg("health probe failed")
		return false
	}
	return resp.IsSuccess()
}
