// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signalLog struct {
	mu  sync.Mutex
	got []bool
}

func (l *signalLog) add(online bool) {
	l.mu.Lock()
	l.got = append(l.got, online)
	l.mu.Unlock()
}

func (l *signalLog) list() []bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]bool(nil), l.got...)
}

func newProbeClient(url string) *utils.HTTPClient {
	c := utils.NewHTTPClient()
	c.SetBaseURL(url).SetTimeout(time.Second)
	return c
}

func TestProbeSource_EmitsTransitionsOnly(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		if healthy.Load() {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewProbeSource(newProbeClient(srv.URL), "/api/health", 5*time.Millisecond, logger.Nop())
	var log signalLog
	defer p.Subscribe(log.add)()

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return len(log.list()) == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []bool{true}, log.list())

	healthy.Store(false)
	require.Eventually(t, func() bool { return len(log.list()) == 2 }, time.Second, time.Millisecond)
	healthy.Store(true)
	require.Eventually(t, func() bool { return len(log.list()) == 3 }, time.Second, time.Millisecond)

	assert.Equal(t, []bool{true, false, true}, log.list())
}

func TestProbeSource_UnreachableIsOffline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewProbeSource(newProbeClient(url), "/api/health", time.Hour, logger.Nop())
	var log signalLog
	p.Subscribe(log.add)

	p.Run(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return len(log.list()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, []bool{false}, log.list())
}

func TestProbeSource_DefaultInterval(t *testing.T) {
	p := NewProbeSource(utils.NewHTTPClient(), "/", 0, logger.Nop())

	assert.Equal(t, DefaultProbeInterval, p.interval)
	assert.NotPanics(t, p.Stop)
}
