// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-admin-sync/internal/adapter"
	"github.com/MKhiriev/go-admin-sync/internal/config"
	"github.com/MKhiriev/go-admin-sync/internal/connectivity"
	"github.com/MKhiriev/go-admin-sync/internal/handler"
	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/internal/retry"
	"github.com/MKhiriev/go-admin-sync/internal/server"
	"github.com/MKhiriev/go-admin-sync/internal/service"
	"github.com/MKhiriev/go-admin-sync/internal/store"
	"github.com/MKhiriev/go-admin-sync/internal/utils"
	"github.com/MKhiriev/go-admin-sync/internal/workers"
)

type App struct {
	store   *service.LocalStore
	kv      store.KV
	workers *workers.Workers
	server  server.Server
	logger  *logger.Logger
}

// NewApp builds the full object graph from cfg. When cfg.Server has no
// address the app runs headless.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	kv, err := store.NewClientStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	client, err := adapter.NewBackendHTTPClient(cfg.Adapter)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("create backend client: %w", err)
	}

	policy := retry.Policy{MaxAttempts: cfg.Retry.MaxAttempts, Delay: cfg.Retry.Delay}
	settings := service.NewSettings(kv, service.SettingsOptions{
		QueueWhileDisabled: cfg.App.QueueWhileDisabled,
		InitialSyncEnabled: cfg.App.InitialSyncEnabled,
		FallbackInterval:   cfg.Workers.SyncInterval,
	}, logger)

	localStore := service.NewLocalStore(
		service.NewHTTPSyncers(client, policy, logger),
		settings,
		kv,
		utils.NewUUIDGenerator(),
		logger,
	)

	probe := connectivity.NewProbeSource(client, cfg.Adapter.HealthPath, cfg.Workers.ProbeInterval, logger)
	monitor := connectivity.NewMonitor(probe, localStore, logger)
	job := service.NewSyncJob(localStore, logger)

	app := &App{
		store: localStore,
		kv:    kv,
		// the monitor subscribes before the probe emits its first reading
		workers: workers.NewWorkers(monitor, probe, job),
		logger:  logger,
	}

	handlers, err := handler.NewHandlers(localStore, cfg.Server, logger)
	if err != nil {
		logger.Info().Msg("control surface disabled, running headless")
		return app, nil
	}

	app.server, err = server.NewServer(handlers, cfg.Server, logger)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}
	return app, nil
}

// Run restores persisted state, performs the initial sync, starts the
// background workers and blocks until a stop signal arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	if err := a.store.Load(ctx); err != nil {
		return fmt.Errorf("load local state: %w", err)
	}

	if a.store.Config().SyncEnabled {
		if err := a.store.SyncWithBackend(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial sync failed")
		}
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if a.server != nil {
		// RunServer returns after the same stop signal cancels ctx.
		a.server.RunServer()
		return nil
	}

	<-ctx.Done()
	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) close() {
	if err := a.kv.Close(); err != nil {
		a.logger.Err(err).Msg("close local storage")
	}
}
