// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to zero-valued fields.
const (
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultHealthPath     = "/api/health"
	DefaultMaxAttempts    = 3
	DefaultRetryDelay     = time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultProbeInterval  = 30 * time.Second
	DefaultFilePath       = "admin-sync.json"
)

// ClientApp holds the sync behaviour switches.
type ClientApp struct {
	QueueWhileDisabled bool
	InitialSyncEnabled bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
	HealthPath     string
}

// ClientRetry holds the retry executor budget.
type ClientRetry struct {
	MaxAttempts int
	Delay       time.Duration
}

// ClientDB contains the SQLite settings.
type ClientDB struct {
	DSN string
}

// ClientFile contains the JSON file store settings.
type ClientFile struct {
	Path string
}

// ClientStorage groups host persistence settings.
type ClientStorage struct {
	DB   ClientDB
	File ClientFile
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	SyncInterval  time.Duration
	ProbeInterval time.Duration
}

// ClientServer contains control surface settings.
type ClientServer struct {
	HTTPAddress string
}

// ClientLog contains logger settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Retry   ClientRetry
	Storage ClientStorage
	Workers ClientWorkers
	Server  ClientServer
	Log     ClientLog
}

// GetClientConfig builds a client configuration view from the merged
// structured configuration, applies defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto a [ClientConfig] and fills defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			QueueWhileDisabled: !cfg.App.LocalOnlyWhileDisabled,
			InitialSyncEnabled: cfg.App.InitialSyncEnabled,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
			HealthPath:     cfg.Adapter.HealthPath,
		},
		Retry: ClientRetry{
			MaxAttempts: cfg.Retry.MaxAttempts,
			Delay:       cfg.Retry.Delay,
		},
		Storage: ClientStorage{
			DB:   ClientDB{DSN: cfg.Storage.DB.DSN},
			File: ClientFile{Path: cfg.Storage.File.Path},
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			ProbeInterval: cfg.Workers.ProbeInterval,
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
		Log:    ClientLog{Path: cfg.Log.Path, Level: cfg.Log.Level},
	}

	clientCfg.applyDefaults()
	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.HealthPath == "" {
		cfg.Adapter.HealthPath = DefaultHealthPath
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Retry.Delay <= 0 {
		cfg.Retry.Delay = DefaultRetryDelay
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.File.Path == "" {
		cfg.Storage.File.Path = DefaultFilePath
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.ProbeInterval <= 0 {
		cfg.Workers.ProbeInterval = DefaultProbeInterval
	}
}
