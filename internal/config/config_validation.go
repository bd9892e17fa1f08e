// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] before defaults are applied.
// Only values that can never be corrected by a default are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Retry.MaxAttempts < 0 || cfg.Retry.Delay < 0 {
		return ErrInvalidRetryConfigs
	}
	if cfg.Workers.SyncInterval < 0 || cfg.Workers.ProbeInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" && cfg.Storage.File.Path == "" {
		return ErrInvalidStorageConfigs
	}
	if strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(cfg.Adapter.HealthPath, "/") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Retry.MaxAttempts <= 0 || cfg.Retry.Delay <= 0 {
		return ErrInvalidRetryConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
