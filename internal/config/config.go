// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the sync behaviour switches.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address, timeout and credentials.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Retry holds the retry executor budget.
	Retry Retry `envPrefix:"RETRY_"`

	// Storage holds the host persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the periodic job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the local control surface settings.
	Server Server `envPrefix:"SERVER_"`

	// Log holds the log file and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds switches of the synchronisation engine.
type App struct {
	// LocalOnlyWhileDisabled keeps mutations issued while sync is disabled
	// local-only instead of queueing them for a later flush.
	// Env: APP_LOCAL_ONLY_WHILE_DISABLED
	LocalOnlyWhileDisabled bool `env:"LOCAL_ONLY_WHILE_DISABLED"`

	// InitialSyncEnabled seeds SyncConfig.SyncEnabled on first start, before
	// any persisted sync config exists.
	// Env: APP_INITIAL_SYNC_ENABLED
	InitialSyncEnabled bool `env:"INITIAL_SYNC_ENABLED"`
}

// Adapter holds configuration of the backend REST API.
type Adapter struct {
	// HTTPAddress is the backend base URL or host:port.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is an optional bearer token attached to every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// HealthPath is the endpoint polled by the connectivity probe.
	// Env: ADAPTER_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`
}

// Retry holds the retry executor parameters.
type Retry struct {
	// MaxAttempts is the total number of attempts per push.
	// Env: RETRY_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// Delay is the fixed pause between attempts.
	// Env: RETRY_DELAY
	Delay time.Duration `env:"DELAY"`
}

// Storage groups the host persistence backends. DB takes precedence over
// File when both are set.
type Storage struct {
	// DB holds the SQLite key-value store settings.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON file key-value store settings.
	File File `envPrefix:"FILE_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// File holds the JSON file store settings.
type File struct {
	// Path is the JSON state file.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration of background jobs.
type Workers struct {
	// SyncInterval is the auto-sync period used when the persisted sync
	// config carries no interval.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is the connectivity probe period.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Server holds the local control surface settings.
type Server struct {
	// HTTPAddress is the listen address of the control surface in
	// "host:port" format. Empty disables the surface.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Log holds logger settings.
type Log struct {
	// Path is the log file. Empty means a "logs" file next to the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
